// internals/features/interviews/service/schedule_service.go
package service

import (
	appModel "magangku_backend/internals/features/applications/model"
	model "magangku_backend/internals/features/interviews/model"
)

// IsReschedule: lamaran yang sudah INTERVIEW_SCHEDULED boleh dijadwalkan
// ulang tanpa transisi status. Versi lamaran tetap naik, dan jadwal lama
// yang masih terbuka ditandai RESCHEDULED.
func IsReschedule(appStatus string) bool {
	return appStatus == appModel.StatusInterviewScheduled
}

// OpenInterviewStatuses: status jadwal yang dianggap masih aktif dan ikut
// ditandai RESCHEDULED saat ada jadwal pengganti.
var OpenInterviewStatuses = []string{model.InterviewScheduled, model.InterviewConfirmed}
