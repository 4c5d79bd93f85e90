package service

import (
	"testing"

	appModel "magangku_backend/internals/features/applications/model"
	appService "magangku_backend/internals/features/applications/service"
	model "magangku_backend/internals/features/interviews/model"
)

// Lamaran INTERVIEW_SCHEDULED tidak punya transisi ke dirinya sendiri,
// jadi jadwal pengganti harus lewat jalur reschedule, bukan transisi status.
func TestIsReschedule(t *testing.T) {
	if !IsReschedule(appModel.StatusInterviewScheduled) {
		t.Fatal("lamaran INTERVIEW_SCHEDULED harus masuk jalur reschedule")
	}
	if appService.CanTransition(appModel.StatusInterviewScheduled, appModel.StatusInterviewScheduled) {
		t.Fatal("transisi INTERVIEW_SCHEDULED ke dirinya sendiri harusnya tidak ada")
	}

	for _, s := range []string{
		appModel.StatusApplied,
		appModel.StatusMentorApproved,
		appModel.StatusInterviewed,
		appModel.StatusOffered,
	} {
		if IsReschedule(s) {
			t.Errorf("IsReschedule(%s) = true, harusnya false", s)
		}
	}
}

func TestOpenInterviewStatuses(t *testing.T) {
	want := map[string]bool{model.InterviewScheduled: true, model.InterviewConfirmed: true}
	if len(OpenInterviewStatuses) != len(want) {
		t.Fatalf("jumlah status terbuka = %d, harusnya %d", len(OpenInterviewStatuses), len(want))
	}
	for _, s := range OpenInterviewStatuses {
		if !want[s] {
			t.Errorf("status %s tidak seharusnya dianggap terbuka", s)
		}
	}
	for _, s := range []string{model.InterviewCompleted, model.InterviewCancelled, model.InterviewRescheduled} {
		if want[s] {
			continue
		}
		for _, open := range OpenInterviewStatuses {
			if open == s {
				t.Errorf("status final %s tidak boleh ada di daftar terbuka", s)
			}
		}
	}
}
