package model

// Status lamaran. INTERVIEW_SCHEDULED adalah status aggregate betulan:
// penjadwalan wawancara mengubah application_status dalam transaksi yang sama.
const (
	StatusApplied            = "APPLIED"
	StatusMentorReview       = "MENTOR_REVIEW"
	StatusMentorApproved     = "MENTOR_APPROVED"
	StatusMentorRejected     = "MENTOR_REJECTED"
	StatusInterviewScheduled = "INTERVIEW_SCHEDULED"
	StatusInterviewed        = "INTERVIEWED"
	StatusOffered            = "OFFERED"
	StatusNotOffered         = "NOT_OFFERED"
	StatusCompleted          = "COMPLETED"
)

// Status step tracking
const (
	StepPending    = "PENDING"
	StepInProgress = "IN_PROGRESS"
	StepCompleted  = "COMPLETED"
	StepSkipped    = "SKIPPED"
)

// Nama step default, di-seed berurutan saat lamaran dibuat.
// Step pertama langsung COMPLETED, sisanya PENDING.
var DefaultTrackingSteps = []string{
	"Application Submitted",
	"Resume Review",
	"Mentor Review",
	"Mentor Approval",
	"Interview Scheduling",
	"Interview",
	"Employer Review",
	"Offer Decision",
	"Offer Response",
	"Internship Completion",
}

// Step tracking yang dirujuk oleh kode transisi (addressed by name).
const (
	StepNameMentorReview        = "Mentor Review"
	StepNameMentorApproval      = "Mentor Approval"
	StepNameInterviewScheduling = "Interview Scheduling"
	StepNameInterview           = "Interview"
	StepNameOfferDecision       = "Offer Decision"
	StepNameOfferResponse       = "Offer Response"
	StepNameCompletion          = "Internship Completion"
)
