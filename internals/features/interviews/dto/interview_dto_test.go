package dto

import "testing"

func TestScheduleInterviewNormalizeDefaults(t *testing.T) {
	r := ScheduleInterviewRequest{}
	r.Normalize()

	if r.Mode != "ONLINE" {
		t.Errorf("Mode = %q, want ONLINE", r.Mode)
	}
	if r.InterviewType != "TECHNICAL" {
		t.Errorf("InterviewType = %q, want TECHNICAL", r.InterviewType)
	}
	if r.DurationMinutes != 60 {
		t.Errorf("DurationMinutes = %d, want 60", r.DurationMinutes)
	}
}

func TestScheduleInterviewNormalizeKeepsInput(t *testing.T) {
	r := ScheduleInterviewRequest{
		Mode:            " offline ",
		InterviewType:   "hr",
		DurationMinutes: 90,
	}
	r.Normalize()

	if r.Mode != "OFFLINE" {
		t.Errorf("Mode = %q, want OFFLINE", r.Mode)
	}
	if r.InterviewType != "HR" {
		t.Errorf("InterviewType = %q, want HR", r.InterviewType)
	}
	if r.DurationMinutes != 90 {
		t.Errorf("DurationMinutes = %d, want 90", r.DurationMinutes)
	}
}

func TestInterviewStatusUpdateNormalize(t *testing.T) {
	empty := "   "
	feedback := "  lancar  "
	r := InterviewStatusUpdateRequest{Status: " completed ", Feedback: &feedback}
	r.Normalize()
	if r.Status != "COMPLETED" {
		t.Errorf("Status = %q, want COMPLETED", r.Status)
	}
	if r.Feedback == nil || *r.Feedback != "lancar" {
		t.Errorf("Feedback = %v, want lancar", r.Feedback)
	}

	r2 := InterviewStatusUpdateRequest{Status: "CANCELLED", Feedback: &empty}
	r2.Normalize()
	if r2.Feedback != nil {
		t.Errorf("Feedback kosong harus jadi nil, got %q", *r2.Feedback)
	}
}
