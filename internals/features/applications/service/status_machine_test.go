package service

import (
	"testing"

	"magangku_backend/internals/constants"
	model "magangku_backend/internals/features/applications/model"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"applied ke mentor review", model.StatusApplied, model.StatusMentorReview, true},
		{"applied langsung approved", model.StatusApplied, model.StatusMentorApproved, true},
		{"applied langsung rejected", model.StatusApplied, model.StatusMentorRejected, true},
		{"review ke approved", model.StatusMentorReview, model.StatusMentorApproved, true},
		{"approved ke interview scheduled", model.StatusMentorApproved, model.StatusInterviewScheduled, true},
		{"approved langsung offered", model.StatusMentorApproved, model.StatusOffered, true},
		{"interview scheduled ke interviewed", model.StatusInterviewScheduled, model.StatusInterviewed, true},
		{"interview scheduled langsung offered", model.StatusInterviewScheduled, model.StatusOffered, true},
		{"interviewed ke not offered", model.StatusInterviewed, model.StatusNotOffered, true},
		{"offered ke completed", model.StatusOffered, model.StatusCompleted, true},

		{"applied langsung offered", model.StatusApplied, model.StatusOffered, false},
		{"applied langsung completed", model.StatusApplied, model.StatusCompleted, false},
		{"rejected tidak bisa bangkit", model.StatusMentorRejected, model.StatusMentorReview, false},
		{"not offered terminal", model.StatusNotOffered, model.StatusOffered, false},
		{"completed terminal", model.StatusCompleted, model.StatusOffered, false},
		{"offered balik ke interviewed saat offer ditarik", model.StatusOffered, model.StatusInterviewed, true},
		{"interviewed mundur ke applied", model.StatusInterviewed, model.StatusApplied, false},
		{"status asing", "WAITING", model.StatusOffered, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []string{model.StatusMentorRejected, model.StatusNotOffered, model.StatusCompleted}
	for _, s := range terminal {
		if !IsTerminal(s) {
			t.Errorf("IsTerminal(%s) = false, want true", s)
		}
	}

	nonTerminal := []string{
		model.StatusApplied, model.StatusMentorReview, model.StatusMentorApproved,
		model.StatusInterviewScheduled, model.StatusInterviewed, model.StatusOffered,
	}
	for _, s := range nonTerminal {
		if IsTerminal(s) {
			t.Errorf("IsTerminal(%s) = true, want false", s)
		}
	}

	if IsTerminal("UNKNOWN") {
		t.Error("status asing tidak boleh dianggap terminal")
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []string{
		model.StatusApplied, model.StatusMentorReview, model.StatusMentorApproved,
		model.StatusMentorRejected, model.StatusInterviewScheduled, model.StatusInterviewed,
		model.StatusOffered, model.StatusNotOffered, model.StatusCompleted,
	} {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%s) = false", s)
		}
	}
	if IsValidStatus("PENDING") {
		t.Error("IsValidStatus(PENDING) = true, want false")
	}
}

func TestRoleMayTransition(t *testing.T) {
	cases := []struct {
		name string
		role string
		to   string
		want bool
	}{
		{"mentor approve", constants.RoleMentor, model.StatusMentorApproved, true},
		{"mentor reject", constants.RoleMentor, model.StatusMentorRejected, true},
		{"employer tidak boleh approve", constants.RoleEmployer, model.StatusMentorApproved, false},
		{"student tidak boleh approve", constants.RoleStudent, model.StatusMentorApproved, false},
		{"employer jadwalkan interview", constants.RoleEmployer, model.StatusInterviewScheduled, true},
		{"staff jadwalkan interview", constants.RoleStaff, model.StatusInterviewScheduled, true},
		{"mentor tidak boleh offer", constants.RoleMentor, model.StatusOffered, false},
		{"employer offer", constants.RoleEmployer, model.StatusOffered, true},
		{"employer complete", constants.RoleEmployer, model.StatusCompleted, true},
		{"student tidak boleh complete", constants.RoleStudent, model.StatusCompleted, false},
		{"employer tutup tanpa offer", constants.RoleEmployer, model.StatusNotOffered, true},
		{"staff tutup tanpa offer", constants.RoleStaff, model.StatusNotOffered, true},
		{"mentor tidak boleh tutup tanpa offer", constants.RoleMentor, model.StatusNotOffered, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RoleMayTransition(tc.role, tc.to); got != tc.want {
				t.Errorf("RoleMayTransition(%s, %s) = %v, want %v", tc.role, tc.to, got, tc.want)
			}
		})
	}
}

func TestDefaultTrackingSteps(t *testing.T) {
	if len(model.DefaultTrackingSteps) != 10 {
		t.Fatalf("jumlah step default = %d, want 10", len(model.DefaultTrackingSteps))
	}
	if model.DefaultTrackingSteps[0] != "Application Submitted" {
		t.Errorf("step pertama = %q, want Application Submitted", model.DefaultTrackingSteps[0])
	}
	if model.DefaultTrackingSteps[len(model.DefaultTrackingSteps)-1] != model.StepNameCompletion {
		t.Errorf("step terakhir = %q, want %q",
			model.DefaultTrackingSteps[len(model.DefaultTrackingSteps)-1], model.StepNameCompletion)
	}

	seen := map[string]bool{}
	for _, name := range model.DefaultTrackingSteps {
		if seen[name] {
			t.Errorf("step %q duplikat", name)
		}
		seen[name] = true
	}
}
