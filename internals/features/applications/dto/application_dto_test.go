package dto

import "testing"

func strPtr(s string) *string { return &s }

func TestMentorDecisionNormalize(t *testing.T) {
	cases := []struct {
		name         string
		in           MentorDecisionRequest
		wantDecision string
		wantNotes    *string
	}{
		{"uppercase approve", MentorDecisionRequest{Decision: " APPROVE "}, "approve", nil},
		{"mixed case reject", MentorDecisionRequest{Decision: "Reject"}, "reject", nil},
		{"notes di-trim", MentorDecisionRequest{Decision: "approve", Notes: strPtr("  bagus  ")}, "approve", strPtr("bagus")},
		{"notes kosong jadi nil", MentorDecisionRequest{Decision: "approve", Notes: strPtr("   ")}, "approve", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.in
			r.Normalize()
			if r.Decision != tc.wantDecision {
				t.Errorf("Decision = %q, want %q", r.Decision, tc.wantDecision)
			}
			switch {
			case tc.wantNotes == nil && r.Notes != nil:
				t.Errorf("Notes = %q, want nil", *r.Notes)
			case tc.wantNotes != nil && (r.Notes == nil || *r.Notes != *tc.wantNotes):
				t.Errorf("Notes = %v, want %q", r.Notes, *tc.wantNotes)
			}
		})
	}
}

func TestEmployerDecisionNormalize(t *testing.T) {
	r := EmployerDecisionRequest{Notes: strPtr("  kandidat kurang cocok  "), ExpectedVersion: 3}
	r.Normalize()
	if r.Notes == nil || *r.Notes != "kandidat kurang cocok" {
		t.Errorf("Notes = %v, want kandidat kurang cocok", r.Notes)
	}

	empty := EmployerDecisionRequest{Notes: strPtr("   ")}
	empty.Normalize()
	if empty.Notes != nil {
		t.Errorf("Notes = %q, want nil", *empty.Notes)
	}
}

func TestTrackingUpdateNormalize(t *testing.T) {
	r := TrackingUpdateRequest{Status: " completed ", Notes: strPtr(" ok ")}
	r.Normalize()
	if r.Status != "COMPLETED" {
		t.Errorf("Status = %q, want COMPLETED", r.Status)
	}
	if r.Notes == nil || *r.Notes != "ok" {
		t.Errorf("Notes = %v, want ok", r.Notes)
	}
}
