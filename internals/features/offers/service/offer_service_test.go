package service

import (
	"testing"
	"time"

	model "magangku_backend/internals/features/offers/model"
)

var now = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func TestResolveExpiry(t *testing.T) {
	future := now.Add(48 * time.Hour)
	past := now.Add(-time.Hour)

	cases := []struct {
		name      string
		requested *time.Time
		want      time.Time
	}{
		{"nil pakai default 7 hari", nil, now.Add(defaultOfferTTL)},
		{"masa depan dipakai", &future, future},
		{"masa lalu diganti default", &past, now.Add(defaultOfferTTL)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveExpiry(tc.requested, now); !got.Equal(tc.want) {
				t.Errorf("ResolveExpiry = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestIsExpired(t *testing.T) {
	cases := []struct {
		name   string
		status string
		expiry time.Time
		want   bool
	}{
		{"extended lewat tenggat", model.OfferExtended, now.Add(-time.Minute), true},
		{"extended belum tenggat", model.OfferExtended, now.Add(time.Minute), false},
		{"extended tepat tenggat", model.OfferExtended, now, false},
		{"accepted tidak pernah hangus", model.OfferAccepted, now.Add(-time.Hour), false},
		{"rejected tidak pernah hangus", model.OfferRejected, now.Add(-time.Hour), false},
		{"withdrawn tidak pernah hangus", model.OfferWithdrawn, now.Add(-time.Hour), false},
		{"draft tidak di-sweep", model.OfferDraft, now.Add(-time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := &model.PlacementOfferModel{
				OfferStatus:    tc.status,
				OfferExpiresAt: tc.expiry,
			}
			if got := IsExpired(o, now); got != tc.want {
				t.Errorf("IsExpired = %v, want %v", got, tc.want)
			}
		})
	}
}
