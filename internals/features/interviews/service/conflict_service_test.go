package service

import (
	"strings"
	"testing"
	"time"

	model "magangku_backend/internals/features/interviews/model"
)

// Senin 2 Maret 2026, 09:00 lokal — jangkar semua kasus supaya
// perhitungan hari kerja deterministik.
var monday9 = time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)

func event(eventType string, start, end time.Time) model.CalendarEventModel {
	return model.CalendarEventModel{
		CalendarEventTitle: "agenda",
		CalendarEventType:  eventType,
		CalendarEventStart: start,
		CalendarEventEnd:   end,
	}
}

func TestCheckConflictsOverlapHalfOpen(t *testing.T) {
	existing := event(model.EventMeeting, monday9, monday9.Add(time.Hour)) // 09:00-10:00

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"tepat sama", monday9, monday9.Add(time.Hour), true},
		{"overlap sebagian depan", monday9.Add(-30 * time.Minute), monday9.Add(30 * time.Minute), true},
		{"overlap sebagian belakang", monday9.Add(30 * time.Minute), monday9.Add(90 * time.Minute), true},
		{"di dalam", monday9.Add(15 * time.Minute), monday9.Add(45 * time.Minute), true},
		{"membungkus", monday9.Add(-time.Hour), monday9.Add(2 * time.Hour), true},
		{"back-to-back setelah", monday9.Add(time.Hour), monday9.Add(2 * time.Hour), false},
		{"back-to-back sebelum", monday9.Add(-time.Hour), monday9, false},
		{"jauh setelah", monday9.Add(3 * time.Hour), monday9.Add(4 * time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := CheckConflicts([]model.CalendarEventModel{existing}, tc.start, tc.end, 3)
			if res.HasConflicts != tc.want {
				t.Errorf("HasConflicts = %v, want %v", res.HasConflicts, tc.want)
			}
		})
	}
}

func TestCheckConflictsBlockingTypes(t *testing.T) {
	start := monday9.Add(time.Hour)
	end := start.Add(time.Hour)

	cases := []struct {
		eventType string
		blocking  bool
	}{
		{model.EventExam, true},
		{model.EventAcademic, true},
		{model.EventMeeting, false},
		{model.EventInterview, false},
		{model.EventOther, false},
	}

	for _, tc := range cases {
		t.Run(tc.eventType, func(t *testing.T) {
			res := CheckConflicts([]model.CalendarEventModel{event(tc.eventType, start, end)}, start, end, 3)
			if !res.HasConflicts {
				t.Fatal("overlap penuh harus terdeteksi")
			}
			if res.Blocking != tc.blocking {
				t.Errorf("Blocking = %v, want %v", res.Blocking, tc.blocking)
			}
			if tc.blocking {
				if len(res.Reasons) == 0 {
					t.Fatal("blocking conflict harus punya alasan")
				}
				if !strings.Contains(res.Reasons[0], tc.eventType) {
					t.Errorf("alasan %q tidak menyebut tipe %s", res.Reasons[0], tc.eventType)
				}
			}
		})
	}
}

func TestCheckConflictsSuggestsAlternatives(t *testing.T) {
	start := monday9.Add(time.Hour) // 10:00
	end := start.Add(time.Hour)
	res := CheckConflicts([]model.CalendarEventModel{event(model.EventExam, start, end)}, start, end, 3)

	if !res.Blocking {
		t.Fatal("ujian harus blocking")
	}
	if len(res.SuggestedTimes) == 0 {
		t.Fatal("harus ada saran slot alternatif")
	}
	for _, raw := range res.SuggestedTimes {
		slot, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			t.Fatalf("saran %q bukan RFC3339: %v", raw, err)
		}
		if slot.Equal(start) {
			t.Errorf("slot %s masih bentrok dengan ujian", raw)
		}
	}
}

func TestSuggestSlotsWorkingHours(t *testing.T) {
	slots := SuggestSlots(nil, monday9, time.Hour, 20)
	if len(slots) == 0 {
		t.Fatal("kalender kosong harus menghasilkan slot")
	}
	for _, s := range slots {
		if s.Weekday() == time.Saturday || s.Weekday() == time.Sunday {
			t.Errorf("slot %s jatuh di akhir pekan", s)
		}
		if s.Hour() < 9 {
			t.Errorf("slot %s sebelum jam kerja", s)
		}
		end := s.Add(time.Hour)
		if end.Hour() > 17 || (end.Hour() == 17 && end.Minute() > 0) {
			t.Errorf("slot %s selesai setelah jam kerja", s)
		}
	}
}

func TestSuggestSlotsSkipsWeekend(t *testing.T) {
	// Jumat 6 Maret 2026, 16:30 — hanya tersisa slot Senin berikutnya
	friday1630 := time.Date(2026, 3, 6, 16, 30, 0, 0, time.Local)
	slots := SuggestSlots(nil, friday1630, time.Hour, 1)
	if len(slots) != 1 {
		t.Fatalf("len(slots) = %d, want 1", len(slots))
	}
	if slots[0].Weekday() != time.Monday {
		t.Errorf("slot pertama jatuh di %s, want Monday", slots[0].Weekday())
	}
}

func TestSuggestSlotsAvoidsBusyCalendar(t *testing.T) {
	// blok 09:00-12:00 Senin
	busy := []model.CalendarEventModel{
		event(model.EventMeeting, monday9, monday9.Add(3*time.Hour)),
	}
	slots := SuggestSlots(busy, monday9, time.Hour, 3)
	if len(slots) == 0 {
		t.Fatal("slot setelah 12:00 harus tersedia")
	}
	if !slots[0].Equal(monday9.Add(3 * time.Hour)) {
		t.Errorf("slot pertama = %s, want %s", slots[0], monday9.Add(3*time.Hour))
	}
}

func TestSuggestSlotsRespectsMax(t *testing.T) {
	slots := SuggestSlots(nil, monday9, time.Hour, 4)
	if len(slots) != 4 {
		t.Errorf("len(slots) = %d, want 4", len(slots))
	}
}

func TestSuggestSlotsHorizon(t *testing.T) {
	slots := SuggestSlots(nil, monday9, time.Hour, 1000)
	horizon := monday9.Add(7 * 24 * time.Hour)
	for _, s := range slots {
		if !s.Before(horizon) {
			t.Errorf("slot %s di luar horizon 7 hari", s)
		}
	}
}
