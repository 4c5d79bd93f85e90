package service

import (
	"fmt"
	"time"

	model "magangku_backend/internals/features/interviews/model"
)

/* =========================================================
   Conflict checker jadwal wawancara.
   Overlap half-open: existing.start < proposed.end && existing.end > proposed.start.
   EXAM/ACADEMIC = blocking, sisanya informasional.
   Linear scan — volume event per user kecil (puluhan), cukup.
========================================================= */

const (
	workStartHour = 9
	workEndHour   = 17
	slotStepMin   = 60
	horizonDays   = 7
)

type ConflictResult struct {
	HasConflicts   bool                       `json:"has_conflicts"`
	Blocking       bool                       `json:"blocking"`
	Conflicts      []model.CalendarEventModel `json:"conflicts"`
	Reasons        []string                   `json:"reasons,omitempty"`
	SuggestedTimes []string                   `json:"suggested_times,omitempty"`
}

func overlaps(ev model.CalendarEventModel, start, end time.Time) bool {
	return ev.CalendarEventStart.Before(end) && ev.CalendarEventEnd.After(start)
}

func isBlockingType(eventType string) bool {
	return eventType == model.EventExam || eventType == model.EventAcademic
}

// CheckConflicts mengevaluasi usulan [start, end) terhadap semua event
// interviewer. Kalau ada konflik, suggested_times diisi maksimal maxSuggest
// slot bebas pertama.
func CheckConflicts(events []model.CalendarEventModel, start, end time.Time, maxSuggest int) ConflictResult {
	res := ConflictResult{}
	for _, ev := range events {
		if !overlaps(ev, start, end) {
			continue
		}
		res.HasConflicts = true
		res.Conflicts = append(res.Conflicts, ev)
		if isBlockingType(ev.CalendarEventType) {
			res.Blocking = true
			res.Reasons = append(res.Reasons,
				fmt.Sprintf("Bentrok dengan %s \"%s\" (%s - %s)",
					ev.CalendarEventType, ev.CalendarEventTitle,
					ev.CalendarEventStart.Format("02 Jan 15:04"),
					ev.CalendarEventEnd.Format("15:04")))
		}
	}

	if res.HasConflicts {
		duration := end.Sub(start)
		for _, slot := range SuggestSlots(events, start, duration, maxSuggest) {
			res.SuggestedTimes = append(res.SuggestedTimes, slot.Format(time.RFC3339))
		}
	}
	return res
}

// SuggestSlots scan maju per 60 menit, jam kerja 09:00-17:00, hari kerja saja,
// horizon 7 hari, ambil maxSlots slot bebas pertama.
func SuggestSlots(events []model.CalendarEventModel, from time.Time, duration time.Duration, maxSlots int) []time.Time {
	if maxSlots <= 0 {
		maxSlots = 5
	}
	if duration <= 0 {
		duration = time.Hour
	}

	var out []time.Time
	horizon := from.Add(horizonDays * 24 * time.Hour)

	// mulai dari jam bulat berikutnya
	cursor := from.Truncate(time.Hour)
	if cursor.Before(from) {
		cursor = cursor.Add(time.Hour)
	}

	for cursor.Before(horizon) && len(out) < maxSlots {
		if !isWorkingSlot(cursor, duration) {
			cursor = cursor.Add(slotStepMin * time.Minute)
			continue
		}

		free := true
		slotEnd := cursor.Add(duration)
		for _, ev := range events {
			if overlaps(ev, cursor, slotEnd) {
				free = false
				break
			}
		}
		if free {
			out = append(out, cursor)
		}
		cursor = cursor.Add(slotStepMin * time.Minute)
	}
	return out
}

func isWorkingSlot(start time.Time, duration time.Duration) bool {
	switch start.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	if start.Hour() < workStartHour {
		return false
	}
	end := start.Add(duration)
	// slot harus selesai dalam jam kerja di hari yang sama
	if end.Day() != start.Day() {
		return false
	}
	if end.Hour() > workEndHour || (end.Hour() == workEndHour && end.Minute() > 0) {
		return false
	}
	return true
}
