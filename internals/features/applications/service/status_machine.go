package service

import (
	"magangku_backend/internals/constants"
	model "magangku_backend/internals/features/applications/model"
)

/* =========================================================
   Tabel transisi status lamaran.
   Semua transisi fail-closed: role dicek dulu (403), lalu
   eksistensi (404), precondition status (400), versi (409).
========================================================= */

var transitions = map[string][]string{
	model.StatusApplied:            {model.StatusMentorReview, model.StatusMentorApproved, model.StatusMentorRejected},
	model.StatusMentorReview:       {model.StatusMentorApproved, model.StatusMentorRejected},
	model.StatusMentorApproved:     {model.StatusInterviewScheduled, model.StatusOffered, model.StatusNotOffered},
	model.StatusInterviewScheduled: {model.StatusInterviewed, model.StatusOffered},
	model.StatusInterviewed:        {model.StatusOffered, model.StatusNotOffered},
	// INTERVIEWED sebagai jalur balik saat satu-satunya offer ditarik/hangus,
	// supaya employer bisa membuat offer pengganti.
	model.StatusOffered: {model.StatusCompleted, model.StatusInterviewed},
	// terminal: tidak ada transisi keluar
	model.StatusMentorRejected: {},
	model.StatusNotOffered:     {},
	model.StatusCompleted:      {},
}

// Role yang boleh memicu transisi KE status tertentu.
var transitionRoles = map[string][]string{
	model.StatusMentorReview:       {constants.RoleMentor, constants.RoleStaff},
	model.StatusMentorApproved:     {constants.RoleMentor},
	model.StatusMentorRejected:     {constants.RoleMentor},
	model.StatusInterviewScheduled: {constants.RoleEmployer, constants.RoleStaff},
	model.StatusInterviewed:        {constants.RoleEmployer, constants.RoleStaff},
	model.StatusOffered:            {constants.RoleEmployer, constants.RoleStaff},
	model.StatusNotOffered:         {constants.RoleEmployer, constants.RoleStaff},
	model.StatusCompleted:          {constants.RoleEmployer, constants.RoleStaff},
}

func IsValidStatus(s string) bool {
	_, ok := transitions[s]
	return ok
}

func IsTerminal(s string) bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// CanTransition: apakah from → to ada di tabel transisi.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// RoleMayTransition: apakah role boleh memicu transisi ke status to.
func RoleMayTransition(role, to string) bool {
	for _, r := range transitionRoles[to] {
		if r == role {
			return true
		}
	}
	return false
}
