package service

import (
	"math"
	"testing"

	dto "magangku_backend/internals/features/analytics/dto"
	appModel "magangku_backend/internals/features/applications/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBuildHeatmapEmpty(t *testing.T) {
	res := BuildHeatmap(nil)
	if res.TotalApplications != 0 {
		t.Errorf("TotalApplications = %d, want 0", res.TotalApplications)
	}
	if res.OverallPlacementRate != 0 {
		t.Errorf("OverallPlacementRate = %f, want 0", res.OverallPlacementRate)
	}
	if len(res.Departments) != 0 {
		t.Errorf("Departments = %d, want 0", len(res.Departments))
	}
}

func TestBuildHeatmapPlacementRate(t *testing.T) {
	cells := []dto.HeatmapCell{
		{Department: "Teknik Informatika", Status: appModel.StatusApplied, Total: 4},
		{Department: "Teknik Informatika", Status: appModel.StatusOffered, Total: 3},
		{Department: "Teknik Informatika", Status: appModel.StatusCompleted, Total: 3},
		{Department: "Sistem Informasi", Status: appModel.StatusMentorRejected, Total: 5},
	}

	res := BuildHeatmap(cells)

	if res.TotalApplications != 15 {
		t.Errorf("TotalApplications = %d, want 15", res.TotalApplications)
	}
	// 6 placed dari 15 total
	if !almostEqual(res.OverallPlacementRate, 6.0/15.0) {
		t.Errorf("OverallPlacementRate = %f, want %f", res.OverallPlacementRate, 6.0/15.0)
	}

	if len(res.Departments) != 2 {
		t.Fatalf("Departments = %d, want 2", len(res.Departments))
	}
	// terurut alfabetis
	if res.Departments[0].Department != "Sistem Informasi" {
		t.Errorf("department pertama = %q, want Sistem Informasi", res.Departments[0].Department)
	}

	si := res.Departments[0]
	if si.Applications != 5 || si.PlacementRate != 0 {
		t.Errorf("Sistem Informasi: apps=%d rate=%f, want 5 dan 0", si.Applications, si.PlacementRate)
	}

	ti := res.Departments[1]
	if ti.Applications != 10 {
		t.Errorf("Teknik Informatika apps = %d, want 10", ti.Applications)
	}
	if ti.Offered != 3 || ti.Completed != 3 {
		t.Errorf("Teknik Informatika offered=%d completed=%d, want 3 dan 3", ti.Offered, ti.Completed)
	}
	if !almostEqual(ti.PlacementRate, 0.6) {
		t.Errorf("Teknik Informatika rate = %f, want 0.6", ti.PlacementRate)
	}
}

func TestBuildHeatmapPreservesCells(t *testing.T) {
	cells := []dto.HeatmapCell{
		{Department: "UNKNOWN", Status: appModel.StatusApplied, Total: 2},
	}
	res := BuildHeatmap(cells)
	if len(res.Cells) != 1 || res.Cells[0].Department != "UNKNOWN" {
		t.Errorf("Cells harus diteruskan apa adanya: %+v", res.Cells)
	}
}
