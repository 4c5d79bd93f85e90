package service

import (
	"sort"

	dto "magangku_backend/internals/features/analytics/dto"
	appModel "magangku_backend/internals/features/applications/model"
)

// BuildHeatmap merangkum sel (department, status, total) jadi respons heatmap:
// ringkasan per department + placement rate. Placement = OFFERED + COMPLETED.
func BuildHeatmap(cells []dto.HeatmapCell) dto.HeatmapResponse {
	type agg struct {
		total     int64
		offered   int64
		completed int64
	}
	byDept := map[string]*agg{}

	var grandTotal, grandPlaced int64
	for _, cell := range cells {
		a, ok := byDept[cell.Department]
		if !ok {
			a = &agg{}
			byDept[cell.Department] = a
		}
		a.total += cell.Total
		grandTotal += cell.Total

		switch cell.Status {
		case appModel.StatusOffered:
			a.offered += cell.Total
			grandPlaced += cell.Total
		case appModel.StatusCompleted:
			a.completed += cell.Total
			grandPlaced += cell.Total
		}
	}

	departments := make([]dto.DepartmentSummary, 0, len(byDept))
	for dept, a := range byDept {
		rate := 0.0
		if a.total > 0 {
			rate = float64(a.offered+a.completed) / float64(a.total)
		}
		departments = append(departments, dto.DepartmentSummary{
			Department:    dept,
			Applications:  a.total,
			Offered:       a.offered,
			Completed:     a.completed,
			PlacementRate: rate,
		})
	}
	sort.Slice(departments, func(i, j int) bool {
		return departments[i].Department < departments[j].Department
	})

	overall := 0.0
	if grandTotal > 0 {
		overall = float64(grandPlaced) / float64(grandTotal)
	}

	return dto.HeatmapResponse{
		Cells:                cells,
		Departments:          departments,
		TotalApplications:    grandTotal,
		OverallPlacementRate: overall,
	}
}
