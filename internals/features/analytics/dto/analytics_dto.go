package dto

// Satu sel heatmap: jumlah lamaran per (department, status).
type HeatmapCell struct {
	Department string `json:"department"`
	Status     string `json:"status"`
	Total      int64  `json:"total"`
}

type DepartmentSummary struct {
	Department    string  `json:"department"`
	Applications  int64   `json:"applications"`
	Offered       int64   `json:"offered"`
	Completed     int64   `json:"completed"`
	PlacementRate float64 `json:"placement_rate"`
}

type HeatmapResponse struct {
	Cells                []HeatmapCell       `json:"cells"`
	Departments          []DepartmentSummary `json:"departments"`
	TotalApplications    int64               `json:"total_applications"`
	OverallPlacementRate float64             `json:"overall_placement_rate"`
}
