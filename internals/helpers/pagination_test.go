package helper

import "testing"

func TestBuildPaginationFromPage(t *testing.T) {
	cases := []struct {
		name    string
		total   int64
		page    int
		perPage int
		want    Pagination
	}{
		{
			name:  "halaman pertama dari tiga",
			total: 45, page: 1, perPage: 20,
			want: Pagination{Page: 1, PerPage: 20, Total: 45, TotalPages: 3, HasNext: true, HasPrev: false},
		},
		{
			name:  "halaman tengah",
			total: 45, page: 2, perPage: 20,
			want: Pagination{Page: 2, PerPage: 20, Total: 45, TotalPages: 3, HasNext: true, HasPrev: true},
		},
		{
			name:  "halaman terakhir",
			total: 45, page: 3, perPage: 20,
			want: Pagination{Page: 3, PerPage: 20, Total: 45, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name:  "data kosong tetap satu halaman",
			total: 0, page: 1, perPage: 20,
			want: Pagination{Page: 1, PerPage: 20, Total: 0, TotalPages: 1, HasNext: false, HasPrev: false},
		},
		{
			name:  "total pas kelipatan per_page",
			total: 40, page: 2, perPage: 20,
			want: Pagination{Page: 2, PerPage: 20, Total: 40, TotalPages: 2, HasNext: false, HasPrev: true},
		},
		{
			name:  "input rusak dinormalisasi",
			total: 10, page: 0, perPage: 0,
			want: Pagination{Page: 1, PerPage: 20, Total: 10, TotalPages: 1, HasNext: false, HasPrev: false},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BuildPaginationFromPage(tc.total, tc.page, tc.perPage); got != tc.want {
				t.Errorf("BuildPaginationFromPage = %+v, want %+v", got, tc.want)
			}
		})
	}
}
