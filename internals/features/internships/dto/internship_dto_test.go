package dto

import (
	"reflect"
	"testing"
)

func TestSearchFilterNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   SearchFilter
		want SearchFilter
	}{
		{
			name: "kosong jatuh ke relevance",
			in:   SearchFilter{},
			want: SearchFilter{Sort: "relevance", Skills: []string{}},
		},
		{
			name: "trim dan lowercase sort",
			in:   SearchFilter{Q: "  backend  ", Sort: " NEWEST ", Department: " TI "},
			want: SearchFilter{Q: "backend", Sort: "newest", Department: "TI", Skills: []string{}},
		},
		{
			name: "sort asing diganti relevance",
			in:   SearchFilter{Sort: "random"},
			want: SearchFilter{Sort: "relevance", Skills: []string{}},
		},
		{
			name: "stipend negatif jadi nol",
			in:   SearchFilter{StipendMin: -500},
			want: SearchFilter{Sort: "relevance", StipendMin: 0, Skills: []string{}},
		},
		{
			name: "skills dibersihkan dan di-lowercase",
			in:   SearchFilter{Skills: []string{" Go ", "", "SQL", "  "}},
			want: SearchFilter{Sort: "relevance", Skills: []string{"go", "sql"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := tc.in
			f.Normalize()
			if !reflect.DeepEqual(f, tc.want) {
				t.Errorf("Normalize() = %+v, want %+v", f, tc.want)
			}
		})
	}
}
