package model

import (
	"errors"
	"testing"
)

// TestParseSortOrder проверяет разбор порядка сортировки.
func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		input   string
		want    SortOrder
		wantErr bool
	}{
		{input: "MostPopular", want: SortMostPopular},
		{input: "MostDownloads", want: SortMostDownloads},
		{input: "MostNew", want: SortMostNew},
		{input: "mostnew", want: SortMostNew},
		{input: "Oldest", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseSortOrder(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownSortOrder) {
				t.Errorf("ParseSortOrder(%q) ошибка = %v, ожидалась ErrUnknownSortOrder", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSortOrder(%q) ошибка: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSortOrder(%q) = %q, ожидался %q", tt.input, got, tt.want)
		}
	}
}
