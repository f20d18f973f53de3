package listing

import (
	"errors"
	"slices"
	"testing"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		raw       string
		wantPage  int
		wantLen   int
		wantPages int
		wantErr   bool
	}{
		{"default first", 20, "", 1, 10, 2, false},
		{"second of two", 20, "2", 2, 10, 2, false},
		{"past last", 20, "3", 0, 0, 0, true},
		{"partial last", 15, "2", 2, 5, 2, false},
		{"last keyword", 15, "last", 2, 5, 2, false},
		{"empty listing page one", 0, "", 1, 0, 0, false},
		{"empty listing explicit one", 0, "1", 1, 0, 0, false},
		{"empty listing last", 0, "last", 1, 0, 0, false},
		{"empty listing page two", 0, "2", 0, 0, 0, true},
		{"zero", 20, "0", 0, 0, 0, true},
		{"negative", 20, "-1", 0, 0, 0, true},
		{"not a number", 20, "abc", 0, 0, 0, true},
		{"exactly one page", 10, "1", 1, 10, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Paginate(tt.total, 10, tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrPageNotFound) {
					t.Fatalf("error = %v, want ErrPageNotFound", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Number != tt.wantPage {
				t.Errorf("Number = %d, want %d", p.Number, tt.wantPage)
			}
			if p.Len() != tt.wantLen {
				t.Errorf("Len = %d, want %d", p.Len(), tt.wantLen)
			}
			if p.NumPages() != tt.wantPages {
				t.Errorf("NumPages = %d, want %d", p.NumPages(), tt.wantPages)
			}
		})
	}
}

func TestPageNavigation(t *testing.T) {
	p, err := Paginate(25, 10, "2")
	if err != nil {
		t.Fatal(err)
	}
	if !p.HasPrevious() || !p.HasNext() {
		t.Error("middle page should have both neighbours")
	}
	if p.Previous() != 1 || p.Next() != 3 {
		t.Errorf("neighbours = %d, %d", p.Previous(), p.Next())
	}
	if p.Offset() != 10 || p.StartIndex() != 11 || p.EndIndex() != 20 {
		t.Errorf("window = offset %d, %d..%d", p.Offset(), p.StartIndex(), p.EndIndex())
	}
	if !p.IsPaginated() {
		t.Error("25 items in pages of 10 are paginated")
	}
	if got := p.Numbers(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Numbers = %v", got)
	}

	last, _ := Paginate(25, 10, "last")
	if last.HasNext() || last.EndIndex() != 25 {
		t.Errorf("last page: HasNext=%v EndIndex=%d", last.HasNext(), last.EndIndex())
	}

	single, _ := Paginate(3, 10, "")
	if single.IsPaginated() || single.HasPrevious() || single.HasNext() {
		t.Error("single page should have no navigation")
	}

	empty, _ := Paginate(0, 10, "")
	if empty.StartIndex() != 0 || empty.EndIndex() != 0 {
		t.Errorf("empty window = %d..%d", empty.StartIndex(), empty.EndIndex())
	}
}
