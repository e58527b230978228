package listview

import "testing"

func TestPaginatorTotalPages(t *testing.T) {
	p := NewPaginator(10)
	cases := []struct{ count, want int }{
		{0, 1},
		{1, 1},
		{10, 1},
		{11, 2},
		{25, 3},
	}
	for _, tc := range cases {
		p.SetCount(tc.count)
		if got := p.TotalPages(); got != tc.want {
			t.Errorf("count %d: total pages = %d, want %d", tc.count, got, tc.want)
		}
	}
}

func TestPaginatorClampsWhenCollectionShrinks(t *testing.T) {
	p := NewPaginator(10)
	p.SetCount(25)
	p.GoTo(3)
	p.SetCount(12)
	if p.Page() != 2 {
		t.Errorf("page = %d, want 2 after shrink to 12 records", p.Page())
	}
	p.SetCount(0)
	if p.Page() != 1 {
		t.Errorf("page = %d, want 1 on empty collection", p.Page())
	}
}

func TestPaginatorNavigationClamps(t *testing.T) {
	p := NewPaginator(10)
	p.SetCount(25)
	p.Prev()
	if p.Page() != 1 {
		t.Errorf("prev on first page moved to %d", p.Page())
	}
	p.GoTo(3)
	p.Next()
	if p.Page() != 3 {
		t.Errorf("next on last page moved to %d", p.Page())
	}
	p.GoTo(99)
	if p.Page() != 3 {
		t.Errorf("goto 99 landed on %d, want 3", p.Page())
	}
}

func TestPageSlice(t *testing.T) {
	rows := make([]int, 25)
	for i := range rows {
		rows[i] = i
	}
	p := NewPaginator(10)
	p.SetCount(len(rows))
	p.GoTo(3)
	got := PageSlice(p, rows)
	if len(got) != 5 || got[0] != 20 || got[4] != 24 {
		t.Fatalf("page 3 slice = %v, want [20..24]", got)
	}
	p.SetCount(0)
	var empty []int
	if got := PageSlice(p, empty); got != nil {
		t.Fatalf("empty collection slice = %v, want nil", got)
	}
}

func TestPaginatorResetAfterFilterChange(t *testing.T) {
	p := NewPaginator(10)
	p.SetCount(50)
	p.GoTo(4)
	p.Reset()
	if p.Page() != 1 {
		t.Errorf("page = %d, want 1 after reset", p.Page())
	}
}

func TestNewPaginatorDefaultsSize(t *testing.T) {
	p := NewPaginator(0)
	if p.PageSize() != DefaultPageSize {
		t.Errorf("size = %d, want %d", p.PageSize(), DefaultPageSize)
	}
}
