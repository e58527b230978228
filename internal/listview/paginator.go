package listview

// DefaultPageSize is used when a view does not set its own.
const DefaultPageSize = 10

// Paginator tracks the current page over a filtered collection. Pages are
// 1-based. A zero-record collection still has one (empty) page.
type Paginator struct {
	page  int
	size  int
	count int
}

func NewPaginator(size int) *Paginator {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Paginator{page: 1, size: size}
}

func (p *Paginator) Page() int     { return p.page }
func (p *Paginator) PageSize() int { return p.size }
func (p *Paginator) Count() int    { return p.count }

// TotalPages is never below 1.
func (p *Paginator) TotalPages() int {
	if p.count <= 0 {
		return 1
	}
	return (p.count + p.size - 1) / p.size
}

// SetCount records the filtered-collection size and clamps the current page
// back into range if the collection shrank.
func (p *Paginator) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	p.count = count
	if p.page > p.TotalPages() {
		p.page = p.TotalPages()
	}
}

// Reset returns to page 1. Views call it when a filter dimension changes.
func (p *Paginator) Reset() { p.page = 1 }

// GoTo clamps the target into [1, TotalPages].
func (p *Paginator) GoTo(page int) {
	if page < 1 {
		page = 1
	}
	if tp := p.TotalPages(); page > tp {
		page = tp
	}
	p.page = page
}

func (p *Paginator) Next() { p.GoTo(p.page + 1) }
func (p *Paginator) Prev() { p.GoTo(p.page - 1) }

// Bounds returns the half-open [start, end) slice indexes for the current
// page.
func (p *Paginator) Bounds() (int, int) {
	start := (p.page - 1) * p.size
	if start > p.count {
		start = p.count
	}
	end := start + p.size
	if end > p.count {
		end = p.count
	}
	return start, end
}

// PageSlice cuts the current page out of rows. rows must be the same
// collection SetCount was last called with.
func PageSlice[T any](p *Paginator, rows []T) []T {
	start, end := p.Bounds()
	if start >= len(rows) {
		return nil
	}
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
