package listkit

// Page is a derived pagination view over a source slice. It is recomputed on
// every access, never stored.
type Page[T any] struct {
	Items          []T
	CurrentPage    int
	EntriesPerPage int
	TotalPages     int
	TotalItems     int
}

// Paginator windows a slice into pages.
//
// Invariants:
//   - CurrentPage stays in [1, totalPages], or 1 when the slice is empty.
//   - len(Items) <= EntriesPerPage.
//   - Changing the page size always resets to page 1 (keeping the page could
//     otherwise point past the end of the slice).
type Paginator[T any] struct {
	items   []T
	page    int
	perPage int
}

// NewPaginator creates a Paginator over items. perPage values below 1 are
// raised to 1.
func NewPaginator[T any](items []T, perPage int) *Paginator[T] {
	if perPage < 1 {
		perPage = 1
	}
	return &Paginator[T]{items: items, page: 1, perPage: perPage}
}

func (p *Paginator[T]) totalPages() int {
	return (len(p.items) + p.perPage - 1) / p.perPage
}

// SetItems replaces the source slice. The current page is clamped into the
// new range.
func (p *Paginator[T]) SetItems(items []T) {
	p.items = items
	if tp := p.totalPages(); p.page > tp {
		p.page = tp
	}
	if p.page < 1 {
		p.page = 1
	}
}

// SetPage moves to page n. Requests outside [1, totalPages] are silently
// ignored.
func (p *Paginator[T]) SetPage(n int) {
	if n < 1 || n > p.totalPages() {
		return
	}
	p.page = n
}

// Next advances one page; at the last page it is a no-op.
func (p *Paginator[T]) Next() { p.SetPage(p.page + 1) }

// Prev goes back one page; at the first page it is a no-op.
func (p *Paginator[T]) Prev() { p.SetPage(p.page - 1) }

// SetPerPage changes the page size and resets to page 1. Values below 1 are
// raised to 1.
func (p *Paginator[T]) SetPerPage(n int) {
	if n < 1 {
		n = 1
	}
	p.perPage = n
	p.page = 1
}

// Page computes the current view.
func (p *Paginator[T]) Page() Page[T] {
	first := (p.page - 1) * p.perPage
	last := first + p.perPage
	if first > len(p.items) {
		first = len(p.items)
	}
	if last > len(p.items) {
		last = len(p.items)
	}
	return Page[T]{
		Items:          p.items[first:last],
		CurrentPage:    p.page,
		EntriesPerPage: p.perPage,
		TotalPages:     p.totalPages(),
		TotalItems:     len(p.items),
	}
}
