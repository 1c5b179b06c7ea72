package listkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginator_TotalPages(t *testing.T) {
	tests := []struct {
		name    string
		items   int
		perPage int
		want    int
	}{
		{name: "empty", items: 0, perPage: 10, want: 0},
		{name: "exact multiple", items: 30, perPage: 10, want: 3},
		{name: "remainder adds a page", items: 31, perPage: 10, want: 4},
		{name: "fewer items than page size", items: 3, perPage: 10, want: 1},
		{name: "page size one", items: 5, perPage: 1, want: 5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaginator(intRange(tt.items), tt.perPage)
			assert.Equal(t, tt.want, p.Page().TotalPages)
		})
	}
}

func TestPaginator_ItemsAreContiguousSlice(t *testing.T) {
	p := NewPaginator(intRange(25), 10)

	for page := 1; page <= 3; page++ {
		p.SetPage(page)
		v := p.Page()
		assert.LessOrEqual(t, len(v.Items), v.EntriesPerPage)
		for i, item := range v.Items {
			assert.Equal(t, (page-1)*10+i, item)
		}
	}
}

func TestPaginator_PageChangeOutsideRangeIgnored(t *testing.T) {
	p := NewPaginator(intRange(25), 10)
	p.SetPage(2)

	p.SetPage(0)
	assert.Equal(t, 2, p.Page().CurrentPage)

	p.SetPage(4)
	assert.Equal(t, 2, p.Page().CurrentPage)

	p.SetPage(-3)
	assert.Equal(t, 2, p.Page().CurrentPage)
}

func TestPaginator_PerPageChangeResetsToPageOne(t *testing.T) {
	p := NewPaginator(intRange(50), 10)
	p.SetPage(4)
	require.Equal(t, 4, p.Page().CurrentPage)

	p.SetPerPage(25)
	v := p.Page()
	assert.Equal(t, 1, v.CurrentPage)
	assert.Equal(t, 25, v.EntriesPerPage)
	assert.Equal(t, 2, v.TotalPages)
}

func TestPaginator_SetItemsClampsPage(t *testing.T) {
	p := NewPaginator(intRange(50), 10)
	p.SetPage(5)

	p.SetItems(intRange(12))
	v := p.Page()
	assert.Equal(t, 2, v.CurrentPage)
	assert.Len(t, v.Items, 2)

	p.SetItems(nil)
	v = p.Page()
	assert.Equal(t, 1, v.CurrentPage)
	assert.Empty(t, v.Items)
	assert.Equal(t, 0, v.TotalPages)
}

func TestPaginator_NextPrev(t *testing.T) {
	p := NewPaginator(intRange(30), 10)

	p.Prev()
	assert.Equal(t, 1, p.Page().CurrentPage)

	p.Next()
	p.Next()
	assert.Equal(t, 3, p.Page().CurrentPage)

	p.Next()
	assert.Equal(t, 3, p.Page().CurrentPage, "Next at the last page is a no-op")
}

type order struct {
	ID       int
	Garment  string
	Priority int
}

func TestPaginator_ThirtyOrdersPageTwo(t *testing.T) {
	orders := make([]order, 30)
	for i := range orders {
		orders[i] = order{ID: i, Garment: "hoodie"}
	}

	p := NewPaginator(orders, 10)
	p.SetPage(2)

	v := p.Page()
	assert.Equal(t, 3, v.TotalPages)
	assert.Equal(t, 30, v.TotalItems)
	require.Len(t, v.Items, 10)
	assert.Equal(t, 10, v.Items[0].ID)
	assert.Equal(t, 19, v.Items[9].ID)
}
