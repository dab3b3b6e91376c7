package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginateTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		total int
	}{
		{"empty", 0, 1},
		{"partial page", 7, 1},
		{"exact page", 20, 1},
		{"one over", 21, 2},
		{"several pages", 95, 5},
		{"exact multiple", 100, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(sequence(tt.n), 1, PageSize)
			assert.Equal(t, tt.total, page.TotalPages)
		})
	}
}

func TestPaginateSliceLengths(t *testing.T) {
	items := sequence(45)

	for pageNum, want := range map[int]int{1: 20, 2: 20, 3: 5} {
		page := Paginate(items, pageNum, PageSize)
		assert.Len(t, page.Items, want, "page %d", pageNum)
		assert.Equal(t, pageNum, page.Index)
	}

	// First item of page 2 follows the last item of page 1.
	assert.Equal(t, 20, Paginate(items, 2, PageSize).Items[0])
}

func TestPaginateBeyondEnd(t *testing.T) {
	page := Paginate(sequence(10), 99, PageSize)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
}

func TestPaginateEmptyInput(t *testing.T) {
	page := Paginate([]int(nil), 1, PageSize)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
}

func TestPaginateDefensiveArguments(t *testing.T) {
	page := Paginate(sequence(5), 0, 0)
	assert.Equal(t, 1, page.Index)
	assert.Len(t, page.Items, 5)
}
