package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       PaginationOptions
		wantPage int
		wantSize int
	}{
		{"defaults", PaginationOptions{}, 1, 20},
		{"negative page", PaginationOptions{Page: -3, PageSize: 10}, 1, 10},
		{"oversized page size", PaginationOptions{Page: 2, PageSize: 500}, 2, 100},
		{"valid passes through", PaginationOptions{Page: 4, PageSize: 25}, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantSize, got.PageSize)
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	opts := PaginationOptions{Page: 3, PageSize: 20}.Normalize()
	assert.Equal(t, 40, opts.Offset())
}

func TestNewPaginated(t *testing.T) {
	items := []string{"a", "b"}
	page := NewPaginated(items, 1, 2, 5)
	assert.Equal(t, items, page.Items)
	assert.Equal(t, 1, page.Page.Number)
	assert.Equal(t, 2, page.Page.Size)
	assert.Equal(t, 5, page.Page.Total)
}
