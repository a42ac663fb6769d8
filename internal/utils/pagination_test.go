package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePaginationSinglePage(t *testing.T) {
	assert.Nil(t, GeneratePagination(1, 1))
	assert.Nil(t, GeneratePagination(1, 0))
}

func TestGeneratePaginationWindow(t *testing.T) {
	p := GeneratePagination(5, 10)
	require.NotNil(t, p)

	assert.Equal(t, 5, p.CurrentPage)
	assert.True(t, p.HasPrev)
	assert.True(t, p.HasNext)
	assert.Equal(t, 4, p.PrevPage)
	assert.Equal(t, 6, p.NextPage)

	var numbers []int
	for _, page := range p.Pages {
		numbers = append(numbers, page.Number)
		if page.Number == 5 {
			assert.False(t, page.IsLink, "current page must not be a link")
		}
	}
	// 1, gap, 3..7, gap, 10
	assert.Equal(t, []int{1, 0, 3, 4, 5, 6, 7, 0, 10}, numbers)
}

func TestGeneratePaginationFirstPage(t *testing.T) {
	p := GeneratePagination(1, 3)
	require.NotNil(t, p)
	assert.False(t, p.HasPrev)
	assert.True(t, p.HasNext)

	var numbers []int
	for _, page := range p.Pages {
		numbers = append(numbers, page.Number)
	}
	assert.Equal(t, []int{1, 2, 3}, numbers)
}

func TestGeneratePaginationClampsCurrent(t *testing.T) {
	p := GeneratePagination(99, 4)
	require.NotNil(t, p)
	assert.Equal(t, 4, p.CurrentPage)
	assert.False(t, p.HasNext)
}
