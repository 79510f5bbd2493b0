package paging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Clamps(t *testing.T) {
	assert.Equal(t, Page{Number: 1, Limit: DefaultLimit}, New(0, 0))
	assert.Equal(t, Page{Number: 1, Limit: MaxLimit}, New(-3, 500))
	assert.Equal(t, Page{Number: 4, Limit: 10}, New(4, 10))
}

func TestPage_OffsetAndPages(t *testing.T) {
	p := New(2, 10)

	assert.Equal(t, 10, p.Offset())
	assert.Equal(t, 3, p.Pages(25))
	assert.Equal(t, 0, p.Pages(0))
	assert.Equal(t, 1, p.Pages(10))

	assert.Equal(t, Info{Page: 2, Limit: 10, Total: 25, Pages: 3}, p.Info(25))
}
