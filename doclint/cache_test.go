package doclint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/doclint/commenttest"
	"go.jacobcolvin.com/doclint/doclint"
)

func TestParseCache(t *testing.T) {
	t.Parallel()

	p := newCountingParser()
	cache := doclint.NewParseCache(p.parse)

	first := commenttest.Comment(3, 4, "/** First. */")
	sameLine := commenttest.Comment(3, 20, "/** Same line. */")

	a := cache.GetOrParse(first)
	require.NotNil(t, a.Tree)
	assert.Same(t, a, cache.GetOrParse(first))

	b := cache.GetOrParse(sameLine)
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, p.calls[3])
	assert.Equal(t, 2, cache.Len())

	cache.Clear()
	assert.Equal(t, 0, cache.Len())

	assert.NotSame(t, a, cache.GetOrParse(first))
	assert.Equal(t, 3, p.calls[3])
}

func TestParseCacheDefaultParser(t *testing.T) {
	t.Parallel()

	res := doclint.NewParseCache(nil).GetOrParse(commenttest.Lines("/** Doc. */"))
	require.Nil(t, res.Error)
	assert.Equal(t, " Doc. ", res.Root().Text())
}
