package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/doclint/doclint"
	"go.jacobcolvin.com/doclint/doclint/checks"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := checks.DefaultRegistry()

	assert.Equal(t, []string{
		"empty-description",
		"first-sentence",
		"html-style",
		"param-order",
		"prefer-inline-tags",
		"tag-order",
		"tag-placement",
	}, r.Names())

	e := doclint.NewEngine()

	for _, name := range r.Names() {
		c, err := r.New(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
		require.NoError(t, e.Register(c, doclint.CheckConfig{}), name)
	}

	assert.Equal(t, r.Names(), e.Checks())
}
