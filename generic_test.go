package trie

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type product struct {
	ID    int
	Price float64
}

func TestGTrie(t *testing.T) {
	products := []product{{1, 999}, {2, 799}, {3, 1299}}
	names := []string{"iphone", "ipad", "macbook"}

	t.Run("complete", func(t *testing.T) {
		g, err := BuildG(products, func(p product) string { return names[p.ID-1] })
		require.NoError(t, err)
		assert.ElementsMatch(t, []product{{1, 999}, {2, 799}}, g.Complete("ip"))
		assert.Equal(t, []product{{3, 1299}}, g.Complete("m"))
		assert.Nil(t, g.Complete("x"))
		assert.Equal(t, 799.0, g.Entry(1).Price)
		assert.Equal(t, 3, g.Len())
	})

	t.Run("build error", func(t *testing.T) {
		g, err := BuildG(products, func(p product) string { return "ipad" })
		assert.Nil(t, g)
		assert.True(t, errors.Is(err, ErrConflictingEntry))
	})

	t.Run("no entries", func(t *testing.T) {
		_, err := BuildG([]product{}, func(p product) string { return "" })
		assert.True(t, errors.Is(err, ErrEmptyInput))
	})
}
