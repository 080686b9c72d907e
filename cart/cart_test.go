package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/storecli/catalog"
	"github.com/MarcGrol/storecli/lib/myerrors"
)

var (
	paper    = catalog.Product{ID: "ABC", Name: "Paper", Price: 20}
	pencil   = catalog.Product{ID: "CDE", Name: "Pencil", Price: 10}
	notebook = catalog.Product{ID: "QWE", Name: "Notebook", Price: 50}
	freebie  = catalog.Product{ID: "FRE", Name: "Sticker", Price: 0}
)

func TestCart(t *testing.T) {

	t.Run("Empty cart", func(t *testing.T) {
		c := New()
		assert.True(t, c.IsEmpty())
		assert.Equal(t, 0, c.Total())
		assert.Empty(t, c.Lines())
	})

	t.Run("Add prepends", func(t *testing.T) {
		// given
		c := New()

		// when
		assert.NoError(t, c.Add(paper, 3))
		assert.NoError(t, c.Add(pencil, 1))

		// then
		assert.Equal(t, []Line{{Product: pencil, Quantity: 1}, {Product: paper, Quantity: 3}}, c.Lines())
		assert.False(t, c.IsEmpty())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("Duplicates are not merged", func(t *testing.T) {
		c := New()
		c.Add(paper, 1)
		c.Add(paper, 2)

		assert.Equal(t, 2, c.Len())
		assert.Equal(t, 60, c.Total())
	})

	t.Run("Non-positive quantity rejected", func(t *testing.T) {
		c := New()

		err := c.Add(paper, 0)
		assert.Error(t, err)
		assert.Equal(t, myerrors.KindInvalidInput, myerrors.GetKind(err))

		err = c.Add(paper, -2)
		assert.Error(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("Lines is a copy", func(t *testing.T) {
		c := New()
		c.Add(paper, 1)

		lines := c.Lines()
		lines[0].Quantity = 100

		assert.Equal(t, 20, c.Total())
	})

	t.Run("Clear is idempotent", func(t *testing.T) {
		c := New()
		c.Add(paper, 1)

		c.Clear()
		assert.True(t, c.IsEmpty())
		c.Clear()
		assert.True(t, c.IsEmpty())
		assert.Equal(t, 0, c.Total())
	})
}

func TestCartTotalIsOrderIndependent(t *testing.T) {
	type add struct {
		product  catalog.Product
		quantity int
	}

	testCases := []struct {
		name  string
		adds  []add
		total int
	}{
		{name: "Single line", adds: []add{{paper, 3}}, total: 60},
		{name: "Mixed", adds: []add{{paper, 3}, {pencil, 2}, {notebook, 1}}, total: 130},
		{name: "Mixed reversed", adds: []add{{notebook, 1}, {pencil, 2}, {paper, 3}}, total: 130},
		{name: "Free product", adds: []add{{freebie, 10}, {pencil, 1}}, total: 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			for _, a := range tc.adds {
				assert.NoError(t, c.Add(a.product, a.quantity))
			}
			assert.Equal(t, tc.total, c.Total())
		})
	}
}
