package catalog_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weikanglim/OrderBot/pkg/adapters/catalog"
	"github.com/weikanglim/OrderBot/pkg/domain"
)

func TestStatic_DefaultMenu(t *testing.T) {
	c := catalog.NewStatic()

	products := c.ListProducts()
	require.Len(t, products, 4)
	assert.Equal(t, "Hamburger", products[0].Name)
	assert.Equal(t, "Cheeseburger", products[1].Name)
	for _, p := range products {
		assert.NotEqual(t, uuid.Nil, p.ID)
	}
}

func TestStatic_FindProduct(t *testing.T) {
	c := catalog.NewStatic()

	t.Run("case-insensitive contains", func(t *testing.T) {
		matches := c.FindProduct("fRiEs")
		require.Len(t, matches, 1)
		assert.Equal(t, "Fries", matches[0].Name)
	})

	t.Run("substring matches in catalog order", func(t *testing.T) {
		matches := c.FindProduct("burger")
		require.Len(t, matches, 2)
		assert.Equal(t, "Hamburger", matches[0].Name)
		assert.Equal(t, "Cheeseburger", matches[1].Name)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, c.FindProduct("pizza"))
	})
}

func TestStatic_GetProduct(t *testing.T) {
	c := catalog.NewStatic()
	want := c.ListProducts()[2]

	got, ok := c.GetProduct(want.ID)
	require.True(t, ok)
	assert.Equal(t, want.Name, got.Name)

	_, ok = c.GetProduct(uuid.New())
	assert.False(t, ok)
}

func TestStatic_CustomProducts(t *testing.T) {
	c := catalog.NewStatic(domain.Product{Name: "Milkshake", Description: "Cold.", Price: 3.25})

	products := c.ListProducts()
	require.Len(t, products, 1)
	assert.Equal(t, "Milkshake", products[0].Name)
	assert.NotEqual(t, uuid.Nil, products[0].ID)
}
