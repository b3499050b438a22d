package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BadgerShop_Go/internal/domain"
)

func TestList(t *testing.T) {
	products := List()
	require.Len(t, products, 6)

	// IDs are stable - they are referenced from cart cookies
	for i, p := range products {
		assert.Equal(t, i+1, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.Greater(t, p.Price, 0.0)
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	first := List()
	first[0].Name = "mutated"

	again := List()
	assert.Equal(t, "AI Cutlery", again[0].Name)
}

func TestGetProductByID(t *testing.T) {
	p, err := GetProductByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Existential Insurance", p.Name)
	assert.Equal(t, 999.99, p.Price)
}

func TestGetProductByID_NotFound(t *testing.T) {
	_, err := GetProductByID(999)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
