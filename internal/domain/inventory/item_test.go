package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	item, err := NewItem(uuid.New(), "Standee", " std-01 ", 25)
	require.NoError(t, err)
	assert.Equal(t, "STD-01", item.ItemCode)
	assert.Equal(t, 25, item.Quantity)

	_, err = NewItem(uuid.Nil, "X", "C", 1)
	assert.Error(t, err)
	_, err = NewItem(uuid.New(), "X", "C", -1)
	assert.Error(t, err)
}

func TestItemAdjust(t *testing.T) {
	item, err := NewItem(uuid.New(), "Banner", "BNR-1", 10)
	require.NoError(t, err)

	require.NoError(t, item.Adjust(-4))
	assert.Equal(t, 6, item.Quantity)

	assert.Error(t, item.Adjust(-7))
	assert.Equal(t, 6, item.Quantity)
}

func TestItemBelowMinStock(t *testing.T) {
	item, err := NewItem(uuid.New(), "Flag", "FLG-1", 3)
	require.NoError(t, err)
	assert.False(t, item.BelowMinStock())

	item.MinStockLevel = 5
	assert.True(t, item.BelowMinStock())
}
