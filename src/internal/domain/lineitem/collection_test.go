package lineitem_test

import (
	"testing"

	"github.com/jackyeh168/autoservice/src/internal/domain/lineitem"
	"github.com/jackyeh168/autoservice/src/internal/domain/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(t *testing.T, rowID lineitem.RowID, net string, discount pricing.Discount) lineitem.LineItem {
	t.Helper()
	item, err := lineitem.NewLineItem(rowID, "svc-1", "Service", 1, priceFromNet(t, net), discount, nil)
	require.NoError(t, err)
	return item
}

func TestNewCollection_KeepsOrder(t *testing.T) {
	// Arrange
	a, b := lineitem.NewRowID(), lineitem.NewRowID()

	// Act
	c, err := lineitem.NewCollection(newItem(t, a, "10", pricing.NoDiscount()), newItem(t, b, "20", pricing.NoDiscount()))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []lineitem.RowID{a, b}, c.RowIDs())
}

func TestNewCollection_DuplicateRowID_ReturnsError(t *testing.T) {
	// Arrange
	rowID := lineitem.NewRowID()

	// Act
	_, err := lineitem.NewCollection(newItem(t, rowID, "10", pricing.NoDiscount()), newItem(t, rowID, "20", pricing.NoDiscount()))

	// Assert
	assert.ErrorIs(t, err, lineitem.ErrDuplicateRowID)
}

func TestCollection_Items_ReturnsCopy(t *testing.T) {
	// Arrange
	c, rowID := seededCollection(t, pricing.NoDiscount())

	// Act
	items := c.Items()
	items[0] = newItem(t, lineitem.NewRowID(), "1", pricing.NoDiscount())

	// Assert
	assert.True(t, c.Contains(rowID))
}

func TestCollection_ZeroValue_IsEmpty(t *testing.T) {
	var c lineitem.Collection

	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.ValidateAll())
	_, ok := c.Find(lineitem.NewRowID())
	assert.False(t, ok)
}

func TestCollection_ValidateAll_ReportsEveryRowInOrder(t *testing.T) {
	// Arrange
	ok1, bad, ok2 := lineitem.NewRowID(), lineitem.NewRowID(), lineitem.NewRowID()
	c, err := lineitem.NewCollection(
		newItem(t, ok1, "100", pricing.PercentOff(d("10"))),
		newItem(t, bad, "100", pricing.PercentOff(d("101"))),
		newItem(t, ok2, "100", pricing.AmountOffNet(d("100"))),
	)
	require.NoError(t, err)

	// Act
	results := c.ValidateAll()

	// Assert
	require.Len(t, results, 3)
	assert.Equal(t, ok1, results[0].RowID)
	assert.True(t, results[0].Result.IsValid)
	assert.Equal(t, bad, results[1].RowID)
	assert.False(t, results[1].Result.IsValid)
	assert.Equal(t, "percent discount cannot exceed 100%", results[1].Result.Message())
	assert.True(t, results[2].Result.IsValid)

	first, found := c.FirstInvalid()
	require.True(t, found)
	assert.Equal(t, bad, first.RowID)
}

func TestCollection_FirstInvalid_AllValid(t *testing.T) {
	// Arrange
	c, _ := seededCollection(t, pricing.PercentOff(d("50")))

	// Act
	_, found := c.FirstInvalid()

	// Assert
	assert.False(t, found)
}
