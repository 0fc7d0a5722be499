package servicelist_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jackyeh168/autoservice/src/internal/domain/lineitem"
	"github.com/jackyeh168/autoservice/src/internal/domain/pricing"
	"github.com/jackyeh168/autoservice/src/internal/domain/servicelist"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===========================
// 測試輔助函數
// ===========================

func reservation(t *testing.T, id string) servicelist.OwnerRef {
	t.Helper()
	owner, err := servicelist.NewOwnerRef(servicelist.OwnerReservation, id)
	require.NoError(t, err)
	return owner
}

func collectionWith(t *testing.T, discounts ...pricing.Discount) lineitem.Collection {
	t.Helper()
	base, err := pricing.PriceFromNet(decimal.NewFromInt(100))
	require.NoError(t, err)

	items := make([]lineitem.LineItem, 0, len(discounts))
	for _, discount := range discounts {
		item, err := lineitem.NewLineItem(lineitem.NewRowID(), "svc-1", "Service", 1, base, discount, nil)
		require.NoError(t, err)
		items = append(items, item)
	}
	c, err := lineitem.NewCollection(items...)
	require.NoError(t, err)
	return c
}

// ===========================
// NewServiceList
// ===========================

func TestNewServiceList_Success_EmitsCreatedEvent(t *testing.T) {
	// Arrange
	owner := reservation(t, "R-1")
	items := collectionWith(t, pricing.PercentOff(decimal.NewFromInt(10)), pricing.NoDiscount())

	// Act
	list, err := servicelist.NewServiceList(owner, items)

	// Assert
	require.NoError(t, err)
	assert.False(t, list.ListID().IsEmpty())
	assert.Equal(t, owner, list.Owner())
	assert.Equal(t, 2, list.Items().Len())
	assert.False(t, list.CreatedAt().IsZero())

	events := list.PullEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "servicelist.created", events[0].EventType())
	assert.Equal(t, list.ListID().String(), events[0].AggregateID())
	created, ok := events[0].(*servicelist.ServiceListCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, 2, created.ItemCount())

	assert.Empty(t, list.PullEvents(), "事件只能取出一次")
}

func TestNewServiceList_InvalidItem_ReturnsErrInvalidLineItems(t *testing.T) {
	// Arrange
	items := collectionWith(t, pricing.NoDiscount(), pricing.PercentOff(decimal.NewFromInt(101)))
	badRow := items.RowIDs()[1]

	// Act
	list, err := servicelist.NewServiceList(reservation(t, "R-1"), items)

	// Assert
	assert.Nil(t, list)
	require.ErrorIs(t, err, servicelist.ErrInvalidLineItems)
	var domainErr *servicelist.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, badRow.String(), domainErr.Context["row_id"])
	assert.Equal(t, "percent discount cannot exceed 100%", domainErr.Context["reason"])
}

func TestNewServiceList_EmptyOwner_ReturnsError(t *testing.T) {
	// Act
	_, err := servicelist.NewServiceList(servicelist.OwnerRef{}, lineitem.EmptyCollection())

	// Assert
	assert.ErrorIs(t, err, servicelist.ErrInvalidOwner)
}

func TestNewServiceList_EmptyItems_Allowed(t *testing.T) {
	// Act
	list, err := servicelist.NewServiceList(reservation(t, "R-1"), lineitem.EmptyCollection())

	// Assert
	require.NoError(t, err)
	assert.True(t, list.Totals().TotalFinalGross.IsZero())
}

// ===========================
// ReplaceItems
// ===========================

func TestServiceList_ReplaceItems_EmitsReplacedEvent(t *testing.T) {
	// Arrange
	list, err := servicelist.NewServiceList(reservation(t, "R-1"), lineitem.EmptyCollection())
	require.NoError(t, err)
	list.PullEvents()
	items := collectionWith(t, pricing.PercentOff(decimal.NewFromInt(10)))

	// Act
	err = list.ReplaceItems(items)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, list.Items().Len())

	events := list.PullEvents()
	require.Len(t, events, 1)
	replaced, ok := events[0].(*servicelist.ServiceListItemsReplacedEvent)
	require.True(t, ok)
	assert.Equal(t, "servicelist.items_replaced", replaced.EventType())
	assert.Equal(t, 1, replaced.ItemCount())
	assert.True(t, decimal.RequireFromString("110.70").Equal(replaced.TotalFinalGross()))
}

func TestServiceList_ReplaceItems_Invalid_KeepsPreviousItems(t *testing.T) {
	// Arrange
	original := collectionWith(t, pricing.NoDiscount())
	list, err := servicelist.NewServiceList(reservation(t, "R-1"), original)
	require.NoError(t, err)
	list.PullEvents()

	// Act
	err = list.ReplaceItems(collectionWith(t, pricing.AmountOffNet(decimal.NewFromInt(-1))))

	// Assert
	assert.ErrorIs(t, err, servicelist.ErrInvalidLineItems)
	assert.Equal(t, original.RowIDs(), list.Items().RowIDs())
	assert.Empty(t, list.PullEvents())
}

// ===========================
// ReconstructServiceList
// ===========================

func TestReconstructServiceList_NoEvents(t *testing.T) {
	// Arrange
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	// Act
	list, err := servicelist.ReconstructServiceList(
		servicelist.NewListID(), reservation(t, "R-1"), lineitem.EmptyCollection(), created, created,
	)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, created, list.CreatedAt())
	assert.Empty(t, list.PullEvents())
}

func TestReconstructServiceList_EmptyID_ReturnsError(t *testing.T) {
	// Act
	_, err := servicelist.ReconstructServiceList(
		servicelist.ListID{}, reservation(t, "R-1"), lineitem.EmptyCollection(), time.Now(), time.Now(),
	)

	// Assert
	assert.ErrorIs(t, err, servicelist.ErrInvalidListID)
}

func TestReconstructServiceList_AcceptsItemsFailingCurrentRules(t *testing.T) {
	// Act
	list, err := servicelist.ReconstructServiceList(
		servicelist.NewListID(), reservation(t, "R-1"),
		collectionWith(t, pricing.PercentOff(decimal.NewFromInt(150))),
		time.Now(), time.Now(),
	)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, list.Items().Len())
}
