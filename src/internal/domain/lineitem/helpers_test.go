package lineitem_test

import (
	"testing"

	"github.com/jackyeh168/autoservice/src/internal/domain/lineitem"
	"github.com/jackyeh168/autoservice/src/internal/domain/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, d(expected).Equal(actual), "%s: expected %s, got %s", field, expected, actual.String())
}

func assertPrice(t *testing.T, net, gross, tax string, actual pricing.PriceTriple) {
	t.Helper()
	assertDecimal(t, net, actual.Net(), "net")
	assertDecimal(t, gross, actual.Gross(), "gross")
	assertDecimal(t, tax, actual.Tax(), "tax")
}

// priceFromNet 測試用基準價
func priceFromNet(t *testing.T, net string) pricing.PriceTriple {
	t.Helper()
	p, err := pricing.PriceFromNet(d(net))
	require.NoError(t, err)
	return p
}

// oilChange 標準測試服務：淨價 100.00
func oilChange(t *testing.T) lineitem.ServiceDraft {
	t.Helper()
	return lineitem.FromCatalog("svc-oil", "Oil change", priceFromNet(t, "100"))
}

// seededCollection 建立只有一列的集合，返回集合與該列的 rowId
func seededCollection(t *testing.T, discount pricing.Discount) (lineitem.Collection, lineitem.RowID) {
	t.Helper()
	rowID := lineitem.NewRowID()
	c := lineitem.Reduce(lineitem.EmptyCollection(), lineitem.AddService{
		RowID:     rowID,
		ServiceID: "svc-oil",
		Name:      "Oil change",
		Quantity:  1,
		BasePrice: priceFromNet(t, "100"),
		Discount:  discount,
	})
	require.Equal(t, 1, c.Len())
	return c, rowID
}
