package pricing_test

import (
	"testing"

	"github.com/jackyeh168/autoservice/src/internal/domain/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
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

// standardBase { net: 100.00, gross: 123.00, tax: 23.00 }
func standardBase() pricing.PriceTriple {
	return pricing.MustPriceTriple("100.00", "123.00", "23.00")
}
