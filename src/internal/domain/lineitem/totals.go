package lineitem

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ===========================
// 合計
// ===========================

// Totals 雙稅基合計（派生值，不保存）
//
// 逐列加總已取整的價格，只在總和層級再取整一次；不乘以數量。
type Totals struct {
	TotalBaseNet       decimal.Decimal
	TotalBaseGross     decimal.Decimal
	TotalDiscountNet   decimal.Decimal
	TotalDiscountGross decimal.Decimal
	TotalFinalNet      decimal.Decimal
	TotalFinalGross    decimal.Decimal
}

// NetTotals 單一稅基（淨價）合計，預約表單使用
type NetTotals struct {
	TotalBase       decimal.Decimal
	TotalDiscount   decimal.Decimal
	TotalFinalPrice decimal.Decimal
}

// CalculateTotals 計算雙稅基合計
func (c Collection) CalculateTotals() Totals {
	baseNet := sumBy(c.items, func(item LineItem) decimal.Decimal { return item.basePrice.Net() })
	baseGross := sumBy(c.items, func(item LineItem) decimal.Decimal { return item.basePrice.Gross() })
	finalNet := sumBy(c.items, func(item LineItem) decimal.Decimal { return item.finalPrice.Net() })
	finalGross := sumBy(c.items, func(item LineItem) decimal.Decimal { return item.finalPrice.Gross() })

	return Totals{
		TotalBaseNet:       baseNet.Round(2),
		TotalBaseGross:     baseGross.Round(2),
		TotalDiscountNet:   baseNet.Sub(finalNet).Round(2),
		TotalDiscountGross: baseGross.Sub(finalGross).Round(2),
		TotalFinalNet:      finalNet.Round(2),
		TotalFinalGross:    finalGross.Round(2),
	}
}

// CalculateNetTotals 計算淨價合計
func (c Collection) CalculateNetTotals() NetTotals {
	base := sumBy(c.items, func(item LineItem) decimal.Decimal { return item.basePrice.Net() })
	discount := sumBy(c.items, func(item LineItem) decimal.Decimal {
		return item.basePrice.Net().Sub(item.finalPrice.Net())
	})
	final := sumBy(c.items, func(item LineItem) decimal.Decimal { return item.finalPrice.Net() })

	return NetTotals{
		TotalBase:       base.Round(2),
		TotalDiscount:   discount.Round(2),
		TotalFinalPrice: final.Round(2),
	}
}

func sumBy(items []LineItem, field func(LineItem) decimal.Decimal) decimal.Decimal {
	return lo.Reduce(items, func(acc decimal.Decimal, item LineItem, _ int) decimal.Decimal {
		return acc.Add(field(item))
	}, decimal.Zero)
}
