package pricing

import (
	"github.com/shopspring/decimal"
)

// ===========================
// Price Calculator
// ===========================

// CalculateFinalPrice 根據基準價與標準折扣計算最終價格三元組
//
// 純函數、全函數、沒有錯誤路徑。
//
// 各種類的未取整公式（V = VATMultiplier，v = discount.Value()）：
//
//	Percent         net = base.net * (1 - v/100)   gross = base.gross * (1 - v/100)
//	AmountOffGross  net = gross / V                gross = base.gross - v
//	AmountOffNet    net = base.net - v             gross = net * V
//	FixedFinalGross net = gross / V                gross = v
//	FixedFinalNet   net = v                        gross = net * V
//
// 所有種類 tax = gross - net，最後統一經 reconstructFromParts 取整。
//
// 特例：
// - value == 0：不論種類都返回 base.Round2()（零折扣不改變價格）；
//   基準價超過 2 位小數時逐欄取整，net + tax 可能與 gross 差 0.01
// - 種類不在封閉集合內：返回 base.Round2()，壞資料退化為「無折扣」
// - AmountOff 不在此處下限為 0，負價格交由 ValidateDiscount 攔截
func CalculateFinalPrice(base PriceTriple, discount Discount) PriceTriple {
	if discount.IsZero() || !discount.Kind().IsKnown() {
		return base.Round2()
	}

	v := discount.Value()
	var net, gross decimal.Decimal

	switch discount.Kind() {
	case DiscountPercent:
		factor := decimal.NewFromInt(1).Sub(v.Div(hundred))
		net = base.Net().Mul(factor)
		gross = base.Gross().Mul(factor)
	case DiscountAmountOffGross:
		gross = base.Gross().Sub(v)
		net = gross.Div(VATMultiplier)
	case DiscountAmountOffNet:
		net = base.Net().Sub(v)
		gross = net.Mul(VATMultiplier)
	case DiscountFixedFinalGross:
		gross = v
		net = gross.Div(VATMultiplier)
	case DiscountFixedFinalNet:
		net = v
		gross = net.Mul(VATMultiplier)
	}

	return reconstructFromParts(net, gross.Sub(net))
}

// ===========================
// 純量折扣計算（簡化版）
// ===========================

// CalculateDiscountedPrice 對單一金額套用折扣
//
// 用於把 reservation 轉成 legacy protocol 紀錄等只有單一金額的場景，
// 不區分 net / gross，調用者手上是哪個金額就傳哪個。
//
//	total = basePrice * quantity
//	Percent     total * (1 - v/100)
//	AmountOff*  max(0, total - v)
//	FixedFinal* v
//
// 結果四捨五入到 2 位小數。與 CalculateFinalPrice 的取整/下限規則不同，
// 兩者不可合併。
func CalculateDiscountedPrice(basePrice decimal.Decimal, quantity int, discount Discount) decimal.Decimal {
	total := basePrice.Mul(decimal.NewFromInt(int64(quantity)))
	if discount.IsZero() {
		return round2(total)
	}

	v := discount.Value()
	switch discount.Kind() {
	case DiscountPercent:
		return round2(total.Mul(decimal.NewFromInt(1).Sub(v.Div(hundred))))
	case DiscountAmountOffGross, DiscountAmountOffNet:
		return round2(decimal.Max(decimal.Zero, total.Sub(v)))
	case DiscountFixedFinalGross, DiscountFixedFinalNet:
		return round2(v)
	default:
		return round2(total)
	}
}
