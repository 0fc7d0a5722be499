package pricing

import (
	"github.com/shopspring/decimal"
)

// ===========================
// Discount Validator
// ===========================

// ValidationResult 折扣驗證結果
//
// 驗證失敗是「值」而不是 Go error：表單照常顯示計算結果，另外提示欄位錯誤。
type ValidationResult struct {
	IsValid bool
	Err     *DomainError
}

// Message 欄位層級的錯誤訊息；合法時為空字串
func (r ValidationResult) Message() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Message
}

func validResult() ValidationResult {
	return ValidationResult{IsValid: true}
}

func invalidResult(err *DomainError, keyValues ...interface{}) ValidationResult {
	return ValidationResult{IsValid: false, Err: err.withContext(keyValues...)}
}

// ValidateDiscount 依業務規則驗證折扣
//
// totalBase = basePriceNet * quantity。規則依序：
//  1. discount 為 nil 或 value == 0 → 合法
//  2. value < 0 → discount value cannot be negative
//  3. Percent 且 value > 100 → percent discount cannot exceed 100%
//  4. AmountOff* 且 value > totalBase → discount amount cannot exceed base price
//  5. FixedFinal* 且 value > totalBase → final price cannot exceed base price
//  6. 其他種類 → unknown discount type
//
// 注意：規則 4、5 不論折扣金額是 gross 還是 net 計價，一律與淨價 totalBase 比較。
// 這是既有行為，在產品端確認前保持不變。
func ValidateDiscount(discount *Discount, basePriceNet decimal.Decimal, quantity int) ValidationResult {
	if discount == nil || discount.IsZero() {
		return validResult()
	}

	value := discount.Value()
	if value.IsNegative() {
		return invalidResult(ErrDiscountNegative, "value", value.String())
	}

	totalBase := basePriceNet.Mul(decimal.NewFromInt(int64(quantity)))
	kind := discount.Kind()

	switch {
	case kind == DiscountPercent:
		if value.GreaterThan(hundred) {
			return invalidResult(ErrDiscountPercentExceeded, "value", value.String())
		}
	case kind.IsAmountOff():
		if value.GreaterThan(totalBase) {
			return invalidResult(ErrDiscountAmountExceedsBase,
				"value", value.String(),
				"total_base", totalBase.String(),
			)
		}
	case kind.IsFixedFinal():
		if value.GreaterThan(totalBase) {
			return invalidResult(ErrDiscountFinalExceedsBase,
				"value", value.String(),
				"total_base", totalBase.String(),
			)
		}
		// 規則 2 已攔截負數
		if value.IsNegative() {
			return invalidResult(ErrDiscountNegative, "value", value.String())
		}
	default:
		return invalidResult(ErrDiscountUnknownType, "kind", int(kind))
	}

	return validResult()
}
