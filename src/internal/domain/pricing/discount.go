package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ===========================
// DiscountKind 標準折扣種類
// ===========================

// DiscountKind 標準（canonical）折扣種類，計算器與驗證器只認這一套
//
// 零值為 DiscountPercent，因此 Discount 的零值即「無折扣」Percent(0)。
type DiscountKind int

const (
	// DiscountPercent 百分比折扣，value 為 0–100
	DiscountPercent DiscountKind = iota
	// DiscountAmountOffGross 從含稅價扣除固定金額
	DiscountAmountOffGross
	// DiscountAmountOffNet 從淨價扣除固定金額
	DiscountAmountOffNet
	// DiscountFixedFinalGross 直接指定最終含稅價
	DiscountFixedFinalGross
	// DiscountFixedFinalNet 直接指定最終淨價
	DiscountFixedFinalNet
)

// AllDiscountKinds 依宣告順序列出所有標準折扣種類
func AllDiscountKinds() []DiscountKind {
	return []DiscountKind{
		DiscountPercent,
		DiscountAmountOffGross,
		DiscountAmountOffNet,
		DiscountFixedFinalGross,
		DiscountFixedFinalNet,
	}
}

// IsKnown 是否為封閉集合中的成員
func (k DiscountKind) IsKnown() bool {
	return k >= DiscountPercent && k <= DiscountFixedFinalNet
}

// IsAmountOff 減價金額類（AmountOffGross / AmountOffNet）
func (k DiscountKind) IsAmountOff() bool {
	return k == DiscountAmountOffGross || k == DiscountAmountOffNet
}

// IsFixedFinal 指定最終價類（FixedFinalGross / FixedFinalNet）
func (k DiscountKind) IsFixedFinal() bool {
	return k == DiscountFixedFinalGross || k == DiscountFixedFinalNet
}

// String 標準 taxonomy 的線上字串
func (k DiscountKind) String() string {
	if s, ok := canonicalNames[k]; ok {
		return s
	}
	return fmt.Sprintf("DiscountKind(%d)", int(k))
}

// ===========================
// Discount 值對象
// ===========================

// Discount 標準折扣 { kind, value }
//
// value 的意義依 kind 而定：Percent 為百分比，其餘為金額。
// 建構時不做驗證：表單允許暫時輸入不合法的值，合法性由 ValidateDiscount 另外判斷。
type Discount struct {
	kind  DiscountKind
	value decimal.Decimal
}

// NewDiscount 建構折扣
func NewDiscount(kind DiscountKind, value decimal.Decimal) Discount {
	return Discount{kind: kind, value: value}
}

// NoDiscount 無折扣，即 Percent(0)；新加入的目錄服務預設使用
func NoDiscount() Discount {
	return Discount{kind: DiscountPercent, value: decimal.Zero}
}

// PercentOff Percent(v)
func PercentOff(v decimal.Decimal) Discount {
	return NewDiscount(DiscountPercent, v)
}

// AmountOffGross AmountOffGross(v)
func AmountOffGross(v decimal.Decimal) Discount {
	return NewDiscount(DiscountAmountOffGross, v)
}

// AmountOffNet AmountOffNet(v)
func AmountOffNet(v decimal.Decimal) Discount {
	return NewDiscount(DiscountAmountOffNet, v)
}

// FixedFinalGross FixedFinalGross(v)
func FixedFinalGross(v decimal.Decimal) Discount {
	return NewDiscount(DiscountFixedFinalGross, v)
}

// FixedFinalNet FixedFinalNet(v)
func FixedFinalNet(v decimal.Decimal) Discount {
	return NewDiscount(DiscountFixedFinalNet, v)
}

// Kind 折扣種類
func (d Discount) Kind() DiscountKind {
	return d.kind
}

// Value 折扣值
func (d Discount) Value() decimal.Decimal {
	return d.value
}

// IsZero value == 0；任何種類的零值折扣都不改變價格
func (d Discount) IsZero() bool {
	return d.value.IsZero()
}

// WithKind 換種類，保留 value
func (d Discount) WithKind(kind DiscountKind) Discount {
	return Discount{kind: kind, value: d.value}
}

// WithValue 換 value，保留種類
func (d Discount) WithValue(value decimal.Decimal) Discount {
	return Discount{kind: d.kind, value: value}
}

// Equals 種類相同且數值相等
func (d Discount) Equals(other Discount) bool {
	return d.kind == other.kind && d.value.Equal(other.value)
}

// String 除錯用表示，例如 PERCENT(10)
func (d Discount) String() string {
	return fmt.Sprintf("%s(%s)", d.kind, d.value.String())
}

// InitialDiscountValue 在下拉選單切換種類時的初始值
//
// Percent / AmountOff 類：0；
// FixedFinalGross：服務本身的含稅基準價；FixedFinalNet：淨基準價。
// 讓指定最終價的選項從「無折扣」位置開始。
func InitialDiscountValue(kind DiscountKind, base PriceTriple) decimal.Decimal {
	switch kind {
	case DiscountFixedFinalGross:
		return base.Gross()
	case DiscountFixedFinalNet:
		return base.Net()
	default:
		return decimal.Zero
	}
}
