package pricing

import (
	"fmt"
	"strings"
)

// ===========================
// Discount Taxonomy 適配器
// ===========================
//
// 系統中並存三套折扣種類：
//
//	canonical（5 種）：計算核心唯一接受的表示
//	extended （5 種）：新版表單的下拉選單，與 canonical 一對一
//	legacy   （3 種）：舊版 protocol 表單，不區分 net / gross
//
// 所有 UI 與持久化邊界都只透過本檔的函數對轉，不允許第四套標準出現。

// Taxonomy 折扣種類的編碼體系
type Taxonomy string

const (
	TaxonomyCanonical Taxonomy = "canonical"
	TaxonomyExtended  Taxonomy = "extended"
	TaxonomyLegacy    Taxonomy = "legacy"
)

// unknownDiscountKind 不屬於封閉集合的種類；計算器遇到時返回原價
const unknownDiscountKind DiscountKind = -1

// ===========================
// Extended taxonomy（新版表單）
// ===========================

// ExtendedDiscountKind 新版表單的折扣種類
type ExtendedDiscountKind int

const (
	ExtendedPercentage ExtendedDiscountKind = iota
	ExtendedAmountGross
	ExtendedAmountNet
	ExtendedFixedPriceGross
	ExtendedFixedPriceNet
)

// AllExtendedDiscountKinds 依宣告順序列出
func AllExtendedDiscountKinds() []ExtendedDiscountKind {
	return []ExtendedDiscountKind{
		ExtendedPercentage,
		ExtendedAmountGross,
		ExtendedAmountNet,
		ExtendedFixedPriceGross,
		ExtendedFixedPriceNet,
	}
}

// String extended taxonomy 的線上字串
func (k ExtendedDiscountKind) String() string {
	if s, ok := extendedNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ExtendedDiscountKind(%d)", int(k))
}

// FromExtended extended → canonical（全函數、保序、一對一）
func FromExtended(k ExtendedDiscountKind) DiscountKind {
	switch k {
	case ExtendedPercentage:
		return DiscountPercent
	case ExtendedAmountGross:
		return DiscountAmountOffGross
	case ExtendedAmountNet:
		return DiscountAmountOffNet
	case ExtendedFixedPriceGross:
		return DiscountFixedFinalGross
	case ExtendedFixedPriceNet:
		return DiscountFixedFinalNet
	default:
		return unknownDiscountKind
	}
}

// ToExtended canonical → extended，FromExtended 的反函數
func ToExtended(k DiscountKind) ExtendedDiscountKind {
	switch k {
	case DiscountPercent:
		return ExtendedPercentage
	case DiscountAmountOffGross:
		return ExtendedAmountGross
	case DiscountAmountOffNet:
		return ExtendedAmountNet
	case DiscountFixedFinalGross:
		return ExtendedFixedPriceGross
	case DiscountFixedFinalNet:
		return ExtendedFixedPriceNet
	default:
		return ExtendedDiscountKind(-1)
	}
}

// ===========================
// Legacy taxonomy（舊版 protocol 表單）
// ===========================

// LegacyDiscountKind 舊版表單的折扣種類，不區分稅基
type LegacyDiscountKind int

const (
	LegacyPercentage LegacyDiscountKind = iota
	LegacyAmount
	LegacyFixedPrice
)

// AllLegacyDiscountKinds 依宣告順序列出
func AllLegacyDiscountKinds() []LegacyDiscountKind {
	return []LegacyDiscountKind{LegacyPercentage, LegacyAmount, LegacyFixedPrice}
}

// String legacy taxonomy 的線上字串
func (k LegacyDiscountKind) String() string {
	if s, ok := legacyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("LegacyDiscountKind(%d)", int(k))
}

// FromLegacy legacy → canonical
//
// Amount 與 FixedPrice 沒有稅基資訊，一律取 gross 版本。
// 因此 NarrowToLegacy(AmountOffNet) 再 FromLegacy 會得到 AmountOffGross：
// 舊表單本來就無法忠實保存折扣稅基。
func FromLegacy(k LegacyDiscountKind) DiscountKind {
	switch k {
	case LegacyPercentage:
		return DiscountPercent
	case LegacyAmount:
		return DiscountAmountOffGross
	case LegacyFixedPrice:
		return DiscountFixedFinalGross
	default:
		return unknownDiscountKind
	}
}

// NarrowToLegacy canonical → legacy（有損收窄）
//
// 兩種 AmountOff 合併為 Amount，兩種 FixedFinal 合併為 FixedPrice。
// 不屬於封閉集合的種類收窄為 Percentage，不返回錯誤。
func NarrowToLegacy(k DiscountKind) LegacyDiscountKind {
	switch {
	case k == DiscountPercent:
		return LegacyPercentage
	case k.IsAmountOff():
		return LegacyAmount
	case k.IsFixedFinal():
		return LegacyFixedPrice
	default:
		return LegacyPercentage
	}
}

// ===========================
// 線上字串編解碼
// ===========================

var canonicalNames = map[DiscountKind]string{
	DiscountPercent:         "PERCENT",
	DiscountAmountOffGross:  "AMOUNT_OFF_GROSS",
	DiscountAmountOffNet:    "AMOUNT_OFF_NET",
	DiscountFixedFinalGross: "FIXED_FINAL_GROSS",
	DiscountFixedFinalNet:   "FIXED_FINAL_NET",
}

var extendedNames = map[ExtendedDiscountKind]string{
	ExtendedPercentage:      "PERCENTAGE",
	ExtendedAmountGross:     "AMOUNT_GROSS",
	ExtendedAmountNet:       "AMOUNT_NET",
	ExtendedFixedPriceGross: "FIXED_PRICE_GROSS",
	ExtendedFixedPriceNet:   "FIXED_PRICE_NET",
}

var legacyNames = map[LegacyDiscountKind]string{
	LegacyPercentage: "PERCENTAGE",
	LegacyAmount:     "AMOUNT",
	LegacyFixedPrice: "FIXED_PRICE",
}

// ParseTaxonomy 解析 taxonomy 名稱
func ParseTaxonomy(s string) (Taxonomy, error) {
	t := Taxonomy(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case TaxonomyCanonical, TaxonomyExtended, TaxonomyLegacy:
		return t, nil
	}
	return "", ErrUnknownTaxonomy.WithContext("taxonomy", s)
}

// EncodeDiscountKind 將 canonical 種類編碼成目標 taxonomy 的字串
//
// legacy 方向會經過 NarrowToLegacy（有損）。
func EncodeDiscountKind(taxonomy Taxonomy, k DiscountKind) (string, error) {
	if !k.IsKnown() {
		return "", ErrUnknownDiscountKind.WithContext(
			"taxonomy", string(taxonomy),
			"kind", int(k),
		)
	}

	switch taxonomy {
	case TaxonomyCanonical:
		return canonicalNames[k], nil
	case TaxonomyExtended:
		return extendedNames[ToExtended(k)], nil
	case TaxonomyLegacy:
		return legacyNames[NarrowToLegacy(k)], nil
	}
	return "", ErrUnknownTaxonomy.WithContext("taxonomy", string(taxonomy))
}

// DecodeDiscountKind 將來源 taxonomy 的字串解碼為 canonical 種類
//
// 大小寫不敏感並忽略前後空白；無法辨識時返回 ErrUnknownDiscountKind。
func DecodeDiscountKind(taxonomy Taxonomy, s string) (DiscountKind, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))

	switch taxonomy {
	case TaxonomyCanonical:
		for k, name := range canonicalNames {
			if name == normalized {
				return k, nil
			}
		}
	case TaxonomyExtended:
		for k, name := range extendedNames {
			if name == normalized {
				return FromExtended(k), nil
			}
		}
	case TaxonomyLegacy:
		for k, name := range legacyNames {
			if name == normalized {
				return FromLegacy(k), nil
			}
		}
	default:
		return unknownDiscountKind, ErrUnknownTaxonomy.WithContext("taxonomy", string(taxonomy))
	}

	return unknownDiscountKind, ErrUnknownDiscountKind.WithContext(
		"taxonomy", string(taxonomy),
		"input", s,
	)
}
