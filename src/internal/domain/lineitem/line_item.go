package lineitem

import (
	"github.com/jackyeh168/autoservice/src/internal/domain/pricing"
	"github.com/samber/lo"
)

// ===========================
// LineItem 值對象
// ===========================

// LineItem 一筆服務明細
//
// 不變條件：
// - quantity >= 1
// - finalPrice 永遠等於 CalculateFinalPrice(basePrice, discount)，不可手動設定
//
// 所有變更方法都返回新的 LineItem，原值不變。
type LineItem struct {
	rowID      RowID
	serviceID  ServiceID
	name       string
	quantity   int
	basePrice  pricing.PriceTriple
	discount   pricing.Discount
	finalPrice pricing.PriceTriple
	note       *string
}

// NewLineItem 建構明細列（checked 版本）
//
// 用於從持久化資料重建；新增服務請走 Store.AddService / Reduce(AddService)。
// note 為 nil 或空字串時視為沒有備註。
func NewLineItem(
	rowID RowID,
	serviceID ServiceID,
	name string,
	quantity int,
	basePrice pricing.PriceTriple,
	discount pricing.Discount,
	note *string,
) (LineItem, error) {
	if rowID.IsEmpty() {
		return LineItem{}, ErrInvalidRowID.WithContext("reason", "row id cannot be empty")
	}
	if serviceID.IsEmpty() {
		return LineItem{}, ErrEmptyServiceID.WithContext("row_id", rowID.String())
	}
	if quantity < 1 {
		return LineItem{}, ErrInvalidQuantity.WithContext(
			"row_id", rowID.String(),
			"quantity", quantity,
		)
	}
	if basePrice.IsNegative() {
		return LineItem{}, ErrNegativeBasePrice.WithContext(
			"row_id", rowID.String(),
			"base_price", basePrice.String(),
		)
	}

	return newLineItemUnchecked(rowID, serviceID, name, quantity, basePrice, discount, note), nil
}

// newLineItemUnchecked 內部建構函數，調用者保證參數有效
func newLineItemUnchecked(
	rowID RowID,
	serviceID ServiceID,
	name string,
	quantity int,
	basePrice pricing.PriceTriple,
	discount pricing.Discount,
	note *string,
) LineItem {
	return LineItem{
		rowID:      rowID,
		serviceID:  serviceID,
		name:       name,
		quantity:   quantity,
		basePrice:  basePrice,
		discount:   discount,
		finalPrice: pricing.CalculateFinalPrice(basePrice, discount),
		note:       normalizeNote(note),
	}
}

func normalizeNote(note *string) *string {
	if note == nil {
		return nil
	}
	return lo.EmptyableToPtr(*note)
}

// ===========================
// Getters
// ===========================

func (l LineItem) RowID() RowID                    { return l.rowID }
func (l LineItem) ServiceID() ServiceID            { return l.serviceID }
func (l LineItem) Name() string                    { return l.name }
func (l LineItem) Quantity() int                   { return l.quantity }
func (l LineItem) BasePrice() pricing.PriceTriple  { return l.basePrice }
func (l LineItem) Discount() pricing.Discount      { return l.discount }
func (l LineItem) FinalPrice() pricing.PriceTriple { return l.finalPrice }

// Note 返回備註的副本，沒有備註時為 nil
func (l LineItem) Note() *string {
	if l.note == nil {
		return nil
	}
	return lo.ToPtr(*l.note)
}

// Validate 以本列的淨基準價與數量驗證折扣
func (l LineItem) Validate() pricing.ValidationResult {
	discount := l.discount
	return pricing.ValidateDiscount(&discount, l.basePrice.Net(), l.quantity)
}

// ===========================
// 複製並修改（Reducer 專用）
// ===========================

func (l LineItem) withBasePrice(base pricing.PriceTriple) LineItem {
	l.basePrice = base
	l.finalPrice = pricing.CalculateFinalPrice(base, l.discount)
	return l
}

func (l LineItem) withDiscount(discount pricing.Discount) LineItem {
	l.discount = discount
	l.finalPrice = pricing.CalculateFinalPrice(l.basePrice, discount)
	return l
}

// withNote 只替換備註，不重算價格
func (l LineItem) withNote(note *string) LineItem {
	l.note = normalizeNote(note)
	return l
}

func (l LineItem) withQuantity(quantity int) LineItem {
	l.quantity = quantity
	return l
}

func (l LineItem) withServiceID(id ServiceID) LineItem {
	l.serviceID = id
	return l
}
