package lineitem

import (
	"github.com/jackyeh168/autoservice/src/internal/domain/pricing"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ===========================
// Store 明細編輯狀態
// ===========================

// ServiceDraft 尚未有 rowId 與最終價的服務（新增時的輸入）
type ServiceDraft struct {
	ServiceID ServiceID
	Name      string
	Quantity  int
	BasePrice pricing.PriceTriple
	Discount  pricing.Discount
}

// FromCatalog 目錄服務的預設草稿：數量 1、無折扣
func FromCatalog(id ServiceID, name string, price pricing.PriceTriple) ServiceDraft {
	return ServiceDraft{
		ServiceID: id,
		Name:      name,
		Quantity:  1,
		BasePrice: price,
		Discount:  pricing.NoDiscount(),
	}
}

// Store 持有一份明細集合，所有變更經 Reduce 套用
//
// 由建立它的表單單獨擁有，不在多個 goroutine 間共享。
// 每個變更都整份替換集合，並返回變更後的合計。
type Store struct {
	items Collection
}

// NewStore 以既有集合為初始狀態（可為 EmptyCollection()）
func NewStore(seed Collection) *Store {
	return &Store{items: seed}
}

// Dispatch 套用任意命令
func (s *Store) Dispatch(cmd Command) Totals {
	s.items = Reduce(s.items, cmd)
	return s.items.CalculateTotals()
}

// AddService 產生新的 rowId 並把服務加到尾端
//
// 同一個服務 id 加兩次會得到兩列獨立的明細。
func (s *Store) AddService(draft ServiceDraft, note *string) (RowID, Totals) {
	rowID := NewRowID()
	totals := s.Dispatch(AddService{
		RowID:     rowID,
		ServiceID: draft.ServiceID,
		Name:      draft.Name,
		Quantity:  draft.Quantity,
		BasePrice: draft.BasePrice,
		Discount:  draft.Discount,
		Note:      note,
	})
	return rowID, totals
}

// RemoveService 移除一列，rowId 不存在時不做任何事
func (s *Store) RemoveService(rowID RowID) Totals {
	return s.Dispatch(RemoveService{RowID: rowID})
}

// UpdateBasePrice 以新的淨價重新推導基準價並重算最終價
func (s *Store) UpdateBasePrice(rowID RowID, netAmount decimal.Decimal) Totals {
	return s.Dispatch(UpdateBasePrice{RowID: rowID, NetAmount: netAmount})
}

// UpdateDiscountType 更換折扣種類，折扣值歸零
func (s *Store) UpdateDiscountType(rowID RowID, kind pricing.DiscountKind) Totals {
	return s.Dispatch(UpdateDiscountType{RowID: rowID, Kind: kind})
}

// SelectDiscountKind 更換折扣種類，FixedFinal 類從基準價開始
func (s *Store) SelectDiscountKind(rowID RowID, kind pricing.DiscountKind) Totals {
	return s.Dispatch(SelectDiscountKind{RowID: rowID, Kind: kind})
}

// UpdateDiscountValue 更新折扣值
//
// 不驗證；不合法的值照樣重算，由調用者另外呼叫 Validate 顯示提示。
func (s *Store) UpdateDiscountValue(rowID RowID, value decimal.Decimal) Totals {
	return s.Dispatch(UpdateDiscountValue{RowID: rowID, Value: value})
}

// UpdateServiceNote 替換備註，空字串清除備註
func (s *Store) UpdateServiceNote(rowID RowID, note string) Totals {
	return s.Dispatch(UpdateServiceNote{RowID: rowID, Note: lo.ToPtr(note)})
}

// UpdateQuantity 更新數量，< 1 時不做任何事
func (s *Store) UpdateQuantity(rowID RowID, quantity int) Totals {
	return s.Dispatch(UpdateQuantity{RowID: rowID, Quantity: quantity})
}

// ReconcileServiceID 以目錄 id 取代自訂服務的合成 id
func (s *Store) ReconcileServiceID(rowID RowID, serviceID ServiceID) Totals {
	return s.Dispatch(ReconcileServiceID{RowID: rowID, ServiceID: serviceID})
}

// ===========================
// 查詢
// ===========================

// Snapshot 目前的集合（不可變，可安全交給其他讀者）
func (s *Store) Snapshot() Collection {
	return s.items
}

// Items 目前的明細列副本
func (s *Store) Items() []LineItem {
	return s.items.Items()
}

// CalculateTotals 雙稅基合計
func (s *Store) CalculateTotals() Totals {
	return s.items.CalculateTotals()
}

// CalculateNetTotals 淨價合計
func (s *Store) CalculateNetTotals() NetTotals {
	return s.items.CalculateNetTotals()
}

// Validate 驗證指定列；rowId 不存在時 ok 為 false
func (s *Store) Validate(rowID RowID) (result pricing.ValidationResult, ok bool) {
	item, ok := s.items.Find(rowID)
	if !ok {
		return pricing.ValidationResult{}, false
	}
	return item.Validate(), true
}

// ValidateAll 驗證所有列
func (s *Store) ValidateAll() []RowValidation {
	return s.items.ValidateAll()
}
