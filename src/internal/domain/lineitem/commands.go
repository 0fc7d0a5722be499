package lineitem

import (
	"github.com/jackyeh168/autoservice/src/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// ===========================
// Reducer 命令
// ===========================

// Command 可套用到 Collection 的命令
//
// 封閉集合：只有本檔定義的類型實作此介面。
type Command interface {
	isCommand()
}

// AddService 在尾端新增一列
//
// RowID 由調用者（通常是 Store）產生；已存在的 RowID 不會被覆蓋。
// Quantity < 1 時視為 1；Discount 的零值即無折扣。
type AddService struct {
	RowID     RowID
	ServiceID ServiceID
	Name      string
	Quantity  int
	BasePrice pricing.PriceTriple
	Discount  pricing.Discount
	Note      *string
}

// RemoveService 移除一列
type RemoveService struct {
	RowID RowID
}

// UpdateBasePrice 以新的淨價重新推導基準價，負數不套用
type UpdateBasePrice struct {
	RowID     RowID
	NetAmount decimal.Decimal
}

// UpdateDiscountType 更換折扣種類並把折扣值歸零
type UpdateDiscountType struct {
	RowID RowID
	Kind  pricing.DiscountKind
}

// SelectDiscountKind 下拉選單切換種類：值改為 InitialDiscountValue
type SelectDiscountKind struct {
	RowID RowID
	Kind  pricing.DiscountKind
}

// UpdateDiscountValue 更新折扣值（不做驗證）
type UpdateDiscountValue struct {
	RowID RowID
	Value decimal.Decimal
}

// UpdateServiceNote 替換備註；nil 或空字串清除備註
type UpdateServiceNote struct {
	RowID RowID
	Note  *string
}

// UpdateQuantity 更新數量，< 1 不套用
type UpdateQuantity struct {
	RowID    RowID
	Quantity int
}

// ReconcileServiceID 自訂服務保存後換成目錄 id，保留 rowId、位置與編輯內容
type ReconcileServiceID struct {
	RowID     RowID
	ServiceID ServiceID
}

func (AddService) isCommand()          {}
func (RemoveService) isCommand()       {}
func (UpdateBasePrice) isCommand()     {}
func (UpdateDiscountType) isCommand()  {}
func (SelectDiscountKind) isCommand()  {}
func (UpdateDiscountValue) isCommand() {}
func (UpdateServiceNote) isCommand()   {}
func (UpdateQuantity) isCommand()      {}
func (ReconcileServiceID) isCommand()  {}
