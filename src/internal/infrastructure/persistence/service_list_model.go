package persistence

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ===========================
// GORM Models
// ===========================

// ServiceListModel 服務清單資料表
//
// 約束：
// - list_id 主鍵（UUID 字串）
// - (owner_kind, owner_id) 唯一：每個擁有者最多一份清單
type ServiceListModel struct {
	ListID    string `gorm:"column:list_id;type:varchar(36);primaryKey"`
	OwnerKind string `gorm:"column:owner_kind;type:varchar(16);not null;uniqueIndex:idx_service_lists_owner"`
	OwnerID   string `gorm:"column:owner_id;type:varchar(64);not null;uniqueIndex:idx_service_lists_owner"`

	Items []ServiceListItemModel `gorm:"foreignKey:ListID;references:ListID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定資料表名稱
func (ServiceListModel) TableName() string {
	return "service_lists"
}

// ServiceListItemModel 服務明細資料表
//
// 主鍵為 (list_id, row_id)：由另一份清單帶入的明細沿用相同 row_id。
// discount_type 以擁有者 API 使用的 taxonomy 編碼（extended 或 legacy）。
// base_* 與 discount_value 保留後端給的完整小數；final_* 為寫入時的計算結果，
// 僅供報表查詢，載入時一律重算。
type ServiceListItemModel struct {
	ListID   string `gorm:"column:list_id;type:varchar(36);primaryKey"`
	RowID    string `gorm:"column:row_id;type:varchar(36);primaryKey"`
	Position int    `gorm:"column:position;not null"`

	ServiceID string `gorm:"column:service_id;type:varchar(64);not null"`
	Name      string `gorm:"column:name;type:varchar(255);not null"`
	Quantity  int    `gorm:"column:quantity;not null;default:1;check:quantity >= 1"`

	BaseNet   decimal.Decimal `gorm:"column:base_net;type:numeric(20,8);not null"`
	BaseGross decimal.Decimal `gorm:"column:base_gross;type:numeric(20,8);not null"`
	BaseTax   decimal.Decimal `gorm:"column:base_tax;type:numeric(20,8);not null"`

	DiscountType  string          `gorm:"column:discount_type;type:varchar(32);not null"`
	DiscountValue decimal.Decimal `gorm:"column:discount_value;type:numeric(20,8);not null"`

	FinalNet   decimal.Decimal `gorm:"column:final_net;type:numeric(14,2);not null"`
	FinalGross decimal.Decimal `gorm:"column:final_gross;type:numeric(14,2);not null"`
	FinalTax   decimal.Decimal `gorm:"column:final_tax;type:numeric(14,2);not null"`

	Note *string `gorm:"column:note;type:text"`
}

// TableName 指定資料表名稱
func (ServiceListItemModel) TableName() string {
	return "service_list_items"
}

// Models 需要遷移的所有模型，依外鍵相依順序排列
func Models() []interface{} {
	return []interface{}{
		&ServiceListModel{},
		&ServiceListItemModel{},
	}
}

// AutoMigrate 依序遷移所有模型
func AutoMigrate(db *gorm.DB) error {
	for _, model := range Models() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("automigrate %T: %w", model, err)
		}
	}
	return nil
}
