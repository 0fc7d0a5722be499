package persistence

import (
	"errors"
	"strings"

	"github.com/jackyeh168/autoservice/src/internal/domain/servicelist"
	"github.com/jackyeh168/autoservice/src/internal/domain/shared"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// ===========================
// GORM ServiceListRepository 實作
// ===========================

// GORMServiceListRepository GORM 實作的服務清單倉儲
//
// 職責：
// - Domain ↔ GORM 轉換（service_list_mapper.go）
// - 明細依 position 排序載入
// - GORM 錯誤映射為 servicelist.DomainError
type GORMServiceListRepository struct {
	db *gorm.DB
}

// NewServiceListRepository 創建 GORM Repository 實例
func NewServiceListRepository(db *gorm.DB) servicelist.ServiceListRepository {
	return &GORMServiceListRepository{db: db}
}

// Save 保存新清單（連同所有明細）
//
// 明細不走 GORM 的關聯 upsert，衝突時直接報錯。
// 錯誤：ErrListAlreadyExists（擁有者已有清單，或 list_id 重複）
func (r *GORMServiceListRepository) Save(ctx shared.TransactionContext, list *servicelist.ServiceList) error {
	model, err := toServiceListModel(list)
	if err != nil {
		return err
	}

	err = dbFrom(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(model).Error; err != nil {
			return err
		}
		return r.insertItems(tx, model.Items)
	})
	if err != nil {
		return r.mapError(err)
	}
	return nil
}

// FindByID 根據清單 ID 查找
func (r *GORMServiceListRepository) FindByID(ctx shared.TransactionContext, listID servicelist.ListID) (*servicelist.ServiceList, error) {
	var model ServiceListModel
	err := r.withItems(dbFrom(ctx, r.db)).
		First(&model, "list_id = ?", listID.String()).Error
	if err != nil {
		return nil, r.mapError(err)
	}
	return toServiceList(&model)
}

// FindByOwner 根據擁有者查找（owner_kind + owner_id 唯一）
func (r *GORMServiceListRepository) FindByOwner(ctx shared.TransactionContext, owner servicelist.OwnerRef) (*servicelist.ServiceList, error) {
	var model ServiceListModel
	err := r.withItems(dbFrom(ctx, r.db)).
		Where("owner_kind = ? AND owner_id = ?", owner.Kind().String(), owner.ID()).
		First(&model).Error
	if err != nil {
		return nil, r.mapError(err)
	}
	return toServiceList(&model)
}

// Update 更新清單並整份替換明細
//
// 明細先刪後插；在呼叫者沒有事務時自行開一個，避免留下半份明細。
// RowsAffected = 0 表示清單不存在。
func (r *GORMServiceListRepository) Update(ctx shared.TransactionContext, list *servicelist.ServiceList) error {
	model, err := toServiceListModel(list)
	if err != nil {
		return err
	}

	err = dbFrom(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&ServiceListModel{}).
			Where("list_id = ?", model.ListID).
			Updates(map[string]interface{}{"updated_at": model.UpdatedAt})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("list_id = ?", model.ListID).Delete(&ServiceListItemModel{}).Error; err != nil {
			return err
		}
		return r.insertItems(tx, model.Items)
	})
	if err != nil {
		return r.mapError(err)
	}
	return nil
}

// ===========================
// 私有輔助方法
// ===========================

func (r *GORMServiceListRepository) insertItems(tx *gorm.DB, items []ServiceListItemModel) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

func (r *GORMServiceListRepository) withItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

// uniqueViolationMarkers 各資料庫唯一約束違反的錯誤訊息片段
// SQLite: "UNIQUE constraint failed"；PostgreSQL: "duplicate key value violates unique constraint"
var uniqueViolationMarkers = []string{"UNIQUE constraint", "duplicate key", "Duplicate entry"}

// listConstraintMarkers service_lists 的唯一約束（list_id 主鍵、擁有者唯一索引）
// SQLite 訊息帶 "service_lists.<column>"；PostgreSQL 訊息帶約束名稱
var listConstraintMarkers = []string{"service_lists.", "idx_service_lists_owner", "service_lists_pkey"}

func containsAny(msg string, markers []string) bool {
	return lo.SomeBy(markers, func(marker string) bool {
		return strings.Contains(msg, marker)
	})
}

// mapError 映射 GORM 錯誤到 Domain 錯誤
//
// - gorm.ErrRecordNotFound            → ErrListNotFound
// - service_lists 唯一約束            → ErrListAlreadyExists
// - 已是 DomainError                  → 原樣返回
// - 其他（含明細表的唯一約束）        → ErrRepositoryError
func (r *GORMServiceListRepository) mapError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return servicelist.ErrListNotFound
	}

	var domainErr *servicelist.DomainError
	if errors.As(err, &domainErr) {
		return err
	}

	msg := err.Error()
	if containsAny(msg, uniqueViolationMarkers) && containsAny(msg, listConstraintMarkers) {
		return servicelist.ErrListAlreadyExists.WithContext("database_error", msg)
	}

	return servicelist.ErrRepositoryError.WithContext("database_error", msg)
}
