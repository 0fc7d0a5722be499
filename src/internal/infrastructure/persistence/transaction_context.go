package persistence

import (
	"github.com/jackyeh168/autoservice/src/internal/domain/shared"
	"gorm.io/gorm"
)

// ===========================
// GORM TransactionContext
// ===========================

// gormTransactionContext 包裝 *gorm.DB 的事務上下文
//
// 只在 Infrastructure Layer 內部解包；Domain Layer 看到的是標記介面。
type gormTransactionContext struct {
	db *gorm.DB
}

// NewGORMTransactionContext 以既有連線（或事務）建立上下文
func NewGORMTransactionContext(db *gorm.DB) shared.TransactionContext {
	return &gormTransactionContext{db: db}
}

// GetDB 事務中的 *gorm.DB
func (ctx *gormTransactionContext) GetDB() *gorm.DB {
	return ctx.db
}

// dbFrom 從上下文取出 *gorm.DB；nil 或其他實作時退回 fallback（auto-commit）
func dbFrom(ctx shared.TransactionContext, fallback *gorm.DB) *gorm.DB {
	if gormCtx, ok := ctx.(*gormTransactionContext); ok && gormCtx.db != nil {
		return gormCtx.db
	}
	return fallback
}

// ===========================
// GORM TransactionManager
// ===========================

// GORMTransactionManager 以 gorm.DB.Transaction 實作 shared.TransactionManager
//
// fn 返回錯誤時回滾；fn panic 時回滾後重新 panic；否則提交。
type GORMTransactionManager struct {
	db *gorm.DB
}

// NewGORMTransactionManager 建立事務管理器
func NewGORMTransactionManager(db *gorm.DB) *GORMTransactionManager {
	return &GORMTransactionManager{db: db}
}

// InTransaction 在單一資料庫事務中執行 fn
func (m *GORMTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGORMTransactionContext(tx))
	})
}
