package persistence

import (
	"testing"

	"github.com/jackyeh168/autoservice/src/internal/domain/lineitem"
	"github.com/jackyeh168/autoservice/src/internal/domain/pricing"
	"github.com/jackyeh168/autoservice/src/internal/domain/servicelist"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ===========================
// 測試輔助函數
// ===========================

// setupTestDB 創建測試用的 SQLite in-memory 資料庫
//
// 連線池限制為 1：":memory:" 每條連線各自一個資料庫。
// 返回清理函數，測試結束時調用。
func setupTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	cleanup := func() {
		_ = sqlDB.Close()
	}
	return db, cleanup
}

// newTestItem 建立淨價 net、指定折扣的明細列
func newTestItem(t *testing.T, serviceID, net string, discount pricing.Discount) lineitem.LineItem {
	t.Helper()
	base, err := pricing.PriceFromNet(decimal.RequireFromString(net))
	require.NoError(t, err)
	item, err := lineitem.NewLineItem(lineitem.NewRowID(), lineitem.ServiceID(serviceID), "Service "+serviceID, 1, base, discount, nil)
	require.NoError(t, err)
	return item
}

// newTestList 為擁有者建立含指定明細的新清單（事件已清空）
func newTestList(t *testing.T, kind servicelist.OwnerKind, ownerID string, items ...lineitem.LineItem) *servicelist.ServiceList {
	t.Helper()
	owner, err := servicelist.NewOwnerRef(kind, ownerID)
	require.NoError(t, err)
	collection, err := lineitem.NewCollection(items...)
	require.NoError(t, err)
	list, err := servicelist.NewServiceList(owner, collection)
	require.NoError(t, err)
	list.PullEvents()
	return list
}
