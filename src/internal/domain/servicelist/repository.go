package servicelist

import "github.com/jackyeh168/autoservice/src/internal/domain/shared"

// ServiceListRepository 服務清單倉儲介面
//
// Domain Layer 定義，Infrastructure Layer 實作。
// 寫入操作必須在 TransactionManager 提供的 ctx 中執行；讀取可傳 nil。
//
//	txManager.InTransaction(func(ctx shared.TransactionContext) error {
//	    list, err := repo.FindByOwner(ctx, owner)
//	    ...
//	    return repo.Update(ctx, list)
//	})
type ServiceListRepository interface {
	// Save 保存新清單
	// 錯誤：ErrListAlreadyExists（擁有者已有清單）
	Save(ctx shared.TransactionContext, list *ServiceList) error

	// FindByID 依清單 ID 查找，找不到時返回 ErrListNotFound
	FindByID(ctx shared.TransactionContext, listID ListID) (*ServiceList, error)

	// FindByOwner 依擁有者查找，找不到時返回 ErrListNotFound
	FindByOwner(ctx shared.TransactionContext, owner OwnerRef) (*ServiceList, error)

	// Update 更新既有清單並整份替換明細
	// 錯誤：ErrListNotFound（清單不存在）
	Update(ctx shared.TransactionContext, list *ServiceList) error
}
