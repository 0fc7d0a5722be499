package shared

// TransactionContext 事務上下文介面
//
// 行為約定（可選事務參與）：
// - ctx != nil：在調用者的事務中執行
// - ctx == nil：auto-commit，僅適用於讀操作
//
// Repository 約束：
// - Save / Update 必須在事務中（ctx 由 TransactionManager 提供）
// - FindByID / FindByOwner 可傳入 nil
//
// 範例：
//
//	txManager.InTransaction(func(ctx TransactionContext) error {
//	    list, _ := repo.FindByOwner(ctx, owner)
//	    list.ReplaceItems(items)
//	    return repo.Update(ctx, list)
//	})
//
// 這是標記介面，不暴露任何方法；GORM 實作位於 infrastructure/persistence。
type TransactionContext interface {
}

// TransactionManager 事務管理器介面
type TransactionManager interface {
	InTransaction(fn func(ctx TransactionContext) error) error
}
