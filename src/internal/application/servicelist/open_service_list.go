package servicelist

import (
	"errors"
	"fmt"

	"github.com/jackyeh168/autoservice/src/internal/domain/lineitem"
	"github.com/jackyeh168/autoservice/src/internal/domain/servicelist"
	"github.com/jackyeh168/autoservice/src/internal/domain/shared"
)

// OpenServiceListQuery 開啟擁有者的服務清單表單
type OpenServiceListQuery struct {
	OwnerKind string
	OwnerID   string
}

// OpenServiceListUseCase 開啟服務清單 Use Case
//
// 以已保存的明細建立可編輯的 lineitem.Store；擁有者尚無清單時返回空的 Store。
type OpenServiceListUseCase struct {
	listRepo servicelist.ServiceListRepository
}

// NewOpenServiceListUseCase 創建 Use Case 實例
func NewOpenServiceListUseCase(repo servicelist.ServiceListRepository) *OpenServiceListUseCase {
	return &OpenServiceListUseCase{listRepo: repo}
}

// Execute 執行查詢（auto-commit 讀取）
func (uc *OpenServiceListUseCase) Execute(query OpenServiceListQuery) (*lineitem.Store, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中執行查詢，ctx 可為 nil
func (uc *OpenServiceListUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	query OpenServiceListQuery,
) (*lineitem.Store, error) {
	owner, err := parseOwner(query.OwnerKind, query.OwnerID)
	if err != nil {
		return nil, err
	}

	list, err := uc.listRepo.FindByOwner(ctx, owner)
	if errors.Is(err, servicelist.ErrListNotFound) {
		return lineitem.NewStore(lineitem.EmptyCollection()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load service list: %w", err)
	}

	return lineitem.NewStore(list.Items()), nil
}

// parseOwner 將命令中的字串轉為 OwnerRef
func parseOwner(kind, id string) (servicelist.OwnerRef, error) {
	ownerKind, err := servicelist.ParseOwnerKind(kind)
	if err != nil {
		return servicelist.OwnerRef{}, fmt.Errorf("failed to parse owner kind: %w", err)
	}
	owner, err := servicelist.NewOwnerRef(ownerKind, id)
	if err != nil {
		return servicelist.OwnerRef{}, fmt.Errorf("failed to parse owner: %w", err)
	}
	return owner, nil
}
