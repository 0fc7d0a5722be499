package servicelist

import (
	"errors"
	"fmt"

	validator "github.com/go-playground/validator/v10"
	"github.com/jackyeh168/autoservice/src/internal/domain/lineitem"
	"github.com/jackyeh168/autoservice/src/internal/domain/servicelist"
	"github.com/jackyeh168/autoservice/src/internal/domain/shared"
	"github.com/rs/zerolog"
)

// ===========================
// SubmitServiceList Use Case
// ===========================

// SubmitServiceListCommand 提交服務清單的命令
//
// Items 為表單 Store 的快照（Store.Snapshot()）。
type SubmitServiceListCommand struct {
	OwnerKind string `validate:"required,oneof=reservation visit protocol"`
	OwnerID   string `validate:"required"`
	Items     lineitem.Collection
}

// SubmitServiceListResult 提交結果
type SubmitServiceListResult struct {
	ListID    string
	Created   bool
	ItemCount int
	Totals    lineitem.Totals
}

// SubmitServiceListUseCase 提交服務清單 Use Case
//
// 職責：
// 1. 驗證命令欄位
// 2. 擁有者沒有清單時建立，否則整份替換明細（同一事務）
// 3. 提交後發布領域事件並記錄日誌
//
// 任一列折扣不合法時返回 servicelist.ErrInvalidLineItems（Context 帶 row_id、reason），不寫入任何資料。
type SubmitServiceListUseCase struct {
	listRepo  servicelist.ServiceListRepository
	txManager shared.TransactionManager
	publisher shared.EventPublisher
	validate  *validator.Validate
	logger    zerolog.Logger
}

// NewSubmitServiceListUseCase 創建 Use Case 實例
func NewSubmitServiceListUseCase(
	repo servicelist.ServiceListRepository,
	txManager shared.TransactionManager,
	publisher shared.EventPublisher,
	validate *validator.Validate,
	logger zerolog.Logger,
) *SubmitServiceListUseCase {
	return &SubmitServiceListUseCase{
		listRepo:  repo,
		txManager: txManager,
		publisher: publisher,
		validate:  validate,
		logger:    logger,
	}
}

// Execute 執行提交
//
// 錯誤處理：
// - validator.ValidationErrors: 命令欄位不合法
// - ErrInvalidOwner: 擁有者種類或 id 無效
// - ErrInvalidLineItems: 至少一列折扣不合法
// - 其他 Repository 錯誤：添加上下文後返回
//
// 事件在事務提交後發布；發布失敗只記錄 warn，不影響返回值。
func (uc *SubmitServiceListUseCase) Execute(cmd SubmitServiceListCommand) (*SubmitServiceListResult, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid submit command: %w", err)
	}

	owner, err := parseOwner(cmd.OwnerKind, cmd.OwnerID)
	if err != nil {
		return nil, err
	}

	var (
		list    *servicelist.ServiceList
		created bool
	)
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		existing, err := uc.listRepo.FindByOwner(ctx, owner)
		switch {
		case errors.Is(err, servicelist.ErrListNotFound):
			list, err = servicelist.NewServiceList(owner, cmd.Items)
			if err != nil {
				return err
			}
			created = true
			if err := uc.listRepo.Save(ctx, list); err != nil {
				return fmt.Errorf("failed to save service list: %w", err)
			}
			return nil

		case err != nil:
			return fmt.Errorf("failed to load service list: %w", err)
		}

		if err := existing.ReplaceItems(cmd.Items); err != nil {
			return err
		}
		list = existing
		if err := uc.listRepo.Update(ctx, list); err != nil {
			return fmt.Errorf("failed to update service list: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	events := list.PullEvents()
	if err := uc.publisher.PublishBatch(events); err != nil {
		uc.logger.Warn().Err(err).
			Str("list_id", list.ListID().String()).
			Int("events", len(events)).
			Msg("failed to publish service list events")
	}

	totals := list.Totals()
	uc.logger.Info().
		Str("owner_kind", owner.Kind().String()).
		Str("owner_id", owner.ID()).
		Str("list_id", list.ListID().String()).
		Bool("created", created).
		Int("items", list.Items().Len()).
		Str("total_final_gross", totals.TotalFinalGross.StringFixed(2)).
		Msg("service list submitted")

	return &SubmitServiceListResult{
		ListID:    list.ListID().String(),
		Created:   created,
		ItemCount: list.Items().Len(),
		Totals:    totals,
	}, nil
}
