package servicelist

import (
	"fmt"

	validator "github.com/go-playground/validator/v10"
	"github.com/jackyeh168/autoservice/src/internal/domain/lineitem"
	"github.com/jackyeh168/autoservice/src/internal/domain/pricing"
	"github.com/jackyeh168/autoservice/src/internal/domain/servicelist"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ===========================
// ConvertReservationToProtocol Use Case
// ===========================

// ConvertReservationCommand 將預約的服務清單轉成 protocol 明細
type ConvertReservationCommand struct {
	ReservationID string `validate:"required"`
}

// ProtocolLine 舊版 protocol 表單的一列
//
// DiscountType 為 legacy 字串（PERCENTAGE / AMOUNT / FIXED_PRICE）。
// UnitPrice 是含稅單價；FinalPrice 由 CalculateDiscountedPrice 以單一金額計算。
type ProtocolLine struct {
	ServiceID     string
	Name          string
	Quantity      int
	DiscountType  string
	DiscountValue decimal.Decimal
	UnitPrice     decimal.Decimal
	FinalPrice    decimal.Decimal
	Note          *string
}

// ConvertReservationResult 轉換結果
type ConvertReservationResult struct {
	ReservationID string
	Lines         []ProtocolLine
	Total         decimal.Decimal
}

// ConvertReservationToProtocolUseCase 預約轉 protocol Use Case
//
// 唯讀：只產生 protocol 明細，不保存。
// 折扣種類收窄為 legacy，net/gross 的區分會遺失。
type ConvertReservationToProtocolUseCase struct {
	listRepo servicelist.ServiceListRepository
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewConvertReservationToProtocolUseCase 創建 Use Case 實例
func NewConvertReservationToProtocolUseCase(
	repo servicelist.ServiceListRepository,
	validate *validator.Validate,
	logger zerolog.Logger,
) *ConvertReservationToProtocolUseCase {
	return &ConvertReservationToProtocolUseCase{
		listRepo: repo,
		validate: validate,
		logger:   logger,
	}
}

// Execute 執行轉換
//
// 錯誤處理：
// - validator.ValidationErrors: ReservationID 為空
// - ErrListNotFound: 預約沒有服務清單
func (uc *ConvertReservationToProtocolUseCase) Execute(cmd ConvertReservationCommand) (*ConvertReservationResult, error) {
	if err := uc.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("invalid convert command: %w", err)
	}

	owner, err := servicelist.NewOwnerRef(servicelist.OwnerReservation, cmd.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse reservation: %w", err)
	}

	list, err := uc.listRepo.FindByOwner(nil, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservation service list: %w", err)
	}

	lines := lo.Map(list.Items().Items(), func(item lineitem.LineItem, _ int) ProtocolLine {
		return toProtocolLine(item)
	})
	total := lo.Reduce(lines, func(sum decimal.Decimal, line ProtocolLine, _ int) decimal.Decimal {
		return sum.Add(line.FinalPrice)
	}, decimal.Zero)

	uc.logger.Info().
		Str("owner_kind", owner.Kind().String()).
		Str("owner_id", owner.ID()).
		Int("items", len(lines)).
		Str("total", total.StringFixed(2)).
		Msg("reservation converted to protocol lines")

	return &ConvertReservationResult{
		ReservationID: owner.ID(),
		Lines:         lines,
		Total:         total,
	}, nil
}

func toProtocolLine(item lineitem.LineItem) ProtocolLine {
	unitPrice := item.BasePrice().Gross()
	discount := item.Discount()
	return ProtocolLine{
		ServiceID:     item.ServiceID().String(),
		Name:          item.Name(),
		Quantity:      item.Quantity(),
		DiscountType:  pricing.NarrowToLegacy(discount.Kind()).String(),
		DiscountValue: discount.Value(),
		UnitPrice:     unitPrice,
		FinalPrice:    pricing.CalculateDiscountedPrice(unitPrice, item.Quantity(), discount),
		Note:          item.Note(),
	}
}
