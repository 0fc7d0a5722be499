package lineitem

import (
	"github.com/jackyeh168/autoservice/src/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// Reduce 純函數 reducer：(collection, command) -> collection
//
// 永遠不失敗。找不到 rowId、參數不合法的命令都是 no-op，返回原集合。
// 每次有效變更都產生新的集合，不修改傳入的 c。
func Reduce(c Collection, cmd Command) Collection {
	switch cmd := cmd.(type) {
	case AddService:
		return addService(c, cmd)

	case RemoveService:
		return c.without(cmd.RowID)

	case UpdateBasePrice:
		base, err := pricing.PriceFromNet(cmd.NetAmount)
		if err != nil {
			return c
		}
		return c.replace(cmd.RowID, func(item LineItem) LineItem {
			return item.withBasePrice(base)
		})

	case UpdateDiscountType:
		return c.replace(cmd.RowID, func(item LineItem) LineItem {
			return item.withDiscount(pricing.NewDiscount(cmd.Kind, decimal.Zero))
		})

	case SelectDiscountKind:
		return c.replace(cmd.RowID, func(item LineItem) LineItem {
			value := pricing.InitialDiscountValue(cmd.Kind, item.basePrice)
			return item.withDiscount(pricing.NewDiscount(cmd.Kind, value))
		})

	case UpdateDiscountValue:
		return c.replace(cmd.RowID, func(item LineItem) LineItem {
			return item.withDiscount(item.discount.WithValue(cmd.Value))
		})

	case UpdateServiceNote:
		return c.replace(cmd.RowID, func(item LineItem) LineItem {
			return item.withNote(cmd.Note)
		})

	case UpdateQuantity:
		if cmd.Quantity < 1 {
			return c
		}
		return c.replace(cmd.RowID, func(item LineItem) LineItem {
			return item.withQuantity(cmd.Quantity)
		})

	case ReconcileServiceID:
		if cmd.ServiceID.IsEmpty() {
			return c
		}
		return c.replace(cmd.RowID, func(item LineItem) LineItem {
			return item.withServiceID(cmd.ServiceID)
		})
	}

	return c
}

func addService(c Collection, cmd AddService) Collection {
	if cmd.RowID.IsEmpty() || c.Contains(cmd.RowID) {
		return c
	}

	quantity := cmd.Quantity
	if quantity < 1 {
		quantity = 1
	}

	return c.appended(newLineItemUnchecked(
		cmd.RowID,
		cmd.ServiceID,
		cmd.Name,
		quantity,
		cmd.BasePrice,
		cmd.Discount,
		cmd.Note,
	))
}
