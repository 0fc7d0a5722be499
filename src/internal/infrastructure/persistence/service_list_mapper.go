package persistence

import (
	"github.com/jackyeh168/autoservice/src/internal/domain/lineitem"
	"github.com/jackyeh168/autoservice/src/internal/domain/pricing"
	"github.com/jackyeh168/autoservice/src/internal/domain/servicelist"
)

// ===========================
// Domain ↔ GORM Model 轉換函數
// ===========================

// toServiceList 將 GORM Model 轉換為 Domain 聚合根
//
// 透過 ReconstructServiceList 重建，不發布事件。
// 最終價格不讀 final_* 欄位，一律由基準價與折扣重算。
func toServiceList(model *ServiceListModel) (*servicelist.ServiceList, error) {
	listID, err := servicelist.ListIDFromString(model.ListID)
	if err != nil {
		return nil, servicelist.ErrInvalidListID.WithContext(
			"id", model.ListID,
			"reason", "invalid UUID format in database",
		)
	}

	ownerKind, err := servicelist.ParseOwnerKind(model.OwnerKind)
	if err != nil {
		return nil, err
	}
	owner, err := servicelist.NewOwnerRef(ownerKind, model.OwnerID)
	if err != nil {
		return nil, err
	}

	taxonomy := ownerKind.DiscountTaxonomy()
	items := make([]lineitem.LineItem, 0, len(model.Items))
	for i := range model.Items {
		item, err := toLineItem(&model.Items[i], taxonomy)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	collection, err := lineitem.NewCollection(items...)
	if err != nil {
		return nil, servicelist.ErrCorruptedItem.WithContext(
			"list_id", model.ListID,
			"reason", err.Error(),
		)
	}

	return servicelist.ReconstructServiceList(listID, owner, collection, model.CreatedAt, model.UpdatedAt)
}

// toLineItem 重建單一明細列
//
// 無法解碼的 discount_type 退回無折扣，該列仍可載入並在表單上修正。
func toLineItem(model *ServiceListItemModel, taxonomy pricing.Taxonomy) (lineitem.LineItem, error) {
	corrupted := func(reason string) error {
		return servicelist.ErrCorruptedItem.WithContext(
			"row_id", model.RowID,
			"list_id", model.ListID,
			"reason", reason,
		)
	}

	rowID, err := lineitem.RowIDFromString(model.RowID)
	if err != nil {
		return lineitem.LineItem{}, corrupted("invalid row id")
	}
	serviceID, err := lineitem.ServiceIDFromString(model.ServiceID)
	if err != nil {
		return lineitem.LineItem{}, corrupted("empty service id")
	}
	base, err := pricing.NewPriceTriple(model.BaseNet, model.BaseGross, model.BaseTax)
	if err != nil {
		return lineitem.LineItem{}, corrupted(err.Error())
	}

	discount := pricing.NoDiscount()
	if kind, err := pricing.DecodeDiscountKind(taxonomy, model.DiscountType); err == nil {
		discount = pricing.NewDiscount(kind, model.DiscountValue)
	}

	item, err := lineitem.NewLineItem(rowID, serviceID, model.Name, model.Quantity, base, discount, model.Note)
	if err != nil {
		return lineitem.LineItem{}, corrupted(err.Error())
	}
	return item, nil
}

// toServiceListModel 將 Domain 聚合根轉換為 GORM Model
//
// discount_type 以擁有者的 taxonomy 編碼；protocol 走 legacy，會失去 net/gross 區分。
func toServiceListModel(list *servicelist.ServiceList) (*ServiceListModel, error) {
	listID := list.ListID().String()
	taxonomy := list.Owner().Kind().DiscountTaxonomy()

	items := list.Items().Items()
	models := make([]ServiceListItemModel, 0, len(items))
	for position, item := range items {
		discountType, err := pricing.EncodeDiscountKind(taxonomy, item.Discount().Kind())
		if err != nil {
			return nil, err
		}
		models = append(models, toServiceListItemModel(listID, position, item, discountType))
	}

	return &ServiceListModel{
		ListID:    listID,
		OwnerKind: list.Owner().Kind().String(),
		OwnerID:   list.Owner().ID(),
		Items:     models,
		CreatedAt: list.CreatedAt(),
		UpdatedAt: list.UpdatedAt(),
	}, nil
}

func toServiceListItemModel(listID string, position int, item lineitem.LineItem, discountType string) ServiceListItemModel {
	base := item.BasePrice()
	final := item.FinalPrice()
	return ServiceListItemModel{
		RowID:         item.RowID().String(),
		ListID:        listID,
		Position:      position,
		ServiceID:     item.ServiceID().String(),
		Name:          item.Name(),
		Quantity:      item.Quantity(),
		BaseNet:       base.Net(),
		BaseGross:     base.Gross(),
		BaseTax:       base.Tax(),
		DiscountType:  discountType,
		DiscountValue: item.Discount().Value(),
		FinalNet:      final.Net(),
		FinalGross:    final.Gross(),
		FinalTax:      final.Tax(),
		Note:          item.Note(),
	}
}
