package servicelist

import (
	"time"

	"github.com/jackyeh168/autoservice/src/internal/domain/lineitem"
	"github.com/jackyeh168/autoservice/src/internal/domain/shared"
)

// ===========================
// ServiceList 聚合根
// ===========================

// ServiceList 已保存的服務明細清單
//
// 每個擁有者（預約、到店紀錄、protocol）最多一份清單。
// 明細以 lineitem.Collection 保存，每次提交整份替換，不逐列修改。
//
// 業務不變條件：
// - 保存的每一列折扣都通過 ValidateDiscount
// - 明細順序即表單顯示順序
type ServiceList struct {
	listID ListID
	owner  OwnerRef
	items  lineitem.Collection

	createdAt time.Time
	updatedAt time.Time

	events []shared.DomainEvent
}

// NewServiceList 為擁有者建立新清單
//
// 任何一列驗證失敗時返回 ErrInvalidLineItems；成功時發布 servicelist.created。
func NewServiceList(owner OwnerRef, items lineitem.Collection) (*ServiceList, error) {
	if owner.Kind() == "" || owner.ID() == "" {
		return nil, ErrInvalidOwner.WithContext("reason", "owner cannot be empty")
	}
	if err := ensureValid(items); err != nil {
		return nil, err
	}

	now := time.Now()
	list := &ServiceList{
		listID:    NewListID(),
		owner:     owner,
		items:     items,
		createdAt: now,
		updatedAt: now,
		events:    make([]shared.DomainEvent, 0),
	}

	list.addEvent(NewServiceListCreatedEvent(list.listID, owner, items.Len()))
	return list, nil
}

// ReconstructServiceList 從持久化資料重建（不發布事件、不重新驗證折扣）
//
// 已保存的資料可能早於目前的驗證規則，載入時不應拒絕。
func ReconstructServiceList(
	listID ListID,
	owner OwnerRef,
	items lineitem.Collection,
	createdAt time.Time,
	updatedAt time.Time,
) (*ServiceList, error) {
	if listID.IsEmpty() {
		return nil, ErrInvalidListID.WithContext("reason", "list id cannot be empty")
	}
	if owner.Kind() == "" || owner.ID() == "" {
		return nil, ErrInvalidOwner.WithContext("list_id", listID.String())
	}

	return &ServiceList{
		listID:    listID,
		owner:     owner,
		items:     items,
		createdAt: createdAt,
		updatedAt: updatedAt,
		events:    make([]shared.DomainEvent, 0),
	}, nil
}

// ===========================
// Getters
// ===========================

func (l *ServiceList) ListID() ListID             { return l.listID }
func (l *ServiceList) Owner() OwnerRef            { return l.owner }
func (l *ServiceList) Items() lineitem.Collection { return l.items }
func (l *ServiceList) CreatedAt() time.Time       { return l.createdAt }
func (l *ServiceList) UpdatedAt() time.Time       { return l.updatedAt }

// Totals 目前明細的雙稅基合計
func (l *ServiceList) Totals() lineitem.Totals {
	return l.items.CalculateTotals()
}

// ===========================
// 命令方法
// ===========================

// ReplaceItems 以新的明細整份取代
//
// 驗證失敗時返回 ErrInvalidLineItems，清單維持原狀。
// 成功時發布 servicelist.items_replaced。
func (l *ServiceList) ReplaceItems(items lineitem.Collection) error {
	if err := ensureValid(items); err != nil {
		return err
	}

	l.items = items
	l.updatedAt = time.Now()
	l.addEvent(NewServiceListItemsReplacedEvent(
		l.listID,
		l.owner,
		items.Len(),
		items.CalculateTotals().TotalFinalGross,
	))
	return nil
}

func ensureValid(items lineitem.Collection) error {
	invalid, found := items.FirstInvalid()
	if !found {
		return nil
	}
	return ErrInvalidLineItems.WithContext(
		"row_id", invalid.RowID.String(),
		"reason", invalid.Result.Message(),
	)
}

// ===========================
// 事件管理
// ===========================

func (l *ServiceList) addEvent(event shared.DomainEvent) {
	l.events = append(l.events, event)
}

// PullEvents 取出所有待發布事件並清空
func (l *ServiceList) PullEvents() []shared.DomainEvent {
	events := l.events
	l.events = make([]shared.DomainEvent, 0)
	return events
}
