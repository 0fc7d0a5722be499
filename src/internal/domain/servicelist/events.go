package servicelist

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ===========================
// ServiceListCreated 領域事件
// ===========================

// ServiceListCreatedEvent 擁有者第一次提交服務清單
type ServiceListCreatedEvent struct {
	eventID    string
	listID     ListID
	owner      OwnerRef
	itemCount  int
	occurredAt time.Time
}

// NewServiceListCreatedEvent 創建清單建立事件
func NewServiceListCreatedEvent(listID ListID, owner OwnerRef, itemCount int) *ServiceListCreatedEvent {
	return &ServiceListCreatedEvent{
		eventID:    uuid.New().String(),
		listID:     listID,
		owner:      owner,
		itemCount:  itemCount,
		occurredAt: time.Now(),
	}
}

func (e *ServiceListCreatedEvent) EventID() string       { return e.eventID }
func (e *ServiceListCreatedEvent) EventType() string     { return "servicelist.created" }
func (e *ServiceListCreatedEvent) OccurredAt() time.Time { return e.occurredAt }
func (e *ServiceListCreatedEvent) AggregateID() string   { return e.listID.String() }

// Owner 擁有者
func (e *ServiceListCreatedEvent) Owner() OwnerRef { return e.owner }

// ItemCount 建立時的明細列數
func (e *ServiceListCreatedEvent) ItemCount() int { return e.itemCount }

// ===========================
// ServiceListItemsReplaced 領域事件
// ===========================

// ServiceListItemsReplacedEvent 既有清單的明細被整份替換
type ServiceListItemsReplacedEvent struct {
	eventID         string
	listID          ListID
	owner           OwnerRef
	itemCount       int
	totalFinalGross decimal.Decimal
	occurredAt      time.Time
}

// NewServiceListItemsReplacedEvent 創建明細替換事件
func NewServiceListItemsReplacedEvent(
	listID ListID,
	owner OwnerRef,
	itemCount int,
	totalFinalGross decimal.Decimal,
) *ServiceListItemsReplacedEvent {
	return &ServiceListItemsReplacedEvent{
		eventID:         uuid.New().String(),
		listID:          listID,
		owner:           owner,
		itemCount:       itemCount,
		totalFinalGross: totalFinalGross,
		occurredAt:      time.Now(),
	}
}

func (e *ServiceListItemsReplacedEvent) EventID() string       { return e.eventID }
func (e *ServiceListItemsReplacedEvent) EventType() string     { return "servicelist.items_replaced" }
func (e *ServiceListItemsReplacedEvent) OccurredAt() time.Time { return e.occurredAt }
func (e *ServiceListItemsReplacedEvent) AggregateID() string   { return e.listID.String() }

// Owner 擁有者
func (e *ServiceListItemsReplacedEvent) Owner() OwnerRef { return e.owner }

// ItemCount 替換後的明細列數
func (e *ServiceListItemsReplacedEvent) ItemCount() int { return e.itemCount }

// TotalFinalGross 替換後的含稅最終合計
func (e *ServiceListItemsReplacedEvent) TotalFinalGross() decimal.Decimal { return e.totalFinalGross }
