package shared

import "time"

// DomainEvent 領域事件基礎介面
type DomainEvent interface {
	EventID() string       // 事件唯一標識
	EventType() string     // 事件類型，如 "servicelist.created"
	OccurredAt() time.Time // 發生時間
	AggregateID() string   // 聚合根 ID
}

// EventPublisher 事件發布器介面
// 介面定義在 Domain Layer，由 Infrastructure 實作
type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishBatch(events []DomainEvent) error
}
