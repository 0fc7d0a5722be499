package eventlog

import (
	"github.com/jackyeh168/autoservice/src/internal/domain/shared"
	"github.com/rs/zerolog"
)

// Publisher 以結構化日誌記錄領域事件的 shared.EventPublisher
//
// 每個事件寫一筆 info 日誌，不會失敗。
type Publisher struct {
	logger zerolog.Logger
}

// NewPublisher 創建事件發布器
func NewPublisher(logger zerolog.Logger) *Publisher {
	return &Publisher{logger: logger.With().Str("component", "eventlog").Logger()}
}

// Publish 記錄單一事件
func (p *Publisher) Publish(event shared.DomainEvent) error {
	p.logger.Info().
		Str("event_id", event.EventID()).
		Str("event_type", event.EventType()).
		Str("aggregate_id", event.AggregateID()).
		Time("occurred_at", event.OccurredAt()).
		Msg("domain event")
	return nil
}

// PublishBatch 依序記錄所有事件
func (p *Publisher) PublishBatch(events []shared.DomainEvent) error {
	for _, event := range events {
		if err := p.Publish(event); err != nil {
			return err
		}
	}
	return nil
}
