package consumer

import (
	"context"
	"encoding/json"
	"time"

	"rrhh-admin/internal/catalog"
	"rrhh-admin/internal/events"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// CatalogChangedConsumer invalidates cached snapshots when the upstream
// HR system announces a change, so the next render refetches instead of
// waiting out the TTL.
type CatalogChangedConsumer struct {
	reader  *kafka.Reader
	catalog catalog.Service
	logger  *zap.Logger
}

func NewCatalogChangedConsumer(
	broker string,
	groupID string,
	catalogService catalog.Service,
	logger ...*zap.Logger,
) *CatalogChangedConsumer {
	l := zap.L().Named("kafka.consumer.catalog_changed")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.consumer.catalog_changed")
	}

	return &CatalogChangedConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        []string{broker},
			Topic:          events.CatalogChangedTopic,
			GroupID:        groupID,
			CommitInterval: time.Second,
			StartOffset:    kafka.LastOffset,
		}),
		catalog: catalogService,
		logger:  l,
	}
}

// Start consumes until the context is cancelled. It blocks; callers run
// it in a goroutine.
func (c *CatalogChangedConsumer) Start(ctx context.Context) {
	c.logger.Info("catalog change consumer started")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("catalog change consumer stopped")
				return
			}
			c.logger.Error("fetch catalog change message failed", zap.Error(err))
			continue
		}

		var event events.CatalogChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.Error("decode catalog change event failed", zap.Error(err))
			if commitErr := c.reader.CommitMessages(ctx, msg); commitErr != nil {
				c.logger.Error("commit invalid catalog change event failed", zap.Error(commitErr))
			}
			continue
		}

		c.HandleEvent(ctx, event)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Error("commit catalog change event failed", zap.Error(err))
		}
	}
}

// HandleEvent drops the snapshots touched by one event. Events without
// an entity are logged and skipped; they are still committed upstream.
func (c *CatalogChangedConsumer) HandleEvent(ctx context.Context, event events.CatalogChangedEvent) {
	if event.Entity == "" {
		c.logger.Warn("catalog change event without entity",
			zap.String("event_type", event.EventType),
			zap.String("action", event.Action),
		)
		return
	}

	c.catalog.Invalidate(ctx, event.Entity)

	c.logger.Info("catalog snapshots invalidated",
		zap.String("entity", event.Entity),
		zap.String("entity_id", event.EntityID),
		zap.String("action", event.Action),
	)
}

func (c *CatalogChangedConsumer) Close() error {
	return c.reader.Close()
}
