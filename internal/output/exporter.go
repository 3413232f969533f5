package output

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chrisdamba/foodfleet/internal/models"
	"go.uber.org/zap"
)

// Exporter publishes checkout events to a destination.
type Exporter struct {
	dest   Destination
	topic  string
	logger *zap.Logger
}

func NewExporter(dest Destination, topic string, logger *zap.Logger) *Exporter {
	if topic == "" {
		topic = models.CheckoutEventsTopic
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{dest: dest, topic: topic, logger: logger}
}

func (e *Exporter) Export(ctx context.Context, order models.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	event, err := NewCheckoutEvent(order)
	if err != nil {
		return err
	}
	msg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding checkout event: %w", err)
	}
	if err := e.dest.WriteMessage(e.topic, msg); err != nil {
		return fmt.Errorf("publishing checkout %s: %w", order.ID, err)
	}
	e.logger.Info("checkout exported",
		zap.String("order_id", order.ID),
		zap.String("topic", e.topic),
		zap.String("total", event.Total),
	)
	return nil
}

func (e *Exporter) Close() error {
	return e.dest.Close()
}
