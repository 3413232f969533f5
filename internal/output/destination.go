package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/chrisdamba/foodfleet/internal/cloudwriter"
	"github.com/chrisdamba/foodfleet/internal/models"
	pgrepo "github.com/chrisdamba/foodfleet/internal/repositories/postgres"
	"go.uber.org/zap"
)

type Destination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

type ConsoleOutput struct {
	w io.Writer
}

func NewConsoleOutput(w io.Writer) *ConsoleOutput {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleOutput{w: w}
}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	if _, err := fmt.Fprintf(c.w, "[%s] %s\n", topic, msg); err != nil {
		return fmt.Errorf("failed to write to console: %w", err)
	}
	return nil
}

func (c *ConsoleOutput) Close() error { return nil }

// New picks the destination named by cfg.Output.Destination.
func New(ctx context.Context, cfg *models.Config, logger *zap.Logger) (Destination, error) {
	switch cfg.Output.Destination {
	case "", "console":
		return NewConsoleOutput(os.Stdout), nil
	case "json":
		return NewJSONOutput(cfg.Output.Path, cfg.Output.Folder), nil
	case "csv":
		return NewCSVOutput(cfg.Output.Path, cfg.Output.Folder), nil
	case "parquet":
		var factory cloudwriter.CloudWriterFactory
		if cfg.CloudStorage.Provider != "" {
			var err error
			factory, err = cloudwriter.NewFactory(cfg.CloudStorage)
			if err != nil {
				return nil, fmt.Errorf("failed to create cloud writer factory: %w", err)
			}
		}
		return NewParquetOutput(cfg.Output.Path, cfg.Output.Folder, factory, cfg.CloudStorage.BucketName, logger), nil
	case "kafka":
		return NewKafkaOutput(cfg.Kafka, logger)
	case "postgres":
		pool, err := pgrepo.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := pgrepo.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return NewPostgresOutput(pool), nil
	default:
		return nil, fmt.Errorf("unsupported output destination: %s", cfg.Output.Destination)
	}
}

// partitionPath lays events out as year=/month=/day=/hour= in UTC.
func partitionPath(timestamp int64) string {
	t := time.Unix(timestamp, 0).UTC()
	year, month, day := t.Date()
	return fmt.Sprintf("year=%d/month=%02d/day=%02d/hour=%02d", year, month, day, t.Hour())
}

func eventTimestamp(event map[string]interface{}) (int64, error) {
	timestamp, ok := event["timestamp"].(float64)
	if !ok {
		return 0, fmt.Errorf("invalid timestamp")
	}
	return int64(timestamp), nil
}
