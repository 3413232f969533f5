package cloudwriter

import (
	"context"
	"fmt"

	"github.com/chrisdamba/foodfleet/internal/models"
)

// CloudWriter buffers an object and uploads it on Close.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}

// NewFactory returns the writer factory for cfg.Provider.
func NewFactory(cfg models.CloudStorageConfig) (CloudWriterFactory, error) {
	switch cfg.Provider {
	case "s3":
		return NewS3WriterFactory(context.Background(), cfg)
	default:
		return nil, fmt.Errorf("unsupported cloud storage provider: %s", cfg.Provider)
	}
}
