package output

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/chrisdamba/foodfleet/internal/cloudwriter"
	"github.com/lucsky/cuid"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"
	"go.uber.org/zap"
)

type parquetFile struct {
	mu     sync.Mutex
	writer *writer.ParquetWriter
	file   source.ParquetFile
}

// ParquetOutput keeps one writer per topic partition. Files are named after
// the run so later runs never truncate earlier ones.
type ParquetOutput struct {
	basePath           string
	folder             string
	runID              string
	mu                 sync.Mutex
	files              map[string]*parquetFile
	cloudWriterFactory cloudwriter.CloudWriterFactory
	cloudBucketName    string
	logger             *zap.Logger
}

func NewParquetOutput(basePath, folder string, factory cloudwriter.CloudWriterFactory, bucket string, logger *zap.Logger) *ParquetOutput {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ParquetOutput{
		basePath:           basePath,
		folder:             folder,
		runID:              cuid.New(),
		files:              make(map[string]*parquetFile),
		cloudWriterFactory: factory,
		cloudBucketName:    bucket,
		logger:             logger,
	}
}

func (p *ParquetOutput) WriteMessage(topic string, msg []byte) error {
	record, err := decodeRecord(msg)
	if err != nil {
		return err
	}
	partition := partitionPath(record.Timestamp)
	key := fmt.Sprintf("%s_%s", topic, partition)

	p.mu.Lock()
	pf, ok := p.files[key]
	if !ok {
		pf, err = p.createWriter(topic, partition)
		if err != nil {
			p.mu.Unlock()
			return fmt.Errorf("failed to create new writer: %w", err)
		}
		p.files[key] = pf
	}
	p.mu.Unlock()

	pf.mu.Lock()
	defer pf.mu.Unlock()
	if err := pf.writer.Write(record); err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

func (p *ParquetOutput) createWriter(topic, partition string) (*parquetFile, error) {
	name := fmt.Sprintf("data-%s.parquet", p.runID)

	var fw source.ParquetFile
	if p.cloudWriterFactory != nil {
		objectPath := path.Join(p.folder, topic, partition, name)
		cloudWriter, err := p.cloudWriterFactory.NewWriter(p.cloudBucketName, objectPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create cloud file writer: %w", err)
		}
		fw = NewCloudParquetFile(cloudWriter)
	} else {
		fullPath := filepath.Join(p.basePath, p.folder, topic, partition)
		if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
			return nil, err
		}
		var err error
		fw, err = local.NewLocalFileWriter(filepath.Join(fullPath, name))
		if err != nil {
			return nil, fmt.Errorf("failed to create local file writer: %w", err)
		}
	}

	pw, err := writer.NewParquetWriter(fw, new(CheckoutEvent), 4)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	return &parquetFile{writer: pw, file: fw}, nil
}

// Close flushes every writer. Cloud objects are uploaded here.
func (p *ParquetOutput) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var lastErr error
	for key, pf := range p.files {
		pf.mu.Lock()
		if err := pf.writer.WriteStop(); err != nil {
			lastErr = err
			p.logger.Error("closing parquet writer", zap.String("key", key), zap.Error(err))
		}
		if err := pf.file.Close(); err != nil {
			lastErr = err
			p.logger.Error("closing parquet file", zap.String("key", key), zap.Error(err))
		}
		pf.mu.Unlock()
		delete(p.files, key)
	}
	return lastErr
}

// CloudParquetFile adapts a CloudWriter to the write half of
// source.ParquetFile.
type CloudParquetFile struct {
	cloudWriter cloudwriter.CloudWriter
	offset      int64
}

func NewCloudParquetFile(cloudWriter cloudwriter.CloudWriter) *CloudParquetFile {
	return &CloudParquetFile{cloudWriter: cloudWriter}
}

func (c *CloudParquetFile) Open(name string) (source.ParquetFile, error) { return c, nil }

func (c *CloudParquetFile) Create(name string) (source.ParquetFile, error) { return c, nil }

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	default:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read(p []byte) (int, error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (c *CloudParquetFile) Write(p []byte) (int, error) {
	n, err := c.cloudWriter.Write(p)
	c.offset += int64(n)
	return n, err
}

func (c *CloudParquetFile) Close() error {
	return c.cloudWriter.Close()
}
