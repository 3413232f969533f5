package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

type JSONOutput struct {
	basePath string
	folder   string
	mu       sync.Mutex
	files    map[string]*os.File
}

func NewJSONOutput(basePath, folder string) *JSONOutput {
	return &JSONOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

// WriteMessage appends msg as one line of topic/<partition>/data.json.
func (j *JSONOutput) WriteMessage(topic string, msg []byte) error {
	var event map[string]interface{}
	if err := json.Unmarshal(msg, &event); err != nil {
		return err
	}
	timestamp, err := eventTimestamp(event)
	if err != nil {
		return err
	}

	partition := partitionPath(timestamp)
	fullPath := filepath.Join(j.basePath, j.folder, topic, partition)

	j.mu.Lock()
	defer j.mu.Unlock()

	fileKey := fmt.Sprintf("%s_%s", topic, partition)
	file, ok := j.files[fileKey]
	if !ok {
		if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
			return err
		}
		file, err = os.OpenFile(filepath.Join(fullPath, "data.json"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		j.files[fileKey] = file
	}

	jsonData, err := json.Marshal(event)
	if err != nil {
		return err
	}
	_, err = file.Write(append(jsonData, '\n'))
	return err
}

func (j *JSONOutput) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	var lastErr error
	for key, file := range j.files {
		if err := file.Close(); err != nil {
			lastErr = err
		}
		delete(j.files, key)
	}
	return lastErr
}

type csvFile struct {
	file    *os.File
	writer  *csv.Writer
	headers []string
}

type CSVOutput struct {
	basePath string
	folder   string
	mu       sync.Mutex
	files    map[string]*csvFile
}

func NewCSVOutput(basePath, folder string) *CSVOutput {
	return &CSVOutput{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*csvFile),
	}
}

// WriteMessage writes one row per event. The header is the sorted key set of
// the first event written to the partition.
func (c *CSVOutput) WriteMessage(topic string, msg []byte) error {
	var event map[string]interface{}
	if err := json.Unmarshal(msg, &event); err != nil {
		return err
	}
	timestamp, err := eventTimestamp(event)
	if err != nil {
		return err
	}

	partition := partitionPath(timestamp)
	fullPath := filepath.Join(c.basePath, c.folder, topic, partition)

	c.mu.Lock()
	defer c.mu.Unlock()

	fileKey := fmt.Sprintf("%s_%s", topic, partition)
	f, ok := c.files[fileKey]
	if !ok {
		if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
			return err
		}
		file, err := os.Create(filepath.Join(fullPath, "data.csv"))
		if err != nil {
			return err
		}
		f = &csvFile{file: file, writer: csv.NewWriter(file), headers: headers(event)}
		c.files[fileKey] = f
		if err := f.writer.Write(f.headers); err != nil {
			return err
		}
	}

	row := make([]string, len(f.headers))
	for i, header := range f.headers {
		if value, ok := event[header]; ok {
			row[i] = csvValue(value)
		}
	}
	if err := f.writer.Write(row); err != nil {
		return err
	}

	f.writer.Flush()
	return f.writer.Error()
}

func headers(event map[string]interface{}) []string {
	keys := make([]string, 0, len(event))
	for key := range event {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func csvValue(value interface{}) string {
	if f, ok := value.(float64); ok && f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", value)
}

func (c *CSVOutput) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var lastErr error
	for key, f := range c.files {
		f.writer.Flush()
		if err := f.writer.Error(); err != nil {
			lastErr = err
		}
		if err := f.file.Close(); err != nil {
			lastErr = err
		}
		delete(c.files, key)
	}
	return lastErr
}
