package output

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/chrisdamba/foodfleet/internal/cloudwriter"
	"github.com/chrisdamba/foodfleet/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var placedAt = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testOrder() models.Order {
	return models.Order{
		ID:           "ord-1",
		RestaurantID: "1",
		Lines: []models.OrderLine{
			{
				LineID: "line-1", ItemID: "item201", Name: "Grilled Salmon", Quantity: 2,
				UnitPrice: d("29.75"), LineTotal: d("59.50"),
				Options: map[string][]string{"spice": {"hot"}, "extra": {"cheese"}},
			},
		},
		Totals: models.Totals{
			Subtotal:    d("59.50"),
			Discount:    d("8.925"),
			DeliveryFee: d("5.00"),
			Tax:         d("4.046"),
			Total:       d("59.621"),
		},
		PromoCode:    "SAVE15",
		Instructions: "Ring twice",
		Stage:        models.OrderStagePlaced,
		PlacedAt:     placedAt,
	}
}

func testMessage(t *testing.T) []byte {
	t.Helper()
	event, err := NewCheckoutEvent(testOrder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return msg
}

const partition = "year=2026/month=03/day=14/hour=09"

type recordingDestination struct {
	topics   []string
	messages [][]byte
	err      error
	closed   bool
}

func (r *recordingDestination) WriteMessage(topic string, msg []byte) error {
	if r.err != nil {
		return r.err
	}
	r.topics = append(r.topics, topic)
	r.messages = append(r.messages, msg)
	return nil
}

func (r *recordingDestination) Close() error {
	r.closed = true
	return nil
}

func TestNewCheckoutEvent(t *testing.T) {
	event, err := NewCheckoutEvent(testOrder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := CheckoutEvent{
		Timestamp:    placedAt.Unix(),
		EventType:    "checkout",
		OrderID:      "ord-1",
		RestaurantID: "1",
		Stage:        "placed",
		ItemCount:    2,
		Subtotal:     "59.50",
		Discount:     "8.93",
		DeliveryFee:  "5.00",
		Tax:          "4.05",
		Total:        "59.62",
		PromoCode:    "SAVE15",
		Instructions: "Ring twice",
	}
	got := event
	got.Lines = ""
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}

	var lines []eventLine
	if err := json.Unmarshal([]byte(event.Lines), &lines); err != nil {
		t.Fatalf("lines are not valid JSON: %v", err)
	}
	if len(lines) != 1 || lines[0].UnitPrice != "29.75" || lines[0].Options["spice"][0] != "hot" {
		t.Errorf("unexpected lines: %+v", lines)
	}
}

func TestExporter_Export(t *testing.T) {
	dest := &recordingDestination{}
	exporter := NewExporter(dest, "", zap.NewNop())

	if err := exporter.Export(context.Background(), testOrder()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dest.topics) != 1 || dest.topics[0] != models.CheckoutEventsTopic {
		t.Fatalf("expected one message on %s, got %v", models.CheckoutEventsTopic, dest.topics)
	}

	var event CheckoutEvent
	if err := json.Unmarshal(dest.messages[0], &event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.OrderID != "ord-1" || event.Total != "59.62" {
		t.Errorf("unexpected event: %+v", event)
	}

	exporter.Close()
	if !dest.closed {
		t.Error("expected Close to close the destination")
	}
}

func TestExporter_Errors(t *testing.T) {
	boom := errors.New("broker down")
	exporter := NewExporter(&recordingDestination{err: boom}, "orders", nil)
	if err := exporter.Export(context.Background(), testOrder()); !errors.Is(err, boom) {
		t.Errorf("expected wrapped destination error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dest := &recordingDestination{}
	if err := NewExporter(dest, "orders", nil).Export(ctx, testOrder()); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(dest.messages) != 0 {
		t.Error("expected nothing written for a cancelled context")
	}
}

func TestConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsoleOutput(&buf)

	if err := console.WriteMessage("checkout_events", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := buf.String(); got != "[checkout_events] {\"a\":1}\n" {
		t.Errorf("unexpected console output %q", got)
	}
}

func TestJSONOutput_AppendsLinesPerPartition(t *testing.T) {
	dir := t.TempDir()
	out := NewJSONOutput(dir, "run")
	msg := testMessage(t)

	for i := 0; i < 2; i++ {
		if err := out.WriteMessage("checkout_events", msg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := out.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	file, err := os.Open(filepath.Join(dir, "run", "checkout_events", partition, "data.json"))
	if err != nil {
		t.Fatalf("expected partitioned file: %v", err)
	}
	defer file.Close()

	var count int
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var event CheckoutEvent
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			t.Fatalf("line %d is not an event: %v", count, err)
		}
		count++
	}
	if count != 2 {
		t.Errorf("expected 2 lines, got %d", count)
	}
}

func TestJSONOutput_RejectsMissingTimestamp(t *testing.T) {
	out := NewJSONOutput(t.TempDir(), "")
	if err := out.WriteMessage("checkout_events", []byte(`{"orderId":"x"}`)); err == nil {
		t.Error("expected error for event without timestamp")
	}
}

func TestCSVOutput_WritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	out := NewCSVOutput(dir, "")
	msg := testMessage(t)

	out.WriteMessage("checkout_events", msg)
	out.WriteMessage("checkout_events", msg)
	if err := out.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "checkout_events", partition, "data.csv"))
	if err != nil {
		t.Fatalf("expected partitioned file: %v", err)
	}
	rows := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(rows) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(rows))
	}
	if !strings.HasPrefix(rows[0], "deliveryFee,discount,eventType,") {
		t.Errorf("expected sorted header, got %q", rows[0])
	}
	if !strings.Contains(rows[1], "1773480600") {
		t.Errorf("expected integral timestamp in row, got %q", rows[1])
	}
}

func TestParquetOutput_Local(t *testing.T) {
	dir := t.TempDir()
	out := NewParquetOutput(dir, "run", nil, "", zap.NewNop())

	if err := out.WriteMessage("checkout_events", testMessage(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "run", "checkout_events", partition, "data-*.parquet"))
	if len(matches) != 1 {
		t.Fatalf("expected one parquet file, got %v", matches)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PAR1")) || !bytes.HasSuffix(data, []byte("PAR1")) {
		t.Error("expected parquet magic bytes")
	}
}

type memoryCloudWriter struct {
	buf    bytes.Buffer
	closed bool
}

func (m *memoryCloudWriter) Write(p []byte) (int, error) { return m.buf.Write(p) }
func (m *memoryCloudWriter) Close() error {
	m.closed = true
	return nil
}

type memoryCloudFactory struct {
	paths   []string
	writers []*memoryCloudWriter
}

func (f *memoryCloudFactory) NewWriter(bucket, objectPath string) (cloudwriter.CloudWriter, error) {
	w := &memoryCloudWriter{}
	f.paths = append(f.paths, bucket+"/"+objectPath)
	f.writers = append(f.writers, w)
	return w, nil
}

func TestParquetOutput_Cloud(t *testing.T) {
	factory := &memoryCloudFactory{}
	out := NewParquetOutput("ignored", "exports", factory, "bucket", zap.NewNop())

	if err := out.WriteMessage("checkout_events", testMessage(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(factory.paths) != 1 || !strings.HasPrefix(factory.paths[0], "bucket/exports/checkout_events/"+partition+"/data-") {
		t.Fatalf("unexpected object paths %v", factory.paths)
	}
	w := factory.writers[0]
	if !w.closed || !bytes.HasPrefix(w.buf.Bytes(), []byte("PAR1")) {
		t.Error("expected a closed object holding parquet data")
	}
}

func TestCloudParquetFile_Seek(t *testing.T) {
	f := NewCloudParquetFile(&memoryCloudWriter{})
	f.Write([]byte("abcd"))
	if pos, _ := f.Seek(0, 1); pos != 4 {
		t.Errorf("expected offset 4, got %d", pos)
	}
	if _, err := f.Seek(0, 2); err == nil {
		t.Error("expected error seeking from end")
	}
	if _, err := f.Read(make([]byte, 1)); err == nil {
		t.Error("expected error reading")
	}
}

func TestKafkaOutput(t *testing.T) {
	producer := mocks.NewSyncProducer(t, nil)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if !bytes.Equal(val, []byte("payload")) {
			return errors.New("unexpected payload")
		}
		return nil
	})
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	out := NewKafkaOutputWithProducer(producer, zap.NewNop())
	if err := out.WriteMessage("checkout_events", []byte("payload")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := out.WriteMessage("checkout_events", []byte("payload")); !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Errorf("expected ErrOutOfBrokers, got %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := out.WriteMessage("checkout_events", []byte("late")); err == nil {
		t.Error("expected error after Close")
	}
}

func TestNew_SelectsDestination(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		destination string
		want        interface{}
	}{
		{"", &ConsoleOutput{}},
		{"console", &ConsoleOutput{}},
		{"json", &JSONOutput{}},
		{"csv", &CSVOutput{}},
		{"parquet", &ParquetOutput{}},
	}
	for _, tc := range cases {
		cfg := &models.Config{Output: models.OutputConfig{Destination: tc.destination, Path: dir}}
		dest, err := New(context.Background(), cfg, zap.NewNop())
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.destination, err)
		}
		if got, want := typeName(dest), typeName(tc.want); got != want {
			t.Errorf("%q: expected %s, got %s", tc.destination, want, got)
		}
		dest.Close()
	}

	cfg := &models.Config{Output: models.OutputConfig{Destination: "carrier-pigeon"}}
	if _, err := New(context.Background(), cfg, zap.NewNop()); err == nil {
		t.Error("expected error for unsupported destination")
	}
}

func typeName(v interface{}) string { return fmt.Sprintf("%T", v) }
