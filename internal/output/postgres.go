package output

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucsky/cuid"
)

// PostgresOutput appends events to the checkout_events table as jsonb.
type PostgresOutput struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresOutput(pool *pgxpool.Pool) *PostgresOutput {
	return &PostgresOutput{pool: pool, timeout: 10 * time.Second}
}

func (p *PostgresOutput) WriteMessage(topic string, msg []byte) error {
	var event map[string]interface{}
	if err := json.Unmarshal(msg, &event); err != nil {
		return err
	}
	id, _ := event["orderId"].(string)
	if id == "" {
		id = cuid.New()
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	query := `
        INSERT INTO checkout_events (id, topic, payload)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO NOTHING
    `
	if _, err := p.pool.Exec(ctx, query, id, topic, msg); err != nil {
		return fmt.Errorf("failed to insert into checkout_events: %w", err)
	}
	return nil
}

func (p *PostgresOutput) Close() error {
	p.pool.Close()
	return nil
}
