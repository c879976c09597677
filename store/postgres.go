package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Postgres keeps the key-to-JSON map in a single kv_state table with a
// JSONB value column. Last writer wins; concurrent writers are an
// acknowledged limitation of the design, not something this layer
// merges.
type Postgres struct {
	db *sqlx.DB
}

func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Save(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializing %q: %w: %s", key, ErrSerialization, err)
	}

	const q = `
	INSERT INTO kv_state (key, value) VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`

	if _, err := p.db.ExecContext(ctx, q, key, b); err != nil {
		return fmt.Errorf("saving %q: %w", key, classify(err))
	}
	return nil
}

func (p *Postgres) Load(ctx context.Context, key string, dest any) error {
	const q = `SELECT value FROM kv_state WHERE key = $1`

	var b []byte
	if err := p.db.GetContext(ctx, &b, q, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("loading %q: %w", key, ErrNotFound)
		}
		return fmt.Errorf("loading %q: %w", key, classify(err))
	}

	if err := json.Unmarshal(b, dest); err != nil {
		return fmt.Errorf("decoding %q: %w: %s", key, ErrSerialization, err)
	}
	return nil
}

// classify maps driver failures onto the storage error taxonomy.
// Postgres class 53 is "insufficient resources" (53100 disk_full,
// 53200 out_of_memory, 53300 too_many_connections).
func classify(err error) error {
	var pqe *pq.Error
	if errors.As(err, &pqe) && len(pqe.Code) >= 2 && pqe.Code[:2] == "53" {
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, pqe.Message)
	}
	return fmt.Errorf("%w: %s", ErrUnavailable, err)
}
