package store_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/digistorehq/digistore/database"
	"github.com/digistorehq/digistore/store"
	"github.com/jmoiron/sqlx"
	"github.com/ory/dockertest/v3"
)

// TestPostgres spins up a throwaway Postgres container and exercises
// the KV contract against it.
func TestPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("connecting to docker: %v", err)
	}

	resource, err := pool.Run("postgres", "15-alpine", []string{
		"POSTGRES_USER=postgres",
		"POSTGRES_PASSWORD=postgres",
		"POSTGRES_DB=digistore",
	})
	if err != nil {
		t.Fatalf("starting postgres: %v", err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("purging container: %v", err)
		}
	})

	cfg := database.Config{
		User:       "postgres",
		Password:   "postgres",
		Host:       net.JoinHostPort("localhost", resource.GetPort("5432/tcp")),
		Name:       "digistore",
		DisableTLS: true,
	}

	var db *sqlx.DB
	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		var err error
		db, err = database.Open(cfg)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return database.StatusCheck(ctx, db)
	}); err != nil {
		t.Fatalf("waiting for postgres: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating: %v", err)
	}

	kv := store.NewPostgres(db)
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		type snapshot struct {
			IDs []int `json:"ids"`
		}

		if err := kv.Save(ctx, store.KeyPurchased, snapshot{IDs: []int{1, 2}}); err != nil {
			t.Fatal(err)
		}

		var got snapshot
		if err := kv.Load(ctx, store.KeyPurchased, &got); err != nil {
			t.Fatal(err)
		}
		if fmt.Sprint(got.IDs) != "[1 2]" {
			t.Fatalf("got %v", got.IDs)
		}
	})

	t.Run("upsert overwrites", func(t *testing.T) {
		if err := kv.Save(ctx, "k", "first"); err != nil {
			t.Fatal(err)
		}
		if err := kv.Save(ctx, "k", "second"); err != nil {
			t.Fatal(err)
		}

		var s string
		if err := kv.Load(ctx, "k", &s); err != nil {
			t.Fatal(err)
		}
		if s != "second" {
			t.Fatalf("got %q", s)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		var s string
		err := kv.Load(ctx, "missing", &s)
		if !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
	})
}
