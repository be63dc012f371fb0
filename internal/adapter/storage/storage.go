// Package storage persists every collection as one JSON-serialized value
// under a fixed key in an embedded key-value store. Reads normalize and
// drop malformed elements; writes are best-effort and publish a change
// event on success.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/glowmart/storefront/pkg/retry"
	"github.com/syndtr/goleveldb/leveldb"
)

type DB struct {
	ldb *leveldb.DB
}

// Open opens the embedded store at path, retrying briefly in case a
// just-closed instance still holds the filesystem lock.
func Open(ctx context.Context, path string) (DB, error) {
	const op = "storage.Open"
	log := slog.With("op", op)

	cfg := retry.Config{
		MaxAttempts: 3,
		Backoff:     retry.Constant(100 * time.Millisecond),
	}
	ldb, err := retry.DoWithResult(ctx, cfg, func() (*leveldb.DB, error) {
		return leveldb.OpenFile(path, nil)
	})
	if err != nil {
		return DB{}, fmt.Errorf("%s: store is unavailable: %w", op, err)
	}

	log.Info("store is available", "path", path)
	return DB{ldb}, nil
}

func (d DB) Get(key string) ([]byte, bool) {
	v, err := d.ldb.Get([]byte(key), nil)
	if err != nil {
		if !errors.Is(err, leveldb.ErrNotFound) {
			slog.Error("failed to read key", "key", key, "err", err)
		}
		return nil, false
	}
	return v, true
}

func (d DB) Put(key string, value []byte) error {
	return d.ldb.Put([]byte(key), value, nil)
}

func (d DB) Delete(key string) error {
	return d.ldb.Delete([]byte(key), nil)
}

func (d DB) Close() {
	const op = "DB.Close"
	log := slog.With("op", op)

	if err := d.ldb.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("store is closed")
}
