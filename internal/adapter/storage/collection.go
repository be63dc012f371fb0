package storage

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/glowmart/storefront/internal/core/domain"
	"github.com/glowmart/storefront/internal/core/port"
	"github.com/glowmart/storefront/pkg/schema"
)

const keyPrefix = "gm:"

func collectionKey(collection string) string {
	return keyPrefix + collection
}

// userKey namespaces a per-user record by normalized email.
func userKey(kind, email string) string {
	return keyPrefix + kind + ":" + schema.NormalizeEmail(email)
}

// loadList reads one collection key. Missing key, non-array values and
// malformed elements never surface as errors: the caller gets whatever
// decoded cleanly, and found reports whether a well-formed array was
// present at all.
func loadList[T schema.Validator](db DB, collection string) (items []T, found bool) {
	data, ok := db.Get(collectionKey(collection))
	if !ok {
		return nil, false
	}

	items, dropped, err := schema.DecodeList[T](data)
	if err != nil {
		slog.Debug("stored value is malformed, treating as empty",
			"collection", collection)
		return nil, false
	}
	if dropped > 0 {
		slog.Debug("dropped malformed elements",
			"collection", collection, "dropped", dropped)
	}
	return items, true
}

// storeList overwrites one collection key with the full sequence and
// publishes a change event. Persistence is best-effort: a failed write
// is logged and swallowed, and the event is still published so readers
// re-fetch whatever state actually stuck.
func storeList[T any](
	db DB, bus port.ChangePublisher, collection string, items []T,
) {
	data, err := json.Marshal(items)
	if err != nil {
		slog.Error("failed to serialize collection",
			"collection", collection, "err", err)
		return
	}

	if err := db.Put(collectionKey(collection), data); err != nil {
		slog.Error("failed to persist collection",
			"collection", collection, "err", err)
	}

	bus.Publish(domain.ChangeEvent{Collection: collection, At: time.Now()})
}

func loadRecord[T schema.Validator](db DB, key string) (T, bool) {
	var zero T
	data, ok := db.Get(key)
	if !ok {
		return zero, false
	}
	return schema.DecodeRecord[T](data)
}

func storeRecord[T any](db DB, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return db.Put(key, data)
}
