package bolt

import (
	"encoding/json"

	"github.com/agrocycle/agrocycle/internal/apperr"
)

// readAll decodes the whole collection stored under key. An absent key
// reads as an empty collection; a present but undecodable value is
// reported as a corrupt record, never a crash.
func readAll[T any](db *Connection, key string) ([]T, error) {
	raw, err := db.get(key)
	if err != nil {
		return nil, apperr.NewStoreReadCorrupt(key, err)
	}
	if raw == nil {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, apperr.NewStoreReadCorrupt(key, err)
	}

	return items, nil
}

// writeAll re-serializes the whole collection under key in one
// transaction. There is no partial update.
func writeAll[T any](db *Connection, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return apperr.NewStoreWriteFailed(key, err)
	}

	if err := db.put(key, data); err != nil {
		return apperr.NewStoreWriteFailed(key, err)
	}

	return nil
}
