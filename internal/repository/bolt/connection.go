package bolt

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// Storage keys inside the single bucket. One key per logical record,
// matching the device key space: whole collections serialized as JSON.
const (
	keyUsers    = "users"
	keyFarmers  = "cluster_farmers"
	keyListings = "listings"
	keySession  = "session"
)

var bucketName = []byte("agrocycle")

// Connection wraps the local bbolt file standing in for a real database.
type Connection struct {
	db *bolt.DB
}

// Open opens (or creates) the store file at path.
func Open(path string) (*Connection, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store file: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create store bucket: %w", err)
	}

	return &Connection{db: db}, nil
}

func (c *Connection) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// get returns the raw value for key, or nil when the key is absent.
func (c *Connection) get(key string) ([]byte, error) {
	var out []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return out, nil
}

// put replaces the value for key in a single transaction.
func (c *Connection) put(key string, value []byte) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	})
}

// delete removes key. Deleting an absent key is a no-op.
func (c *Connection) delete(key string) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
}
