package storage

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Named entries in the local store. Each holds a JSON-encoded sequence,
// read and written wholesale on every access.
const (
	KeyProducts = "db_products"
	KeyOrders   = "db_orders"
)

// KV is a file-backed string-keyed store, one file per key under a data
// directory. It is the local stand-in for a browser's key-value storage.
type KV struct {
	mu  sync.Mutex
	dir string
}

func NewKV(dir string) *KV {
	return &KV{dir: dir}
}

func (kv *KV) path(key string) string {
	return filepath.Join(kv.dir, key+".json")
}

// Get returns the raw value for key, or nil if the key has never been set.
func (kv *KV) Get(key string) ([]byte, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	data, err := os.ReadFile(kv.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set replaces the value for key wholesale.
func (kv *KV) Set(key string, value []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	if err := os.MkdirAll(kv.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(kv.path(key), value, 0o644)
}
