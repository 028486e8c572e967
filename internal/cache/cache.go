// Package cache keeps parsed workbook rows between builds so an unchanged
// workbook is not decoded twice.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores opaque byte payloads under string keys
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// RowsKey derives the key for the rows of one sheet of one workbook version.
// The workbook content is hashed, so editing the file changes the key.
func RowsKey(workbook []byte, sheet string) string {
	h := sha256.New()
	h.Write(workbook)
	h.Write([]byte{0})
	h.Write([]byte(sheet))
	return "rulegen:rows:v1:" + hex.EncodeToString(h.Sum(nil))
}
