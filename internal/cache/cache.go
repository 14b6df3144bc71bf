package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache stores decoded documents by CacheKey. Entries are never invalidated
// explicitly: a changed file gets a new key and the old entry expires.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
}

// CacheKey identifies one version of a file: the same path with a different
// size or modification time gets a different key.
func CacheKey(path string, size int64, modTime time.Time) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%d", path, size, modTime.UnixNano())))
	return "texsift:v1:" + hex.EncodeToString(hash[:])
}
