package dataflows

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CacheManager handles file-based caching of fetched market data so
// repeated simulations over the same instrument and range stay off the
// network.
type CacheManager struct {
	cacheDir string
	ttl      time.Duration
	enabled  bool
}

// NewCacheManager creates a cache rooted at cacheDir. When enabled is
// false every Get misses and every Set is a no-op.
func NewCacheManager(cacheDir string, ttl time.Duration, enabled bool) *CacheManager {
	return &CacheManager{
		cacheDir: cacheDir,
		ttl:      ttl,
		enabled:  enabled,
	}
}

func (cm *CacheManager) key(source, method string, params interface{}) string {
	data, _ := json.Marshal(params)
	hash := md5.Sum(data)
	return fmt.Sprintf("%s_%s_%x.json", source, method, hash)
}

// Get retrieves cached data into result. Expired entries are removed on
// the way out.
func (cm *CacheManager) Get(source, method string, params interface{}, result interface{}) bool {
	if !cm.enabled {
		return false
	}

	path := filepath.Join(cm.cacheDir, cm.key(source, method, params))
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if time.Since(info.ModTime()) > cm.ttl {
		os.Remove(path)
		return false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, result) == nil
}

// Set stores data under the key derived from params.
func (cm *CacheManager) Set(source, method string, params interface{}, data interface{}) error {
	if !cm.enabled {
		return nil
	}

	if err := os.MkdirAll(cm.cacheDir, 0o755); err != nil {
		return err
	}
	blob, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(cm.cacheDir, cm.key(source, method, params)), blob, 0o644)
}
