package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/oaskit/internal/docload"
	"github.com/erraggy/oaskit/internal/options"
	"github.com/erraggy/oaskit/internal/report"
	"golang.org/x/sync/singleflight"
)

// documentInput represents the two ways a security scheme document can be
// provided to a tool. Exactly one of File or Content must be set.
type documentInput struct {
	File       string `json:"file,omitempty"       jsonschema:"Path to a JSON or YAML document on disk"`
	Content    string `json:"content,omitempty"    jsonschema:"Inline document content (JSON or YAML)"`
	Format     string `json:"format,omitempty"     jsonschema:"Input format: json or yaml. Detected from the file extension or content when omitted"`
	Collection bool   `json:"collection,omitempty" jsonschema:"Treat the document as a name-to-scheme map (components.securitySchemes) instead of a single scheme"`
}

// cacheEntry holds decoded scheme views with LRU ordering and TTL expiry.
type cacheEntry struct {
	views     []report.SchemeView
	insertAt  time.Time
	expiresAt time.Time
}

// decodeCacheStore provides a session-scoped cache for decoded documents.
// File inputs are keyed by (absolutePath, modTime). Content inputs are keyed
// by a SHA-256 hash. Both keys include the format and collection mode.
type decodeCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var decodeCache = &decodeCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

var decodeGroup singleflight.Group

// get returns a copy of the cached views, or nil. Expired entries are lazily removed.
func (c *decodeCacheStore) get(key string) []report.SchemeView {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		e.insertAt = time.Now()
		return slices.Clone(e.views)
	}
	return nil
}

// put stores views with the given TTL, evicting the oldest entry if at capacity.
func (c *decodeCacheStore) put(key string, views []report.SchemeView, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{views: slices.Clone(views), insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if c.maxSize > 0 && len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *decodeCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes expired entries.
// Only the first call spawns a sweeper. It stops when ctx is cancelled.
func (c *decodeCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *decodeCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *decodeCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given input, or "" when the
// input cannot be cached.
func makeCacheKey(in documentInput) string {
	mode := "single"
	if in.Collection {
		mode = "collection"
	}
	switch {
	case in.File != "":
		absPath, err := filepath.Abs(in.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d:%s:%s", absPath, info.ModTime().UnixNano(), in.Format, mode)
	case in.Content != "":
		h := sha256.Sum256([]byte(in.Content))
		return fmt.Sprintf("content:%s:%s:%s", hex.EncodeToString(h[:]), in.Format, mode)
	default:
		return ""
	}
}

// resolve decodes the document from whichever input was provided, using the
// cache when enabled.
func (in documentInput) resolve() ([]report.SchemeView, error) {
	if err := options.ExactlyOne(
		options.Source{Name: "file", Set: in.File != ""},
		options.Source{Name: "content", Set: in.Content != ""},
	); err != nil {
		return nil, err
	}

	if in.Content != "" && int64(len(in.Content)) > cfg.MaxInputBytes {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; set OASKIT_MAX_INPUT_BYTES to increase",
			len(in.Content), cfg.MaxInputBytes)
	}

	format, err := docload.ParseFormat(in.Format)
	if err != nil {
		return nil, err
	}

	var key string
	if cfg.CacheEnabled {
		key = makeCacheKey(in)
	}
	if key == "" {
		return in.decode(format)
	}
	if cached := decodeCache.get(key); cached != nil {
		logger.Debug("decode cache hit", "key", key)
		return cached, nil
	}

	// Concurrent calls for the same document share one decode.
	v, err, _ := decodeGroup.Do(key, func() (any, error) {
		views, err := in.decode(format)
		if err != nil {
			return nil, err
		}
		decodeCache.put(key, views, cfg.CacheTTL)
		return views, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]report.SchemeView)), nil
}

func (in documentInput) decode(format docload.Format) ([]report.SchemeView, error) {
	data, path, err := in.read()
	if err != nil {
		return nil, err
	}
	if format == docload.FormatUnknown {
		format = docload.DetectFormat(path, data)
	}

	return decodeViews(data, format, in.Collection)
}

func (in documentInput) read() (data []byte, path string, err error) {
	if in.Content != "" {
		return []byte(in.Content), "", nil
	}
	f, err := os.Open(in.File)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = f.Close() }()
	data, err = docload.Read(f, cfg.MaxInputBytes)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", in.File, err)
	}
	return data, in.File, nil
}

func decodeViews(data []byte, format docload.Format, collection bool) ([]report.SchemeView, error) {
	if collection {
		schemes, err := docload.DecodeSchemes(data, format)
		if err != nil {
			return nil, err
		}
		return report.Schemes(schemes)
	}
	scheme, err := docload.DecodeScheme(data, format)
	if err != nil {
		return nil, err
	}
	view, err := report.Scheme("", scheme)
	if err != nil {
		return nil, err
	}
	return []report.SchemeView{view}, nil
}
