// internal/evaluation/cache.go
package evaluation

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"interview-backend/internal/common/database"
	"interview-backend/internal/common/logger"
)

// ResultCache is a best-effort read-through cache for evaluation results.
// A nil cache is valid and always misses; cache failures are logged and
// never surface to the caller.
type ResultCache struct {
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewResultCache(redis *database.RedisClient, ttl time.Duration, log logger.Logger) *ResultCache {
	return &ResultCache{
		redis:  redis,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "eval-cache"}),
	}
}

// cacheKey derives a stable key from the question and answer text.
func cacheKey(question, answer string) string {
	h := sha256.Sum256([]byte(question + "\x00" + answer))
	return "eval:" + hex.EncodeToString(h[:])
}

// Get returns a previously cached result, or nil on any miss or error.
func (c *ResultCache) Get(ctx context.Context, question, answer string) *Result {
	if c == nil || c.redis == nil {
		return nil
	}
	raw, err := c.redis.Get(ctx, cacheKey(question, answer))
	if err != nil {
		return nil
	}
	var result Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		c.logger.Warn("discarding unreadable cached result", map[string]interface{}{"error": err.Error()})
		return nil
	}
	return &result
}

// Put stores a result. Errors are logged, never returned.
func (c *ResultCache) Put(ctx context.Context, question, answer string, result *Result) {
	if c == nil || c.redis == nil || result == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, cacheKey(question, answer), string(raw), c.ttl); err != nil {
		c.logger.Warn("failed to cache evaluation result", map[string]interface{}{"error": err.Error()})
	}
}
