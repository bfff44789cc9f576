// internal/evaluation/cache_test.go
package evaluation

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-backend/internal/common/config"
	"interview-backend/internal/common/database"
	"interview-backend/internal/common/logger"
)

func newTestCache(t *testing.T) (*ResultCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	redisClient, err := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { redisClient.Close() })
	return NewResultCache(redisClient, time.Minute, logger.Noop()), mr
}

func TestResultCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	result := &Result{
		Status: StatusSuccess,
		Score:  77,
		HexagonUpdates: HexagonUpdates{
			TechnicalExpertise: 7,
			ProblemSolving:     6,
			Communication:      5,
		},
		Reasoning: "cached",
	}

	assert.Nil(t, cache.Get(ctx, "q", "a"))
	cache.Put(ctx, "q", "a", result)

	got := cache.Get(ctx, "q", "a")
	require.NotNil(t, got)
	assert.Equal(t, result, got)
}

func TestResultCache_KeyedByQuestionAndAnswer(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.Put(ctx, "q1", "a1", &Result{Score: 10})

	assert.NotNil(t, cache.Get(ctx, "q1", "a1"))
	assert.Nil(t, cache.Get(ctx, "q1", "a2"))
	assert.Nil(t, cache.Get(ctx, "q2", "a1"))
}

func TestResultCache_Expiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	cache.Put(ctx, "q", "a", &Result{Score: 42})
	mr.FastForward(2 * time.Minute)

	assert.Nil(t, cache.Get(ctx, "q", "a"))
}

func TestResultCache_NilSafe(t *testing.T) {
	var cache *ResultCache
	ctx := context.Background()

	assert.Nil(t, cache.Get(ctx, "q", "a"))
	cache.Put(ctx, "q", "a", &Result{Score: 1})
}

func TestResultCache_CorruptEntryIgnored(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(cacheKey("q", "a"), "not json"))
	assert.Nil(t, cache.Get(ctx, "q", "a"))
}
