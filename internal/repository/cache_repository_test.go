package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/manpower-erp-api/pkg/errors"
)

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil, nil)
	ctx := context.Background()

	var dest map[string]int
	err := repo.Get(ctx, "erp:dash:s1", &dest)
	assert.True(t, errors.Is(err, appErrors.ErrCacheMiss))

	require.NoError(t, repo.Set(ctx, "erp:dash:s1", map[string]int{"total": 3}, time.Minute))
	require.NoError(t, repo.DeleteByPattern(ctx, "erp:dash:*"))
	require.NoError(t, repo.Ping(ctx))
	require.NoError(t, repo.Close())
}

func TestCacheRepositorySetRejectsUnencodableValue(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	repo := NewCacheRepository(client, nil)
	defer repo.Close()

	err := repo.Set(context.Background(), "k", make(chan int), time.Minute)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "marshal cache value")
}

func TestCacheRepositoryWrapsConnectionErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})
	repo := NewCacheRepository(client, nil)
	defer repo.Close()

	err := repo.Get(context.Background(), "k", &struct{}{})

	require.Error(t, err)
	assert.False(t, errors.Is(err, appErrors.ErrCacheMiss))
	assert.Error(t, repo.Ping(context.Background()))
}
