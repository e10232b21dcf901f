package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedValue struct {
	Total int `json:"total"`
}

func TestCacheServiceDisabled(t *testing.T) {
	repo := &memoryCacheRepo{}
	svc := NewCacheService(repo, nil, time.Minute, nil, false)

	require.NoError(t, svc.Set(context.Background(), "k", cachedValue{Total: 1}, 0))
	hit, err := svc.Get(context.Background(), "k", &cachedValue{})

	require.NoError(t, err)
	assert.False(t, hit)
	assert.Empty(t, repo.store)
	assert.False(t, NewCacheService(nil, nil, 0, nil, true).Enabled())
}

func TestCacheServiceRoundTrip(t *testing.T) {
	rec := &countingRecorder{}
	svc := NewCacheService(&memoryCacheRepo{}, rec, 0, nil, true)
	ctx := context.Background()

	var dest cachedValue
	hit, err := svc.Get(ctx, "k", &dest)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, svc.Set(ctx, "k", cachedValue{Total: 7}, 0))
	hit, err = svc.Get(ctx, "k", &dest)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 7, dest.Total)

	assert.Equal(t, 1, rec.hits)
	assert.Equal(t, 1, rec.misses)
	assert.Equal(t, 1, rec.writes)
}

func TestCacheServiceInvalidatePattern(t *testing.T) {
	repo := &memoryCacheRepo{}
	svc := NewCacheService(repo, nil, 0, nil, true)
	ctx := context.Background()
	require.NoError(t, svc.Set(ctx, "erp:dash:a", cachedValue{}, 0))
	require.NoError(t, svc.Set(ctx, "erp:dash:b", cachedValue{}, 0))
	require.NoError(t, svc.Set(ctx, "other", cachedValue{}, 0))

	require.NoError(t, svc.Invalidate(ctx, "erp:dash:*"))

	assert.Len(t, repo.store, 1)
	assert.Contains(t, repo.store, "other")
}

func TestCacheServiceSurfacesRepositoryErrors(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewCacheService(&memoryCacheRepo{getErr: boom}, nil, 0, nil, true)

	hit, err := svc.Get(context.Background(), "k", &cachedValue{})

	assert.False(t, hit)
	assert.ErrorIs(t, err, boom)
}
