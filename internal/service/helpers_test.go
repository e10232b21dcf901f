package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/noah-isme/manpower-erp-api/internal/store"
	appErrors "github.com/noah-isme/manpower-erp-api/pkg/errors"
)

var testNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func emptyStore() *store.RecordStore {
	return store.NewRecordStore(store.WithoutSeed(), store.WithClock(func() time.Time { return testNow }))
}

func seededStore() *store.RecordStore {
	return store.NewRecordStore(store.WithClock(func() time.Time { return testNow }))
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func ptr[T any](v T) *T {
	return &v
}

// memoryCacheRepo is an in-memory CacheRepository mirroring the redis repository's JSON round trip.
type memoryCacheRepo struct {
	store   map[string][]byte
	getErr  error
	deletes []string
}

func (m *memoryCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	payload, ok := m.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (m *memoryCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if m.store == nil {
		m.store = make(map[string][]byte)
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = payload
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(_ context.Context, pattern string) error {
	m.deletes = append(m.deletes, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range m.store {
		if key == pattern || (strings.HasSuffix(pattern, "*") && strings.HasPrefix(key, prefix)) {
			delete(m.store, key)
		}
	}
	return nil
}

type countingRecorder struct {
	hits      int
	misses    int
	writes    int
	exports   []string
	checkouts int
}

func (c *countingRecorder) RecordCacheOperation(hit bool, _ time.Duration) {
	if hit {
		c.hits++
	} else {
		c.misses++
	}
}

func (c *countingRecorder) ObserveCacheWrite(time.Duration) { c.writes++ }

func (c *countingRecorder) RecordExport(report, format string) {
	c.exports = append(c.exports, report+"/"+format)
}

func (c *countingRecorder) RecordCheckout() { c.checkouts++ }
