package state

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"marvel/catalog/internal/domain"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	values map[string]string
	getErr error
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: make(map[string]string)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	val, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.values[key] = fmt.Sprint(value)
	return redis.NewStatusResult("OK", nil)
}

func TestRedisStateManagerRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newFakeRedis()
	sm := NewRedisStateManager(store)

	page, err := sm.GetLastPage(ctx, domain.ResourceComics)
	require.NoError(t, err)
	assert.Equal(t, NoPage, page)

	require.NoError(t, sm.SetLastPage(ctx, domain.ResourceComics, 4))
	assert.Equal(t, "4", store.values["marvel:progress:page:comics"])

	page, err = sm.GetLastPage(ctx, domain.ResourceComics)
	require.NoError(t, err)
	assert.Equal(t, 4, page)

	page, err = sm.GetLastPage(ctx, domain.ResourceCharacters)
	require.NoError(t, err)
	assert.Equal(t, NoPage, page)
}

func TestRedisStateManagerErrors(t *testing.T) {
	ctx := context.Background()
	store := newFakeRedis()
	store.values["marvel:progress:page:comics"] = "not-a-number"
	sm := NewRedisStateManager(store)

	_, err := sm.GetLastPage(ctx, domain.ResourceComics)
	assert.Error(t, err)

	store.getErr = errors.New("connection refused")
	_, err = sm.GetLastPage(ctx, domain.ResourceCharacters)
	assert.ErrorContains(t, err, "connection refused")

	store.setErr = errors.New("READONLY")
	assert.Error(t, sm.SetLastPage(ctx, domain.ResourceComics, 1))
}

func TestMemoryStateManager(t *testing.T) {
	ctx := context.Background()
	sm := NewMemoryStateManager()

	page, err := sm.GetLastPage(ctx, domain.ResourceCharacters)
	require.NoError(t, err)
	assert.Equal(t, NoPage, page)

	require.NoError(t, sm.SetLastPage(ctx, domain.ResourceCharacters, 0))

	page, err = sm.GetLastPage(ctx, domain.ResourceCharacters)
	require.NoError(t, err)
	assert.Equal(t, 0, page)
}
