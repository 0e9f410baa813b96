package car

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenwheel/ev-rental-backend/internal/cache"
)

func TestServiceListUsesCache(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewDemoRepository()
	svc := NewService(repo, cache.New(db))
	ctx := context.Background()

	catalog, _, err := repo.List(ctx)
	require.NoError(t, err)
	data, err := json.Marshal(catalog)
	require.NoError(t, err)

	// First list: cache miss, repository hit, value stored.
	mock.ExpectGet("cars:all").RedisNil()
	mock.ExpectSet("cars:all", data, 5*time.Minute).SetVal("OK")

	cars, total, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.Len(t, cars, 6)

	// Second list: served from the cache.
	mock.ExpectGet("cars:all").SetVal(string(data))

	cars, total, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.Equal(t, "vf3", cars[0].ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServiceWritesInvalidateCache(t *testing.T) {
	db, mock := redismock.NewClientMock()
	svc := NewService(NewDemoRepository(), cache.New(db))
	ctx := context.Background()

	mock.ExpectDel("cars:all").SetVal(1)
	_, err := svc.Update(ctx, "vf3", UpdateRequest{Price: strPtr("999k")})
	require.NoError(t, err)

	mock.ExpectDel("cars:all").SetVal(1)
	require.NoError(t, svc.Delete(ctx, "vf3"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
