package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

func TestGetJSONMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db)

	mock.ExpectGet("cars:all").RedisNil()

	var out payload
	assert.False(t, c.GetJSON(context.Background(), "cars:all", &out))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetThenGetJSON(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db)
	ctx := context.Background()

	val := payload{Name: "VF 3", Price: "590k"}
	data, err := json.Marshal(val)
	require.NoError(t, err)

	mock.ExpectSet("cars:all", data, time.Minute).SetVal("OK")
	c.SetJSON(ctx, "cars:all", val, time.Minute)

	mock.ExpectGet("cars:all").SetVal(string(data))

	var out payload
	require.True(t, c.GetJSON(ctx, "cars:all", &out))
	assert.Equal(t, val, out)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetJSONCorruptValueIsAMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db)

	mock.ExpectGet("cars:all").SetVal("{not json")

	var out payload
	assert.False(t, c.GetJSON(context.Background(), "cars:all", &out))
}

func TestDel(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := New(db)

	mock.ExpectDel("cars:all").SetVal(1)
	c.Del(context.Background(), "cars:all")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNilCacheIsSafe(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var out payload
	assert.False(t, c.GetJSON(ctx, "k", &out))
	c.SetJSON(ctx, "k", payload{}, time.Minute)
	c.Del(ctx, "k")
}
