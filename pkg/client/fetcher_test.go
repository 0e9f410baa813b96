package client_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenwheel/ev-rental-backend/pkg/client"
)

// collectStates wires an OnChange channel so tests can observe every state
// transition in order.
func collectStates[T any](f *client.Fetcher[T]) <-chan client.State[T] {
	ch := make(chan client.State[T], 16)
	f.OnChange(func(s client.State[T]) {
		ch <- s
	})
	return ch
}

func waitState[T any](t *testing.T, ch <-chan client.State[T]) client.State[T] {
	t.Helper()
	select {
	case s := <-ch:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a state transition")
		return client.State[T]{}
	}
}

func TestFetcherInitialState(t *testing.T) {
	f := client.NewFetcher(func(ctx context.Context) ([]client.Car, error) {
		return nil, nil
	})

	s := f.State()
	assert.Nil(t, s.Data)
	assert.False(t, s.Loading)
	assert.Empty(t, s.Err)
}

func TestFetcherSuccessCycle(t *testing.T) {
	f := client.NewFetcher(func(ctx context.Context) ([]client.Car, error) {
		return []client.Car{{ID: "vf3", Name: "VF 3"}}, nil
	})
	states := collectStates(f)

	f.Refetch(context.Background())

	loading := waitState(t, states)
	assert.True(t, loading.Loading)
	assert.Empty(t, loading.Err)

	done := waitState(t, states)
	assert.False(t, done.Loading)
	require.NotNil(t, done.Data)
	require.Len(t, *done.Data, 1)
	assert.Equal(t, "vf3", (*done.Data)[0].ID)
	assert.Empty(t, done.Err)
}

func TestFetcherFailureCycle(t *testing.T) {
	f := client.NewFetcher(func(ctx context.Context) ([]client.Car, error) {
		return nil, errors.New("Car not found")
	})
	states := collectStates(f)

	f.Refetch(context.Background())

	loading := waitState(t, states)
	assert.True(t, loading.Loading)

	done := waitState(t, states)
	assert.False(t, done.Loading)
	assert.Nil(t, done.Data)
	assert.Equal(t, "Car not found", done.Err)
}

func TestFetcherRefetchClearsError(t *testing.T) {
	calls := 0
	f := client.NewFetcher(func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("boom")
		}
		return "ok", nil
	})
	states := collectStates(f)

	f.Refetch(context.Background())
	waitState(t, states) // loading
	failed := waitState(t, states)
	assert.Equal(t, "boom", failed.Err)

	f.Refetch(context.Background())
	loading := waitState(t, states)
	assert.True(t, loading.Loading)
	assert.Empty(t, loading.Err, "a new cycle clears the previous error")

	done := waitState(t, states)
	require.NotNil(t, done.Data)
	assert.Equal(t, "ok", *done.Data)
	assert.Empty(t, done.Err)
}

func TestFetcherDropsStaleResults(t *testing.T) {
	// The first request is held open until the second one has settled; its
	// late resolution must not overwrite the newer data.
	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	call := 0

	f := client.NewFetcher(func(ctx context.Context) (string, error) {
		call++
		if call == 1 {
			close(firstStarted)
			<-releaseFirst
			return "stale", nil
		}
		return "fresh", nil
	})
	states := collectStates(f)

	f.Refetch(context.Background())
	waitState(t, states) // loading for first request
	<-firstStarted

	f.Refetch(context.Background())
	waitState(t, states) // loading for second request

	done := waitState(t, states)
	require.NotNil(t, done.Data)
	assert.Equal(t, "fresh", *done.Data)

	// Let the first request resolve; it must be discarded silently.
	close(releaseFirst)

	select {
	case s := <-states:
		t.Fatalf("stale resolution produced a state transition: %+v", s)
	case <-time.After(100 * time.Millisecond):
	}

	final := f.State()
	require.NotNil(t, final.Data)
	assert.Equal(t, "fresh", *final.Data)
	assert.False(t, final.Loading)
}

func TestFetcherAgainstLiveServer(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    []map[string]any{{"id": "vf3"}, {"id": "vf5"}},
			"total":   2,
		})
	})

	f := client.NewFetcher(func(ctx context.Context) ([]client.Car, error) {
		return c.ListCars(ctx)
	})
	states := collectStates(f)

	f.Refetch(context.Background())
	waitState(t, states) // loading
	done := waitState(t, states)

	require.NotNil(t, done.Data)
	assert.Len(t, *done.Data, 2)
}
