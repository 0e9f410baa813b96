package client

import (
	"context"
	"sync"
)

// State is a snapshot of a Fetcher's view state, shaped the way UI code
// consumes it: the data when loaded, a loading flag while a request is in
// flight, and the error message of the last failed request.
type State[T any] struct {
	Data    *T
	Loading bool
	Err     string
}

// Fetcher wraps a remote call and tracks loading/data/error state across
// refetches. Each Refetch bumps an internal generation counter and a
// resolution is applied only if its generation is still the latest, so a
// slow earlier request can never overwrite the result of a newer one.
type Fetcher[T any] struct {
	fetch    func(ctx context.Context) (T, error)
	onChange func(State[T])

	mu    sync.Mutex
	gen   uint64
	state State[T]
}

// NewFetcher creates a Fetcher around fetch. No request is issued until the
// first Refetch call.
func NewFetcher[T any](fetch func(ctx context.Context) (T, error)) *Fetcher[T] {
	return &Fetcher[T]{fetch: fetch}
}

// OnChange registers a callback invoked with a state snapshot after every
// state transition. It must be set before the first Refetch.
func (f *Fetcher[T]) OnChange(fn func(State[T])) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onChange = fn
}

// State returns a snapshot of the current state.
func (f *Fetcher[T]) State() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Refetch starts a new request cycle: loading is set, the previous error is
// cleared, and the fetch runs in its own goroutine. On resolution the state
// is updated only if no newer Refetch has started since; either way the
// applied resolution always clears the loading flag.
func (f *Fetcher[T]) Refetch(ctx context.Context) {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	f.state.Loading = true
	f.state.Err = ""
	snapshot := f.state
	notify := f.onChange
	f.mu.Unlock()

	if notify != nil {
		notify(snapshot)
	}

	go func() {
		data, err := f.fetch(ctx)

		f.mu.Lock()
		if gen != f.gen {
			// A newer request is in flight or already settled; this result
			// is stale and must not be applied.
			f.mu.Unlock()
			return
		}

		f.state.Loading = false
		if err != nil {
			f.state.Data = nil
			f.state.Err = err.Error()
		} else {
			f.state.Data = &data
			f.state.Err = ""
		}
		snapshot := f.state
		notify := f.onChange
		f.mu.Unlock()

		if notify != nil {
			notify(snapshot)
		}
	}()
}
