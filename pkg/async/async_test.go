package async_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pushkit/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()

	t.Run("returns result", func(t *testing.T) {
		t.Parallel()
		f := async.Async(context.Background(), 21, func(_ context.Context, n int) (int, error) {
			return n * 2, nil
		})

		got, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		f := async.Async(context.Background(), "x", func(context.Context, string) (string, error) {
			return "", boom
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled context skips function", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var called atomic.Bool
		f := async.Async(ctx, 1, func(context.Context, int) (int, error) {
			called.Store(true)
			return 1, nil
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called.Load())
	})

	t.Run("panic becomes error", func(t *testing.T) {
		t.Parallel()
		f := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
			panic("bad input")
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, async.ErrPanic)
		assert.Contains(t, err.Error(), "bad input")
	})

	t.Run("done channel closes", func(t *testing.T) {
		t.Parallel()
		f := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
			return 0, nil
		})

		select {
		case <-f.Done():
		case <-time.After(time.Second):
			t.Fatal("future did not complete")
		}
	})
}

func TestSettle(t *testing.T) {
	t.Parallel()

	t.Run("collects every outcome in order", func(t *testing.T) {
		t.Parallel()
		ctx := context.Background()
		fail := errors.New("fail")

		work := func(_ context.Context, n int) (int, error) {
			// Reverse completion order relative to start order.
			time.Sleep(time.Duration(5-n) * 5 * time.Millisecond)
			if n%2 == 1 {
				return 0, fail
			}
			return n * 10, nil
		}

		futures := make([]*async.Future[int], 0, 5)
		for i := range 5 {
			futures = append(futures, async.Async(ctx, i, work))
		}

		outcomes := async.Settle(futures...)
		require.Len(t, outcomes, 5)
		for i, out := range outcomes {
			if i%2 == 1 {
				assert.ErrorIs(t, out.Err, fail)
				continue
			}
			assert.NoError(t, out.Err)
			assert.Equal(t, i*10, out.Value)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, async.Settle[int]())
	})
}
