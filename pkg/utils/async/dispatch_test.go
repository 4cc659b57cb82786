package async_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/mnemosyne-lab/mnemosyne/pkg/utils/async"
)

func TestDispatch(t *testing.T) {
	t.Run("executes handler asynchronously", func(t *testing.T) {
		ctx := context.Background()
		var wg sync.WaitGroup
		executed := false

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			executed = true
			return nil
		})

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			gt.True(t, executed)
		case <-time.After(1 * time.Second):
			t.Fatal("Async handler did not execute within timeout")
		}
	})

	t.Run("survives handler error", func(t *testing.T) {
		ctx := context.Background()
		var wg sync.WaitGroup

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			return goerr.New("test error")
		})

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(1 * time.Second):
			t.Fatal("Async handler did not complete within timeout")
		}
	})

	t.Run("recovers from panic", func(t *testing.T) {
		ctx := context.Background()
		var wg sync.WaitGroup

		wg.Add(1)
		async.Dispatch(ctx, func(ctx context.Context) error {
			defer wg.Done()
			panic("test panic")
		})

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(1 * time.Second):
			t.Fatal("Async handler did not complete within timeout")
		}
	})

	t.Run("handler context survives caller cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		var wg sync.WaitGroup

		wg.Add(1)
		async.Dispatch(ctx, func(handlerCtx context.Context) error {
			defer wg.Done()
			cancel()
			gt.NoError(t, handlerCtx.Err())
			return nil
		})

		wg.Wait()
	})
}

func TestRepeat(t *testing.T) {
	t.Run("ticks until cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var count atomic.Int32
		async.Repeat(ctx, 10*time.Millisecond, func(ctx context.Context) error {
			count.Add(1)
			return nil
		})

		deadline := time.After(2 * time.Second)
		for count.Load() < 3 {
			select {
			case <-deadline:
				t.Fatal("Periodic handler did not tick within timeout")
			case <-time.After(5 * time.Millisecond):
			}
		}

		cancel()
		time.Sleep(30 * time.Millisecond)
		settled := count.Load()
		time.Sleep(30 * time.Millisecond)
		gt.Equal(t, count.Load(), settled)
	})

	t.Run("recovers from panics per tick", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var count atomic.Int32
		async.Repeat(ctx, 5*time.Millisecond, func(ctx context.Context) error {
			count.Add(1)
			panic("tick panic")
		})

		deadline := time.After(2 * time.Second)
		for count.Load() < 2 {
			select {
			case <-deadline:
				t.Fatal("Periodic handler stopped after panic")
			case <-time.After(5 * time.Millisecond):
			}
		}
	})
}
