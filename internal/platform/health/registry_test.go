package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/todolist-service/internal/platform/health"
	"github.com/jsamuelsen11/todolist-service/mocks"
)

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	r := health.New(0)
	results := r.CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_AllHealthy(t *testing.T) {
	t.Parallel()

	checkerA := mocks.NewMockHealthChecker(t)
	checkerA.EXPECT().Name().Return("db")
	checkerA.EXPECT().HealthCheck(mock.Anything).Return(nil)

	checkerB := mocks.NewMockHealthChecker(t)
	checkerB.EXPECT().Name().Return("memory-store")
	checkerB.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New(0)
	r.Register(checkerA)
	r.Register(checkerB)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["db"] != nil {
		t.Errorf("db check = %v, want nil", results["db"])
	}
	if results["memory-store"] != nil {
		t.Errorf("cache check = %v, want nil", results["memory-store"])
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	healthy := mocks.NewMockHealthChecker(t)
	healthy.EXPECT().Name().Return("db")
	healthy.EXPECT().HealthCheck(mock.Anything).Return(nil)

	unhealthyErr := errors.New("connection refused")
	unhealthy := mocks.NewMockHealthChecker(t)
	unhealthy.EXPECT().Name().Return("postgres")
	unhealthy.EXPECT().HealthCheck(mock.Anything).Return(unhealthyErr)

	r := health.New(0)
	r.Register(healthy)
	r.Register(unhealthy)

	results := r.CheckAll(context.Background())

	if results["db"] != nil {
		t.Errorf("db check = %v, want nil", results["db"])
	}
	if results["postgres"] == nil {
		t.Fatal("postgres check = nil, want error")
	}
	if results["postgres"].Error() != "connection refused" {
		t.Errorf("postgres check = %q, want %q", results["postgres"].Error(), "connection refused")
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("postgres")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New(0)
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["postgres"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["postgres"])
	}
}

func TestCheckAll_SlowCheckerTimesOut(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	slow := mocks.NewMockHealthChecker(t)
	slow.EXPECT().Name().Return("postgres")
	slow.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(context.Context) error {
		<-release
		return nil
	})

	fast := mocks.NewMockHealthChecker(t)
	fast.EXPECT().Name().Return("memory-store")
	fast.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New(20 * time.Millisecond)
	r.Register(slow)
	r.Register(fast)

	start := time.Now()
	results := r.CheckAll(context.Background())

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("CheckAll took %v, want it bounded by the check timeout", elapsed)
	}
	if !errors.Is(results["postgres"], context.DeadlineExceeded) {
		t.Errorf("postgres check = %v, want context.DeadlineExceeded", results["postgres"])
	}
	if results["memory-store"] != nil {
		t.Errorf("memory-store check = %v, want nil", results["memory-store"])
	}
}

func TestCheckAll_RunsChecksConcurrently(t *testing.T) {
	t.Parallel()

	// Each checker blocks until the other has started; sequential execution
	// would deadlock until the timeout fires.
	started := make(chan struct{}, 2)
	wait := func(ctx context.Context) error {
		started <- struct{}{}
		for len(started) < 2 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Millisecond):
			}
		}
		return nil
	}

	a := mocks.NewMockHealthChecker(t)
	a.EXPECT().Name().Return("a")
	a.EXPECT().HealthCheck(mock.Anything).RunAndReturn(wait)

	b := mocks.NewMockHealthChecker(t)
	b.EXPECT().Name().Return("b")
	b.EXPECT().HealthCheck(mock.Anything).RunAndReturn(wait)

	r := health.New(time.Second)
	r.Register(a)
	r.Register(b)

	results := r.CheckAll(context.Background())

	if results["a"] != nil || results["b"] != nil {
		t.Errorf("results = %v, want both healthy", results)
	}
}

func TestCheckAll_DuplicateNames_LastWriteWins(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("db")
	first.EXPECT().HealthCheck(mock.Anything).Return(nil)

	secondErr := errors.New("second failure")
	second := mocks.NewMockHealthChecker(t)
	second.EXPECT().Name().Return("db")
	second.EXPECT().HealthCheck(mock.Anything).Return(secondErr)

	r := health.New(0)
	r.Register(first)
	r.Register(second)

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	got, ok := results["db"]
	if !ok {
		t.Fatal(`expected result for key "db", but it was missing`)
	}
	if !errors.Is(got, secondErr) {
		t.Errorf("db check = %v, want %v (from last registered checker)", got, secondErr)
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New(0)

	var wg sync.WaitGroup
	const goroutines = 50

	// Half the goroutines register checkers, half call CheckAll.
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}
