package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/task-tracker/internal/platform/health"
	"github.com/jsamuelsen11/task-tracker/mocks"
)

func newChecker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	errRefused := errors.New("dial tcp 10.0.0.5:5432: connection refused")
	errLocked := errors.New("database is locked")

	tests := []struct {
		name     string
		checkers func(t *testing.T) []*mocks.MockHealthChecker
		want     map[string]error
	}{
		{
			name:     "no checkers",
			checkers: func(*testing.T) []*mocks.MockHealthChecker { return nil },
			want:     map[string]error{},
		},
		{
			name: "all healthy",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{newChecker(t, "database", nil), newChecker(t, "postgres", nil)}
			},
			want: map[string]error{"database": nil, "postgres": nil},
		},
		{
			name: "one failing",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{newChecker(t, "postgres", nil), newChecker(t, "database", errRefused)}
			},
			want: map[string]error{"postgres": nil, "database": errRefused},
		},
		{
			name: "duplicate name keeps last registered",
			checkers: func(t *testing.T) []*mocks.MockHealthChecker {
				return []*mocks.MockHealthChecker{newChecker(t, "database", nil), newChecker(t, "database", errLocked)}
			},
			want: map[string]error{"database": errLocked},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.checkers(t) {
				r.Register(c)
			}

			got := r.CheckAll(context.Background())
			require.NotNil(t, got)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCheckAll_PassesCallerContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("database")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	require.ErrorIs(t, r.CheckAll(ctx)["database"], context.Canceled)
}

func TestCheckAll_PerCheckTimeout(t *testing.T) {
	t.Parallel()

	slow := mocks.NewMockHealthChecker(t)
	slow.EXPECT().Name().Return("database")
	slow.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	r := health.New(health.WithCheckTimeout(10 * time.Millisecond))
	r.Register(slow)
	r.Register(newChecker(t, "postgres", nil))

	got := r.CheckAll(context.Background())
	require.ErrorIs(t, got["database"], context.DeadlineExceeded)
	require.NoError(t, got["postgres"])
}

func TestRegistry_ConcurrentRegisterAndCheck(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 40 {
		if i%2 == 0 {
			wg.Go(func() {
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("database").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			})
			continue
		}
		wg.Go(func() {
			r.CheckAll(context.Background())
		})
	}
	wg.Wait()

	require.Len(t, r.CheckAll(context.Background()), 1)
}
