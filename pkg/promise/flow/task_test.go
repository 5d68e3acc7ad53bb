package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/b-gran/promise-plumbing/pkg/promise"
	"github.com/b-gran/promise-plumbing/pkg/promise/guard"
)

func expectViolation(t *testing.T, message string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		v, ok := r.(*guard.Violation)
		if !ok {
			t.Fatalf("expected a guard violation, got %v", r)
		}
		if v.Message != message {
			t.Fatalf("expected message %q, got %q", message, v.Message)
		}
	}()
	fn()
}

func TestWrap_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	double := Wrap(func(ctx context.Context, n int) (int, error) { return n * 2, nil })

	o := double(ctx, 21).Outcome()
	if !o.IsSuccess() || o.Value() != 42 {
		t.Fatalf("expected success with 42, got: success=%v, val=%v, err=%v", o.IsSuccess(), o.Value(), o.Reason())
	}
}

func TestWrap_ErrorRejects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("bad")
	failing := Wrap(func(ctx context.Context, n int) (int, error) { return 0, err })

	o := failing(ctx, 1).Outcome()
	if o.IsSuccess() || o.Reason() != err {
		t.Fatalf("expected failure 'bad', got: success=%v, err=%v", o.IsSuccess(), o.Reason())
	}
}

func TestWrap_PanicRejectsWithExactError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("kaboom")
	panicking := Wrap(func(ctx context.Context, n int) (int, error) { panic(err) })

	o := panicking(ctx, 1).Outcome()
	if !errors.Is(o.Reason(), err) {
		t.Fatalf("expected the panicked error unchanged, got %v", o.Reason())
	}
}

func TestWrap_NilCallable(t *testing.T) {
	t.Parallel()
	expectViolation(t, "flow: wrap callable must not be nil", func() {
		Wrap[int, int](nil)
	})
}

func TestPure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	upper := Pure(func(ctx context.Context, s string) string { return s + "!" })

	o := upper(ctx, "hey").Outcome()
	if !o.IsSuccess() || o.Value() != "hey!" {
		t.Fatalf("expected success with 'hey!', got: success=%v, val=%v, err=%v", o.IsSuccess(), o.Value(), o.Reason())
	}
}

func TestPure_PanicRejects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	panicking := Pure(func(ctx context.Context, s string) string { panic("boom") })

	o := panicking(ctx, "x").Outcome()
	var pe *promise.PanicError
	if !errors.As(o.Reason(), &pe) || pe.Value != "boom" {
		t.Fatalf("expected a PanicError carrying 'boom', got %v", o.Reason())
	}
}

func TestAdopt_AdoptsOutcomeUnchanged(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("inner")

	ok := Adopt(func(ctx context.Context, n int) *promise.Future[int] { return promise.Resolved(n + 1) })
	if o := ok(ctx, 1).Outcome(); !o.IsSuccess() || o.Value() != 2 {
		t.Fatalf("expected success with 2, got: success=%v, val=%v, err=%v", o.IsSuccess(), o.Value(), o.Reason())
	}

	bad := Adopt(func(ctx context.Context, n int) *promise.Future[int] { return promise.Rejected[int](err) })
	if o := bad(ctx, 1).Outcome(); o.Reason() != err {
		t.Fatalf("expected failure 'inner', got %v", o.Reason())
	}
}

func TestAdopt_NilFutureRejects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	broken := Adopt(func(ctx context.Context, n int) *promise.Future[int] { return nil })

	o := broken(ctx, 1).Outcome()
	if !errors.Is(o.Reason(), ErrNilFuture) {
		t.Fatalf("expected ErrNilFuture, got %v", o.Reason())
	}
}

func TestAdopt_PanicBeforeFutureRejects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	err := errors.New("early")
	broken := Adopt(func(ctx context.Context, n int) *promise.Future[int] { panic(err) })

	o := broken(ctx, 1).Outcome()
	if !errors.Is(o.Reason(), err) {
		t.Fatalf("expected the panicked error, got %v", o.Reason())
	}
}
