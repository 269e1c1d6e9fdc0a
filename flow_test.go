package funcz

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

func TestFlow(t *testing.T) {
	t.Run("Steps Run Left To Right", func(t *testing.T) {
		flow := NewFlow("math",
			Lift("add-three", func(_ context.Context, n int) int { return n + 3 }),
			Lift("double", func(_ context.Context, n int) int { return n * 2 }),
		)
		defer flow.Close() //nolint:errcheck

		result, err := flow.Process(context.Background(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// (3+3)*2, not (3*2)+3
		if result != 12 {
			t.Errorf("expected 12, got %d", result)
		}
	})

	t.Run("Empty Flow Returns Input", func(t *testing.T) {
		flow := NewFlow[string]("empty")
		defer flow.Close() //nolint:errcheck

		result, err := flow.Process(context.Background(), "through")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != "through" {
			t.Errorf("expected input back, got %q", result)
		}
	})

	t.Run("Stops At First Error", func(t *testing.T) {
		var afterFailure bool
		flow := NewFlow("fail-fast",
			LiftErr("boom", func(_ context.Context, n int) (int, error) {
				return 0, errors.New("boom")
			}),
			Lift("never", func(_ context.Context, n int) int {
				afterFailure = true
				return n
			}),
		)
		defer flow.Close() //nolint:errcheck

		_, err := flow.Process(context.Background(), 1)
		if err == nil {
			t.Fatal("expected error")
		}
		if afterFailure {
			t.Error("expected no steps to run after the failure")
		}
	})

	t.Run("Wraps Step Error With Path And Input", func(t *testing.T) {
		sentinel := errors.New("validation failed")
		flow := NewFlow("orders",
			Lift("normalize", func(_ context.Context, s string) string {
				return strings.TrimSpace(s)
			}),
			LiftEffect("validate", func(_ context.Context, s string) error {
				if s == "" {
					return sentinel
				}
				return nil
			}),
		)
		defer flow.Close() //nolint:errcheck

		_, err := flow.Process(context.Background(), "   ")
		if err == nil {
			t.Fatal("expected error")
		}

		var flowErr *Error[string]
		if !errors.As(err, &flowErr) {
			t.Fatalf("expected *Error, got %T", err)
		}
		if !errors.Is(err, sentinel) {
			t.Error("expected cause to survive wrapping")
		}
		if len(flowErr.Path) != 2 || flowErr.Path[0] != "orders" || flowErr.Path[1] != "validate" {
			t.Errorf("unexpected path: %v", flowErr.Path)
		}
		// InputData holds the value the failing step received, after normalize ran.
		if flowErr.InputData != "" {
			t.Errorf("expected normalized input %q, got %q", "", flowErr.InputData)
		}
	})

	t.Run("Nested Flow Prepends Outer Name", func(t *testing.T) {
		inner := NewFlow("inner",
			LiftErr("explode", func(_ context.Context, n int) (int, error) {
				return 0, errors.New("inner failure")
			}),
		)
		defer inner.Close() //nolint:errcheck

		outer := NewFlow("outer", inner.AsStep())
		defer outer.Close() //nolint:errcheck

		_, err := outer.Process(context.Background(), 1)
		var flowErr *Error[int]
		if !errors.As(err, &flowErr) {
			t.Fatalf("expected *Error, got %T", err)
		}
		want := []Name{"outer", "inner", "explode"}
		if len(flowErr.Path) != len(want) {
			t.Fatalf("unexpected path: %v", flowErr.Path)
		}
		for i, name := range want {
			if flowErr.Path[i] != name {
				t.Errorf("path[%d]: expected %q, got %q", i, name, flowErr.Path[i])
			}
		}
	})

	t.Run("Classifies Context Errors", func(t *testing.T) {
		flow := NewFlow("ctx",
			LiftErr("canceled", func(ctx context.Context, n int) (int, error) {
				return 0, context.Canceled
			}),
		)
		defer flow.Close() //nolint:errcheck

		_, err := flow.Process(context.Background(), 1)
		var flowErr *Error[int]
		if !errors.As(err, &flowErr) {
			t.Fatalf("expected *Error, got %T", err)
		}
		if !flowErr.IsCanceled() {
			t.Error("expected canceled classification")
		}
		if flowErr.IsTimeout() {
			t.Error("did not expect timeout classification")
		}
	})

	t.Run("Register Appends Steps", func(t *testing.T) {
		flow := NewFlow[int]("grow")
		defer flow.Close() //nolint:errcheck

		flow.Register(Lift("inc", func(_ context.Context, n int) int { return n + 1 }))
		flow.Register(Lift("inc-again", func(_ context.Context, n int) int { return n + 1 }))

		if flow.Len() != 2 {
			t.Fatalf("expected 2 steps, got %d", flow.Len())
		}
		result, err := flow.Process(context.Background(), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != 2 {
			t.Errorf("expected 2, got %d", result)
		}
	})

	t.Run("SetSteps Replaces Steps", func(t *testing.T) {
		flow := NewFlow("swap",
			Lift("old", func(_ context.Context, n int) int { return n * 10 }),
		)
		defer flow.Close() //nolint:errcheck

		flow.SetSteps(Lift("new", func(_ context.Context, n int) int { return n + 1 }))
		result, err := flow.Process(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != 2 {
			t.Errorf("expected replaced behavior, got %d", result)
		}

		steps := flow.Steps()
		if len(steps) != 1 || steps[0].Name() != "new" {
			t.Errorf("unexpected steps: %v", steps)
		}
	})

	t.Run("Name Metrics Tracer Accessors", func(t *testing.T) {
		flow := NewFlow[int]("accessors")
		defer flow.Close() //nolint:errcheck

		if flow.Name() != "accessors" {
			t.Errorf("expected name 'accessors', got %q", flow.Name())
		}
		if flow.Metrics() == nil {
			t.Error("expected metrics registry")
		}
		if flow.Tracer() == nil {
			t.Error("expected tracer")
		}
	})

	t.Run("Concurrent Unrelated Calls Do Not Interfere", func(t *testing.T) {
		flow := NewFlow("concurrent",
			Lift("double", func(_ context.Context, n int) int { return n * 2 }),
		)
		defer flow.Close() //nolint:errcheck

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				result, err := flow.Process(context.Background(), n)
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				if result != n*2 {
					t.Errorf("expected %d, got %d", n*2, result)
				}
			}(i)
		}
		wg.Wait()
	})

	t.Run("Deterministic Durations With Fake Clock", func(t *testing.T) {
		clock := clockz.NewFakeClock()
		flow := NewFlow("timed",
			LiftErr("slow-fail", func(_ context.Context, n int) (int, error) {
				clock.Advance(100 * time.Millisecond)
				return 0, errors.New("slow failure")
			}),
		).WithClock(clock)
		defer flow.Close() //nolint:errcheck

		_, err := flow.Process(context.Background(), 1)
		var flowErr *Error[int]
		if !errors.As(err, &flowErr) {
			t.Fatalf("expected *Error, got %T", err)
		}
		if flowErr.Duration != 100*time.Millisecond {
			t.Errorf("expected 100ms duration, got %v", flowErr.Duration)
		}
	})

	t.Run("Emits Error Hook", func(t *testing.T) {
		flow := NewFlow("hooked",
			LiftErr("fail", func(_ context.Context, n int) (int, error) {
				return 0, errors.New("hook me")
			}),
		)
		defer flow.Close() //nolint:errcheck

		events := make(chan FlowEvent, 1)
		if err := flow.OnError(func(_ context.Context, event FlowEvent) error {
			events <- event
			return nil
		}); err != nil {
			t.Fatalf("failed to register hook: %v", err)
		}

		_, _ = flow.Process(context.Background(), 1) //nolint:errcheck

		select {
		case event := <-events:
			if event.Name != "hooked" || event.StepName != "fail" {
				t.Errorf("unexpected event: %+v", event)
			}
			if event.Success {
				t.Error("expected failure event")
			}
			if event.Error == nil {
				t.Error("expected error in event")
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for error event")
		}
	})

	t.Run("Emits Step And Completed Hooks", func(t *testing.T) {
		flow := NewFlow("observed",
			Lift("one", func(_ context.Context, n int) int { return n + 1 }),
			Lift("two", func(_ context.Context, n int) int { return n + 1 }),
		)
		defer flow.Close() //nolint:errcheck

		stepEvents := make(chan FlowEvent, 2)
		completed := make(chan FlowEvent, 1)
		if err := flow.OnStep(func(_ context.Context, event FlowEvent) error {
			stepEvents <- event
			return nil
		}); err != nil {
			t.Fatalf("failed to register step hook: %v", err)
		}
		if err := flow.OnCompleted(func(_ context.Context, event FlowEvent) error {
			completed <- event
			return nil
		}); err != nil {
			t.Fatalf("failed to register completed hook: %v", err)
		}

		if _, err := flow.Process(context.Background(), 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for i := 0; i < 2; i++ {
			select {
			case event := <-stepEvents:
				if !event.Success {
					t.Errorf("expected success step event, got %+v", event)
				}
				if event.StepCount != 2 {
					t.Errorf("expected step count 2, got %d", event.StepCount)
				}
			case <-time.After(time.Second):
				t.Fatal("timed out waiting for step event")
			}
		}

		select {
		case event := <-completed:
			if !event.Success || event.Name != "observed" {
				t.Errorf("unexpected completed event: %+v", event)
			}
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for completed event")
		}
	})
}
