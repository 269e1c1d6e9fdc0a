package funcz

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Metric keys for Flow observability.
const (
	FlowProcessedTotal = metricz.Key("flow.processed.total")
	FlowSucceededTotal = metricz.Key("flow.succeeded.total")
	FlowErrorsTotal    = metricz.Key("flow.errors.total")
)

// Span names for Flow.
const (
	FlowProcessSpan = tracez.Key("flow.process")
)

// Span tags for Flow.
const (
	FlowTagFlow       = tracez.Tag("flow.name")
	FlowTagSteps      = tracez.Tag("flow.steps")
	FlowTagSuccess    = tracez.Tag("flow.success")
	FlowTagFailedStep = tracez.Tag("flow.failed_step")

	// Hook event keys.
	FlowEventStep      = hookz.Key("flow.step")
	FlowEventCompleted = hookz.Key("flow.completed")
	FlowEventError     = hookz.Key("flow.error")
)

// FlowEvent represents a flow execution event. It is emitted via hookz
// after each step, on completion, and on failure, allowing external
// systems to track flow behavior without modifying the flow itself.
type FlowEvent struct {
	Name      Name          // Flow name
	StepName  Name          // Step that produced the event (empty for flow-level events)
	StepIndex int           // Index of the step within the flow
	StepCount int           // Total number of steps at execution time
	Success   bool          // Whether the step or flow succeeded
	Error     error         // Error if the step failed
	Duration  time.Duration // Elapsed time for the step or flow
	Timestamp time.Time     // When the event occurred
}

// Flow executes a sequence of same-typed steps strictly left to right,
// stopping at the first error. It supplies the reading order that piped
// chains are written in: the first step listed is the first to run.
//
//	flow := funcz.NewFlow("normalize-text",
//	    funcz.Lift("trim", func(_ context.Context, s string) string {
//	        return strings.TrimSpace(s)
//	    }),
//	    funcz.Lift("upper", func(_ context.Context, s string) string {
//	        return strings.ToUpper(s)
//	    }),
//	)
//	result, err := flow.Process(ctx, "  mamma mia!  ") // "MAMMA MIA!"
//
// When a step fails, Process returns a *Error[T] whose Path names the flow
// and the failing step, alongside the value the step received. Flow adds
// no retries, recovery, or fallback: the first failure surfaces
// immediately, and effects performed by earlier steps stay performed.
//
// Panics in step functions are not recovered. A panic is a fatal condition
// and Flow will not convert it into a recoverable error.
//
// The step list can be modified at runtime; Process works on a snapshot
// taken under the lock, so in-flight executions are unaffected by
// concurrent reconfiguration.
//
// # Observability
//
// Metrics:
//   - flow.processed.total: Counter of Process invocations
//   - flow.succeeded.total: Counter of runs that completed all steps
//   - flow.errors.total: Counter of runs stopped by a step failure
//
// Traces:
//   - flow.process: Span covering the whole run, tagged with the flow
//     name, step count, success, and the failing step if any
//
// Events (via hooks):
//   - flow.step: Fired after each step completes successfully
//   - flow.completed: Fired when every step has run
//   - flow.error: Fired when a step fails
//
// Timestamps and durations come from an injectable clock (WithClock),
// which makes timing assertions deterministic under clockz.NewFakeClock.
type Flow[T any] struct {
	steps []Step[T]
	clock clockz.Clock
	name  Name
	mu    sync.RWMutex

	// Observability
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[FlowEvent]
}

// NewFlow creates a Flow that runs the given steps in order.
func NewFlow[T any](name Name, steps ...Step[T]) *Flow[T] {
	registry := metricz.New()
	registry.Counter(FlowProcessedTotal)
	registry.Counter(FlowSucceededTotal)
	registry.Counter(FlowErrorsTotal)

	return &Flow[T]{
		name:    name,
		steps:   steps,
		metrics: registry,
		tracer:  tracez.New(),
		hooks:   hookz.New[FlowEvent](),
	}
}

// Process implements left-to-right execution over the current steps.
func (f *Flow[T]) Process(ctx context.Context, input T) (T, error) {
	f.mu.RLock()
	steps := make([]Step[T], len(f.steps))
	copy(steps, f.steps)
	f.mu.RUnlock()
	clock := f.getClock()

	ctx, span := f.tracer.StartSpan(ctx, FlowProcessSpan)
	defer span.Finish()
	span.SetTag(FlowTagFlow, string(f.name))
	span.SetTag(FlowTagSteps, fmt.Sprintf("%d", len(steps)))

	f.metrics.Counter(FlowProcessedTotal).Inc()

	flowStart := clock.Now()
	value := input
	for i, step := range steps {
		stepStart := clock.Now()
		result, err := step.Process(ctx, value)
		stepDuration := clock.Now().Sub(stepStart)
		if err != nil {
			f.metrics.Counter(FlowErrorsTotal).Inc()
			span.SetTag(FlowTagSuccess, "false")
			span.SetTag(FlowTagFailedStep, string(step.Name()))

			_ = f.hooks.Emit(ctx, FlowEventError, FlowEvent{ //nolint:errcheck
				Name:      f.name,
				StepName:  step.Name(),
				StepIndex: i,
				StepCount: len(steps),
				Success:   false,
				Error:     err,
				Duration:  stepDuration,
				Timestamp: clock.Now(),
			})

			// Prepend this flow's name when a nested flow already built a path.
			var flowErr *Error[T]
			if errors.As(err, &flowErr) {
				flowErr.Path = append([]Name{f.name}, flowErr.Path...)
				return result, flowErr
			}
			return result, &Error[T]{
				Path:      []Name{f.name, step.Name()},
				InputData: value,
				Err:       err,
				Timestamp: clock.Now(),
				Duration:  stepDuration,
				Timeout:   errors.Is(err, context.DeadlineExceeded),
				Canceled:  errors.Is(err, context.Canceled),
			}
		}

		_ = f.hooks.Emit(ctx, FlowEventStep, FlowEvent{ //nolint:errcheck
			Name:      f.name,
			StepName:  step.Name(),
			StepIndex: i,
			StepCount: len(steps),
			Success:   true,
			Duration:  stepDuration,
			Timestamp: clock.Now(),
		})

		value = result
	}

	f.metrics.Counter(FlowSucceededTotal).Inc()
	span.SetTag(FlowTagSuccess, "true")

	_ = f.hooks.Emit(ctx, FlowEventCompleted, FlowEvent{ //nolint:errcheck
		Name:      f.name,
		StepCount: len(steps),
		Success:   true,
		Duration:  clock.Now().Sub(flowStart),
		Timestamp: clock.Now(),
	})

	return value, nil
}

// AsStep exposes the flow as a single Step so flows can nest inside other
// flows. Errors from the inner flow keep their path; the outer flow
// prepends its own name.
func (f *Flow[T]) AsStep() Step[T] {
	return Step[T]{
		name: f.name,
		fn:   f.Process,
	}
}

// Register appends steps to the end of the flow.
func (f *Flow[T]) Register(steps ...Step[T]) *Flow[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.steps = append(f.steps, steps...)
	return f
}

// SetSteps replaces the flow's steps.
func (f *Flow[T]) SetSteps(steps ...Step[T]) *Flow[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.steps = steps
	return f
}

// Steps returns a copy of the current step list.
func (f *Flow[T]) Steps() []Step[T] {
	f.mu.RLock()
	defer f.mu.RUnlock()
	steps := make([]Step[T], len(f.steps))
	copy(steps, f.steps)
	return steps
}

// Len returns the number of steps in the flow.
func (f *Flow[T]) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.steps)
}

// Name returns the name of this flow.
func (f *Flow[T]) Name() Name {
	return f.name
}

// Metrics returns the metrics registry for this flow.
func (f *Flow[T]) Metrics() *metricz.Registry {
	return f.metrics
}

// Tracer returns the tracer for this flow.
func (f *Flow[T]) Tracer() *tracez.Tracer {
	return f.tracer
}

// WithClock sets a custom clock for testing.
func (f *Flow[T]) WithClock(clock clockz.Clock) *Flow[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clock = clock
	return f
}

// getClock returns the clock to use.
func (f *Flow[T]) getClock() clockz.Clock {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.clock == nil {
		return clockz.RealClock
	}
	return f.clock
}

// Close gracefully shuts down observability components.
func (f *Flow[T]) Close() error {
	if f.tracer != nil {
		f.tracer.Close()
	}
	f.hooks.Close()
	return nil
}

// OnStep registers a handler called asynchronously after each step
// completes successfully.
func (f *Flow[T]) OnStep(handler func(context.Context, FlowEvent) error) error {
	_, err := f.hooks.Hook(FlowEventStep, handler)
	return err
}

// OnCompleted registers a handler called asynchronously when a run
// finishes every step.
func (f *Flow[T]) OnCompleted(handler func(context.Context, FlowEvent) error) error {
	_, err := f.hooks.Hook(FlowEventCompleted, handler)
	return err
}

// OnError registers a handler called asynchronously when a step fails.
func (f *Flow[T]) OnError(handler func(context.Context, FlowEvent) error) error {
	_, err := f.hooks.Hook(FlowEventError, handler)
	return err
}
