// Package form implements the generic entry-form state machine: draft
// edit state, two-tier error tracking, and the validate/submit lifecycle.
// Concrete forms supply the validation predicate and the submission action
// through the Form interface; the engine supplies the surrounding
// bookkeeping. State is held as value snapshots replaced wholesale on each
// update, so every transition is a pure function of (old state, event).
package form

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"
)

// GeneralField is the error key used for submission failures, as opposed to
// field-scoped validation errors.
const GeneralField = "general"

// DefaultSubmitTimeout bounds a single submission round trip so a hung
// backend cannot leave the engine in Submitting forever.
const DefaultSubmitTimeout = 30 * time.Second

var (
	// ErrValidation is returned by Submit when validation fails. Nothing is
	// submitted; the field errors describe what failed.
	ErrValidation = errors.New("validation failed")
	// ErrSubmitInFlight is returned when Submit is called while a previous
	// submission is still in flight. The call has no effect.
	ErrSubmitInFlight = errors.New("submission already in flight")
)

// State is the submission lifecycle state of an engine.
type State int

const (
	// StateIdle means no submission is in flight.
	StateIdle State = iota
	// StateSubmitting means a submission round trip is in progress.
	StateSubmitting
)

// Errors maps field names to error messages. The GeneralField key carries
// submission failures. Treat instances as immutable snapshots.
type Errors map[string]string

// Get returns the message for a field, or empty.
func (e Errors) Get(field string) string { return e[field] }

// General returns the submission failure message, or empty.
func (e Errors) General() string { return e[GeneralField] }

// HasFieldErrors reports whether any non-general error is present.
func (e Errors) HasFieldErrors() bool {
	for field := range e {
		if field != GeneralField {
			return true
		}
	}
	return false
}

// Form is the contract a concrete form implements: a validation predicate
// reporting field errors through the sink, and the submission action.
type Form[D any] interface {
	Validate(draft D, setErr func(field, msg string)) bool
	Submit(ctx context.Context, draft D) error
}

// Engine drives a single form instance: it owns the draft, the error map,
// and the submission state. Field edits and submissions are expected from
// one UI goroutine; the mutex exists so a submission running in a
// background command cannot race a concurrent edit.
type Engine[D any] struct {
	mu      sync.Mutex
	form    Form[D]
	draft   D
	errors  Errors
	state   State
	timeout time.Duration
}

// NewEngine creates an engine around the given concrete form with an empty
// draft and the default submit timeout.
func NewEngine[D any](f Form[D]) *Engine[D] {
	return &Engine[D]{
		form:    f,
		errors:  Errors{},
		timeout: DefaultSubmitTimeout,
	}
}

// SetSubmitTimeout overrides the per-submission timeout. Zero disables it.
func (e *Engine[D]) SetSubmitTimeout(d time.Duration) {
	e.mu.Lock()
	e.timeout = d
	e.mu.Unlock()
}

// Draft returns the current draft snapshot.
func (e *Engine[D]) Draft() D {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// SetDraft replaces the draft wholesale. Used for edit-mode seeding and for
// the create-mode reset after a successful submission.
func (e *Engine[D]) SetDraft(d D) {
	e.mu.Lock()
	e.draft = d
	e.mu.Unlock()
}

// UpdateField merges a single named field into the draft via apply and
// clears that field's error: the user is actively correcting it. The whole
// draft is replaced atomically; other errors are untouched.
func (e *Engine[D]) UpdateField(field string, apply func(*D)) {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.draft
	apply(&next)
	e.draft = next

	if _, ok := e.errors[field]; ok {
		m := maps.Clone(e.errors)
		delete(m, field)
		e.errors = m
	}
}

// Errors returns a snapshot of the current error map.
func (e *Engine[D]) Errors() Errors {
	e.mu.Lock()
	defer e.mu.Unlock()
	return maps.Clone(e.errors)
}

// FieldError returns the message for a single field, or empty.
func (e *Engine[D]) FieldError(field string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.errors[field]
}

// SetFieldError records an error for a field.
func (e *Engine[D]) SetFieldError(field, msg string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	m := maps.Clone(e.errors)
	m[field] = msg
	e.errors = m
}

// ClearFieldError removes a single field's error.
func (e *Engine[D]) ClearFieldError(field string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.errors[field]; !ok {
		return
	}
	m := maps.Clone(e.errors)
	delete(m, field)
	e.errors = m
}

// ClearErrors removes every error, field-scoped and general.
func (e *Engine[D]) ClearErrors() {
	e.mu.Lock()
	e.errors = Errors{}
	e.mu.Unlock()
}

// State returns the current lifecycle state.
func (e *Engine[D]) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Submitting reports whether a submission is in flight.
func (e *Engine[D]) Submitting() bool {
	return e.State() == StateSubmitting
}

// CanSubmit reports whether the current draft would pass validation. It is
// queried while rendering to drive the submit control's enabled state, so
// it discards messages instead of touching the error map.
func (e *Engine[D]) CanSubmit() bool {
	e.mu.Lock()
	draft := e.draft
	submitting := e.state == StateSubmitting
	e.mu.Unlock()

	if submitting {
		return false
	}
	return e.form.Validate(draft, func(string, string) {})
}

// Submit runs the validate-then-submit sequence:
//
//   - A second call while Submitting returns ErrSubmitInFlight and has no
//     further effect.
//   - Prior errors, including a general error from a previous attempt, are
//     cleared before validation runs, so errors never accumulate.
//   - On validation failure nothing is submitted and ErrValidation is
//     returned with the field errors populated.
//   - The submission action receives a draft snapshot taken at submit time;
//     edits made while the call is in flight land in the next submission.
//   - On failure the error message is recorded under GeneralField and the
//     error is returned to the caller, never swallowed.
//
// Success side effects (event emission, draft reset) belong to the concrete
// form's Submit implementation.
func (e *Engine[D]) Submit(ctx context.Context) error {
	e.mu.Lock()
	if e.state == StateSubmitting {
		e.mu.Unlock()
		return ErrSubmitInFlight
	}

	next := Errors{}
	ok := e.form.Validate(e.draft, func(field, msg string) {
		next[field] = msg
	})
	e.errors = next
	if !ok {
		e.mu.Unlock()
		return ErrValidation
	}

	e.state = StateSubmitting
	snapshot := e.draft
	timeout := e.timeout
	e.mu.Unlock()

	cancel := func() {}
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	}
	err := e.form.Submit(ctx, snapshot)
	cancel()

	e.mu.Lock()
	e.state = StateIdle
	if err != nil {
		m := maps.Clone(e.errors)
		m[GeneralField] = err.Error()
		e.errors = m
	}
	e.mu.Unlock()

	return err
}
