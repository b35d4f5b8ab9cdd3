// Package result defines the uniform {data, error} envelope returned by
// every service-boundary operation. Callers check Error before trusting
// Data; raw errors and panics never cross the boundary.
package result

import (
	"errors"
	"fmt"
)

// Result is a two-field envelope: either Data is set, or Error carries a
// human-readable failure message.
type Result[T any] struct {
	Data  *T     `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Ok returns a successful result carrying v.
func Ok[T any](v T) Result[T] {
	return Result[T]{Data: &v}
}

// Err returns a failed result carrying the error's message.
func Err[T any](err error) Result[T] {
	if err == nil {
		return Result[T]{}
	}
	return Result[T]{Error: err.Error()}
}

// Errf returns a failed result with a formatted message.
func Errf[T any](format string, args ...any) Result[T] {
	return Result[T]{Error: fmt.Sprintf(format, args...)}
}

// Failed reports whether the result carries an error.
func (r Result[T]) Failed() bool {
	return r.Error != ""
}

// Err returns the failure as an error, or nil on success.
func (r Result[T]) Err() error {
	if r.Error == "" {
		return nil
	}
	return errors.New(r.Error)
}

// Unwrap returns the payload and error as a conventional Go pair.
// A successful result with no data yields the zero value.
func (r Result[T]) Unwrap() (T, error) {
	var zero T
	if r.Error != "" {
		return zero, errors.New(r.Error)
	}
	if r.Data == nil {
		return zero, nil
	}
	return *r.Data, nil
}

// Recover converts a panic into a failed result. Use in a defer at the
// service boundary so callers above it only ever see the envelope:
//
//	func (s *Service) Op(...) (res result.Result[T]) {
//		defer result.Recover(&res)
//		...
//	}
func Recover[T any](res *Result[T]) {
	if r := recover(); r != nil {
		*res = Result[T]{Error: fmt.Sprint(r)}
	}
}
