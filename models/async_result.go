// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ResultStatus tags the variant held by an [AsyncResult].
type ResultStatus int

const (
	// ResultPending means the fetch has not completed yet.
	ResultPending ResultStatus = iota
	// ResultSuccess means the fetch completed and Value holds the data.
	ResultSuccess
	// ResultFailure means the fetch completed with an error.
	ResultFailure
)

func (s ResultStatus) String() string {
	switch s {
	case ResultPending:
		return "pending"
	case ResultSuccess:
		return "success"
	case ResultFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// AsyncResult is the outcome of an in-flight or completed fetch. It is one of
// Pending, Success(value) or Failure(err).
//
// Values are immutable: fields are unexported and a new fetch produces a new
// AsyncResult rather than mutating an old one. The zero value is Pending.
//
// Construct values only through [Pending], [Success] and [Failure].
type AsyncResult[T any] struct {
	status ResultStatus
	value  T
	err    error
}

// Pending returns a result for a fetch that is still running.
func Pending[T any]() AsyncResult[T] {
	return AsyncResult[T]{status: ResultPending}
}

// Success returns a completed result holding value.
func Success[T any](value T) AsyncResult[T] {
	return AsyncResult[T]{status: ResultSuccess, value: value}
}

// Failure returns a completed result holding err.
func Failure[T any](err error) AsyncResult[T] {
	return AsyncResult[T]{status: ResultFailure, err: err}
}

// Status returns the variant tag.
func (r AsyncResult[T]) Status() ResultStatus {
	return r.status
}

// IsPending reports whether the fetch is still running.
func (r AsyncResult[T]) IsPending() bool {
	return r.status == ResultPending
}

// IsSuccess reports whether the fetch completed successfully.
func (r AsyncResult[T]) IsSuccess() bool {
	return r.status == ResultSuccess
}

// IsFailure reports whether the fetch completed with an error.
func (r AsyncResult[T]) IsFailure() bool {
	return r.status == ResultFailure
}

// Value returns the data and true for a Success, the zero value and false
// otherwise.
func (r AsyncResult[T]) Value() (T, bool) {
	if r.status != ResultSuccess {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the failure cause, or nil for Pending and Success.
func (r AsyncResult[T]) Err() error {
	if r.status != ResultFailure {
		return nil
	}
	return r.err
}
