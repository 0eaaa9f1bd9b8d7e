package pipeline

import "github.com/fwojciec/newslens"

// Outcome is the result of a single stage: either a value or a failure
// reason with the underlying error, if any.
type Outcome[T any] struct {
	Value  T
	Reason newslens.Failure
	Err    error
}

// OK reports whether the stage succeeded.
func (o Outcome[T]) OK() bool {
	return o.Reason == newslens.FailureNone
}

func succeeded[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v}
}

func failed[T any](reason newslens.Failure, err error) Outcome[T] {
	return Outcome[T]{Reason: reason, Err: err}
}
