// Package store implements the remote store client: read-only queries against
// the hosted relational database that holds destinations, parks and ride
// statistics.
//
// The client never lets a low-level store failure escape as a panic or a
// bare driver error. Typed queries return a Result that separates three
// outcomes:
//
//   - StatusSuccess: rows were found
//   - StatusEmpty:   the query ran and matched nothing
//   - StatusFailure: the query could not be executed (logged, Err set)
//
// Callers that only care about "something to show" can check OK() and treat
// Empty and Failure alike.
package store

// Status classifies the outcome of a store read.
type Status string

const (
	StatusSuccess Status = "success"
	StatusEmpty   Status = "empty"
	StatusFailure Status = "failure"
)

// Result carries the data of a read together with its outcome.
type Result[T any] struct {
	Status Status `json:"status"`
	Data   T      `json:"data"`
	Err    error  `json:"-"`
}

// OK reports whether the read produced data.
func (r Result[T]) OK() bool { return r.Status == StatusSuccess }

// Failed reports whether the read failed.
func (r Result[T]) Failed() bool { return r.Status == StatusFailure }

// Success wraps data in a successful result.
func Success[T any](data T) Result[T] { return Result[T]{Status: StatusSuccess, Data: data} }

// Empty wraps the zero-row outcome. data should be the empty value callers
// render (e.g. an empty, non-nil slice).
func Empty[T any](data T) Result[T] { return Result[T]{Status: StatusEmpty, Data: data} }

// Failure wraps a failed read. data is the empty value returned to callers.
func Failure[T any](data T, err error) Result[T] {
	return Result[T]{Status: StatusFailure, Data: data, Err: err}
}

// FromSlice classifies a list read: err gives Failure, no rows gives Empty.
// A nil slice is replaced by an empty one so JSON renders [].
func FromSlice[E any](rows []E, err error) Result[[]E] {
	if rows == nil {
		rows = []E{}
	}
	if err != nil {
		return Failure([]E{}, err)
	}
	if len(rows) == 0 {
		return Empty(rows)
	}
	return Success(rows)
}
