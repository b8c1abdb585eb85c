package services

import (
	"encoding/json"
	"errors"
)

// Result is the uniform outcome of an entry operation: either a value or
// an error, never both.
type Result[T any] struct {
	data T
	err  error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{data: v}
}

// Fail wraps an error. A nil error is replaced so the result stays failed.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = errors.New("unknown error")
	}
	return Result[T]{err: err}
}

func (r Result[T]) OK() bool {
	return r.err == nil
}

func (r Result[T]) Data() T {
	return r.data
}

func (r Result[T]) Err() error {
	return r.err
}

type resultJSON struct {
	Data  any     `json:"data"`
	Error *string `json:"error"`
}

// MarshalJSON renders {"data": v, "error": null} or {"data": null, "error": msg}.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.err != nil {
		msg := r.err.Error()
		return json.Marshal(resultJSON{Error: &msg})
	}
	return json.Marshal(resultJSON{Data: r.data})
}
