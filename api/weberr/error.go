package weberr

import (
	"net/http"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// RequestError marks an error as caused by the request rather than
// the server.
type RequestError struct {
	Err error
}

func (r *RequestError) Error() string { return r.Err.Error() }

func (r *RequestError) Unwrap() error { return r.Err }

// NewError builds a RequestError that renders msg with the given
// status code.
func NewError(err error, msg string, status int, opts ...Opt) error {
	e := &RequestError{Err: err}
	opts = append(opts, WithResponse(&ErrorResponse{msg}, status))
	return Wrap(e, opts...)
}

func NotFound(err error, opts ...Opt) error {
	return NewError(err, "the resource could not be found", http.StatusNotFound, opts...)
}

func BadRequest(err error, opts ...Opt) error {
	return NewError(err, "bad request", http.StatusBadRequest, opts...)
}

// Unprocessable renders the error's own message with a 422. Coupon
// rejections use it: the message is meant for user display.
func Unprocessable(err error, opts ...Opt) error {
	return NewError(err, err.Error(), http.StatusUnprocessableEntity, opts...)
}

func InternalError(err error, opts ...Opt) error {
	return NewError(err, "the server encountered a problem and could not process your request", http.StatusInternalServerError, opts...)
}

func TooManyRequests(err error, opts ...Opt) error {
	return NewError(err, "too many requests, slow down", http.StatusTooManyRequests, opts...)
}
