// Package weberr decorates errors with the HTTP response they should
// produce and with structured logging fields, keeping both out of the
// core packages.
package weberr

import "errors"

type Opt func(error) error

// Wrap applies the given decorations to err.
func Wrap(err error, opts ...Opt) error {
	for _, opt := range opts {
		err = opt(err)
	}
	return err
}

// WithResponse attaches a response body and status code.
func WithResponse(body any, status int) Opt {
	return func(err error) error {
		return &responseError{error: err, body: body, status: status}
	}
}

// WithFields attaches logging fields.
func WithFields(fields map[string]any) Opt {
	return func(err error) error {
		return &fieldsError{error: err, fields: fields}
	}
}

type responseError struct {
	error
	body   any
	status int
}

func (e *responseError) Response() (any, int) { return e.body, e.status }

func (e *responseError) Unwrap() error { return e.error }

// Response extracts an attached response from anywhere in the chain.
func Response(err error) (body any, status int, ok bool) {
	var re interface{ Response() (any, int) }
	if errors.As(err, &re) {
		body, status = re.Response()
		return body, status, true
	}
	return nil, 0, false
}

type fieldsError struct {
	error
	fields map[string]any
}

func (e *fieldsError) Fields() map[string]any { return e.fields }

func (e *fieldsError) Unwrap() error { return e.error }

// Fields extracts attached logging fields from anywhere in the chain.
func Fields(err error) (map[string]any, bool) {
	var fe interface{ Fields() map[string]any }
	if errors.As(err, &fe) {
		return fe.Fields(), true
	}
	return nil, false
}
