// Package web carries the small framework the HTTP facade is built
// on: context-aware handlers, middleware wrapping and JSON helpers.
package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Handler is an http.HandlerFunc that can fail; middleware decides
// how failures turn into responses.
type Handler func(ctx context.Context, w http.ResponseWriter, r *http.Request) error

type Middleware func(Handler) Handler

// WrapMiddleware layers mw around handler, first element outermost.
func WrapMiddleware(mw []Middleware, handler Handler) Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h := mw[i]
		if h != nil {
			handler = h(handler)
		}
	}
	return handler
}

// Respond marshals data as the JSON response body.
func Respond(ctx context.Context, w http.ResponseWriter, data any, statusCode int) error {
	if statusCode == http.StatusNoContent {
		w.WriteHeader(statusCode)
		return nil
	}

	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("cannot marshal response data: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("cannot write response data: %w", err)
	}
	return nil
}

// maxBodyBytes bounds request bodies; tree edits can embed payloads
// but nothing legitimate approaches a megabyte of JSON per request.
const maxBodyBytes = 1 << 20

// Decode reads the request body into val, rejecting unknown fields.
func Decode(w http.ResponseWriter, r *http.Request, val any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(val)
}

// Param returns a named mux route variable.
func Param(r *http.Request, key string) string {
	return mux.Vars(r)[key]
}

// IntParam returns a named route variable parsed as an integer.
func IntParam(r *http.Request, key string) (int, error) {
	v, err := strconv.Atoi(Param(r, key))
	if err != nil {
		return 0, fmt.Errorf("parameter %q is not a number", key)
	}
	return v, nil
}
