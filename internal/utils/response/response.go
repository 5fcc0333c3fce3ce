// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Success responses may be any JSON shape (a record, a list). Error responses
// always look like:
//
//	{ "status": "error", "error": "Name not found." }
package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Response is the standard envelope returned for error cases.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`

	// Fields lists per-field validation failures, when there are any.
	Fields []string `json:"fields,omitempty"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes a JSON-encoded response with the given HTTP status code.
// Header() → WriteHeader() → body, in that order; headers are locked after
// WriteHeader.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard Response shape.
func GeneralError(err error) Response {
	return Error(err.Error())
}

// Error builds an error Response from a plain message.
func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError builds an error Response carrying msg plus one readable
// sentence per failing field.
//
//	{ "status": "error", "error": "Invalid name or age.",
//	  "fields": ["field name must not be blank", "field age must be greater than 0"] }
func ValidationError(msg string, errs validator.ValidationErrors) Response {
	fields := make([]string, 0, len(errs))

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			fields = append(fields, fmt.Sprintf("field %s is required", e.Field()))
		case "notblank":
			fields = append(fields, fmt.Sprintf("field %s must not be blank", e.Field()))
		case "gt":
			fields = append(fields, fmt.Sprintf("field %s must be greater than %s", e.Field(), e.Param()))
		case "max":
			fields = append(fields, fmt.Sprintf("field %s must be at most %s", e.Field(), e.Param()))
		default:
			fields = append(fields, fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  msg,
		Fields: fields,
	}
}
