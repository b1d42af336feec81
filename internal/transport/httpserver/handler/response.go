package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Code: code, Message: message}})
}

// writeValidationError returns every violation in one response so the client
// can show them all at once.
func writeValidationError(w http.ResponseWriter, err error) {
	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	fields := make([]fieldError, 0, len(violations))
	for _, violation := range violations {
		fields = append(fields, fieldError{
			Field:   violation.Field(),
			Message: violationMessage(violation),
		})
	}
	writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: errorBody{
		Code:    "validation_failed",
		Message: "request validation failed",
		Fields:  fields,
	}})
}

func violationMessage(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + violation.Param()
	case "min":
		return "must be at least " + violation.Param()
	case "max":
		return "must be at most " + violation.Param()
	case "url":
		return "must be a valid url"
	default:
		return "is invalid"
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
