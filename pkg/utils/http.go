package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeForbidden    = "FORBIDDEN"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL_ERROR"
)

var statusCodes = map[int]string{
	http.StatusBadRequest:          CodeValidation,
	http.StatusNotFound:            CodeNotFound,
	http.StatusConflict:            CodeConflict,
	http.StatusForbidden:           CodeForbidden,
	http.StatusUnauthorized:        CodeUnauthorized,
	http.StatusInternalServerError: CodeInternal,
}

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// NewValidator reports fields by their json names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidationErrorResponse contains field-specific validation messages
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

// ValidationFields flattens validator errors into field -> failed tag.
func ValidationFields(err error) map[string]string {
	fields := make(map[string]string)

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, err := range ve {
			field := err.Namespace()
			if _, rest, ok := strings.Cut(field, "."); ok {
				field = rest
			}
			fields[field] = err.Tag()
		}
	}
	return fields
}

func WriteValidationError(w http.ResponseWriter, err error) error {
	return WriteFieldErrors(w, ValidationFields(err))
}

func WriteFieldErrors(w http.ResponseWriter, fields map[string]string) error {
	res := ValidationErrorResponse{
		Code:    CodeValidation,
		Message: "invalid request",
		Fields:  fields,
	}
	return WriteJSON(w, res, http.StatusBadRequest)
}

// ErrorResponse describes a standard error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func WriteError(w http.ResponseWriter, message string, code int) error {
	return WriteErrorDetails(w, message, nil, code)
}

func WriteErrorDetails(w http.ResponseWriter, message string, details any, code int) error {
	res := ErrorResponse{
		Code:    statusCodes[code],
		Message: message,
		Details: details,
	}
	if res.Code == "" {
		res.Code = http.StatusText(code)
	}
	return WriteJSON(w, res, code)
}
