package entities

import (
	"errors"
	"strings"
)

// Error kinds. Every domain error wraps exactly one of them.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

type domainError struct {
	kind error
	msg  string
}

func newError(kind error, msg string) error {
	return &domainError{kind: kind, msg: msg}
}

func (e *domainError) Error() string { return e.msg }
func (e *domainError) Unwrap() error { return e.kind }

var (
	ErrOrderNotFound      = newError(ErrNotFound, "order not found")
	ErrBagNotFound        = newError(ErrNotFound, "bag not found")
	ErrClientNotFound     = newError(ErrNotFound, "client not found")
	ErrWorkerNotFound     = newError(ErrNotFound, "worker not found")
	ErrUserNotFound       = newError(ErrNotFound, "user not found")
	ErrBagOccupied        = newError(ErrConflict, "bag is already occupied")
	ErrBagExists          = newError(ErrConflict, "bag already exists")
	ErrBagInUse           = newError(ErrConflict, "bag is referenced by existing orders")
	ErrClientExists       = newError(ErrConflict, "client with this national id already exists")
	ErrClientHasOrders    = newError(ErrConflict, "client has associated orders")
	ErrWorkerExists       = newError(ErrConflict, "worker with this name already exists")
	ErrWorkerHasOrders    = newError(ErrConflict, "worker has associated orders")
	ErrUserExists         = newError(ErrConflict, "user with this email already exists")
	ErrCannotDeleteSelf   = newError(ErrConflict, "cannot delete the current user")
	ErrInvalidTransition  = newError(ErrForbidden, "status transition not allowed")
	ErrOrderNotEditable   = newError(ErrForbidden, "order can only be edited while PENDIENTE")
	ErrInsufficientRole   = newError(ErrForbidden, "insufficient role")
	ErrInvalidCredentials = newError(ErrUnauthorized, "invalid email or password")
	ErrInvalidToken       = newError(ErrUnauthorized, "invalid or expired token")
	ErrInvalidImage       = newError(ErrValidation, "invalid image")
)

// PublicMessage returns the caller-facing message of the domain error wrapped by err.
func PublicMessage(err error) (string, bool) {
	var de *domainError
	if errors.As(err, &de) {
		return de.msg, true
	}
	return "", false
}

// BatchError reports the ids of a batch request that made the whole batch fail.
type BatchError struct {
	Kind error
	Msg  string
	IDs  []string
}

func (e *BatchError) Error() string {
	return e.Msg + ": " + strings.Join(e.IDs, ", ")
}

func (e *BatchError) Unwrap() error { return e.Kind }

func NewBatchError(kind error, msg string, ids []string) *BatchError {
	return &BatchError{Kind: kind, Msg: msg, IDs: ids}
}

// FieldErrors maps request field names to human-readable messages.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	return "invalid request"
}

func (f FieldErrors) Unwrap() error { return ErrValidation }

// ImageError describes why an uploaded image was rejected.
type ImageError struct {
	Reason string
}

func (e *ImageError) Error() string { return "invalid image: " + e.Reason }
func (e *ImageError) Unwrap() error { return ErrInvalidImage }
