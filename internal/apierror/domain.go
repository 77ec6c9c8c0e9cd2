package apierror

// domain.go — closed set of domain error kinds used by the service layer.
// Services return a *DomainError; handlers map it to an HTTP status with
// StatusFor. Anything that is not a *DomainError is treated as infrastructure.

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a domain error.
type Kind int

const (
	// KindValidation — missing/invalid field, non-positive quantity or price.
	KindValidation Kind = iota
	// KindNotFound — a referenced record (fornecedor, produto, ...) does not exist.
	KindNotFound
	// KindIntegrity — a business rule was violated despite individual writes
	// succeeding (e.g. zero line items persisted).
	KindIntegrity
	// KindInfra — database or I/O failure; details are logged, never surfaced.
	KindInfra
)

// DomainError carries a user-facing message plus an optional wrapped cause.
type DomainError struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *DomainError) Error() string { return e.Msg }
func (e *DomainError) Unwrap() error { return e.Err }

func Validationf(format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Integrityf(format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: KindIntegrity, Msg: fmt.Sprintf(format, args...)}
}

// Infra wraps an infrastructure failure with a generic user-facing message.
// The cause stays attached for server-side logging.
func Infra(err error) *DomainError {
	return &DomainError{Kind: KindInfra, Msg: "Erro interno ao processar a solicitação", Err: err}
}

// StatusFor is the single mapping from domain errors to HTTP status codes.
func StatusFor(err error) int {
	var de *DomainError
	if !errors.As(err, &de) {
		return http.StatusInternalServerError
	}
	switch de.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindIntegrity:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
