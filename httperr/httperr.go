package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies a request failure so handlers can map it to a status code
// at the response boundary instead of collapsing everything into 400.
type Kind int

const (
	KindInvalidCredential Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindInvalidInput
	KindUpstreamFailure
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error // underlying cause, kept for debugging
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "request failed"
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

// Wrap tags an upstream error with a kind, keeping the cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func statusFor(kind Kind) int {
	switch kind {
	case KindInvalidCredential, KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes the JSON error body for err. Untagged errors are treated
// as upstream failures.
func Respond(c *gin.Context, err error) {
	var he *Error
	if !errors.As(err, &he) {
		he = &Error{Kind: KindUpstreamFailure, Err: err}
	}
	c.JSON(statusFor(he.Kind), gin.H{"error": he.Error()})
}

// Abort is Respond plus c.Abort, for middleware.
func Abort(c *gin.Context, err error) {
	var he *Error
	if !errors.As(err, &he) {
		he = &Error{Kind: KindUpstreamFailure, Err: err}
	}
	c.AbortWithStatusJSON(statusFor(he.Kind), gin.H{"error": he.Error()})
}
