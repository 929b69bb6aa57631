package models

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// StatusRequestCancelled unofficial status code, actually it won't be sent over the wire, we just need a marker
const StatusRequestCancelled = 499

type ErrorWithCode interface {
	error
	Code() int
}

type ErrorMessage struct {
	code    int
	err     error
	Message string `json:"message"`
}

func NewErrorMessage(code int, err error) *ErrorMessage {
	return &ErrorMessage{
		code:    code,
		err:     err,
		Message: err.Error(),
	}
}

func (e *ErrorMessage) Code() int {
	return e.code
}

func (e *ErrorMessage) Error() string {
	return e.err.Error()
}

func (e *ErrorMessage) Unwrap() error {
	return e.err
}

func NewBadRequestError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusBadRequest, err)
}

func NewNotFoundError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusNotFound, err)
}

func NewAlreadyExistsError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusConflict, err)
}

// NewQueueFullError rejects a launch request that found the waiting queue at
// capacity, callers may retry later on their own.
func NewQueueFullError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusTooManyRequests, err)
}

// NewUserLimitError rejects a launch request whose user already holds the
// maximum allowed number of instances.
func NewUserLimitError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusTooManyRequests, err)
}

// NewSessionLimitError rejects a session creation that would exceed the
// configured total session cap.
func NewSessionLimitError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusTooManyRequests, err)
}

func NewServiceUnavailableError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusServiceUnavailable, err)
}

func NewInternalServerError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusInternalServerError, err)
}

// NewTimeoutError marks a queued launch request that was never granted within
// the queue timeout, the request itself was never admitted.
func NewTimeoutError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusGatewayTimeout, err)
}

func NewCancelledError(err error) *ErrorMessage {
	return NewErrorMessage(StatusRequestCancelled, err)
}

func WrapTimeoutErr(err error, msg string) error {
	var e ErrorWithCode
	if errors.Is(err, context.DeadlineExceeded) && !errors.As(err, &e) {
		err = NewTimeoutError(err)
	}
	return errors.Wrap(err, msg)
}

func WrapCancelledErr(err error) error {
	var e ErrorWithCode
	if errors.Is(err, context.Canceled) && !errors.As(err, &e) {
		err = NewCancelledError(err)
	}
	return err
}
