package errors

import "net/http"

// Kind is a machine-readable error class, sent to clients alongside the
// message so they can tell "this thread is full" from a transient failure.
type Kind string

const (
	KindValidation      Kind = "validation"
	KindNotFound        Kind = "not_found"
	KindReadOnly        Kind = "read_only"
	KindThreadClosed    Kind = "thread_closed"
	KindCapacityReached Kind = "capacity_reached"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
	Kind       Kind
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func Validation(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest, Kind: KindValidation}
}

func NotFound(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound, Kind: KindNotFound}
}

func ReadOnly(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden, Kind: KindReadOnly}
}

func ThreadClosed(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusConflict, Kind: KindThreadClosed}
}

func CapacityReached(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusConflict, Kind: KindCapacityReached}
}
