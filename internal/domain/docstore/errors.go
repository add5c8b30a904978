package docstore

import (
	"fmt"
	"strconv"
)

// Code classifies a store failure. Values follow the usual document
// database status codes.
type Code string

const (
	CodeUnavailable        Code = "unavailable"
	CodeUnauthenticated    Code = "unauthenticated"
	CodePermissionDenied   Code = "permission-denied"
	CodeNotFound           Code = "not-found"
	CodeAlreadyExists      Code = "already-exists"
	CodeFailedPrecondition Code = "failed-precondition"
	CodeAborted            Code = "aborted"
	CodeOutOfRange         Code = "out-of-range"
	CodeUnimplemented      Code = "unimplemented"
	CodeInternal           Code = "internal"
	CodeDataLoss           Code = "data-loss"
	CodeDeadlineExceeded   Code = "deadline-exceeded"
	CodeUnknown            Code = "unknown"
)

// Error is returned by store implementations.
type Error struct {
	Code       Code
	Op         string
	Collection string
	Err        error
}

func NewError(code Code, op, collection string, err error) *Error {
	return &Error{Code: code, Op: op, Collection: collection, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("docstore %s %s: %s", e.Op, e.Collection, e.Code)
	}
	return fmt.Sprintf("docstore %s %s: %s: %v", e.Op, e.Collection, e.Code, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func toString(v any) string {
	switch tv := v.(type) {
	case string:
		return tv
	case float64:
		return strconv.FormatFloat(tv, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(tv)
	}
	return fmt.Sprint(v)
}
