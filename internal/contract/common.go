package contract

import (
	"errors"
	"fmt"

	"github.com/ffcs-tools/ffcs/internal/advisor"
	"github.com/ffcs-tools/ffcs/internal/planner"
)

// ErrorCode classifies request failures at the service boundary. The CLI
// maps codes to user-facing messages; internal sentinels never cross it.
type ErrorCode string

const (
	ErrStudentNotFound ErrorCode = "STUDENT_NOT_FOUND"
	ErrInvalidBounds   ErrorCode = "INVALID_BOUNDS"
	ErrEmptyPool       ErrorCode = "EMPTY_POOL"
	ErrInfeasible      ErrorCode = "INFEASIBLE"
	ErrInvalidTarget   ErrorCode = "INVALID_TARGET"
	ErrBadRequest      ErrorCode = "BAD_REQUEST"
)

type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

// NewError builds a typed request error with a formatted message.
func NewError(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsCode reports whether err is (or wraps) a contract error with the given
// code.
func IsCode(err error, code ErrorCode) bool {
	var cerr *Error
	return errors.As(err, &cerr) && cerr.Code == code
}

type ValidationReport = planner.ValidationReport

type FeasibilityReport = planner.FeasibilityReport

type FeasibilityNote = advisor.FeasibilityNote
