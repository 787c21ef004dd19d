package llm

import "errors"

var (
	// ErrUnavailable indicates the advisor endpoint is unreachable or
	// failing server-side.
	ErrUnavailable = errors.New("advisor endpoint unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("advisor request timed out")

	// ErrInvalidOutput indicates the response could not be decoded into
	// the expected structured format.
	ErrInvalidOutput = errors.New("invalid advisor output format")

	// ErrDisabled indicates no advisor endpoint is configured.
	ErrDisabled = errors.New("advisor disabled")
)
