package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SchemaValidator validates a decoded document before it is returned.
// Returns nil if valid, or a descriptive error if invalid.
type SchemaValidator[T any] func(*T) error

// DecodeStrict decodes raw advisor output as exactly one JSON document of
// type T. Surrounding whitespace is trimmed; anything else in the payload
// (prose, markdown fences, trailing text) fails the decode. If validator
// is non-nil, the decoded document is validated before return. All
// failures map to ErrInvalidOutput with detail.
func DecodeStrict[T any](raw string, validator SchemaValidator[T]) (*T, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidOutput)
	}

	var doc T
	if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(&doc); err != nil {
			return nil, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}

	return &doc, nil
}
