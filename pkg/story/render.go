package story

import (
	"fmt"
	"strings"
)

// Renderer produces the display text for a payload. Implementations must
// return text already trimmed of leading and trailing whitespace.
type Renderer[T any] func(T) string

// DefaultRenderer renders any payload via fmt and trims it. String payloads
// pass through unchanged apart from the trim.
func DefaultRenderer[T any]() Renderer[T] {
	return func(v T) string {
		if s, ok := any(v).(string); ok {
			return strings.TrimSpace(s)
		}
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}
