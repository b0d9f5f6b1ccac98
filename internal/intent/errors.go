package intent

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCatalog = errors.New("invalid intent catalog")
	ErrEmptyMessage   = errors.New("message is empty")
	ErrEmptyCatalog   = errors.New("catalog has no intents")
)

// ValidationError describes a structural problem in the catalog source.
// Index is -1 for problems outside the intents collection; Line is 0 when
// the source position is unknown.
type ValidationError struct {
	Index  int
	Field  string
	Reason string
	Line   int
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("intent catalog: ")
	if e.Index >= 0 {
		fmt.Fprintf(&b, "intents[%d]", e.Index)
		if e.Field != "" {
			b.WriteString(".")
		}
	}
	b.WriteString(e.Field)
	if e.Index >= 0 || e.Field != "" {
		b.WriteString(": ")
	}
	b.WriteString(e.Reason)
	if e.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	return b.String()
}

// Is matches ErrInvalidCatalog so callers can test any validation failure.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidCatalog
}
