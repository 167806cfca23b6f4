// Package field holds value types that can only be obtained through validation.
package field

import (
	"fmt"
	"strings"
)

// Title is a free-text title that has passed ParseTitle.
// The zero value is not a valid title; check it with IsZero.
type Title struct {
	raw string
}

// TitleError reports a title rejected by ParseTitle.
type TitleError struct {
	Value string
}

func (e *TitleError) Error() string {
	return fmt.Sprintf("%q is not a valid title", e.Value)
}

// ParseTitle accepts any text that is not empty once surrounding whitespace
// is removed. The returned Title keeps the original, untrimmed text.
func ParseTitle(raw string) (Title, error) {
	if strings.TrimSpace(raw) == "" {
		return Title{}, &TitleError{Value: raw}
	}
	return Title{raw: raw}, nil
}

// String returns the title exactly as it was parsed.
func (t Title) String() string {
	return t.raw
}

func (t Title) IsZero() bool {
	return t.raw == ""
}
