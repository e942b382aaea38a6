package theory

import (
	"errors"
	"fmt"
)

// Sentinel errors for expected failure modes.
var (
	// ErrEmptyChord reports a chord symbol that is empty after
	// normalization.
	ErrEmptyChord = errors.New("empty chord symbol")
)

// UnknownNoteError reports a note or root token that does not resolve to
// any recognized pitch class.
type UnknownNoteError struct {
	Name string
}

func (e *UnknownNoteError) Error() string {
	return fmt.Sprintf("unknown note name: %s", e.Name)
}

// InvalidQualityError reports a request to build a chord with a quality
// name outside the recognized set.
type InvalidQualityError struct {
	Quality string
}

func (e *InvalidQualityError) Error() string {
	return fmt.Sprintf("invalid chord quality: %s", e.Quality)
}
