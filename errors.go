package batch

import (
	"errors"
	"fmt"
)

// ErrStateConflict reports that a draw disagrees with the state committed by
// the first draw of the current batch cycle.
var ErrStateConflict = errors.New("batch: state conflict")

// ConflictError describes which committed setting a draw tried to change.
// It wraps ErrStateConflict.
type ConflictError struct {
	// Field names the setting: "primitive", "texture", "blend mode" or "view".
	Field string
	Want  any
	Got   any
}

func (e *ConflictError) Error() string {
	if e.Field == "view" {
		return fmt.Sprintf("%v: view changed after drawing began; only one view can be used per cycle", ErrStateConflict)
	}
	return fmt.Sprintf("%v: %s changed from %v to %v; only one %s can be used per cycle",
		ErrStateConflict, e.Field, e.Want, e.Got, e.Field)
}

func (e *ConflictError) Unwrap() error { return ErrStateConflict }
