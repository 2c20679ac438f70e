package bridge

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrSizeMismatch    = errors.New("buffer size mismatch")
	ErrAllocation      = errors.New("allocation failed")
	ErrProcessing      = errors.New("pipeline failed")
)

// FrameError describes a rejected frame. Kind is one of the sentinel errors
// above and is matched by errors.Is.
type FrameError struct {
	Kind     error
	Width    int32
	Height   int32
	Expected int
	Actual   int
	Err      error
}

func (e *FrameError) Error() string {
	switch e.Kind {
	case ErrSizeMismatch:
		return fmt.Sprintf("%v: got %d bytes, expected %d for %dx%d",
			e.Kind, e.Actual, e.Expected, e.Width, e.Height)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%v for %dx%d frame: %v", e.Kind, e.Width, e.Height, e.Err)
		}
		return fmt.Sprintf("%v for %dx%d frame", e.Kind, e.Width, e.Height)
	}
}

func (e *FrameError) Is(target error) bool {
	return target == e.Kind
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

func (e *FrameError) fields() map[string]interface{} {
	return map[string]interface{}{
		"width":    e.Width,
		"height":   e.Height,
		"expected": e.Expected,
		"actual":   e.Actual,
		"kind":     e.Kind.Error(),
	}
}
