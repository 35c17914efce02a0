package katsuyo

import (
	"errors"
	"fmt"
)

// ErrUnsupportedComposition matches every UnsupportedCompositionError.
var ErrUnsupportedComposition = errors.New("unsupported composition")

// UnsupportedCompositionError reports an appendant that cannot attach to the
// element on its left. It is always recoverable.
type UnsupportedCompositionError struct {
	Left   Element
	Right  any
	Reason string
}

func (e *UnsupportedCompositionError) Error() string {
	msg := fmt.Sprintf("katsuyo: cannot compose %s onto %s", describe(e.Right), describe(e.Left))
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *UnsupportedCompositionError) Is(target error) bool {
	return target == ErrUnsupportedComposition
}

func describe(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", v)
}
