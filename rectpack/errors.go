package rectpack

import (
	"errors"
	"fmt"
)

// Sentinel errors for rectpack package.
var (
	// ErrNotPacked is returned when a position is requested before Pack
	// has run on the current set of rectangles.
	ErrNotPacked = errors.New("rectpack: rectangles have not been packed")

	// ErrUnknownHandle is returned for handles that were never
	// registered.
	ErrUnknownHandle = errors.New("rectpack: unknown rectangle handle")
)

// InvalidRectangleError is returned by Register when a rectangle has a
// negative dimension.
type InvalidRectangleError struct {
	Width  int
	Height int
}

func (e *InvalidRectangleError) Error() string {
	return fmt.Sprintf("rectpack: invalid rectangle %dx%d: dimensions must be non-negative",
		e.Width, e.Height)
}
