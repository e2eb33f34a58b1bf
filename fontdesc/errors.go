package fontdesc

import (
	"errors"
	"fmt"
)

// Sentinel errors for fontdesc package.
var (
	// ErrTruncatedData is returned by Decode when the buffer is shorter
	// than the fixed description layout.
	ErrTruncatedData = errors.New("fontdesc: truncated description data")
)

// DimensionError is returned for atlas sides that are not a power of two
// of at least 2.
type DimensionError struct {
	Dim int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("fontdesc: invalid atlas dimension %d: must be a power of two >= 2", e.Dim)
}

// RegionError is returned by Blit when the destination region falls
// outside the atlas.
type RegionError struct {
	X, Y          int
	Width, Height int
	Dim           int
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("fontdesc: region %dx%d at (%d,%d) outside %dx%d atlas",
		e.Width, e.Height, e.X, e.Y, e.Dim, e.Dim)
}

// BufferSizeError is returned by Blit when the pixel buffer does not
// match the region size.
type BufferSizeError struct {
	Got, Want int
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("fontdesc: pixel buffer has %d bytes, region needs %d", e.Got, e.Want)
}
