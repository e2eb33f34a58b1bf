package rasterizer

import "fmt"

// UnknownEncodingError is returned when an encoding name cannot be
// resolved to a character set.
type UnknownEncodingError struct {
	Name string
}

func (e *UnknownEncodingError) Error() string {
	return fmt.Sprintf("rasterizer: unknown text encoding %q", e.Name)
}
