package fontdesc

import (
	"image"
	"image/png"
	"io"
	"os"
)

// Atlas is the single-channel texture glyphs are composed into. It is
// created zero-filled; each glyph's pixel buffer is blitted once at the
// position assigned by the packer.
type Atlas struct {
	img *image.Gray
}

// NewAtlas creates a zero-filled square atlas with the given side, which
// must be a power of two of at least 2.
func NewAtlas(dim int) (*Atlas, error) {
	if dim < 2 || dim&(dim-1) != 0 {
		return nil, &DimensionError{Dim: dim}
	}
	return &Atlas{img: image.NewGray(image.Rect(0, 0, dim, dim))}, nil
}

// Dimension returns the side length of the atlas.
func (a *Atlas) Dimension() int {
	return a.img.Rect.Dx()
}

// Image returns the underlying grayscale image.
func (a *Atlas) Image() *image.Gray {
	return a.img
}

// Blit copies a row-major grayscale pixel buffer into the atlas region
// [x, x+width) x [y, y+height). The buffer must hold exactly
// width*height samples and the region must lie inside the atlas.
func (a *Atlas) Blit(x, y, width, height int, pixels []byte) error {
	if len(pixels) != width*height {
		return &BufferSizeError{Got: len(pixels), Want: width * height}
	}
	dim := a.Dimension()
	if x < 0 || y < 0 || x+width > dim || y+height > dim {
		return &RegionError{X: x, Y: y, Width: width, Height: height, Dim: dim}
	}
	for row := 0; row < height; row++ {
		dst := a.img.Pix[(y+row)*a.img.Stride+x:]
		copy(dst, pixels[row*width:(row+1)*width])
	}
	return nil
}

// EncodePNG writes the atlas as a grayscale PNG.
func (a *Atlas) EncodePNG(w io.Writer) error {
	return png.Encode(w, a.img)
}

// SavePNG saves the atlas to a PNG file.
func (a *Atlas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return a.EncodePNG(f)
}

// DecodePNG reads an atlas texture back from a PNG stream. The image
// must be a power-of-two square; non-grayscale images are converted.
func DecodePNG(r io.Reader) (*Atlas, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	dim := bounds.Dx()
	if bounds.Dy() != dim || dim < 2 || dim&(dim-1) != 0 {
		return nil, &DimensionError{Dim: dim}
	}

	if gray, ok := img.(*image.Gray); ok && bounds.Min == (image.Point{}) {
		return &Atlas{img: gray}, nil
	}

	gray := image.NewGray(image.Rect(0, 0, dim, dim))
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			gray.Set(x, y, img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return &Atlas{img: gray}, nil
}

// LoadPNG loads an atlas texture from a PNG file.
func LoadPNG(path string) (*Atlas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	return DecodePNG(f)
}
