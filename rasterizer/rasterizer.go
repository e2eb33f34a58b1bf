package rasterizer

import (
	"bytes"
	"fmt"
	"image"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph is one rasterized glyph: an 8-bit grayscale coverage bitmap
// plus the metrics recorded in the description format.
type Glyph struct {
	// Width and Height are the bitmap dimensions in pixels. Both are
	// zero for characters with no visible marks, such as spaces.
	Width  int
	Height int

	// BearingX and BearingY are the offsets from the pen origin to the
	// bitmap's top-left corner: right of the origin and above the
	// baseline respectively. Either may be negative.
	BearingX int
	BearingY int

	// AdvanceX and AdvanceY are the pen movement after drawing the
	// glyph, in whole pixels. AdvanceY is zero for horizontal scripts.
	AdvanceX int
	AdvanceY int

	// Pixels holds Width*Height grayscale samples, row-major.
	Pixels []byte
}

// Face rasterizes the glyphs of one font at a fixed pixel height for
// the 256 character codes of a text encoding.
//
// A Face is not safe for concurrent use: both the underlying opentype
// face and the HarfBuzz shaper keep internal buffers.
type Face struct {
	otFace  font.Face
	gtFace  *gtfont.Face
	shaper  shaping.HarfbuzzShaper
	size    fixed.Int26_6
	charset [256]rune
}

// New opens a face over the given TrueType/OpenType font data. Glyphs
// are rendered at the given pixel height; character codes are decoded
// to characters under the named text encoding (for example "latin-1").
func New(data []byte, height int, encodingName string) (*Face, error) {
	charset, err := decodeCharset(encodingName)
	if err != nil {
		return nil, err
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rasterizer: failed to parse font: %w", err)
	}

	// At 72 DPI the point size equals the pixel size.
	otFace, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(height),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("rasterizer: failed to create face: %w", err)
	}

	gtFace, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		_ = otFace.Close()
		return nil, fmt.Errorf("rasterizer: failed to parse font for shaping: %w", err)
	}

	return &Face{
		otFace:  otFace,
		gtFace:  gtFace,
		size:    fixed.I(height),
		charset: charset,
	}, nil
}

// Close releases the face's rendering resources.
func (f *Face) Close() error {
	return f.otFace.Close()
}

// Rune returns the character the given code decodes to under the
// face's encoding.
func (f *Face) Rune(code byte) rune {
	return f.charset[code]
}

// Glyph rasterizes the glyph for the given character code. Characters
// the font cannot render produce the font's fallback glyph; characters
// with no visible marks produce an empty bitmap with valid advances.
func (f *Face) Glyph(code byte) (Glyph, error) {
	r := f.charset[code]

	dr, mask, maskp, _, ok := f.otFace.Glyph(fixed.Point26_6{}, r)
	if !ok {
		// No entry at all for this rune; record an empty glyph so the
		// character still occupies its slot in the description table.
		return Glyph{}, nil
	}

	glyph := Glyph{
		Width:    dr.Dx(),
		Height:   dr.Dy(),
		BearingX: dr.Min.X,
		BearingY: -dr.Min.Y,
	}
	glyph.AdvanceX, glyph.AdvanceY = f.advance(r)
	glyph.Pixels = extractMask(mask, maskp, dr)
	return glyph, nil
}

// advance shapes the single character and returns its pen advance in
// whole pixels, truncated toward zero like the engine expects.
func (f *Face) advance(r rune) (x, y int) {
	input := shaping.Input{
		Text:      []rune{r},
		RunStart:  0,
		RunEnd:    1,
		Direction: di.DirectionLTR,
		Face:      f.gtFace,
		Size:      f.size,
		Script:    language.LookupScript(r),
		Language:  language.NewLanguage("en"),
	}

	output := f.shaper.Shape(input)

	var adv fixed.Int26_6
	for _, g := range output.Glyphs {
		adv += g.Advance
	}
	return adv.Floor(), 0
}

// extractMask copies the glyph's coverage samples out of the mask image
// returned by the opentype face into a tight row-major buffer.
func extractMask(mask image.Image, maskp image.Point, dr image.Rectangle) []byte {
	width, height := dr.Dx(), dr.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	pixels := make([]byte, width*height)
	if alpha, isAlpha := mask.(*image.Alpha); isAlpha {
		for row := 0; row < height; row++ {
			src := alpha.Pix[(maskp.Y+row-alpha.Rect.Min.Y)*alpha.Stride+(maskp.X-alpha.Rect.Min.X):]
			copy(pixels[row*width:(row+1)*width], src[:width])
		}
		return pixels
	}

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			_, _, _, a := mask.At(maskp.X+col, maskp.Y+row).RGBA()
			pixels[row*width+col] = byte(a >> 8)
		}
	}
	return pixels
}
