package layout

import (
	"image"

	"github.com/Dacada/BitmapFontGenerator/fontdesc"
)

// Renderer draws byte strings using a decoded glyph table and the atlas
// texture it refers to. Both are read-only; a Renderer is safe for
// concurrent use.
type Renderer struct {
	Table *fontdesc.GlyphTable
	Atlas *image.Gray
}

// New creates a renderer over a decoded table and its atlas.
func New(table *fontdesc.GlyphTable, atlas *fontdesc.Atlas) *Renderer {
	return &Renderer{Table: table, Atlas: atlas.Image()}
}

// Draw renders the encoded text onto dst with the pen starting at
// (penX, penY), penY being the baseline of the first line. Pixels
// falling outside dst are clipped; overlapping glyphs blend by maximum
// coverage.
func (r *Renderer) Draw(dst *image.Gray, text []byte, penX, penY int) {
	x, y := penX, penY
	for _, code := range text {
		if code == '\n' {
			x = penX
			y += int(r.Table.LineSpacing)
			continue
		}

		rec := &r.Table.Records[code]
		r.drawGlyph(dst, rec, x+int(rec.BearingX), y-int(rec.BearingY))
		x += int(rec.AdvanceX)
		y += int(rec.AdvanceY)
	}
}

// Measure returns the canvas size Render would use for the encoded
// text, along with the baseline of the first line.
func (r *Renderer) Measure(text []byte) (width, height, baseline int) {
	ascent, descent := 0, 0
	x, lineWidth := 0, 0

	for _, code := range text {
		if code == '\n' {
			height += int(r.Table.LineSpacing)
			x = 0
			continue
		}

		rec := &r.Table.Records[code]
		if a := int(rec.BearingY); a > ascent {
			ascent = a
		}
		if d := int(rec.Height) - int(rec.BearingY); d > descent {
			descent = d
		}
		if e := x + int(rec.BearingX) + int(rec.Width); e > lineWidth {
			lineWidth = e
		}
		x += int(rec.AdvanceX)
		if x > lineWidth {
			lineWidth = x
		}
	}

	return lineWidth, height + ascent + descent, ascent
}

// Render draws the encoded text into a new grayscale image just big
// enough to hold it.
func (r *Renderer) Render(text []byte) *image.Gray {
	width, height, baseline := r.Measure(text)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	dst := image.NewGray(image.Rect(0, 0, width, height))
	r.Draw(dst, text, 0, baseline)
	return dst
}

// drawGlyph blits the glyph's atlas region with its top-left corner at
// (dx, dy) on dst.
func (r *Renderer) drawGlyph(dst *image.Gray, rec *fontdesc.GlyphRecord, dx, dy int) {
	width, height := int(rec.Width), int(rec.Height)
	srcX, srcY := int(rec.OffsetX), int(rec.OffsetY)

	bounds := dst.Bounds()
	for row := 0; row < height; row++ {
		ty := dy + row
		if ty < bounds.Min.Y || ty >= bounds.Max.Y {
			continue
		}
		for col := 0; col < width; col++ {
			tx := dx + col
			if tx < bounds.Min.X || tx >= bounds.Max.X {
				continue
			}
			v := r.Atlas.GrayAt(srcX+col, srcY+row).Y
			if v > dst.GrayAt(tx, ty).Y {
				dst.Pix[dst.PixOffset(tx, ty)] = v
			}
		}
	}
}
