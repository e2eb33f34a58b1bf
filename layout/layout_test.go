package layout

import (
	"image"
	"testing"

	"github.com/Dacada/BitmapFontGenerator/fontdesc"
)

// testRenderer builds a tiny synthetic font: 'a' and 'b' are 2x2
// glyphs side by side in a 4x4 atlas, both sitting entirely above the
// baseline with an advance of 3.
func testRenderer(t *testing.T) *Renderer {
	t.Helper()

	atlas, err := fontdesc.NewAtlas(4)
	if err != nil {
		t.Fatalf("NewAtlas failed: %v", err)
	}
	if err := atlas.Blit(0, 0, 2, 2, []byte{100, 110, 120, 130}); err != nil {
		t.Fatalf("Blit failed: %v", err)
	}
	if err := atlas.Blit(2, 0, 2, 2, []byte{200, 210, 220, 230}); err != nil {
		t.Fatalf("Blit failed: %v", err)
	}

	table := &fontdesc.GlyphTable{LineSpacing: 5}
	table.Records['a'] = fontdesc.GlyphRecord{
		OffsetX: 0, OffsetY: 0, Width: 2, Height: 2,
		BearingX: 0, BearingY: 2, AdvanceX: 3,
	}
	table.Records['b'] = fontdesc.GlyphRecord{
		OffsetX: 2, OffsetY: 0, Width: 2, Height: 2,
		BearingX: 0, BearingY: 2, AdvanceX: 3,
	}

	return New(table, atlas)
}

func TestRenderer_Draw(t *testing.T) {
	r := testRenderer(t)
	dst := image.NewGray(image.Rect(0, 0, 8, 8))

	r.Draw(dst, []byte("ab"), 0, 2)

	cases := []struct {
		x, y int
		want byte
	}{
		{0, 0, 100}, {1, 0, 110}, {0, 1, 120}, {1, 1, 130},
		{3, 0, 200}, {4, 0, 210}, {3, 1, 220}, {4, 1, 230},
		{2, 0, 0}, {0, 2, 0},
	}
	for _, c := range cases {
		if got := dst.GrayAt(c.x, c.y).Y; got != c.want {
			t.Errorf("pixel (%d,%d) = %d, want %d", c.x, c.y, got, c.want)
		}
	}
}

func TestRenderer_DrawNewline(t *testing.T) {
	r := testRenderer(t)
	dst := image.NewGray(image.Rect(0, 0, 8, 12))

	r.Draw(dst, []byte("a\nb"), 0, 2)

	// Second line baseline is 2 + lineSpacing = 7, so 'b' starts at
	// (0, 5) with the horizontal pen reset.
	if got := dst.GrayAt(0, 5).Y; got != 200 {
		t.Errorf("pixel (0,5) = %d, want 200", got)
	}
	if got := dst.GrayAt(1, 6).Y; got != 230 {
		t.Errorf("pixel (1,6) = %d, want 230", got)
	}
	if got := dst.GrayAt(3, 5).Y; got != 0 {
		t.Errorf("pixel (3,5) = %d, want 0 (pen must reset on newline)", got)
	}
}

func TestRenderer_Measure(t *testing.T) {
	r := testRenderer(t)

	width, height, baseline := r.Measure([]byte("ab"))
	if width != 6 {
		t.Errorf("width = %d, want 6", width)
	}
	if height != 2 {
		t.Errorf("height = %d, want 2", height)
	}
	if baseline != 2 {
		t.Errorf("baseline = %d, want 2", baseline)
	}

	_, height, _ = r.Measure([]byte("a\nb"))
	if height != 7 {
		t.Errorf("two-line height = %d, want 7", height)
	}
}

func TestRenderer_Render(t *testing.T) {
	r := testRenderer(t)

	img := r.Render([]byte("a"))
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("rendered image is %v, want 3x2", img.Bounds())
	}
	if got := img.GrayAt(0, 0).Y; got != 100 {
		t.Errorf("pixel (0,0) = %d, want 100", got)
	}
}

func TestRenderer_DrawClips(t *testing.T) {
	r := testRenderer(t)
	dst := image.NewGray(image.Rect(0, 0, 2, 2))

	// Pen positions pushing glyphs partially and fully outside the
	// destination must not panic.
	r.Draw(dst, []byte("ab"), -1, 2)
	r.Draw(dst, []byte("ab"), 10, 10)
}
