// Package bmfont generates bitmap font atlases for a rendering engine.
//
// Given a TrueType or OpenType font file, a pixel height and a text
// encoding, it rasterizes the glyphs for the 256 character codes of that
// encoding, packs them into the smallest power-of-two square texture that
// fits them all, and writes two artifacts:
//
//   - a grayscale PNG atlas containing every glyph, tightly packed
//   - a binary description file with per-glyph placement and metrics,
//     keyed by character code
//
// The engine consuming these files never rasterizes glyphs at runtime; it
// looks up each character's record and blits the corresponding atlas
// sub-rectangle.
//
// The pipeline is split into focused packages:
//
//   - rectpack: the rectangle packing algorithm
//   - rasterizer: glyph bitmaps and metrics from a font file
//   - fontdesc: the binary description format and atlas composition
//   - layout: a reference consumer that draws strings from the artifacts
//
// Generate ties them together:
//
//	result, err := bmfont.Generate(bmfont.Config{
//	    FontPath: "Roboto-Regular.ttf",
//	    BaseDir:  "assets",
//	    Height:   48,
//	    Encoding: "latin-1",
//	})
//
// By default bmfont produces no log output. Call SetLogger to enable
// structured logging of the generation pipeline.
package bmfont
