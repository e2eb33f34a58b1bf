// Package layout draws text from a generated font description and its
// atlas texture.
//
// It is the reference consumer of the artifacts written by the
// generator: for each character code it looks up the glyph record,
// blits the recorded atlas sub-rectangle at the pen position offset by
// the glyph's bearings, and advances the pen. A newline resets the
// horizontal pen and moves the baseline down by the table's line
// spacing. No shaping or kerning is applied; the input is a byte string
// in the same encoding the atlas was generated for.
package layout
