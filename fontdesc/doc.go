// Package fontdesc defines the binary font description format and the
// atlas texture it refers to.
//
// A description file is a fixed 8196-byte little-endian layout: one
// uint32 line spacing followed by 256 records of eight 4-byte fields,
// one record per character code in code order:
//
//	offsetX  uint32   position of the glyph in the atlas
//	offsetY  uint32
//	width    uint32   size of the glyph bitmap
//	height   uint32
//	bearingX int32    offset from the pen origin to the glyph's top left
//	bearingY int32
//	advanceX uint32   pen movement after drawing the glyph
//	advanceY uint32
//
// The format carries no magic number, version tag or checksum; the only
// validation possible when decoding is the length check. This keeps the
// consumer trivial at the price of undetectable corruption, a documented
// limitation of the format.
//
// The atlas is a single-channel grayscale square whose side is a power
// of two. For each character code, the atlas region
// [offsetX, offsetX+width) x [offsetY, offsetY+height) holds that
// glyph's pixels row-major.
package fontdesc
