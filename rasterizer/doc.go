// Package rasterizer produces glyph bitmaps and metrics from a font
// file.
//
// A Face is opened from TrueType/OpenType data at a fixed pixel height
// and a named text encoding. For each character code 0..255 it decodes
// the code to a character under that encoding and returns the glyph's
// 8-bit grayscale coverage bitmap together with its bearings and
// advances, the exact inputs the atlas generator records per character.
//
// Masks are rendered with golang.org/x/image/font/opentype; advances
// come from go-text/typesetting's HarfBuzz shaper so the recorded pen
// movement matches what a shaping-aware renderer would apply.
package rasterizer
