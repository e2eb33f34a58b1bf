// Package rectpack packs a batch of variable-sized rectangles into a
// square whose side is a power of two.
//
// Rectangles are registered up front and packed in one pass; this is an
// offline packer for bounded batches (such as the 256 glyphs of a font
// atlas), not an incremental one. Packing is fully deterministic: the
// same sequence of registered dimensions always yields the same
// positions, so generated atlases are reproducible build artifacts.
//
// The algorithm places rectangles in descending area order. Each
// rectangle is anchored at a corner of an already placed one, choosing
// the candidate that minimizes
//
//	x²·nextPow2(x+width) + y²·nextPow2(y+height)
//
// which penalizes positions that are both far from the origin and push
// the bounding square into a larger size class. The result is a compact,
// roughly square layout rather than a long strip. The heuristic is part
// of the output compatibility surface: changing it changes the layout of
// every generated atlas.
package rectpack
