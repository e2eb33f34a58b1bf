package fontdesc

import (
	"encoding/binary"
)

const (
	// NumGlyphs is the number of records in a description: one per
	// character code 0..255.
	NumGlyphs = 256

	// RecordSize is the encoded size of one glyph record in bytes.
	RecordSize = 8 * 4

	// TableSize is the exact encoded size of a description: the line
	// spacing followed by NumGlyphs records.
	TableSize = 4 + NumGlyphs*RecordSize
)

// GlyphRecord holds the placement and metrics of one glyph. Offsets are
// atlas coordinates assigned by the packer; bearings and advances come
// from the rasterizer.
type GlyphRecord struct {
	OffsetX  uint32
	OffsetY  uint32
	Width    uint32
	Height   uint32
	BearingX int32
	BearingY int32
	AdvanceX uint32
	AdvanceY uint32
}

// GlyphTable is the full description artifact: the minimum line spacing
// of the font and one record per character code, in code order. It is
// built once per generation run and never mutated afterwards.
type GlyphTable struct {
	LineSpacing uint32
	Records     [NumGlyphs]GlyphRecord
}

// Encode serializes the table into exactly TableSize bytes,
// little-endian throughout. Record i corresponds to character code i.
func (t *GlyphTable) Encode() []byte {
	buf := make([]byte, 0, TableSize)
	buf = binary.LittleEndian.AppendUint32(buf, t.LineSpacing)
	for i := range t.Records {
		r := &t.Records[i]
		buf = binary.LittleEndian.AppendUint32(buf, r.OffsetX)
		buf = binary.LittleEndian.AppendUint32(buf, r.OffsetY)
		buf = binary.LittleEndian.AppendUint32(buf, r.Width)
		buf = binary.LittleEndian.AppendUint32(buf, r.Height)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(r.BearingX))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(r.BearingY))
		buf = binary.LittleEndian.AppendUint32(buf, r.AdvanceX)
		buf = binary.LittleEndian.AppendUint32(buf, r.AdvanceY)
	}
	return buf
}

// Decode parses a description buffer produced by Encode. It fails with
// ErrTruncatedData if the buffer is shorter than TableSize. Extra
// trailing bytes are ignored; the format is not self-describing, so no
// further validation is possible.
func Decode(data []byte) (*GlyphTable, error) {
	if len(data) < TableSize {
		return nil, ErrTruncatedData
	}

	t := &GlyphTable{
		LineSpacing: binary.LittleEndian.Uint32(data),
	}
	off := 4
	for i := range t.Records {
		r := &t.Records[i]
		r.OffsetX = binary.LittleEndian.Uint32(data[off:])
		r.OffsetY = binary.LittleEndian.Uint32(data[off+4:])
		r.Width = binary.LittleEndian.Uint32(data[off+8:])
		r.Height = binary.LittleEndian.Uint32(data[off+12:])
		r.BearingX = int32(binary.LittleEndian.Uint32(data[off+16:]))
		r.BearingY = int32(binary.LittleEndian.Uint32(data[off+20:]))
		r.AdvanceX = binary.LittleEndian.Uint32(data[off+24:])
		r.AdvanceY = binary.LittleEndian.Uint32(data[off+28:])
		off += RecordSize
	}
	return t, nil
}
