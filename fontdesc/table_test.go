package fontdesc

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// sampleTable builds a table with varied, per-code-distinct records,
// including negative bearings.
func sampleTable() *GlyphTable {
	t := &GlyphTable{LineSpacing: 57}
	for i := range t.Records {
		t.Records[i] = GlyphRecord{
			OffsetX:  uint32(i * 3),
			OffsetY:  uint32(i * 5),
			Width:    uint32(i % 40),
			Height:   uint32(i % 50),
			BearingX: int32(i - 128),
			BearingY: int32(40 - i),
			AdvanceX: uint32(i % 30),
			AdvanceY: uint32(i % 2),
		}
	}
	return t
}

func TestTable_EncodeSize(t *testing.T) {
	if TableSize != 8196 {
		t.Fatalf("TableSize = %d, want 8196", TableSize)
	}
	data := sampleTable().Encode()
	if len(data) != TableSize {
		t.Errorf("Encode produced %d bytes, want %d", len(data), TableSize)
	}
	if len((&GlyphTable{}).Encode()) != TableSize {
		t.Error("zero table must encode to the same fixed size")
	}
}

func TestTable_RoundTrip(t *testing.T) {
	table := sampleTable()
	decoded, err := Decode(table.Encode())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if diff := cmp.Diff(table, decoded); diff != "" {
		t.Errorf("table mismatch after round trip (-want +got):\n%s", diff)
	}
}

func TestTable_Layout(t *testing.T) {
	table := sampleTable()
	table.LineSpacing = 0x01020304
	table.Records[65].OffsetX = 0x0a0b0c0d
	table.Records[65].BearingY = -2
	data := table.Encode()

	// Little-endian line spacing at the start.
	want := []byte{0x04, 0x03, 0x02, 0x01}
	for i, b := range want {
		if data[i] != b {
			t.Fatalf("lineSpacing byte %d = %#x, want %#x", i, data[i], b)
		}
	}

	// Record i lives at offset 4 + 32*i, fields in fixed order.
	rec := 4 + 65*RecordSize
	if got := binary.LittleEndian.Uint32(data[rec:]); got != 0x0a0b0c0d {
		t.Errorf("record 65 offsetX = %#x, want 0x0a0b0c0d", got)
	}
	if got := int32(binary.LittleEndian.Uint32(data[rec+20:])); got != -2 {
		t.Errorf("record 65 bearingY = %d, want -2", got)
	}
}

func TestTable_DecodeTruncated(t *testing.T) {
	for _, n := range []int{0, 1, 4, TableSize - 1} {
		if _, err := Decode(make([]byte, n)); !errors.Is(err, ErrTruncatedData) {
			t.Errorf("Decode of %d bytes: expected ErrTruncatedData, got %v", n, err)
		}
	}
}

func TestTable_DecodeIgnoresTrailing(t *testing.T) {
	table := sampleTable()
	data := append(table.Encode(), 0xde, 0xad)
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode with trailing bytes failed: %v", err)
	}
	if decoded.LineSpacing != table.LineSpacing {
		t.Errorf("lineSpacing = %d, want %d", decoded.LineSpacing, table.LineSpacing)
	}
}

func TestTable_NegativeBearings(t *testing.T) {
	table := &GlyphTable{}
	table.Records[0] = GlyphRecord{BearingX: -7, BearingY: -2147483648}
	decoded, err := Decode(table.Encode())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Records[0].BearingX != -7 {
		t.Errorf("bearingX = %d, want -7", decoded.Records[0].BearingX)
	}
	if decoded.Records[0].BearingY != -2147483648 {
		t.Errorf("bearingY = %d, want -2147483648", decoded.Records[0].BearingY)
	}
}
