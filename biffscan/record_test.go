package biffscan_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/biffraster/xls2img/biffscan"
)

const (
	recMsoDrawingGroup = 0x00EB
	recContinue        = 0x003C
	recBOF             = 0x0809
	recEOF             = 0x000A
)

func record(typ uint16, payload []byte) []byte {
	var buf bytes.Buffer
	header := make([]byte, 4)
	binary.LittleEndian.PutUint16(header[0:2], typ)
	binary.LittleEndian.PutUint16(header[2:4], uint16(len(payload)))
	buf.Write(header)
	buf.Write(payload)
	return buf.Bytes()
}

func TestCollectDrawingGroupsSingleChain(t *testing.T) {
	part1 := bytes.Repeat([]byte{0xAA}, 10)
	part2 := bytes.Repeat([]byte{0xBB}, 20)
	var workbook bytes.Buffer
	workbook.Write(record(recBOF, []byte{1, 2}))
	workbook.Write(record(recMsoDrawingGroup, part1))
	workbook.Write(record(recContinue, part2))
	workbook.Write(record(recEOF, nil))

	groups := biffscan.CollectDrawingGroups(workbook.Bytes(), nil)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	want := append(append([]byte{}, part1...), part2...)
	if !bytes.Equal(groups[0], want) {
		t.Fatalf("group mismatch: got %d bytes, want %d bytes", len(groups[0]), len(want))
	}
}

func TestCollectDrawingGroupsTwoChains(t *testing.T) {
	first := bytes.Repeat([]byte{0x11}, 8)
	second := bytes.Repeat([]byte{0x22}, 8)
	var workbook bytes.Buffer
	workbook.Write(record(recMsoDrawingGroup, first))
	workbook.Write(record(recMsoDrawingGroup, second)) // flushes the first chain
	workbook.Write(record(recEOF, nil))

	groups := biffscan.CollectDrawingGroups(workbook.Bytes(), nil)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if !bytes.Equal(groups[0], first) || !bytes.Equal(groups[1], second) {
		t.Fatalf("group contents mismatch")
	}
}

func TestCollectDrawingGroupsNone(t *testing.T) {
	var workbook bytes.Buffer
	workbook.Write(record(recBOF, []byte{1, 2}))
	workbook.Write(record(recEOF, nil))

	groups := biffscan.CollectDrawingGroups(workbook.Bytes(), nil)
	if len(groups) != 0 {
		t.Fatalf("got %d groups, want 0", len(groups))
	}
}

func TestCollectDrawingGroupsTruncatedTail(t *testing.T) {
	var workbook bytes.Buffer
	workbook.Write(record(recMsoDrawingGroup, bytes.Repeat([]byte{0x33}, 4)))
	// A record header claiming more payload than remains in the buffer.
	header := make([]byte, 4)
	binary.LittleEndian.PutUint16(header[0:2], recContinue)
	binary.LittleEndian.PutUint16(header[2:4], 100)
	workbook.Write(header)
	workbook.WriteByte(0x01) // only 1 byte present, not the claimed 100

	groups := biffscan.CollectDrawingGroups(workbook.Bytes(), nil)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1 (partial chain still flushed)", len(groups))
	}
	if !bytes.Equal(groups[0], bytes.Repeat([]byte{0x33}, 4)) {
		t.Fatalf("unexpected partial group contents")
	}
}

func TestCollectDrawingGroupsLargeContinuationGrowth(t *testing.T) {
	// Exercises the reassembly buffer growing past its initial
	// 2x-first-record capacity across many Continue records.
	first := bytes.Repeat([]byte{0x01}, 16)
	var workbook bytes.Buffer
	workbook.Write(record(recMsoDrawingGroup, first))
	var want bytes.Buffer
	want.Write(first)
	for i := 0; i < 50; i++ {
		chunk := bytes.Repeat([]byte{byte(i)}, 200)
		workbook.Write(record(recContinue, chunk))
		want.Write(chunk)
	}
	workbook.Write(record(recEOF, nil))

	groups := biffscan.CollectDrawingGroups(workbook.Bytes(), nil)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if !bytes.Equal(groups[0], want.Bytes()) {
		t.Fatalf("grown buffer contents mismatch: got %d bytes, want %d bytes", len(groups[0]), want.Len())
	}
}
