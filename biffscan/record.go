// Package biffscan reassembles a BIFF8 workbook stream's
// MsoDrawingGroup/Continue record chains into contiguous drawing-group
// blobs, ready for imgscan to search.
package biffscan

import (
	"encoding/binary"
	"fmt"
	"io"
)

// BIFF8 record type codes relevant to drawing-group reassembly.
const (
	recMsoDrawingGroup = 0x00EB
	recContinue        = 0x003C
)

const recordHeaderSize = 4

// CollectDrawingGroups walks workbook as a sequence of BIFF8
// (type, size, payload) records and reassembles each MsoDrawingGroup
// record, plus any Continue records immediately following it, into one
// contiguous blob. A workbook ordinarily contains a single such chain;
// if a second MsoDrawingGroup record appears, the first chain is
// flushed and the second starts a fresh collection, so the result can
// hold more than one blob. Any record after the tail of the stream that
// doesn't fit its declared size is treated as truncation and stops the
// scan; everything collected so far is still returned.
func CollectDrawingGroups(workbook []byte, logw io.Writer) [][]byte {
	var groups [][]byte
	var buf []byte
	collecting := false

	flush := func() {
		if collecting && len(buf) > 0 {
			groups = append(groups, buf)
		}
		buf = nil
		collecting = false
	}

	pos := 0
	for pos+recordHeaderSize <= len(workbook) {
		typ := binary.LittleEndian.Uint16(workbook[pos : pos+2])
		size := int(binary.LittleEndian.Uint16(workbook[pos+2 : pos+4]))
		pos += recordHeaderSize

		if pos+size > len(workbook) {
			warnf(logw, "BIFF8 record type 0x%04X at offset %d runs past end of stream; stopping scan", typ, pos-recordHeaderSize)
			break
		}
		payload := workbook[pos : pos+size]
		pos += size

		switch {
		case typ == recMsoDrawingGroup:
			flush()
			buf = make([]byte, 0, size*2)
			buf = appendGrow(buf, payload)
			collecting = true
		case collecting && typ == recContinue:
			buf = appendGrow(buf, payload)
		case collecting:
			flush()
		}
	}
	flush()
	return groups
}

func warnf(w io.Writer, format string, args ...interface{}) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "WARNING *** "+format+"\n", args...)
}

// appendGrow appends data to buf, growing buf's backing array only when
// the new length would exceed capacity: first to max(capacity*2, need),
// then inflated by another 1.5x. Go's own append growth curve does
// something similar but not identical to this, which mirrors the
// doubling-then-1.5x curve BIFF8 reassembly buffers traditionally use.
func appendGrow(buf, data []byte) []byte {
	need := len(buf) + len(data)
	if need > cap(buf) {
		newCap := cap(buf) * 2
		if newCap < need {
			newCap = need
		}
		newCap = newCap * 3 / 2
		grown := make([]byte, len(buf), newCap)
		copy(grown, buf)
		buf = grown
	}
	return append(buf, data...)
}
