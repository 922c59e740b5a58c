package imgscan

import "encoding/binary"

// pngEnd returns the offset one past the CRC of the PNG image's IEND
// chunk, given start is the offset of its 8-byte signature, or -1 if the
// chunk walk runs off the end of blob first (a truncated image).
func pngEnd(blob []byte, start int) int {
	p := start + 8
	for p < len(blob) {
		if len(blob)-p < 12 {
			return -1
		}
		chunkLen := int(binary.BigEndian.Uint32(blob[p : p+4]))
		chunkType := blob[p+4 : p+8]
		chunkEnd := p + 12 + chunkLen
		if chunkEnd > len(blob) {
			return -1
		}
		if string(chunkType) == "IEND" {
			return chunkEnd
		}
		p = chunkEnd
	}
	return -1
}
