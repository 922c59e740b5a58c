// Package imgscan locates PNG and JPEG image payloads embedded in an
// arbitrary byte blob, such as a reassembled Excel drawing group.
package imgscan

// Format identifies the image encoding detected at a given position.
type Format int

const (
	FormatUnknown Format = iota
	FormatPNG
	FormatJPEG
)

var pngSignature = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// findNextStart returns the offset of the next recognized image
// signature at or after from, and its format, or (-1, FormatUnknown) if
// none remains. It stops 9 bytes short of the end of blob: that is the
// widest lookahead any signature check below needs (a JPEG SOI plus its
// APPn marker, length and 4-byte identifier), so anything starting
// closer to the end than that can never be validated and is skipped.
func findNextStart(blob []byte, from int) (int, Format) {
	if from < 0 {
		from = 0
	}
	limit := len(blob) - 9
	for i := from; i < limit; i++ {
		if isPNGStart(blob, i) {
			return i, FormatPNG
		}
		if isJPEGStart(blob, i) {
			return i, FormatJPEG
		}
	}
	return -1, FormatUnknown
}

func isPNGStart(blob []byte, i int) bool {
	for j, b := range pngSignature {
		if blob[i+j] != b {
			return false
		}
	}
	return true
}

// isJPEGStart requires not just the SOI marker (FF D8) but a
// well-formed APP0/JFIF or APP1/Exif marker right after it, to avoid
// treating two stray bytes 0xFF 0xD8 inside unrelated drawing data as
// the start of an image.
func isJPEGStart(blob []byte, i int) bool {
	if blob[i] != 0xFF || blob[i+1] != 0xD8 {
		return false
	}
	if blob[i+2] != 0xFF {
		return false
	}
	switch blob[i+3] {
	case 0xE0:
		return hasAPPIdentifier(blob, i, "JFIF")
	case 0xE1:
		return hasAPPIdentifier(blob, i, "Exif")
	default:
		return false
	}
}

// hasAPPIdentifier checks the 4 ASCII bytes immediately after an APPn
// marker's 2-byte length field. The caller's 9-byte margin guarantees
// i+10 <= len(blob), which is exactly the reach needed here.
func hasAPPIdentifier(blob []byte, i int, ident string) bool {
	return string(blob[i+6:i+10]) == ident
}
