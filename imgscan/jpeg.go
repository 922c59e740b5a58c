package imgscan

// jpegEnd returns the offset one past the FF D9 (EOI) marker for a JPEG
// image beginning at start, searching backward from limit (the start of
// the next detected image, or len(blob) if this is the last one). JPEG
// has no length-prefixed chunk structure to walk forward the way PNG
// does, so the end is found by scanning backward for the last EOI
// marker strictly before the next image's start. Entropy-coded data
// containing a stray FF D9 before the real end would cut the image
// short; this does not parse marker segments forward to rule that out.
func jpegEnd(blob []byte, start, limit int) int {
	for p := limit - 2; p >= start; p-- {
		if blob[p] == 0xFF && blob[p+1] == 0xD9 {
			return p + 2
		}
	}
	return -1
}
