package imgscan

import "errors"

// ErrNoImages is returned by Scan when it emits no image: either no PNG
// or JPEG signature is found anywhere in the blob, or every image found
// was truncated and discarded.
var ErrNoImages = errors.New("imgscan: no images found")

// Image is one recognized image payload, with its own copy of the bytes
// it occupied in the scanned blob.
type Image struct {
	Format Format
	Data   []byte
}

const initialImageCapacity = 16

// images is a manually-grown slice of Image, doubling its backing array
// on overflow and shrinking back to an exact fit only when capacity
// outgrows twice the element count, kept explicit here instead of
// relying on append's own growth curve.
type images struct {
	items []Image
}

func newImages() *images {
	return &images{items: make([]Image, 0, initialImageCapacity)}
}

func (b *images) add(img Image) {
	if len(b.items) == cap(b.items) {
		grown := make([]Image, len(b.items), cap(b.items)*2)
		copy(grown, b.items)
		b.items = grown
	}
	b.items = append(b.items, img)
}

func (b *images) finalize() []Image {
	if len(b.items) == 0 {
		return nil
	}
	if cap(b.items) > 2*len(b.items) {
		shrunk := make([]Image, len(b.items))
		copy(shrunk, b.items)
		return shrunk
	}
	return b.items
}

// Scan finds every PNG and JPEG payload in blob and returns them in the
// order they appear. At most one image is "pending" at a time: each new
// signature found either closes out the previous pending image (PNG via
// its IEND chunk, JPEG via a bounded backward EOI scan) or, if that
// image turns out to be truncated, discards it silently rather than
// failing the whole scan.
func Scan(blob []byte) ([]Image, error) {
	out := newImages()

	pendingPos := -1
	pendingFmt := FormatUnknown

	finalize := func(boundary int) {
		if pendingPos < 0 {
			return
		}
		end := -1
		switch pendingFmt {
		case FormatPNG:
			if e := pngEnd(blob, pendingPos); e > 0 && e <= boundary {
				end = e
			}
		case FormatJPEG:
			end = jpegEnd(blob, pendingPos, boundary)
		}
		if end > pendingPos {
			data := make([]byte, end-pendingPos)
			copy(data, blob[pendingPos:end])
			out.add(Image{Format: pendingFmt, Data: data})
		}
		pendingPos = -1
		pendingFmt = FormatUnknown
	}

	pos := 0
	for {
		next, format := findNextStart(blob, pos)
		if next < 0 {
			break
		}
		finalize(next)
		pendingPos, pendingFmt = next, format
		pos = next + 1
	}
	finalize(len(blob))

	result := out.finalize()
	if result == nil {
		return nil, ErrNoImages
	}
	return result, nil
}
