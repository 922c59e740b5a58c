package xls2img

import (
	"errors"

	"github.com/biffraster/xls2img/biffscan"
	"github.com/biffraster/xls2img/imgscan"
)

// Format identifies the encoding of an extracted image.
type Format int

const (
	FormatUnknown Format = iota
	FormatPNG
	FormatJPEG
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	default:
		return "unknown"
	}
}

// Image is one PNG or JPEG payload found inside a workbook's drawing
// group, in the byte range it occupied there.
type Image struct {
	Format Format
	Size   int
	Data   []byte
}

// ExtractImages walks workbook (the raw bytes of a Workbook stream),
// reassembles any MsoDrawingGroup/Continue record chains, and returns the
// PNG/JPEG images found inside them in file order. It returns
// ErrInvalidArgument for an empty workbook and ErrNoImages if no drawing
// group yields any image.
func ExtractImages(workbook []byte, opts *Options) ([]Image, error) {
	if len(workbook) == 0 {
		return nil, ErrInvalidArgument
	}

	groups := biffscan.CollectDrawingGroups(workbook, opts.logfile())

	var found []imgscan.Image
	for _, group := range groups {
		images, err := imgscan.Scan(group)
		if err != nil {
			if errors.Is(err, imgscan.ErrNoImages) {
				continue
			}
			return nil, err
		}
		found = append(found, images...)
	}
	if len(found) == 0 {
		return nil, ErrNoImages
	}

	images := make([]Image, len(found))
	for i, f := range found {
		images[i] = Image{Format: Format(f.Format), Size: len(f.Data), Data: f.Data}
	}
	return images, nil
}
