package xls2img

import (
	"io"

	"github.com/biffraster/xls2img/cfb"
)

// Options carries the optional knobs accepted by Open, ExtractImages and
// Extract. A nil Options, or a zero Options, is equivalent to all
// defaults.
type Options struct {
	// Logfile, if non-nil, receives "WARNING ***"-prefixed diagnostics
	// for recoverable corruption encountered while walking the
	// container or the BIFF8 record stream. It never affects what is
	// returned, only whether a line gets written about it.
	Logfile io.Writer
}

func (o *Options) logfile() io.Writer {
	if o == nil {
		return nil
	}
	return o.Logfile
}

// Reader navigates a single OLE2/Compound File Binary container. It
// borrows the buffer passed to Open for its entire lifetime; the caller
// must keep that buffer alive until Close.
type Reader struct {
	cd *cfb.Reader
}

// Open validates buf as an OLE2/CFB container and prepares it for
// Workbook. It returns ErrInvalidArgument for a nil or empty buffer,
// ErrWrongFormat if the signature doesn't match, and ErrFileCorrupted if
// the header or root directory entry can't be parsed.
func Open(buf []byte, opts *Options) (*Reader, error) {
	cd, err := cfb.Open(buf, opts.logfile())
	if err != nil {
		return nil, err
	}
	return &Reader{cd: cd}, nil
}

// Close releases r's handle. It is idempotent and safe to call more than
// once; it does not, and cannot, invalidate byte slices already returned
// by Workbook, since those are independent, garbage-collected copies.
func (r *Reader) Close() error {
	r.cd = nil
	return nil
}

// Workbook locates and materializes the Workbook stream into a freshly
// allocated buffer. It returns ErrNoWorkbook if no stream named
// "Workbook" or "WORKBOOK" exists in the container.
func (r *Reader) Workbook() ([]byte, error) {
	if r.cd == nil {
		return nil, ErrInvalidArgument
	}
	return r.cd.Workbook()
}

// Extract is the common-case pipeline: Open buf, locate its Workbook
// stream, and extract any embedded images from it.
func Extract(buf []byte, opts *Options) ([]Image, error) {
	r, err := Open(buf, opts)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	wb, err := r.Workbook()
	if err != nil {
		return nil, err
	}
	return ExtractImages(wb, opts)
}
