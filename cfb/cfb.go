package cfb

import (
	"fmt"
	"io"
)

// Reader navigates an OLE2/Compound File Binary container and
// materializes the named streams inside it. It borrows the buffer passed
// to Open for the whole of its lifetime; the caller owns that buffer and
// must keep it alive until the Reader is discarded.
type Reader struct {
	buf  []byte
	hdr  *header
	logw io.Writer

	root *dirEntry
	// miniStreamStartSector is the root entry's own start sector: the
	// mini-stream is just the root's regular-sector-chained stream,
	// repartitioned into 64-byte mini-sectors.
	miniStreamStartSector uint32
}

// Open parses buf's CFB header and root directory entry. It does not
// locate the Workbook stream yet; call Reader.Workbook for that.
func Open(buf []byte, logw io.Writer) (*Reader, error) {
	if len(buf) == 0 {
		return nil, ErrInvalidArgument
	}
	hdr, err := parseHeader(buf)
	if err != nil {
		return nil, err
	}

	r := &Reader{buf: buf, hdr: hdr, logw: logw}
	root, err := r.dirEntryAt(0)
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, ErrFileCorrupted
	}
	r.root = root
	r.miniStreamStartSector = root.startSector
	return r, nil
}

func (r *Reader) warnf(format string, args ...interface{}) {
	if r.logw == nil {
		return
	}
	fmt.Fprintf(r.logw, "WARNING *** "+format+"\n", args...)
}

// address resolves a length-byte window at (sector, offset) into r.buf.
// It reports ok=false when sector is reserved/invalid, offset doesn't
// fit within a sector, or the resulting window would fall outside buf —
// the single bounds check every other read in this package relies on.
func (r *Reader) address(sector uint32, offset, length int) ([]byte, bool) {
	if sector >= sectorReserved || offset < 0 || offset >= r.hdr.sectorSize || length < 0 {
		return nil, false
	}
	pos := uint64(r.hdr.sectorSize)*(uint64(sector)+1) + uint64(offset)
	end := pos + uint64(length)
	if end > uint64(len(r.buf)) {
		return nil, false
	}
	return r.buf[pos:end], true
}

// miniAddress resolves a length-byte window at (miniSector, offset)
// within the mini-stream, by translating the mini-sector offset into a
// byte offset in the mini-stream's own regular-sector chain.
func (r *Reader) miniAddress(miniSector uint32, offset, length int) ([]byte, bool) {
	sector, off := r.locateFinal(r.miniStreamStartSector, int(miniSector)*miniSectorSize+offset)
	return r.address(sector, off, length)
}

// locateFinal walks the regular FAT chain starting at start, consuming
// sectorSize bytes per hop until offsetBytes falls within the current
// sector.
func (r *Reader) locateFinal(start uint32, offsetBytes int) (uint32, int) {
	sector := start
	offset := offsetBytes
	for offset >= r.hdr.sectorSize {
		offset -= r.hdr.sectorSize
		next := r.nextSector(sector)
		if next == sectorEndOfChain || next == sectorFree {
			break
		}
		sector = next
	}
	return sector, offset
}
