package cfb

// readStream copies size bytes from the regular sector chain starting at
// startSector. A chain that ends early (sentinel or out-of-range hop)
// simply yields a short result; callers compare against the requested
// size if they care.
func (r *Reader) readStream(startSector uint32, size int) []byte {
	out := make([]byte, 0, size)
	sector := startSector
	offset := 0
	remaining := size

	for remaining > 0 {
		grab := r.hdr.sectorSize - offset
		if grab > remaining {
			grab = remaining
		}
		chunk, ok := r.address(sector, offset, grab)
		if !ok {
			break
		}
		out = append(out, chunk...)
		remaining -= grab
		offset = 0

		next := r.nextSector(sector)
		if next == sectorEndOfChain || next == sectorFree {
			break
		}
		sector = next
	}

	if remaining != 0 {
		r.warnf("Workbook stream: expected %d bytes, got %d", size, size-remaining)
	}
	return out
}

// readMiniStream is readStream's mini-sector analogue: it copies size
// bytes starting at mini-sector startMiniSector, one 64-byte hop at a
// time, following the mini-FAT.
func (r *Reader) readMiniStream(startMiniSector uint32, size int) []byte {
	out := make([]byte, 0, size)
	sector := startMiniSector
	remaining := size

	for remaining > 0 {
		grab := miniSectorSize
		if grab > remaining {
			grab = remaining
		}
		chunk, ok := r.miniAddress(sector, 0, grab)
		if !ok {
			break
		}
		out = append(out, chunk...)
		remaining -= grab

		next := r.nextMiniSector(sector)
		if next == sectorEndOfChain || next == sectorFree {
			break
		}
		sector = next
	}

	if remaining != 0 {
		r.warnf("Workbook stream: expected %d bytes, got %d", size, size-remaining)
	}
	return out
}

// Workbook locates the stream named "Workbook" or "WORKBOOK" in the
// container's directory tree and materializes it into a freshly
// allocated buffer, choosing the mini-stream or regular-sector path by
// comparing the entry's size against the header's mini-stream cutoff.
func (r *Reader) Workbook() ([]byte, error) {
	entry, err := r.findWorkbook(r.root.child, make(map[uint32]bool))
	if err != nil {
		return nil, ErrFileCorrupted
	}
	if entry == nil {
		return nil, ErrNoWorkbook
	}

	size := int(entry.size)
	if size == 0 {
		return []byte{}, nil
	}
	if entry.size < r.hdr.miniStreamCutoff {
		return r.readMiniStream(entry.startSector, size), nil
	}
	return r.readStream(entry.startSector, size), nil
}
