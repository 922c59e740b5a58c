package cfb

import "encoding/binary"

// difatSectorLocation resolves the absolute sector number holding FAT
// sector fatSectorNumber. The first 109 FAT sector locations live inline
// in the header; beyond that, a chain of DIFAT sectors is walked, each
// holding sectorSize/4-1 entries plus a trailing pointer to the next
// DIFAT sector in its final 4 bytes.
func (r *Reader) difatSectorLocation(fatSectorNumber int) uint32 {
	if fatSectorNumber < difatInlineEntries {
		return r.hdr.difat[fatSectorNumber]
	}

	n := fatSectorNumber - difatInlineEntries
	entriesPerDIFAT := r.hdr.sectorSize/4 - 1
	difatSector := r.hdr.firstDIFAT
	for n >= entriesPerDIFAT {
		n -= entriesPerDIFAT
		addr, ok := r.address(difatSector, r.hdr.sectorSize-4, 4)
		if !ok {
			return sectorFree
		}
		difatSector = binary.LittleEndian.Uint32(addr)
	}

	addr, ok := r.address(difatSector, n*4, 4)
	if !ok {
		return sectorFree
	}
	return binary.LittleEndian.Uint32(addr)
}

// nextSector returns the sector following sector in its regular FAT
// chain, or sectorFree if the lookup falls outside the buffer.
func (r *Reader) nextSector(sector uint32) uint32 {
	entriesPerSector := uint32(r.hdr.sectorSize / 4)
	fatSectorNumber := int(sector / entriesPerSector)
	fatSectorLoc := r.difatSectorLocation(fatSectorNumber)

	addr, ok := r.address(fatSectorLoc, int(sector%entriesPerSector)*4, 4)
	if !ok {
		return sectorFree
	}
	return binary.LittleEndian.Uint32(addr)
}

// nextMiniSector returns the sector following miniSector in the
// mini-FAT, which is itself read as a regular stream beginning at the
// header's first mini-FAT sector.
func (r *Reader) nextMiniSector(miniSector uint32) uint32 {
	sector, offset := r.locateFinal(r.hdr.firstMiniFAT, int(miniSector)*4)
	addr, ok := r.address(sector, offset, 4)
	if !ok {
		return sectorFree
	}
	return binary.LittleEndian.Uint32(addr)
}
