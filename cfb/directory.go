package cfb

import (
	"encoding/binary"
	"unicode/utf16"
)

// Directory entry type codes (ECMA-376 / [MS-CFB]).
const (
	entryTypeStorage = 1
	entryTypeStream  = 2
	entryTypeRoot    = 5
)

type dirEntry struct {
	name        string
	entryType   byte
	left        uint32
	right       uint32
	child       uint32
	startSector uint32
	size        uint32
}

// dirEntryAt returns directory entry id, located purely by linear offset
// (id*128) into the directory stream via the same locate-and-translate
// primitive used for ordinary streams. It returns (nil, nil), not an
// error, when the entry doesn't fit entirely within the buffer, so
// callers can treat "off the end" as "absent" rather than fatal.
func (r *Reader) dirEntryAt(id uint32) (*dirEntry, error) {
	sector, offset := r.locateFinal(r.hdr.firstDirSector, int(id)*dirEntrySize)
	raw, ok := r.address(sector, offset, dirEntrySize)
	if !ok {
		return nil, nil
	}
	return parseDirEntry(raw), nil
}

func parseDirEntry(raw []byte) *dirEntry {
	nameLen := binary.LittleEndian.Uint16(raw[64:66])
	e := &dirEntry{
		entryType:   raw[66],
		left:        binary.LittleEndian.Uint32(raw[68:72]),
		right:       binary.LittleEndian.Uint32(raw[72:76]),
		child:       binary.LittleEndian.Uint32(raw[76:80]),
		startSector: binary.LittleEndian.Uint32(raw[116:120]),
		size:        binary.LittleEndian.Uint32(raw[120:124]),
	}
	// nameLen counts bytes including the trailing UTF-16 null word.
	if nameLen >= 2 && nameLen <= 64 {
		units := make([]uint16, (nameLen-2)/2)
		for i := range units {
			units[i] = binary.LittleEndian.Uint16(raw[i*2 : i*2+2])
		}
		e.name = string(utf16.Decode(units))
	}
	return e
}

// findWorkbook performs a full depth-first search of the directory tree
// rooted at id for a stream named "Workbook" or "WORKBOOK". seen guards
// against an ID appearing twice, so a corrupt or cyclic tree can't loop
// forever.
func (r *Reader) findWorkbook(id uint32, seen map[uint32]bool) (*dirEntry, error) {
	if id == nilDirID || seen[id] {
		return nil, nil
	}
	seen[id] = true

	entry, err := r.dirEntryAt(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	if entry.entryType == entryTypeStream && (entry.name == "Workbook" || entry.name == "WORKBOOK") {
		return entry, nil
	}

	if found, err := r.findWorkbook(entry.left, seen); found != nil || err != nil {
		return found, err
	}
	if found, err := r.findWorkbook(entry.right, seen); found != nil || err != nil {
		return found, err
	}
	if entry.entryType == entryTypeStorage || entry.entryType == entryTypeRoot {
		if found, err := r.findWorkbook(entry.child, seen); found != nil || err != nil {
			return found, err
		}
	}
	return nil, nil
}
