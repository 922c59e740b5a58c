package cfb

import "errors"

// Sentinel errors returned by Open and Reader.Workbook.
var (
	ErrInvalidArgument = errors.New("cfb: invalid argument")
	ErrWrongFormat     = errors.New("cfb: wrong file format")
	ErrFileCorrupted   = errors.New("cfb: file corrupted")
	ErrNoWorkbook      = errors.New("cfb: no Workbook stream found")
)
