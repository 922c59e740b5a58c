package xls2img

import (
	"errors"

	"github.com/biffraster/xls2img/cfb"
	"github.com/biffraster/xls2img/imgscan"
)

// Sentinel errors callers can test against with errors.Is. They are
// re-exported from the packages that actually detect them so the public
// surface stays flat regardless of which layer failed.
var (
	ErrInvalidArgument = cfb.ErrInvalidArgument
	ErrWrongFormat     = cfb.ErrWrongFormat
	ErrFileCorrupted   = cfb.ErrFileCorrupted
	ErrNoWorkbook      = cfb.ErrNoWorkbook
	ErrNoImages        = imgscan.ErrNoImages
)

// Code is the small integer error taxonomy a C caller of this system
// would see as a function return value.
type Code int

const (
	Success             Code = 0
	CodeWrongFormat     Code = -1
	CodeFileCorrupted   Code = -2
	CodeInvalidArgument Code = -3
	CodeNoWorkbook      Code = -4
	CodeNoImages        Code = -5
	CodeOutOfMemory     Code = -6
)

// ErrorCode maps an error returned by this package to its Code. It
// returns Success for a nil error and CodeFileCorrupted for any error
// that doesn't match a known sentinel, since "corrupted" is this
// taxonomy's catch-all.
func ErrorCode(err error) Code {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrWrongFormat):
		return CodeWrongFormat
	case errors.Is(err, ErrInvalidArgument):
		return CodeInvalidArgument
	case errors.Is(err, ErrNoWorkbook):
		return CodeNoWorkbook
	case errors.Is(err, ErrNoImages):
		return CodeNoImages
	case errors.Is(err, ErrFileCorrupted):
		return CodeFileCorrupted
	default:
		return CodeFileCorrupted
	}
}

// Strerror returns a human-readable description of code.
func Strerror(code Code) string {
	switch code {
	case Success:
		return "success"
	case CodeWrongFormat:
		return "wrong file format"
	case CodeFileCorrupted:
		return "file is corrupted"
	case CodeInvalidArgument:
		return "invalid argument"
	case CodeNoWorkbook:
		return "no workbook stream found"
	case CodeNoImages:
		return "no images found"
	case CodeOutOfMemory:
		return "out of memory"
	default:
		return "unknown error"
	}
}
