package iotsv

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"

	"github.com/cogpn/cogpn/pkg/errcode"
	"github.com/gnames/gn"
)

// InputFileNotFoundError is returned when a required input file is absent.
func InputFileNotFoundError(path string, err error) error {
	msg := `Input file <em>%s</em> does not exist

<em>How to fix:</em>
  1. Check the path given on the command line
  2. Or set the path in the 'files' section of config.yaml`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputFileNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: input file %s not found: %w",
			fn.Name(), path, err),
	}
}

// ReadFileError is returned when an existing file cannot be opened.
func ReadFileError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn.Name(), path, err),
	}
}

// ParseReferenceError is returned for a malformed reference list.
func ParseReferenceError(path string, line int, err error) error {
	msg := "Cannot parse reference file <em>%s</em> at line %d"
	vars := []any{path, line}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ParseReferenceError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse %s line %d: %w",
			fn.Name(), path, line, err),
	}
}

// ParseAddressesError is returned for a malformed address file.
func ParseAddressesError(path string, line int, err error) error {
	msg := "Cannot parse address file <em>%s</em> at line %d"
	vars := []any{path, line}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ParseAddressesError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse %s line %d: %w",
			fn.Name(), path, line, err),
	}
}

// ParseWordListError is returned for malformed synonyms, exclusions or
// word lists.
func ParseWordListError(path string, err error) error {
	msg := "Cannot parse word list <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ParseWordListError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot parse %s: %w", fn.Name(), path, err),
	}
}

// WriteFileError is returned when results cannot be written.
func WriteFileError(path string, err error) error {
	msg := "Cannot write <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ResolveWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %s: %w", fn.Name(), path, err),
	}
}

func openError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return InputFileNotFoundError(path, err)
	}
	return ReadFileError(path, err)
}
