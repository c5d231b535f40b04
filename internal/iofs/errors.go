package iofs

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/cogpn/cogpn/pkg/errcode"
	"github.com/gnames/gn"
)

var errConfigIsDir = errors.New("path is a directory")

// CreateDirError is returned when one of the cogpn directories under the
// home directory cannot be made.
func CreateDirError(purpose, dir string, err error) error {
	msg := `Cannot create %s directory <em>%s</em>

<em>How to fix:</em>
  1. Check that the home directory is writable
  2. Or remove a file that has the same name as the directory`
	vars := []any{purpose, dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create %s dir %s: %w",
			fn.Name(), purpose, dir, err),
	}
}

// ConfigFileError is returned when the default config.yaml cannot be
// written.
func ConfigFileError(path string, err error) error {
	msg := `Cannot write default configuration to <em>%s</em>

<em>How to fix:</em>
  Make sure the path is a writable file location, or create the file
  yourself from 'cogpn --help' settings`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConfigFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write config %s: %w",
			fn.Name(), path, err),
	}
}

// ReadFileError is returned when config.yaml exists but cannot be read
// or parsed.
func ReadFileError(path string, err error) error {
	msg := `Cannot read configuration <em>%s</em>

<em>How to fix:</em>
  Fix the YAML syntax, or delete the file to get the defaults back`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read config %s: %w",
			fn.Name(), path, err),
	}
}
