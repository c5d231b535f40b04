package iomodel

import (
	"fmt"
	"runtime"

	"github.com/cogpn/cogpn/pkg/errcode"
	"github.com/gnames/gn"
)

func ModelEncodeError(path string, err error) error {
	msg := "Cannot save model to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ModelEncodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot save model %s: %w", fn.Name(), path, err),
	}
}

func ModelDecodeError(path string, err error) error {
	msg := `Cannot load model from <em>%s</em>

<em>How to fix:</em>
  Run 'cogpn train' to create the model again`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ModelDecodeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot load model %s: %w", fn.Name(), path, err),
	}
}

func ModelEmptyError(path string) error {
	msg := `Model <em>%s</em> has no significant terms

<em>How to fix:</em>
  Train the model on addresses that have postal codes`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ModelEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: model %s is empty", fn.Name(), path),
	}
}

func InputFileNotFoundError(path string, err error) error {
	msg := `Model file <em>%s</em> does not exist

<em>How to fix:</em>
  Run 'cogpn train' first or point --model to an existing file`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.InputFileNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: model file %s not found: %w", fn.Name(), path, err),
	}
}
