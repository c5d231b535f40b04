package ioresolve

import (
	"fmt"
	"runtime"

	"github.com/cogpn/cogpn/pkg/errcode"
	"github.com/gnames/gn"
)

// RowOutOfRangeError is returned when the requested data row is not in
// the address file.
func RowOutOfRangeError(row, total int) error {
	msg := "Row <em>%d</em> is not in the address file, it has %d data rows"
	vars := []any{row, total}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ResolveRowOutOfRangeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: row %d out of range 1-%d",
			fn.Name(), row, total),
	}
}
