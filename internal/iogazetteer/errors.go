package iogazetteer

import (
	"fmt"
	"runtime"

	"github.com/cogpn/cogpn/pkg/errcode"
	"github.com/gnames/gn"
)

// NoMetroError is returned when the configured metro city has no places
// in the reference list.
func NoMetroError(name, municipality string) error {
	msg := `Metro <em>%s</em> has no places in municipality <em>%s</em>

<em>How to fix:</em>
  Set gazetteer.metro_name and gazetteer.metro_municipality in config.yaml
  to names used by the reference list`
	vars := []any{name, municipality}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.GazetteerNoMetroError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: metro %q of %q has no places",
			fn.Name(), name, municipality),
	}
}
