package gazetteer

import (
	"fmt"
	"strings"

	"github.com/cogpn/cogpn/pkg/errcode"
	"github.com/gnames/gn"
)

// DuplicateTownError is returned when more than one node matches a town
// name within one municipality. It means the reference list itself is
// inconsistent.
func DuplicateTownError(
	town, municipality string,
	row int,
	nodes []*Node,
) error {
	msg := `Found duplicate town name in reference data

<em>Town:</em> %s
<em>Municipality:</em> %s
<em>Data row:</em> %d
<em>Conflicting places:</em> %s

<em>How to fix:</em>
  1. Rename one of the places in the reference file
  2. Or add the conflicting (suburb, town) pair to the exclusions file`

	descr := make([]string, len(nodes))
	for i, n := range nodes {
		descr[i] = fmt.Sprintf("%s (%s #%d)", n.Name, n.Kind, n.ID)
	}
	conflicts := strings.Join(descr, ", ")

	return &gn.Error{
		Code: errcode.GazetteerDuplicateTownError,
		Msg:  msg,
		Vars: []any{town, municipality, row, conflicts},
		Err: fmt.Errorf(
			"duplicate town %q in municipality %q at row %d: %s",
			town, municipality, row, conflicts,
		),
	}
}

// InconsistentParentError is returned when a node is reached before its
// recorded parent during traversal.
func InconsistentParentError(child, parent *Node) error {
	parentName := "<missing>"
	if parent != nil {
		parentName = parent.Name
	}
	msg := "Gazetteer node <em>%s</em> has inconsistent parent <em>%s</em>"
	return &gn.Error{
		Code: errcode.GazetteerInconsistentParentError,
		Msg:  msg,
		Vars: []any{child.Name, parentName},
		Err: fmt.Errorf(
			"child: %s parent: %s: parent not reached during traversal",
			child.Name, parentName,
		),
	}
}
