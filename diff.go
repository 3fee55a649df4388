package buglink

import (
	"fmt"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
)

// DiffText returns a unified diff between two texts, labeled name1 and
// name2, suitable for inclusion in a bug report body. Empty when the texts
// are identical.
func DiffText(name1, name2, text1, text2 string) string {
	edits := myers.ComputeEdits(span.URIFromPath(name1), text1, text2)
	return fmt.Sprint(gotextdiff.ToUnified(name1, name2, text1, edits))
}

// DiffParam wraps [DiffText] as a report parameter, for templates with an
// expected-versus-actual placeholder.
func DiffParam(key, name1, name2, text1, text2 string) Param {
	return P(key, DiffText(name1, name2, text1, text2))
}
