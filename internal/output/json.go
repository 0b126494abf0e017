package output

import (
	"encoding/json"
	"io"

	"github.com/bdwood3/jslinter/internal/lint"
)

// JSONFormatter outputs the engine result as a JSON object.
type JSONFormatter struct{}

// Format writes res as pretty-printed JSON. Empty warnings and lines are
// written as [] rather than null.
func (f *JSONFormatter) Format(w io.Writer, res *lint.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(normalized(res))
}

func normalized(res *lint.Result) lint.Result {
	out := *res
	if out.Warnings == nil {
		out.Warnings = []lint.Warning{}
	}
	if out.Lines == nil {
		out.Lines = []string{}
	}
	return out
}
