// Package output renders engine results for the terminal and in
// machine-readable forms.
package output

import (
	"fmt"
	"strings"

	"github.com/bdwood3/jslinter/internal/lint"
	"github.com/bdwood3/jslinter/internal/style"
)

const (
	warningsHeader = "Warnings"
	stopMessage    = "JSLint was unable to finish."
	jsonGood       = "JSON: good"
	jsonBad        = "JSON: bad"
	editionPrefix  = "JSLint edition "
)

// Render turns res into display lines, top to bottom. The warnings block
// comes first and is left out entirely when there is nothing to report; the
// summary block is always present.
//
// res.Lines must cover every warning's line.
func Render(res *lint.Result, p style.Palette) []string {
	var out []string
	if warnings := warningReport(res, p); len(warnings) > 0 {
		out = append(out, p.Strong(p.Warning(warningsHeader)), "")
		out = append(out, warnings...)
	}
	return append(out, summaryReport(res, p)...)
}

func warningReport(res *lint.Result, p style.Palette) []string {
	var out []string
	if res.Stop {
		out = append(out, p.Warning(stopMessage), "")
	}
	fudge := res.Fudge()
	for _, w := range res.Warnings {
		out = append(out,
			fmt.Sprintf("%d.%d %s", w.Line+fudge, w.Column+fudge, p.Warning(w.Message)),
			p.Code(res.Lines[w.Line]),
			p.Warning(marker(w.Column)),
			"",
		)
	}
	return out
}

// marker points at column in the excerpt above it.
func marker(column int) string {
	return strings.Repeat(" ", column) + "^"
}

func summaryReport(res *lint.Result, p style.Palette) []string {
	if !res.JSON {
		return []string{editionPrefix + res.Edition}
	}
	if len(res.Warnings) == 0 {
		return []string{p.Strong(p.Success(jsonGood))}
	}
	return []string{p.Strong(p.Warning(jsonBad))}
}
