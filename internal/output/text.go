package output

import (
	"fmt"
	"io"

	"github.com/bdwood3/jslinter/internal/lint"
	"github.com/bdwood3/jslinter/internal/style"
)

// TextFormatter writes the rendered report, one line per Render line.
// When Color is false no escape sequences are emitted.
type TextFormatter struct {
	Color bool
}

// Format writes each rendered line followed by a newline.
func (f *TextFormatter) Format(w io.Writer, res *lint.Result) error {
	for _, line := range Render(res, style.Palette{Enabled: f.Color}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
