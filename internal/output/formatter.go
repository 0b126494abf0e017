package output

import (
	"fmt"
	"io"

	"github.com/bdwood3/jslinter/internal/lint"
)

// Formatter defines the interface for writing an engine result.
type Formatter interface {
	Format(w io.Writer, res *lint.Result) error
}

// Formats lists the names accepted by New.
var Formats = []string{"text", "json", "yaml"}

// New returns the formatter registered under name. color only affects the
// text formatter.
func New(name string, color bool) (Formatter, error) {
	switch name {
	case "text":
		return &TextFormatter{Color: color}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "yaml":
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want one of %v)", name, Formats)
	}
}
