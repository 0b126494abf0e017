package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bdwood3/jslinter/internal/lint"
)

// YAMLFormatter outputs the engine result as a YAML document.
type YAMLFormatter struct{}

// Format writes res as YAML with two-space indentation.
func (f *YAMLFormatter) Format(w io.Writer, res *lint.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(normalized(res)); err != nil {
		return err
	}
	return enc.Close()
}
