package lint

// Warning is a single finding reported by the engine. Line and Column are
// zero-based, exactly as the engine produced them.
type Warning struct {
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Message string `json:"message" yaml:"message"`
	Code    string `json:"code,omitempty" yaml:"code,omitempty"`
}

// Result is the outcome of one engine run over one source text.
//
// Lines holds the source split by line using the engine's own indexing, so
// Lines[w.Line] is the excerpt for warning w.
type Result struct {
	Warnings []Warning `json:"warnings" yaml:"warnings"`
	Stop     bool      `json:"stop" yaml:"stop"`
	Lines    []string  `json:"lines" yaml:"lines"`
	Option   Options   `json:"option" yaml:"option"`
	JSON     bool      `json:"json" yaml:"json"`
	Edition  string    `json:"edition" yaml:"edition"`
}

// Clean reports whether the run finished with no warnings.
func (r *Result) Clean() bool {
	return len(r.Warnings) == 0 && !r.Stop
}

// Fudge returns the display offset added to zero-based positions: 1 when the
// fudge option is on, 0 otherwise.
func (r *Result) Fudge() int {
	if r.Option.Fudge {
		return 1
	}
	return 0
}
