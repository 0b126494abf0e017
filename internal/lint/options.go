package lint

// Options is the option object handed to the engine. ES6 and Fudge are
// always on for this front end; the rest mirror the command-line flags.
type Options struct {
	ES6     bool `json:"es6" yaml:"es6"`
	Node    bool `json:"node" yaml:"node"`
	Browser bool `json:"browser" yaml:"browser"`
	This    bool `json:"this" yaml:"this"`
	For     bool `json:"for" yaml:"for"`
	Fudge   bool `json:"fudge" yaml:"fudge"`
}

// Globals lists identifiers the engine should treat as predeclared.
type Globals []string

// BrowserGlobal is predeclared when browser assumptions are enabled.
const BrowserGlobal = "console"
