// Package cli implements the jslinter command: argument validation, the file
// read, the engine call and the report.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"

	"github.com/bdwood3/jslinter/internal/engine"
	"github.com/bdwood3/jslinter/internal/lint"
	"github.com/bdwood3/jslinter/internal/log"
	"github.com/bdwood3/jslinter/internal/options"
	"github.com/bdwood3/jslinter/internal/output"
)

// Exit codes.
const (
	ExitOK       = 0 // no warnings
	ExitWarnings = 1 // warnings reported or the engine stopped early
	ExitError    = 2 // usage, read, engine or output failure
)

const usageLine = "Usage: jslinter <filename> [-node] [-browser] [-this] [-for] [options]"

// Env holds the process boundaries Run talks to. Zero fields fall back to
// the real ones.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	// Engine overrides the Node-backed engine built from --node-bin and
	// --jslint.
	Engine   engine.Engine
	ReadFile func(name string) ([]byte, error)
}

func (e Env) withDefaults() Env {
	if e.Stdout == nil {
		e.Stdout = os.Stdout
	}
	if e.Stderr == nil {
		e.Stderr = os.Stderr
	}
	if e.ReadFile == nil {
		e.ReadFile = os.ReadFile
	}
	return e
}

// settings are the long options accepted next to the value-matched flags.
type settings struct {
	jslint  string
	nodeBin string
	format  string
	noColor bool
	verbose bool
	version bool
}

func newFlagSet(w io.Writer) (*flag.FlagSet, *settings) {
	s := &settings{}
	fs := flag.NewFlagSet("jslinter", flag.ContinueOnError)
	// Errors and usage are reported by Run and Usage, never by pflag itself.
	fs.SetOutput(io.Discard)

	fs.StringVar(&s.jslint, "jslint", "", "Path to jslint.js (default: next to the executable, then the working directory)")
	fs.StringVar(&s.nodeBin, "node-bin", engine.DefaultNode, "Node.js executable used to run the engine")
	fs.StringVarP(&s.format, "format", "f", "text", "Output format: "+strings.Join(output.Formats, ", "))
	fs.BoolVar(&s.noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&s.verbose, "verbose", "v", false, "Log progress to stderr")
	fs.BoolVar(&s.version, "version", false, "Print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(w, "%s\n\n"+
			"Lint a JavaScript file with JSLint.\n\n"+
			"Engine flags:\n"+
			"  -node       Assume Node.js\n"+
			"  -browser    Assume a browser (predeclares console)\n"+
			"  -this       Tolerate this\n"+
			"  -for        Tolerate for statements\n\n"+
			"Options (values only as --name=value):\n%s", usageLine, fs.FlagUsages())
	}
	return fs, s
}

// optionTokens are the bare tokens of the boolean long options; valueOptions
// are the prefixes of options that only take their value after '='.
var (
	optionTokens = []string{"--no-color", "-v", "--verbose", "--version", "-h", "--help"}
	valueOptions = []string{"--jslint=", "--node-bin=", "--format=", "-f="}
)

func isOption(tok string) bool {
	if slices.Contains(optionTokens, tok) {
		return true
	}
	for _, prefix := range valueOptions {
		if strings.HasPrefix(tok, prefix) {
			return true
		}
	}
	return false
}

// splitOptions separates the long options from the engine arguments. Any
// other token, dashed or not, stays in rest in argument order.
func splitOptions(args []string) (opts, rest []string) {
	for _, tok := range args {
		if isOption(tok) {
			opts = append(opts, tok)
		} else {
			rest = append(rest, tok)
		}
	}
	return opts, rest
}

// Run executes one invocation and returns the process exit code.
func Run(ctx context.Context, args []string, env Env) int {
	env = env.withDefaults()
	fs, s := newFlagSet(env.Stderr)

	if len(args) == 0 {
		return usageError(env.Stderr, fs, options.ErrMissingParameters, true)
	}

	longOpts, rest := splitOptions(args)
	if err := fs.Parse(longOpts); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return usageError(env.Stderr, fs, err, true)
	}
	if s.version {
		fmt.Fprintf(env.Stdout, "jslinter %s\n", Version())
		return ExitOK
	}

	colored := !s.noColor
	inv, err := options.Extract(rest)
	if errors.Is(err, options.ErrMissingParameters) {
		// Only long options were given.
		err = options.ErrMissingFilename
	}
	if err != nil {
		return usageError(env.Stderr, fs, err, colored)
	}
	filename, flags := inv.Filename, inv.Flags

	formatter, err := output.New(s.format, colored)
	if err != nil {
		errorf(env.Stderr, colored, "jslinter: %v", err)
		return ExitError
	}

	logger := log.New(env.Stderr, s.verbose)
	opts := flags.EngineOptions()
	globals := flags.Globals()
	logger.Printf("file: %s", filename)
	logger.Printf("options: %+v", opts)
	logger.Printf("globals: %v", globals)

	source, err := env.ReadFile(filename)
	if err != nil {
		logger.Printf("read: %v", err)
		errorf(env.Stderr, colored, "Unable to read file: '%s'.", filename)
		return ExitError
	}

	eng := env.Engine
	if eng == nil {
		module, err := engine.Locate(s.jslint)
		if err != nil {
			errorf(env.Stderr, colored, "jslinter: %v", err)
			return ExitError
		}
		node := &engine.Node{Bin: s.nodeBin, Module: module}
		logger.Printf("engine: %s %s", node.Command()[0], module)
		eng = node
	}

	res, err := eng.Lint(ctx, string(source), opts, globals)
	if err != nil {
		errorf(env.Stderr, colored, "jslinter: %v", err)
		return ExitError
	}
	logger.Printf("warnings: %d, stop: %t", len(res.Warnings), res.Stop)

	if err := formatter.Format(env.Stdout, res); err != nil {
		errorf(env.Stderr, colored, "jslinter: error writing output: %v", err)
		return ExitError
	}
	return exitCode(res)
}

func exitCode(res *lint.Result) int {
	if res.Clean() {
		return ExitOK
	}
	return ExitWarnings
}

// usageError reports an invocation error followed by the usage text.
// Anything that is not an invocation error is a bad long option.
func usageError(w io.Writer, fs *flag.FlagSet, err error, colored bool) int {
	if !options.IsUsageError(err) {
		errorf(w, colored, "jslinter: %v", err)
		fs.Usage()
		return ExitError
	}

	var tooMany *options.TooManyParametersError
	switch {
	case errors.Is(err, options.ErrMissingParameters):
		errorf(w, colored, "Missing parameters.")
	case errors.As(err, &tooMany):
		errorf(w, colored, "Too many parameters.")
		fmt.Fprintf(w, "%q\n", tooMany.Params)
		fmt.Fprintf(w, "unexpected: %q\n", tooMany.Excess())
	case errors.Is(err, options.ErrMissingFilename):
		errorf(w, colored, "Missing filename.")
	}
	fs.Usage()
	return ExitError
}

// errorf writes a one-line message, in red unless colored is false.
func errorf(w io.Writer, colored bool, format string, args ...any) {
	c := color.New(color.FgRed)
	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	_, _ = fmt.Fprintln(w, c.Sprintf(format, args...))
}

// Version reports the module version from build info.
func Version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
