// Package options turns the raw argument list into engine flags and the
// single target filename.
package options

import (
	"slices"

	"github.com/bdwood3/jslinter/internal/lint"
)

// Flag is a recognized command-line switch, matched by exact value.
type Flag string

// Recognized flags.
const (
	FlagNode    Flag = "-node"
	FlagBrowser Flag = "-browser"
	FlagThis    Flag = "-this"
	FlagFor     Flag = "-for"
)

// Flags is the enumeration order used during extraction.
var Flags = []Flag{FlagNode, FlagBrowser, FlagThis, FlagFor}

// FlagSet records which recognized flags were present.
type FlagSet struct {
	Node    bool
	Browser bool
	This    bool
	For     bool
}

func (f *FlagSet) set(flag Flag) {
	switch flag {
	case FlagNode:
		f.Node = true
	case FlagBrowser:
		f.Browser = true
	case FlagThis:
		f.This = true
	case FlagFor:
		f.For = true
	}
}

// EngineOptions builds the option object for the engine. ES6 and Fudge are
// always enabled.
func (f FlagSet) EngineOptions() lint.Options {
	return lint.Options{
		ES6:     true,
		Node:    f.Node,
		Browser: f.Browser,
		This:    f.This,
		For:     f.For,
		Fudge:   true,
	}
}

// Globals returns the predeclared identifiers implied by the flags.
func (f FlagSet) Globals() lint.Globals {
	globals := lint.Globals{}
	if f.Browser {
		globals = append(globals, lint.BrowserGlobal)
	}
	return globals
}

// Invocation is a validated command line.
type Invocation struct {
	Flags    FlagSet
	Filename string
}

// Extract validates args and splits them into flags and the filename.
// An empty args fails with ErrMissingParameters before any flag is looked at.
func Extract(args []string) (Invocation, error) {
	if len(args) == 0 {
		return Invocation{}, ErrMissingParameters
	}
	flags, rest := ExtractFlags(args)
	filename, err := Target(rest)
	if err != nil {
		return Invocation{}, err
	}
	return Invocation{Flags: flags, Filename: filename}, nil
}

// ExtractFlags removes the first exact occurrence of each recognized flag and
// returns the flags found together with the remaining tokens. args is not
// modified. A repeated flag is left in the remainder.
func ExtractFlags(args []string) (FlagSet, []string) {
	var fs FlagSet
	rest := slices.Clone(args)
	for _, flag := range Flags {
		i := slices.Index(rest, string(flag))
		if i < 0 {
			continue
		}
		fs.set(flag)
		rest = slices.Delete(rest, i, i+1)
	}
	return fs, rest
}

// Target checks that exactly one token remains and returns it.
func Target(rest []string) (string, error) {
	switch len(rest) {
	case 0:
		return "", ErrMissingFilename
	case 1:
		return rest[0], nil
	default:
		return "", &TooManyParametersError{Params: slices.Clone(rest)}
	}
}
