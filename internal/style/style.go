// Package style wraps text in ANSI escape sequences for terminal output.
//
// Each style emits its own code, the text, then a full reset. Nested styles
// therefore reset to plain, not to the enclosing style.
package style

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
)

const escape = "\x1b"

var reset = sequence(color.Reset)

var (
	codeSeq    = sequence(color.FgBlack, color.BgWhite)
	strongSeq  = sequence(color.Bold)
	successSeq = sequence(color.FgGreen)
	warningSeq = sequence(color.FgRed)
)

func sequence(attrs ...color.Attribute) string {
	codes := make([]string, len(attrs))
	for i, a := range attrs {
		codes[i] = strconv.Itoa(int(a))
	}
	return escape + "[" + strings.Join(codes, ";") + "m"
}

// Code styles a source excerpt: black on white.
func Code(s string) string { return codeSeq + s + reset }

// Strong styles emphasized text in bold.
func Strong(s string) string { return strongSeq + s + reset }

// Success styles text in green.
func Success(s string) string { return successSeq + s + reset }

// Warning styles text in red.
func Warning(s string) string { return warningSeq + s + reset }

// Palette applies the styles above when Enabled, and passes text through
// untouched otherwise.
type Palette struct {
	Enabled bool
}

// Ready-made palettes.
var (
	ANSI  = Palette{Enabled: true}
	Plain = Palette{}
)

func (p Palette) apply(fn func(string) string, s string) string {
	if !p.Enabled {
		return s
	}
	return fn(s)
}

// Code styles a source excerpt, as black on white.
func (p Palette) Code(s string) string { return p.apply(Code, s) }

// Strong styles s in bold.
func (p Palette) Strong(s string) string { return p.apply(Strong, s) }

// Success styles s in green.
func (p Palette) Success(s string) string { return p.apply(Success, s) }

// Warning styles s in red.
func (p Palette) Warning(s string) string { return p.apply(Warning, s) }
