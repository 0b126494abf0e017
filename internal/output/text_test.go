package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bdwood3/jslinter/internal/lint"
)

func sampleResult() *lint.Result {
	return &lint.Result{
		Warnings: []lint.Warning{{Line: 3, Column: 5, Message: "Unexpected."}},
		Lines:    sampleLines(),
		Option:   lint.Options{ES6: true, Fudge: true},
		Edition:  "2024-01-01",
	}
}

func TestTextFormatter_WithoutColor(t *testing.T) {
	f := &TextFormatter{Color: false}
	var buf bytes.Buffer

	if err := f.Format(&buf, sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	if strings.Contains(output, "\033[") {
		t.Error("expected no ANSI escape sequences in output, but found some")
	}

	expected := "Warnings\n\n4.6 Unexpected.\n    return a==b;\n     ^\n\nJSLint edition 2024-01-01\n"
	if output != expected {
		t.Errorf("got %q, want %q", output, expected)
	}
}

func TestTextFormatter_WithColor(t *testing.T) {
	f := &TextFormatter{Color: true}
	var buf bytes.Buffer

	if err := f.Format(&buf, sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	for _, seq := range []string{"\033[1m", "\033[31m", "\033[30;47m", "\033[0m"} {
		if !strings.Contains(output, seq) {
			t.Errorf("expected escape sequence %q in output", seq)
		}
	}
	if !strings.Contains(output, "4.6 \033[31mUnexpected.\033[0m\n") {
		t.Errorf("expected styled position line, got %q", output)
	}
}

func TestTextFormatter_CleanResult(t *testing.T) {
	f := &TextFormatter{Color: true}
	var buf bytes.Buffer

	if err := f.Format(&buf, &lint.Result{Edition: "X"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf.String() != "JSLint edition X\n" {
		t.Errorf("got %q, want %q", buf.String(), "JSLint edition X\n")
	}
}

func TestTextFormatter_ImplementsFormatter(t *testing.T) {
	var _ Formatter = &TextFormatter{}
}
