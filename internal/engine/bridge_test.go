package engine

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bdwood3/jslinter/internal/lint"
)

const stubModule = `module.exports = function (source, option, globals) {
    return {
        edition: "stub",
        json: false,
        stop: option.this === true,
        lines: source.split("\n"),
        option: option,
        tree: {},
        warnings: [{line: 1, column: 2, message: globals.join(","), code: "c", a: "extra"}]
    };
};
`

// Runs the embedded bridge under a real node against a stub module.
func TestBridge_RealNode(t *testing.T) {
	node, err := exec.LookPath(DefaultNode)
	if err != nil {
		t.Skip("node not installed")
	}
	module := filepath.Join(t.TempDir(), ModuleName)
	require.NoError(t, os.WriteFile(module, []byte(stubModule), 0o644))

	n := &Node{Bin: node, Module: module}
	res, err := n.Lint(context.Background(), "a\nbc\n", lint.Options{ES6: true, This: true, Fudge: true}, lint.Globals{"console"})
	require.NoError(t, err)

	assert.Equal(t, "stub", res.Edition)
	assert.True(t, res.Stop)
	assert.Equal(t, []string{"a", "bc", ""}, res.Lines)
	assert.Equal(t, lint.Options{ES6: true, This: true, Fudge: true}, res.Option)
	assert.Equal(t, []lint.Warning{{Line: 1, Column: 2, Message: "console", Code: "c"}}, res.Warnings)
}

func TestBridge_RealNodeBadModule(t *testing.T) {
	node, err := exec.LookPath(DefaultNode)
	if err != nil {
		t.Skip("node not installed")
	}
	module := filepath.Join(t.TempDir(), ModuleName)
	require.NoError(t, os.WriteFile(module, []byte("module.exports = {};\n"), 0o644))

	n := &Node{Bin: node, Module: module}
	_, err = n.Lint(context.Background(), "", lint.Options{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not export a jslint function")
}
