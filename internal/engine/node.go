package engine

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bdwood3/jslinter/internal/lint"
)

//go:embed bridge.js
var bridgeScript string

// DefaultNode is the runtime used when Node.Bin is empty.
const DefaultNode = "node"

// Node runs the JSLint module inside a Node.js process. The request is sent
// as JSON on stdin and the result is read back as JSON from stdout.
type Node struct {
	// Bin is the node executable; DefaultNode when empty.
	Bin string
	// Module is the path to jslint.js. It should be absolute; see Locate.
	Module string
}

type request struct {
	Source  string       `json:"source"`
	Option  lint.Options `json:"option"`
	Globals lint.Globals `json:"globals"`
}

// Command returns the argument vector used to start the engine.
func (n *Node) Command() []string {
	bin := n.Bin
	if bin == "" {
		bin = DefaultNode
	}
	return []string{bin, "-e", bridgeScript, n.Module}
}

// Lint implements Engine.
func (n *Node) Lint(ctx context.Context, source string, opts lint.Options, globals lint.Globals) (*lint.Result, error) {
	argv := n.Command()
	if _, err := exec.LookPath(argv[0]); err != nil {
		return nil, fmt.Errorf("executable %q not in PATH", argv[0])
	}
	if globals == nil {
		globals = lint.Globals{}
	}

	payload, err := json.Marshal(request{Source: source, Option: opts, Globals: globals})
	if err != nil {
		return nil, fmt.Errorf("encoding engine request: %w", err)
	}

	res, err := run(ctx, bytes.NewReader(payload), argv...)
	if err != nil {
		return nil, fmt.Errorf("running %s: %w", argv[0], err)
	}
	if res.Code != 0 {
		return nil, fmt.Errorf("engine exited with status %d: %s", res.Code, strings.TrimSpace(res.Stderr))
	}

	var out lint.Result
	if err := json.Unmarshal(res.Stdout, &out); err != nil {
		return nil, fmt.Errorf("decoding engine output: %w", err)
	}
	return &out, nil
}
