package engine

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
)

// procResult holds the output of one external process run.
type procResult struct {
	Stdout []byte
	Stderr string
	Code   int
}

// run executes argv with stdin attached and collects its output. A non-zero
// exit is reported through Code, not as an error; err is set only when the
// process could not be run at all.
func run(ctx context.Context, stdin io.Reader, argv ...string) (*procResult, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdin = stdin
	cmd.Stdout, cmd.Stderr = &outBuf, &errBuf
	err := cmd.Run()
	code := 0
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		code = ee.ExitCode()
		err = nil
	}
	if err != nil {
		return nil, err
	}
	return &procResult{Stdout: outBuf.Bytes(), Stderr: errBuf.String(), Code: code}, nil
}
