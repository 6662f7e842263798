// Package system wraps process execution and filesystem queries for the TPL
// setup tool. Commands are always built as explicit argument lists and handed
// to the exec layer directly, never interpolated into a shell string.
package system

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"
)

// RunOptions controls how a command is executed.
type RunOptions struct {
	Capture bool // return combined stdout/stderr instead of streaming it
	Echo    bool // print the command line before running it
}

// Result holds the outcome of a command execution. A nonzero ExitCode is not
// an error; callers decide whether it is fatal.
type Result struct {
	RunID    string // unique identifier for this run
	ExitCode int    // process exit code
	Output   string // combined stdout/stderr, only set when captured
}

// Executor runs commands given as argv lists.
type Executor interface {
	Run(argv []string, opts RunOptions) (*Result, error)
}

// ExecRunner executes commands using os/exec.
type ExecRunner struct {
	// Stdout receives streamed command output when capture is off.
	// Defaults to os.Stdout.
	Stdout io.Writer
	// Stderr receives streamed command error output, echo lines, and
	// nonzero-exit diagnostics. Defaults to os.Stderr.
	Stderr io.Writer
}

// NewExecutor returns a default executor implementation.
func NewExecutor() Executor {
	return &ExecRunner{}
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}

// Run executes a command. The first argv element is the binary name
// (resolved via PATH), the rest are arguments. The returned error covers
// spawn failures only (binary not found, permission denied); a command that
// ran and exited nonzero yields a Result with that code and a nil error.
func (r *ExecRunner) Run(argv []string, opts RunOptions) (*Result, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("empty argv")
	}

	rendered := shellquote.Join(argv...)
	if opts.Echo {
		fmt.Fprintf(r.stderr(), "[exe: %s]\n", rendered)
	}

	res := &Result{RunID: uuid.New().String()}
	cmd := exec.Command(argv[0], argv[1:]...)

	if opts.Capture {
		output, err := cmd.CombinedOutput()
		res.Output = string(output)
		if err != nil {
			var exitErr *exec.ExitError
			if !errors.As(err, &exitErr) {
				return nil, fmt.Errorf("failed to execute %s: %w", argv[0], err)
			}
			res.ExitCode = exitErr.ExitCode()
		}
		return res, nil
	}

	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("failed to execute %s: %w", argv[0], err)
		}
		res.ExitCode = exitErr.ExitCode()
		fmt.Fprintf(r.stderr(), "[error: return code %d from command: %s]\n", res.ExitCode, rendered)
	}
	return res, nil
}

// CommandExists checks if a command is available on PATH
func CommandExists(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}
