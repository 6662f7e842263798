package system

import (
	"bytes"
	"strings"
	"testing"
)

// Test capture mode returns output and exit code without error
func TestExecRunnerCapture(t *testing.T) {
	r := &ExecRunner{}

	res, err := r.Run([]string{"echo", "hello"}, RunOptions{Capture: true})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if res.Output != "hello\n" {
		t.Errorf("Output = %q, want %q", res.Output, "hello\n")
	}
	if res.RunID == "" {
		t.Error("RunID is empty")
	}
}

// Test capture mode with nonzero exit: code is data, not an error
func TestExecRunnerCaptureNonzeroExit(t *testing.T) {
	r := &ExecRunner{}

	res, err := r.Run([]string{"sh", "-c", "echo oops; exit 3"}, RunOptions{Capture: true})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", res.ExitCode)
	}
	if res.Output != "oops\n" {
		t.Errorf("Output = %q, want %q", res.Output, "oops\n")
	}
}

// Test capture mode combines stdout and stderr
func TestExecRunnerCaptureCombinesStreams(t *testing.T) {
	r := &ExecRunner{}

	res, err := r.Run([]string{"sh", "-c", "echo out; echo err 1>&2"}, RunOptions{Capture: true})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !strings.Contains(res.Output, "out") || !strings.Contains(res.Output, "err") {
		t.Errorf("Output = %q, want both streams present", res.Output)
	}
}

// Test non-capture mode emits a diagnostic with the code and the command
func TestExecRunnerDiagnosticOnNonzeroExit(t *testing.T) {
	var stderr bytes.Buffer
	r := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &stderr}

	res, err := r.Run([]string{"sh", "-c", "exit 2"}, RunOptions{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.ExitCode != 2 {
		t.Errorf("ExitCode = %d, want 2", res.ExitCode)
	}

	diag := stderr.String()
	if !strings.Contains(diag, "return code 2") {
		t.Errorf("diagnostic %q does not contain the exit code", diag)
	}
	if !strings.Contains(diag, "exit 2") {
		t.Errorf("diagnostic %q does not contain the command text", diag)
	}
}

// Test non-capture success stays quiet and streams output
func TestExecRunnerNoDiagnosticOnSuccess(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := &ExecRunner{Stdout: &stdout, Stderr: &stderr}

	res, err := r.Run([]string{"echo", "hi"}, RunOptions{})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", res.ExitCode)
	}
	if stdout.String() != "hi\n" {
		t.Errorf("streamed stdout = %q, want %q", stdout.String(), "hi\n")
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}
}

// Test echo flag prints the rendered command before running it
func TestExecRunnerEcho(t *testing.T) {
	var stderr bytes.Buffer
	r := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &stderr}

	if _, err := r.Run([]string{"echo", "two words"}, RunOptions{Echo: true}); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	echoed := stderr.String()
	if !strings.HasPrefix(echoed, "[exe: ") {
		t.Errorf("echo line %q does not start with [exe:", echoed)
	}
	// Arguments with spaces must be rendered shell-quoted
	if !strings.Contains(echoed, "'two words'") {
		t.Errorf("echo line %q does not quote the argument", echoed)
	}
}

// Test spawn failures are real errors
func TestExecRunnerSpawnFailure(t *testing.T) {
	r := &ExecRunner{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	if _, err := r.Run([]string{"this-command-does-not-exist-xyz"}, RunOptions{}); err == nil {
		t.Error("Run() on missing binary returned nil error")
	}

	if _, err := r.Run(nil, RunOptions{}); err == nil {
		t.Error("Run() with empty argv returned nil error")
	}
}

// Test CommandExists
func TestCommandExists(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    bool
	}{
		{"sh exists", "sh", true},
		{"nonexistent command", "this-command-does-not-exist-xyz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CommandExists(tt.command)
			if got != tt.want {
				t.Errorf("CommandExists(%s) = %v, want %v", tt.command, got, tt.want)
			}
		})
	}
}
