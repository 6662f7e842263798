package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/toolkitbuild/tpl-setup/internal/config"
	"github.com/toolkitbuild/tpl-setup/internal/system"
	"github.com/toolkitbuild/tpl-setup/internal/ui"
)

// fakeExecutor records argv lists without spawning processes
type fakeExecutor struct {
	calls [][]string
}

func (f *fakeExecutor) Run(argv []string, opts system.RunOptions) (*system.Result, error) {
	f.calls = append(f.calls, argv)
	return &system.Result{RunID: "test", ExitCode: 0}, nil
}

func newTestContext(t *testing.T) (*SetupContext, *fakeExecutor) {
	t.Helper()
	tmpDir := t.TempDir()
	cfg := config.NewWithMarkerDir(filepath.Join(tmpDir, "test.conf"), filepath.Join(tmpDir, "markers"))

	testUI := ui.NewWithWriter(&bytes.Buffer{})
	testUI.SetNonInteractive(true)

	exec := &fakeExecutor{}
	return &SetupContext{
		Config: cfg,
		UI:     testUI,
		Exec:   exec,
		FS:     system.NewFileSystem(),
	}, exec
}

// Test unknown step names are rejected
func TestRunStepUnknown(t *testing.T) {
	ctx, _ := newTestContext(t)

	if err := RunStep(ctx, "bogus"); err == nil {
		t.Error("RunStep(bogus) returned nil error")
	}
}

// Test the step registry covers the full workflow in order
func TestGetAllSteps(t *testing.T) {
	want := []string{"preflight", "prefix", "install", "check", "perms"}

	all := GetAllSteps()
	if len(all) != len(want) {
		t.Fatalf("GetAllSteps() returned %d steps, want %d", len(all), len(want))
	}
	for i, step := range all {
		if step.ShortName != want[i] {
			t.Errorf("step %d = %q, want %q", i, step.ShortName, want[i])
		}
		if step.MarkerName == "" {
			t.Errorf("step %q has no marker name", step.ShortName)
		}
	}
}

// Test the check step runs against the configured prefix and marks complete
func TestRunStepCheck(t *testing.T) {
	ctx, _ := newTestContext(t)

	prefix := t.TempDir()
	if err := os.WriteFile(filepath.Join(prefix, "host.cmake"), []byte("set(X 1)\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	if err := ctx.Config.Set(config.KeyTPLPrefix, prefix); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	if err := RunStep(ctx, "check"); err != nil {
		t.Fatalf("RunStep(check) error: %v", err)
	}
	if !ctx.Config.IsComplete("check-complete") {
		t.Error("check-complete marker not created")
	}

	// Completed steps are skipped without error in non-interactive mode
	if err := RunStep(ctx, "check"); err != nil {
		t.Errorf("RunStep(check) rerun error: %v", err)
	}
}

// Test the check step requires a configured prefix
func TestRunStepCheckWithoutPrefix(t *testing.T) {
	ctx, _ := newTestContext(t)

	if err := RunStep(ctx, "check"); err == nil {
		t.Error("RunStep(check) without prefix returned nil error")
	}
	if ctx.Config.IsComplete("check-complete") {
		t.Error("check-complete marker created despite failure")
	}
}

// Test the perms step issues the three permission commands
func TestRunStepPerms(t *testing.T) {
	ctx, exec := newTestContext(t)

	if err := ctx.Config.Set(config.KeyTPLPrefix, "/opt/tpls"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	if err := RunStep(ctx, "perms"); err != nil {
		t.Fatalf("RunStep(perms) error: %v", err)
	}

	if len(exec.calls) != 3 {
		t.Fatalf("executed %d commands, want 3: %v", len(exec.calls), exec.calls)
	}
	if exec.calls[0][0] != "chgrp" || exec.calls[1][0] != "chmod" || exec.calls[2][0] != "chmod" {
		t.Errorf("unexpected command sequence: %v", exec.calls)
	}
	if !ctx.Config.IsComplete("perms-complete") {
		t.Error("perms-complete marker not created")
	}
}
