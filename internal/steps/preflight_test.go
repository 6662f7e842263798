package steps

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toolkitbuild/tpl-setup/internal/config"
	"github.com/toolkitbuild/tpl-setup/internal/system"
)

// Test preflight passes when all tools and the uberenv script are present
func TestPreflightPass(t *testing.T) {
	tmpDir := t.TempDir()
	uberenv := filepath.Join(tmpDir, "uberenv.py")
	if err := os.WriteFile(uberenv, []byte("#!/usr/bin/env python\n"), 0755); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	cfg := newTestConfig(t)
	// Use sh as the "python" so the check does not depend on a python install
	if err := cfg.Set(config.KeyPythonBin, "sh"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := cfg.Set(config.KeyUberenvPath, uberenv); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	testUI, _ := newTestUI()
	checker := NewPreflightChecker(system.NewFileSystem(), cfg, testUI)

	if err := checker.Run(); err != nil {
		t.Errorf("Run() error: %v", err)
	}
}

// Test preflight fails when the uberenv script is missing
func TestPreflightMissingUberenv(t *testing.T) {
	cfg := newTestConfig(t)
	if err := cfg.Set(config.KeyPythonBin, "sh"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := cfg.Set(config.KeyUberenvPath, filepath.Join(t.TempDir(), "missing.py")); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	testUI, _ := newTestUI()
	checker := NewPreflightChecker(system.NewFileSystem(), cfg, testUI)

	err := checker.Run()
	if err == nil {
		t.Fatal("Run() returned nil error with missing uberenv script")
	}
	if !strings.Contains(err.Error(), "uberenv") {
		t.Errorf("error %q does not mention uberenv", err)
	}
}

// Test preflight reports missing commands
func TestPreflightMissingCommand(t *testing.T) {
	tmpDir := t.TempDir()
	uberenv := filepath.Join(tmpDir, "uberenv.py")
	if err := os.WriteFile(uberenv, []byte(""), 0755); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	cfg := newTestConfig(t)
	if err := cfg.Set(config.KeyPythonBin, "this-command-does-not-exist-xyz"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := cfg.Set(config.KeyUberenvPath, uberenv); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	testUI, _ := newTestUI()
	checker := NewPreflightChecker(system.NewFileSystem(), cfg, testUI)

	err := checker.Run()
	if err == nil {
		t.Fatal("Run() returned nil error with missing interpreter")
	}
	if !strings.Contains(err.Error(), "command not found") {
		t.Errorf("error %q does not mention the missing command", err)
	}
}
