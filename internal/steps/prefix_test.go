package steps

import (
	"path/filepath"
	"testing"

	"github.com/toolkitbuild/tpl-setup/internal/config"
	"github.com/toolkitbuild/tpl-setup/internal/system"
)

// Test Ensure creates the prefix and persists it to config
func TestPrefixEnsure(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "tpls")

	cfg := newTestConfig(t)
	testUI, _ := newTestUI()
	fs := system.NewFileSystem()
	setup := NewPrefixSetup(fs, cfg, testUI)

	if err := setup.Ensure(target); err != nil {
		t.Fatalf("Ensure() error: %v", err)
	}

	exists, err := fs.DirectoryExists(target)
	if err != nil || !exists {
		t.Errorf("DirectoryExists(%s) = %v, %v after Ensure", target, exists, err)
	}

	saved, err := cfg.Get(config.KeyTPLPrefix)
	if err != nil {
		t.Fatalf("Get(KeyTPLPrefix) error: %v", err)
	}
	if saved != target {
		t.Errorf("saved prefix = %q, want %q", saved, target)
	}
}

// Test Ensure rejects relative prefixes
func TestPrefixEnsureRelative(t *testing.T) {
	cfg := newTestConfig(t)
	testUI, _ := newTestUI()
	setup := NewPrefixSetup(system.NewFileSystem(), cfg, testUI)

	if err := setup.Ensure("relative/tpls"); err == nil {
		t.Error("Ensure() with relative path returned nil error")
	}
}

// Test non-interactive Run uses the configured prefix and fails without one
func TestPrefixRunNonInteractive(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "tpls")

	cfg := newTestConfig(t)
	testUI, _ := newTestUI()
	testUI.SetNonInteractive(true)
	fs := system.NewFileSystem()
	setup := NewPrefixSetup(fs, cfg, testUI)

	if err := setup.Run(); err == nil {
		t.Error("Run() without configured prefix returned nil error")
	}

	if err := cfg.Set(config.KeyTPLPrefix, target); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := setup.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	exists, err := fs.DirectoryExists(target)
	if err != nil || !exists {
		t.Errorf("DirectoryExists(%s) = %v, %v after Run", target, exists, err)
	}
}
