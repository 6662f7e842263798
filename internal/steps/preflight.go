package steps

import (
	"fmt"
	"strings"

	"github.com/toolkitbuild/tpl-setup/internal/config"
	"github.com/toolkitbuild/tpl-setup/internal/system"
	"github.com/toolkitbuild/tpl-setup/internal/ui"
)

// PreflightChecker verifies the system can run an install before any real
// work happens
type PreflightChecker struct {
	fs     *system.FileSystem
	config *config.Config
	ui     *ui.UI
}

// NewPreflightChecker creates a new PreflightChecker instance
func NewPreflightChecker(fs *system.FileSystem, cfg *config.Config, ui *ui.UI) *PreflightChecker {
	return &PreflightChecker{
		fs:     fs,
		config: cfg,
		ui:     ui,
	}
}

// Run executes all preflight checks and reports every failure at once
func (p *PreflightChecker) Run() error {
	p.ui.Info("Checking required commands...")

	var problems []string

	required := []string{
		p.config.GetOrDefault(config.KeyPythonBin, "python"),
		"chgrp",
		"chmod",
	}
	for _, cmd := range required {
		if system.CommandExists(cmd) {
			p.ui.Successf("  %s found", cmd)
		} else {
			p.ui.Errorf("  %s not found on PATH", cmd)
			problems = append(problems, fmt.Sprintf("command not found: %s", cmd))
		}
	}

	uberenv := p.config.GetOrDefault(config.KeyUberenvPath, "../uberenv.py")
	exists, err := p.fs.FileExists(uberenv)
	if err != nil {
		problems = append(problems, fmt.Sprintf("could not check uberenv script: %v", err))
	} else if exists {
		p.ui.Successf("  uberenv script found at %s", uberenv)
	} else {
		p.ui.Errorf("  uberenv script not found at %s", uberenv)
		problems = append(problems, fmt.Sprintf("uberenv script not found: %s", uberenv))
	}

	if len(problems) > 0 {
		return fmt.Errorf("preflight failed: %s", strings.Join(problems, "; "))
	}

	p.ui.Success("Preflight checks passed")
	return nil
}
