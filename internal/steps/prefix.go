package steps

import (
	"fmt"

	"github.com/toolkitbuild/tpl-setup/internal/common"
	"github.com/toolkitbuild/tpl-setup/internal/config"
	"github.com/toolkitbuild/tpl-setup/internal/system"
	"github.com/toolkitbuild/tpl-setup/internal/ui"
)

// PrefixSetup ensures the TPL install prefix directory exists
type PrefixSetup struct {
	fs     *system.FileSystem
	config *config.Config
	ui     *ui.UI
}

// NewPrefixSetup creates a new PrefixSetup instance
func NewPrefixSetup(fs *system.FileSystem, cfg *config.Config, ui *ui.UI) *PrefixSetup {
	return &PrefixSetup{
		fs:     fs,
		config: cfg,
		ui:     ui,
	}
}

// PromptForPrefix prompts for the install prefix, preferring a previously
// configured value
func (p *PrefixSetup) PromptForPrefix() (string, error) {
	p.ui.Info("The prefix will contain installed TPLs and generated host config files")
	p.ui.Print("")

	existing := p.config.GetOrDefault(config.KeyTPLPrefix, "")
	if existing != "" {
		p.ui.Infof("Previously configured: %s", existing)
		useExisting, err := p.ui.PromptYesNo("Use this prefix?", true)
		if err != nil {
			return "", fmt.Errorf("failed to prompt: %w", err)
		}
		if useExisting {
			return existing, nil
		}
	}

	prefix, err := p.ui.PromptInput("Enter install prefix path", "/usr/local/tpls")
	if err != nil {
		return "", fmt.Errorf("failed to prompt for prefix: %w", err)
	}

	if err := common.ValidatePath(prefix); err != nil {
		return "", fmt.Errorf("invalid prefix: %w", err)
	}

	return prefix, nil
}

// Ensure creates the prefix directory if needed and saves it to config
func (p *PrefixSetup) Ensure(prefix string) error {
	if err := common.ValidatePath(prefix); err != nil {
		return fmt.Errorf("invalid prefix: %w", err)
	}

	p.ui.Infof("Ensuring install prefix %s exists", prefix)
	if err := p.fs.EnsureDirectory(prefix, 0755); err != nil {
		return fmt.Errorf("failed to create prefix: %w", err)
	}

	if err := p.config.Set(config.KeyTPLPrefix, prefix); err != nil {
		return fmt.Errorf("failed to save prefix: %w", err)
	}

	p.ui.Successf("Install prefix ready: %s", prefix)
	return nil
}

// Run executes the prefix setup step
func (p *PrefixSetup) Run() error {
	var prefix string
	var err error

	if p.ui.IsNonInteractive() {
		prefix = p.config.GetOrDefault(config.KeyTPLPrefix, "")
		if prefix == "" {
			return fmt.Errorf("prefix not configured (set TPL_PREFIX or pass --prefix)")
		}
	} else {
		prefix, err = p.PromptForPrefix()
		if err != nil {
			return err
		}
	}

	return p.Ensure(prefix)
}
