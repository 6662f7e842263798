package steps

import (
	"fmt"

	"github.com/toolkitbuild/tpl-setup/internal/system"
	"github.com/toolkitbuild/tpl-setup/internal/ui"
)

// HostConfigPattern matches host config files generated by uberenv directly
// under the install prefix.
const HostConfigPattern = "*.cmake"

// HostConfig describes one generated host config file
type HostConfig struct {
	Path string
	Size int64
}

// HostConfigChecker reports host config files generated at an install prefix
type HostConfigChecker struct {
	fs *system.FileSystem
	ui *ui.UI
}

// NewHostConfigChecker creates a new HostConfigChecker instance
func NewHostConfigChecker(fs *system.FileSystem, ui *ui.UI) *HostConfigChecker {
	return &HostConfigChecker{
		fs: fs,
		ui: ui,
	}
}

// Check globs for host config files directly inside prefix (non-recursive),
// reports the count, and prints each file's path and size in bytes.
func (c *HostConfigChecker) Check(prefix string) ([]HostConfig, error) {
	matches, err := c.fs.GlobFiles(prefix, HostConfigPattern)
	if err != nil {
		return nil, fmt.Errorf("failed to look for host configs: %w", err)
	}

	c.ui.Infof("found %d host config files @ %s", len(matches), prefix)

	configs := make([]HostConfig, 0, len(matches))
	for _, path := range matches {
		size, err := c.fs.GetFileSize(path)
		if err != nil {
			return nil, fmt.Errorf("failed to size host config %s: %w", path, err)
		}
		c.ui.Infof(" -> %s is %d bytes", path, size)
		configs = append(configs, HostConfig{Path: path, Size: size})
	}

	return configs, nil
}
