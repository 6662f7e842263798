// Package steps implements the TPL setup steps: preflight checks, prefix
// creation, uberenv installation, host-config verification, and group
// permission setup.
package steps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kballard/go-shellquote"
	"github.com/toolkitbuild/tpl-setup/internal/common"
	"github.com/toolkitbuild/tpl-setup/internal/config"
	"github.com/toolkitbuild/tpl-setup/internal/system"
	"github.com/toolkitbuild/tpl-setup/internal/ui"
)

// Installer invokes uberenv to install TPLs for a given spec to a prefix
type Installer struct {
	exec   system.Executor
	fs     *system.FileSystem
	config *config.Config
	ui     *ui.UI
}

// NewInstaller creates a new Installer instance
func NewInstaller(exec system.Executor, fs *system.FileSystem, cfg *config.Config, ui *ui.UI) *Installer {
	return &Installer{
		exec:   exec,
		fs:     fs,
		config: cfg,
		ui:     ui,
	}
}

// InstallOptions describes one uberenv invocation
type InstallOptions struct {
	Prefix    string
	Spec      string
	ExtraArgs string // additional uberenv arguments, shell-quoted
	WriteLog  bool   // capture output to <prefix>/tpl-install-<timestamp>.log
}

// BuildArgv constructs the uberenv command line as an explicit argument list
func (i *Installer) BuildArgv(opts InstallOptions) ([]string, error) {
	python := i.config.GetOrDefault(config.KeyPythonBin, "python")
	uberenv := i.config.GetOrDefault(config.KeyUberenvPath, "../uberenv.py")

	argv := []string{python, uberenv, "--prefix", opts.Prefix, "--spec", opts.Spec}

	if opts.ExtraArgs != "" {
		extra, err := shellquote.Split(opts.ExtraArgs)
		if err != nil {
			return nil, fmt.Errorf("failed to parse extra uberenv arguments: %w", err)
		}
		argv = append(argv, extra...)
	}

	return argv, nil
}

// Install runs uberenv with echo enabled and returns the exit code. A
// nonzero code is reported, not returned as an error; the error covers
// input validation and spawn failures only.
func (i *Installer) Install(opts InstallOptions) (int, error) {
	if err := common.ValidatePath(opts.Prefix); err != nil {
		return 0, fmt.Errorf("invalid prefix: %w", err)
	}
	if err := common.ValidateSpec(opts.Spec); err != nil {
		return 0, fmt.Errorf("invalid spec: %w", err)
	}

	argv, err := i.BuildArgv(opts)
	if err != nil {
		return 0, err
	}

	i.ui.Infof("Installing TPLs for spec %s to %s", opts.Spec, opts.Prefix)

	if opts.WriteLog {
		return i.installWithLog(argv, opts.Prefix)
	}

	res, err := i.exec.Run(argv, system.RunOptions{Echo: true})
	if err != nil {
		return 0, fmt.Errorf("failed to run uberenv: %w", err)
	}
	return res.ExitCode, nil
}

// installWithLog captures combined output and writes it to a timestamped
// log file under the prefix, mirroring the LC install driver convention.
func (i *Installer) installWithLog(argv []string, prefix string) (int, error) {
	res, err := i.exec.Run(argv, system.RunOptions{Capture: true, Echo: true})
	if err != nil {
		return 0, fmt.Errorf("failed to run uberenv: %w", err)
	}

	logName := fmt.Sprintf("tpl-install-%s.log", common.TimestampNow(common.DefaultTimestampSep))
	logPath := filepath.Join(prefix, logName)
	if err := os.WriteFile(logPath, []byte(res.Output), 0644); err != nil {
		return res.ExitCode, fmt.Errorf("failed to write install log: %w", err)
	}

	i.ui.Infof("Install log written to %s (run %s)", logPath, res.RunID)
	return res.ExitCode, nil
}

// Run executes the install step using configured prefix and spec
func (i *Installer) Run() error {
	prefix, err := i.config.Get(config.KeyTPLPrefix)
	if err != nil {
		return fmt.Errorf("install prefix not configured (run the prefix step first): %w", err)
	}
	spec := i.config.GetOrDefault(config.KeyTPLSpec, "@develop")

	code, err := i.Install(InstallOptions{Prefix: prefix, Spec: spec})
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("uberenv exited with code %d", code)
	}

	i.ui.Successf("TPL install for spec %s complete", spec)
	return nil
}
