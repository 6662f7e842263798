package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toolkitbuild/tpl-setup/internal/cli"
	"github.com/toolkitbuild/tpl-setup/internal/config"
	"github.com/toolkitbuild/tpl-setup/internal/steps"
)

var (
	installPrefix  string
	installSpec    string
	installExtra   string
	installLog     bool
	installPython  string
	installUberenv string
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install TPLs via uberenv",
	Long: `Invoke uberenv to install third-party libraries for a dependency spec
into the given prefix. The exit code of uberenv decides success.`,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installPrefix, "prefix", "", "TPL install prefix (falls back to config)")
	installCmd.Flags().StringVar(&installSpec, "spec", "", "Dependency spec, e.g. @develop (falls back to config)")
	installCmd.Flags().StringVar(&installExtra, "uberenv-args", "", "Extra arguments passed through to uberenv (shell-quoted)")
	installCmd.Flags().BoolVar(&installLog, "log", false, "Write combined output to a timestamped log under the prefix")
	installCmd.Flags().StringVar(&installPython, "python", "", "Python interpreter used to run uberenv")
	installCmd.Flags().StringVar(&installUberenv, "uberenv", "", "Path to uberenv.py")

	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewSetupContext()
	if err != nil {
		return fmt.Errorf("failed to initialize setup context: %w", err)
	}

	if installPython != "" {
		if err := ctx.Config.Set(config.KeyPythonBin, installPython); err != nil {
			return fmt.Errorf("failed to set %s: %w", config.KeyPythonBin, err)
		}
	}
	if installUberenv != "" {
		if err := ctx.Config.Set(config.KeyUberenvPath, installUberenv); err != nil {
			return fmt.Errorf("failed to set %s: %w", config.KeyUberenvPath, err)
		}
	}

	prefix := installPrefix
	if prefix == "" {
		prefix = ctx.Config.GetOrDefault(config.KeyTPLPrefix, "")
	}
	if prefix == "" {
		return fmt.Errorf("no prefix given (use --prefix or configure %s)", config.KeyTPLPrefix)
	}

	spec := installSpec
	if spec == "" {
		spec = ctx.Config.GetOrDefault(config.KeyTPLSpec, "@develop")
	}

	installer := steps.NewInstaller(ctx.Exec, ctx.FS, ctx.Config, ctx.UI)
	code, err := installer.Install(steps.InstallOptions{
		Prefix:    prefix,
		Spec:      spec,
		ExtraArgs: installExtra,
		WriteLog:  installLog,
	})
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("uberenv exited with code %d", code)
	}

	ctx.UI.Successf("TPL install for spec %s complete", spec)
	return nil
}
