package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toolkitbuild/tpl-setup/internal/cli"
	"github.com/toolkitbuild/tpl-setup/internal/config"
)

var (
	// Flags for non-interactive mode
	nonInteractive bool
	runPrefix      string
	runSpec        string
	runGroup       string
)

var runCmd = &cobra.Command{
	Use:   "run [step|all]",
	Short: "Run setup steps",
	Long: `Run one or more setup steps.

Steps:
  all         - Run all setup steps
  preflight   - Pre-flight system checks
  prefix      - Install prefix creation
  install     - TPL installation via uberenv
  check       - Host config file verification
  perms       - Group ownership and permission setup`,
	Args: cobra.ExactArgs(1),
	RunE: runSetup,
}

func init() {
	runCmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Run in non-interactive mode")
	runCmd.Flags().StringVar(&runPrefix, "prefix", "", "TPL install prefix")
	runCmd.Flags().StringVar(&runSpec, "spec", "", "Dependency spec passed to uberenv")
	runCmd.Flags().StringVar(&runGroup, "group", "", "Unix group for the install tree")

	rootCmd.AddCommand(runCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewSetupContextWithOptions(nonInteractive)
	if err != nil {
		return fmt.Errorf("failed to initialize setup context: %w", err)
	}

	if err := applyRunFlags(ctx); err != nil {
		return err
	}
	if nonInteractive {
		ctx.UI.Info("Running in non-interactive mode")
	}

	step := args[0]

	switch step {
	case "all":
		return cli.RunAll(ctx)
	case "preflight", "prefix", "install", "check", "perms":
		return cli.RunStep(ctx, step)
	default:
		return fmt.Errorf("unknown step: %s", step)
	}
}

func applyRunFlags(ctx *cli.SetupContext) error {
	if runPrefix != "" {
		if err := ctx.Config.Set(config.KeyTPLPrefix, runPrefix); err != nil {
			return fmt.Errorf("failed to set %s: %w", config.KeyTPLPrefix, err)
		}
	}

	if runSpec != "" {
		if err := ctx.Config.Set(config.KeyTPLSpec, runSpec); err != nil {
			return fmt.Errorf("failed to set %s: %w", config.KeyTPLSpec, err)
		}
	}

	if runGroup != "" {
		if err := ctx.Config.Set(config.KeyTPLGroup, runGroup); err != nil {
			return fmt.Errorf("failed to set %s: %w", config.KeyTPLGroup, err)
		}
	}

	return nil
}
