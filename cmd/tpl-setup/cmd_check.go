package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toolkitbuild/tpl-setup/internal/cli"
	"github.com/toolkitbuild/tpl-setup/internal/config"
	"github.com/toolkitbuild/tpl-setup/internal/steps"
)

var checkPrefix string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report generated host config files",
	Long: `Look for host config files (*.cmake) directly inside the install
prefix and print each file's path and size. Diagnostic only.`,
	RunE: runCheckCmd,
}

func init() {
	checkCmd.Flags().StringVar(&checkPrefix, "prefix", "", "TPL install prefix (falls back to config)")

	rootCmd.AddCommand(checkCmd)
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewSetupContext()
	if err != nil {
		return fmt.Errorf("failed to initialize setup context: %w", err)
	}

	prefix := checkPrefix
	if prefix == "" {
		prefix = ctx.Config.GetOrDefault(config.KeyTPLPrefix, "")
	}
	if prefix == "" {
		return fmt.Errorf("no prefix given (use --prefix or configure %s)", config.KeyTPLPrefix)
	}

	_, err = steps.NewHostConfigChecker(ctx.FS, ctx.UI).Check(prefix)
	return err
}
