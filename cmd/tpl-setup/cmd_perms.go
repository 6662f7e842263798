package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toolkitbuild/tpl-setup/internal/cli"
	"github.com/toolkitbuild/tpl-setup/internal/common"
	"github.com/toolkitbuild/tpl-setup/internal/config"
	"github.com/toolkitbuild/tpl-setup/internal/steps"
)

var (
	permsDir   string
	permsGroup string
)

var permsCmd = &cobra.Command{
	Use:   "perms",
	Short: "Set group ownership and permissions",
	Long: `Recursively change the group of a directory tree, grant rwX to group
members, and rX to all users. Each command is best-effort: failures are
reported but never abort the sequence.`,
	RunE: runPermsCmd,
}

func init() {
	permsCmd.Flags().StringVar(&permsDir, "dir", "", "Directory tree to fix up (falls back to the configured prefix)")
	permsCmd.Flags().StringVar(&permsGroup, "group", "", "Unix group to own the tree (falls back to config)")

	rootCmd.AddCommand(permsCmd)
}

func runPermsCmd(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewSetupContext()
	if err != nil {
		return fmt.Errorf("failed to initialize setup context: %w", err)
	}

	dir := permsDir
	if dir == "" {
		dir = ctx.Config.GetOrDefault(config.KeyTPLPrefix, "")
	}
	if dir == "" {
		return fmt.Errorf("no directory given (use --dir or configure %s)", config.KeyTPLPrefix)
	}
	if err := common.ValidatePath(dir); err != nil {
		return err
	}

	group := permsGroup
	if group == "" {
		group = ctx.Config.GetOrDefault(config.KeyTPLGroup, steps.DefaultGroup)
	}
	if err := common.ValidateGroupName(group); err != nil {
		return err
	}

	return steps.NewPermsSetter(ctx.Exec, ctx.UI).Run(dir, group)
}
