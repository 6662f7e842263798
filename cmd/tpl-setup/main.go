package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/toolkitbuild/tpl-setup/internal/cli"
	"github.com/toolkitbuild/tpl-setup/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "tpl-setup",
	Short: "Third-party library install tool",
	Long: `A tool for installing third-party library dependencies (TPLs) on
shared cluster systems via the uberenv orchestrator.

This tool provides an interactive menu and command-line interface for:
- Pre-flight system checks
- Install prefix creation
- TPL installation for a dependency spec
- Host config file verification
- Group ownership and permission setup

Run without arguments to launch the interactive menu.`,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runInteractiveMenu,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Launch interactive menu",
	Long:  `Launch the interactive menu interface for setup.`,
	RunE:  runInteractiveMenu,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(menuCmd)
}

func runInteractiveMenu(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewSetupContext()
	if err != nil {
		return fmt.Errorf("failed to initialize setup context: %w", err)
	}

	menu := cli.NewMenu(ctx)
	return menu.Show()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
