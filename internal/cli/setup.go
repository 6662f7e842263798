// Package cli provides the command-line interface layer for the TPL setup
// tool, including step orchestration, menu-driven interaction, and command
// dispatch. It bridges user commands to the underlying setup step functions.
package cli

import (
	"fmt"

	"github.com/toolkitbuild/tpl-setup/internal/config"
	"github.com/toolkitbuild/tpl-setup/internal/steps"
	"github.com/toolkitbuild/tpl-setup/internal/system"
	"github.com/toolkitbuild/tpl-setup/internal/ui"
)

// SetupContext holds all dependencies needed for setup operations
type SetupContext struct {
	Config *config.Config
	UI     *ui.UI
	Exec   system.Executor
	FS     *system.FileSystem
}

// NewSetupContext creates a new SetupContext with all dependencies initialized
func NewSetupContext() (*SetupContext, error) {
	return NewSetupContextWithOptions(false)
}

// NewSetupContextWithOptions creates a new SetupContext with custom options
func NewSetupContextWithOptions(nonInteractive bool) (*SetupContext, error) {
	cfg := config.New("")
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	uiInstance := ui.New()
	uiInstance.SetNonInteractive(nonInteractive)

	return &SetupContext{
		Config: cfg,
		UI:     uiInstance,
		Exec:   system.NewExecutor(),
		FS:     system.NewFileSystem(),
	}, nil
}

// StepInfo contains metadata about a setup step
type StepInfo struct {
	Name        string
	ShortName   string
	Description string
	MarkerName  string
}

// GetAllSteps returns information about all steps in order
func GetAllSteps() []StepInfo {
	return []StepInfo{
		{Name: "Pre-flight Check", ShortName: "preflight", Description: "Verify python, chgrp, chmod, and uberenv are available", MarkerName: "preflight-complete"},
		{Name: "Prefix Setup", ShortName: "prefix", Description: "Create the TPL install prefix directory", MarkerName: "prefix-complete"},
		{Name: "TPL Install", ShortName: "install", Description: "Run uberenv to install TPLs for the configured spec", MarkerName: "install-complete"},
		{Name: "Host Config Check", ShortName: "check", Description: "Report generated host config files", MarkerName: "check-complete"},
		{Name: "Group Permissions", ShortName: "perms", Description: "Set group ownership and access permissions", MarkerName: "perms-complete"},
	}
}

// IsStepComplete checks if a step is complete
func IsStepComplete(cfg *config.Config, markerName string) bool {
	return cfg.IsComplete(markerName)
}

// markerFor returns the marker name for a step short name
func markerFor(shortName string) string {
	for _, step := range GetAllSteps() {
		if step.ShortName == shortName {
			return step.MarkerName
		}
	}
	return ""
}

// confirmRerun asks whether an already-completed step should run again and
// clears its marker if so. In non-interactive mode completed steps are
// skipped without prompting.
func confirmRerun(ctx *SetupContext, markerName string) (bool, error) {
	if !IsStepComplete(ctx.Config, markerName) {
		return true, nil
	}

	ctx.UI.Info("Step already completed")
	if ctx.UI.IsNonInteractive() {
		return false, nil
	}

	rerun, err := ctx.UI.PromptYesNo("Run again?", false)
	if err != nil || !rerun {
		return false, nil
	}

	if err := ctx.Config.ClearMarker(markerName); err != nil {
		ctx.UI.Warningf("Failed to remove marker: %v", err)
	}
	return true, nil
}

// RunStep executes a specific step by short name
func RunStep(ctx *SetupContext, shortName string) error {
	marker := markerFor(shortName)
	if marker == "" {
		return fmt.Errorf("unknown step: %s", shortName)
	}

	ctx.UI.Header(fmt.Sprintf("Running: %s", shortName))

	run, err := confirmRerun(ctx, marker)
	if err != nil {
		return err
	}
	if !run {
		return nil
	}

	switch shortName {
	case "preflight":
		err = steps.NewPreflightChecker(ctx.FS, ctx.Config, ctx.UI).Run()
	case "prefix":
		err = steps.NewPrefixSetup(ctx.FS, ctx.Config, ctx.UI).Run()
	case "install":
		err = steps.NewInstaller(ctx.Exec, ctx.FS, ctx.Config, ctx.UI).Run()
	case "check":
		err = runCheck(ctx)
	case "perms":
		err = runPerms(ctx)
	}

	if err != nil {
		return err
	}

	if err := ctx.Config.MarkComplete(marker); err != nil {
		return fmt.Errorf("failed to create completion marker: %w", err)
	}

	ctx.UI.Successf("Step '%s' completed successfully!", shortName)
	return nil
}

func runCheck(ctx *SetupContext) error {
	prefix, err := ctx.Config.Get(config.KeyTPLPrefix)
	if err != nil {
		return fmt.Errorf("install prefix not configured (run the prefix step first): %w", err)
	}

	_, err = steps.NewHostConfigChecker(ctx.FS, ctx.UI).Check(prefix)
	return err
}

func runPerms(ctx *SetupContext) error {
	prefix, err := ctx.Config.Get(config.KeyTPLPrefix)
	if err != nil {
		return fmt.Errorf("install prefix not configured (run the prefix step first): %w", err)
	}
	group := ctx.Config.GetOrDefault(config.KeyTPLGroup, steps.DefaultGroup)

	return steps.NewPermsSetter(ctx.Exec, ctx.UI).Run(prefix, group)
}

// RunAll runs all setup steps in order
func RunAll(ctx *SetupContext) error {
	for _, step := range GetAllSteps() {
		if err := RunStep(ctx, step.ShortName); err != nil {
			return fmt.Errorf("step %s failed: %w", step.ShortName, err)
		}
	}

	ctx.UI.Success("All steps completed successfully!")
	return nil
}
