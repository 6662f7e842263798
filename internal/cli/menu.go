package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// ErrExit is returned when the user chooses to exit the menu
var ErrExit = errors.New("exit")

// Menu provides an interactive menu interface
type Menu struct {
	ctx *SetupContext
}

// NewMenu creates a new Menu instance
func NewMenu(ctx *SetupContext) *Menu {
	return &Menu{ctx: ctx}
}

// clearScreen clears the terminal screen using ANSI escape codes
func clearScreen() {
	fmt.Print("\033[2J\033[H")
}

// Show displays the main menu and handles user input
func (m *Menu) Show() error {
	for {
		clearScreen()
		m.displayMenu()

		choice, err := m.ctx.UI.PromptInput("Enter your choice", "")
		if err != nil {
			return err
		}

		choice = strings.ToUpper(strings.TrimSpace(choice))

		if err := m.handleChoice(choice); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			m.ctx.UI.Error(fmt.Sprintf("%v", err))
			m.ctx.UI.Print("")
			m.ctx.UI.Info("Press Enter to continue...")
			fmt.Scanln()
		}
	}
}

// displayMenu displays the main menu
func (m *Menu) displayMenu() {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)

	border := strings.Repeat("=", 70)
	cyan.Println(border)
	cyan.Println("  TPL Setup")
	cyan.Println(border)
	fmt.Println()

	m.ctx.UI.Info("This tool installs third-party libraries with uberenv, checks the")
	m.ctx.UI.Info("generated host config files, and sets shared group permissions.")
	fmt.Println()

	cyan.Println(strings.Repeat("-", 70))
	m.ctx.UI.Info("Setup Options:")
	cyan.Println(strings.Repeat("-", 70))
	fmt.Println()

	bold.Print("  [A] ")
	fmt.Println("Run All Steps (Complete Setup)")
	fmt.Println()

	cyan.Println(strings.Repeat("-", 70))
	m.ctx.UI.Info("Individual Steps:")
	cyan.Println(strings.Repeat("-", 70))
	fmt.Println()

	for i, step := range GetAllSteps() {
		status := "  "
		if IsStepComplete(m.ctx.Config, step.MarkerName) {
			status = green.Sprint("✓")
		}

		bold.Printf("  [%d] ", i)
		fmt.Printf("%s %s\n", status, step.Name)
		fmt.Printf("      → %s\n", step.Description)
		fmt.Println()
	}

	cyan.Println(strings.Repeat("-", 70))
	m.ctx.UI.Info("Other Options:")
	cyan.Println(strings.Repeat("-", 70))
	fmt.Println()

	bold.Print("  [S] ")
	fmt.Println("Show Setup Status")

	bold.Print("  [X] ")
	fmt.Println("Exit")
	fmt.Println()
}

// handleChoice dispatches a menu selection
func (m *Menu) handleChoice(choice string) error {
	switch choice {
	case "A":
		return RunAll(m.ctx)
	case "S":
		return m.showStatus()
	case "X", "":
		return ErrExit
	}

	idx, err := strconv.Atoi(choice)
	if err != nil {
		return fmt.Errorf("unknown choice: %s", choice)
	}

	allSteps := GetAllSteps()
	if idx < 0 || idx >= len(allSteps) {
		return fmt.Errorf("step number out of range: %d", idx)
	}

	if err := RunStep(m.ctx, allSteps[idx].ShortName); err != nil {
		return err
	}

	m.ctx.UI.Print("")
	m.ctx.UI.Info("Press Enter to continue...")
	fmt.Scanln()
	return nil
}

// showStatus prints completion status for each step
func (m *Menu) showStatus() error {
	clearScreen()

	completed := 0
	allSteps := GetAllSteps()
	for i, step := range allSteps {
		if IsStepComplete(m.ctx.Config, step.MarkerName) {
			m.ctx.UI.Successf("[%d] ✓ %s", i, step.Name)
			completed++
		} else {
			m.ctx.UI.Infof("[%d] - %s (not completed)", i, step.Name)
		}
	}

	m.ctx.UI.Print("")
	m.ctx.UI.Infof("Progress: %d/%d steps completed", completed, len(allSteps))
	m.ctx.UI.Print("")
	m.ctx.UI.Info("Press Enter to continue...")
	fmt.Scanln()
	return nil
}
