// Package main is the entry point for the skiff shell front-end.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/skiffsh/skiff/internal/app"
	"github.com/skiffsh/skiff/internal/config"
	"github.com/skiffsh/skiff/internal/log"
	"github.com/skiffsh/skiff/internal/theme"
	urfavecli "github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cliApp := &urfavecli.App{
		Name:                 "skiff",
		Usage:                "An interactive shell front-end with directory bookmarks",
		Version:              versionString(),
		EnableBashCompletion: true,

		Flags: globalFlags(),

		Before: func(c *urfavecli.Context) error {
			if c.Bool("list-themes") {
				for _, name := range theme.AvailableThemes() {
					fmt.Println(name)
				}
				os.Exit(0)
			}
			return nil
		},

		Action: runTUI,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// runTUI is the default action that launches the session when no
// subcommand is given.
func runTUI(c *urfavecli.Context) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("skiff is interactive and needs a terminal")
	}

	if debugLog := c.String("debug-log"); debugLog != "" {
		if err := log.SetFile(debugLog); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", debugLog, err)
		}
	}

	cfg, err := config.LoadConfig(c.String("config-file"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}

	// The flag wins over the config file for the debug log.
	if c.String("debug-log") == "" {
		if err := log.SetFile(cfg.DebugLog); err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", cfg.DebugLog, err)
		}
	}

	if themeName := c.String("theme"); themeName != "" {
		normalized := theme.NormalizeName(themeName)
		if normalized == "" {
			_ = log.Close()
			return fmt.Errorf("unknown theme %q", themeName)
		}
		cfg.Theme = normalized
	}

	model, err := app.New(cfg, c.String("workdir"))
	if err != nil {
		_ = log.Close()
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	model.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		_ = log.Close()
		return err
	}

	if err := log.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing debug log: %v\n", err)
	}
	return nil
}

// versionString fills in VCS details from the build info when the
// linker did not set them.
func versionString() string {
	c := commit
	if c == "none" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					c = setting.Value
				}
			}
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, c, date)
}
