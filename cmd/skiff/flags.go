// Package main provides CLI flag definitions for skiff.
package main

import urfavecli "github.com/urfave/cli/v2"

// globalFlags returns all global flags for the application.
// Note: --version is provided automatically by urfave/cli via App.Version
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:    "workdir",
			Aliases: []string{"w"},
			Usage:   "Directory to start the session in",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
		&urfavecli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the UI theme",
		},
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.BoolFlag{
			Name:  "list-themes",
			Usage: "List available themes and exit",
		},
	}
}
