// Package app assembles the command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/stridewalk/stride/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the stride app instance.
func Get() *cli.App {
	strideApp := &cli.App{
		Name: "stride",
		Usage: `
		Stride is an interval walking timer for the command-line. It alternates
		timed brisk and easy walking phases, with an optional warm-up and
		cool-down, and records a summary of every completed session.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:  "history",
				Usage: "Print a table of completed sessions",
				Flags: []cli.Flag{
					historyLimitFlag,
					jsonFlag,
				},
				Action: historyAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the current session",
				Action: statusAction,
			},
		},
		Flags: []cli.Flag{
			briskFlag,
			easyFlag,
			intervalsFlag,
			warmupFlag,
			cooldownFlag,
			disableNotificationFlag,
			soundFlag,
			phaseCmdFlag,
			mirrorFlag,
			debugFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return strideApp
}
