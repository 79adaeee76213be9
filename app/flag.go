package app

import "github.com/urfave/cli/v2"

var (
	briskFlag = &cli.StringFlag{
		Name:    "brisk",
		Aliases: []string{"b"},
		Usage:   "Brisk walking duration in minutes (default: 3)",
	}

	easyFlag = &cli.StringFlag{
		Name:    "easy",
		Aliases: []string{"e"},
		Usage:   "Easy walking duration in minutes (default: 3)",
	}

	intervalsFlag = &cli.UintFlag{
		Name:    "intervals",
		Aliases: []string{"n"},
		Usage:   "Number of brisk/easy interval pairs (default: 5)",
	}

	warmupFlag = &cli.StringFlag{
		Name:  "warmup",
		Usage: "Warm-up duration in minutes. Set to 'off' to skip the warm-up",
	}

	cooldownFlag = &cli.StringFlag{
		Name:  "cooldown",
		Usage: "Cool-down duration in minutes. Set to 'off' to skip the cool-down",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears on each phase change",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Play the specified audio file on each phase change (ogg, mp3, flac, or wav). Disable with 'off'",
	}

	phaseCmdFlag = &cli.StringFlag{
		Name:    "phase-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command on each phase change",
	}

	mirrorFlag = &cli.StringFlag{
		Name:    "mirror",
		Aliases: []string{"m"},
		Usage:   "Listen address for companion devices (e.g. ':9090'). Disable with 'off'",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Enable debug logging",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	historyLimitFlag = &cli.UintFlag{
		Name:    "limit",
		Aliases: []string{"l"},
		Usage:   "Maximum number of sessions to display",
		Value:   30,
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output in JSON format",
	}
)
