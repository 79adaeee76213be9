// Package ui provides terminal color and table helpers.
package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/stridewalk/stride/phase"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// PhaseLabel colors a phase title with the color conventionally used for
// that phase throughout the program.
func PhaseLabel(k phase.Kind) string {
	label := "[" + k.Title() + "]"

	switch k {
	case phase.Brisk:
		return Green(label)
	case phase.Easy:
		return Cyan(label)
	case phase.Warmup, phase.Cooldown:
		return Magenta(label)
	case phase.Paused:
		return Yellow(label)
	}

	return Highlight(label)
}

// PrintTable renders rows with the first row as the header.
func PrintTable(data [][]string, writer io.Writer) {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		pterm.Error.Printfln("Failed to output table: %s", err.Error())
		return
	}

	fmt.Fprintln(writer, str)
}
