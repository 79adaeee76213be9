package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
)

const ascii = `
███████╗████████╗██████╗ ██╗██████╗ ███████╗
██╔════╝╚══██╔══╝██╔══██╗██║██╔══██╗██╔════╝
███████╗   ██║   ██████╔╝██║██║  ██║█████╗
╚════██║   ██║   ██╔══██╗██║██║  ██║██╔══╝
███████║   ██║   ██║  ██║██║██████╔╝███████╗
╚══════╝   ╚═╝   ╚═╝  ╚═╝╚═╝╚═════╝ ╚══════╝`

// validatePositiveInt rejects prompt input that is not a positive
// integer. Empty input falls back to the default and is accepted.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return errExpectedInteger
	}

	return nil
}

// promptFirstRun asks for the key session settings the first time Stride
// runs without a configuration file. Accepted values are written into v
// as minutes; empty answers keep the defaults.
func promptFirstRun(v *viper.Viper) error {
	if os.Getenv("STRIDE_ENV") == "testing" {
		return nil
	}

	fmt.Printf("%s\n\n", ascii)

	pterm.Info.Printfln(
		"Your preferences will be saved to: %s\n",
		configFilePath,
	)

	var brisk, easy, intervals string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Brisk walk length in minutes").
				Placeholder("3").
				Validate(validatePositiveInt).
				Value(&brisk),
			huh.NewInput().
				Title("Easy walk length in minutes").
				Placeholder("3").
				Validate(validatePositiveInt).
				Value(&easy),
			huh.NewInput().
				Title("Number of brisk/easy intervals").
				Placeholder("5").
				Validate(validatePositiveInt).
				Value(&intervals),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if brisk != "" {
		v.Set(keyBriskDuration, brisk+"m")
	}

	if easy != "" {
		v.Set(keyEasyDuration, easy+"m")
	}

	if intervals != "" {
		n, _ := strconv.Atoi(intervals)
		v.Set(keyIntervals, n)
	}

	fmt.Println()
	pterm.Success.Printfln("Your settings have been saved. Enjoy your walks!")

	return nil
}
