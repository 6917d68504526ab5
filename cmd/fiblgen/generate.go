package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pochivm/internal/buildpipeline"
	"pochivm/internal/diag"
	"pochivm/internal/observ"
)

func generateExecution(cmd *cobra.Command, args []string) error {
	colorValue, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return err
	}
	timings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return err
	}
	enumsFile, err := cmd.Flags().GetString("enums")
	if err != nil {
		return err
	}

	reporter := diag.NewReporter(os.Stderr)
	reporter.SetQuiet(quiet)

	if err := setupColor(colorValue); err != nil {
		reporter.ReportError(err)
		return err
	}
	if len(args) != 2 {
		err := diag.Errorf(diag.BadArgs, "expected exactly 2 arguments (<ir-file> <obj-file>), got %d", len(args))
		reporter.ReportError(err)
		return err
	}

	var timer *observ.Timer
	if timings {
		timer = observ.NewTimer()
	}

	opts := buildpipeline.Options{
		IRPath:    args[0],
		ObjPath:   args[1],
		Out:       cmd.OutOrStdout(),
		Reporter:  reporter,
		Timer:     timer,
		EnumsFile: enumsFile,
	}
	if err := buildpipeline.Run(opts); err != nil {
		reporter.ReportError(err)
		return err
	}

	if timer != nil {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	return nil
}

// setupColor применяет режим --color к выводу диагностик.
func setupColor(mode string) error {
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stderr)
	default:
		return diag.Errorf(diag.BadArgs, "unsupported --color value %q (auto|on|off)", mode)
	}
	return nil
}
