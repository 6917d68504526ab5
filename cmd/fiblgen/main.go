// Package main implements the fiblgen CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pochivm/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "fiblgen [flags] <ir-file> <obj-file>",
	Short: "Fast-interp boilerplate library generator",
	Long: `fiblgen links the pre-compiled boilerplate IR module into an in-process
session, runs the enumeration entry point, resolves every materialized
instance back to its object-file symbol and prints the manifest on stdout.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          generateExecution,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// main initializes the CLI and executes the root command. If execution
// returns an error, the process exits with status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.Flags().String("enums", "", "TOML file with extra enum domain declarations")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
