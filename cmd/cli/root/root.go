package root

import (
	"github.com/spf13/cobra"
)

// RootCmd is the top-level cronlens command. Subcommand packages register themselves in init.
var RootCmd = &cobra.Command{
	Use:           "cronlens",
	Short:         "Inspect cron expressions and describe recurrences",
	Long:          "Normalize six-field cron expressions, describe daily/weekly/monthly recurrences, and manage stored recurrence presets.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// GetRoot returns the root command.
func GetRoot() *cobra.Command {
	return RootCmd
}
