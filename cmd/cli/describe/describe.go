package describe

import (
	"fmt"

	"github.com/crucial707/cronlens/cmd/cli/root"
	"github.com/crucial707/cronlens/internal/recurrence"
	"github.com/spf13/cobra"
)

func init() {
	root.GetRoot().AddCommand(describeCmd())
}

// ConfigFromFlags builds a recurrence config from the shared --pattern,
// --time, --meridiem, --days and --day flags.
func ConfigFromFlags(cmd *cobra.Command) (recurrence.Config, error) {
	cfg := recurrence.DefaultConfig()
	flags := cmd.Flags()

	if s, _ := flags.GetString("pattern"); s != "" {
		p, err := recurrence.ParsePattern(s)
		if err != nil {
			return cfg, err
		}
		cfg.Pattern = p
	}
	if s, _ := flags.GetString("time"); s != "" {
		cfg.Time = s
	}
	if s, _ := flags.GetString("meridiem"); s != "" {
		m, err := recurrence.ParseMeridiem(s)
		if err != nil {
			return cfg, err
		}
		cfg.Meridiem = m
	}
	if s, _ := flags.GetString("days"); s != "" {
		w, err := recurrence.ParseWeekdays(s)
		if err != nil {
			return cfg, err
		}
		cfg.Days = w
	}
	if s, _ := flags.GetString("day"); s != "" {
		cfg.DayOfMonth = recurrence.DayOfMonth(s)
	}
	return cfg, nil
}

// AddConfigFlags registers the flags read by ConfigFromFlags.
func AddConfigFlags(cmd *cobra.Command) {
	def := recurrence.DefaultConfig()
	cmd.Flags().StringP("pattern", "p", string(def.Pattern), "daily, weekly or monthly")
	cmd.Flags().StringP("time", "t", def.Time, `time of day as "HH:MM"`)
	cmd.Flags().StringP("meridiem", "m", string(def.Meridiem), "am or pm")
	cmd.Flags().StringP("days", "d", "", `weekly days, comma-separated (e.g. "monday,fri")`)
	cmd.Flags().String("day", string(def.DayOfMonth), "monthly day of month")
}

func describeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe a daily, weekly or monthly recurrence in English",
		Long: `Describe a recurrence.

Examples:
  cronlens describe --pattern daily --time 09:30 --meridiem am
  cronlens describe -p weekly -d monday,friday -t 09:00 -m am
  cronlens describe -p monthly --day 2 -t 03:00 -m pm`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ConfigFromFlags(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), recurrence.Describe(cfg))
			return nil
		},
	}
	AddConfigFlags(cmd)
	return cmd
}
