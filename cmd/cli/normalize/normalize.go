package normalize

import (
	"fmt"
	"strings"

	"github.com/crucial707/cronlens/cmd/cli/output"
	"github.com/crucial707/cronlens/cmd/cli/root"
	"github.com/crucial707/cronlens/internal/cronexpr"
	"github.com/spf13/cobra"
)

func init() {
	root.GetRoot().AddCommand(normalizeCmd())
}

func normalizeCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "normalize <expression>",
		Short: "Split a six-field cron expression and resolve month/day names",
		Long: `Normalize a cron expression with fields seconds, minutes, hours,
day-of-month, month and day-of-week. Month (jan..dec) and weekday (sun..sat)
names are replaced by their numbers. Expressions without exactly six fields
show every field as "*".

Arguments are joined with spaces, so quoting is optional:
  cronlens normalize 0 30 9 '*' jan mon
  cronlens normalize "0 30 9 * jan mon"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr := strings.Join(args, " ")
			res := cronexpr.Normalize(expr)
			out := cmd.OutOrStdout()

			if jsonOut {
				return output.PrintJSON(out, res)
			}

			if n := len(cronexpr.Tokens(expr)); n != cronexpr.FieldCount {
				fmt.Fprintf(out, "expected %d fields, got %d; showing defaults\n", cronexpr.FieldCount, n)
			}
			values := res.Fields.Slice()
			active := res.Active.Slice()
			rows := make([][]interface{}, 0, cronexpr.FieldCount)
			for i, name := range cronexpr.Names {
				mark := ""
				if active[i] {
					mark = "active"
				}
				rows = append(rows, []interface{}{name, values[i], mark})
			}
			output.RenderTable(out, []string{"Field", "Value", "Active"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&jsonOut, "json", "j", false, "print the result as JSON")
	return cmd
}
