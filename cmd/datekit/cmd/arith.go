package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	datekit "github.com/goliatone/go-datekit"
)

// newShiftCommand builds add (sign 1) and subtract (sign -1).
func newShiftCommand(a *app, name string, sign int) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <date> <amount> <unit>",
		Short: fmt.Sprintf("%s an amount of units to a date", shiftVerb(sign)),
		Long: fmt.Sprintf(`%s amount units and print the result with --layout.
Units accept short codes (d, M, y, Q, w), names and plurals.

Example:
  datekit %s 2021-01-31 1 month -f YYYY-MM-DD`, shiftVerb(sign), name),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.date(args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			unit := datekit.NormalizeUnit(args[2])
			fmt.Fprintln(cmd.OutOrStdout(), d.Add(sign*amount, unit).Format(a.layout()))
			return nil
		},
	}
}

func shiftVerb(sign int) string {
	if sign < 0 {
		return "Subtract"
	}
	return "Add"
}

func newBoundaryCommand(a *app, name string) *cobra.Command {
	end := name == "endof"
	short := "Start of the unit containing a date"
	if end {
		short = "End of the unit containing a date"
	}

	return &cobra.Command{
		Use:   name + " <date> <unit>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.date(args[0])
			if err != nil {
				return err
			}
			unit := datekit.NormalizeUnit(args[1])
			if end {
				d = d.EndOf(unit)
			} else {
				d = d.StartOf(unit)
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.Format(a.layout()))
			return nil
		},
	}
}

func newDiffCommand(a *app) *cobra.Command {
	var (
		unit     string
		asFloat  bool
		decimals int
	)

	cmd := &cobra.Command{
		Use:   "diff <date> <other>",
		Short: "Difference between two dates",
		Long: `Print date minus other in --unit (milliseconds by default).
Month, quarter and year differences count calendar months. With --float
and --decimals the number uses the separators of --locale.

Example:
  datekit diff 2021-05-10 2021-05-05 --unit day`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dates, err := a.dates(args)
			if err != nil {
				return err
			}
			u := datekit.NormalizeUnit(unit)
			if asFloat {
				value := dates[0].DiffFloat(dates[1], u)
				if cmd.Flags().Changed("decimals") {
					fmt.Fprintln(cmd.OutOrStdout(), formatDecimal(a.env.DefaultLocale(), value, decimals))
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(value, 'f', -1, 64))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), dates[0].Diff(dates[1], u))
			return nil
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "ms", "unit of the result")
	cmd.Flags().BoolVar(&asFloat, "float", false, "print the fractional difference")
	cmd.Flags().IntVar(&decimals, "decimals", -1, "round --float output and use the locale separators")
	return cmd
}
