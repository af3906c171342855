package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	datekit "github.com/goliatone/go-datekit"
	"github.com/goliatone/go-datekit/plugins/comparison"
	"github.com/goliatone/go-datekit/plugins/dayofyear"
	"github.com/goliatone/go-datekit/plugins/isoweek"
	"github.com/goliatone/go-datekit/plugins/minmax"
	"github.com/goliatone/go-datekit/plugins/quarterofyear"
	"github.com/goliatone/go-datekit/plugins/weekofyear"
)

func newBetweenCommand(a *app) *cobra.Command {
	var (
		unit        string
		inclusivity string
	)

	cmd := &cobra.Command{
		Use:   "between <date> <start> <end>",
		Short: "Report whether a date falls between two others",
		Long: `Print true or false. --inclusivity takes "()", "[]", "[)" or "(]".

Example:
  datekit between 2021-05-05 2021-05-01 2021-05-05 --inclusivity "(]"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dates, err := a.dates(args)
			if err != nil {
				return err
			}
			in := comparison.IsBetween(dates[0], dates[1], dates[2], datekit.NormalizeUnit(unit), inclusivity)
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(in))
			return nil
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "", "compare at this granularity")
	cmd.Flags().StringVar(&inclusivity, "inclusivity", "()", "bounds: (), [], [) or (]")
	return cmd
}

func newMinMaxCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "minmax <date> [date...]",
		Short: "Print the earliest and latest of the dates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dates, err := a.dates(args)
			if err != nil {
				return err
			}
			statics, ok := minmax.For(a.env)
			if !ok {
				return errors.New("minmax plugin not installed")
			}
			layout := a.layout()
			fmt.Fprintln(cmd.OutOrStdout(), statics.Min(dates...).Format(layout))
			fmt.Fprintln(cmd.OutOrStdout(), statics.Max(dates...).Format(layout))
			return nil
		},
	}
}

func newInfoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info [date]",
		Short: "Show calendar facts about a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.date(firstArg(args))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 1, ' ', 0)
			fmt.Fprintf(w, "date:\t%s\n", d.Format(a.layout()))
			fmt.Fprintf(w, "iso:\t%s\n", d.ToISOString())
			fmt.Fprintf(w, "weekday:\t%s\n", d.Format("dddd"))
			fmt.Fprintf(w, "day of year:\t%d\n", dayofyear.DayOfYear(d))
			fmt.Fprintf(w, "week:\t%d (%d)\n", weekofyear.Week(d), weekofyear.WeekYear(d))
			fmt.Fprintf(w, "iso week:\t%d (%d)\n", isoweek.ISOWeek(d), isoweek.ISOWeekYear(d))
			fmt.Fprintf(w, "quarter:\t%d\n", quarterofyear.Quarter(d))
			fmt.Fprintf(w, "days in month:\t%d\n", d.DaysInMonth())
			fmt.Fprintf(w, "leap year:\t%t\n", d.IsLeapYear())
			fmt.Fprintf(w, "today:\t%t\n", comparison.IsToday(d))
			return w.Flush()
		},
	}
}
