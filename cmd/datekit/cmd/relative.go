package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-datekit/plugins/calendar"
	"github.com/goliatone/go-datekit/plugins/relativetime"
)

func newRelativeCommand(a *app) *cobra.Command {
	var (
		ref      string
		noSuffix bool
	)

	cmd := &cobra.Command{
		Use:   "relative <date>",
		Short: "Describe a date relative to now or --to",
		Long: `Print a phrase such as "in 3 days" or "a month ago".

Examples:
  datekit relative 2021-05-18
  datekit relative 2021-05-18 --to 2021-05-01 --locale es`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.date(args[0])
			if err != nil {
				return err
			}
			other, err := a.date(ref)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), relativetime.From(d, other, noSuffix))
			return nil
		},
	}

	cmd.Flags().StringVar(&ref, "to", "now", "reference date")
	cmd.Flags().BoolVar(&noSuffix, "no-suffix", false, `omit "in" and "ago"`)
	return cmd
}

func newCalendarCommand(a *app) *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "calendar <date>",
		Short: `Calendar phrase such as "Tomorrow at 2:30 PM"`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.date(args[0])
			if err != nil {
				return err
			}
			other, err := a.date(ref)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), calendar.Calendar(d, other, nil))
			return nil
		},
	}

	cmd.Flags().StringVar(&ref, "ref", "now", "reference date")
	return cmd
}
