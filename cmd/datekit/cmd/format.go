package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	datekit "github.com/goliatone/go-datekit"
	"github.com/goliatone/go-datekit/plugins/timezone"
)

func newFormatCommand(a *app) *cobra.Command {
	var zone string

	cmd := &cobra.Command{
		Use:   "format [date...]",
		Short: "Format dates with a layout",
		Long: `Format each date (default: now) with --layout.

Examples:
  datekit format 2021-05-05T10:00:00Z -f "dddd D MMMM YYYY"
  datekit format --locale es -f LLLL
  datekit format 05/05/2021 --from DD/MM/YYYY --in Asia/Tokyo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"now"}
			}
			dates, err := a.dates(args)
			if err != nil {
				return err
			}
			for _, d := range dates {
				if zone != "" {
					if _, err := timezone.Load(zone); err != nil {
						return err
					}
					d = timezone.In(d, zone)
				}
				fmt.Fprintln(cmd.OutOrStdout(), d.Format(a.layout()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&zone, "in", "", "convert to this IANA zone before formatting")
	return cmd
}

type parsedDate struct {
	Input     string       `json:"input"`
	ISO       datekit.Date `json:"iso"`
	UnixMilli int64        `json:"unix_ms"`
	Formatted string       `json:"formatted"`
	Locale    string       `json:"locale"`
	Zone      string       `json:"zone"`
}

func newParseCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <input>",
		Short: "Parse a date and print it as an ISO string",
		Long: `Parse input with the --from layouts (or ISO 8601 / RFC formats when none
are given) and print the UTC ISO string.

Examples:
  datekit parse "5 de mayo de 2021" --locale es --from "D [de] MMMM [de] YYYY"
  datekit parse 1620208800 --from X --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.date(args[0])
			if err != nil {
				return err
			}

			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), d.ToISOString())
				return nil
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(parsedDate{
				Input:     args[0],
				ISO:       d,
				UnixMilli: d.ValueOf(),
				Formatted: d.Format(a.layout()),
				Locale:    d.Locale(),
				Zone:      d.Location().String(),
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON object")
	return cmd
}
