package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type localeInfo struct {
	Code      string   `json:"code"`
	Fallbacks []string `json:"fallbacks"`
	WeekStart int      `json:"week_start"`
	YearStart int      `json:"year_start"`
	Sample    string   `json:"sample"`
	IsDefault bool     `json:"default"`
}

func newLocalesCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "locales",
		Short: "List the loaded locales",
		Long: `List every loaded locale with its fallback chain, week rules and
a sample rendering of now.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := a.env.LocaleRegistry()
			now := a.env.Now()

			var infos []localeInfo
			for _, code := range a.env.Locales() {
				locale := a.env.ResolveLocale(code)
				infos = append(infos, localeInfo{
					Code:      code,
					Fallbacks: registry.Candidates(code)[1:],
					WeekStart: locale.WeekStart,
					YearStart: locale.YearStart,
					Sample:    now.WithLocale(code).Format("dddd D MMMM YYYY"),
					IsDefault: code == a.env.DefaultLocale(),
				})
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tWEEK START\tSAMPLE")
			for _, info := range infos {
				code := info.Code
				if info.IsDefault {
					code += " *"
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", code, info.WeekStart, info.Sample)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newEnvCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary := a.env.Describe()
			summary["layout"] = a.layout()
			summary["now"] = a.env.Now().ToISOString()
			if path := a.v.ConfigFileUsed(); path != "" {
				summary["config_file"] = path
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(summary); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
