package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/prospect-cli/internal/stats"
)

var (
	statsCompaniesPath string
	statsPeoplePath    string
	statsFormat        string
	statsShowOptions   bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize a merged dataset",
	Long: `Merges the two input files and prints dashboard statistics: totals,
priority counts, top industries, geographic spread, and contact roles.

Examples:
  prospect-cli stats --companies companies.csv --people people.csv
  prospect-cli stats --companies c.csv --people p.csv --format yaml
  prospect-cli stats --companies c.csv --people p.csv --options`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		ds, err := loadDataset(ctx, statsCompaniesPath, statsPeoplePath)
		if err != nil {
			return err
		}

		summary := stats.Aggregate(ds.Records)

		var payload any = summary
		if statsShowOptions {
			payload = struct {
				Stats   stats.Stats         `json:"stats" yaml:"stats"`
				Options stats.FilterOptions `json:"options" yaml:"options"`
			}{summary, stats.Options(ds.Records)}
		}

		switch statsFormat {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(payload); err != nil {
				return eris.Wrap(err, "stats: encode json")
			}
		case "yaml":
			data, err := yaml.Marshal(payload)
			if err != nil {
				return eris.Wrap(err, "stats: encode yaml")
			}
			fmt.Print(string(data))
		case "table":
			printStats(summary)
		default:
			return eris.Errorf("stats: unsupported format %q", statsFormat)
		}
		return nil
	},
}

func init() {
	f := statsCmd.Flags()
	f.StringVar(&statsCompaniesPath, "companies", "", "path to companies file (required)")
	f.StringVar(&statsPeoplePath, "people", "", "path to people file (required)")
	f.StringVar(&statsFormat, "format", "table", "output format: table, json, or yaml")
	f.BoolVar(&statsShowOptions, "options", false, "include available filter values")
	_ = statsCmd.MarkFlagRequired("companies")
	_ = statsCmd.MarkFlagRequired("people")
	rootCmd.AddCommand(statsCmd)
}

func printStats(s stats.Stats) {
	fmt.Printf("Companies:       %d\n", s.TotalCompanies)
	fmt.Printf("Contacts:        %d\n", s.TotalContacts)
	fmt.Printf("High priority:   %d\n", s.HighPriorityCount)
	fmt.Printf("Avg company size: %.1f\n", s.AverageCompanySize)

	if len(s.TopIndustries) > 0 {
		fmt.Println("\nTop industries:")
		for _, e := range s.TopIndustries {
			fmt.Printf("  %-30s %d\n", e.Label, e.Count)
		}
	}
	if len(s.GeographicDistribution) > 0 {
		fmt.Println("\nBy state:")
		for _, e := range s.GeographicDistribution {
			fmt.Printf("  %-30s %d\n", e.Label, e.Count)
		}
	}
	if len(s.ContactRoleDistribution) > 0 {
		fmt.Println("\nContact roles:")
		for _, e := range s.ContactRoleDistribution {
			fmt.Printf("  %-30s %d\n", e.Label, e.Count)
		}
	}
}
