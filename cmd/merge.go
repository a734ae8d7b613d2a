package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/prospect-cli/internal/export"
	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/stats"
)

var (
	mergeCompaniesPath string
	mergePeoplePath    string
	mergeFormat        string
	mergeOutput        string
	mergeLimit         int
	mergeSizes         string
	mergeIndustries    string
	mergeLocations     string
	mergeSeniorities   string
	mergePriorities    string
	mergeSearch        string
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Join companies and contacts, score them, and print the result",
	Long: `Reads a companies file and a people file (CSV or XLSX), joins them on
normalized company name, scores each matched company for sales fit, and
prints the merged records ordered by score.

Companies with no matched contacts are excluded. Filter flags combine with
AND; comma-separated values within one flag combine with OR.

Examples:
  # Full merge, human-readable table
  prospect-cli merge --companies companies.csv --people people.csv

  # High-priority software companies, exported as CSV
  prospect-cli merge --companies c.xlsx --people p.xlsx \
    --priority High --industries Software --format csv --output targets.csv

  # Search across company and contact names
  prospect-cli merge --companies c.csv --people p.csv --search acme`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		ds, err := loadDataset(ctx, mergeCompaniesPath, mergePeoplePath)
		if err != nil {
			return err
		}

		records := stats.Filter(ds.Records, mergeCriteria())
		if mergeLimit > 0 && len(records) > mergeLimit {
			records = records[:mergeLimit]
		}

		return outputRecords(records, mergeFormat, mergeOutput)
	},
}

func init() {
	f := mergeCmd.Flags()
	f.StringVar(&mergeCompaniesPath, "companies", "", "path to companies file (required)")
	f.StringVar(&mergePeoplePath, "people", "", "path to people file (required)")
	f.StringVar(&mergeFormat, "format", "table", "output format: table, json, or csv")
	f.StringVar(&mergeOutput, "output", "", "output file path (default: stdout)")
	f.IntVar(&mergeLimit, "limit", 0, "maximum number of records (0 = all)")
	f.StringVar(&mergeSizes, "sizes", "", "comma-separated size buckets (e.g. 'Small (1-49),Medium (50-199)')")
	f.StringVar(&mergeIndustries, "industries", "", "comma-separated industries (exact match)")
	f.StringVar(&mergeLocations, "locations", "", "comma-separated states (exact match)")
	f.StringVar(&mergeSeniorities, "seniority", "", "comma-separated seniority levels")
	f.StringVar(&mergePriorities, "priority", "", "comma-separated priorities (High, Medium, Low)")
	f.StringVar(&mergeSearch, "search", "", "case-insensitive search over company and contact names")
	_ = mergeCmd.MarkFlagRequired("companies")
	_ = mergeCmd.MarkFlagRequired("people")
	rootCmd.AddCommand(mergeCmd)
}

func mergeCriteria() stats.Criteria {
	c := stats.Criteria{
		CompanySizes: splitAndTrim(mergeSizes),
		Industries:   splitAndTrim(mergeIndustries),
		Locations:    splitAndTrim(mergeLocations),
		SearchTerm:   mergeSearch,
	}
	for _, s := range splitAndTrim(mergeSeniorities) {
		c.Seniorities = append(c.Seniorities, model.ParseSeniority(s))
	}
	for _, p := range splitAndTrim(mergePriorities) {
		c.Priorities = append(c.Priorities, model.Priority(p))
	}
	return c
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func outputRecords(records []model.MergedRecord, format, outputPath string) error {
	w := os.Stdout
	if outputPath != "" {
		var err error
		w, err = os.Create(outputPath)
		if err != nil {
			return eris.Wrapf(err, "merge: create output file %s", outputPath)
		}
		defer w.Close() //nolint:errcheck
	}

	switch format {
	case "csv":
		return export.WriteCSV(w, records)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return eris.Wrap(err, "merge: encode json")
		}
		return nil
	case "table":
		return writeRecordTable(w, records)
	default:
		return eris.Errorf("merge: unsupported format %q", format)
	}
}

func writeRecordTable(w *os.File, records []model.MergedRecord) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No merged records.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tPRIORITY\tCOMPANY\tINDUSTRY\tSTATE\tCONTACTS\tDECISION MAKERS")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%d\n",
			r.SalesFitScore, r.Priority, r.Company.Name, r.Company.Industry,
			r.Company.State, r.ContactCount, r.DecisionMakerCount,
		)
	}
	if err := tw.Flush(); err != nil {
		return eris.Wrap(err, "merge: flush table")
	}
	return nil
}
