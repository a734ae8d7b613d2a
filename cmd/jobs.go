package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/prospect-cli/pkg/jobs"
)

var jobsCompany string

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Show open job postings for a company",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if cfg.Jobs.AppID == "" || cfg.Jobs.Key == "" {
			return eris.New("job board credentials are required (PROSPECT_JOBS_APP_ID, PROSPECT_JOBS_KEY)")
		}

		client := jobs.NewClient(cfg.Jobs.AppID, cfg.Jobs.Key,
			jobs.WithBaseURL(cfg.Jobs.BaseURL),
			jobs.WithCountry(cfg.Jobs.Country),
		)

		postings, err := client.Search(ctx, jobsCompany)
		if err != nil {
			return eris.Wrap(err, "jobs")
		}
		if len(postings) == 0 {
			fmt.Printf("No job postings found for %s.\n", jobsCompany)
			return nil
		}

		for _, p := range postings {
			fmt.Printf("%s - %s\n", p.Title, p.Company)
			if p.Location != "" {
				fmt.Printf("  Location: %s\n", p.Location)
			}
			if p.Salary != "" {
				fmt.Printf("  Salary:   %s\n", p.Salary)
			}
			if len(p.Skills) > 0 {
				fmt.Printf("  Skills:   %v\n", p.Skills)
			}
			fmt.Printf("  %s\n\n", p.URL)
		}
		return nil
	},
}

func init() {
	jobsCmd.Flags().StringVar(&jobsCompany, "company", "", "company name (required)")
	_ = jobsCmd.MarkFlagRequired("company")
	rootCmd.AddCommand(jobsCmd)
}
