package main

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/stats"
	"github.com/sells-group/prospect-cli/pkg/chat"
)

var (
	chatCompaniesPath string
	chatPeoplePath    string
	chatQuestion      string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Ask the assistant a question about a merged dataset",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if cfg.Chat.Key == "" {
			return eris.New("chat API key is required (PROSPECT_CHAT_KEY)")
		}

		ds, err := loadDataset(ctx, chatCompaniesPath, chatPeoplePath)
		if err != nil {
			return err
		}

		client := chat.NewClient(cfg.Chat.Key,
			chat.WithModel(cfg.Chat.Model),
			chat.WithMaxTokens(cfg.Chat.MaxTokens),
		)

		system := datasetContext(stats.Aggregate(ds.Records), ds.Records)
		answer, err := client.Ask(ctx, system, chatQuestion)
		if err != nil {
			return eris.Wrap(err, "chat")
		}

		fmt.Println(answer)
		return nil
	},
}

func init() {
	f := chatCmd.Flags()
	f.StringVar(&chatCompaniesPath, "companies", "", "path to companies file (required)")
	f.StringVar(&chatPeoplePath, "people", "", "path to people file (required)")
	f.StringVar(&chatQuestion, "question", "", "question to ask (required)")
	_ = chatCmd.MarkFlagRequired("companies")
	_ = chatCmd.MarkFlagRequired("people")
	_ = chatCmd.MarkFlagRequired("question")
	rootCmd.AddCommand(chatCmd)
}

// datasetContext renders a compact system prompt describing the merged
// dataset so the assistant can ground its answers.
func datasetContext(summary stats.Stats, records []model.MergedRecord) string {
	var b strings.Builder
	b.WriteString("You are a sales-intelligence assistant. Answer questions using only the dataset below.\n\n")
	fmt.Fprintf(&b, "Dataset: %d companies, %d contacts, %d high priority targets, average company size %.0f.\n",
		summary.TotalCompanies, summary.TotalContacts, summary.HighPriorityCount, summary.AverageCompanySize)

	if len(summary.TopIndustries) > 0 {
		b.WriteString("Top industries: ")
		for i, e := range summary.TopIndustries {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s (%d)", e.Label, e.Count)
		}
		b.WriteString(".\n")
	}

	const maxListed = 25
	b.WriteString("\nTop companies by sales fit score:\n")
	for i, r := range records {
		if i == maxListed {
			fmt.Fprintf(&b, "... and %d more.\n", len(records)-maxListed)
			break
		}
		fmt.Fprintf(&b, "- %s: score %d, priority %s, %d contacts (%d decision makers), industry %q, state %q\n",
			r.Company.Name, r.SalesFitScore, r.Priority, r.ContactCount,
			r.DecisionMakerCount, r.Company.Industry, r.Company.State)
	}
	return b.String()
}
