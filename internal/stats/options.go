package stats

import (
	"sort"

	"github.com/sells-group/prospect-cli/internal/model"
)

// FilterOptions enumerates the filter values present in a merged dataset,
// used by the presentation layer to populate filter controls.
type FilterOptions struct {
	CompanySizes []string `json:"company_sizes"`
	Industries   []string `json:"industries"`
	Locations    []string `json:"locations"`
	Seniorities  []string `json:"seniorities"`

	// Min/max observed contact and sales-fit scores. Zero ranges when the
	// dataset is empty.
	ContactScoreRange  [2]int `json:"contact_score_range"`
	SalesFitScoreRange [2]int `json:"sales_fit_score_range"`
}

// Options derives the distinct filter values from a merged dataset. Lists
// are sorted lexically.
func Options(records []model.MergedRecord) FilterOptions {
	sizes := make(map[string]struct{})
	industries := make(map[string]struct{})
	locations := make(map[string]struct{})
	seniorities := make(map[string]struct{})

	var opts FilterOptions
	first := true
	for _, r := range records {
		if b := model.SizeBucket(r.Company.EmployeeCount); b != "" {
			sizes[b] = struct{}{}
		}
		if r.Company.Industry != "" {
			industries[r.Company.Industry] = struct{}{}
		}
		if r.Company.State != "" {
			locations[r.Company.State] = struct{}{}
		}

		if first {
			opts.SalesFitScoreRange = [2]int{r.SalesFitScore, r.SalesFitScore}
		} else {
			opts.SalesFitScoreRange[0] = min(opts.SalesFitScoreRange[0], r.SalesFitScore)
			opts.SalesFitScoreRange[1] = max(opts.SalesFitScoreRange[1], r.SalesFitScore)
		}

		for _, c := range r.Contacts {
			if c.Seniority != model.SeniorityUnknown {
				seniorities[string(c.Seniority)] = struct{}{}
			}
			if first {
				opts.ContactScoreRange = [2]int{c.ContactScore, c.ContactScore}
				first = false
			} else {
				opts.ContactScoreRange[0] = min(opts.ContactScoreRange[0], c.ContactScore)
				opts.ContactScoreRange[1] = max(opts.ContactScoreRange[1], c.ContactScore)
			}
		}
		first = false
	}

	opts.CompanySizes = sortedKeys(sizes)
	opts.Industries = sortedKeys(industries)
	opts.Locations = sortedKeys(locations)
	opts.Seniorities = sortedKeys(seniorities)
	return opts
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
