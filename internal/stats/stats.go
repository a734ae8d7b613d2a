// Package stats computes summary statistics and applies multi-criteria
// filters over merged records. Both operations are pure functions; callers
// re-evaluate them whenever the dataset or criteria change.
package stats

import (
	"sort"

	"github.com/sells-group/prospect-cli/internal/model"
)

// CountEntry is one label with its occurrence count.
type CountEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Stats summarizes a merged dataset for the dashboard.
type Stats struct {
	TotalCompanies     int     `json:"total_companies"`
	TotalContacts      int     `json:"total_contacts"`
	HighPriorityCount  int     `json:"high_priority_count"`
	AverageCompanySize float64 `json:"average_company_size"`

	// TopIndustries holds the five most common industries, descending,
	// ties broken by first appearance in the dataset.
	TopIndustries []CountEntry `json:"top_industries"`

	// GeographicDistribution counts companies per state, descending.
	// Companies with no state are omitted.
	GeographicDistribution []CountEntry `json:"geographic_distribution"`

	// ContactRoleDistribution counts contacts per seniority across all
	// records, descending. Contacts with no seniority count as "Unknown".
	ContactRoleDistribution []CountEntry `json:"contact_role_distribution"`
}

// Aggregate computes dashboard statistics over a merged dataset.
func Aggregate(records []model.MergedRecord) Stats {
	s := Stats{TotalCompanies: len(records)}

	industries := newCounter()
	states := newCounter()
	roles := newCounter()

	var sizeSum float64
	for _, r := range records {
		s.TotalContacts += r.ContactCount
		if r.Priority == model.PriorityHigh {
			s.HighPriorityCount++
		}
		if r.Company.EmployeeCount != nil {
			sizeSum += float64(*r.Company.EmployeeCount)
		}
		if r.Company.Industry != "" {
			industries.add(r.Company.Industry)
		}
		if r.Company.State != "" {
			states.add(r.Company.State)
		}
		for _, c := range r.Contacts {
			role := string(c.Seniority)
			if role == "" {
				role = "Unknown"
			}
			roles.add(role)
		}
	}

	if len(records) > 0 {
		s.AverageCompanySize = sizeSum / float64(len(records))
	}
	s.TopIndustries = industries.top(5)
	s.GeographicDistribution = states.top(0)
	s.ContactRoleDistribution = roles.top(0)
	return s
}

// counter tallies labels while remembering first-seen order for stable
// tie-breaking.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

// top returns up to n entries sorted by count descending, ties in
// first-seen order. n <= 0 returns all entries.
func (c *counter) top(n int) []CountEntry {
	entries := make([]CountEntry, 0, len(c.order))
	for _, label := range c.order {
		entries = append(entries, CountEntry{Label: label, Count: c.counts[label]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
