package stats

import (
	"slices"
	"strings"

	"github.com/sells-group/prospect-cli/internal/model"
)

// Criteria specifies optional filters over merged records. Criteria combine
// with logical AND; within one criterion, list members combine with OR. A
// nil or empty criterion applies no filtering on that dimension.
type Criteria struct {
	CompanySizes []string          `json:"company_sizes,omitempty"` // size bucket labels
	Industries   []string          `json:"industries,omitempty"`    // exact company industry
	Locations    []string          `json:"locations,omitempty"`     // exact company state
	Seniorities  []model.Seniority `json:"seniorities,omitempty"`   // any contact matches
	Priorities   []model.Priority  `json:"priorities,omitempty"`    // exact priority
	SearchTerm   string            `json:"search_term,omitempty"`   // substring over names/titles
}

// Filter returns the records matching all set criteria, preserving input
// order. Empty criteria return the full sequence unchanged.
func Filter(records []model.MergedRecord, c Criteria) []model.MergedRecord {
	out := make([]model.MergedRecord, 0, len(records))
	for _, r := range records {
		if matches(r, c) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r model.MergedRecord, c Criteria) bool {
	if len(c.CompanySizes) > 0 {
		// Companies with no employee count have no bucket and never match
		// a size criterion.
		if !slices.Contains(c.CompanySizes, model.SizeBucket(r.Company.EmployeeCount)) {
			return false
		}
	}

	if len(c.Industries) > 0 {
		if r.Company.Industry == "" || !slices.Contains(c.Industries, r.Company.Industry) {
			return false
		}
	}

	if len(c.Locations) > 0 {
		if r.Company.State == "" || !slices.Contains(c.Locations, r.Company.State) {
			return false
		}
	}

	if len(c.Seniorities) > 0 {
		var hit bool
		for _, contact := range r.Contacts {
			if contact.Seniority != model.SeniorityUnknown && slices.Contains(c.Seniorities, contact.Seniority) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	if len(c.Priorities) > 0 && !slices.Contains(c.Priorities, r.Priority) {
		return false
	}

	if c.SearchTerm != "" {
		term := strings.ToLower(c.SearchTerm)
		if !strings.Contains(strings.ToLower(r.Company.Name), term) && !anyContactMatches(r.Contacts, term) {
			return false
		}
	}

	return true
}

func anyContactMatches(contacts []model.Person, loweredTerm string) bool {
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.FullName), loweredTerm) ||
			strings.Contains(strings.ToLower(c.Title), loweredTerm) {
			return true
		}
	}
	return false
}
