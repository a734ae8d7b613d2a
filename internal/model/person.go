package model

import "strings"

// Seniority is the fixed set of contact seniority levels.
type Seniority string

const (
	SeniorityCSuite   Seniority = "C-Suite"
	SeniorityVP       Seniority = "VP"
	SeniorityDirector Seniority = "Director"
	SeniorityManager  Seniority = "Manager"
	SenioritySenior   Seniority = "Senior"
	SeniorityMidLevel Seniority = "Mid-Level"
	SeniorityJunior   Seniority = "Junior"
	// SeniorityUnknown is the zero value used when the source supplies no
	// recognizable seniority.
	SeniorityUnknown Seniority = ""
)

// ParseSeniority maps a free-text seniority value to the canonical
// enumeration, case-insensitively. Unrecognized values map to
// SeniorityUnknown.
func ParseSeniority(s string) Seniority {
	for _, level := range []Seniority{
		SeniorityCSuite, SeniorityVP, SeniorityDirector, SeniorityManager,
		SenioritySenior, SeniorityMidLevel, SeniorityJunior,
	} {
		if strings.EqualFold(s, string(level)) {
			return level
		}
	}
	return SeniorityUnknown
}

// Person represents one contact from the people dataset. The Company field
// is a free-text employer name used as the join key, not a foreign key.
type Person struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name,omitempty"`
	LastName      string    `json:"last_name,omitempty"`
	FullName      string    `json:"full_name"`
	Title         string    `json:"title,omitempty"`
	Company       string    `json:"company,omitempty"`
	Email         string    `json:"email,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	LinkedInURL   string    `json:"linkedin_url,omitempty"`
	Department    string    `json:"department,omitempty"`
	Seniority     Seniority `json:"seniority,omitempty"`
	Location      string    `json:"location,omitempty"`
	LastUpdated   string    `json:"last_updated,omitempty"`
	DecisionMaker bool      `json:"decision_maker"`
	ContactScore  int       `json:"contact_score"`
}

// IsDecisionMaker reports whether the contact counts toward a merged
// record's decision-maker total: flagged explicitly, or senior enough
// (C-Suite, VP, Director) to carry purchase authority.
func (p Person) IsDecisionMaker() bool {
	if p.DecisionMaker {
		return true
	}
	switch p.Seniority {
	case SeniorityCSuite, SeniorityVP, SeniorityDirector:
		return true
	default:
		return false
	}
}
