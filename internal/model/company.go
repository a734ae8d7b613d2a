// Package model defines the core entities of the prospect pipeline:
// companies, contacts, and the merged records derived from joining them.
package model

// Company represents one business entity from the companies dataset.
// Companies are created once at ingestion and are immutable until the
// whole dataset is replaced by a new upload.
type Company struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Website       string   `json:"website,omitempty"`
	Industry      string   `json:"industry,omitempty"`
	EmployeeCount *int     `json:"employee_count,omitempty"`
	Revenue       string   `json:"revenue,omitempty"`
	Founded       *int     `json:"founded,omitempty"`
	City          string   `json:"city,omitempty"`
	State         string   `json:"state,omitempty"`
	Country       string   `json:"country,omitempty"`
	ZipCode       string   `json:"zip_code,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	Description   string   `json:"description,omitempty"`
	LinkedInURL   string   `json:"linkedin_url,omitempty"`
	CrunchbaseURL string   `json:"crunchbase_url,omitempty"`
	Technologies  []string `json:"technologies,omitempty"`
	Funding       string   `json:"funding,omitempty"`
	LastUpdated   string   `json:"last_updated,omitempty"`
}

// Size bucket labels shared by stats and filtering.
const (
	SizeSmall      = "Small (1-49)"
	SizeMedium     = "Medium (50-199)"
	SizeLarge      = "Large (200-999)"
	SizeEnterprise = "Enterprise (1000+)"
)

// SizeBucket returns the size bucket label for an employee count.
// Companies with no employee count fall into no bucket and return "".
func SizeBucket(employeeCount *int) string {
	if employeeCount == nil {
		return ""
	}
	switch n := *employeeCount; {
	case n < 50:
		return SizeSmall
	case n < 200:
		return SizeMedium
	case n < 1000:
		return SizeLarge
	default:
		return SizeEnterprise
	}
}
