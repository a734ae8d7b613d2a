// Package jobs is a thin client for an Adzuna-style job-board API, used by
// the presentation layer to show hiring signals for a company. The core
// pipeline never depends on it.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// Posting is one job listing.
type Posting struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	PostedDate  string   `json:"posted_date"`
	Salary      string   `json:"salary,omitempty"`
	JobType     string   `json:"job_type,omitempty"`
	Category    string   `json:"category,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// Client searches job postings for a company.
type Client interface {
	Search(ctx context.Context, company string) ([]Posting, error)
}

type httpClient struct {
	appID   string
	apiKey  string
	baseURL string
	country string
	perPage int
	http    *http.Client
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(u string) Option {
	return func(c *httpClient) { c.baseURL = u }
}

// WithCountry sets the search country code (default "us").
func WithCountry(cc string) Option {
	return func(c *httpClient) { c.country = cc }
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) { c.http = hc }
}

// NewClient creates a job-board client.
func NewClient(appID, apiKey string, opts ...Option) Client {
	c := &httpClient{
		appID:   appID,
		apiKey:  apiKey,
		baseURL: "https://api.adzuna.com/v1/api/jobs",
		country: "us",
		perPage: 10,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type searchResponse struct {
	Results []struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		Company struct {
			DisplayName string `json:"display_name"`
		} `json:"company"`
		Location struct {
			DisplayName string `json:"display_name"`
		} `json:"location"`
		Description  string  `json:"description"`
		RedirectURL  string  `json:"redirect_url"`
		Created      string  `json:"created"`
		SalaryMin    float64 `json:"salary_min"`
		SalaryMax    float64 `json:"salary_max"`
		ContractTime string  `json:"contract_time"`
		Category     struct {
			Label string `json:"label"`
		} `json:"category"`
	} `json:"results"`
}

func (c *httpClient) Search(ctx context.Context, company string) ([]Posting, error) {
	if c.appID == "" || c.apiKey == "" {
		return nil, eris.New("jobs: api credentials not configured")
	}

	params := url.Values{
		"app_id":           {c.appID},
		"app_key":          {c.apiKey},
		"results_per_page": {fmt.Sprintf("%d", c.perPage)},
		"company":          {company},
	}
	reqURL := fmt.Sprintf("%s/%s/search/1?%s", c.baseURL, c.country, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "jobs: build request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "jobs: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("jobs: provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "jobs: read body")
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, eris.Wrap(err, "jobs: parse response")
	}

	postings := make([]Posting, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		p := Posting{
			ID:          r.ID,
			Title:       r.Title,
			Company:     r.Company.DisplayName,
			Location:    r.Location.DisplayName,
			Description: r.Description,
			URL:         r.RedirectURL,
			PostedDate:  r.Created,
			JobType:     r.ContractTime,
			Category:    r.Category.Label,
			Skills:      extractSkills(r.Description),
		}
		if p.Company == "" {
			p.Company = company
		}
		if r.SalaryMin > 0 && r.SalaryMax > 0 {
			p.Salary = fmt.Sprintf("$%.0f - $%.0f", r.SalaryMin, r.SalaryMax)
		}
		postings = append(postings, p)
	}
	return postings, nil
}

// commonSkills are the technology keywords scanned for in descriptions.
var commonSkills = []string{
	"JavaScript", "TypeScript", "React", "Vue", "Angular", "Node.js", "Python",
	"Java", "C++", "C#", "Go", "Rust", "PHP", "Ruby", "Swift", "Kotlin",
	"Scala", "Django", "Flask", "Express", "MongoDB", "PostgreSQL", "MySQL",
	"Redis", "AWS", "Azure", "GCP", "Docker", "Kubernetes", "Git", "CI/CD",
	"REST", "GraphQL", "Microservices", "Machine Learning", "AI", "Data Science",
}

// extractSkills returns up to five known skills mentioned in a description.
func extractSkills(description string) []string {
	lowered := strings.ToLower(description)
	var found []string
	for _, skill := range commonSkills {
		if strings.Contains(lowered, strings.ToLower(skill)) {
			found = append(found, skill)
			if len(found) == 5 {
				break
			}
		}
	}
	return found
}
