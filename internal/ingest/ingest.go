// Package ingest converts raw header-keyed rows from parsed spreadsheets
// into typed Company and Person records.
//
// Each target field resolves from an ordered list of source-column
// synonyms; the first non-empty synonym wins. Rows that fail the validity
// filter are dropped without error, and the drop count is returned for
// diagnostics. The ingestor never fails on a well-formed row sequence:
// unparsable numeric fields become absent, not errors.
package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/model"
)

// Row is one untyped record from the upstream tabular parser, keyed by
// lowercased column name.
type Row map[string]string

// Ingestor converts raw rows into typed records.
type Ingestor struct {
	scores ScoreSource
}

// New creates an Ingestor. The ScoreSource fills in missing contact scores.
func New(scores ScoreSource) *Ingestor {
	return &Ingestor{scores: scores}
}

// Companies converts raw rows into Company records. A row is kept iff it
// has a non-empty name, website, or industry. Returns the kept companies
// and the number of rows dropped by the filter.
func (ing *Ingestor) Companies(rows []Row) ([]model.Company, int) {
	companies := make([]model.Company, 0, len(rows))
	var dropped int

	for i, row := range rows {
		c := model.Company{
			ID:            pick(row, "id"),
			Name:          pick(row, "name", "company_name", "company"),
			Website:       pick(row, "website", "url"),
			Industry:      pick(row, "industry", "sector"),
			EmployeeCount: pickInt(row, "employee_count"),
			Revenue:       pick(row, "revenue"),
			Founded:       pickInt(row, "founded"),
			City:          pick(row, "city"),
			State:         pick(row, "state", "province"),
			Country:       pick(row, "country"),
			ZipCode:       pick(row, "zip_code", "postal_code"),
			Phone:         pick(row, "phone", "telephone"),
			Description:   pick(row, "description"),
			LinkedInURL:   pick(row, "linkedin_url", "linkedin"),
			CrunchbaseURL: pick(row, "crunchbase_url", "crunchbase"),
			Technologies:  pickList(row, "technologies"),
			Funding:       pick(row, "funding"),
			LastUpdated:   pick(row, "last_updated", "updated_at"),
		}
		if c.ID == "" {
			c.ID = fmt.Sprintf("company-%d", i)
		}
		if c.EmployeeCount != nil && *c.EmployeeCount < 0 {
			c.EmployeeCount = nil
		}

		if strings.TrimSpace(c.Name) == "" && c.Website == "" && c.Industry == "" {
			dropped++
			continue
		}
		companies = append(companies, c)
	}

	if dropped > 0 {
		zap.L().Info("ingest: dropped invalid company rows",
			zap.Int("dropped", dropped),
			zap.Int("kept", len(companies)),
		)
	}
	return companies, dropped
}

// People converts raw rows into Person records. A row is kept iff it has a
// non-empty full name and at least one of company or title. Returns the
// kept people and the number of rows dropped by the filter.
func (ing *Ingestor) People(rows []Row) ([]model.Person, int) {
	people := make([]model.Person, 0, len(rows))
	var dropped int

	for i, row := range rows {
		p := model.Person{
			ID:            pick(row, "id"),
			FirstName:     pick(row, "first_name", "firstname"),
			LastName:      pick(row, "last_name", "lastname"),
			FullName:      pick(row, "full_name", "name"),
			Title:         pick(row, "title", "job_title", "position"),
			Company:       pick(row, "company", "company_name"),
			Email:         pick(row, "email"),
			Phone:         pick(row, "phone", "telephone"),
			LinkedInURL:   pick(row, "linkedin_url", "linkedin"),
			Department:    pick(row, "department"),
			Seniority:     model.ParseSeniority(pick(row, "seniority", "level")),
			Location:      pick(row, "location"),
			LastUpdated:   pick(row, "last_updated", "updated_at"),
			DecisionMaker: strings.EqualFold(pick(row, "decision_maker"), "true"),
		}
		if p.ID == "" {
			p.ID = fmt.Sprintf("person-%d", i)
		}
		if p.FullName == "" {
			p.FullName = strings.TrimSpace(p.FirstName + " " + p.LastName)
		}
		if score := pickInt(row, "contact_score"); score != nil {
			p.ContactScore = *score
		} else {
			p.ContactScore = ing.scores.Next()
		}

		if p.FullName == "" || (p.Company == "" && p.Title == "") {
			dropped++
			continue
		}
		people = append(people, p)
	}

	if dropped > 0 {
		zap.L().Info("ingest: dropped invalid people rows",
			zap.Int("dropped", dropped),
			zap.Int("kept", len(people)),
		)
	}
	return people, dropped
}

// pick returns the first non-empty value among the given column synonyms.
func pick(row Row, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(row[k]); v != "" {
			return v
		}
	}
	return ""
}

// pickInt parses the first non-empty synonym as an integer. Absent or
// unparsable values yield nil, never zero.
func pickInt(row Row, keys ...string) *int {
	v := pick(row, keys...)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// pickList splits a comma-separated synonym value into trimmed entries.
func pickList(row Row, keys ...string) []string {
	v := pick(row, keys...)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
