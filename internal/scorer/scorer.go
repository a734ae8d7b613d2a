// Package scorer computes the 0-100 sales-fit score and priority tier for a
// company and its matched contacts.
//
// The score is additive and auditable: each component contributes
// independently, the sum is clamped at the cap, and the per-component
// breakdown is retained so a sales rep can see exactly why a company scored
// as it did. Components are NOT rescaled, so decision-maker density alone
// can saturate the cap.
package scorer

import (
	"math"
	"strings"

	"github.com/sells-group/prospect-cli/internal/config"
	"github.com/sells-group/prospect-cli/internal/model"
)

// Engine scores companies using a validated ScorerConfig.
type Engine struct {
	cfg config.ScorerConfig
}

// New creates an Engine, validating the config first.
func New(cfg config.ScorerConfig) (*Engine, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Breakdown holds a composite score and its per-component contributions.
type Breakdown struct {
	Total      int                `json:"total"`
	Components map[string]float64 `json:"components"`
}

// Score computes the sales-fit score for a company and its matched contacts.
// Total over any valid input: missing or out-of-range fields contribute
// nothing rather than failing. Callers guarantee len(contacts) >= 1; with no
// contacts the completeness component is simply zero.
func (e *Engine) Score(company model.Company, contacts []model.Person) Breakdown {
	cfg := e.cfg
	components := map[string]float64{
		"size":               e.sizeComponent(company.EmployeeCount),
		"decision_makers":    e.decisionMakerComponent(contacts),
		"email_completeness": e.completenessComponent(contacts),
		"industry":           e.industryComponent(company.Industry),
		"geography":          e.geographyComponent(company.Country),
	}

	var total float64
	for _, v := range components {
		total += v
	}
	total = math.Min(total, float64(cfg.MaxScore))

	return Breakdown{
		Total:      int(math.Round(total)),
		Components: components,
	}
}

// Classify assigns a priority tier from a score and decision-maker count.
// Rules are evaluated in order, first match wins.
func (e *Engine) Classify(score, decisionMakerCount int) model.Priority {
	cfg := e.cfg
	switch {
	case score >= cfg.HighMinScore && decisionMakerCount >= cfg.HighMinDecisionMakers:
		return model.PriorityHigh
	case score >= cfg.MediumMinScore && decisionMakerCount >= cfg.MediumMinDecisionMakers:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

// sizeComponent prefers mid-sized companies: full points inside the ideal
// range, partial points inside the wider near range, outlier points for any
// other known count, nothing when the count is absent.
func (e *Engine) sizeComponent(employeeCount *int) float64 {
	if employeeCount == nil {
		return 0
	}
	n := *employeeCount
	cfg := e.cfg
	switch {
	case n >= cfg.SizeIdealMin && n <= cfg.SizeIdealMax:
		return float64(cfg.SizeIdealPoints)
	case n >= cfg.SizeNearMin && n <= cfg.SizeNearMax:
		return float64(cfg.SizeNearPoints)
	default:
		return float64(cfg.SizeOutlierPoints)
	}
}

// decisionMakerComponent awards points per contact that is explicitly
// flagged or holds a C-Suite/VP seniority. Note this is a narrower test
// than model.Person.IsDecisionMaker, which also counts Directors toward the
// merged record's decision-maker total.
func (e *Engine) decisionMakerComponent(contacts []model.Person) float64 {
	var hits int
	for _, c := range contacts {
		if c.DecisionMaker || c.Seniority == model.SeniorityCSuite || c.Seniority == model.SeniorityVP {
			hits++
		}
	}
	return float64(hits * e.cfg.DecisionMakerPoints)
}

func (e *Engine) completenessComponent(contacts []model.Person) float64 {
	if len(contacts) == 0 {
		return 0
	}
	var withEmail int
	for _, c := range contacts {
		if c.Email != "" {
			withEmail++
		}
	}
	return float64(withEmail) / float64(len(contacts)) * float64(e.cfg.EmailCompletenessPoints)
}

func (e *Engine) industryComponent(industry string) float64 {
	if industry == "" {
		return 0
	}
	lowered := strings.ToLower(industry)
	for _, kw := range e.cfg.IndustryKeywords {
		if strings.Contains(lowered, kw) {
			return float64(e.cfg.IndustryPoints)
		}
	}
	return 0
}

func (e *Engine) geographyComponent(country string) float64 {
	for _, c := range e.cfg.GeographyCountries {
		if country == c {
			return float64(e.cfg.GeographyPoints)
		}
	}
	return 0
}
