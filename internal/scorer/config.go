package scorer

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/prospect-cli/internal/config"
)

// DefaultConfig returns the standard sales-fit scoring configuration.
func DefaultConfig() config.ScorerConfig {
	return config.ScorerConfig{
		SizeIdealMin:      50,
		SizeIdealMax:      500,
		SizeIdealPoints:   30,
		SizeNearMin:       10,
		SizeNearMax:       1000,
		SizeNearPoints:    20,
		SizeOutlierPoints: 10,

		DecisionMakerPoints:     15,
		EmailCompletenessPoints: 20,

		IndustryKeywords: []string{
			"technology", "software", "saas", "tech", "digital", "it", "information",
		},
		IndustryPoints: 15,

		GeographyCountries: []string{"United States", "USA"},
		GeographyPoints:    10,

		MaxScore: 100,

		HighMinScore:            70,
		HighMinDecisionMakers:   2,
		MediumMinScore:          50,
		MediumMinDecisionMakers: 1,
	}
}

// ValidateConfig checks that a ScorerConfig is internally consistent.
func ValidateConfig(c config.ScorerConfig) error {
	var errs []string

	points := map[string]int{
		"size_ideal_points":         c.SizeIdealPoints,
		"size_near_points":          c.SizeNearPoints,
		"size_outlier_points":       c.SizeOutlierPoints,
		"decision_maker_points":     c.DecisionMakerPoints,
		"email_completeness_points": c.EmailCompletenessPoints,
		"industry_points":           c.IndustryPoints,
		"geography_points":          c.GeographyPoints,
	}
	for name, p := range points {
		if p < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0", name))
		}
	}

	if c.SizeIdealMax < c.SizeIdealMin {
		errs = append(errs, "size_ideal_max must be >= size_ideal_min")
	}
	if c.SizeNearMax < c.SizeNearMin {
		errs = append(errs, "size_near_max must be >= size_near_min")
	}
	if c.SizeNearMin > c.SizeIdealMin || c.SizeNearMax < c.SizeIdealMax {
		errs = append(errs, "size near range must contain the ideal range")
	}

	if c.MaxScore <= 0 {
		errs = append(errs, "max_score must be > 0")
	}

	if c.HighMinScore < c.MediumMinScore {
		errs = append(errs, "high_min_score must be >= medium_min_score")
	}
	if c.HighMinDecisionMakers < c.MediumMinDecisionMakers {
		errs = append(errs, "high_min_decision_makers must be >= medium_min_decision_makers")
	}

	if len(errs) > 0 {
		return eris.Errorf("scorer: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
