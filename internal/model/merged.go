package model

// Priority is the discrete sales-priority tier assigned to a merged record.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Rank orders priorities for comparison: Low < Medium < High.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityMedium:
		return 1
	default:
		return 0
	}
}

// MergedRecord is one company joined with every contact whose employer name
// normalizes to the same string. Records with zero matched contacts are
// never constructed; the merge drops those companies entirely.
//
// The record holds a read-only view over the ingested Company and Person
// values; it does not own their lifetime.
type MergedRecord struct {
	Company             Company            `json:"company"`
	Contacts            []Person           `json:"contacts"`
	ContactCount        int                `json:"contact_count"`
	DecisionMakerCount  int                `json:"decision_maker_count"`
	AverageContactScore float64            `json:"average_contact_score"`
	SalesFitScore       int                `json:"sales_fit_score"`
	ScoreComponents     map[string]float64 `json:"score_components,omitempty"`
	Priority            Priority           `json:"priority"`
}
