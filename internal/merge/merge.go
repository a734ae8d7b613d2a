// Package merge joins the companies and people datasets on normalized
// company name and produces scored MergedRecords.
package merge

import (
	"sort"

	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/normalize"
	"github.com/sells-group/prospect-cli/internal/scorer"
)

// Merge joins companies with every person whose normalized employer name
// equals the company's normalized name. Companies with zero matched
// contacts are dropped entirely. The result is ordered by sales-fit score
// descending; ties keep the companies' input order.
//
// Merge is a pure function over its inputs and holds no incremental state;
// callers re-run it whenever either dataset changes.
func Merge(companies []model.Company, people []model.Person, eng *scorer.Engine) []model.MergedRecord {
	// Index people by normalized employer name up front, preserving their
	// order of appearance. Keeps the join O(companies + people).
	byEmployer := make(map[string][]model.Person, len(people))
	for _, p := range people {
		key := normalize.Name(p.Company)
		byEmployer[key] = append(byEmployer[key], p)
	}

	records := make([]model.MergedRecord, 0, len(companies))
	for _, c := range companies {
		contacts := byEmployer[normalize.Name(c.Name)]
		if len(contacts) == 0 {
			continue
		}

		var decisionMakers int
		var scoreSum int
		for _, p := range contacts {
			if p.IsDecisionMaker() {
				decisionMakers++
			}
			scoreSum += p.ContactScore
		}

		breakdown := eng.Score(c, contacts)
		records = append(records, model.MergedRecord{
			Company:             c,
			Contacts:            contacts,
			ContactCount:        len(contacts),
			DecisionMakerCount:  decisionMakers,
			AverageContactScore: float64(scoreSum) / float64(len(contacts)),
			SalesFitScore:       breakdown.Total,
			ScoreComponents:     breakdown.Components,
			Priority:            eng.Classify(breakdown.Total, decisionMakers),
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].SalesFitScore > records[j].SalesFitScore
	})

	zap.L().Debug("merge: datasets joined",
		zap.Int("companies", len(companies)),
		zap.Int("people", len(people)),
		zap.Int("merged", len(records)),
	)
	return records
}
