// Package export renders merged records for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/prospect-cli/internal/model"
)

var csvHeader = []string{
	"company", "website", "industry", "employee_count", "city", "state",
	"country", "contact_count", "decision_maker_count", "average_contact_score",
	"sales_fit_score", "priority", "contacts",
}

// WriteCSV writes merged records as CSV, one row per company, with contacts
// flattened into a single semicolon-separated column.
func WriteCSV(w io.Writer, records []model.MergedRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return eris.Wrap(err, "export: write header")
	}

	for _, r := range records {
		employees := ""
		if r.Company.EmployeeCount != nil {
			employees = strconv.Itoa(*r.Company.EmployeeCount)
		}

		contacts := make([]string, 0, len(r.Contacts))
		for _, c := range r.Contacts {
			label := c.FullName
			if c.Title != "" {
				label += " (" + c.Title + ")"
			}
			contacts = append(contacts, label)
		}

		row := []string{
			r.Company.Name,
			r.Company.Website,
			r.Company.Industry,
			employees,
			r.Company.City,
			r.Company.State,
			r.Company.Country,
			strconv.Itoa(r.ContactCount),
			strconv.Itoa(r.DecisionMakerCount),
			fmt.Sprintf("%.1f", r.AverageContactScore),
			strconv.Itoa(r.SalesFitScore),
			string(r.Priority),
			strings.Join(contacts, "; "),
		}
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "export: write row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "export: flush")
	}
	return nil
}
