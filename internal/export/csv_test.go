package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/prospect-cli/internal/model"
)

func intPtr(n int) *int { return &n }

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	records := []model.MergedRecord{
		{
			Company: model.Company{
				Name:          "Acme, Inc.",
				Website:       "https://acme.example",
				Industry:      "Software",
				EmployeeCount: intPtr(120),
				City:          "Austin",
				State:         "TX",
				Country:       "USA",
			},
			Contacts: []model.Person{
				{FullName: "Jane Doe", Title: "CTO"},
				{FullName: "Bob Smith"},
			},
			ContactCount:        2,
			DecisionMakerCount:  1,
			AverageContactScore: 62.5,
			SalesFitScore:       95,
			Priority:            model.PriorityHigh,
		},
		{
			Company:             model.Company{Name: "Ghost"},
			Contacts:            []model.Person{{FullName: "X"}},
			ContactCount:        1,
			AverageContactScore: 10,
			Priority:            model.PriorityLow,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{
		"Acme, Inc.", "https://acme.example", "Software", "120", "Austin", "TX",
		"USA", "2", "1", "62.5", "95", "High", "Jane Doe (CTO); Bob Smith",
	}, rows[1])
	// Absent employee count renders empty, average keeps one decimal.
	assert.Equal(t, "", rows[2][3])
	assert.Equal(t, "10.0", rows[2][9])
}

func TestWriteCSV_NoRecords(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, csvHeader, rows[0])
}
