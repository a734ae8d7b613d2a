package fetcher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/prospect-cli/internal/ingest"
)

func TestReadCSV(t *testing.T) {
	t.Parallel()

	input := "Name, Industry ,State\nAcme,Software,CA\nBeta,Retail,NY\n"
	rows, err := ReadCSV(strings.NewReader(input), CSVOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Header names are lowercased and trimmed.
	assert.Equal(t, ingest.Row{"name": "Acme", "industry": "Software", "state": "CA"}, rows[0])
	assert.Equal(t, "Beta", rows[1]["name"])
}

func TestReadCSV_ShortRowsLeaveColumnsUnset(t *testing.T) {
	t.Parallel()

	input := "name,industry,state\nAcme\nBeta,Retail\n"
	rows, err := ReadCSV(strings.NewReader(input), CSVOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, ingest.Row{"name": "Acme"}, rows[0])
	assert.Equal(t, ingest.Row{"name": "Beta", "industry": "Retail"}, rows[1])
}

func TestReadCSV_CustomDelimiter(t *testing.T) {
	t.Parallel()

	input := "name;industry\nAcme;Software\n"
	rows, err := ReadCSV(strings.NewReader(input), CSVOptions{Delimiter: ';'})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Software", rows[0]["industry"])
}

func TestReadCSV_Empty(t *testing.T) {
	t.Parallel()

	_, err := ReadCSV(strings.NewReader(""), CSVOptions{})
	assert.Error(t, err)

	// A header with no data rows is fine.
	rows, err := ReadCSV(strings.NewReader("name,industry\n"), CSVOptions{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func createTestXLSX(t *testing.T, sheetName string, cells [][]string) string {
	t.Helper()

	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	require.NoError(t, err)
	for _, rowCells := range cells {
		row := sheet.AddRow()
		for _, v := range rowCells {
			row.AddCell().SetString(v)
		}
	}

	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestReadXLSX(t *testing.T) {
	t.Parallel()

	path := createTestXLSX(t, "Companies", [][]string{
		{"Name", "Industry"},
		{"Acme", "Software"},
		{"Beta", "Retail"},
	})

	rows, err := ReadXLSX(path, XLSXOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Acme", rows[0]["name"])
	assert.Equal(t, "Retail", rows[1]["industry"])
}

func TestReadXLSX_SheetSelection(t *testing.T) {
	t.Parallel()

	path := createTestXLSX(t, "People", [][]string{
		{"full_name", "company"},
		{"Jane Doe", "Acme"},
	})

	t.Run("by name", func(t *testing.T) {
		t.Parallel()
		rows, err := ReadXLSX(path, XLSXOptions{SheetName: "People"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Jane Doe", rows[0]["full_name"])
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()
		_, err := ReadXLSX(path, XLSXOptions{SheetName: "Nope"})
		assert.Error(t, err)
	})

	t.Run("index out of range", func(t *testing.T) {
		t.Parallel()
		_, err := ReadXLSX(path, XLSXOptions{SheetIndex: 3})
		assert.Error(t, err)
	})
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("csv", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "data.csv")
		require.NoError(t, os.WriteFile(path, []byte("name\nAcme\n"), 0o644))

		rows, err := ReadFile(path)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Acme", rows[0]["name"])
	})

	t.Run("xlsx", func(t *testing.T) {
		t.Parallel()
		path := createTestXLSX(t, "Sheet1", [][]string{{"name"}, {"Acme"}})

		rows, err := ReadFile(path)
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		_, err := ReadFile("data.json")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported file format")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := ReadFile(filepath.Join(t.TempDir(), "absent.csv"))
		assert.Error(t, err)
	})
}
