// Package fetcher parses uploaded CSV and XLSX files into header-keyed rows
// for the ingestor. Delimiters, encodings, and sheet selection are handled
// here; the ingestor never sees raw file structure.
package fetcher

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/prospect-cli/internal/ingest"
)

// CSVOptions configures the CSV parser.
type CSVOptions struct {
	Delimiter  rune // default ','
	Comment    rune // comment character (0 = none)
	LazyQuotes bool
}

// ReadCSV parses CSV from r. The first row is the header; every following
// row becomes an ingest.Row keyed by the normalized header names. Rows
// shorter than the header leave the missing columns unset.
func ReadCSV(r io.Reader, opts CSVOptions) ([]ingest.Row, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	if opts.Comment != 0 {
		reader.Comment = opts.Comment
	}
	reader.LazyQuotes = opts.LazyQuotes
	reader.FieldsPerRecord = -1 // allow variable fields

	var header []string
	var rows []ingest.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "csv: read row")
		}

		if header == nil {
			header = normalizeHeader(record)
			continue
		}
		rows = append(rows, zipRow(header, record))
	}

	if header == nil {
		return nil, eris.New("csv: file has no header row")
	}
	return rows, nil
}

// normalizeHeader lowercases and trims column names so synonym resolution
// in the ingestor is case-insensitive.
func normalizeHeader(record []string) []string {
	header := make([]string, len(record))
	for i, col := range record {
		header[i] = strings.ToLower(strings.TrimSpace(col))
	}
	return header
}

func zipRow(header, record []string) ingest.Row {
	row := make(ingest.Row, len(header))
	for i, col := range header {
		if col == "" || i >= len(record) {
			continue
		}
		row[col] = record[i]
	}
	return row
}
