package fetcher

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/ingest"
)

// ReadFile parses a tabular file by extension: .csv, .xlsx, or .xls.
// Unsupported extensions are a structural failure and return an error.
func ReadFile(path string) ([]ingest.Row, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, eris.Wrapf(err, "fetcher: open %s", path)
		}
		defer f.Close() //nolint:errcheck

		rows, err := ReadCSV(f, CSVOptions{})
		if err != nil {
			return nil, eris.Wrapf(err, "fetcher: parse %s", path)
		}
		zap.L().Debug("fetcher: parsed csv", zap.String("path", path), zap.Int("rows", len(rows)))
		return rows, nil

	case ".xlsx", ".xls":
		rows, err := ReadXLSX(path, XLSXOptions{})
		if err != nil {
			return nil, eris.Wrapf(err, "fetcher: parse %s", path)
		}
		zap.L().Debug("fetcher: parsed xlsx", zap.String("path", path), zap.Int("rows", len(rows)))
		return rows, nil

	default:
		return nil, eris.Errorf("fetcher: unsupported file format %q (use .csv, .xlsx, or .xls)", ext)
	}
}
