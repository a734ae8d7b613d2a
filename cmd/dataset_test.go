//go:build !integration

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/prospect-cli/internal/config"
	"github.com/sells-group/prospect-cli/internal/ingest"
	"github.com/sells-group/prospect-cli/internal/scorer"
)

func TestScoreSource(t *testing.T) {
	fixed := scoreSource(config.IngestConfig{ContactScoreDefault: "fixed", FixedContactScore: 42})
	require.IsType(t, ingest.FixedScore(0), fixed)
	assert.Equal(t, 42, fixed.Next())

	random := scoreSource(config.IngestConfig{ContactScoreDefault: "random", Seed: 7})
	n := random.Next()
	assert.GreaterOrEqual(t, n, 1)
	assert.LessOrEqual(t, n, 100)

	// Unrecognized values fall back to random.
	assert.NotPanics(t, func() { scoreSource(config.IngestConfig{ContactScoreDefault: ""}).Next() })
}

func TestLoadDataset(t *testing.T) {
	cfg = &config.Config{
		Scorer: scorer.DefaultConfig(),
		Ingest: config.IngestConfig{ContactScoreDefault: "fixed", FixedContactScore: 50},
	}

	dir := t.TempDir()
	companiesPath := filepath.Join(dir, "companies.csv")
	peoplePath := filepath.Join(dir, "people.csv")

	require.NoError(t, os.WriteFile(companiesPath, []byte(
		"name,industry\nAcme,Software\n,\n",
	), 0o644))
	require.NoError(t, os.WriteFile(peoplePath, []byte(
		"full_name,company\nJane Doe,Acme\n,Acme\n",
	), 0o644))

	ds, err := loadDataset(t.Context(), companiesPath, peoplePath)
	require.NoError(t, err)

	assert.Len(t, ds.Companies, 1)
	assert.Len(t, ds.People, 1)
	assert.Len(t, ds.Records, 1)
	assert.Equal(t, 1, ds.DroppedCompanies)
	assert.Equal(t, 1, ds.DroppedPeople)
	assert.Equal(t, 50.0, ds.Records[0].AverageContactScore)
}

func TestLoadDataset_MissingFile(t *testing.T) {
	cfg = &config.Config{
		Scorer: scorer.DefaultConfig(),
		Ingest: config.IngestConfig{ContactScoreDefault: "fixed"},
	}

	dir := t.TempDir()
	peoplePath := filepath.Join(dir, "people.csv")
	require.NoError(t, os.WriteFile(peoplePath, []byte("full_name,company\nJane,Acme\n"), 0o644))

	_, err := loadDataset(t.Context(), filepath.Join(dir, "absent.csv"), peoplePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load companies")
}
