//go:build !integration

package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/prospect-cli/internal/config"
	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/scorer"
)

func TestMergeCmd_Metadata(t *testing.T) {
	assert.Equal(t, "merge", mergeCmd.Use)
	assert.NotEmpty(t, mergeCmd.Short)

	for _, name := range []string{"companies", "people", "format", "output", "limit", "sizes", "industries", "locations", "seniority", "priority", "search"} {
		assert.NotNil(t, mergeCmd.Flags().Lookup(name), name)
	}
}

func TestSplitAndTrim(t *testing.T) {
	assert.Nil(t, splitAndTrim(""))
	assert.Equal(t, []string{"a", "b"}, splitAndTrim("a,b"))
	assert.Equal(t, []string{"a", "b"}, splitAndTrim(" a , b "))
	assert.Equal(t, []string{"a"}, splitAndTrim("a,,"))
	assert.Equal(t, []string{"Small (1-49)", "Medium (50-199)"}, splitAndTrim("Small (1-49),Medium (50-199)"))
}

func TestMergeCriteria(t *testing.T) {
	mergeSizes = "Small (1-49)"
	mergeIndustries = "Software,Retail"
	mergeLocations = "TX"
	mergeSeniorities = "C-Suite,vp"
	mergePriorities = "High"
	mergeSearch = "acme"
	defer func() {
		mergeSizes, mergeIndustries, mergeLocations = "", "", ""
		mergeSeniorities, mergePriorities, mergeSearch = "", "", ""
	}()

	c := mergeCriteria()
	assert.Equal(t, []string{"Small (1-49)"}, c.CompanySizes)
	assert.Equal(t, []string{"Software", "Retail"}, c.Industries)
	assert.Equal(t, []string{"TX"}, c.Locations)
	// Seniority values parse case-insensitively.
	assert.Equal(t, []model.Seniority{model.SeniorityCSuite, model.SeniorityVP}, c.Seniorities)
	assert.Equal(t, []model.Priority{model.PriorityHigh}, c.Priorities)
	assert.Equal(t, "acme", c.SearchTerm)
}

func TestOutputRecords(t *testing.T) {
	records := []model.MergedRecord{
		{
			Company:       model.Company{Name: "Acme", Industry: "Software", State: "TX"},
			Contacts:      []model.Person{{FullName: "Jane Doe", Title: "CTO"}},
			ContactCount:  1,
			SalesFitScore: 80,
			Priority:      model.PriorityMedium,
		},
	}

	t.Run("csv", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		require.NoError(t, outputRecords(records, "csv", path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Acme")
		assert.Contains(t, string(data), "Jane Doe (CTO)")
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.json")
		require.NoError(t, outputRecords(records, "json", path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var decoded []model.MergedRecord
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Len(t, decoded, 1)
		assert.Equal(t, "Acme", decoded[0].Company.Name)
	})

	t.Run("table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, outputRecords(records, "table", path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "SCORE")
		assert.Contains(t, string(data), "Acme")
	})

	t.Run("empty table", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, outputRecords(nil, "table", path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "No merged records.")
	})

	t.Run("unsupported format", func(t *testing.T) {
		err := outputRecords(records, "xml", filepath.Join(t.TempDir(), "out.xml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
	})
}

func TestMergeCmd_EndToEnd(t *testing.T) {
	cfg = &config.Config{
		Scorer: scorer.DefaultConfig(),
		Ingest: config.IngestConfig{ContactScoreDefault: "fixed", FixedContactScore: 50},
	}

	dir := t.TempDir()
	companiesPath := filepath.Join(dir, "companies.csv")
	peoplePath := filepath.Join(dir, "people.csv")
	outPath := filepath.Join(dir, "out.json")

	require.NoError(t, os.WriteFile(companiesPath, []byte(
		"name,industry,employee_count,state,country\n"+
			"Acme,Software,120,TX,USA\n"+
			"Beta,Retail,20,NY,USA\n"+
			"Lonely,Biotech,5,CA,USA\n",
	), 0o644))
	require.NoError(t, os.WriteFile(peoplePath, []byte(
		"full_name,company,title,seniority\n"+
			"Jane Doe,Acme,CTO,C-Suite\n"+
			"Bob Smith,beta,Analyst,Junior\n",
	), 0o644))

	mergeCompaniesPath = companiesPath
	mergePeoplePath = peoplePath
	mergeFormat = "json"
	mergeOutput = outPath
	defer func() {
		mergeCompaniesPath, mergePeoplePath, mergeOutput = "", "", ""
		mergeFormat = "table"
	}()

	mergeCmd.SetContext(t.Context())
	require.NoError(t, mergeCmd.RunE(mergeCmd, nil))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var records []model.MergedRecord
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 2)
	// Ordered by score descending; Lonely had no contacts.
	assert.Equal(t, "Acme", records[0].Company.Name)
	assert.Equal(t, "Beta", records[1].Company.Name)
}
