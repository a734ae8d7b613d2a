package main

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/prospect-cli/internal/config"
	"github.com/sells-group/prospect-cli/internal/fetcher"
	"github.com/sells-group/prospect-cli/internal/ingest"
	"github.com/sells-group/prospect-cli/internal/merge"
	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/scorer"
)

// dataset holds one ingested and merged pair of input files.
type dataset struct {
	Companies        []model.Company
	People           []model.Person
	Records          []model.MergedRecord
	DroppedCompanies int
	DroppedPeople    int
}

// scoreSource builds the contact-score default source from config.
func scoreSource(cfg config.IngestConfig) ingest.ScoreSource {
	if strings.EqualFold(cfg.ContactScoreDefault, "fixed") {
		return ingest.FixedScore(cfg.FixedContactScore)
	}
	return ingest.NewRandomScores(cfg.Seed)
}

// loadDataset reads both input files in parallel, ingests them, and runs
// the merge.
func loadDataset(ctx context.Context, companiesPath, peoplePath string) (*dataset, error) {
	eng, err := scorer.New(cfg.Scorer)
	if err != nil {
		return nil, err
	}

	var companyRows, peopleRows []ingest.Row
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := fetcher.ReadFile(companiesPath)
		if err != nil {
			return eris.Wrap(err, "load companies")
		}
		companyRows = rows
		return nil
	})
	g.Go(func() error {
		rows, err := fetcher.ReadFile(peoplePath)
		if err != nil {
			return eris.Wrap(err, "load people")
		}
		peopleRows = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ing := ingest.New(scoreSource(cfg.Ingest))
	companies, droppedCompanies := ing.Companies(companyRows)
	people, droppedPeople := ing.People(peopleRows)

	ds := &dataset{
		Companies:        companies,
		People:           people,
		Records:          merge.Merge(companies, people, eng),
		DroppedCompanies: droppedCompanies,
		DroppedPeople:    droppedPeople,
	}

	zap.L().Info("dataset loaded",
		zap.Int("companies", len(companies)),
		zap.Int("people", len(people)),
		zap.Int("merged", len(ds.Records)),
		zap.Int("dropped_companies", droppedCompanies),
		zap.Int("dropped_people", droppedPeople),
	)
	return ds, nil
}
