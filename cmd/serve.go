package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/prospect-cli/internal/export"
	"github.com/sells-group/prospect-cli/internal/fetcher"
	"github.com/sells-group/prospect-cli/internal/ingest"
	"github.com/sells-group/prospect-cli/internal/merge"
	"github.com/sells-group/prospect-cli/internal/model"
	"github.com/sells-group/prospect-cli/internal/scorer"
	"github.com/sells-group/prospect-cli/internal/stats"
	"github.com/sells-group/prospect-cli/pkg/chat"
	"github.com/sells-group/prospect-cli/pkg/geocode"
	"github.com/sells-group/prospect-cli/pkg/jobs"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		eng, err := scorer.New(cfg.Scorer)
		if err != nil {
			return err
		}

		srv := newDashboard(eng)
		if cfg.Geocode.Key != "" {
			srv.geocoder = geocode.NewClient(cfg.Geocode.Key,
				geocode.WithBaseURL(cfg.Geocode.BaseURL),
				geocode.WithRateLimit(cfg.Geocode.Rate, cfg.Geocode.Burst),
				geocode.WithCache(geocode.NewCache()),
			)
		}
		if cfg.Chat.Key != "" {
			srv.chat = chat.NewClient(cfg.Chat.Key,
				chat.WithModel(cfg.Chat.Model),
				chat.WithMaxTokens(cfg.Chat.MaxTokens),
			)
		}
		if cfg.Jobs.AppID != "" && cfg.Jobs.Key != "" {
			srv.jobs = jobs.NewClient(cfg.Jobs.AppID, cfg.Jobs.Key,
				jobs.WithBaseURL(cfg.Jobs.BaseURL),
				jobs.WithCountry(cfg.Jobs.Country),
			)
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		httpSrv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: srv.routes(),
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = httpSrv.Shutdown(shutdownCtx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}

// dashboard holds the in-memory dataset behind the API. Uploading replaces
// the dataset wholesale; the generation counter guards against a stale
// in-flight upload overwriting a newer one.
type dashboard struct {
	engine *scorer.Engine

	mu         sync.RWMutex
	generation uint64
	datasetID  string
	records    []model.MergedRecord

	geocoder *geocode.Client
	chat     chat.Client
	jobs     jobs.Client
}

func newDashboard(eng *scorer.Engine) *dashboard {
	return &dashboard{engine: eng}
}

func (d *dashboard) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/datasets", d.handleUpload)
		r.Get("/merged", d.handleMerged)
		r.Get("/stats", d.handleStats)
		r.Get("/options", d.handleOptions)
		r.Post("/filter", d.handleFilter)
		r.Get("/export", d.handleExport)
		r.Get("/map", d.handleMap)
		r.Post("/chat", d.handleChat)
		r.Get("/jobs", d.handleJobs)
	})

	return r
}

// handleUpload accepts multipart form files "companies" and "people",
// ingests and merges them, and replaces the current dataset.
func (d *dashboard) handleUpload(w http.ResponseWriter, r *http.Request) {
	// Claim a generation before the slow parse so a newer upload that
	// finishes first wins.
	d.mu.Lock()
	d.generation++
	gen := d.generation
	d.mu.Unlock()

	companiesPath, cleanupCompanies, err := saveUpload(r, "companies")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer cleanupCompanies()

	peoplePath, cleanupPeople, err := saveUpload(r, "people")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	defer cleanupPeople()

	companyRows, err := fetcher.ReadFile(companiesPath)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	peopleRows, err := fetcher.ReadFile(peoplePath)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	ing := ingest.New(scoreSource(cfg.Ingest))
	companies, droppedCompanies := ing.Companies(companyRows)
	people, droppedPeople := ing.People(peopleRows)
	records := merge.Merge(companies, people, d.engine)

	id := uuid.New().String()

	d.mu.Lock()
	if gen < d.generation {
		// A newer upload already replaced the dataset; discard this one.
		d.mu.Unlock()
		writeJSON(w, http.StatusConflict, map[string]string{"error": "superseded by a newer upload"})
		return
	}
	d.datasetID = id
	d.records = records
	d.mu.Unlock()

	zap.L().Info("dataset replaced",
		zap.String("dataset_id", id),
		zap.Int("merged", len(records)),
	)

	writeJSON(w, http.StatusCreated, map[string]any{
		"dataset_id":        id,
		"merged":            len(records),
		"companies":         len(companies),
		"people":            len(people),
		"dropped_companies": droppedCompanies,
		"dropped_people":    droppedPeople,
	})
}

func (d *dashboard) handleMerged(w http.ResponseWriter, r *http.Request) {
	records, ok := d.snapshot()
	if !ok {
		writeError(w, http.StatusNotFound, eris.New("no dataset uploaded"))
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (d *dashboard) handleStats(w http.ResponseWriter, r *http.Request) {
	records, ok := d.snapshot()
	if !ok {
		writeError(w, http.StatusNotFound, eris.New("no dataset uploaded"))
		return
	}
	writeJSON(w, http.StatusOK, stats.Aggregate(records))
}

func (d *dashboard) handleOptions(w http.ResponseWriter, r *http.Request) {
	records, ok := d.snapshot()
	if !ok {
		writeError(w, http.StatusNotFound, eris.New("no dataset uploaded"))
		return
	}
	writeJSON(w, http.StatusOK, stats.Options(records))
}

func (d *dashboard) handleFilter(w http.ResponseWriter, r *http.Request) {
	records, ok := d.snapshot()
	if !ok {
		writeError(w, http.StatusNotFound, eris.New("no dataset uploaded"))
		return
	}

	var criteria stats.Criteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		writeError(w, http.StatusBadRequest, eris.Wrap(err, "invalid criteria"))
		return
	}
	writeJSON(w, http.StatusOK, stats.Filter(records, criteria))
}

func (d *dashboard) handleExport(w http.ResponseWriter, r *http.Request) {
	records, ok := d.snapshot()
	if !ok {
		writeError(w, http.StatusNotFound, eris.New("no dataset uploaded"))
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="merged.csv"`)
	if err := export.WriteCSV(w, records); err != nil {
		zap.L().Error("export failed", zap.Error(err))
	}
}

// mapPoint is one geocoded company for the map view.
type mapPoint struct {
	Lat          float64        `json:"lat"`
	Lng          float64        `json:"lng"`
	Company      string         `json:"company"`
	ContactCount int            `json:"contact_count"`
	Priority     model.Priority `json:"priority"`
}

func (d *dashboard) handleMap(w http.ResponseWriter, r *http.Request) {
	records, ok := d.snapshot()
	if !ok {
		writeError(w, http.StatusNotFound, eris.New("no dataset uploaded"))
		return
	}
	if d.geocoder == nil {
		writeError(w, http.StatusServiceUnavailable, eris.New("geocoding not configured"))
		return
	}

	const maxPoints = 10
	points := make([]mapPoint, 0, maxPoints)
	for _, rec := range records {
		if len(points) == maxPoints {
			break
		}
		result, err := d.geocoder.Geocode(r.Context(), geocode.AddressInput{
			City:    rec.Company.City,
			State:   rec.Company.State,
			Country: rec.Company.Country,
		})
		if err != nil {
			// Degrade to the companies we could place.
			zap.L().Warn("geocode failed", zap.String("company", rec.Company.Name), zap.Error(err))
			continue
		}
		pt := result.Point()
		if pt == nil {
			continue
		}
		points = append(points, mapPoint{
			Lat:          pt.Y(),
			Lng:          pt.X(),
			Company:      rec.Company.Name,
			ContactCount: rec.ContactCount,
			Priority:     rec.Priority,
		})
	}
	writeJSON(w, http.StatusOK, points)
}

func (d *dashboard) handleChat(w http.ResponseWriter, r *http.Request) {
	records, ok := d.snapshot()
	if !ok {
		writeError(w, http.StatusNotFound, eris.New("no dataset uploaded"))
		return
	}
	if d.chat == nil {
		writeError(w, http.StatusServiceUnavailable, eris.New("chat not configured"))
		return
	}

	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == "" {
		writeError(w, http.StatusBadRequest, eris.New("question is required"))
		return
	}

	answer, err := d.chat.Ask(r.Context(), datasetContext(stats.Aggregate(records), records), req.Question)
	if err != nil {
		zap.L().Error("chat failed", zap.Error(err))
		writeJSON(w, http.StatusOK, map[string]string{
			"error": "The assistant is unavailable right now. Please try again.",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

func (d *dashboard) handleJobs(w http.ResponseWriter, r *http.Request) {
	if d.jobs == nil {
		writeError(w, http.StatusServiceUnavailable, eris.New("job search not configured"))
		return
	}
	company := r.URL.Query().Get("company")
	if company == "" {
		writeError(w, http.StatusBadRequest, eris.New("company is required"))
		return
	}

	postings, err := d.jobs.Search(r.Context(), company)
	if err != nil {
		zap.L().Warn("job search failed", zap.String("company", company), zap.Error(err))
		writeJSON(w, http.StatusOK, map[string]any{
			"postings": []jobs.Posting{},
			"error":    "Job listings are unavailable right now.",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"postings": postings})
}

// snapshot returns the current merged records, or false when no dataset has
// been uploaded yet.
func (d *dashboard) snapshot() ([]model.MergedRecord, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.datasetID == "" {
		return nil, false
	}
	return d.records, true
}

// saveUpload copies one multipart file field to a temp file and returns its
// path plus a cleanup func. The original filename's extension is kept so
// the fetcher can dispatch on it.
func saveUpload(r *http.Request, field string) (string, func(), error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", nil, eris.Wrapf(err, "missing %q file", field)
	}
	defer file.Close() //nolint:errcheck

	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", nil, eris.Wrap(err, "create temp file")
	}
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()           //nolint:errcheck
		os.Remove(tmp.Name()) //nolint:errcheck
		return "", nil, eris.Wrap(err, "save upload")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name()) //nolint:errcheck
		return "", nil, eris.Wrap(err, "close temp file")
	}

	path := tmp.Name()
	return path, func() { _ = os.Remove(path) }, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
