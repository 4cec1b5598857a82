// Package server exposes the address lookup over HTTP together with health
// and metrics endpoints.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pdx-civic/zonelookup/internal/geocoding"
	"github.com/pdx-civic/zonelookup/internal/models"
	"github.com/pdx-civic/zonelookup/internal/zoning"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LookupService is the lookup surface the server exposes. It is implemented
// by zoning.Service.
type LookupService interface {
	Lookup(ctx context.Context, address string) (*models.LookupReport, error)
	LookupBuilding(ctx context.Context, lat, lon float64) *models.BuildingInfo
	LookupTaxlot(ctx context.Context, lat, lon float64) *models.Feature
}

// Server serves lookup requests over HTTP.
type Server struct {
	log    *slog.Logger
	svc    LookupService
	router chi.Router
	port   int
}

// lookupResponse is the JSON aggregate returned by the lookup endpoint.
// Building and taxlot data are optional; absence is omitted.
type lookupResponse struct {
	Report   *models.LookupReport `json:"report"`
	Building *models.BuildingInfo `json:"building,omitempty"`
	Taxlot   map[string]any       `json:"taxlot,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// New creates a Server exposing the lookup API, a health check and the
// Prometheus metrics of the given registry.
func New(log *slog.Logger, svc LookupService, reg *prometheus.Registry, port int) *Server {
	s := &Server{
		log:  log,
		svc:  svc,
		port: port,
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Get("/healthz", s.handleHealth)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	router.Get("/api/v1/lookup", s.handleLookup)
	s.router = router

	return s
}

// Handler returns the server's HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and blocks until the context is canceled or the
// listener fails. Shutdown is graceful.
func (s *Server) Run(ctx context.Context) error {
	const (
		readTimeout     = 5 * time.Second
		writeTimeout    = 30 * time.Second
		shutdownTimeout = 5 * time.Second
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	go func() {
		<-ctx.Done()
		s.log.InfoContext(ctx, "Shutting down lookup server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.ErrorContext(ctx, "Server shutdown failed", "error", err)
		}
	}()

	s.log.InfoContext(ctx, "Starting lookup server", "port", s.port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("lookup server failed: %w", err)
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		s.log.Error("failed to write reply", "error", err)
	}
}

// handleLookup runs the full lookup for the address query parameter. The
// zoning path maps geocoder misses and empty zoning data to 404 and upstream
// transport failures to 502; building and taxlot absence only thins the
// response body.
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	address := r.URL.Query().Get("address")
	if address == "" {
		s.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: "address query parameter is required"})
		return
	}

	rep, err := s.svc.Lookup(ctx, address)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, geocoding.ErrNoMatch) || errors.Is(err, zoning.ErrNoZoningData) {
			status = http.StatusNotFound
		}
		s.log.ErrorContext(ctx, "Lookup failed", "address", address, "error", err)
		s.writeJSON(ctx, w, status, errorResponse{Error: err.Error()})
		return
	}

	resp := lookupResponse{Report: rep}
	resp.Building = s.svc.LookupBuilding(ctx, rep.Location.Latitude, rep.Location.Longitude)
	if taxlot := s.svc.LookupTaxlot(ctx, rep.Location.Latitude, rep.Location.Longitude); taxlot != nil {
		resp.Taxlot = taxlot.Attributes
	}

	s.writeJSON(ctx, w, http.StatusOK, resp)
}

func (s *Server) writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.ErrorContext(ctx, "failed to encode response", "error", err)
	}
}
