// Package server exposes an elimination engine as a read-only JSON API.
//
//	GET /teams                     every team's result, division order
//	GET /teams/{name}              one team's result
//	GET /teams/{name}/certificate  certificate with its arithmetic proof
//	GET /standings                 standings joined with results
//	GET /summary                   division summary
//	GET /healthz                   liveness
//
// Unknown teams yield 404 with a JSON error body.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/pennant/division"
	"github.com/katalvlaran/pennant/elimination"
	"github.com/katalvlaran/pennant/logging"
	"github.com/katalvlaran/pennant/report"
)

// ShutdownTimeout bounds graceful shutdown in ListenAndServe.
const ShutdownTimeout = 5 * time.Second

type handler struct {
	engine *elimination.Engine
	logger *slog.Logger
}

// Standing is one row of GET /standings.
type Standing struct {
	Team       string `json:"team"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	Remaining  int    `json:"remaining"`
	MaxWins    int    `json:"max_wins"`
	Eliminated bool   `json:"eliminated"`
}

// Certificate is the body of GET /teams/{name}/certificate.
type Certificate struct {
	Team        string             `json:"team"`
	Eliminated  bool               `json:"eliminated"`
	Certificate []string           `json:"certificate"`
	Method      elimination.Method `json:"method"`
	Proof       *elimination.Proof `json:"proof,omitempty"`
}

type errorBody struct {
	Error string `json:"error"`
}

// NewRouter wires the API routes for e. A nil logger disables request logs.
func NewRouter(e *elimination.Engine, logger *slog.Logger) *mux.Router {
	if logger == nil {
		logger = logging.Discard()
	}
	h := &handler{engine: e, logger: logger}

	r := mux.NewRouter()
	r.Use(h.logRequests)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "method not allowed"})
	})

	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	r.HandleFunc("/teams", h.teams).Methods(http.MethodGet)
	r.HandleFunc("/teams/{name}", h.team).Methods(http.MethodGet)
	r.HandleFunc("/teams/{name}/certificate", h.certificate).Methods(http.MethodGet)
	r.HandleFunc("/standings", h.standings).Methods(http.MethodGet)
	r.HandleFunc("/summary", h.summary).Methods(http.MethodGet)

	return r
}

// ListenAndServe serves handler on addr until ctx is cancelled, then shuts
// down gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	logger.Info("server stopped")

	return nil
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) teams(w http.ResponseWriter, _ *http.Request) {
	results, err := h.engine.Results()
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *handler) team(w http.ResponseWriter, r *http.Request) {
	res, err := h.engine.Result(mux.Vars(r)["name"])
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handler) certificate(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	res, err := h.engine.Result(name)
	if err != nil {
		h.fail(w, err)
		return
	}
	body := Certificate{
		Team:        res.Team,
		Eliminated:  res.Eliminated,
		Certificate: res.Certificate,
		Method:      res.Method,
	}
	if res.Eliminated {
		p, err := elimination.VerifyCertificate(h.engine.Division(), name, res.Certificate)
		if err != nil {
			h.fail(w, err)
			return
		}
		body.Proof = &p
	}
	writeJSON(w, http.StatusOK, body)
}

func (h *handler) standings(w http.ResponseWriter, _ *http.Request) {
	results, err := h.engine.Results()
	if err != nil {
		h.fail(w, err)
		return
	}
	teams := h.engine.Division().Teams()
	out := make([]Standing, len(teams))
	for i, t := range teams {
		out[i] = Standing{
			Team:       t.Name,
			Wins:       t.Wins,
			Losses:     t.Losses,
			Remaining:  t.Remaining,
			MaxWins:    t.MaxWins(),
			Eliminated: results[i].Eliminated,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handler) summary(w http.ResponseWriter, _ *http.Request) {
	results, err := h.engine.Results()
	if err != nil {
		h.fail(w, err)
		return
	}
	s, err := report.Summarize(h.engine.Division(), results)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// fail maps err to a status code and writes it as JSON.
func (h *handler) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, division.ErrUnknownTeam) {
		status = http.StatusNotFound
	} else {
		h.logger.Error("request failed", "error", err)
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
