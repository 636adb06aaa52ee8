package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/petuhovskiy/lootkit/internal/log"
	"github.com/petuhovskiy/lootkit/internal/models"
	"github.com/petuhovskiy/lootkit/internal/tables"
	"github.com/petuhovskiy/lootkit/internal/wrand"
)

type picker interface {
	Pick(ctx context.Context, name string) (*models.Draw, error)
	Names(ctx context.Context) ([]string, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHandler serves the pick API. feed may be nil.
func NewHandler(p picker, feed http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/pick", pickHandler(p))
	mux.HandleFunc("/tables", tablesHandler(p))
	if feed != nil {
		mux.Handle("/feed", feed)
	}
	return mux
}

func pickHandler(p picker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
			return
		}

		name := r.URL.Query().Get("table")
		if name == "" {
			writeError(w, http.StatusBadRequest, errors.New("table query parameter is required"))
			return
		}

		ctx := log.Into(r.Context(), "pick")
		draw, err := p.Pick(ctx, name)
		if err != nil {
			status := statusFor(err)
			if status == http.StatusInternalServerError {
				log.Error(ctx, "pick failed", zap.String("table", name), zap.Error(err))
			}
			writeError(w, status, err)
			return
		}

		writeJSON(w, http.StatusOK, draw)
	}
}

func tablesHandler(p picker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := p.Names(r.Context())
		if err != nil {
			log.Error(r.Context(), "failed to list tables", zap.Error(err))
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, names)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, tables.ErrUnknownTable):
		return http.StatusNotFound
	case errors.Is(err, wrand.ErrEmptySequence),
		errors.Is(err, wrand.ErrDegenerateWeights),
		errors.Is(err, wrand.ErrInvalidWeight):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
