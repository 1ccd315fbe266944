package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/clubstats/football-stats-api/internal/logic"
	"github.com/clubstats/football-stats-api/internal/models"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Check all dependencies
	checks := map[string]bool{
		"postgres":   h.pg != nil && h.pg.Ping(ctx) == nil,
		"clickhouse": h.ch != nil && h.ch.Ping(ctx) == nil,
		"redis":      h.redis != nil && h.redis.Ping(ctx).Err() == nil,
	}

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	queueDepth := 0
	if h.pool != nil {
		queueDepth = h.pool.QueueDepth()
	}

	w.Header().Set("Content-Type", "application/json")
	if !allHealthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ready":      allHealthy,
		"checks":     checks,
		"queueDepth": queueDepth,
	})
}

// NoStore marks every response as non-cacheable so no intermediate cache
// serves a stale leaderboard.
func NoStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// successResponse wraps data in the {success, data} envelope.
func (h *Handler) successResponse(w http.ResponseWriter, data interface{}) {
	h.jsonResponse(w, http.StatusOK, models.LeaderboardResponse{Success: true, Data: data})
}

// serviceError maps logic sentinels to statuses. Anything unexpected is
// logged and reported as a 500 with a generic message.
func (h *Handler) serviceError(w http.ResponseWriter, err error, message string, keysAndValues ...interface{}) {
	switch {
	case errors.Is(err, logic.ErrNotFound):
		h.errorResponse(w, http.StatusNotFound, "Not found")
	case errors.Is(err, logic.ErrFixturesExist):
		h.errorResponse(w, http.StatusConflict, logic.ErrFixturesExist.Error())
	case errors.Is(err, logic.ErrConflict):
		h.errorResponse(w, http.StatusConflict, logic.ErrConflict.Error())
	case errors.Is(err, logic.ErrNotEnoughTeams):
		h.errorResponse(w, http.StatusBadRequest, logic.ErrNotEnoughTeams.Error())
	default:
		h.logger.Errorw(message, append(keysAndValues, "error", err)...)
		h.errorResponse(w, http.StatusInternalServerError, message)
	}
}

// uuidParam reads a path parameter that must be a UUID.
func (h *Handler) uuidParam(w http.ResponseWriter, r *http.Request, name, label string) (string, bool) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		h.errorResponse(w, http.StatusBadRequest, "Missing "+label+" ID")
		return "", false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid "+label+" ID")
		return "", false
	}
	return id.String(), true
}

// decodeBody reads a size-limited JSON body into dst and validates it.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.errorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return false
	}
	if err := h.validator.Struct(dst); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return false
	}
	return true
}
