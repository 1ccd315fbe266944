package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clubstats/football-stats-api/internal/models"
)

// IngestMatchEvents handles POST /api/v1/admin/matches/{id}/events
// @Summary Ingest Match Events
// @Description Accepts one event or an array of events from the match sheet. A form-encoded body is read as a single event.
// @Tags Ingestion
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Match ID"
// @Param body body []models.RawEvent true "Events"
// @Success 202 {object} map[string]interface{} "Accepted"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /admin/matches/{id}/events [post]
func (h *Handler) IngestMatchEvents(w http.ResponseWriter, r *http.Request) {
	matchID, ok := h.uuidParam(w, r, "id", "match")
	if !ok {
		return
	}

	// Limit request body to 1MB to prevent DoS
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.errorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	defer r.Body.Close()

	raw, err := decodeRawEvents(body, r.Header.Get("Content-Type"))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(raw) == 0 {
		h.errorResponse(w, http.StatusBadRequest, "No events in request")
		return
	}

	accepted, rejected := 0, 0
	var problems []string
	for i := range raw {
		ev := &raw[i]
		ev.MatchID = matchID

		if err := h.validateRawEvent(ev); err != nil {
			rejected++
			problems = append(problems, fmt.Sprintf("event %d: %v", i, err))
			continue
		}

		if !h.pool.Enqueue(toMatchEvent(ev)) {
			h.logger.Warnw("Worker pool queue full, dropping remaining events", "match", matchID, "remaining", len(raw)-i)
			rejected += len(raw) - i
			break
		}
		accepted++
	}

	if accepted == 0 {
		h.jsonResponse(w, http.StatusBadRequest, map[string]interface{}{
			"error":    "No events accepted",
			"rejected": rejected,
			"problems": problems,
		})
		return
	}

	h.jsonResponse(w, http.StatusAccepted, map[string]interface{}{
		"status":   "accepted",
		"accepted": accepted,
		"rejected": rejected,
		"problems": problems,
	})
}

// decodeRawEvents accepts a JSON object, a JSON array or a form body.
func decodeRawEvents(body []byte, contentType string) ([]models.RawEvent, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		values, err := url.ParseQuery(string(trimmed))
		if err != nil {
			return nil, fmt.Errorf("invalid form body: %w", err)
		}
		ev, err := parseFormToEvent(values)
		if err != nil {
			return nil, err
		}
		return []models.RawEvent{ev}, nil
	}

	switch trimmed[0] {
	case '[':
		var events []models.RawEvent
		if err := json.Unmarshal(trimmed, &events); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return events, nil
	case '{':
		var ev models.RawEvent
		if err := json.Unmarshal(trimmed, &ev); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return []models.RawEvent{ev}, nil
	}
	return nil, fmt.Errorf("invalid JSON: expected object or array")
}

func parseFormToEvent(form url.Values) (models.RawEvent, error) {
	ev := models.RawEvent{
		Type:            models.EventType(form.Get("type")),
		PlayerID:        form.Get("player_id"),
		PlayerName:      form.Get("player_name"),
		TeamID:          form.Get("team_id"),
		RelatedPlayerID: form.Get("related_player_id"),
		Detail:          form.Get("detail"),
	}
	if m := form.Get("minute"); m != "" {
		n, err := strconv.Atoi(strings.SplitN(m, "+", 2)[0])
		if err != nil {
			return ev, fmt.Errorf("invalid minute %q", m)
		}
		ev.Minute = models.FlexInt(n)
	}
	return ev, nil
}

func (h *Handler) validateRawEvent(ev *models.RawEvent) error {
	if err := h.validator.Struct(ev); err != nil {
		return err
	}
	if !models.ValidEventTypes[ev.Type] {
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	if ev.PlayerID == "" && strings.TrimSpace(ev.PlayerName) == "" {
		return fmt.Errorf("player_id or player_name is required")
	}
	for _, id := range []string{ev.PlayerID, ev.TeamID, ev.RelatedPlayerID} {
		if id == "" {
			continue
		}
		if _, err := uuid.Parse(id); err != nil {
			return fmt.Errorf("invalid id %q", id)
		}
	}
	return nil
}

func toMatchEvent(ev *models.RawEvent) *models.MatchEvent {
	return &models.MatchEvent{
		ID:              uuid.New(),
		MatchID:         ev.MatchID,
		Type:            ev.Type,
		Minute:          int(ev.Minute),
		PlayerID:        ev.PlayerID,
		PlayerName:      strings.TrimSpace(ev.PlayerName),
		TeamID:          ev.TeamID,
		RelatedPlayerID: ev.RelatedPlayerID,
		Detail:          ev.Detail,
		RecordedAt:      time.Now().UTC(),
	}
}
