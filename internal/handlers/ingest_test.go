package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/clubstats/football-stats-api/internal/models"
)

func postEvents(h *Handler, matchID, contentType, body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Post("/admin/matches/{id}/events", h.IngestMatchEvents)

	req := httptest.NewRequest(http.MethodPost, "/admin/matches/"+matchID+"/events", strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIngestMatchEvents(t *testing.T) {
	playerID := uuid.NewString()

	tests := []struct {
		name         string
		contentType  string
		body         string
		capacity     int
		wantStatus   int
		wantAccepted int
	}{
		{
			name:         "single object",
			contentType:  "application/json",
			body:         `{"type":"goal","minute":"23","player_id":"` + playerID + `"}`,
			wantStatus:   http.StatusAccepted,
			wantAccepted: 1,
		},
		{
			name:         "array with one invalid",
			contentType:  "application/json",
			body:         `[{"type":"save","minute":40,"player_name":"Mary Earps"},{"type":"kill","player_name":"X"}]`,
			wantStatus:   http.StatusAccepted,
			wantAccepted: 1,
		},
		{
			name:         "form body",
			contentType:  "application/x-www-form-urlencoded",
			body:         "type=clean_sheet&minute=90&player_name=Mary+Earps",
			wantStatus:   http.StatusAccepted,
			wantAccepted: 1,
		},
		{
			name:        "no player reference",
			contentType: "application/json",
			body:        `{"type":"goal","minute":10}`,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "minute out of range",
			contentType: "application/json",
			body:        `{"type":"goal","minute":200,"player_name":"Alex"}`,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "malformed player id",
			contentType: "application/json",
			body:        `{"type":"goal","player_id":"not-a-uuid"}`,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "empty body",
			contentType: "application/json",
			body:        ``,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "not json",
			contentType: "application/json",
			body:        `goal at 23`,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:         "queue fills up",
			contentType:  "application/json",
			body:         `[{"type":"save","player_name":"A"},{"type":"save","player_name":"B"},{"type":"save","player_name":"C"}]`,
			capacity:     1,
			wantStatus:   http.StatusAccepted,
			wantAccepted: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queue := &MockIngestQueue{Capacity: tt.capacity}
			h := newTestHandler(Config{WorkerPool: queue})
			matchID := uuid.NewString()

			w := postEvents(h, matchID, tt.contentType, tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d; want %d (%s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if len(queue.Events) != tt.wantAccepted {
				t.Errorf("enqueued %d events; want %d", len(queue.Events), tt.wantAccepted)
			}
			if tt.wantStatus == http.StatusAccepted {
				body := decode(t, w)
				if int(body["accepted"].(float64)) != tt.wantAccepted {
					t.Errorf("accepted = %v; want %d", body["accepted"], tt.wantAccepted)
				}
			}
			for _, ev := range queue.Events {
				if ev.MatchID != matchID {
					t.Errorf("event match = %q; want path id %q", ev.MatchID, matchID)
				}
				if ev.ID == uuid.Nil || ev.RecordedAt.IsZero() {
					t.Error("event missing id or recorded_at")
				}
			}
		})
	}
}

func TestIngestMatchEventsInvalidMatch(t *testing.T) {
	queue := &MockIngestQueue{}
	h := newTestHandler(Config{WorkerPool: queue})

	w := postEvents(h, "match-1", "application/json", `{"type":"goal","player_name":"Alex"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", w.Code)
	}
	if len(queue.Events) != 0 {
		t.Error("events enqueued for an invalid match id")
	}
}

func TestToMatchEvent(t *testing.T) {
	raw := &models.RawEvent{
		Type:       models.EventGoal,
		MatchID:    "m1",
		Minute:     45,
		PlayerName: "  Alex Morgan ",
		Detail:     "header",
	}
	ev := toMatchEvent(raw)
	if ev.PlayerName != "Alex Morgan" || ev.Minute != 45 || ev.Detail != "header" || ev.Type != models.EventGoal {
		t.Errorf("toMatchEvent() = %+v", ev)
	}
	if other := toMatchEvent(raw); other.ID == ev.ID {
		t.Error("event ids must be unique")
	}
}

func TestParseFormToEvent(t *testing.T) {
	tests := []struct {
		form       string
		wantMinute models.FlexInt
		wantErr    bool
	}{
		{"type=goal&minute=45%2B2&player_name=A", 45, false},
		{"type=goal&player_name=A", 0, false},
		{"type=goal&minute=late", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.form, func(t *testing.T) {
			events, err := decodeRawEvents([]byte(tt.form), "application/x-www-form-urlencoded")
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeRawEvents() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && events[0].Minute != tt.wantMinute {
				t.Errorf("minute = %d; want %d", events[0].Minute, tt.wantMinute)
			}
		})
	}
}
