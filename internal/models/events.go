package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType tags a match event.
type EventType string

const (
	EventGoal         EventType = "goal"
	EventOwnGoal      EventType = "own_goal"
	EventCard         EventType = "card"
	EventSubstitution EventType = "substitution"
	EventSave         EventType = "save"
	EventCleanSheet   EventType = "clean_sheet"
)

// ValidEventTypes lists every event type accepted by ingestion.
var ValidEventTypes = map[EventType]bool{
	EventGoal:         true,
	EventOwnGoal:      true,
	EventCard:         true,
	EventSubstitution: true,
	EventSave:         true,
	EventCleanSheet:   true,
}

// RawEvent is an incoming match event posted by an admin's match sheet
type RawEvent struct {
	Type            EventType `json:"type" validate:"required"`
	MatchID         string    `json:"match_id" validate:"required"`
	Minute          FlexInt   `json:"minute" validate:"gte=0,lte=130"`
	PlayerID        string    `json:"player_id,omitempty"`
	PlayerName      string    `json:"player_name,omitempty"`
	TeamID          string    `json:"team_id,omitempty"`
	RelatedPlayerID string    `json:"related_player_id,omitempty"` // assist provider, player substituted off
	Detail          string    `json:"detail,omitempty"`            // card colour, save description
}

// MatchEvent is a persisted match event as stored in the ClickHouse event log.
// Save and clean sheet events historically identify the player by display
// name only; PlayerID is empty in that case.
type MatchEvent struct {
	ID              uuid.UUID `json:"id"`
	MatchID         string    `json:"match_id"`
	Type            EventType `json:"event_type"`
	Minute          int       `json:"minute"`
	PlayerID        string    `json:"player_id,omitempty"`
	PlayerName      string    `json:"player_name,omitempty"`
	TeamID          string    `json:"team_id,omitempty"`
	RelatedPlayerID string    `json:"related_player_id,omitempty"`
	Detail          string    `json:"detail,omitempty"`
	RecordedAt      time.Time `json:"recorded_at"`
}

// EventFilter narrows an event fetch. An empty MatchIDs slice means all matches.
type EventFilter struct {
	Type     EventType
	MatchIDs []string
}
