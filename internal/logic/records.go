package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clubstats/football-stats-api/internal/models"
)

type recordFetcher struct {
	pg     PgPool
	ch     driver.Conn
	logger *zap.SugaredLogger
}

// NewRecordFetcher reads participation records from Postgres and match
// events from the ClickHouse event log.
func NewRecordFetcher(pg PgPool, ch driver.Conn, logger *zap.SugaredLogger) RecordFetcher {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &recordFetcher{pg: pg, ch: ch, logger: logger}
}

// FetchParticipationRecords returns the records in scope. A record whose
// joined JSON cannot be decoded is skipped; a query error fails the fetch.
func (f *recordFetcher) FetchParticipationRecords(ctx context.Context, scope models.RecordScope) ([]models.ParticipationRecord, error) {
	query, args := BuildParticipationQuery(scope)

	rows, err := f.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("participation query failed: %w", err)
	}
	defer rows.Close()

	records := []models.ParticipationRecord{}
	for rows.Next() {
		var (
			rec                            models.ParticipationRecord
			statsJSON, playerJSON, matchJSON []byte
		)
		if err := rows.Scan(&rec.ID, &rec.PlayerID, &rec.MatchID, &rec.TeamID, &statsJSON, &playerJSON, &matchJSON); err != nil {
			return nil, fmt.Errorf("failed to scan participation: %w", err)
		}

		if err := decodeJoins(&rec, statsJSON, playerJSON, matchJSON); err != nil {
			f.logger.Warnw("Skipping participation with malformed join", "id", rec.ID, "error", err)
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("participation row iteration failed: %w", err)
	}

	return records, nil
}

func decodeJoins(rec *models.ParticipationRecord, statsJSON, playerJSON, matchJSON []byte) error {
	if len(statsJSON) > 0 {
		if err := json.Unmarshal(statsJSON, &rec.Stats); err != nil {
			return fmt.Errorf("player_stats: %w", err)
		}
	}
	if len(playerJSON) > 0 {
		if err := json.Unmarshal(playerJSON, &rec.Player); err != nil {
			return fmt.Errorf("players: %w", err)
		}
	}
	if len(matchJSON) > 0 {
		if err := json.Unmarshal(matchJSON, &rec.Match); err != nil {
			return fmt.Errorf("matches: %w", err)
		}
	}
	return nil
}

// FetchEvents reads match events from ClickHouse.
func (f *recordFetcher) FetchEvents(ctx context.Context, filter models.EventFilter) ([]models.MatchEvent, error) {
	query, args, err := BuildEventsQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := f.ch.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("events query failed: %w", err)
	}
	defer rows.Close()

	events := []models.MatchEvent{}
	for rows.Next() {
		var (
			ev         models.MatchEvent
			id         uuid.UUID
			eventType  string
			minute     uint16
			recordedAt time.Time
		)
		if err := rows.Scan(&id, &ev.MatchID, &eventType, &minute, &ev.PlayerID, &ev.PlayerName,
			&ev.TeamID, &ev.RelatedPlayerID, &ev.Detail, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		ev.ID = id
		ev.Type = models.EventType(eventType)
		ev.Minute = int(minute)
		ev.RecordedAt = recordedAt
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("event row iteration failed: %w", err)
	}

	return events, nil
}

// FetchTournamentMatches returns ids of a tournament's matches in status.
func (f *recordFetcher) FetchTournamentMatches(ctx context.Context, tournamentID, status string) ([]string, error) {
	rows, err := f.pg.Query(ctx, `
		SELECT id::text
		FROM matches
		WHERE tournament_id = $1::uuid AND status = $2
		ORDER BY match_date, id
	`, tournamentID, status)
	if err != nil {
		return nil, fmt.Errorf("tournament matches query failed: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan match id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("tournament matches iteration failed: %w", err)
	}
	return ids, nil
}
