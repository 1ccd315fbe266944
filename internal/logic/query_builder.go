package logic

import (
	"fmt"
	"strings"

	"github.com/clubstats/football-stats-api/internal/models"
)

// participationSelect joins the stat row, player and match of every
// match_players row as JSON. player_stats comes back as a json_agg array
// even though at most one row exists per participation.
const participationSelect = `
	SELECT
		mp.id::text,
		mp.player_id::text,
		mp.match_id::text,
		COALESCE(mp.team_id::text, ''),
		COALESCE((
			SELECT json_agg(s) FROM (
				SELECT ps.goals, ps.assists, ps.yellow_cards, ps.red_cards,
				       ps.minutes_played, ps.saves, ps.clean_sheets, ps.rating
				FROM player_stats ps
				WHERE ps.match_player_id = mp.id
			) s
		), '[]'::json) AS player_stats,
		(
			SELECT row_to_json(p) FROM (
				SELECT pl.id::text AS id, pl.name, COALESCE(pl.photo_url, '') AS photo_url
				FROM players pl
				WHERE pl.id = mp.player_id
			) p
		) AS players,
		(
			SELECT row_to_json(m) FROM (
				SELECT ma.id::text AS id, ma.status,
				       COALESCE(ma.tournament_id::text, '') AS tournament_id,
				       to_char(ma.match_date, 'YYYY-MM-DD') AS match_date
				FROM matches ma
				WHERE ma.id = mp.match_id
			) m
		) AS matches
	FROM match_players mp
	JOIN matches mt ON mt.id = mp.match_id`

// BuildParticipationQuery constructs the Postgres query for a record scope.
// Rows are ordered by match date so first-seen order is stable across runs.
func BuildParticipationQuery(scope models.RecordScope) (string, []interface{}) {
	var (
		where []string
		args  []interface{}
	)

	if len(scope.MatchIDs) > 0 {
		args = append(args, scope.MatchIDs)
		where = append(where, fmt.Sprintf("mp.match_id = ANY($%d::uuid[])", len(args)))
	}
	if scope.PlayerID != "" {
		args = append(args, scope.PlayerID)
		where = append(where, fmt.Sprintf("mp.player_id = $%d::uuid", len(args)))
	}

	query := participationSelect
	if len(where) > 0 {
		query += "\n\tWHERE " + strings.Join(where, " AND ")
	}
	query += "\n\tORDER BY mt.match_date, mp.match_id, mp.id"
	return query, args
}

// BuildEventsQuery constructs the ClickHouse query for an event filter.
// An empty Type selects every event type.
func BuildEventsQuery(filter models.EventFilter) (string, []interface{}, error) {
	if filter.Type != "" && !models.ValidEventTypes[filter.Type] {
		return "", nil, fmt.Errorf("invalid event type: %s", filter.Type)
	}

	query := `SELECT event_id, match_id, event_type, minute, player_id, player_name, team_id, related_player_id, detail, recorded_at FROM match_events WHERE 1=1`
	var args []interface{}

	if filter.Type != "" {
		query += " AND event_type = ?"
		args = append(args, string(filter.Type))
	}
	if len(filter.MatchIDs) > 0 {
		query += " AND match_id IN (?)"
		args = append(args, filter.MatchIDs)
	}

	query += " ORDER BY match_id, minute, recorded_at"
	return query, args, nil
}
