package logic

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/clubstats/football-stats-api/internal/models"
)

// Snapshot is everything one aggregation reads, fetched before folding starts.
type Snapshot struct {
	Records     []models.ParticipationRecord
	Saves       []models.MatchEvent
	CleanSheets []models.MatchEvent
	OwnGoals    []models.MatchEvent
}

// FetchSnapshot runs the participation query and the three event queries in
// parallel and waits for all of them. Any failure fails the snapshot.
func FetchSnapshot(ctx context.Context, fetcher RecordFetcher, scope models.RecordScope) (*Snapshot, error) {
	snap := &Snapshot{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		records, err := fetcher.FetchParticipationRecords(ctx, scope)
		if err != nil {
			return fmt.Errorf("participation records: %w", err)
		}
		snap.Records = records
		return nil
	})

	fetchEvents := func(eventType models.EventType, dst *[]models.MatchEvent) {
		g.Go(func() error {
			events, err := fetcher.FetchEvents(ctx, models.EventFilter{Type: eventType, MatchIDs: scope.MatchIDs})
			if err != nil {
				return fmt.Errorf("%s events: %w", eventType, err)
			}
			*dst = events
			return nil
		})
	}
	fetchEvents(models.EventSave, &snap.Saves)
	fetchEvents(models.EventCleanSheet, &snap.CleanSheets)
	fetchEvents(models.EventOwnGoal, &snap.OwnGoals)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// BuildAggregates normalizes and folds every record of snap, then computes
// derived metrics. It is pure and never fails.
func BuildAggregates(snap *Snapshot, n Normalizer, logger *zap.SugaredLogger) *Aggregates {
	tallies, dropped := snap.Tallies()

	agg := NewAggregates()
	skipped := 0
	for _, rec := range snap.Records {
		if !agg.Fold(rec, n.Normalize(rec, tallies)) {
			skipped++
		}
	}
	agg.Finalize()

	if logger != nil {
		if dropped > 0 {
			logger.Debugw("Dropped unattributed events", "count", dropped)
		}
		if skipped > 0 {
			logger.Debugw("Skipped participation records", "count", skipped)
		}
	}
	return agg
}

// Tallies attributes the snapshot's events to players, resolving names
// against each match's roster. It also returns how many events were dropped.
func (snap *Snapshot) Tallies() (EventTallies, int) {
	roster := BuildRosterIndex(snap.Records)

	saves, droppedSaves := TallyEvents(snap.Saves, roster)
	cleanSheets, droppedCS := TallyEvents(snap.CleanSheets, roster)
	ownGoals, droppedOG := TallyEvents(snap.OwnGoals, roster)

	tallies := EventTallies{Saves: saves, CleanSheets: cleanSheets, OwnGoals: ownGoals}
	return tallies, droppedSaves + droppedCS + droppedOG
}
