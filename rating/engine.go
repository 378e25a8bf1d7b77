/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package rating

import (
	"log"
	"sort"
	"strings"
	"time"

	"github.com/mikeb26/tourneyscore/internal"
	"github.com/mikeb26/tourneyscore/tourney"
)

// Record is one player's persisted rating state.
type Record struct {
	Name        string
	Rating      int
	GamesPlayed int

	// LastRated is the date of the newest game applied to this record; it
	// backs the opt-in SinceLastRated rerun mode. Zero for never-rated
	// players.
	LastRated time.Time
}

// Registry holds rating records keyed by player name (case-insensitive).
// Iteration order is first-seen order, which keeps persisted output stable
// across runs.
type Registry struct {
	records []*Record
	byName  map[string]*Record
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Record)}
}

// Lookup finds a record by name; lookup is case-insensitive.
func (reg *Registry) Lookup(name string) (*Record, bool) {
	rec, ok := reg.byName[registryKey(name)]
	return rec, ok
}

// Records returns all records in first-seen order. The slice is shared with
// the registry; callers must not reorder it.
func (reg *Registry) Records() []*Record {
	return reg.records
}

func (reg *Registry) Len() int {
	return len(reg.records)
}

func (reg *Registry) add(rec *Record) {
	reg.records = append(reg.records, rec)
	reg.byName[registryKey(rec.Name)] = rec
}

func (reg *Registry) lookupOrCreate(name string, seedRating int) *Record {
	name = internal.NormalizeName(name)
	if rec, ok := reg.byName[registryKey(name)]; ok {
		return rec
	}
	rec := &Record{Name: name, Rating: seedRating}
	reg.add(rec)
	return rec
}

func registryKey(name string) string {
	return strings.ToLower(internal.NormalizeName(name))
}

// Options configures one replay.
type Options struct {
	// SeedRating is assigned to players with no prior record. Defaults to
	// 1600.
	SeedRating int

	// StartDate, when set, excludes games strictly before it from rating.
	// Players in excluded games are still registered.
	StartDate time.Time

	// Delta computes a player's new rating from one game. Defaults to
	// EloDelta.
	Delta DeltaFunc

	// SinceLastRated skips games not newer than both players' LastRated
	// dates, making reruns against an already-updated registry idempotent.
	// Off by default: the historical behavior is to re-apply whatever list
	// is supplied.
	SinceLastRated bool
}

// HistoryEvent records one player's rating after one game, in encounter
// order.
type HistoryEvent struct {
	Name           string
	Date           time.Time
	NewRating      int
	NewGamesPlayed int
}

// Summary reports operator-visible replay counts.
type Summary struct {
	GamesProcessed int
	GamesSkipped   int
}

type datedGame struct {
	game tourney.Game
	date time.Time
}

// Replay folds games into the registry in strict chronological order. Each
// game's deltas are computed from both players' rating and game count at the
// time of that game, and applied before the next game is considered, so
// later games in the same run see the updated values. The output is
// order-dependent and, by design, not idempotent across reruns (see
// Options.SinceLastRated).
func Replay(games []tourney.Game, reg *Registry, opts Options) ([]HistoryEvent, Summary, error) {
	var summary Summary

	if opts.SeedRating == 0 {
		opts.SeedRating = 1600
	}
	delta := opts.Delta
	if delta == nil {
		delta = EloDelta
	}

	dated := make([]datedGame, 0, len(games))
	for _, g := range games {
		if g.Result == tourney.ResultUnplayed {
			summary.GamesSkipped++
			continue
		}
		when, err := internal.ParseDateOrZero(g.Date)
		if err != nil || when.IsZero() {
			// A fabricated game time is the same hazard class as a silent
			// rating default, so reject rather than sort last.
			log.Printf("rating: unusable game date %q (%v vs %v); excluding from replay",
				g.Date, g.White, g.Black)
			summary.GamesSkipped++
			continue
		}
		dated = append(dated, datedGame{game: g, date: when})
	}

	// Stable sort: games on the same date replay in input order.
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].date.Before(dated[j].date)
	})

	var history []HistoryEvent
	for _, dg := range dated {
		g := dg.game

		// Register both players before any cutoff checks so they are known
		// even when the game itself is not rated.
		white := reg.lookupOrCreate(g.White, opts.SeedRating)
		black := reg.lookupOrCreate(g.Black, opts.SeedRating)

		if !opts.StartDate.IsZero() && dg.date.Before(opts.StartDate) {
			summary.GamesSkipped++
			continue
		}
		if opts.SinceLastRated &&
			(!dg.date.After(white.LastRated) || !dg.date.After(black.LastRated)) {
			summary.GamesSkipped++
			continue
		}

		var whiteScore float64
		switch g.Result {
		case tourney.ResultWhiteWin:
			whiteScore = 1.0
		case tourney.ResultDraw:
			whiteScore = 0.5
		case tourney.ResultBlackWin:
			whiteScore = 0.0
		}

		// Both deltas read pre-game state; both updates land before the
		// next game is processed.
		newWhite := delta(white.Rating, whiteScore, black.Rating, white.GamesPlayed)
		newBlack := delta(black.Rating, 1.0-whiteScore, white.Rating, black.GamesPlayed)

		white.Rating = newWhite
		white.GamesPlayed++
		white.LastRated = dg.date
		black.Rating = newBlack
		black.GamesPlayed++
		black.LastRated = dg.date
		summary.GamesProcessed++

		history = append(history,
			HistoryEvent{Name: white.Name, Date: dg.date,
				NewRating: white.Rating, NewGamesPlayed: white.GamesPlayed},
			HistoryEvent{Name: black.Name, Date: dg.date,
				NewRating: black.Rating, NewGamesPlayed: black.GamesPlayed})
	}

	return history, summary, nil
}
