/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package rating

import (
	"testing"
	"time"

	"github.com/mikeb26/tourneyscore/tourney"
)

func mustLookup(t *testing.T, reg *Registry, name string) *Record {
	t.Helper()
	rec, ok := reg.Lookup(name)
	if !ok {
		t.Fatalf("player %v not in registry", name)
	}
	return rec
}

func TestReplaySequencing(t *testing.T) {
	// X beats Y, then later loses to Y. The second game's deltas must be
	// computed from the post-first-game state.
	games := []tourney.Game{
		{White: "Xan", Black: "Yve", Round: "1", Result: tourney.ResultWhiteWin, Date: "2026.03.01"},
		{White: "Yve", Black: "Xan", Round: "2", Result: tourney.ResultWhiteWin, Date: "2026.03.08"},
	}
	reg := NewRegistry()
	history, summary, err := Replay(games, reg, Options{})
	if err != nil {
		t.Fatalf("Replay error: %v", err)
	}
	if summary.GamesProcessed != 2 || summary.GamesSkipped != 0 {
		t.Fatalf("summary = %+v", summary)
	}

	// after game 1: Xan 1620, Yve 1580 (seed 1600, K=40)
	// game 2 must see those values, not the seeds
	wantYve := EloDelta(1580, 1.0, 1620, 1)
	wantXan := EloDelta(1620, 0.0, 1580, 1)
	if got := mustLookup(t, reg, "Yve").Rating; got != wantYve {
		t.Errorf("Yve rating = %d; want %d", got, wantYve)
	}
	if got := mustLookup(t, reg, "Xan").Rating; got != wantXan {
		t.Errorf("Xan rating = %d; want %d", got, wantXan)
	}
	if wantYve == 1620 {
		t.Error("second game was computed from seed ratings")
	}

	// history: two events per game, encounter order
	if len(history) != 4 {
		t.Fatalf("expected 4 history events, got %d", len(history))
	}
	if history[0].Name != "Xan" || history[0].NewRating != 1620 ||
		history[0].NewGamesPlayed != 1 {
		t.Errorf("history[0] = %+v", history[0])
	}
	if history[2].Name != "Yve" || history[2].NewRating != wantYve {
		t.Errorf("history[2] = %+v", history[2])
	}
}

func TestReplayChronologicalNotInputOrder(t *testing.T) {
	// same games supplied out of date order replay identically
	games := []tourney.Game{
		{White: "Yve", Black: "Xan", Round: "2", Result: tourney.ResultWhiteWin, Date: "2026.03.08"},
		{White: "Xan", Black: "Yve", Round: "1", Result: tourney.ResultWhiteWin, Date: "2026.03.01"},
	}
	reg := NewRegistry()
	if _, _, err := Replay(games, reg, Options{}); err != nil {
		t.Fatalf("Replay error: %v", err)
	}
	wantYve := EloDelta(1580, 1.0, 1620, 1)
	if got := mustLookup(t, reg, "Yve").Rating; got != wantYve {
		t.Errorf("Yve rating = %d; want %d", got, wantYve)
	}
}

func TestReplayOrderDependence(t *testing.T) {
	// Two games on the same date: ties preserve input order, so swapping the
	// input list changes the outcome. This is the designed counter-example
	// to the crosstable's order-independence.
	g1 := tourney.Game{White: "Xan", Black: "Yve", Round: "1", Result: tourney.ResultWhiteWin, Date: "2026.03.01"}
	g2 := tourney.Game{White: "Yve", Black: "Zed", Round: "1", Result: tourney.ResultWhiteWin, Date: "2026.03.01"}

	reg1 := NewRegistry()
	if _, _, err := Replay([]tourney.Game{g1, g2}, reg1, Options{}); err != nil {
		t.Fatalf("Replay error: %v", err)
	}
	reg2 := NewRegistry()
	if _, _, err := Replay([]tourney.Game{g2, g1}, reg2, Options{}); err != nil {
		t.Fatalf("Replay error: %v", err)
	}

	y1 := mustLookup(t, reg1, "Yve").Rating
	y2 := mustLookup(t, reg2, "Yve").Rating
	if y1 == y2 {
		t.Errorf("expected order-dependent ratings, both %d", y1)
	}
}

func TestReplayNonIdempotent(t *testing.T) {
	games := []tourney.Game{
		{White: "Xan", Black: "Yve", Round: "1", Result: tourney.ResultWhiteWin, Date: "2026.03.01"},
	}
	reg := NewRegistry()
	if _, _, err := Replay(games, reg, Options{}); err != nil {
		t.Fatalf("Replay error: %v", err)
	}
	first := mustLookup(t, reg, "Xan").Rating

	// replaying the same list against the engine's own prior output shifts
	// ratings again; documented behavior, not a bug
	if _, _, err := Replay(games, reg, Options{}); err != nil {
		t.Fatalf("Replay error: %v", err)
	}
	second := mustLookup(t, reg, "Xan").Rating
	if first == second {
		t.Errorf("expected non-idempotent rerun, rating stayed %d", first)
	}
}

func TestReplaySinceLastRatedIsIdempotent(t *testing.T) {
	games := []tourney.Game{
		{White: "Xan", Black: "Yve", Round: "1", Result: tourney.ResultWhiteWin, Date: "2026.03.01"},
	}
	opts := Options{SinceLastRated: true}
	reg := NewRegistry()
	if _, _, err := Replay(games, reg, opts); err != nil {
		t.Fatalf("Replay error: %v", err)
	}
	first := mustLookup(t, reg, "Xan").Rating

	_, summary, err := Replay(games, reg, opts)
	if err != nil {
		t.Fatalf("Replay error: %v", err)
	}
	if got := mustLookup(t, reg, "Xan").Rating; got != first {
		t.Errorf("rating moved on rerun: %d -> %d", first, got)
	}
	if summary.GamesSkipped != 1 || summary.GamesProcessed != 0 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestReplayStartDateCutoff(t *testing.T) {
	games := []tourney.Game{
		{White: "Xan", Black: "Yve", Round: "1", Result: tourney.ResultWhiteWin, Date: "2026.03.01"},
		{White: "Xan", Black: "Yve", Round: "2", Result: tourney.ResultWhiteWin, Date: "2026.04.01"},
	}
	reg := NewRegistry()
	start := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	_, summary, err := Replay(games, reg, Options{StartDate: start})
	if err != nil {
		t.Fatalf("Replay error: %v", err)
	}
	if summary.GamesProcessed != 1 || summary.GamesSkipped != 1 {
		t.Fatalf("summary = %+v", summary)
	}
	// the pre-cutoff game still registered both players
	xan := mustLookup(t, reg, "Xan")
	if xan.GamesPlayed != 1 {
		t.Errorf("Xan.GamesPlayed = %d; want 1", xan.GamesPlayed)
	}
	if xan.Rating != 1620 {
		t.Errorf("Xan.Rating = %d; want 1620", xan.Rating)
	}
}

func TestReplayRejectsUnusableDates(t *testing.T) {
	games := []tourney.Game{
		{White: "Xan", Black: "Yve", Round: "1", Result: tourney.ResultWhiteWin, Date: "????.??.??"},
		{White: "Xan", Black: "Yve", Round: "2", Result: tourney.ResultWhiteWin, Date: "2026.03.01"},
	}
	reg := NewRegistry()
	_, summary, err := Replay(games, reg, Options{})
	if err != nil {
		t.Fatalf("Replay error: %v", err)
	}
	if summary.GamesProcessed != 1 || summary.GamesSkipped != 1 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestReplaySkipsUnplayedGames(t *testing.T) {
	games := []tourney.Game{
		{White: "Xan", Black: "Yve", Round: "1", Result: tourney.ResultUnplayed, Date: "2026.03.01"},
	}
	reg := NewRegistry()
	_, summary, err := Replay(games, reg, Options{})
	if err != nil {
		t.Fatalf("Replay error: %v", err)
	}
	if summary.GamesSkipped != 1 || summary.GamesProcessed != 0 {
		t.Errorf("summary = %+v", summary)
	}
	if reg.Len() != 0 {
		t.Errorf("unplayed game registered players: %d", reg.Len())
	}
}

func TestReplayFirstSeenOrder(t *testing.T) {
	// Walt appears in the chronologically-first game even though the input
	// list starts with the later game; registry order follows replay
	// encounter order.
	games := []tourney.Game{
		{White: "Ann", Black: "Bea", Round: "2", Result: tourney.ResultDraw, Date: "2026.03.08"},
		{White: "Walt", Black: "Ann", Round: "1", Result: tourney.ResultWhiteWin, Date: "2026.03.01"},
	}
	reg := NewRegistry()
	if _, _, err := Replay(games, reg, Options{}); err != nil {
		t.Fatalf("Replay error: %v", err)
	}
	var names []string
	for _, rec := range reg.Records() {
		names = append(names, rec.Name)
	}
	want := []string{"Walt", "Ann", "Bea"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("registry order = %v; want %v", names, want)
		}
	}
}

func TestReplaySeedRating(t *testing.T) {
	games := []tourney.Game{
		{White: "Ann", Black: "Bea", Round: "1", Result: tourney.ResultDraw, Date: "2026.03.01"},
	}
	reg := NewRegistry()
	if _, _, err := Replay(games, reg, Options{SeedRating: 1200}); err != nil {
		t.Fatalf("Replay error: %v", err)
	}
	// equal seeds drawing: no movement from 1200
	if got := mustLookup(t, reg, "Ann").Rating; got != 1200 {
		t.Errorf("Ann rating = %d; want 1200", got)
	}
}
