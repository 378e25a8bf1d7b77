/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tourney

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/mikeb26/tourneyscore/internal"
)

// ResultMatrix is the pairwise score grid. Row i holds player i's results
// against every opponent slot; for double round-robin each opponent has two
// adjacent columns, the first for the game played as White and the second as
// Black. Renderers depend on this column ordering. Cells hold {0, ½, 1} in
// half-point units, or NoGame.
type ResultMatrix [][]Points

// Standing is one row of the final table.
type Standing struct {
	Name        string
	Ordinal     int
	Rank        int
	Points      Points
	GamesPlayed int
	Resistance  Tiebreak
}

// TieBreakFunc orders two standings that are tied on both points and
// resistance.
type TieBreakFunc func(a, b Standing) bool

// Options configures one crosstable build.
type Options struct {
	// GamesPerOpponent is 1 for a single round-robin, 2 for a double.
	GamesPerOpponent int

	// HalfSeason players are only scheduled for the first half of an
	// over-length round sequence; their games in rounds beyond the player
	// count are excluded.
	HalfSeason []string

	// UseFinalStanding additionally builds RankMatrix, addressed by final
	// rank rather than by name ordinal.
	UseFinalStanding bool

	// TieBreak resolves ties beyond points and resistance. Defaults to
	// case-insensitive name order.
	TieBreak TieBreakFunc
}

// Summary reports operator-visible counts so silent skips are detectable.
type Summary struct {
	PlayersProcessed int
	GamesProcessed   int
	GamesSkipped     int
	RoundFallbacks   int
}

// Crosstable is the fully computed result of one build.
type Crosstable struct {
	Index            *PlayerIndex
	Matrix           ResultMatrix
	RankMatrix       ResultMatrix
	Standings        []Standing
	GamesPerOpponent int
	Summary          Summary
}

// BuildCrosstable folds an (ordered or unordered) game list into the result
// matrix, exact point totals, resistance tie-breaks and sorted standings. A
// tournament with zero games yields empty standings, not an error.
func BuildCrosstable(games []Game, opts Options) (*Crosstable, error) {
	gpo := opts.GamesPerOpponent
	if gpo == 0 {
		gpo = 1
	}
	if gpo != 1 && gpo != 2 {
		return nil, fmt.Errorf("unsupported games per opponent %d (want 1 or 2)", gpo)
	}

	index, err := BuildPlayerIndex(games)
	if err != nil {
		return nil, err
	}
	n := index.Len()

	halfSeason := make(map[string]bool, len(opts.HalfSeason))
	for _, name := range opts.HalfSeason {
		halfSeason[strings.ToLower(internal.NormalizeName(name))] = true
	}

	ct := &Crosstable{
		Index:            index,
		Matrix:           newMatrix(n, gpo),
		GamesPerOpponent: gpo,
	}
	ct.Summary.PlayersProcessed = n

	points := make([]Points, n)
	gamesPlayed := make([]int, n)

	identity := func(ord int) int { return ord }
	ct.foldGames(games, halfSeason, ct.Matrix, identity, func(w, b int, ws, bs Points) {
		points[w] += ws
		points[b] += bs
		gamesPlayed[w]++
		gamesPlayed[b]++
	})

	// Resistance must read opponents' final points, so it is a second full
	// pass over the finished matrix, never an incremental update.
	resistance := make([]Tiebreak, n)
	for i := 0; i < n; i++ {
		for c, cell := range ct.Matrix[i] {
			if cell < 0 {
				continue
			}
			opp := c / gpo
			resistance[i] += Tiebreak(int(points[opp]) * int(cell))
		}
	}

	ct.Standings = make([]Standing, n)
	for i := 0; i < n; i++ {
		ct.Standings[i] = Standing{
			Name:        index.Name(i),
			Ordinal:     i,
			Points:      points[i],
			GamesPlayed: gamesPlayed[i],
			Resistance:  resistance[i],
		}
	}

	tieBreak := opts.TieBreak
	if tieBreak == nil {
		tieBreak = func(a, b Standing) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
	sort.SliceStable(ct.Standings, func(i, j int) bool {
		a, b := ct.Standings[i], ct.Standings[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.Resistance != b.Resistance {
			return a.Resistance > b.Resistance
		}
		return tieBreak(a, b)
	})
	for i := range ct.Standings {
		ct.Standings[i].Rank = i + 1
	}

	if opts.UseFinalStanding {
		rankOf := make([]int, n)
		for i, s := range ct.Standings {
			rankOf[s.Ordinal] = i
		}
		ct.RankMatrix = newMatrix(n, gpo)
		// Same fold, re-addressed by final rank; counters were already
		// accumulated in the first pass.
		saved := ct.Summary
		ct.foldGames(games, halfSeason, ct.RankMatrix,
			func(ord int) int { return rankOf[ord] }, nil)
		ct.Summary = saved
	}

	return ct, nil
}

// foldGames records every playable game into matrix using pos to map a name
// ordinal to a row/column block. record, when non-nil, receives the two
// ordinals and scores of each recorded game.
func (ct *Crosstable) foldGames(games []Game, halfSeason map[string]bool,
	matrix ResultMatrix, pos func(int) int, record func(w, b int, ws, bs Points)) {

	n := ct.Index.Len()
	gpo := ct.GamesPerOpponent

	for _, g := range games {
		round, ok := ParseRound(g.Round)
		if !ok {
			log.Printf("crosstable: unparseable round label %q (%v vs %v); assuming round 1",
				g.Round, g.White, g.Black)
			ct.Summary.RoundFallbacks++
		}

		// Rounds beyond the player count are extra/tie-break rounds which
		// only involve full-season players.
		if round > n && (halfSeason[strings.ToLower(internal.NormalizeName(g.White))] ||
			halfSeason[strings.ToLower(internal.NormalizeName(g.Black))]) {
			ct.Summary.GamesSkipped++
			continue
		}

		w, _ := ct.Index.Ordinal(g.White)
		b, _ := ct.Index.Ordinal(g.Black)
		if w == b {
			log.Printf("crosstable: player %v paired against self; skipping", g.White)
			ct.Summary.GamesSkipped++
			continue
		}

		var wScore, bScore Points
		switch g.Result {
		case ResultWhiteWin:
			wScore, bScore = FullPoint, 0
		case ResultDraw:
			wScore, bScore = HalfPoint, HalfPoint
		case ResultBlackWin:
			wScore, bScore = 0, FullPoint
		default:
			// unplayed games write nothing
			continue
		}

		// White's result lands in the opponent block's first column, the
		// mirrored Black result in the block's last column.
		matrix[pos(w)][pos(b)*gpo] = wScore
		matrix[pos(b)][pos(w)*gpo+gpo-1] = bScore
		ct.Summary.GamesProcessed++
		if record != nil {
			record(w, b, wScore, bScore)
		}
	}
}

func newMatrix(n, gamesPerOpponent int) ResultMatrix {
	m := make(ResultMatrix, n)
	for i := range m {
		m[i] = make([]Points, n*gamesPerOpponent)
		for j := range m[i] {
			m[i][j] = NoGame
		}
	}
	return m
}
