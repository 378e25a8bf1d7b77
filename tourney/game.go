/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tourney

import (
	"strconv"
	"strings"
)

// Result represents the outcome of a single game.
type Result int

const (
	ResultWhiteWin Result = iota
	ResultDraw
	ResultBlackWin
	ResultUnplayed
)

// ParseResult maps a PGN-style result tag to a Result. Anything other than
// the three canonical decisive/drawn strings is treated as unplayed.
func ParseResult(s string) Result {
	switch strings.TrimSpace(s) {
	case "1-0":
		return ResultWhiteWin
	case "1/2-1/2", "½-½":
		return ResultDraw
	case "0-1":
		return ResultBlackWin
	default:
		return ResultUnplayed
	}
}

func (r Result) String() string {
	switch r {
	case ResultWhiteWin:
		return "1-0"
	case ResultDraw:
		return "1/2-1/2"
	case ResultBlackWin:
		return "0-1"
	default:
		return "*"
	}
}

// Game is one played (or scheduled) fixture between two players. Date is the
// raw tag value in yyyy.mm.dd-like form; unknown parts may be "?". Round is
// the raw round label and may be non-numeric.
type Game struct {
	White  string
	Black  string
	Round  string
	Result Result
	Date   string
}

// ParseRound converts a round label to its round number. Labels that do not
// parse (e.g. "?", "4.1", "final") default to round 1 so that a single bad
// tag cannot abort a whole tournament; callers count the fallback.
func ParseRound(label string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(label))
	if err != nil || n < 1 {
		return 1, false
	}
	return n, true
}
