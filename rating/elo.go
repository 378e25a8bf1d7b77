/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package rating

import "math"

// DeltaFunc computes a player's new rating from one game: the player's
// rating and games played at the time of that game, the score obtained
// (1, 0.5 or 0) and the opponent's rating at the time of the game. The
// engine treats this as opaque so clubs can swap in their own formula.
type DeltaFunc func(rating int, score float64, oppRating int, gamesPlayed int) int

func expectedScore(myRating float64, oppRating float64) float64 {
	// 1/(exp(ln(10)*((opp-my)/400))+1) == 1/(10^((opp-my)/400)+1)
	exp := math.Pow(10, (oppRating-myRating)/400.0)
	return 1.0 / (exp + 1.0)
}

// kFactor follows the usual club ladder tiers: new players move fast,
// established strong players move slowly.
func kFactor(rating int, gamesPlayed int) float64 {
	switch {
	case gamesPlayed < 30:
		return 40.0
	case rating >= 2400:
		return 10.0
	default:
		return 20.0
	}
}

// EloDelta is the default DeltaFunc.
func EloDelta(rating int, score float64, oppRating int, gamesPlayed int) int {
	k := kFactor(rating, gamesPlayed)
	expected := expectedScore(float64(rating), float64(oppRating))
	return rating + int(math.Round(k*(score-expected)))
}
