/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package rating

import (
	"math"
	"testing"
)

func TestExpectedScore(t *testing.T) {
	if got := expectedScore(1600, 1600); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("expectedScore equal ratings = %v; want 0.5", got)
	}
	// 400 points stronger => 10x more likely: expectancy 10/11
	if got := expectedScore(2000, 1600); math.Abs(got-10.0/11.0) > 1e-9 {
		t.Errorf("expectedScore +400 = %v; want %v", got, 10.0/11.0)
	}
	lo := expectedScore(1400, 1600)
	hi := expectedScore(1800, 1600)
	if math.Abs(lo+expectedScore(1600, 1400)-1.0) > 1e-9 {
		t.Errorf("expectancies not complementary: %v", lo)
	}
	if !(lo < 0.5 && hi > 0.5) {
		t.Errorf("expectancy not monotonic: lo=%v hi=%v", lo, hi)
	}
}

func TestKFactorTiers(t *testing.T) {
	cases := []struct {
		rating      int
		gamesPlayed int
		want        float64
	}{
		{1600, 0, 40.0},
		{1600, 29, 40.0},
		{1600, 30, 20.0},
		{2500, 10, 40.0}, // experience tier wins over strength tier
		{2400, 100, 10.0},
		{2399, 100, 20.0},
	}
	for _, c := range cases {
		if got := kFactor(c.rating, c.gamesPlayed); got != c.want {
			t.Errorf("kFactor(%d, %d) = %v; want %v", c.rating, c.gamesPlayed,
				got, c.want)
		}
	}
}

func TestEloDelta(t *testing.T) {
	// equal-rated new players: win +20, loss -20, draw 0
	if got := EloDelta(1600, 1.0, 1600, 0); got != 1620 {
		t.Errorf("win delta: got %d; want 1620", got)
	}
	if got := EloDelta(1600, 0.0, 1600, 0); got != 1580 {
		t.Errorf("loss delta: got %d; want 1580", got)
	}
	if got := EloDelta(1600, 0.5, 1600, 0); got != 1600 {
		t.Errorf("draw delta: got %d; want 1600", got)
	}
	// established strong player moves slowly
	if got := EloDelta(2450, 1.0, 2450, 200); got != 2455 {
		t.Errorf("established win delta: got %d; want 2455", got)
	}
}
