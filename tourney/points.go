/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tourney

import "fmt"

// Points counts game points exactly in half-point units, so totals never
// accumulate floating point drift. A win is 2 units, a draw 1.
type Points int

const (
	HalfPoint Points = 1
	FullPoint Points = 2
)

// NoGame is the matrix sentinel for a cell with no recorded result.
const NoGame Points = -1

func (p Points) Float() float64 {
	return float64(p) / 2.0
}

// String renders in the conventional chess style: "3", "3½", "½", "0".
func (p Points) String() string {
	whole := p / 2
	if p%2 != 0 {
		if whole == 0 {
			return "½"
		}
		return fmt.Sprintf("%d½", whole)
	}
	return fmt.Sprintf("%d", whole)
}

// Tiebreak is a resistance (Sonneborn-Berger style) score in quarter-point
// units: the product of two half-point quantities.
type Tiebreak int

func (t Tiebreak) Float() float64 {
	return float64(t) / 4.0
}

func (t Tiebreak) String() string {
	return fmt.Sprintf("%.2f", t.Float())
}
