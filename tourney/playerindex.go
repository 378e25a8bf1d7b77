/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tourney

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mikeb26/tourneyscore/internal"
)

// PlayerIndex is a deterministic bijection from player name to the ordinal
// used to address crosstable matrix rows. Ordering is case-insensitive
// lexicographic and stable for the duration of one build. Lookups are
// case-insensitive; display names keep their original case.
type PlayerIndex struct {
	names    []string
	ordinals map[string]int
}

// DuplicateCaseVariantError reports two spellings of what is almost
// certainly the same player. Silently merging (or silently splitting) them
// would corrupt both the crosstable and the rating pool, so index
// construction refuses instead.
type DuplicateCaseVariantError struct {
	First  string
	Second string
}

func (e *DuplicateCaseVariantError) Error() string {
	return fmt.Sprintf("player name %q conflicts with %q (case variants of the same name)",
		e.Second, e.First)
}

// BuildPlayerIndex assigns every distinct player appearing as White or Black
// an ordinal.
func BuildPlayerIndex(games []Game) (*PlayerIndex, error) {
	seen := make(map[string]string)
	for _, g := range games {
		for _, name := range []string{g.White, g.Black} {
			name = internal.NormalizeName(name)
			key := strings.ToLower(name)
			if prior, ok := seen[key]; ok {
				if prior != name {
					return nil, &DuplicateCaseVariantError{First: prior, Second: name}
				}
				continue
			}
			seen[key] = name
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pi := &PlayerIndex{
		names:    make([]string, 0, len(keys)),
		ordinals: make(map[string]int, len(keys)),
	}
	for ord, key := range keys {
		pi.names = append(pi.names, seen[key])
		pi.ordinals[key] = ord
	}

	return pi, nil
}

// Ordinal returns the matrix ordinal for name; lookup is case-insensitive.
func (pi *PlayerIndex) Ordinal(name string) (int, bool) {
	ord, ok := pi.ordinals[strings.ToLower(internal.NormalizeName(name))]
	return ord, ok
}

// Name returns the display spelling for an ordinal.
func (pi *PlayerIndex) Name(ord int) string {
	return pi.names[ord]
}

func (pi *PlayerIndex) Len() int {
	return len(pi.names)
}
