/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
// Partially unknown PGN-style dates such as "2024.??.??" are truncated to
// their known prefix before parsing; a date with an unknown year is
// unparseable.
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	if idx := strings.IndexByte(s, '?'); idx >= 0 {
		s = strings.Trim(s[:idx], ". -/")
		if s == "" {
			return time.Time{}, nil
		}
		// a bare year prefix like "2026" pins to January 1st
		if year, err := strconv.Atoi(s); err == nil && len(s) == 4 {
			return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return dateparse.ParseAny(s)
}

// NormalizeName trims and collapses interior whitespace so the same player
// spelled with stray spacing compares equal.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
