/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tourney

import (
	"fmt"
	"strings"
)

// BuildCrosstableOutput formats the result grid as an aligned text table.
// When the crosstable was built with UseFinalStanding, rows follow the final
// standings and the grid reads top to bottom in rank order; otherwise rows
// are in name order.
func BuildCrosstableOutput(ct *Crosstable, includeHeader bool, title string) string {
	var sb strings.Builder

	if includeHeader && title != "" {
		sb.WriteString(fmt.Sprintf("%v\n", title))
	}

	matrix := ct.Matrix
	byRank := ct.RankMatrix != nil
	if byRank {
		matrix = ct.RankMatrix
	}
	n := ct.Index.Len()
	gpo := ct.GamesPerOpponent

	headers := []string{"No", "Name", "Pts", "SB"}
	for i := 1; i <= n; i++ {
		if gpo == 2 {
			headers = append(headers, fmt.Sprintf("%dw", i), fmt.Sprintf("%db", i))
		} else {
			headers = append(headers, fmt.Sprintf("%d", i))
		}
	}

	// rowStanding maps a matrix row to the Standing it describes
	rowStanding := make([]Standing, n)
	for _, s := range ct.Standings {
		if byRank {
			rowStanding[s.Rank-1] = s
		} else {
			rowStanding[s.Ordinal] = s
		}
	}

	var rows [][]string
	for i := 0; i < n; i++ {
		s := rowStanding[i]
		row := []string{
			fmt.Sprintf("%d.", i+1),
			s.Name,
			s.Points.String(),
			s.Resistance.String(),
		}
		for c, cell := range matrix[i] {
			switch {
			case c/gpo == i:
				row = append(row, "x")
			case cell < 0:
				row = append(row, "·")
			default:
				row = append(row, cell.String())
			}
		}
		rows = append(rows, row)
	}

	writeAligned(&sb, headers, rows)
	sb.WriteString("\n")

	return sb.String()
}

// BuildStandingsOutput formats the sorted standings; tied scores repeat with
// a blank place column, matching the usual wallchart convention.
func BuildStandingsOutput(ct *Crosstable) string {
	if len(ct.Standings) == 0 {
		return "No games recorded\n"
	}

	headers := []string{"Place", "Name", "Score", "SB", "Games"}
	var rows [][]string
	priorPoints := Points(-1)
	priorRes := Tiebreak(-1)
	for _, s := range ct.Standings {
		var place string
		if s.Points == priorPoints && s.Resistance == priorRes {
			place = ""
		} else {
			place = fmt.Sprintf("%d.", s.Rank)
			priorPoints = s.Points
			priorRes = s.Resistance
		}
		rows = append(rows, []string{
			place,
			s.Name,
			s.Points.String(),
			s.Resistance.String(),
			fmt.Sprintf("%d", s.GamesPlayed),
		})
	}

	var sb strings.Builder
	writeAligned(&sb, headers, rows)

	return sb.String()
}

// writeAligned renders a header plus rows with columns padded to fit.
func writeAligned(sb *strings.Builder, headers []string, rows [][]string) {
	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	var fmtStrBuilder strings.Builder
	for _, w := range colWidths {
		fmtStrBuilder.WriteString(fmt.Sprintf("%%-%ds  ", w))
	}
	fmtStr := strings.TrimRight(fmtStrBuilder.String(), " ") + "\n"

	sb.WriteString(fmt.Sprintf(fmtStr, toAnySlice(headers)...))
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf(fmtStr, toAnySlice(row)...))
	}
}
