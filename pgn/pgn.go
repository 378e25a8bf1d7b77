/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package pgn reads game records from PGN tag pairs. Only the seven-tag
// header fields the scoring engine needs are consumed (White, Black, Round,
// Result, Date); movetext is skipped, never parsed.
package pgn

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mikeb26/tourneyscore/internal"
	"github.com/mikeb26/tourneyscore/tourney"
)

// ReadGames parses all games in a PGN stream into Game records, in file
// order.
func ReadGames(r io.Reader) ([]tourney.Game, error) {
	var games []tourney.Game

	tags := make(map[string]string)
	inMovetext := false
	flush := func() {
		if len(tags) == 0 {
			return
		}
		games = append(games, tagsToGame(tags))
		tags = make(map[string]string)
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "[") {
			// A tag section after movetext starts the next game.
			if inMovetext {
				flush()
				inMovetext = false
			}
			key, value, ok := parseTagPair(line)
			if !ok {
				return nil, fmt.Errorf("malformed tag pair at line %d: %q",
					lineNum, line)
			}
			tags[key] = value
		} else {
			inMovetext = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read pgn: %w", err)
	}
	flush()

	return games, nil
}

// ReadGamesFile reads all games from a PGN file on disk.
func ReadGamesFile(path string) ([]tourney.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open pgn %v: %w", path, err)
	}
	defer f.Close()

	return ReadGames(f)
}

// parseTagPair splits a `[Key "Value"]` line.
func parseTagPair(line string) (key string, value string, ok bool) {
	if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") {
		return "", "", false
	}
	inner := line[1 : len(line)-1]
	sp := strings.IndexByte(inner, ' ')
	if sp < 0 {
		return "", "", false
	}
	key = inner[:sp]
	rest := strings.TrimSpace(inner[sp+1:])
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return "", "", false
	}
	return key, rest[1 : len(rest)-1], true
}

func tagsToGame(tags map[string]string) tourney.Game {
	return tourney.Game{
		White:  internal.NormalizeName(tags["White"]),
		Black:  internal.NormalizeName(tags["Black"]),
		Round:  tags["Round"],
		Result: tourney.ParseResult(tags["Result"]),
		Date:   tags["Date"],
	}
}
