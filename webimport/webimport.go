/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package webimport scrapes published round-result pages from a club website
// into Game records, as an alternate game source next to PGN files.
package webimport

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/tourneyscore/internal"
	"github.com/mikeb26/tourneyscore/tourney"
)

type Importer struct {
	httpClient *http.Client
}

// NewImporter returns an Importer whose http client caches fetched pages.
// Finished round pages are rarely (if ever) edited, so a 30 day cache is fine
// for our use case.
func NewImporter(ctx context.Context) *Importer {
	return &Importer{
		httpClient: internal.NewCachedHttpClient(ctx, 30*24*time.Hour),
	}
}

// NewImporterWithClient is used by tests and by callers that manage their own
// caching.
func NewImporterWithClient(client *http.Client) *Importer {
	return &Importer{httpClient: client}
}

// FetchGames retrieves round pages 1..rounds under baseURL concurrently and
// returns all parsed games in round order.
func (imp *Importer) FetchGames(ctx context.Context, baseURL string,
	rounds int) ([]tourney.Game, error) {

	if rounds < 1 {
		return nil, fmt.Errorf("invalid round count %d", rounds)
	}

	perRound := make([][]tourney.Game, rounds)
	g, ctx := errgroup.WithContext(ctx)
	for round := 1; round <= rounds; round++ {
		round := round
		g.Go(func() error {
			url := fmt.Sprintf("%s/round/%d", strings.TrimRight(baseURL, "/"), round)
			doc, err := imp.fetchDoc(ctx, url)
			if err != nil {
				return fmt.Errorf("unable to fetch round %d: %w", round, err)
			}
			perRound[round-1] = parseRoundPage(doc, round)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var games []tourney.Game
	for _, rg := range perRound {
		games = append(games, rg...)
	}

	return games, nil
}

// fetchDoc gets the HTML document at the given URL using the configured
// User-Agent.
func (imp *Importer) fetchDoc(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := imp.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d fetching %s", resp.StatusCode, url)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

// parseRoundPage extracts games from the results table. Expected row shape:
// board, white, result, black; the round date, when published, is in an
// element with class "round-date".
func parseRoundPage(doc *goquery.Document, round int) []tourney.Game {
	date := strings.TrimSpace(doc.Find(".round-date").First().Text())

	var games []tourney.Game
	doc.Find("table#results tr, div#results table tr").Each(
		func(_ int, row *goquery.Selection) {
			if game, ok := parseResultRow(row, round, date); ok {
				games = append(games, *game)
			}
		})

	return games
}

// parseResultRow parses a single table row into a Game. Returns ok=false to
// skip header and malformed rows.
func parseResultRow(row *goquery.Selection, round int, date string) (*tourney.Game, bool) {
	cells := row.Find("td")
	if cells.Length() < 4 {
		return nil, false
	}
	boardText := strings.TrimSpace(cells.Eq(0).Text())
	if strings.EqualFold(boardText, "Bd") {
		return nil, false
	}
	if _, err := strconv.Atoi(boardText); err != nil {
		return nil, false
	}

	white := internal.NormalizeName(cells.Eq(1).Text())
	resultText := strings.TrimSpace(cells.Eq(2).Text())
	black := internal.NormalizeName(cells.Eq(3).Text())
	if white == "" || black == "" {
		return nil, false
	}

	return &tourney.Game{
		White:  white,
		Black:  black,
		Round:  strconv.Itoa(round),
		Result: tourney.ParseResult(resultText),
		Date:   date,
	}, true
}
