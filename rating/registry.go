/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package rating

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

const lastRatedLayout = "2006-01-02"

// RegistryError reports malformed persisted rating data. It is fatal by
// policy: a silently-defaulted rating would drift the entire pool across
// every subsequent run, so loading aborts before any mutation.
type RegistryError struct {
	Path string
	Line int
	Err  error
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("registry %v line %d: %v", e.Path, e.Line, e.Err)
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}

// LoadRegistry reads a registry file of name,rating,gamesPlayed[,lastRated]
// rows. An absent file means "start empty", not an error.
func LoadRegistry(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewRegistry(), nil
		}
		return nil, fmt.Errorf("unable to open registry %v: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	reg := NewRegistry()
	line := 0
	for {
		line++
		fields, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &RegistryError{Path: path, Line: line, Err: err}
		}

		rec, err := parseRegistryRow(fields)
		if err != nil {
			return nil, &RegistryError{Path: path, Line: line, Err: err}
		}
		if _, dup := reg.Lookup(rec.Name); dup {
			return nil, &RegistryError{Path: path, Line: line,
				Err: fmt.Errorf("duplicate entry for %v", rec.Name)}
		}
		reg.add(rec)
	}

	return reg, nil
}

func parseRegistryRow(fields []string) (*Record, error) {
	if len(fields) < 3 || len(fields) > 4 {
		return nil, fmt.Errorf("expected 3 or 4 fields, got %d", len(fields))
	}
	if fields[0] == "" {
		return nil, fmt.Errorf("empty player name")
	}

	rating, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("malformed rating %q: %w", fields[1], err)
	}
	gamesPlayed, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("malformed games-played %q: %w", fields[2], err)
	}
	if gamesPlayed < 0 {
		return nil, fmt.Errorf("negative games-played %d", gamesPlayed)
	}

	rec := &Record{Name: fields[0], Rating: rating, GamesPlayed: gamesPlayed}
	if len(fields) == 4 && fields[3] != "" {
		rec.LastRated, err = time.Parse(lastRatedLayout, fields[3])
		if err != nil {
			return nil, fmt.Errorf("malformed last-rated date %q: %w", fields[3], err)
		}
	}

	return rec, nil
}

// SaveRegistry writes all records in first-seen order, preserving name,
// rating and games-played exactly across a load/save round trip.
func SaveRegistry(path string, reg *Registry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create registry %v: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, rec := range reg.Records() {
		lastRated := ""
		if !rec.LastRated.IsZero() {
			lastRated = rec.LastRated.Format(lastRatedLayout)
		}
		row := []string{
			rec.Name,
			strconv.Itoa(rec.Rating),
			strconv.Itoa(rec.GamesPlayed),
			lastRated,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("unable to write registry %v: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("unable to flush registry %v: %w", path, err)
	}

	return f.Close()
}
