/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mikeb26/tourneyscore/config"
	"github.com/mikeb26/tourneyscore/internal"
	"github.com/mikeb26/tourneyscore/pgn"
	"github.com/mikeb26/tourneyscore/rating"
	"github.com/mikeb26/tourneyscore/tourney"
	"github.com/mikeb26/tourneyscore/webimport"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":       handleHelp,
	"crosstable": handleCrossTable,
	"standings":  handleStandings,
	"ratings":    handleRatings,
	"import":     handleImport,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

func loadConfigOrDie(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	return cfg
}

func buildCrosstableOrDie(pgnPath string, cfg *config.Config) *tourney.Crosstable {
	games, err := pgn.ReadGamesFile(pgnPath)
	if err != nil {
		log.Fatalf("Error reading games: %v", err)
	}

	ct, err := tourney.BuildCrosstable(games, tourney.Options{
		GamesPerOpponent: cfg.Tournament.GamesPerOpponent,
		HalfSeason:       cfg.Tournament.HalfSeason,
		UseFinalStanding: cfg.Tournament.UseFinalStanding,
	})
	if err != nil {
		log.Fatalf("Error building crosstable: %v", err)
	}

	return ct
}

func printSummary(s tourney.Summary) {
	fmt.Printf("players:%d games:%d skipped:%d roundfallbacks:%d\n",
		s.PlayersProcessed, s.GamesProcessed, s.GamesSkipped, s.RoundFallbacks)
}

func handleCrossTable(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("crosstable", flag.ExitOnError)
	pgnPath := fs.String("pgn", "", "PGN file with tournament games")
	cfgPath := fs.String("config", "tourneyscore.yaml", "Run configuration file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *pgnPath == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --pgn file.")
		fs.Usage()
		os.Exit(1)
	}

	cfg := loadConfigOrDie(*cfgPath)
	ct := buildCrosstableOrDie(*pgnPath, cfg)

	fmt.Print(tourney.BuildCrosstableOutput(ct, cfg.Tournament.Name != "",
		cfg.Tournament.Name))
	printSummary(ct.Summary)
}

func handleStandings(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("standings", flag.ExitOnError)
	pgnPath := fs.String("pgn", "", "PGN file with tournament games")
	cfgPath := fs.String("config", "tourneyscore.yaml", "Run configuration file")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *pgnPath == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --pgn file.")
		fs.Usage()
		os.Exit(1)
	}

	cfg := loadConfigOrDie(*cfgPath)
	ct := buildCrosstableOrDie(*pgnPath, cfg)

	fmt.Print(tourney.BuildStandingsOutput(ct))
	printSummary(ct.Summary)
}

func handleRatings(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("ratings", flag.ExitOnError)
	pgnPath := fs.String("pgn", "", "PGN file with games to rate")
	cfgPath := fs.String("config", "tourneyscore.yaml", "Run configuration file")
	showHistory := fs.Bool("history", false, "Print per-game rating history")
	dryRun := fs.Bool("dryrun", false, "Compute but do not persist the registry")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *pgnPath == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --pgn file.")
		fs.Usage()
		os.Exit(1)
	}

	cfg := loadConfigOrDie(*cfgPath)

	games, err := pgn.ReadGamesFile(*pgnPath)
	if err != nil {
		log.Fatalf("Error reading games: %v", err)
	}

	reg, err := rating.LoadRegistry(cfg.Rating.RegistryPath)
	if err != nil {
		log.Fatalf("Error loading registry: %v", err)
	}

	startDate, err := internal.ParseDateOrZero(cfg.Rating.StartDate)
	if err != nil {
		log.Fatalf("Error parsing rating start date %q: %v",
			cfg.Rating.StartDate, err)
	}

	history, summary, err := rating.Replay(games, reg, rating.Options{
		SeedRating:     cfg.Rating.SeedRating,
		StartDate:      startDate,
		SinceLastRated: cfg.Rating.SinceLastRated,
	})
	if err != nil {
		log.Fatalf("Error replaying games: %v", err)
	}

	if *showHistory {
		for _, ev := range history {
			fmt.Printf("%s %s %d %d\n", ev.Date.Format("2006-01-02"), ev.Name,
				ev.NewRating, ev.NewGamesPlayed)
		}
	}
	for _, rec := range reg.Records() {
		fmt.Printf("%-30s  %4d  (%d games)\n", rec.Name, rec.Rating,
			rec.GamesPlayed)
	}
	fmt.Printf("games:%d skipped:%d players:%d\n", summary.GamesProcessed,
		summary.GamesSkipped, reg.Len())

	if !*dryRun {
		if err := rating.SaveRegistry(cfg.Rating.RegistryPath, reg); err != nil {
			log.Fatalf("Error saving registry: %v", err)
		}
	}
}

func handleImport(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	cfgPath := fs.String("config", "tourneyscore.yaml", "Run configuration file")
	url := fs.String("url", "", "Base URL of the published tournament results")
	rounds := fs.Int("rounds", 0, "Number of round pages to fetch")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg := loadConfigOrDie(*cfgPath)
	if *url == "" {
		*url = cfg.Import.URL
	}
	if *rounds == 0 {
		*rounds = cfg.Import.Rounds
	}
	if *url == "" || *rounds <= 0 {
		fmt.Fprintln(os.Stderr, "Please provide --url and --rounds (or set them in the config).")
		fs.Usage()
		os.Exit(1)
	}

	imp := webimport.NewImporter(ctx)
	games, err := imp.FetchGames(ctx, *url, *rounds)
	if err != nil {
		log.Fatalf("Error importing games: %v", err)
	}

	// Emit as PGN tag sections so the output composes with the other
	// commands.
	for _, g := range games {
		fmt.Printf("[Round %q]\n[White %q]\n[Black %q]\n[Result %q]\n[Date %q]\n\n%v\n\n",
			g.Round, g.White, g.Black, g.Result, g.Date, g.Result)
	}
	fmt.Fprintf(os.Stderr, "imported %d games\n", len(games))
}
