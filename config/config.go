/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds one run's configuration, loaded from a YAML file with a few
// environment overrides for deployment-specific paths.
type Config struct {
	Tournament TournamentConfig `yaml:"tournament"`
	Rating     RatingConfig     `yaml:"rating"`
	Import     ImportConfig     `yaml:"import"`
}

// TournamentConfig describes the event format for crosstable builds.
type TournamentConfig struct {
	Name             string   `yaml:"name"`
	GamesPerOpponent int      `yaml:"games_per_opponent"`
	HalfSeason       []string `yaml:"half_season"`
	UseFinalStanding bool     `yaml:"use_final_standing"`
}

// RatingConfig holds the rating replay knobs.
type RatingConfig struct {
	SeedRating     int    `yaml:"seed_rating"`
	StartDate      string `yaml:"start_date"`
	RegistryPath   string `yaml:"registry_path"`
	SinceLastRated bool   `yaml:"since_last_rated"`
}

// ImportConfig configures the website game source.
type ImportConfig struct {
	URL    string `yaml:"url"`
	Rounds int    `yaml:"rounds"`
}

func defaults() *Config {
	return &Config{
		Tournament: TournamentConfig{GamesPerOpponent: 1},
		Rating: RatingConfig{
			SeedRating:   1600,
			RegistryPath: "ratings.csv",
		},
	}
}

// Load reads the YAML config at path, applies defaults and environment
// overrides, and validates. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("unable to read config %v: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config %v: %w", path, err)
	}

	if v := os.Getenv("TOURNEYSCORE_REGISTRY"); v != "" {
		cfg.Rating.RegistryPath = v
	}
	if v := os.Getenv("TOURNEYSCORE_IMPORT_URL"); v != "" {
		cfg.Import.URL = v
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if g := cfg.Tournament.GamesPerOpponent; g != 1 && g != 2 {
		return fmt.Errorf("tournament.games_per_opponent must be 1 or 2, got %d", g)
	}
	if cfg.Rating.SeedRating <= 0 {
		return fmt.Errorf("rating.seed_rating must be positive, got %d",
			cfg.Rating.SeedRating)
	}
	if cfg.Rating.RegistryPath == "" {
		return fmt.Errorf("rating.registry_path must not be empty")
	}
	return nil
}
