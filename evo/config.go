package evo

import (
	"github.com/BurntSushi/toml"
)

// Config holds the evolutionary run parameters.
type Config struct {
	PopSize        int       `toml:"pop_size"`        // Organisms per generation.
	GenomeLen      int       `toml:"genome_len"`      // Initial genome length.
	Generations    int       `toml:"generations"`     // Generations to run.
	Steps          int       `toml:"steps"`           // CPU steps per evaluation.
	TournamentSize int       `toml:"tournament_size"` // Selection tournament size.
	Elites         int       `toml:"elites"`          // Organisms copied unchanged.
	PointRate      float64   `toml:"point_rate"`      // Per-instruction rewrite chance.
	InsertRate     float64   `toml:"insert_rate"`     // Per-offspring insertion chance.
	DeleteRate     float64   `toml:"delete_rate"`     // Per-offspring deletion chance.
	Seed           int64     `toml:"seed"`            // Random seed; 0 means time-based.
	Target         float64   `toml:"target"`          // Target for the built-in fitness.
	Inputs         []float64 `toml:"inputs"`          // CPU inputs, by position.
	Checkpoint     string    `toml:"checkpoint"`      // Checkpoint file path; empty disables.
}

// DefaultConfig returns a small, workable parameter set.
func DefaultConfig() Config {
	return Config{
		PopSize:        200,
		GenomeLen:      50,
		Generations:    100,
		Steps:          200,
		TournamentSize: 4,
		Elites:         2,
		PointRate:      0.02,
		InsertRate:     0.2,
		DeleteRate:     0.2,
	}
}

// LoadConfig reads a TOML run configuration, applied over the defaults.
func LoadConfig(path string) (cfg Config, err error) {
	cfg = DefaultConfig()
	_, err = toml.DecodeFile(path, &cfg)
	return
}
