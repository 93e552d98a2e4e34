// Package config loads and validates the tunable parameters of both search
// engines, using github.com/spf13/viper the way shivamshaw23-Hintro's
// config.Config does: defaults set in code, overridden by an optional .env
// file and then by environment variables, with CLI flags (applied by the
// cmd/ binaries after Load) taking final precedence.
package config

import (
	"fmt"

	"tourplanner/internal/coreerrors"
	"tourplanner/internal/domain"
)

// Params holds every configurable constant named in spec.md §4.5/§4.6/§9.
type Params struct {
	// NSGA-II
	PopulationSize int     `mapstructure:"POPULATION_SIZE"`
	MaxGenerations  int     `mapstructure:"MAX_GENERATIONS"`
	CrossoverRate   float64 `mapstructure:"CROSSOVER_RATE"`
	MutationRate    float64 `mapstructure:"MUTATION_RATE"`

	// MOVNS
	MaxIterations              int     `mapstructure:"MAX_ITERATIONS"`
	MaxTimeSeconds             float64 `mapstructure:"MAX_TIME_SECONDS"`
	MaxIterationsNoImprovement int     `mapstructure:"MAX_ITERATIONS_NO_IMPROVEMENT"`
	ArchiveInitSize            int     `mapstructure:"ARCHIVE_INIT_SIZE"`
	ArchiveMaxSize             int     `mapstructure:"ARCHIVE_MAX_SIZE"`
	ArchiveEpsilon             float64 `mapstructure:"ARCHIVE_EPSILON"`

	// Evaluator / domain constants
	WalkingPreferenceMinutes int     `mapstructure:"WALKING_PREFERENCE_MINUTES"`
	DailyTimeLimitMinutes    int     `mapstructure:"DAILY_TIME_LIMIT_MINUTES"`
	CarCostPerKm             float64 `mapstructure:"CAR_COST_PER_KM"`

	// Reproducibility
	Seed int64 `mapstructure:"SEED"` // 0 selects the engines' fixed default seed (1); no seed is drawn from a system source
}

// Defaults returns the spec-mandated default parameters (spec.md §4.5,
// §4.6, §9).
func Defaults() Params {
	return Params{
		PopulationSize: 100,
		MaxGenerations: 100,
		CrossoverRate:  0.9,
		MutationRate:   0.1,

		MaxIterations:              1000,
		MaxTimeSeconds:             300,
		MaxIterationsNoImprovement: 100,
		ArchiveInitSize:            20,
		ArchiveMaxSize:             200,
		ArchiveEpsilon:             0.01,

		WalkingPreferenceMinutes: domain.DefaultWalkingPreferenceMinutes,
		DailyTimeLimitMinutes:    domain.DefaultDailyTimeLimitMinutes,
		CarCostPerKm:             domain.DefaultCarCostPerKm,

		Seed: 0,
	}
}

// Validate enforces spec.md §4.5's parameter bounds: sizes must be
// positive, rates must fall in [0,1].
func (p Params) Validate() error {
	if p.PopulationSize <= 0 {
		return fmt.Errorf("%w: population_size must be > 0, got %d", coreerrors.ErrConfigInvalid, p.PopulationSize)
	}
	if p.MaxGenerations <= 0 {
		return fmt.Errorf("%w: max_generations must be > 0, got %d", coreerrors.ErrConfigInvalid, p.MaxGenerations)
	}
	if p.CrossoverRate < 0 || p.CrossoverRate > 1 {
		return fmt.Errorf("%w: crossover_rate must be in [0,1], got %f", coreerrors.ErrConfigInvalid, p.CrossoverRate)
	}
	if p.MutationRate < 0 || p.MutationRate > 1 {
		return fmt.Errorf("%w: mutation_rate must be in [0,1], got %f", coreerrors.ErrConfigInvalid, p.MutationRate)
	}
	if p.MaxIterations <= 0 {
		return fmt.Errorf("%w: max_iterations must be > 0, got %d", coreerrors.ErrConfigInvalid, p.MaxIterations)
	}
	if p.MaxTimeSeconds <= 0 {
		return fmt.Errorf("%w: max_time_seconds must be > 0, got %f", coreerrors.ErrConfigInvalid, p.MaxTimeSeconds)
	}
	if p.MaxIterationsNoImprovement <= 0 {
		return fmt.Errorf("%w: max_iterations_no_improvement must be > 0, got %d", coreerrors.ErrConfigInvalid, p.MaxIterationsNoImprovement)
	}
	if p.ArchiveInitSize <= 0 {
		return fmt.Errorf("%w: archive_init_size must be > 0, got %d", coreerrors.ErrConfigInvalid, p.ArchiveInitSize)
	}
	if p.ArchiveMaxSize <= 0 {
		return fmt.Errorf("%w: archive_max_size must be > 0, got %d", coreerrors.ErrConfigInvalid, p.ArchiveMaxSize)
	}
	if p.ArchiveEpsilon < 0 {
		return fmt.Errorf("%w: archive_epsilon must be >= 0, got %f", coreerrors.ErrConfigInvalid, p.ArchiveEpsilon)
	}
	if p.WalkingPreferenceMinutes < 0 {
		return fmt.Errorf("%w: walking_preference_minutes must be >= 0, got %d", coreerrors.ErrConfigInvalid, p.WalkingPreferenceMinutes)
	}
	if p.DailyTimeLimitMinutes <= 0 {
		return fmt.Errorf("%w: daily_time_limit_minutes must be > 0, got %d", coreerrors.ErrConfigInvalid, p.DailyTimeLimitMinutes)
	}
	if p.CarCostPerKm < 0 {
		return fmt.Errorf("%w: car_cost_per_km must be >= 0, got %f", coreerrors.ErrConfigInvalid, p.CarCostPerKm)
	}
	return nil
}
