package config

import (
	"github.com/spf13/viper"
)

// Load reads engine parameters from an optional .env file and the
// environment, falling back to Defaults() for anything unset. It follows
// the same viper.SetDefault / viper.AutomaticEnv / best-effort
// viper.ReadInConfig shape as shivamshaw23-Hintro's config.Load: a missing
// .env file (the common case outside local development) is not an error.
func Load() (Params, error) {
	d := Defaults()

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("POPULATION_SIZE", d.PopulationSize)
	viper.SetDefault("MAX_GENERATIONS", d.MaxGenerations)
	viper.SetDefault("CROSSOVER_RATE", d.CrossoverRate)
	viper.SetDefault("MUTATION_RATE", d.MutationRate)

	viper.SetDefault("MAX_ITERATIONS", d.MaxIterations)
	viper.SetDefault("MAX_TIME_SECONDS", d.MaxTimeSeconds)
	viper.SetDefault("MAX_ITERATIONS_NO_IMPROVEMENT", d.MaxIterationsNoImprovement)
	viper.SetDefault("ARCHIVE_INIT_SIZE", d.ArchiveInitSize)
	viper.SetDefault("ARCHIVE_MAX_SIZE", d.ArchiveMaxSize)
	viper.SetDefault("ARCHIVE_EPSILON", d.ArchiveEpsilon)

	viper.SetDefault("WALKING_PREFERENCE_MINUTES", d.WalkingPreferenceMinutes)
	viper.SetDefault("DAILY_TIME_LIMIT_MINUTES", d.DailyTimeLimitMinutes)
	viper.SetDefault("CAR_COST_PER_KM", d.CarCostPerKm)

	viper.SetDefault("SEED", d.Seed)

	// Try to read .env; its absence (e.g. in CI) is expected, so errors are
	// ignored exactly as in the teacher's Hintro-derived Load().
	_ = viper.ReadInConfig()

	p := Params{
		PopulationSize: viper.GetInt("POPULATION_SIZE"),
		MaxGenerations: viper.GetInt("MAX_GENERATIONS"),
		CrossoverRate:  viper.GetFloat64("CROSSOVER_RATE"),
		MutationRate:   viper.GetFloat64("MUTATION_RATE"),

		MaxIterations:              viper.GetInt("MAX_ITERATIONS"),
		MaxTimeSeconds:             viper.GetFloat64("MAX_TIME_SECONDS"),
		MaxIterationsNoImprovement: viper.GetInt("MAX_ITERATIONS_NO_IMPROVEMENT"),
		ArchiveInitSize:            viper.GetInt("ARCHIVE_INIT_SIZE"),
		ArchiveMaxSize:             viper.GetInt("ARCHIVE_MAX_SIZE"),
		ArchiveEpsilon:             viper.GetFloat64("ARCHIVE_EPSILON"),

		WalkingPreferenceMinutes: viper.GetInt("WALKING_PREFERENCE_MINUTES"),
		DailyTimeLimitMinutes:    viper.GetInt("DAILY_TIME_LIMIT_MINUTES"),
		CarCostPerKm:             viper.GetFloat64("CAR_COST_PER_KM"),

		Seed: viper.GetInt64("SEED"),
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
