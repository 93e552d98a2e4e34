package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"tourplanner/internal/coreerrors"
)

func TestDefaults_Valid(t *testing.T) {
	assert.NoError(t, Defaults().Validate())
}

func TestValidate_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Params)
	}{
		{"zero population", func(p *Params) { p.PopulationSize = 0 }},
		{"zero generations", func(p *Params) { p.MaxGenerations = 0 }},
		{"crossover rate too high", func(p *Params) { p.CrossoverRate = 1.5 }},
		{"negative mutation rate", func(p *Params) { p.MutationRate = -0.1 }},
		{"zero max iterations", func(p *Params) { p.MaxIterations = 0 }},
		{"zero max time", func(p *Params) { p.MaxTimeSeconds = 0 }},
		{"zero no-improvement budget", func(p *Params) { p.MaxIterationsNoImprovement = 0 }},
		{"zero archive init size", func(p *Params) { p.ArchiveInitSize = 0 }},
		{"zero archive max size", func(p *Params) { p.ArchiveMaxSize = 0 }},
		{"negative epsilon", func(p *Params) { p.ArchiveEpsilon = -1 }},
		{"negative walking preference", func(p *Params) { p.WalkingPreferenceMinutes = -1 }},
		{"zero daily limit", func(p *Params) { p.DailyTimeLimitMinutes = 0 }},
		{"negative car cost", func(p *Params) { p.CarCostPerKm = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Defaults()
			tt.modify(&p)
			err := p.Validate()
			assert.Error(t, err)
			assert.True(t, errors.Is(err, coreerrors.ErrConfigInvalid))
		})
	}
}
