package nsga2

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourplanner/internal/config"
	"tourplanner/internal/domain"
	"tourplanner/internal/evaluator"
)

func testAttractions(n int) []domain.Attraction {
	attractions := make([]domain.Attraction, n)
	for i := range attractions {
		attractions[i] = domain.Attraction{
			Name:         string(rune('A' + i)),
			Neighborhood: string(rune('A' + i%3)),
			VisitMinutes: 10,
			Cost:         1,
			OpenMinute:   domain.FullDayOpen,
			CloseMinute:  domain.FullDayClose,
		}
	}
	return attractions
}

func testParams() config.Params {
	p := config.Defaults()
	p.PopulationSize = 10
	p.MaxGenerations = 5
	p.Seed = 123
	return p
}

func runOnce(t *testing.T) []domain.Individual {
	t.Helper()
	attractions := testAttractions(6)
	eval := evaluator.New(config.Defaults().DailyTimeLimitMinutes)
	engine := New(attractions, stubOracle{}, eval, testParams(), nil)

	front, err := engine.Run(context.Background(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, front)
	return front
}

func TestEngine_DeterministicAcrossRunsWithSameSeed(t *testing.T) {
	first := runOnce(t)
	second := runOnce(t)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Obj.Minimize(), second[i].Obj.Minimize())
	}
}

func TestEngine_FrontIsNonDominated(t *testing.T) {
	front := runOnce(t)
	for i := range front {
		for j := range front {
			if i == j {
				continue
			}
			assert.False(t, front[i].Obj.Dominates(front[j].Obj), "front member %d dominates %d", i, j)
		}
	}
}

func TestEngine_CancellationReturnsEarly(t *testing.T) {
	attractions := testAttractions(6)
	eval := evaluator.New(config.Defaults().DailyTimeLimitMinutes)
	params := testParams()
	params.MaxGenerations = 1000
	engine := New(attractions, stubOracle{}, eval, params, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	front, err := engine.Run(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, front)
}

func TestEngine_EmptyAttractionsReturnsEmptyFrontNoError(t *testing.T) {
	eval := evaluator.New(config.Defaults().DailyTimeLimitMinutes)
	engine := New(nil, stubOracle{}, eval, testParams(), nil)

	front, err := engine.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, front)
}
