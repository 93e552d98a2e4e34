package movns

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourplanner/internal/config"
	"tourplanner/internal/domain"
	"tourplanner/internal/evaluator"
)

type stubOracle struct{}

func (stubOracle) Distance(a, b int, mode domain.TransportMode) (float64, error) { return 1, nil }
func (stubOracle) TravelTime(a, b int, mode domain.TransportMode) (float64, error) {
	return 1, nil
}
func (stubOracle) TravelCost(a, b int, mode domain.TransportMode) (float64, error) {
	return 1, nil
}
func (stubOracle) PreferredMode(a, b int) (domain.TransportMode, error) {
	return domain.Walk, nil
}

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
	p.ArchiveInitSize = 5
	p.MaxIterations = 50
	p.MaxTimeSeconds = 5
	p.MaxIterationsNoImprovement = 30
	p.Seed = 99
	return p
}

func TestEngine_StopsWithinMaxIterations(t *testing.T) {
	attractions := testAttractions(6)
	eval := evaluator.New(config.Defaults().DailyTimeLimitMinutes)
	engine := New(attractions, stubOracle{}, eval, testParams(), nil)

	archive, err := engine.Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Greater(t, archive.Len(), 0)
}

func TestEngine_ArchiveIsNonDominated(t *testing.T) {
	attractions := testAttractions(6)
	eval := evaluator.New(config.Defaults().DailyTimeLimitMinutes)
	engine := New(attractions, stubOracle{}, eval, testParams(), nil)

	archive, err := engine.Run(context.Background(), nil)
	require.NoError(t, err)

	items := archive.Items()
	for i := range items {
		for j := range items {
			if i == j {
				continue
			}
			assert.False(t, items[i].Obj.Dominates(items[j].Obj))
		}
	}
}

func TestEngine_CancellationReturnsArchiveSoFar(t *testing.T) {
	attractions := testAttractions(6)
	eval := evaluator.New(config.Defaults().DailyTimeLimitMinutes)
	params := testParams()
	params.MaxIterations = 100000
	engine := New(attractions, stubOracle{}, eval, params, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	archive, err := engine.Run(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, archive)
}

func TestEngine_EmptyAttractionsReturnsEmptyArchiveNoError(t *testing.T) {
	eval := evaluator.New(config.Defaults().DailyTimeLimitMinutes)
	engine := New(nil, stubOracle{}, eval, testParams(), nil)

	archive, err := engine.Run(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, archive)
	assert.Equal(t, 0, archive.Len())
}
