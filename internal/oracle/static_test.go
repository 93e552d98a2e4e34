package oracle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourplanner/internal/coreerrors"
	"tourplanner/internal/domain"
)

func testMatrices() domain.Matrices {
	return domain.Matrices{
		CarDistance:  [][]float64{{0, 2000, 3000}, {2000, 0, 1500}, {3000, 1500, 0}},
		WalkDistance: [][]float64{{0, 1800, 2800}, {1800, 0, 1400}, {2800, 1400, 0}},
		CarTime:      [][]float64{{0, 5, 8}, {5, 0, 4}, {8, 4, 0}},
		WalkTime:     [][]float64{{0, 20, 30}, {20, 0, 16}, {30, 16, 0}},
	}
}

func TestStaticOracle_TravelTime(t *testing.T) {
	orc, err := NewStatic(testMatrices(), 15, 0.5)
	require.NoError(t, err)

	carTime, err := orc.TravelTime(0, 1, domain.Car)
	require.NoError(t, err)
	assert.Equal(t, 5.0, carTime)

	walkTime, err := orc.TravelTime(0, 1, domain.Walk)
	require.NoError(t, err)
	assert.Equal(t, 20.0, walkTime)

	same, err := orc.TravelTime(0, 0, domain.Car)
	require.NoError(t, err)
	assert.Equal(t, 0.0, same)
}

func TestStaticOracle_TravelCost(t *testing.T) {
	orc, err := NewStatic(testMatrices(), 15, 0.5)
	require.NoError(t, err)

	carCost, err := orc.TravelCost(0, 1, domain.Car)
	require.NoError(t, err)
	assert.Equal(t, 1.0, carCost) // 2000m = 2km * 0.5

	walkCost, err := orc.TravelCost(0, 1, domain.Walk)
	require.NoError(t, err)
	assert.Equal(t, 0.0, walkCost)
}

func TestStaticOracle_PreferredMode(t *testing.T) {
	orc, err := NewStatic(testMatrices(), 15, 0.5)
	require.NoError(t, err)

	mode, err := orc.PreferredMode(1, 2) // walk time 16 > 15 minutes
	require.NoError(t, err)
	assert.Equal(t, domain.Car, mode)

	mode, err = orc.PreferredMode(0, 1) // walk time 20 > 15 minutes... still CAR
	require.NoError(t, err)
	assert.Equal(t, domain.Car, mode)
}

func TestStaticOracle_PreferredMode_PrefersWalkBelowThreshold(t *testing.T) {
	matrices := testMatrices()
	matrices.WalkTime[0][1] = 10
	matrices.WalkTime[1][0] = 10
	orc, err := NewStatic(matrices, 15, 0.5)
	require.NoError(t, err)

	mode, err := orc.PreferredMode(0, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.Walk, mode)
}

func TestStaticOracle_UnknownIndex(t *testing.T) {
	orc, err := NewStatic(testMatrices(), 15, 0.5)
	require.NoError(t, err)

	_, err = orc.TravelTime(0, 99, domain.Car)
	require.Error(t, err)
	assert.True(t, errors.Is(err, coreerrors.ErrUnknownAttraction))
}

func TestNewStatic_RejectsInvalidMatrices(t *testing.T) {
	bad := domain.Matrices{
		CarDistance:  [][]float64{{0, 1}, {1, 0}, {1, 1}}, // not square
		WalkDistance: [][]float64{{0, 1}, {1, 0}},
		CarTime:      [][]float64{{0, 1}, {1, 0}},
		WalkTime:     [][]float64{{0, 1}, {1, 0}},
	}
	_, err := NewStatic(bad, 15, 0.5)
	assert.Error(t, err)
}
