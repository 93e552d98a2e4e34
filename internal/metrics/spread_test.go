package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"tourplanner/internal/coreerrors"
	"tourplanner/internal/domain"
)

func TestSpread_TooFewPoints(t *testing.T) {
	_, err := Spread([]domain.Individual{ind(1, 1)})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, coreerrors.ErrEmptyArchive))
}

func TestSpread_EvenlySpacedIsLow(t *testing.T) {
	front := []domain.Individual{ind(1, 1), ind(2, 2), ind(3, 3)}
	s, err := Spread(front)
	assert.NoError(t, err)
	assert.InDelta(t, 0.0, s, 1e-9)
}

func TestSpread_UnevenSpacingIsHigher(t *testing.T) {
	even := []domain.Individual{ind(1, 1), ind(2, 2), ind(3, 3)}
	uneven := []domain.Individual{ind(1, 1), ind(1.1, 1.1), ind(10, 10)}

	sEven, err := Spread(even)
	assert.NoError(t, err)
	sUneven, err := Spread(uneven)
	assert.NoError(t, err)
	assert.Greater(t, sUneven, sEven)
}
