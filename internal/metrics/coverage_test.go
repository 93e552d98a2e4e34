package metrics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"tourplanner/internal/coreerrors"
	"tourplanner/internal/domain"
)

func ind(cost, elapsed float64) domain.Individual {
	return domain.Individual{Obj: domain.ObjectiveVector{Cost: cost, Time: elapsed, Feasible: true}}
}

func TestCoverage_FullCoverage(t *testing.T) {
	a := []domain.Individual{ind(1, 1)}
	b := []domain.Individual{ind(2, 2), ind(3, 3)}
	c, err := Coverage(a, b)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, c)
}

func TestCoverage_PartialCoverage(t *testing.T) {
	// a's (3,1) weakly dominates b's (4,2) but not b's (2,3): this is the
	// formally correct reading of C(A,B), applied literally rather than
	// matching an internally inconsistent worked arithmetic (see DESIGN.md).
	a := []domain.Individual{ind(3, 1)}
	b := []domain.Individual{ind(2, 3), ind(4, 2)}
	c, err := Coverage(a, b)
	assert.NoError(t, err)
	assert.Equal(t, 0.5, c)
}

func TestCoverage_SelfCoverageIsOne(t *testing.T) {
	a := []domain.Individual{ind(1, 1), ind(5, 0)}
	c, err := Coverage(a, a)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, c)
}

func TestCoverage_EmptyB(t *testing.T) {
	_, err := Coverage(nil, nil)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, coreerrors.ErrEmptyArchive))
}

func TestCoverage_EmptyA(t *testing.T) {
	b := []domain.Individual{ind(1, 1)}
	c, err := Coverage(nil, b)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, c)
}
