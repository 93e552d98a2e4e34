package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tourplanner/internal/domain"
)

func TestEpsilonFilter_KeepsOneRepresentativePerBox(t *testing.T) {
	front := []domain.Individual{
		ind(1.0, 1.0),
		ind(1.02, 1.02), // same epsilon-box as the above at epsilon=0.1
	}
	epsilon := [4]float64{0.1, 0.1, 0.1, 0.1}
	survivors := EpsilonFilter(front, epsilon)
	assert.Len(t, survivors, 1)
}

func TestEpsilonFilter_DropsDominatedBoxes(t *testing.T) {
	front := []domain.Individual{
		ind(1.0, 1.0),
		ind(5.0, 5.0), // its box is epsilon-dominated by the first
	}
	epsilon := [4]float64{0.1, 0.1, 0.1, 0.1}
	survivors := EpsilonFilter(front, epsilon)
	assert.Len(t, survivors, 1)
	assert.Equal(t, 1.0, survivors[0].Obj.Cost)
}

func TestEpsilonFilter_KeepsNonDominatedBoxes(t *testing.T) {
	front := []domain.Individual{
		ind(1.0, 5.0),
		ind(5.0, 1.0),
	}
	epsilon := [4]float64{0.1, 0.1, 0.1, 0.1}
	survivors := EpsilonFilter(front, epsilon)
	assert.Len(t, survivors, 2)
}
