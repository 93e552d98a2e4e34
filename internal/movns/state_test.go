package movns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplorationState_NextUnexploredInOrder(t *testing.T) {
	s := newExplorationState()
	kind, ok := s.nextUnexplored()
	assert.True(t, ok)
	assert.Equal(t, TransportModeChange, kind)

	s.markExplored(TransportModeChange)
	kind, ok = s.nextUnexplored()
	assert.True(t, ok)
	assert.Equal(t, LocationReallocation, kind)
}

func TestExplorationState_AllExplored(t *testing.T) {
	s := newExplorationState()
	assert.False(t, s.allExplored())

	for k := Neighborhood(0); int(k) < numNeighborhoods; k++ {
		s.markExplored(k)
	}
	assert.True(t, s.allExplored())

	_, ok := s.nextUnexplored()
	assert.False(t, ok)
}

func TestExplorationState_Reset(t *testing.T) {
	s := newExplorationState()
	s.markExplored(TransportModeChange)
	s.reset()
	assert.False(t, s.explored[TransportModeChange])
}
