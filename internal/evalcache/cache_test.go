package evalcache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tourplanner/internal/domain"
)

func TestKey_StableAndOrderSensitive(t *testing.T) {
	k1 := Key([]int{0, 1, 2}, []domain.TransportMode{domain.Walk, domain.Car})
	k2 := Key([]int{0, 1, 2}, []domain.TransportMode{domain.Walk, domain.Car})
	k3 := Key([]int{2, 1, 0}, []domain.TransportMode{domain.Walk, domain.Car})

	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
}

func TestKey_ModeSensitive(t *testing.T) {
	k1 := Key([]int{0, 1}, []domain.TransportMode{domain.Walk})
	k2 := Key([]int{0, 1}, []domain.TransportMode{domain.Car})
	assert.NotEqual(t, k1, k2)
}

func TestMemoryCache_GetSet(t *testing.T) {
	c := NewMemory()
	key := Key([]int{0, 1}, []domain.TransportMode{domain.Walk})

	_, ok := c.Get(key)
	assert.False(t, ok)

	want := Result{Obj: domain.ObjectiveVector{Cost: 5, Time: 10}}
	c.Set(key, want)

	got, ok := c.Get(key)
	assert.True(t, ok)
	assert.Equal(t, want, got)
}
