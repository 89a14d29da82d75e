package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoller_SameSeedSameSequence(t *testing.T) {
	a := New(&Config{Seed: 42})
	b := New(&Config{Seed: 42})

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestRoller_Bounds(t *testing.T) {
	r := New(nil)

	for i := 0; i < 1000; i++ {
		n := r.Intn(7)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 7)

		f := r.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}

	assert.Equal(t, 0, r.Intn(0))
}
