package seed

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/schoolhub/internal/app/models"
)

func TestPickGradesBoundsAndDistinctness(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		grades := pickGrades(rng)
		require.GreaterOrEqual(t, len(grades), 1)
		require.LessOrEqual(t, len(grades), 3)

		seen := map[int]bool{}
		for _, g := range grades {
			assert.GreaterOrEqual(t, g, models.MinGrade)
			assert.LessOrEqual(t, g, models.MaxGrade)
			assert.False(t, seen[g], "grades must be distinct")
			seen[g] = true
		}
	}
}

func TestPickGradesCountIsUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	counts := map[int]int{}
	const draws = 3000
	for i := 0; i < draws; i++ {
		counts[len(pickGrades(rng))]++
	}

	// Each target count 1..3 should land near draws/3; wide tolerance keeps
	// the check about skew, not PRNG minutiae.
	for size := 1; size <= 3; size++ {
		assert.InDelta(t, draws/3, counts[size], draws/10,
			"grade count %d drawn %d times", size, counts[size])
	}
}
