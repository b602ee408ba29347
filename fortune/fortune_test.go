package fortune

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawIsDeterministicForSeed(t *testing.T) {
	a := Draw(rand.New(rand.NewSource(7)))
	b := Draw(rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
}

func TestDrawCoversTable(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		seen[Draw(rng).ID] = true
	}
	require.Len(t, seen, len(All()))
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Message = "mutated"
	assert.NotEqual(t, a[0].Message, All()[0].Message)
}
