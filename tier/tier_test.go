package tier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveExactMatch(t *testing.T) {
	got := Resolve(200000)
	assert.Equal(t, "Series A Funded", got.Title)
	assert.Equal(t, int64(200000), got.Amount)

	got = Resolve(88888)
	assert.Equal(t, "The \"Faat\" (Prosperity) King", got.Title)
}

func TestResolveFallback(t *testing.T) {
	got := Resolve(12345)
	assert.Equal(t, "Lucky Winner", got.Title)
	assert.Equal(t, int64(12345), got.Amount)
	assert.NotEmpty(t, got.Message)
}

func TestResolveIsStable(t *testing.T) {
	a := Resolve(100000)
	b := Resolve(100000)
	assert.Equal(t, a, b)
}
