package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, 0, Abs(0))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, -5, Min(-5, -3))
	assert.Equal(t, -3, Max(-5, -3))
}

func TestNps(t *testing.T) {
	nps := Nps(2_000_000, time.Second)
	assert.InDelta(t, 2_000_000, nps, 1)
}

func TestFormatCountUsesThousandsSeparator(t *testing.T) {
	assert.Equal(t, "4.865.609", FormatCount(4865609))
}
