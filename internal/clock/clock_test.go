package clock_test

import (
	"testing"
	"time"

	"github.com/cixtor/binarycookies/v2/internal/clock"
	"github.com/stretchr/testify/assert"
)

func TestFixed_DefaultsWhenZero(t *testing.T) {
	clk := clock.NewFixed(time.Time{})
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), clk.Now())
}

func TestFixed_Advance(t *testing.T) {
	start := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	clk := clock.NewFixed(start)
	clk.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), clk.Now())
}

func TestReal_Now(t *testing.T) {
	before := time.Now()
	got := clock.Real{}.Now()
	assert.False(t, got.Before(before))
}
