package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOutsideDuration(t *testing.T) {
	threshold := 60 * time.Second
	now := time.Date(2025, 3, 10, 10, 2, 0, 0, time.UTC)

	t.Run("MeasuredFromLastInsidePing", func(t *testing.T) {
		lastInside := now.Add(-2 * time.Minute) // inside at 10:00, outside ping at 10:02
		d := OutsideDuration(&lastInside, now, threshold)
		assert.Equal(t, 120*time.Second, d)
	})

	t.Run("NeverInsideIsAlreadyPastThreshold", func(t *testing.T) {
		d := OutsideDuration(nil, now, threshold)
		assert.Greater(t, d, threshold)
	})

	t.Run("InsidePingAtNowResetsToZero", func(t *testing.T) {
		d := OutsideDuration(&now, now, threshold)
		assert.Equal(t, time.Duration(0), d)
	})

	t.Run("ClockSkewClampsToZero", func(t *testing.T) {
		lastInside := now.Add(30 * time.Second)
		d := OutsideDuration(&lastInside, now, threshold)
		assert.Equal(t, time.Duration(0), d)
	})

	t.Run("MonotonicAcrossContiguousOutsidePings", func(t *testing.T) {
		lastInside := now.Add(-90 * time.Second)

		prev := time.Duration(-1)
		for i := 0; i < 5; i++ {
			ping := now.Add(time.Duration(i) * 30 * time.Second)
			d := OutsideDuration(&lastInside, ping, threshold)
			assert.GreaterOrEqual(t, d, prev)
			prev = d
		}
	})
}
