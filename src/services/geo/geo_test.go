package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	t.Run("ZeroDistanceForSamePoint", func(t *testing.T) {
		assert.Equal(t, 0.0, DistanceMeters(13.7563, 100.5018, 13.7563, 100.5018))
	})

	t.Run("Symmetric", func(t *testing.T) {
		d1 := DistanceMeters(13.7563, 100.5018, 18.7883, 98.9853)
		d2 := DistanceMeters(18.7883, 98.9853, 13.7563, 100.5018)
		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("KnownDistanceNearEquator", func(t *testing.T) {
		// 0.0008 degrees of longitude on the equator is about 89 m
		d := DistanceMeters(0, 0, 0, 0.0008)
		assert.InDelta(t, 89.0, d, 1.0)

		// 0.002 degrees is about 222 m
		d = DistanceMeters(0, 0, 0, 0.002)
		assert.InDelta(t, 222.0, d, 1.0)
	})

	t.Run("NaNCoordinatesYieldNaN", func(t *testing.T) {
		d := DistanceMeters(math.NaN(), 0, 0, 0)
		assert.True(t, math.IsNaN(d))
	})
}

func TestInside(t *testing.T) {
	t.Run("WithinRadius", func(t *testing.T) {
		assert.True(t, Inside(89, 100))
	})

	t.Run("BoundaryCountsAsInside", func(t *testing.T) {
		assert.True(t, Inside(100, 100))
	})

	t.Run("OutsideRadius", func(t *testing.T) {
		assert.False(t, Inside(100.01, 100))
		assert.False(t, Inside(222, 100))
	})
}

func TestGeofenceScenarios(t *testing.T) {
	// project center (0,0), radius 100 m
	const radius = 100.0

	t.Run("WorkerAt89MetersIsInside", func(t *testing.T) {
		d := DistanceMeters(0, 0.0008, 0, 0)
		assert.True(t, Inside(d, radius))
	})

	t.Run("WorkerAt222MetersIsOutside", func(t *testing.T) {
		d := DistanceMeters(0, 0.002, 0, 0)
		assert.False(t, Inside(d, radius))
	})
}
