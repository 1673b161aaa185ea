package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceStateMachine(t *testing.T) {
	checkInAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	checkOutAt := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	t.Run("CheckInSetsPending", func(t *testing.T) {
		record := Attendance{EmployeeID: 7, ProjectID: 12}

		err := record.ApplyCheckIn(checkInAt)
		assert.NoError(t, err)
		assert.Equal(t, checkInAt, *record.CheckIn)
		assert.Nil(t, record.CheckOut)
		assert.True(t, record.PendingCheckout)
		assert.True(t, record.InsideGeofenceAtCheckin)
	})

	t.Run("SecondCheckInFails", func(t *testing.T) {
		record := Attendance{}
		assert.NoError(t, record.ApplyCheckIn(checkInAt))

		err := record.ApplyCheckIn(checkInAt.Add(time.Hour))
		assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
		assert.Equal(t, checkInAt, *record.CheckIn)
	})

	t.Run("CheckOutBeforeCheckInFails", func(t *testing.T) {
		record := Attendance{}
		err := record.ApplyCheckOut(checkOutAt, true)
		assert.ErrorIs(t, err, ErrNotCheckedIn)
		assert.Nil(t, record.CheckOut)
	})

	t.Run("CheckOutClearsPending", func(t *testing.T) {
		record := Attendance{}
		assert.NoError(t, record.ApplyCheckIn(checkInAt))

		err := record.ApplyCheckOut(checkOutAt, true)
		assert.NoError(t, err)
		assert.Equal(t, checkOutAt, *record.CheckOut)
		assert.False(t, record.PendingCheckout)
		assert.True(t, *record.InsideGeofenceAtCheckout)
	})

	t.Run("CheckOutOutsideIsAllowedAndRecorded", func(t *testing.T) {
		record := Attendance{}
		assert.NoError(t, record.ApplyCheckIn(checkInAt))

		err := record.ApplyCheckOut(checkOutAt, false)
		assert.NoError(t, err)
		assert.False(t, *record.InsideGeofenceAtCheckout)
	})

	t.Run("SecondCheckOutFails", func(t *testing.T) {
		record := Attendance{}
		assert.NoError(t, record.ApplyCheckIn(checkInAt))
		assert.NoError(t, record.ApplyCheckOut(checkOutAt, true))

		err := record.ApplyCheckOut(checkOutAt.Add(time.Minute), true)
		assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
		assert.Equal(t, checkOutAt, *record.CheckOut)
	})
}

func TestApplyForceCheckout(t *testing.T) {
	checkInAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	forcedAt := time.Date(2025, 3, 10, 10, 2, 0, 0, time.UTC)

	t.Run("ClosesPendingRecordAsOutside", func(t *testing.T) {
		record := Attendance{}
		assert.NoError(t, record.ApplyCheckIn(checkInAt))

		changed := record.ApplyForceCheckout(forcedAt)
		assert.True(t, changed)
		assert.Equal(t, forcedAt, *record.CheckOut)
		assert.False(t, record.PendingCheckout)
		assert.False(t, *record.InsideGeofenceAtCheckout)
	})

	t.Run("NoOpWithoutCheckIn", func(t *testing.T) {
		record := Attendance{}
		assert.False(t, record.ApplyForceCheckout(forcedAt))
		assert.Nil(t, record.CheckOut)
	})

	t.Run("NeverOverwritesExistingCheckOut", func(t *testing.T) {
		checkOutAt := checkInAt.Add(8 * time.Hour)
		record := Attendance{}
		assert.NoError(t, record.ApplyCheckIn(checkInAt))
		assert.NoError(t, record.ApplyCheckOut(checkOutAt, true))

		assert.False(t, record.ApplyForceCheckout(forcedAt))
		assert.Equal(t, checkOutAt, *record.CheckOut)
		assert.True(t, *record.InsideGeofenceAtCheckout)
	})

	t.Run("Idempotent", func(t *testing.T) {
		record := Attendance{}
		assert.NoError(t, record.ApplyCheckIn(checkInAt))
		assert.True(t, record.ApplyForceCheckout(forcedAt))

		assert.False(t, record.ApplyForceCheckout(forcedAt.Add(time.Minute)))
		assert.Equal(t, forcedAt, *record.CheckOut)
	})
}

func TestDeriveStatus(t *testing.T) {
	checkInAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	checkOutAt := checkInAt.Add(8 * time.Hour)

	t.Run("NotCheckedIn", func(t *testing.T) {
		record := Attendance{}
		assert.Equal(t, StatusNotCheckedIn, record.DeriveStatus())
	})

	t.Run("Pending", func(t *testing.T) {
		record := Attendance{}
		assert.NoError(t, record.ApplyCheckIn(checkInAt))
		assert.Equal(t, StatusPending, record.DeriveStatus())
	})

	t.Run("CompletedWhenCheckedOutInside", func(t *testing.T) {
		record := Attendance{}
		assert.NoError(t, record.ApplyCheckIn(checkInAt))
		assert.NoError(t, record.ApplyCheckOut(checkOutAt, true))
		assert.Equal(t, StatusCompleted, record.DeriveStatus())
	})

	t.Run("OutsideWhenCheckedOutOutside", func(t *testing.T) {
		record := Attendance{}
		assert.NoError(t, record.ApplyCheckIn(checkInAt))
		assert.NoError(t, record.ApplyCheckOut(checkOutAt, false))
		assert.Equal(t, StatusOutside, record.DeriveStatus())
	})

	t.Run("OutsideAfterForcedCheckout", func(t *testing.T) {
		record := Attendance{}
		assert.NoError(t, record.ApplyCheckIn(checkInAt))
		assert.True(t, record.ApplyForceCheckout(checkOutAt))
		assert.Equal(t, StatusOutside, record.DeriveStatus())
	})
}

func TestTruncateToDay(t *testing.T) {
	bangkok, err := time.LoadLocation("Asia/Bangkok")
	assert.NoError(t, err)

	t.Run("MidnightInUTC", func(t *testing.T) {
		ts := time.Date(2025, 3, 10, 23, 45, 12, 0, time.UTC)
		day := TruncateToDay(ts, time.UTC)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), day)
	})

	t.Run("DayBoundaryFollowsZoneNotServer", func(t *testing.T) {
		// 18:30 UTC is already 01:30 the next day in Bangkok
		ts := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)
		day := TruncateToDay(ts, bangkok)
		assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, bangkok), day)
	})

	t.Run("SameInstantSameDayRegardlessOfInputZone", func(t *testing.T) {
		utc := time.Date(2025, 3, 10, 3, 0, 0, 0, time.UTC)
		assert.Equal(t, TruncateToDay(utc, bangkok), TruncateToDay(utc.In(bangkok), bangkok))
	})
}
