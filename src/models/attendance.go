package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance สถานะการเข้างานของพนักงานต่อโปรเจกต์ต่อวัน
// Keyed by (employeeId, projectId, date) — date is midnight in the
// attendance timezone. One record per key, created on first check-in.
type Attendance struct {
	ID                       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID               int                `bson:"employeeId" json:"employeeId"`
	ProjectID                int                `bson:"projectId" json:"projectId"`
	Date                     time.Time          `bson:"date" json:"date"`
	CheckIn                  *time.Time         `bson:"checkIn,omitempty" json:"checkIn"`
	CheckOut                 *time.Time         `bson:"checkOut,omitempty" json:"checkOut"`
	PendingCheckout          bool               `bson:"pendingCheckout" json:"pendingCheckout"`
	InsideGeofenceAtCheckin  bool               `bson:"insideGeofenceAtCheckin" json:"insideGeofenceAtCheckin"`
	InsideGeofenceAtCheckout *bool              `bson:"insideGeofenceAtCheckout,omitempty" json:"insideGeofenceAtCheckout"`
}

// Derived attendance statuses for history views.
const (
	StatusNotCheckedIn = "NOT_CHECKED_IN"
	StatusPending      = "PENDING"
	StatusOutside      = "OUTSIDE"
	StatusCompleted    = "COMPLETED"
)

// AttendanceWithStatus annotates a record with its derived status.
type AttendanceWithStatus struct {
	Attendance `bson:",inline"`
	Status     string `json:"status"`
}

// ApplyCheckIn records a check-in. The caller must already have verified
// geofence membership; a record is only ever created inside the fence.
func (a *Attendance) ApplyCheckIn(now time.Time) error {
	if a.CheckIn != nil {
		return ErrAlreadyCheckedIn
	}
	a.CheckIn = &now
	a.CheckOut = nil
	a.PendingCheckout = true
	a.InsideGeofenceAtCheckin = true
	return nil
}

// ApplyCheckOut records a worker-initiated check-out. Checking out while
// outside the fence is allowed; insideGeofence just records the fact.
func (a *Attendance) ApplyCheckOut(now time.Time, insideGeofence bool) error {
	if a.CheckIn == nil {
		return ErrNotCheckedIn
	}
	if a.CheckOut != nil {
		return ErrAlreadyCheckedOut
	}
	a.CheckOut = &now
	a.PendingCheckout = false
	a.InsideGeofenceAtCheckout = &insideGeofence
	return nil
}

// ApplyForceCheckout records a system-initiated check-out after a sustained
// geofence violation. Idempotent: returns false without touching the record
// when there is nothing to close. Never overwrites an existing checkOut.
func (a *Attendance) ApplyForceCheckout(now time.Time) bool {
	if a.CheckIn == nil || a.CheckOut != nil {
		return false
	}
	outside := false
	a.CheckOut = &now
	a.PendingCheckout = false
	a.InsideGeofenceAtCheckout = &outside
	return true
}

// DeriveStatus maps the record's fields to its display status.
func (a *Attendance) DeriveStatus() string {
	if a.CheckIn == nil {
		return StatusNotCheckedIn
	}
	if a.CheckOut == nil {
		return StatusPending
	}
	if a.InsideGeofenceAtCheckout != nil && !*a.InsideGeofenceAtCheckout {
		return StatusOutside
	}
	return StatusCompleted
}

// TruncateToDay returns midnight of t's calendar day in loc.
func TruncateToDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
