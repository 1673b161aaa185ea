package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocationLog บันทึกตำแหน่งของพนักงาน
// Append-only: a ping is never updated after insert, and insideGeofence is
// computed once at ingestion time, never recomputed.
type LocationLog struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID     int                `bson:"employeeId" json:"employeeId"`
	ProjectID      int                `bson:"projectId" json:"projectId"`
	Latitude       float64            `bson:"latitude" json:"latitude"`
	Longitude      float64            `bson:"longitude" json:"longitude"`
	InsideGeofence bool               `bson:"insideGeofence" json:"insideGeofence"`
	Timestamp      time.Time          `bson:"timestamp" json:"timestamp"`
}

// OutsideDuration computes how long a worker has been continuously outside
// the geofence as of now, given the timestamp of the most recent ping that
// was classified inside. A worker who has never pinged inside is treated as
// already past the alert threshold (threshold + 1 minute), same as the
// original reference behavior.
func OutsideDuration(lastInside *time.Time, now time.Time, threshold time.Duration) time.Duration {
	if lastInside == nil {
		return threshold + time.Minute
	}
	d := now.Sub(*lastInside)
	if d < 0 {
		return 0
	}
	return d
}
