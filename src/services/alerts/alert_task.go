package alerts

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const TypeGeofenceAlert = "geofence:alert"

// GeofenceAlertPayload describes one threshold crossing. AlertID is only a
// correlation id for logs — alerts are deliberately at-least-once, the same
// excursion re-fires on every outside ping past the threshold.
type GeofenceAlertPayload struct {
	AlertID        string  `json:"alertId"`
	EmployeeID     int     `json:"employeeId"`
	ProjectID      int     `json:"projectId"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	OutsideMinutes int     `json:"outsideMinutes"`
}

func NewGeofenceAlertTask(employeeID, projectID int, latitude, longitude float64, outsideMinutes int) (*asynq.Task, error) {
	payload := GeofenceAlertPayload{
		AlertID:        uuid.NewString(),
		EmployeeID:     employeeID,
		ProjectID:      projectID,
		Latitude:       latitude,
		Longitude:      longitude,
		OutsideMinutes: outsideMinutes,
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeGeofenceAlert, b), nil
}
