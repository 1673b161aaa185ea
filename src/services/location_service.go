package services

import (
	DB "Backend-Fieldforce/src/database"
	"Backend-Fieldforce/src/models"
	"Backend-Fieldforce/src/services/alerts"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	alertThreshold     time.Duration
	alertThresholdOnce sync.Once

	alertDeps     alerts.Deps
	alertDepsOnce sync.Once
)

// AlertThreshold continuous-outside duration that triggers the alert path.
func AlertThreshold() time.Duration {
	alertThresholdOnce.Do(func() {
		alertThreshold = 60 * time.Second
		if raw := os.Getenv("GEOFENCE_ALERT_THRESHOLD"); raw != "" {
			secs, err := strconv.Atoi(raw)
			if err != nil || secs <= 0 {
				log.Println("⚠️ Invalid GEOFENCE_ALERT_THRESHOLD, using 60s")
				return
			}
			alertThreshold = time.Duration(secs) * time.Second
		}
	})
	return alertThreshold
}

// AlertDeps dispatcher wiring shared by the asynq worker and the inline
// fallback path. SMTP config is optional; without it alerts degrade to a
// log line plus the forced checkout.
func AlertDeps() alerts.Deps {
	alertDepsOnce.Do(func() {
		alertDeps = alerts.Deps{
			Recipients:      alerts.RecipientsFromEnv(),
			ResolveEmployee: ResolveEmployee,
			ResolveProject:  ResolveProject,
			ForceCheckout:   ForceCheckout,
		}
		sender, err := alerts.NewSMTPSenderFromEnv()
		if err != nil {
			log.Println("⚠️ Geofence alert mail disabled:", err)
			return
		}
		alertDeps.Sender = sender
	})
	return alertDeps
}

// LocationResult ผลการบันทึกตำแหน่ง
type LocationResult struct {
	InsideGeofence         bool  `json:"insideGeofence"`
	OutsideDurationSeconds int64 `json:"outsideDurationSeconds"`
}

// lastInsideBefore returns the timestamp of the most recent ping classified
// inside the fence at or before now. Bounding by now keeps the excursion
// computation stable when later pings land concurrently.
func lastInsideBefore(ctx context.Context, employeeID, projectID int, now time.Time) (*time.Time, error) {
	var last models.LocationLog
	err := DB.LocationLogCollection.FindOne(ctx,
		bson.M{
			"employeeId":     employeeID,
			"projectId":      projectID,
			"insideGeofence": true,
			"timestamp":      bson.M{"$lte": now},
		},
		options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}}),
	).Decode(&last)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return &last.Timestamp, nil
}

// LogLocation บันทึกตำแหน่ง และตรวจจับการออกนอกพื้นที่
// Appends the classified ping, computes the continuous-outside duration,
// and fires the alert path when it crosses the threshold. The alert is
// fire-and-forget: its failures never fail the ping.
func LogLocation(ctx context.Context, employeeID, projectID int, latitude, longitude float64) (*LocationResult, error) {
	result, err := EvaluateGeofence(ctx, projectID, latitude, longitude)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ping := models.LocationLog{
		ID:             primitive.NewObjectID(),
		EmployeeID:     employeeID,
		ProjectID:      projectID,
		Latitude:       latitude,
		Longitude:      longitude,
		InsideGeofence: result.InsideGeofence,
		Timestamp:      now,
	}
	if _, err := DB.LocationLogCollection.InsertOne(ctx, ping); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}

	if result.InsideGeofence {
		return &LocationResult{InsideGeofence: true, OutsideDurationSeconds: 0}, nil
	}

	lastInside, err := lastInsideBefore(ctx, employeeID, projectID, now)
	if err != nil {
		return nil, err
	}

	threshold := AlertThreshold()
	outside := models.OutsideDuration(lastInside, now, threshold)
	if outside >= threshold {
		dispatchGeofenceAlert(employeeID, projectID, latitude, longitude, outside)
	}

	return &LocationResult{
		InsideGeofence:         false,
		OutsideDurationSeconds: int64(outside.Seconds()),
	}, nil
}

// dispatchGeofenceAlert enqueues the alert task, or runs the dispatcher in
// a goroutine when asynq is not available. Enqueue failures are logged and
// swallowed.
func dispatchGeofenceAlert(employeeID, projectID int, latitude, longitude float64, outside time.Duration) {
	outsideMinutes := int(outside.Minutes())

	task, err := alerts.NewGeofenceAlertTask(employeeID, projectID, latitude, longitude, outsideMinutes)
	if err != nil {
		log.Println("⚠️ Failed to build geofence alert task:", err)
		return
	}

	if DB.AsynqClient != nil {
		if _, err := DB.AsynqClient.Enqueue(task); err != nil {
			log.Println("⚠️ Failed to enqueue geofence alert:", err)
		}
		return
	}

	// dev mode without Redis: dispatch inline off the request path
	var payload alerts.GeofenceAlertPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Println("⚠️ Failed to decode geofence alert payload:", err)
		return
	}
	go alerts.Dispatch(context.Background(), payload, AlertDeps())
}
