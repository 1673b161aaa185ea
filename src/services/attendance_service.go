package services

import (
	DB "Backend-Fieldforce/src/database"
	"Backend-Fieldforce/src/models"
	"Backend-Fieldforce/src/utils"
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	attendanceLoc     *time.Location
	attendanceLocOnce sync.Once
)

// AttendanceLocation returns the timezone used for the calendar-day key.
// Midnight truncation always happens in this zone, never server-local time,
// so a day never splits differently between client and server.
func AttendanceLocation() *time.Location {
	attendanceLocOnce.Do(func() {
		name := os.Getenv("ATTENDANCE_TZ")
		if name == "" {
			attendanceLoc = time.UTC
			return
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Println("⚠️ Invalid ATTENDANCE_TZ, using UTC:", err)
			attendanceLoc = time.UTC
			return
		}
		attendanceLoc = loc
	})
	return attendanceLoc
}

func findAttendance(ctx context.Context, employeeID, projectID int, day time.Time) (*models.Attendance, error) {
	var record models.Attendance
	err := DB.AttendanceCollection.FindOne(ctx, bson.M{
		"employeeId": employeeID,
		"projectId":  projectID,
		"date":       day,
	}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return &record, nil
}

func saveAttendance(ctx context.Context, record *models.Attendance) error {
	_, err := DB.AttendanceCollection.UpdateOne(ctx,
		bson.M{"_id": record.ID},
		bson.M{"$set": bson.M{
			"checkIn":                  record.CheckIn,
			"checkOut":                 record.CheckOut,
			"pendingCheckout":          record.PendingCheckout,
			"insideGeofenceAtCheckin":  record.InsideGeofenceAtCheckin,
			"insideGeofenceAtCheckout": record.InsideGeofenceAtCheckout,
		}},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	return nil
}

// CheckIn บันทึกการเข้างาน
// Geofence membership is mandatory: a worker outside the project boundary
// cannot create an attendance record.
func CheckIn(ctx context.Context, employeeID, projectID int, latitude, longitude float64) (*models.Attendance, error) {
	result, err := EvaluateGeofence(ctx, projectID, latitude, longitude)
	if err != nil {
		return nil, err
	}
	if !result.InsideGeofence {
		return nil, models.ErrOutsideGeofence
	}

	now := time.Now()
	day := models.TruncateToDay(now, AttendanceLocation())

	release, err := utils.LockAttendanceKey(employeeID, projectID, day)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	defer release()

	record, err := findAttendance(ctx, employeeID, projectID, day)
	if err != nil {
		return nil, err
	}

	if record == nil {
		record = &models.Attendance{
			ID:         primitive.NewObjectID(),
			EmployeeID: employeeID,
			ProjectID:  projectID,
			Date:       day,
		}
		if err := record.ApplyCheckIn(now); err != nil {
			return nil, err
		}
		if _, err := DB.AttendanceCollection.InsertOne(ctx, record); err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
		}
		return record, nil
	}

	if err := record.ApplyCheckIn(now); err != nil {
		return nil, err
	}
	if err := saveAttendance(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// CheckOut บันทึกการออกงาน
// Allowed even outside the fence; insideGeofenceAtCheckout records the fact.
func CheckOut(ctx context.Context, employeeID, projectID int, latitude, longitude float64) (*models.Attendance, error) {
	result, err := EvaluateGeofence(ctx, projectID, latitude, longitude)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	day := models.TruncateToDay(now, AttendanceLocation())

	release, err := utils.LockAttendanceKey(employeeID, projectID, day)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	defer release()

	record, err := findAttendance(ctx, employeeID, projectID, day)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, models.ErrNotCheckedIn
	}

	if err := record.ApplyCheckOut(now, result.InsideGeofence); err != nil {
		return nil, err
	}
	if err := saveAttendance(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ForceCheckout ปิดการเข้างานโดยระบบ หลังออกนอกพื้นที่นานเกินกำหนด
// Idempotent: a record that is already checked out, or was never checked
// in, is left untouched. An existing checkOut is never overwritten.
func ForceCheckout(ctx context.Context, employeeID, projectID int, now time.Time) error {
	day := models.TruncateToDay(now, AttendanceLocation())

	release, err := utils.LockAttendanceKey(employeeID, projectID, day)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	defer release()

	record, err := findAttendance(ctx, employeeID, projectID, day)
	if err != nil {
		return err
	}
	if record == nil {
		return nil
	}

	if !record.ApplyForceCheckout(now) {
		return nil
	}
	return saveAttendance(ctx, record)
}

// GetToday returns today's attendance record, or nil when the worker has
// not checked in yet (not an error).
func GetToday(ctx context.Context, employeeID, projectID int) (*models.Attendance, error) {
	day := models.TruncateToDay(time.Now(), AttendanceLocation())
	return findAttendance(ctx, employeeID, projectID, day)
}

// GetAttendanceHistory returns attendance records for a worker/project,
// newest day first, each annotated with its derived status.
func GetAttendanceHistory(ctx context.Context, employeeID, projectID int, params models.PaginationParams) (*models.PaginatedResponse, error) {
	filter := bson.M{"employeeId": employeeID, "projectId": projectID}

	total, err := DB.AttendanceCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: params.SortBy, Value: params.GetSortOrder()}}).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit))

	cursor, err := DB.AttendanceCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	records := []models.AttendanceWithStatus{}
	for cursor.Next(ctx) {
		var record models.Attendance
		if err := cursor.Decode(&record); err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
		}
		records = append(records, models.AttendanceWithStatus{
			Attendance: record,
			Status:     record.DeriveStatus(),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}

	return models.NewPaginatedResponse(records, total, params), nil
}
