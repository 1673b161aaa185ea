package services

import (
	DB "Backend-Fieldforce/src/database"
	"Backend-Fieldforce/src/models"
	"Backend-Fieldforce/src/services/geo"
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Project boundaries are immutable per query, so a short TTL cache keeps
// the ping path from hitting Mongo on every location log.
var projectCache = cache.New(5*time.Minute, 10*time.Minute)
var employeeCache = cache.New(5*time.Minute, 10*time.Minute)

// GeofenceResult ผลการตรวจสอบ geofence
type GeofenceResult struct {
	DistanceMeters float64 `json:"distanceMeters"`
	InsideGeofence bool    `json:"insideGeofence"`
}

// ResolveProject fetches a project boundary by its numeric id.
func ResolveProject(ctx context.Context, projectID int) (*models.Project, error) {
	key := fmt.Sprintf("project:%d", projectID)
	if v, found := projectCache.Get(key); found {
		return v.(*models.Project), nil
	}

	var project models.Project
	err := DB.ProjectCollection.FindOne(ctx, bson.M{"id": projectID}).Decode(&project)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrProjectNotFound
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}

	projectCache.Set(key, &project, cache.DefaultExpiration)
	return &project, nil
}

// ResolveEmployee fetches an employee by their numeric id (alert text only).
func ResolveEmployee(ctx context.Context, employeeID int) (*models.Employee, error) {
	key := fmt.Sprintf("employee:%d", employeeID)
	if v, found := employeeCache.Get(key); found {
		return v.(*models.Employee), nil
	}

	var employee models.Employee
	err := DB.EmployeeCollection.FindOne(ctx, bson.M{"id": employeeID}).Decode(&employee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStoreUnavailable, err)
	}

	employeeCache.Set(key, &employee, cache.DefaultExpiration)
	return &employee, nil
}

// EvaluateGeofence คำนวณระยะห่างจากจุดศูนย์กลางโปรเจกต์
// Pure classification: distance to the project center plus the inclusive
// inside/outside decision. No side effects, safe to call concurrently.
func EvaluateGeofence(ctx context.Context, projectID int, latitude, longitude float64) (*GeofenceResult, error) {
	project, err := ResolveProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	distance := geo.DistanceMeters(latitude, longitude, project.Latitude, project.Longitude)
	return &GeofenceResult{
		DistanceMeters: distance,
		InsideGeofence: geo.Inside(distance, project.GeofenceRadius),
	}, nil
}
