package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project โครงการก่อสร้าง พร้อมขอบเขต geofence
// Owned by project management; the attendance core only reads the boundary
// fields (latitude, longitude, geofenceRadius).
type Project struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ProjectID      int                `bson:"id" json:"id"`
	CompanyID      int                `bson:"companyId" json:"companyId"`
	ProjectCode    string             `bson:"projectCode,omitempty" json:"projectCode,omitempty"`
	Name           string             `bson:"name" json:"name"`
	Status         string             `bson:"status" json:"status"`
	Address        string             `bson:"address,omitempty" json:"address,omitempty"`
	Latitude       float64            `bson:"latitude" json:"latitude"`
	Longitude      float64            `bson:"longitude" json:"longitude"`
	GeofenceRadius float64            `bson:"geofenceRadius" json:"geofenceRadius"`
	StartDate      *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate        *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
}
