package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee ข้อมูลพนักงาน — read-only directory for the attendance core,
// used to compose alert text.
type Employee struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	EmployeeID   int                `bson:"id" json:"id"`
	CompanyID    int                `bson:"companyId" json:"companyId"`
	EmployeeCode string             `bson:"employeeCode,omitempty" json:"employeeCode,omitempty"`
	FullName     string             `bson:"fullName" json:"fullName"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	JobTitle     string             `bson:"jobTitle,omitempty" json:"jobTitle,omitempty"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
