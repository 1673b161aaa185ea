package services

import (
	DB "Backend-Fieldforce/src/database"
	"context"
	"log"
)

func init() {
	if err := DB.ConnectMongoDB(); err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	DB.ProjectCollection = DB.GetCollection("FieldforceDB", "projects")
	DB.EmployeeCollection = DB.GetCollection("FieldforceDB", "employees")
	DB.AttendanceCollection = DB.GetCollection("FieldforceDB", "attendances")
	DB.LocationLogCollection = DB.GetCollection("FieldforceDB", "locationLogs")
	if DB.AttendanceCollection == nil || DB.LocationLogCollection == nil {
		log.Fatal("Failed to get the required collections")
	}

	if err := DB.EnsureIndexes(context.TODO()); err != nil {
		log.Println("⚠️ Failed to ensure attendance indexes:", err)
	}

	DB.InitRedis()
	if DB.RedisURI != "" {
		DB.InitAsynq()
	}
}
