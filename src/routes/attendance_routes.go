package routes

import (
	"Backend-Fieldforce/src/controllers"
	"Backend-Fieldforce/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// attendanceRoutes กำหนดเส้นทางสำหรับ Attendance API
func attendanceRoutes(router fiber.Router) {
	attendanceRoutes := router.Group("/attendances")
	attendanceRoutes.Use(middleware.AuthJWT)

	attendanceRoutes.Post("/validate-geofence", controllers.ValidateGeofence)
	attendanceRoutes.Post("/submit", controllers.SubmitAttendance)
	attendanceRoutes.Post("/log-location", controllers.LogLocation)
	attendanceRoutes.Get("/history", controllers.GetAttendanceHistory)
	attendanceRoutes.Get("/today", controllers.GetTodayAttendance)
}
