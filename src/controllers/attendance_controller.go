package controllers

import (
	"Backend-Fieldforce/src/models"
	"Backend-Fieldforce/src/services"
	"Backend-Fieldforce/src/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type geofenceRequest struct {
	EmployeeID int     `json:"employeeId"`
	ProjectID  int     `json:"projectId" validate:"required"`
	Latitude   float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude  float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

type attendanceRequest struct {
	EmployeeID int     `json:"employeeId" validate:"required"`
	ProjectID  int     `json:"projectId" validate:"required"`
	Session    string  `json:"session" validate:"required"`
	Latitude   float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude  float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

type locationRequest struct {
	EmployeeID int     `json:"employeeId" validate:"required"`
	ProjectID  int     `json:"projectId" validate:"required"`
	Latitude   float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude  float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrProjectNotFound), errors.Is(err, models.ErrEmployeeNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrOutsideGeofence),
		errors.Is(err, models.ErrAlreadyCheckedIn),
		errors.Is(err, models.ErrAlreadyCheckedOut),
		errors.Is(err, models.ErrNotCheckedIn),
		errors.Is(err, models.ErrInvalidSession):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrStoreUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// ValidateGeofence godoc
// @Summary Validate geofence membership
// @Description Check whether a position is inside a project's geofence
// @Tags attendances
// @Accept json
// @Produce json
// @Param body body geofenceRequest true "Position to classify"
// @Success 200 {object} services.GeofenceResult
// @Failure 404 {object} models.ErrorResponse
// @Router /attendances/validate-geofence [post]
func ValidateGeofence(c *fiber.Ctx) error {
	var body geofenceRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.Validate.Struct(body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := services.EvaluateGeofence(c.Context(), body.ProjectID, body.Latitude, body.Longitude)
	if err != nil {
		return utils.HandleError(c, statusForError(err), err.Error())
	}
	return c.JSON(result)
}

// SubmitAttendance godoc
// @Summary Submit attendance
// @Description Clock in or out of a project (session: checkin | checkout)
// @Tags attendances
// @Accept json
// @Produce json
// @Param body body attendanceRequest true "Attendance submission"
// @Success 200 {object} models.Attendance
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /attendances/submit [post]
func SubmitAttendance(c *fiber.Ctx) error {
	var body attendanceRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.Validate.Struct(body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	var record *models.Attendance
	var err error
	switch body.Session {
	case "checkin":
		record, err = services.CheckIn(c.Context(), body.EmployeeID, body.ProjectID, body.Latitude, body.Longitude)
	case "checkout":
		record, err = services.CheckOut(c.Context(), body.EmployeeID, body.ProjectID, body.Latitude, body.Longitude)
	default:
		err = models.ErrInvalidSession
	}
	if err != nil {
		return utils.HandleError(c, statusForError(err), err.Error())
	}

	message := "Check-in successful"
	if body.Session == "checkout" {
		message = "Check-out successful"
	}
	return c.JSON(fiber.Map{"message": message, "record": record})
}

// LogLocation godoc
// @Summary Log worker location
// @Description Record a position ping; may trigger a geofence alert and forced checkout
// @Tags attendances
// @Accept json
// @Produce json
// @Param body body locationRequest true "Position ping"
// @Success 200 {object} services.LocationResult
// @Failure 404 {object} models.ErrorResponse
// @Router /attendances/log-location [post]
func LogLocation(c *fiber.Ctx) error {
	var body locationRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := utils.Validate.Struct(body); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := services.LogLocation(c.Context(), body.EmployeeID, body.ProjectID, body.Latitude, body.Longitude)
	if err != nil {
		return utils.HandleError(c, statusForError(err), err.Error())
	}
	return c.JSON(fiber.Map{"message": "Location logged", "insideGeofence": result.InsideGeofence, "outsideDurationSeconds": result.OutsideDurationSeconds})
}

// GetAttendanceHistory godoc
// @Summary Get attendance history
// @Description Attendance records for a worker/project, newest day first
// @Tags attendances
// @Accept json
// @Produce json
// @Param employeeId query int true "Employee ID"
// @Param projectId query int true "Project ID"
// @Param page query int false "Page"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginatedResponse
// @Router /attendances/history [get]
func GetAttendanceHistory(c *fiber.Ctx) error {
	employeeID := c.QueryInt("employeeId")
	projectID := c.QueryInt("projectId")
	if employeeID == 0 || projectID == 0 {
		return utils.HandleError(c, fiber.StatusBadRequest, "employeeId and projectId are required")
	}

	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid pagination params")
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 10
	}
	params.SortBy = "date"

	result, err := services.GetAttendanceHistory(c.Context(), employeeID, projectID, params)
	if err != nil {
		return utils.HandleError(c, statusForError(err), err.Error())
	}
	return c.JSON(result)
}

// GetTodayAttendance godoc
// @Summary Get today's attendance
// @Description Today's record for a worker/project, with derived status
// @Tags attendances
// @Accept json
// @Produce json
// @Param employeeId query int true "Employee ID"
// @Param projectId query int true "Project ID"
// @Success 200 {object} models.AttendanceWithStatus
// @Router /attendances/today [get]
func GetTodayAttendance(c *fiber.Ctx) error {
	employeeID := c.QueryInt("employeeId")
	projectID := c.QueryInt("projectId")
	if employeeID == 0 || projectID == 0 {
		return utils.HandleError(c, fiber.StatusBadRequest, "employeeId and projectId are required")
	}

	record, err := services.GetToday(c.Context(), employeeID, projectID)
	if err != nil {
		return utils.HandleError(c, statusForError(err), err.Error())
	}
	if record == nil {
		return c.JSON(fiber.Map{"record": nil, "status": models.StatusNotCheckedIn})
	}
	return c.JSON(models.AttendanceWithStatus{Attendance: *record, Status: record.DeriveStatus()})
}
