package alerts

import (
	"Backend-Fieldforce/src/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"
)

// Deps wires the dispatcher to its collaborators. Resolvers and the
// checkout hook are passed in as functions so this package never imports
// the services package.
type Deps struct {
	Sender          MailSender
	Recipients      []string
	ResolveEmployee func(ctx context.Context, employeeID int) (*models.Employee, error)
	ResolveProject  func(ctx context.Context, projectID int) (*models.Project, error)
	ForceCheckout   func(ctx context.Context, employeeID, projectID int, now time.Time) error
}

// Dispatch sends the geofence alert mail and force-closes today's pending
// attendance. Every failure here is logged and swallowed: the ping that
// triggered the alert has already been acknowledged and must not fail.
func Dispatch(ctx context.Context, p GeofenceAlertPayload, d Deps) {
	employeeName := fmt.Sprintf("employee %d", p.EmployeeID)
	if d.ResolveEmployee != nil {
		if employee, err := d.ResolveEmployee(ctx, p.EmployeeID); err == nil {
			employeeName = employee.FullName
		} else {
			log.Println("⚠️ geofence alert: employee lookup failed:", err)
		}
	}

	projectName := fmt.Sprintf("project %d", p.ProjectID)
	if d.ResolveProject != nil {
		if project, err := d.ResolveProject(ctx, p.ProjectID); err == nil {
			projectName = project.Name
		} else {
			log.Println("⚠️ geofence alert: project lookup failed:", err)
		}
	}

	if d.Sender == nil || len(d.Recipients) == 0 {
		log.Println("⚠️ geofence alert: no mail sender/recipients configured, skipping notification", p.AlertID)
	} else {
		subject := fmt.Sprintf("🚨 Worker Outside Geofence — %s", employeeName)
		body := fmt.Sprintf(
			`<p>Worker <strong>%s</strong> has been outside project <strong>%s</strong> for %d minutes.</p>
<ul><li>Latitude: %f</li><li>Longitude: %f</li></ul>`,
			employeeName, projectName, p.OutsideMinutes, p.Latitude, p.Longitude)

		if err := d.Sender.Send(d.Recipients, subject, body); err != nil {
			log.Println("⚠️ geofence alert: email send failed:", err)
		}
	}

	if d.ForceCheckout != nil {
		if err := d.ForceCheckout(ctx, p.EmployeeID, p.ProjectID, time.Now()); err != nil {
			log.Println("⚠️ geofence alert: forced checkout failed:", err)
		}
	}
}

// HandleGeofenceAlert asynq handler for queued alerts.
func HandleGeofenceAlert(d Deps) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p GeofenceAlertPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return err
		}
		Dispatch(ctx, p, d)
		return nil
	}
}

// RegisterAlertHandlers ลงทะเบียน Handler ของ package alerts
func RegisterAlertHandlers(mux *asynq.ServeMux, d Deps) {
	mux.HandleFunc(TypeGeofenceAlert, HandleGeofenceAlert(d))
}
