package jobs

import (
	DB "Backend-Fieldforce/src/database"
	"Backend-Fieldforce/src/services"
	"Backend-Fieldforce/src/services/alerts"
	"log"

	"github.com/hibiken/asynq"
)

// StartWorker runs the asynq server that drains the geofence alert queue.
// Without Redis there is no queue; alerts dispatch inline instead.
func StartWorker() {
	if DB.RedisURI == "" {
		log.Println("⚠️ Redis not available. Asynq worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	alerts.RegisterAlertHandlers(mux, services.AlertDeps())

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()
	log.Println("✅ Asynq worker started")
}
