package controllers

import (
	"log"
	"net/http"

	"github.com/blogem/rank-activity/models"
	"github.com/blogem/rank-activity/services"
)

// ActivityController serves the activity log as a snapshot and as a stream
type ActivityController struct {
	services *services.Services
}

// NewActivityController creates a new activity controller
func NewActivityController(services *services.Services) *ActivityController {
	return &ActivityController{
		services: services,
	}
}

// Snapshot handles GET /activity-log
func (c *ActivityController) Snapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := c.services.Activity.GetSnapshot(r.Context())
	if err != nil {
		log.Printf("Error fetching activity logs from database: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:   "Failed to retrieve activity logs",
			Changes: []models.LogEntryView{},
		})
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// Stream handles GET /activity-log/stream
func (c *ActivityController) Stream(w http.ResponseWriter, r *http.Request) {
	emitter, err := newSSEWriter(w)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	emitter.start()

	if err := c.services.Stream.Run(r.Context(), emitter); err != nil {
		log.Printf("Activity stream for %s ended: %v", r.RemoteAddr, err)
		return
	}
	log.Printf("Activity stream for %s closed", r.RemoteAddr)
}
