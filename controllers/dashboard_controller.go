package controllers

import (
	"log"
	"net/http"

	"github.com/blogem/rank-activity/models"
	"github.com/blogem/rank-activity/services"
)

// dashboardWindow matches the stream window so the first render and the
// first pushed frame show the same entries
const dashboardWindow = 100

// DashboardController handles dashboard-related requests
type DashboardController struct {
	services *services.Services
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(services *services.Services) *DashboardController {
	return &DashboardController{
		services: services,
	}
}

// Index handles GET /
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	errMessage := ""
	snapshot, err := c.services.Activity.RecentSnapshot(r.Context(), dashboardWindow)
	if err != nil {
		log.Printf("Error fetching activity logs for display: %v", err)
		errMessage = "Failed to load activity logs. Live updates will retry."
		snapshot = &models.Snapshot{Changes: []models.LogEntryView{}}
	}

	templateData := struct {
		Title       string
		CurrentPage string
		Error       string
		Data        *models.Snapshot
	}{
		Title:       "Rank Activity",
		CurrentPage: "dashboard",
		Error:       errMessage,
		Data:        snapshot,
	}

	renderTemplate(w, "dashboard", "dashboard.html", templateData)
}
