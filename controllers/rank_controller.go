package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/blogem/rank-activity/models"
	"github.com/blogem/rank-activity/services"
)

const messageInternalError = "An internal server error occurred."

// RankController handles rank change requests
type RankController struct {
	services *services.Services
}

// NewRankController creates a new rank controller
func NewRankController(services *services.Services) *RankController {
	return &RankController{
		services: services,
	}
}

// Update handles GET /rank?id=<userId>. Rejections and missing configuration
// are answered with 200 and a message; callers must read the message.
func (c *RankController) Update(w http.ResponseWriter, r *http.Request) {
	// An unparsable id is treated as missing
	userID, _ := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)

	result, err := c.services.Rank.PromoteMember(r.Context(), userID)

	var configErr *services.ConfigError
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: result.Message})

	case errors.As(err, &configErr):
		writeJSON(w, http.StatusOK, models.MessageResponse{Message: configErr.Message})

	case result != nil && result.Status == services.StatusUnrecorded:
		writeJSON(w, http.StatusInternalServerError, models.MessageResponse{
			Message: result.Message,
			Error:   err.Error(),
		})

	default:
		log.Printf("Error in rank update process: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.MessageResponse{
			Message: messageInternalError,
			Error:   err.Error(),
		})
	}
}
