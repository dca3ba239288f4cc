// internal/controllers/notifications_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/services"
	"github.com/Arpan-Patel-source/Freelance-Project-sub000/internal/utils"
)

type NotificationsController struct {
	notificationService services.NotificationService
}

func NewNotificationsController(notificationService services.NotificationService) *NotificationsController {
	return &NotificationsController{notificationService: notificationService}
}

func (c *NotificationsController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	notifications, err := c.notificationService.List(r.Context(), userID, limit)
	if err != nil {
		respondServiceError(w, err, "Failed to list notifications")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, notifications)
}

func (c *NotificationsController) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.notificationService.MarkRead(r.Context(), id, userID); err != nil {
		respondServiceError(w, err, "Failed to mark notification read")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Notification marked read"})
}
