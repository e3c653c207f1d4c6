package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crisis_map_sync/internal/location"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// @Summary Get the notification inbox
// @Description Notifications, unread count, incident popup and connection flag
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} notification.State
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /notifications [get]
func (h *Handler) getNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Inbox.State())
}

// @Summary Refetch notifications
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} notification.State
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend error"
// @Router /notifications/refresh [post]
func (h *Handler) refreshNotifications(c *gin.Context) {
	if err := h.deps.Inbox.Refresh(c.Request.Context()); err != nil {
		h.respondError(c, h.logger.WithField("method", "refreshNotifications"), err)
		return
	}
	c.JSON(http.StatusOK, h.deps.Inbox.State())
}

// @Summary Mark a notification as read
// @Tags Notifications
// @Security ApiKeyAuth
// @Param id path int true "Notification ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid notification ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Backend error"
// @Router /notifications/{id}/read [put]
func (h *Handler) markAsRead(c *gin.Context) {
	id, ok := idParam(c, "notification")
	if !ok {
		return
	}
	if err := h.deps.Inbox.MarkAsRead(c.Request.Context(), id); err != nil {
		h.respondError(c, h.logger.WithField("method", "markAsRead").WithField("id", id), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reset the unread counter
// @Tags Notifications
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /notifications/count [delete]
func (h *Handler) resetCount(c *gin.Context) {
	h.deps.Inbox.ResetCount()
	c.Status(http.StatusNoContent)
}

// @Summary Close the incident popup
// @Tags Notifications
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /notifications/popup [delete]
func (h *Handler) closePopup(c *gin.Context) {
	h.deps.Inbox.ClosePopup()
	c.Status(http.StatusNoContent)
}

// @Summary Get the journal of received push notifications
// @Tags Notifications
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Number of entries" default(50)
// @Success 200 {array} models.JournalEntry
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notifications/history [get]
func (h *Handler) notificationHistory(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultHistoryLimit)))
	if err != nil || limit <= 0 || limit > maxHistoryLimit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	entries, err := h.deps.Inbox.History(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, h.logger.WithField("method", "notificationHistory"), err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// @Summary Get position sharing status
// @Tags Sharing
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} location.Status
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /sharing [get]
func (h *Handler) getSharing(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Sharing.Status())
}

// @Summary Turn position sharing on or off
// @Description Without a push connection sharing stays on and the status carries the error
// @Tags Sharing
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sharing body SharingRequest true "Sharing flag"
// @Success 200 {object} location.Status
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Position unavailable"
// @Router /sharing [put]
func (h *Handler) setSharing(c *gin.Context) {
	var input SharingRequest
	log := h.logger.WithField("method", "setSharing")
	if !h.bind(c, log, &input) {
		return
	}

	if *input.Sharing {
		if err := h.deps.Sharing.Start(c.Request.Context()); err != nil && !errors.Is(err, location.ErrNoConnection) {
			h.respondError(c, log, err)
			return
		}
	} else {
		h.deps.Sharing.Stop(c.Request.Context())
	}
	c.JSON(http.StatusOK, h.deps.Sharing.Status())
}

// @Summary Toggle position sharing
// @Tags Sharing
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} location.Status
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Position unavailable"
// @Router /sharing/toggle [post]
func (h *Handler) toggleSharing(c *gin.Context) {
	if _, err := h.deps.Sharing.Toggle(c.Request.Context()); err != nil && !errors.Is(err, location.ErrNoConnection) {
		h.respondError(c, h.logger.WithField("method", "toggleSharing"), err)
		return
	}
	c.JSON(http.StatusOK, h.deps.Sharing.Status())
}

// @Summary Get household member positions
// @Tags Sharing
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Position
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /household/positions [get]
func (h *Handler) householdPositions(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Household.Members())
}
