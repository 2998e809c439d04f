package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"expensedesk.io/approvalflow/ent"
	entnotification "expensedesk.io/approvalflow/ent/notification"
	"expensedesk.io/approvalflow/internal/api/middleware"
	"expensedesk.io/approvalflow/internal/pkg/logger"
)

// NotificationList is the body of GET /notifications.
type NotificationList struct {
	Items      []NotificationResponse `json:"items"`
	Pagination Pagination             `json:"pagination"`
}

// ListNotifications handles GET /notifications.
func (s *Server) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED"})
		return
	}

	query := s.client.Notification.Query().
		Where(entnotification.RecipientID(userID))

	if c.Query("unread_only") == "true" {
		query = query.Where(entnotification.ReadEQ(false))
	}

	page, perPage := defaultPagination(intQuery(c, "page"), intQuery(c, "per_page"))
	offset := (page - 1) * perPage

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("failed to count notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
		return
	}

	notifications, err := query.
		Offset(offset).
		Limit(perPage).
		Order(ent.Desc(entnotification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		logger.Error("failed to list notifications", zap.Error(err), zap.Int("page", page))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
		return
	}

	items := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, notificationToAPI(n))
	}

	c.JSON(http.StatusOK, NotificationList{
		Items:      items,
		Pagination: newPagination(page, perPage, total),
	})
}

// UnreadCount is the body of GET /notifications/unread-count.
type UnreadCount struct {
	Count int `json:"count"`
}

// GetUnreadCount handles GET /notifications/unread-count.
func (s *Server) GetUnreadCount(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED"})
		return
	}

	count, err := s.client.Notification.Query().
		Where(
			entnotification.RecipientID(userID),
			entnotification.ReadEQ(false),
		).
		Count(ctx)
	if err != nil {
		logger.Error("failed to count unread notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
		return
	}

	c.JSON(http.StatusOK, UnreadCount{Count: count})
}

// MarkNotificationRead handles POST /notifications/:notification_id/read.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED"})
		return
	}
	notificationID := c.Param("notification_id")

	n, err := s.client.Notification.Query().
		Where(
			entnotification.IDEQ(notificationID),
			entnotification.RecipientID(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"code": "NOTIFICATION_NOT_FOUND"})
			return
		}
		logger.Error("failed to get notification", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
		return
	}

	if !n.Read {
		if _, err := s.client.Notification.UpdateOneID(notificationID).
			SetRead(true).
			Save(ctx); err != nil {
			logger.Error("failed to mark notification read", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
			return
		}
	}

	c.Status(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED"})
		return
	}

	_, err := s.client.Notification.Update().
		Where(
			entnotification.RecipientID(userID),
			entnotification.ReadEQ(false),
		).
		SetRead(true).
		Save(ctx)
	if err != nil {
		logger.Error("failed to mark all notifications read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"code": "INTERNAL_ERROR"})
		return
	}

	c.Status(http.StatusNoContent)
}
