package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=notification.go -destination=mocks/mock_notification.go -package=mocks

// NotificationService определяет контракт для уведомлений и позиций домохозяйства
type NotificationService interface {
	FetchNotifications(ctx context.Context) ([]models.Notification, error)
	MarkAsRead(ctx context.Context, id int64) error
	FetchHouseholdPositions(ctx context.Context) ([]models.Position, error)
}

type notificationService struct {
	backend Backend
	logger  *logrus.Logger
}

func NewNotificationService(backend Backend, logger *logrus.Logger) NotificationService {
	return &notificationService{
		backend: backend,
		logger:  logger,
	}
}

// FetchNotifications получает все уведомления текущего пользователя
func (s *notificationService) FetchNotifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := s.backend.Post(ctx, "notifications/get", nil, &notifications); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "notification",
			"method":  "FetchNotifications",
		}).WithError(err).Error("Failed to fetch notifications")
		return nil, fmt.Errorf("service: could not fetch notifications: %w", err)
	}
	return notifications, nil
}

// MarkAsRead отмечает уведомление прочитанным на бэкенде
func (s *notificationService) MarkAsRead(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":         "notification",
		"method":          "MarkAsRead",
		"notification_id": id,
	})

	if id <= 0 {
		return fmt.Errorf("%w: notification id is required", ErrValidation)
	}
	if err := s.backend.Put(ctx, "notifications/"+strconv.FormatInt(id, 10)+"/read", nil, nil); err != nil {
		log.WithError(err).Error("Failed to mark notification as read")
		return fmt.Errorf("service: could not mark notification as read: %w", err)
	}
	return nil
}

// FetchHouseholdPositions получает последние позиции членов домохозяйства
func (s *notificationService) FetchHouseholdPositions(ctx context.Context) ([]models.Position, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "FetchHouseholdPositions",
	})

	var raw []models.PositionMessage
	if err := s.backend.Get(ctx, "household/positions", nil, &raw); err != nil {
		log.WithError(err).Error("Failed to fetch household positions")
		return nil, fmt.Errorf("service: could not fetch household positions: %w", err)
	}

	now := time.Now()
	positions := make([]models.Position, 0, len(raw))
	for _, m := range raw {
		p, ok := m.ToPosition(now)
		if !ok {
			log.WithField("user_id", m.UserID).Warn("Position with invalid coordinates skipped")
			continue
		}
		positions = append(positions, p)
	}
	return positions, nil
}
