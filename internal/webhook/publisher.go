package webhook

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crisis_map_sync/internal/models"
)

const (
	webhookQueueKey = "webhook_events"

	EventIncidentAlert = "incident.alert"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// Event - событие для внешнего получателя
type Event struct {
	ID             uuid.UUID `json:"id"`
	Type           string    `json:"type"`
	UserID         string    `json:"user_id"`
	HouseholdID    string    `json:"household_id,omitempty"`
	NotificationID int64     `json:"notification_id,omitempty"`
	Message        string    `json:"message,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	// Payload - исходное тело push-уведомления
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewIncidentAlert строит событие о push-уведомлении INCIDENT
func NewIncidentAlert(session models.Session, n *models.Notification, now time.Time) Event {
	e := Event{
		ID:          uuid.New(),
		Type:        EventIncidentAlert,
		UserID:      session.UserID,
		HouseholdID: session.HouseholdID,
		Timestamp:   now.UTC(),
	}
	if n != nil {
		e.NotificationID = n.ID
		e.Message = n.Message
		if json.Valid(n.Payload) {
			e.Payload = json.RawMessage(n.Payload)
		}
	}
	return e
}

// Publisher - интерфейс для публикации вебхуков
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
