package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crisis_map_sync/internal/models"
)

// NotificationJournal - журнал push-уведомлений в PostgreSQL
type NotificationJournal struct {
	db *pgxpool.Pool
}

func NewNotificationJournal(db *pgxpool.Pool) *NotificationJournal {
	return &NotificationJournal{db: db}
}

// Record сохраняет полученное уведомление
func (r *NotificationJournal) Record(ctx context.Context, userID string, n *models.Notification) error {
	query := `
		INSERT INTO notification_journal (notification_id, user_id, type, message, payload)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;
	`
	var payload any
	if len(n.Payload) > 0 {
		payload = string(n.Payload)
	}

	var id int64
	err := r.db.QueryRow(ctx, query,
		n.ID,
		userID,
		string(n.Type),
		n.Message,
		payload,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}
	return nil
}

// ListRecent возвращает последние записи журнала пользователя, новые первыми
func (r *NotificationJournal) ListRecent(ctx context.Context, userID string, limit int) ([]models.JournalEntry, error) {
	query := `
		SELECT
			id,
			notification_id,
			user_id,
			type,
			message,
			received_at
		FROM notification_journal
		WHERE user_id = $1
		ORDER BY received_at DESC, id DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notification journal: %w", err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0)
	for rows.Next() {
		var (
			e     models.JournalEntry
			ntype string
		)
		err := rows.Scan(
			&e.ID,
			&e.Notification.ID,
			&e.UserID,
			&ntype,
			&e.Notification.Message,
			&e.ReceivedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal row: %w", err)
		}
		e.Notification.Type = models.NotificationType(ntype)
		e.Notification.RecipientID = e.UserID
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error journal iteration: %w", err)
	}
	return entries, nil
}
