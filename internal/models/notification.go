package models

import "time"

// NotificationType - тип уведомления на бэкенде
type NotificationType string

const (
	NotificationIncident          NotificationType = "INCIDENT"
	NotificationMembershipRequest NotificationType = "MEMBERSHIP_REQUEST"
	NotificationStockControl      NotificationType = "STOCK_CONTROL"
	NotificationHousehold         NotificationType = "HOUSEHOLD"
	NotificationInfo              NotificationType = "INFO"
)

// Notification - уведомление, пришедшее по push-каналу или из списка
type Notification struct {
	ID          int64            `json:"id,omitempty"`
	Type        NotificationType `json:"type"`
	RecipientID string           `json:"recipientId,omitempty"`
	Message     string           `json:"message,omitempty"`
	Timestamp   *Timestamp       `json:"timestamp,omitempty"`
	Read        bool             `json:"read"`

	// Payload - исходное тело сообщения
	Payload []byte `json:"-"`
}

// IsIncident сообщает, относится ли уведомление к инциденту
func (n *Notification) IsIncident() bool {
	return n != nil && n.Type == NotificationIncident
}

// JournalEntry - запись журнала полученных push-уведомлений
type JournalEntry struct {
	ID           int64        `json:"id"`
	Notification Notification `json:"notification"`
	UserID       string       `json:"userId"`
	ReceivedAt   time.Time    `json:"receivedAt"`
}
