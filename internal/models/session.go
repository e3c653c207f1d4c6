package models

import (
	"strconv"
	"time"
)

// ConnectionState - состояние push-соединения
type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connecting
	Connected
)

func (s ConnectionState) String() string {
	switch s {
	case Connecting:
		return "CONNECTING"
	case Connected:
		return "CONNECTED"
	default:
		return "DISCONNECTED"
	}
}

// Session - аутентифицированная сессия пользователя
type Session struct {
	UserID      string
	AuthToken   string
	HouseholdID string
}

// Position - последняя известная позиция члена домохозяйства
type Position struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"fullName,omitempty"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// PositionMessage - позиция в том виде, в каком её отдаёт бэкенд: координаты строками
type PositionMessage struct {
	UserID    string `json:"userId"`
	FullName  string `json:"fullName"`
	Longitude string `json:"longitude"`
	Latitude  string `json:"latitude"`
}

// ToPosition разбирает координаты; ok == false, если они не числа
func (m PositionMessage) ToPosition(now time.Time) (Position, bool) {
	lat, errLat := strconv.ParseFloat(m.Latitude, 64)
	lng, errLng := strconv.ParseFloat(m.Longitude, 64)
	if errLat != nil || errLng != nil {
		return Position{}, false
	}
	return Position{
		UserID:    m.UserID,
		Name:      m.FullName,
		Latitude:  lat,
		Longitude: lng,
		UpdatedAt: now,
	}, true
}
