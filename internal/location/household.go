package location

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/shenikar/crisis_map_sync/internal/realtime"
	"github.com/sirupsen/logrus"
)

// MemberFeed - последние позиции членов домохозяйства на бэкенде
type MemberFeed interface {
	FetchHouseholdPositions(ctx context.Context) ([]models.Position, error)
}

// Subscriber - подписка на позиции домохозяйства по push-каналу
type Subscriber interface {
	SubscribeToPosition(householdID string, handler realtime.PositionHandler) bool
}

// Household - позиции членов домохозяйства: начальная загрузка по REST,
// дальше обновления по push-каналу
type Household struct {
	feed        MemberFeed
	sub         Subscriber
	householdID string
	logger      *logrus.Logger

	mu      sync.Mutex
	members map[string]models.Position
}

func NewHousehold(householdID string, feed MemberFeed, sub Subscriber, logger *logrus.Logger) *Household {
	return &Household{
		feed:        feed,
		sub:         sub,
		householdID: householdID,
		logger:      logger,
		members:     make(map[string]models.Position),
	}
}

// Load заменяет позиции ответом бэкенда
func (h *Household) Load(ctx context.Context) error {
	positions, err := h.feed.FetchHouseholdPositions(ctx)
	if err != nil {
		return fmt.Errorf("location: could not load household positions: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.members = make(map[string]models.Position, len(positions))
	for _, p := range positions {
		h.members[p.UserID] = p
	}
	return nil
}

// Subscribe подписывается на обновления позиций. false - соединения нет
// или у сессии нет домохозяйства.
func (h *Household) Subscribe() bool {
	if h.householdID == "" {
		return false
	}
	return h.sub.SubscribeToPosition(h.householdID, h.Update)
}

// OnConnected подписывается и перечитывает позиции после подключения
func (h *Household) OnConnected(ctx context.Context) {
	if !h.Subscribe() {
		return
	}
	if err := h.Load(ctx); err != nil {
		h.logger.WithError(err).WithField("component", "location").Warn("Failed to load household positions")
	}
}

// Update применяет позицию из push-сообщения
func (h *Household) Update(p models.Position) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if prev, ok := h.members[p.UserID]; ok && p.Name == "" {
		p.Name = prev.Name
	}
	h.members[p.UserID] = p
}

// Members возвращает позиции, отсортированные по имени
func (h *Household) Members() []models.Position {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]models.Position, 0, len(h.members))
	for _, p := range h.members {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].UserID < out[j].UserID
	})
	return out
}
