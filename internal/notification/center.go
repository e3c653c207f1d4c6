// Package notification keeps the user's inbox in sync with the push channel:
// it refetches the list on connect and on every push message, holds the incident
// popup, journals received messages and relays incident alerts.
package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/shenikar/crisis_map_sync/internal/realtime"
	"github.com/shenikar/crisis_map_sync/internal/service"
	"github.com/shenikar/crisis_map_sync/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=center.go -destination=mocks/mock_center.go -package=mocks

// Journal - журнал полученных push-уведомлений
type Journal interface {
	Record(ctx context.Context, userID string, n *models.Notification) error
	ListRecent(ctx context.Context, userID string, limit int) ([]models.JournalEntry, error)
}

// ReadStore - локально сохранённые прочитанные уведомления
type ReadStore interface {
	AddReadID(ctx context.Context, userID string, id int64) error
	ReadIDs(ctx context.Context, userID string) (map[int64]bool, error)
}

// IncidentRefresher - слой инцидентов, который обновляется по push-уведомлению
type IncidentRefresher interface {
	RefreshIncidents(ctx context.Context) error
}

// Deps - зависимости Center. Journal, Reads, Incidents и Alerts могут быть nil.
type Deps struct {
	Service   service.NotificationService
	Journal   Journal
	Reads     ReadStore
	Incidents IncidentRefresher
	Alerts    webhook.Publisher
}

// Popup - всплывающее окно инцидента
type Popup struct {
	Visible  bool                 `json:"visible"`
	Incident *models.Notification `json:"incident,omitempty"`
}

// State - снимок входящих
type State struct {
	Notifications []models.Notification `json:"notifications"`
	Count         int                   `json:"count"`
	Popup         Popup                 `json:"popup"`
	Connected     bool                  `json:"connected"`
}

// Center - входящие пользователя
type Center struct {
	deps    Deps
	session models.Session
	logger  *logrus.Logger
	now     func() time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu            sync.Mutex
	notifications []models.Notification
	count         int
	current       *models.Notification
	connected     bool
	fetchSeq      uint64
}

func NewCenter(session models.Session, deps Deps, logger *logrus.Logger) *Center {
	ctx, cancel := context.WithCancel(context.Background())
	return &Center{
		deps:    deps,
		session: session,
		logger:  logger,
		now:     time.Now,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Callbacks возвращает обработчики для realtime.Manager. Сетевые запросы
// уходят в отдельные горутины, чтобы не задерживать цикл чтения.
func (c *Center) Callbacks() realtime.Callbacks {
	return realtime.Callbacks{
		OnConnected: func() {
			c.setConnected(true)
			c.spawn(func(ctx context.Context) { _ = c.Refresh(ctx) })
		},
		OnDisconnected: func() {
			c.setConnected(false)
		},
		OnNotification: func(n *models.Notification) {
			c.spawn(func(ctx context.Context) { c.HandleNotification(ctx, n) })
		},
		OnIncident: func(n *models.Notification) {
			c.showPopup(n)
			c.spawn(func(ctx context.Context) { c.relayIncident(ctx, n) })
		},
	}
}

func (c *Center) spawn(fn func(ctx context.Context)) {
	if c.ctx.Err() != nil {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		fn(c.ctx)
	}()
}

func (c *Center) setConnected(v bool) {
	c.mu.Lock()
	c.connected = v
	c.mu.Unlock()
}

// Refresh перечитывает список уведомлений. Без пользователя ничего не делает.
// Ответ устаревшего запроса отбрасывается.
func (c *Center) Refresh(ctx context.Context) error {
	log := c.logger.WithFields(logrus.Fields{
		"component": "notification",
		"method":    "Refresh",
	})
	if c.session.UserID == "" {
		return nil
	}

	c.mu.Lock()
	c.fetchSeq++
	seq := c.fetchSeq
	c.mu.Unlock()

	list, err := c.deps.Service.FetchNotifications(ctx)
	if err != nil {
		log.WithError(err).Error("Error fetching notifications")
		return fmt.Errorf("notification: could not refresh: %w", err)
	}

	var read map[int64]bool
	if c.deps.Reads != nil {
		read, err = c.deps.Reads.ReadIDs(ctx, c.session.UserID)
		if err != nil {
			log.WithError(err).Warn("Failed to load local read state")
		}
	}

	unread := 0
	for i := range list {
		if read[list[i].ID] {
			list[i].Read = true
		}
		if !list[i].Read {
			unread++
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.fetchSeq {
		return nil
	}
	c.notifications = list
	c.count = unread
	return nil
}

// HandleNotification журналирует push-уведомление и обновляет список.
// n == nil - тело не разобрано, список всё равно перечитывается.
func (c *Center) HandleNotification(ctx context.Context, n *models.Notification) {
	if n != nil && c.deps.Journal != nil {
		if err := c.deps.Journal.Record(ctx, c.session.UserID, n); err != nil {
			c.logger.WithError(err).WithField("component", "notification").Warn("Failed to journal notification")
		}
	}
	_ = c.Refresh(ctx)
}

// HandleIncident показывает попап инцидента, обновляет слой инцидентов
// и отправляет оповещение во внешний вебхук
func (c *Center) HandleIncident(ctx context.Context, n *models.Notification) {
	c.showPopup(n)
	c.relayIncident(ctx, n)
}

func (c *Center) showPopup(n *models.Notification) {
	if n == nil {
		return
	}
	cp := *n
	c.mu.Lock()
	c.current = &cp
	c.mu.Unlock()
}

func (c *Center) relayIncident(ctx context.Context, n *models.Notification) {
	log := c.logger.WithFields(logrus.Fields{
		"component": "notification",
		"method":    "relayIncident",
	})

	if c.deps.Incidents != nil {
		if err := c.deps.Incidents.RefreshIncidents(ctx); err != nil {
			log.WithError(err).Warn("Failed to refresh incidents after push")
		}
	}
	if c.deps.Alerts != nil {
		if err := c.deps.Alerts.Publish(ctx, webhook.NewIncidentAlert(c.session, n, c.now())); err != nil {
			log.WithError(err).Error("Failed to publish incident alert")
		}
	}
}

// MarkAsRead отмечает уведомление прочитанным. Счётчик не уходит ниже нуля.
func (c *Center) MarkAsRead(ctx context.Context, id int64) error {
	log := c.logger.WithFields(logrus.Fields{
		"component":       "notification",
		"method":          "MarkAsRead",
		"notification_id": id,
	})

	if err := c.deps.Service.MarkAsRead(ctx, id); err != nil {
		log.WithError(err).Error("Error marking notification as read")
		return err
	}

	c.mu.Lock()
	for i := range c.notifications {
		if c.notifications[i].ID == id && !c.notifications[i].Read {
			c.notifications[i].Read = true
			c.count = max(0, c.count-1)
			break
		}
	}
	c.mu.Unlock()

	if c.deps.Reads != nil {
		if err := c.deps.Reads.AddReadID(ctx, c.session.UserID, id); err != nil {
			log.WithError(err).Warn("Failed to persist read state")
		}
	}
	return nil
}

// ResetCount обнуляет счётчик непрочитанных
func (c *Center) ResetCount() {
	c.mu.Lock()
	c.count = 0
	c.mu.Unlock()
}

// ClosePopup закрывает попап инцидента
func (c *Center) ClosePopup() {
	c.mu.Lock()
	c.current = nil
	c.mu.Unlock()
}

// State возвращает копию состояния входящих
func (c *Center) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := State{
		Notifications: append([]models.Notification(nil), c.notifications...),
		Count:         c.count,
		Connected:     c.connected,
	}
	if c.current != nil {
		cp := *c.current
		st.Popup = Popup{Visible: true, Incident: &cp}
	}
	return st
}

// History возвращает последние записи журнала
func (c *Center) History(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	if c.deps.Journal == nil {
		return nil, nil
	}
	entries, err := c.deps.Journal.ListRecent(ctx, c.session.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("notification: could not read journal: %w", err)
	}
	return entries, nil
}

// Close останавливает фоновую обработку и ждёт её завершения
func (c *Center) Close() {
	c.cancel()
	c.wg.Wait()
}
