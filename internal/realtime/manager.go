// Package realtime keeps the push connection of a user session: one STOMP
// connection at a time, topic subscriptions replayed on every connect, and
// position publishing.
package realtime

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"
	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/sirupsen/logrus"
)

// Топики бэкенда
const (
	TopicNotifications     = "/topic/notifications"
	QueueUserNotifications = "/user/queue/notifications"
	TopicPositionPrefix    = "/topic/position/"
	DestinationPosition    = "/app/position"
)

// Callbacks - обработчики событий сессии. Любое поле может быть nil.
// OnNotification получает nil, если тело сообщения не разобрано.
type Callbacks struct {
	OnConnected    func()
	OnDisconnected func()
	OnNotification func(*models.Notification)
	OnIncident     func(*models.Notification)
}

// PositionHandler получает позицию члена домохозяйства
type PositionHandler func(models.Position)

// Backoff - политика переподключения: экспонента с потолком.
// Initial == Max даёт фиксированную задержку.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration
}

func (b Backoff) newBackOff() backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = b.Initial
	eb.MaxInterval = b.Max
	eb.Multiplier = 2
	eb.RandomizationFactor = 0.2
	eb.MaxElapsedTime = 0 // не сдаёмся
	if b.Initial >= b.Max {
		eb.Multiplier = 1
	}
	eb.Reset()
	return eb
}

// descriptor - подписка, которая переустанавливается при каждом подключении
type descriptor struct {
	topic   string
	handler func(body []byte)
}

// Manager держит не более одного живого соединения на сессию
type Manager struct {
	transport Transport
	backoff   Backoff
	logger    *logrus.Logger

	mu        sync.Mutex
	state     models.ConnectionState
	session   models.Session
	callbacks Callbacks
	conn      Conn
	positions []descriptor // подписки на позиции, накопленные за сессию

	cancel context.CancelFunc
	done   chan struct{}
}

// NewManager создает менеджер
func NewManager(transport Transport, policy Backoff, logger *logrus.Logger) *Manager {
	return &Manager{
		transport: transport,
		backoff:   policy,
		logger:    logger,
		state:     models.Disconnected,
	}
}

// Initialize сохраняет сессию и обработчики и подключается.
// Предыдущее соединение, если есть, закрывается.
func (m *Manager) Initialize(ctx context.Context, session models.Session, callbacks Callbacks) {
	m.Disconnect()

	m.mu.Lock()
	m.session = session
	m.callbacks = callbacks
	m.positions = nil
	m.mu.Unlock()

	m.Connect(ctx)
}

// Connect запускает цикл подключения в фоне. Повторный вызов при
// работающем цикле ничего не делает.
func (m *Manager) Connect(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})
	go m.run(runCtx, m.done)
}

// Disconnect закрывает соединение и останавливает переподключение.
// Безопасен до Connect и при повторном вызове.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	cancel, done, conn := m.cancel, m.done, m.conn
	m.cancel, m.done = nil, nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	if conn != nil {
		if err := conn.Close(); err != nil {
			m.logger.WithError(err).Debug("Failed to close connection")
		}
	}
	<-done
}

// State возвращает состояние соединения
func (m *Manager) State() models.ConnectionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Connected сообщает, что соединение установлено
func (m *Manager) Connected() bool {
	return m.State() == models.Connected
}

// SubscribeToPosition подписывает на позиции домохозяйства. Возвращает false,
// если соединения нет, нет токена или пустой id; в очередь не ставит.
// Подписка запоминается и повторяется после переподключения.
func (m *Manager) SubscribeToPosition(householdID string, handler PositionHandler) bool {
	log := m.logger.WithFields(logrus.Fields{
		"component":    "realtime",
		"method":       "SubscribeToPosition",
		"household_id": householdID,
	})

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != models.Connected || m.conn == nil || m.session.AuthToken == "" || householdID == "" {
		log.Debug("Position subscription not possible now")
		return false
	}

	d := descriptor{
		topic:   TopicPositionPrefix + householdID,
		handler: m.positionHandler(handler),
	}

	for i := range m.positions {
		if m.positions[i].topic == d.topic {
			// уже подписаны на этом соединении, меняем только обработчик
			m.positions[i] = d
			return true
		}
	}

	if err := m.conn.Subscribe(d.topic); err != nil {
		log.WithError(err).Warn("Failed to subscribe to positions")
		return false
	}
	m.positions = append(m.positions, d)
	return true
}

// PublishPosition отправляет позицию. false без обращения к сети, если
// соединения нет; false, если отправка не удалась. Не паникует.
func (m *Manager) PublishPosition(token string, longitude, latitude float64) bool {
	m.mu.Lock()
	conn, state := m.conn, m.state
	m.mu.Unlock()

	if state != models.Connected || conn == nil {
		return false
	}

	body, err := json.Marshal(struct {
		Token     string  `json:"token"`
		Longitude float64 `json:"longitude"`
		Latitude  float64 `json:"latitude"`
	}{token, longitude, latitude})
	if err != nil {
		m.logger.WithError(err).Error("Failed to encode position update")
		return false
	}

	if err := conn.Send(DestinationPosition, body); err != nil {
		m.logger.WithError(err).WithField("component", "realtime").Warn("Error publishing position update")
		return false
	}
	return true
}

func (m *Manager) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	log := m.logger.WithField("component", "realtime")
	policy := m.backoff.newBackOff()

	for {
		conn, err := m.connectOnce(ctx)
		if err == nil {
			policy.Reset()
			err = m.readLoop(conn)
			m.dropConnection(conn)
		}
		if ctx.Err() != nil {
			return
		}

		delay := policy.NextBackOff()
		log.WithError(err).WithField("delay", delay).Warn("Connection lost, reconnecting")
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return
		}
	}
}

// connectOnce: CONNECTING -> dial -> CONNECTED, затем повтор всех подписок
// ровно по одному разу и OnConnected
func (m *Manager) connectOnce(ctx context.Context) (Conn, error) {
	m.mu.Lock()
	m.state = models.Connecting
	session := m.session
	m.mu.Unlock()

	conn, err := m.transport.Dial(ctx, session)
	if err != nil {
		m.setState(models.Disconnected)
		return nil, fmt.Errorf("realtime: dial: %w", err)
	}

	m.mu.Lock()
	if ctx.Err() != nil {
		m.state = models.Disconnected
		m.mu.Unlock()
		_ = conn.Close()
		return nil, ctx.Err()
	}
	m.conn = conn
	m.state = models.Connected

	if err := m.replay(conn); err != nil {
		m.conn = nil
		m.state = models.Disconnected
		m.mu.Unlock()
		_ = conn.Close()
		return nil, err
	}
	onConnected := m.callbacks.OnConnected
	m.mu.Unlock()

	m.logger.WithField("component", "realtime").Info("Connected")
	if onConnected != nil {
		m.safeCall(onConnected)
	}
	return conn, nil
}

// replay вызывается под m.mu
func (m *Manager) replay(conn Conn) error {
	for _, d := range m.descriptors() {
		if err := conn.Subscribe(d.topic); err != nil {
			return fmt.Errorf("realtime: subscribe %s: %w", d.topic, err)
		}
	}
	return nil
}

// descriptors возвращает полный список подписок для текущей сессии; вызывается под m.mu
func (m *Manager) descriptors() []descriptor {
	list := []descriptor{{topic: TopicNotifications, handler: m.handleNotification}}
	if m.session.AuthToken != "" && m.session.UserID != "" {
		list = append(list, descriptor{topic: QueueUserNotifications, handler: m.handleNotification})
	}
	return append(list, m.positions...)
}

func (m *Manager) readLoop(conn Conn) error {
	for {
		msg, err := conn.Receive()
		if err != nil {
			return err
		}

		m.mu.Lock()
		var handler func([]byte)
		for _, d := range m.descriptors() {
			if d.topic == msg.Topic {
				handler = d.handler
				break
			}
		}
		m.mu.Unlock()

		if handler == nil {
			m.logger.WithField("topic", msg.Topic).Debug("Message for unknown topic dropped")
			continue
		}
		m.safeCall(func() { handler(msg.Body) })
	}
}

func (m *Manager) dropConnection(conn Conn) {
	m.mu.Lock()
	wasCurrent := m.conn == conn
	if wasCurrent {
		m.conn = nil
		m.state = models.Disconnected
	}
	onDisconnected := m.callbacks.OnDisconnected
	m.mu.Unlock()

	_ = conn.Close()
	if wasCurrent {
		m.logger.WithField("component", "realtime").Info("Disconnected")
		if onDisconnected != nil {
			m.safeCall(onDisconnected)
		}
	}
}

func (m *Manager) handleNotification(body []byte) {
	m.mu.Lock()
	cb := m.callbacks
	m.mu.Unlock()

	var n models.Notification
	if err := json.Unmarshal(body, &n); err != nil {
		m.logger.WithError(err).WithField("component", "realtime").Error("Error handling notification message")
		if cb.OnNotification != nil {
			cb.OnNotification(nil)
		}
		return
	}
	n.Payload = body

	if cb.OnNotification != nil {
		cb.OnNotification(&n)
	}
	if n.IsIncident() && cb.OnIncident != nil {
		cb.OnIncident(&n)
	}
}

func (m *Manager) positionHandler(handler PositionHandler) func([]byte) {
	return func(body []byte) {
		var msg models.PositionMessage
		if err := json.Unmarshal(body, &msg); err != nil {
			m.logger.WithError(err).WithField("component", "realtime").Error("Error handling position update")
			return
		}
		pos, ok := msg.ToPosition(time.Now())
		if !ok {
			m.logger.WithField("user_id", msg.UserID).Warn("Position update with invalid coordinates")
			return
		}
		if handler != nil {
			handler(pos)
		}
	}
}

func (m *Manager) setState(s models.ConnectionState) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

// safeCall защищает цикл чтения от паники в обработчиках
func (m *Manager) safeCall(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.WithField("panic", r).Error("Realtime callback panicked")
		}
	}()
	fn()
}
