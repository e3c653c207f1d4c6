// Package location shares the user's position with the household over the push
// channel and tracks the positions the other household members share.
package location

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shenikar/crisis_map_sync/internal/geo"
	"github.com/shenikar/crisis_map_sync/internal/geolocation"
	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=sharer.go -destination=mocks/mock_sharer.go -package=mocks

// ErrNoConnection - push-соединения нет, позицию отправить нельзя
var ErrNoConnection = errors.New("Ingen tilkobling til server")

// DefaultInterval - период отправки позиции
const DefaultInterval = 30 * time.Second

// Publisher - канал отправки позиции
type Publisher interface {
	Connected() bool
	PublishPosition(token string, longitude, latitude float64) bool
}

// Locator - текущая позиция устройства
type Locator interface {
	Live(ctx context.Context) (geo.LatLng, error)
}

// FlagStore хранит флаг передачи позиции между запусками
type FlagStore interface {
	SetSharing(ctx context.Context, userID string, sharing bool) error
	IsSharing(ctx context.Context, userID string) (bool, error)
}

// Status - состояние передачи позиции
type Status struct {
	Sharing      bool        `json:"sharing"`
	Error        string      `json:"error,omitempty"`
	LastShared   *geo.LatLng `json:"lastShared,omitempty"`
	LastSharedAt time.Time   `json:"lastSharedAt,omitempty"`
}

type loop struct {
	stop chan struct{}
	done chan struct{}
}

// Sharer периодически отправляет позицию пользователя, пока включена передача
type Sharer struct {
	session  models.Session
	pub      Publisher
	locator  Locator
	store    FlagStore
	interval time.Duration
	logger   *logrus.Logger
	now      func() time.Time

	mu       sync.Mutex
	sharing  bool
	errMsg   string
	last     *geo.LatLng
	lastAt   time.Time
	loop     *loop
	closed   bool
	onChange func(sharing bool)
}

func NewSharer(session models.Session, pub Publisher, locator Locator, store FlagStore, interval time.Duration, logger *logrus.Logger) *Sharer {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sharer{
		session:  session,
		pub:      pub,
		locator:  locator,
		store:    store,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// OnChange регистрирует обработчик смены флага, например перерисовку попапов
func (s *Sharer) OnChange(fn func(sharing bool)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// Status возвращает состояние передачи
func (s *Sharer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{Sharing: s.sharing, Error: s.errMsg, LastSharedAt: s.lastAt}
	if s.last != nil {
		p := *s.last
		st.LastShared = &p
	}
	return st
}

// Sharing сообщает, включена ли передача
func (s *Sharer) Sharing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sharing
}

// Restore читает сохранённый флаг; если передача была включена и соединение
// есть, запускает её
func (s *Sharer) Restore(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	sharing, err := s.store.IsSharing(ctx, s.session.UserID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.sharing = sharing
	s.mu.Unlock()

	if sharing && s.pub.Connected() {
		return s.Start(ctx)
	}
	return nil
}

// Start включает передачу: сразу отправляет позицию и запускает таймер.
// Нет соединения - передача остаётся включённой, ошибка видна в Status.
// Ошибка геолокации выключает передачу.
func (s *Sharer) Start(ctx context.Context) error {
	s.mu.Lock()
	old := s.stopLoopLocked()
	s.mu.Unlock()
	if old != nil {
		<-old.done
	}

	s.setSharing(ctx, true)

	err := s.shareOnce(ctx)
	if err != nil && !errors.Is(err, ErrNoConnection) {
		return err
	}

	s.mu.Lock()
	if s.sharing && s.loop == nil && !s.closed {
		s.startLoopLocked(false)
	}
	s.mu.Unlock()
	return err
}

// Stop выключает передачу и ждёт остановки таймера
func (s *Sharer) Stop(ctx context.Context) {
	s.mu.Lock()
	l := s.stopLoopLocked()
	s.mu.Unlock()
	if l != nil {
		<-l.done
	}
	s.setSharing(ctx, false)
}

// Toggle переключает передачу и возвращает новое значение
func (s *Sharer) Toggle(ctx context.Context) (bool, error) {
	if s.Sharing() {
		s.Stop(ctx)
		return false, nil
	}
	err := s.Start(ctx)
	return s.Sharing(), err
}

// OnConnected перезапускает передачу после (пере)подключения
func (s *Sharer) OnConnected() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.errMsg == ErrNoConnection.Error() {
		s.errMsg = ""
	}
	if s.sharing && s.loop == nil && !s.closed {
		s.logger.WithField("component", "location").Debug("Connected, restarting position sharing")
		s.startLoopLocked(true)
	}
}

// Close останавливает таймер, сохранённый флаг не меняется
func (s *Sharer) Close() {
	s.mu.Lock()
	s.closed = true
	l := s.stopLoopLocked()
	s.mu.Unlock()
	if l != nil {
		<-l.done
	}
}

func (s *Sharer) setSharing(ctx context.Context, sharing bool) {
	s.mu.Lock()
	changed := s.sharing != sharing
	s.sharing = sharing
	onChange := s.onChange
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.SetSharing(ctx, s.session.UserID, sharing); err != nil {
			s.logger.WithError(err).WithField("component", "location").Warn("Failed to persist sharing flag")
		}
	}
	if changed && onChange != nil {
		onChange(sharing)
	}
}

// startLoopLocked запускает таймер; immediate - первая отправка сразу
func (s *Sharer) startLoopLocked(immediate bool) {
	l := &loop{stop: make(chan struct{}), done: make(chan struct{})}
	s.loop = l
	go s.run(l, immediate)
}

// stopLoopLocked сигналит циклу остановиться; ждать done нужно без блокировки
func (s *Sharer) stopLoopLocked() *loop {
	l := s.loop
	if l != nil {
		close(l.stop)
		s.loop = nil
	}
	return l
}

func (s *Sharer) run(l *loop, immediate bool) {
	defer close(l.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-l.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	if immediate {
		_ = s.shareOnce(ctx)
	}
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			_ = s.shareOnce(ctx)
		}
	}
}

// shareOnce отправляет одну позицию
func (s *Sharer) shareOnce(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"component": "location",
		"method":    "shareOnce",
	})

	if !s.pub.Connected() {
		s.setError(ErrNoConnection.Error())
		return ErrNoConnection
	}
	if !s.Sharing() {
		return nil
	}

	pos, err := s.locator.Live(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.WithError(err).Warn("Geolocation error, position sharing stopped")
		s.setError(geolocation.ErrorMessage(err))
		s.disable(ctx)
		return err
	}

	if !s.pub.PublishPosition(s.session.AuthToken, pos.Lng, pos.Lat) {
		s.setError(ErrNoConnection.Error())
		return ErrNoConnection
	}

	s.mu.Lock()
	s.errMsg = ""
	s.last = &pos
	s.lastAt = s.now()
	s.mu.Unlock()
	log.Debug("Position shared")
	return nil
}

// disable выключает передачу изнутри цикла, не дожидаясь его завершения
func (s *Sharer) disable(ctx context.Context) {
	s.mu.Lock()
	s.stopLoopLocked()
	s.mu.Unlock()
	s.setSharing(context.WithoutCancel(ctx), false)
}

func (s *Sharer) setError(msg string) {
	s.mu.Lock()
	s.errMsg = msg
	s.mu.Unlock()
}
