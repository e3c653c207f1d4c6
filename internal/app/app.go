// Package app assembles the per-session object graph (push session, map view,
// inbox, position sharing) and owns its lifecycle: New creates it, Start brings it
// online, Dispose tears it down. Nothing in it is a process-wide singleton.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shenikar/crisis_map_sync/internal/config"
	"github.com/shenikar/crisis_map_sync/internal/geo"
	"github.com/shenikar/crisis_map_sync/internal/geolocation"
	"github.com/shenikar/crisis_map_sync/internal/location"
	"github.com/shenikar/crisis_map_sync/internal/mapview"
	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/shenikar/crisis_map_sync/internal/notification"
	"github.com/shenikar/crisis_map_sync/internal/realtime"
	"github.com/shenikar/crisis_map_sync/internal/restclient"
	"github.com/shenikar/crisis_map_sync/internal/routing"
	"github.com/shenikar/crisis_map_sync/internal/service"
	"github.com/shenikar/crisis_map_sync/internal/webhook"
	"github.com/sirupsen/logrus"
)

// StateStore - локальное состояние пользователя
type StateStore interface {
	location.FlagStore
	notification.ReadStore
}

// Infra - зависимости уровня процесса, общие для всех сессий. Любое поле,
// кроме Transport, может быть nil.
type Infra struct {
	Transport realtime.Transport
	Journal   notification.Journal
	State     StateStore
	Geocache  service.GeocodeCache
	Alerts    webhook.Publisher
}

// App - граф объектов одной сессии пользователя
type App struct {
	Session models.Session

	Backend       *restclient.Client
	Markers       service.MarkerService
	Incidents     service.IncidentService
	Geocoding     service.GeocodingService
	Notifications service.NotificationService

	Manager   *realtime.Manager
	Scene     *mapview.Scene
	View      *mapview.View
	Center    *notification.Center
	Sharer    *location.Sharer
	Household *location.Household
	Fixes     *geolocation.FixSource
	Resolver  *geolocation.Resolver

	logger      *logrus.Logger
	disposeOnce sync.Once
}

// New собирает граф для сессии. Сетевых вызовов не делает.
func New(cfg *config.Config, session models.Session, infra Infra, logger *logrus.Logger) (*App, error) {
	if infra.Transport == nil {
		return nil, errors.New("app: realtime transport is required")
	}

	backend, err := restclient.New(cfg.BackendURL, cfg.HTTPTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("app: backend client: %w", err)
	}
	backend.SetToken(session.AuthToken)

	geocoder, err := restclient.New(cfg.GeocodingURL, cfg.HTTPTimeout, logger,
		restclient.WithName("geocoding"),
		restclient.WithHeader("User-Agent", cfg.GeocodingUserAgent),
		restclient.WithHeader("Accept-Language", "no"),
	)
	if err != nil {
		return nil, fmt.Errorf("app: geocoding client: %w", err)
	}

	ipClient, err := restclient.New(cfg.IPGeolocationURL, cfg.HTTPTimeout, logger, restclient.WithName("ip-geolocation"))
	if err != nil {
		return nil, fmt.Errorf("app: ip geolocation client: %w", err)
	}

	routingClient, err := restclient.New(cfg.RoutingURL, cfg.HTTPTimeout, logger, restclient.WithName("routing"))
	if err != nil {
		return nil, fmt.Errorf("app: routing client: %w", err)
	}

	a := &App{
		Session:       session,
		Backend:       backend,
		Markers:       service.NewMarkerService(backend, logger),
		Incidents:     service.NewIncidentService(backend, logger),
		Geocoding:     service.NewGeocodingService(geocoder, infra.Geocache, cfg.GeocodingCountry, cfg.GeocodingCacheTTL, logger),
		Notifications: service.NewNotificationService(backend, logger),
		Fixes:         geolocation.NewFixSource(cfg.PositionMaxAge),
		logger:        logger,
	}
	a.Resolver = geolocation.NewResolver(a.Fixes, geolocation.NewIPSource(ipClient), logger)

	a.Manager = realtime.NewManager(infra.Transport, realtime.Backoff{
		Initial: cfg.ReconnectInitial,
		Max:     cfg.ReconnectMax,
	}, logger)

	initial := geo.Around(geo.LatLng{Lat: cfg.InitialLat, Lng: cfg.InitialLng}, 0.05)
	a.Scene = mapview.NewScene(&initial)

	var flags location.FlagStore
	var reads notification.ReadStore
	if infra.State != nil {
		flags, reads = infra.State, infra.State
	}

	a.Sharer = location.NewSharer(session, a.Manager, a.Resolver, flags, cfg.PositionInterval, logger)
	a.Household = location.NewHousehold(session.HouseholdID, a.Notifications, a.Manager, logger)

	a.View = mapview.NewView(a.Scene, mapview.Deps{
		Markers:   a.Markers,
		Incidents: a.Incidents,
		Geocoding: a.Geocoding,
		Router:    routing.NewOSRMRouter(routingClient, "driving", logger),
		Locator:   a.Resolver,
		Sharing:   a.Sharer.Sharing,
	}, mapview.Config{
		Debounce:       cfg.MapDebounce,
		NoticeDuration: cfg.NoticeDuration,
	}, logger)
	a.Sharer.OnChange(func(bool) { a.View.RefreshPopups() })

	a.Center = notification.NewCenter(session, notification.Deps{
		Service:   a.Notifications,
		Journal:   infra.Journal,
		Reads:     reads,
		Incidents: a.View,
		Alerts:    infra.Alerts,
	}, logger)

	return a, nil
}

// Callbacks объединяет обработчики всех компонентов, которым нужен push-канал
func (a *App) Callbacks() realtime.Callbacks {
	inbox := a.Center.Callbacks()
	return realtime.Callbacks{
		OnConnected: func() {
			inbox.OnConnected()
			a.Sharer.OnConnected()
			// подписка на позиции не блокирует цикл чтения
			go a.Household.OnConnected(context.Background())
		},
		OnDisconnected: inbox.OnDisconnected,
		OnNotification: inbox.OnNotification,
		OnIncident:     inbox.OnIncident,
	}
}

// Start открывает push-сессию, загружает карту и восстанавливает передачу позиции.
// Ошибки загрузки категорий карты не фатальны: они видны в статусах View.
func (a *App) Start(ctx context.Context) error {
	log := a.logger.WithFields(logrus.Fields{
		"component": "app",
		"user_id":   a.Session.UserID,
	})

	a.Manager.Initialize(ctx, a.Session, a.Callbacks())

	if err := a.View.Init(ctx); err != nil {
		if errors.Is(err, mapview.ErrDisposed) {
			return err
		}
		log.WithError(err).Warn("Map view initialized with errors")
	}

	if err := a.Sharer.Restore(ctx); err != nil {
		log.WithError(err).Warn("Failed to restore position sharing")
	}

	log.Info("Session started")
	return nil
}

// Dispose освобождает всё, что создал New. Повторный вызов безопасен.
func (a *App) Dispose() {
	a.disposeOnce.Do(func() {
		a.Sharer.Close()
		a.Manager.Disconnect()
		a.Center.Close()
		a.View.Dispose()
		a.logger.WithField("component", "app").Info("Session disposed")
	})
}
