// Package mapview keeps the map overlays (markers, incident danger zones,
// route and search result) consistent with the backend for the visible viewport.
package mapview

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shenikar/crisis_map_sync/internal/geo"
	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/shenikar/crisis_map_sync/internal/restclient"
	"github.com/shenikar/crisis_map_sync/internal/routing"
	"github.com/shenikar/crisis_map_sync/internal/service"
	"github.com/sirupsen/logrus"
)

var (
	// ErrDisposed - View уже освобождён
	ErrDisposed = errors.New("mapview: view disposed")
	// ErrUnknownLayer - нет группы слоёв с таким ключом
	ErrUnknownLayer = errors.New("mapview: unknown layer")
)

// IncidentsLayer - ключ группы слоёв инцидентов
const IncidentsLayer = "INCIDENTS"

// CategoryState - состояние категории оверлеев
type CategoryState int

const (
	StateUninitialized CategoryState = iota
	StateLoading
	StateReady
	StateError
)

func (s CategoryState) String() string {
	switch s {
	case StateLoading:
		return "LOADING"
	case StateReady:
		return "READY"
	case StateError:
		return "ERROR"
	default:
		return "UNINITIALIZED"
	}
}

func (s CategoryState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CategoryStatus - то, что видит интерфейс о категории. Silent - идёт фоновое
// обновление после перемещения карты, без индикатора загрузки.
type CategoryStatus struct {
	State   CategoryState        `json:"state"`
	Error   *restclient.APIError `json:"error,omitempty"`
	Loading bool                 `json:"loading"`
	Silent  bool                 `json:"silent"`
}

// LayerGroup - группа объектов одной категории. Visible == Attached
// поддерживается только через методы видимости View.
type LayerGroup struct {
	Key      string `json:"key"`
	Visible  bool   `json:"visible"`
	Attached bool   `json:"attached"`
	Items    []Item `json:"items"`
}

// Locator - цепочка получения позиции пользователя
type Locator interface {
	Locate(ctx context.Context) (geo.LatLng, error)
}

// Deps - сервисы, с которыми работает View
type Deps struct {
	Markers   service.MarkerService
	Incidents service.IncidentService
	Geocoding service.GeocodingService
	Router    routing.Router
	Locator   Locator
	// Sharing сообщает, делится ли пользователь позицией: от этого зависит кнопка маршрута в попапе
	Sharing func() bool
}

// Config - тайминги View
type Config struct {
	Debounce       time.Duration
	NoticeDuration time.Duration
}

// View - согласователь карты. Все изменения групп слоёв идут через него.
type View struct {
	deps   Deps
	cfg    Config
	logger *logrus.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	surface  Surface
	disposed bool

	// маркеры
	cachedTypes   []models.MarkerType
	markerTypes   []models.MarkerType
	markerData    map[string][]models.Marker
	adminMarkers  []models.Marker
	markerGroups  map[string]*LayerGroup
	markerStatus  CategoryStatus
	markersLoaded bool
	markerSeq     uint64
	editingMarker *int64

	// инциденты
	incidents       []models.Incident
	incidentGroup   *LayerGroup
	incidentStatus  CategoryStatus
	incidentsLoaded bool
	incidentSeq     uint64
	editingIncident *int64

	debounce   *time.Timer
	removeMove func()

	route routeState
	search searchState

	notice      string
	noticeSeq   uint64
	noticeTimer *time.Timer
}

// NewView создает View поверх surface
func NewView(surface Surface, deps Deps, cfg Config, logger *logrus.Logger) *View {
	if cfg.Debounce <= 0 {
		cfg.Debounce = 500 * time.Millisecond
	}
	if cfg.NoticeDuration <= 0 {
		cfg.NoticeDuration = 3 * time.Second
	}
	if deps.Sharing == nil {
		deps.Sharing = func() bool { return false }
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &View{
		deps:         deps,
		cfg:          cfg,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
		surface:      surface,
		markerData:   make(map[string][]models.Marker),
		markerGroups: make(map[string]*LayerGroup),
	}
}

// Init загружает типы маркеров (кэш переживает повторный Init), маркеры для
// текущей области и инциденты, затем подписывается на перемещения карты.
// Ошибки категорий видны через статусы; возвращается их объединение.
func (v *View) Init(ctx context.Context) error {
	log := v.logger.WithFields(logrus.Fields{
		"component": "mapview",
		"method":    "Init",
	})

	v.mu.Lock()
	if v.disposed {
		v.mu.Unlock()
		return ErrDisposed
	}
	if v.removeMove != nil {
		v.removeMove()
		v.removeMove = nil
	}
	v.stopDebounceLocked()
	v.resetMarkersLocked()
	cached := v.cachedTypes
	v.markerStatus = CategoryStatus{State: StateLoading, Loading: true}
	v.mu.Unlock()

	var errs []error

	types := cached
	if types == nil {
		var err error
		types, err = v.deps.Markers.FetchMarkerTypes(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to load marker types")
			v.mu.Lock()
			v.markerStatus = CategoryStatus{State: StateError, Error: restclient.ToAPIError(err)}
			v.renderMarkersLocked()
			v.mu.Unlock()
			errs = append(errs, err)
		}
	}

	if types != nil {
		v.mu.Lock()
		if v.disposed {
			v.mu.Unlock()
			return ErrDisposed
		}
		v.cachedTypes = types
		v.installMarkerTypesLocked(types)
		v.mu.Unlock()

		if err := v.refreshMarkers(ctx, false); err != nil {
			errs = append(errs, err)
		}
	}

	v.mu.Lock()
	if v.disposed {
		v.mu.Unlock()
		return ErrDisposed
	}
	v.removeMove = v.surface.OnMove(v.OnViewportMoved)
	if v.incidentGroup == nil {
		v.incidentGroup = &LayerGroup{Key: IncidentsLayer}
		v.setGroupVisibilityLocked(v.incidentGroup, true)
	}
	v.mu.Unlock()

	if err := v.RefreshIncidents(ctx); err != nil {
		errs = append(errs, err)
	}

	log.WithField("marker_types", len(types)).Info("Map view initialized")
	return errors.Join(errs...)
}

// OnViewportMoved - обработчик перемещения карты: классический debounce,
// по истечении обновляются только маркеры
func (v *View) OnViewportMoved(geo.Bounds) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.disposed {
		return
	}
	v.stopDebounceLocked()
	v.debounce = time.AfterFunc(v.cfg.Debounce, func() {
		if err := v.refreshMarkers(v.ctx, true); err != nil && !errors.Is(err, ErrDisposed) {
			v.logger.WithError(err).Warn("Failed to update markers for current view")
		}
	})
}

func (v *View) stopDebounceLocked() {
	if v.debounce != nil {
		v.debounce.Stop()
		v.debounce = nil
	}
}

// MarkerStatus возвращает статус категории маркеров
func (v *View) MarkerStatus() CategoryStatus {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.markerStatus
}

// IncidentStatus возвращает статус категории инцидентов
func (v *View) IncidentStatus() CategoryStatus {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.incidentStatus
}

// Groups возвращает копии всех групп слоёв
func (v *View) Groups() []LayerGroup {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]LayerGroup, 0, len(v.markerGroups)+1)
	for _, t := range v.markerTypes {
		if g, ok := v.markerGroups[t.ID]; ok {
			out = append(out, copyGroup(g))
		}
	}
	if g, ok := v.markerGroups[models.AdminMarkerType]; ok {
		out = append(out, copyGroup(g))
	}
	if v.incidentGroup != nil {
		out = append(out, copyGroup(v.incidentGroup))
	}
	return out
}

func copyGroup(g *LayerGroup) LayerGroup {
	cp := *g
	cp.Items = append([]Item(nil), g.Items...)
	return cp
}

// SetVisibility показывает или скрывает группу слоёв
func (v *View) SetVisibility(key string, visible bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	g, err := v.groupLocked(key)
	if err != nil {
		return err
	}
	v.setGroupVisibilityLocked(g, visible)
	return nil
}

// ToggleVisibility переключает видимость группы и возвращает новое значение
func (v *View) ToggleVisibility(key string) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	g, err := v.groupLocked(key)
	if err != nil {
		return false, err
	}
	v.setGroupVisibilityLocked(g, !g.Visible)
	return g.Visible, nil
}

// SetAllMarkersVisibility применяет видимость ко всем группам маркеров
func (v *View) SetAllMarkersVisibility(visible bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.disposed {
		return ErrDisposed
	}
	for _, g := range v.markerGroups {
		v.setGroupVisibilityLocked(g, visible)
	}
	return nil
}

// SetIncidentsVisibility показывает или скрывает инциденты
func (v *View) SetIncidentsVisibility(visible bool) error {
	return v.SetVisibility(IncidentsLayer, visible)
}

func (v *View) groupLocked(key string) (*LayerGroup, error) {
	if v.disposed {
		return nil, ErrDisposed
	}
	if key == IncidentsLayer && v.incidentGroup != nil {
		return v.incidentGroup, nil
	}
	if g, ok := v.markerGroups[key]; ok {
		return g, nil
	}
	return nil, ErrUnknownLayer
}

// setGroupVisibilityLocked - единственное место, где меняются Visible и Attached
func (v *View) setGroupVisibilityLocked(g *LayerGroup, visible bool) {
	g.Visible = visible
	if visible {
		v.surface.ShowLayer(g.Key, g.Items)
	} else {
		v.surface.HideLayer(g.Key)
	}
	g.Attached = visible

	for i := range v.markerTypes {
		if v.markerTypes[i].ID == g.Key {
			v.markerTypes[i].Visible = visible
		}
	}
}

// setGroupItemsLocked заменяет содержимое группы и перерисовывает её, если она на карте
func (v *View) setGroupItemsLocked(g *LayerGroup, items []Item) {
	g.Items = items
	if g.Attached {
		v.surface.ShowLayer(g.Key, items)
	}
}

// Notice возвращает текущее временное сообщение
func (v *View) Notice() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.notice
}

// showNoticeLocked показывает сообщение и убирает его через NoticeDuration
func (v *View) showNoticeLocked(msg string) {
	if v.noticeTimer != nil {
		v.noticeTimer.Stop()
	}
	v.noticeSeq++
	seq := v.noticeSeq
	v.notice = msg
	v.noticeTimer = time.AfterFunc(v.cfg.NoticeDuration, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.noticeSeq == seq {
			v.notice = ""
		}
	})
}

// Dispose останавливает таймеры, снимает слушателей, очищает и снимает
// все группы, убирает маршрут и результат поиска. Повторный вызов безопасен.
func (v *View) Dispose() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.disposed {
		return
	}
	v.disposed = true
	v.cancel()

	v.stopDebounceLocked()
	if v.noticeTimer != nil {
		v.noticeTimer.Stop()
		v.noticeTimer = nil
	}
	v.notice = ""

	if v.removeMove != nil {
		v.removeMove()
		v.removeMove = nil
	}
	v.clearRouteLocked()
	v.clearSearchLocked()

	for _, g := range v.markerGroups {
		g.Items = nil
		v.surface.HideLayer(g.Key)
		g.Attached = false
	}
	if v.incidentGroup != nil {
		v.incidentGroup.Items = nil
		v.surface.HideLayer(v.incidentGroup.Key)
		v.incidentGroup.Attached = false
	}
	v.markerGroups = make(map[string]*LayerGroup)
	v.incidentGroup = nil
	v.markerData = make(map[string][]models.Marker)
	v.markerTypes = nil
	v.incidents = nil
	v.markersLoaded = false
	v.incidentsLoaded = false
	v.surface = nil

	v.logger.WithField("component", "mapview").Info("Map view disposed")
}
