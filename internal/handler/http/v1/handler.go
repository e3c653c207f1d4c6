package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crisis_map_sync/internal/config"
	"github.com/shenikar/crisis_map_sync/internal/geo"
	"github.com/shenikar/crisis_map_sync/internal/geolocation"
	"github.com/shenikar/crisis_map_sync/internal/location"
	"github.com/shenikar/crisis_map_sync/internal/mapview"
	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/shenikar/crisis_map_sync/internal/notification"
	"github.com/shenikar/crisis_map_sync/internal/restclient"
	"github.com/shenikar/crisis_map_sync/internal/service"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_handler.go -package=mocks

// MapView - согласователь карты
type MapView interface {
	MarkerStatus() mapview.CategoryStatus
	IncidentStatus() mapview.CategoryStatus
	Groups() []mapview.LayerGroup
	MarkerTypes() []models.MarkerType
	Markers() map[string][]models.Marker
	Incidents() []models.Incident
	Notice() string

	SetVisibility(key string, visible bool) error
	ToggleVisibility(key string) (bool, error)
	SetAllMarkersVisibility(visible bool) error
	RefreshMarkers(ctx context.Context) error
	RefreshIncidents(ctx context.Context) error

	SetEditingMarker(id int64)
	ClearEditingMarker()
	CreateMarker(ctx context.Context, marker *models.Marker) error
	UpdateMarker(ctx context.Context, marker *models.Marker) error
	DeleteMarker(ctx context.Context, id int64) error
	AdminMarkers(ctx context.Context, filter mapview.AdminFilter) ([]models.Marker, error)
	SetAdminMarkers(markers []models.Marker) error

	SetEditingIncident(id int64)
	ClearEditingIncident()
	CreateIncident(ctx context.Context, incident *models.Incident) error
	UpdateIncident(ctx context.Context, incident *models.Incident) error
	DeleteIncident(ctx context.Context, id int64) error

	RouteToMarker(ctx context.Context, marker models.Marker) error
	GenerateRoute(ctx context.Context, start, end geo.LatLng) error
	ClearRoute()
	Route() mapview.RouteStatus

	SearchPlaces(ctx context.Context, query string) ([]models.Place, error)
	SelectSearchResult(place models.Place) error
	ClearSearchResult()
	Search() mapview.SearchStatus
}

// Viewport - поверхность карты: видимая область и экспорт слоёв
type Viewport interface {
	Bounds() (geo.Bounds, bool)
	MoveTo(b geo.Bounds)
	GeoJSON(onlyLayer string) ([]byte, error)
}

// Inbox - центр уведомлений
type Inbox interface {
	State() notification.State
	Refresh(ctx context.Context) error
	MarkAsRead(ctx context.Context, id int64) error
	ResetCount()
	ClosePopup()
	History(ctx context.Context, limit int) ([]models.JournalEntry, error)
}

// PositionSharing - передача позиции домохозяйству
type PositionSharing interface {
	Status() location.Status
	Start(ctx context.Context) error
	Stop(ctx context.Context)
	Toggle(ctx context.Context) (bool, error)
}

// Household - позиции членов домохозяйства
type Household interface {
	Members() []models.Position
}

// Connection - push-сессия
type Connection interface {
	State() models.ConnectionState
	Connect(ctx context.Context)
	Disconnect()
}

// FixReceiver принимает позиции устройства от интерфейса
type FixReceiver interface {
	Push(fix geolocation.Fix) error
	SetPermission(allowed bool)
}

// Locator - текущая позиция пользователя с запасными источниками
type Locator interface {
	Locate(ctx context.Context) (geo.LatLng, error)
}

// MarkerFinder ищет ближайший маркер
type MarkerFinder interface {
	FindClosest(ctx context.Context, from geo.LatLng, markerType string) (*models.ClosestMarker, error)
}

// Deps - компоненты сессии, которыми управляет API
type Deps struct {
	View       MapView
	Viewport   Viewport
	Inbox      Inbox
	Sharing    PositionSharing
	Household  Household
	Connection Connection
	Fixes      FixReceiver
	Locator    Locator
	Markers    MarkerFinder
	Geocoding  service.GeocodingService
}

type Handler struct {
	deps     Deps
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(deps Deps, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		deps:     deps,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// bind разбирает и проверяет тело запроса; при ошибке ответ уже записан
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// idParam читает числовой id из пути
func idParam(c *gin.Context, what string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + what + " ID"})
		return 0, false
	}
	return id, true
}

// respondError переводит ошибку компонента в HTTP-ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var apiErr *restclient.APIError
	var posErr *geolocation.PositionError

	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, mapview.ErrInvalidMarker):
		log.WithError(err).Warn("Request rejected")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, mapview.ErrUnknownLayer):
		c.JSON(http.StatusNotFound, gin.H{"error": "layer not found"})
	case errors.Is(err, mapview.ErrDisposed):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session closed"})
	case errors.Is(err, location.ErrNoConnection):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.As(err, &posErr):
		log.WithError(err).Warn("Geolocation failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": geolocation.ErrorMessage(err)})
	case errors.As(err, &apiErr):
		log.WithError(err).Error("Backend request failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": apiErr.Message, "status": apiErr.Status})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get application health status
// @Description Get health status of the application and the push session
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"connection": h.deps.Connection.State().String(),
	})
}

// @Summary Get push connection state
// @Tags Connection
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ConnectionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /connection [get]
func (h *Handler) getConnection(c *gin.Context) {
	state := h.deps.Connection.State()
	c.JSON(http.StatusOK, ConnectionResponse{State: state.String(), Connected: state == models.Connected})
}

// @Summary Start the push session
// @Description Starts the connect loop in the background. No-op when it is already running.
// @Tags Connection
// @Produce json
// @Security ApiKeyAuth
// @Success 202 {object} ConnectionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /connection/connect [post]
func (h *Handler) connect(c *gin.Context) {
	// цикл переживает запрос
	h.deps.Connection.Connect(context.WithoutCancel(c.Request.Context()))
	state := h.deps.Connection.State()
	c.JSON(http.StatusAccepted, ConnectionResponse{State: state.String(), Connected: state == models.Connected})
}

// @Summary Stop the push session
// @Tags Connection
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /connection/disconnect [post]
func (h *Handler) disconnect(c *gin.Context) {
	h.deps.Connection.Disconnect()
	c.Status(http.StatusNoContent)
}

// @Summary Report a device position
// @Description Feeds the live geolocation source. Stale fixes are still accepted but ignored by the resolver.
// @Tags Location
// @Accept json
// @Security ApiKeyAuth
// @Param fix body FixRequest true "Device position"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /location/fix [post]
func (h *Handler) pushFix(c *gin.Context) {
	var input FixRequest
	log := h.logger.WithField("method", "pushFix")
	if !h.bind(c, log, &input) {
		return
	}

	fix := geolocation.Fix{
		Position: geo.LatLng{Lat: input.Latitude, Lng: input.Longitude},
		Accuracy: input.Accuracy,
	}
	if input.At != nil {
		fix.At = *input.At
	}
	if err := h.deps.Fixes.Push(fix); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Grant or revoke geolocation permission
// @Tags Location
// @Accept json
// @Security ApiKeyAuth
// @Param permission body PermissionRequest true "Permission"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /location/permission [put]
func (h *Handler) setPermission(c *gin.Context) {
	var input PermissionRequest
	if !h.bind(c, h.logger.WithField("method", "setPermission"), &input) {
		return
	}
	h.deps.Fixes.SetPermission(*input.Allowed)
	c.Status(http.StatusNoContent)
}

// @Summary Locate the user
// @Description Live position with cached and IP fallbacks
// @Tags Location
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} geo.LatLng
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Position unavailable"
// @Router /location [get]
func (h *Handler) locate(c *gin.Context) {
	pos, err := h.deps.Locator.Locate(c.Request.Context())
	if err != nil {
		h.respondError(c, h.logger.WithField("method", "locate"), err)
		return
	}
	c.JSON(http.StatusOK, pos)
}

// @Summary Reverse geocode a point
// @Tags Location
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} models.Place
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Geocoding service error"
// @Router /location/reverse [get]
func (h *Handler) reverseGeocode(c *gin.Context) {
	log := h.logger.WithField("method", "reverseGeocode")
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil || !(geo.LatLng{Lat: lat, Lng: lng}).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}

	place, err := h.deps.Geocoding.ReverseGeocode(c.Request.Context(), lat, lng)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if place == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "place not found"})
		return
	}
	c.JSON(http.StatusOK, place)
}
