package v1

import (
	"time"

	"github.com/shenikar/crisis_map_sync/internal/geo"
	"github.com/shenikar/crisis_map_sync/internal/mapview"
	"github.com/shenikar/crisis_map_sync/internal/models"
)

// PointDTO - точка в градусах
// @Description Точка в градусах
type PointDTO struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// ViewportRequest DTO для перемещения карты
// @Description DTO для перемещения карты
type ViewportRequest struct {
	SouthWest PointDTO `json:"southWest" validate:"required"`
	NorthEast PointDTO `json:"northEast" validate:"required"`
}

// ViewportResponse DTO с текущей областью карты
// @Description DTO с текущей областью карты
type ViewportResponse struct {
	Known     bool      `json:"known"`
	SouthWest *PointDTO `json:"southWest,omitempty"`
	NorthEast *PointDTO `json:"northEast,omitempty"`
	Center    *PointDTO `json:"center,omitempty"`
	RadiusKm  float64   `json:"radiusKm"`
}

// MapStatusResponse DTO состояния карты
// @Description DTO состояния карты
type MapStatusResponse struct {
	Markers     mapview.CategoryStatus `json:"markers"`
	Incidents   mapview.CategoryStatus `json:"incidents"`
	Groups      []LayerGroupResponse   `json:"groups"`
	MarkerTypes []models.MarkerType    `json:"markerTypes"`
	Notice      string                 `json:"notice,omitempty"`
}

// LayerGroupResponse DTO группы слоёв без элементов
// @Description DTO группы слоёв без элементов
type LayerGroupResponse struct {
	Key     string `json:"key"`
	Visible bool   `json:"visible"`
	Items   int    `json:"items"`
}

// VisibilityRequest DTO для видимости слоя
// @Description DTO для видимости слоя
type VisibilityRequest struct {
	Visible *bool `json:"visible" validate:"required"`
}

// VisibilityResponse DTO с новой видимостью слоя
// @Description DTO с новой видимостью слоя
type VisibilityResponse struct {
	Key     string `json:"key"`
	Visible bool   `json:"visible"`
}

// MarkerRequest DTO для создания/обновления маркера
// @Description DTO для создания/обновления маркера
type MarkerRequest struct {
	Type         string  `json:"type" validate:"required,max=64"`
	Name         string  `json:"name,omitempty" validate:"max=255"`
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
	Address      string  `json:"address,omitempty"`
	PostalCode   string  `json:"postalCode,omitempty"`
	City         string  `json:"city,omitempty"`
	Description  string  `json:"description,omitempty"`
	OpeningHours string  `json:"openingHours,omitempty"`
	ContactInfo  string  `json:"contactInfo,omitempty"`
}

// IncidentRequest DTO для создания/обновления инцидента
// @Description DTO для создания/обновления инцидента
type IncidentRequest struct {
	Name         string     `json:"name" validate:"required,min=2,max=255"`
	Description  string     `json:"description,omitempty"`
	Severity     string     `json:"severity" validate:"required,oneof=RED YELLOW GREEN"`
	Latitude     float64    `json:"latitude" validate:"latitude"`
	Longitude    float64    `json:"longitude" validate:"longitude"`
	ImpactRadius float64    `json:"impactRadius" validate:"gt=0"`
	StartedAt    *time.Time `json:"startedAt,omitempty"`
	EndedAt      *time.Time `json:"endedAt,omitempty"`
	ScenarioID   *int64     `json:"scenarioId,omitempty"`
}

// EditingRequest DTO для режима редактирования; ID == nil снимает режим
// @Description DTO для режима редактирования
type EditingRequest struct {
	ID *int64 `json:"id"`
}

// RouteRequest DTO для построения маршрута: к маркеру или между двумя точками
// @Description DTO для построения маршрута
type RouteRequest struct {
	MarkerID *int64   `json:"markerId,omitempty"`
	Start    PointDTO `json:"start"`
	End      PointDTO `json:"end"`
}

// SelectPlaceRequest DTO для выбора результата поиска
// @Description DTO для выбора результата поиска
type SelectPlaceRequest struct {
	ID   int64   `json:"id"`
	Name string  `json:"name" validate:"required"`
	Lat  float64 `json:"lat" validate:"latitude"`
	Lng  float64 `json:"lng" validate:"longitude"`
	Type string  `json:"type,omitempty"`
}

// SharingRequest DTO для включения/выключения передачи позиции
// @Description DTO для включения/выключения передачи позиции
type SharingRequest struct {
	Sharing *bool `json:"sharing" validate:"required"`
}

// FixRequest DTO с позицией устройства
// @Description DTO с позицией устройства
type FixRequest struct {
	Latitude  float64    `json:"latitude" validate:"latitude"`
	Longitude float64    `json:"longitude" validate:"longitude"`
	Accuracy  float64    `json:"accuracy,omitempty" validate:"gte=0"`
	At        *time.Time `json:"at,omitempty"`
}

// PermissionRequest DTO с разрешением на геолокацию
// @Description DTO с разрешением на геолокацию
type PermissionRequest struct {
	Allowed *bool `json:"allowed" validate:"required"`
}

// ConnectionResponse DTO состояния push-соединения
// @Description DTO состояния push-соединения
type ConnectionResponse struct {
	State     string `json:"state"`
	Connected bool   `json:"connected"`
}

// boundsFromDTO переводит DTO в geo.Bounds
func boundsFromDTO(r ViewportRequest) geo.Bounds {
	return geo.Bounds{
		SouthWest: geo.LatLng{Lat: r.SouthWest.Lat, Lng: r.SouthWest.Lng},
		NorthEast: geo.LatLng{Lat: r.NorthEast.Lat, Lng: r.NorthEast.Lng},
	}
}
