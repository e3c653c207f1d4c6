package service

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/shenikar/crisis_map_sync/internal/geo"
	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/shenikar/crisis_map_sync/internal/visual"
	"github.com/sirupsen/logrus"
)

const markersResource = "map-icons"

// радиус, которым администратор покрывает все маркеры региона
const adminRadiusKm = 100.0

//go:generate mockgen -source=marker.go -destination=mocks/mock_marker.go -package=mocks

// MarkerService определяет контракт для работы с маркерами карты
type MarkerService interface {
	FetchMarkers(ctx context.Context, q geo.Query) (map[string][]models.Marker, error)
	FetchMarkerTypes(ctx context.Context) ([]models.MarkerType, error)
	FindClosest(ctx context.Context, from geo.LatLng, markerType string) (*models.ClosestMarker, error)
	FetchAllForAdmin(ctx context.Context) ([]models.Marker, error)
	CreateMarker(ctx context.Context, marker *models.Marker) error
	UpdateMarker(ctx context.Context, marker *models.Marker) error
	DeleteMarker(ctx context.Context, id int64) error
}

type markerService struct {
	backend Backend
	logger  *logrus.Logger
}

func NewMarkerService(backend Backend, logger *logrus.Logger) MarkerService {
	return &markerService{
		backend: backend,
		logger:  logger,
	}
}

// тело запроса на создание/изменение, без id
type markerRequest struct {
	Type         string  `json:"type"`
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	PostalCode   string  `json:"postalCode"`
	City         string  `json:"city"`
	Description  string  `json:"description"`
	ContactInfo  string  `json:"contactInfo"`
	OpeningHours string  `json:"openingHours"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

func toMarkerRequest(m *models.Marker) markerRequest {
	return markerRequest{
		Type:         m.Type,
		Name:         m.Name,
		Address:      m.Address,
		PostalCode:   m.PostalCode,
		City:         m.City,
		Description:  m.Description,
		ContactInfo:  m.ContactInfo,
		OpeningHours: m.OpeningHours,
		Latitude:     m.Lat,
		Longitude:    m.Lng,
	}
}

func queryValues(q geo.Query) url.Values {
	return url.Values{
		"latitude":  {formatFloat(q.Center.Lat)},
		"longitude": {formatFloat(q.Center.Lng)},
		"radiusKm":  {formatFloat(q.RadiusKm)},
	}
}

// FetchMarkers получает маркеры вокруг центра и группирует их по типу
func (s *markerService) FetchMarkers(ctx context.Context, q geo.Query) (map[string][]models.Marker, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "marker",
		"method":    "FetchMarkers",
		"latitude":  q.Center.Lat,
		"longitude": q.Center.Lng,
		"radius_km": q.RadiusKm,
	})

	if q.RadiusKm <= 0 || !q.Center.Valid() {
		return nil, fmt.Errorf("%w: invalid marker query %+v", ErrValidation, q)
	}

	var markers []models.Marker
	if err := s.backend.Get(ctx, markersResource, queryValues(q), &markers); err != nil {
		log.WithError(err).Error("Failed to fetch markers")
		return nil, fmt.Errorf("service: could not fetch markers: %w", err)
	}

	byType := make(map[string][]models.Marker)
	for _, m := range markers {
		if m.Type == "" {
			log.WithField("marker_id", m.ID).Warn("Marker without type skipped")
			continue
		}
		byType[m.Type] = append(byType[m.Type], m)
	}

	log.WithField("count", len(markers)).Debug("Markers fetched")
	return byType, nil
}

// FetchMarkerTypes строит каталог типов по маркерам вокруг центра по умолчанию
func (s *markerService) FetchMarkerTypes(ctx context.Context) ([]models.MarkerType, error) {
	byType, err := s.FetchMarkers(ctx, geo.QueryFor(nil))
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(byType))
	for id := range byType {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return visual.ProcessMarkerTypes(ids, s.logger.WithField("service", "marker")), nil
}

// FindClosest находит ближайший маркер, при необходимости заданного типа
func (s *markerService) FindClosest(ctx context.Context, from geo.LatLng, markerType string) (*models.ClosestMarker, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "marker",
		"method":      "FindClosest",
		"marker_type": markerType,
	})

	if !from.Valid() {
		return nil, fmt.Errorf("%w: invalid position %+v", ErrValidation, from)
	}

	params := url.Values{
		"latitude":  {formatFloat(from.Lat)},
		"longitude": {formatFloat(from.Lng)},
	}
	if markerType != "" {
		params.Set("type", markerType)
	}

	var marker *models.Marker
	if err := s.backend.Get(ctx, markersResource+"/closest", params, &marker); err != nil {
		log.WithError(err).Error("Failed to find closest marker")
		return nil, fmt.Errorf("service: could not find closest marker: %w", err)
	}
	if marker == nil {
		return nil, nil
	}

	if marker.Name == "" {
		marker.Name = visual.FormatTypeTitle(marker.Type)
	}
	return &models.ClosestMarker{
		Marker:     *marker,
		DistanceKm: geo.Haversine(from, geo.LatLng{Lat: marker.Lat, Lng: marker.Lng}),
	}, nil
}

// FetchAllForAdmin получает все маркеры региона для администрирования
func (s *markerService) FetchAllForAdmin(ctx context.Context) ([]models.Marker, error) {
	q := geo.QueryFor(nil)
	q.RadiusKm = adminRadiusKm

	var markers []models.Marker
	if err := s.backend.Get(ctx, markersResource, queryValues(q), &markers); err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "marker",
			"method":  "FetchAllForAdmin",
		}).WithError(err).Error("Failed to fetch markers for admin")
		return nil, fmt.Errorf("service: could not fetch admin markers: %w", err)
	}
	return markers, nil
}

// CreateMarker создает маркер
func (s *markerService) CreateMarker(ctx context.Context, marker *models.Marker) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "marker",
		"method":      "CreateMarker",
		"marker_type": marker.Type,
	})

	if err := validateStruct(marker); err != nil {
		log.WithError(err).Warn("Marker rejected by validation")
		return err
	}

	var created models.Marker
	if err := s.backend.Post(ctx, markersResource, toMarkerRequest(marker), &created); err != nil {
		log.WithError(err).Error("Failed to create marker")
		return fmt.Errorf("service: could not create marker: %w", err)
	}
	if created.ID != 0 {
		marker.ID = created.ID
	}

	log.WithField("marker_id", marker.ID).Info("Marker created successfully")
	return nil
}

// UpdateMarker обновляет маркер
func (s *markerService) UpdateMarker(ctx context.Context, marker *models.Marker) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "marker",
		"method":    "UpdateMarker",
		"marker_id": marker.ID,
	})

	if marker.ID <= 0 {
		return fmt.Errorf("%w: marker id is required", ErrValidation)
	}
	if err := validateStruct(marker); err != nil {
		log.WithError(err).Warn("Marker rejected by validation")
		return err
	}

	if err := s.backend.Put(ctx, markersResource+"/"+strconv.FormatInt(marker.ID, 10), toMarkerRequest(marker), nil); err != nil {
		log.WithError(err).Error("Failed to update marker")
		return fmt.Errorf("service: could not update marker: %w", err)
	}

	log.Info("Marker updated successfully")
	return nil
}

// DeleteMarker удаляет маркер
func (s *markerService) DeleteMarker(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "marker",
		"method":    "DeleteMarker",
		"marker_id": id,
	})

	if id <= 0 {
		return fmt.Errorf("%w: marker id is required", ErrValidation)
	}
	if err := s.backend.Delete(ctx, markersResource+"/"+strconv.FormatInt(id, 10), nil); err != nil {
		log.WithError(err).Error("Failed to delete marker")
		return fmt.Errorf("service: could not delete marker: %w", err)
	}

	log.Info("Marker deleted successfully")
	return nil
}
