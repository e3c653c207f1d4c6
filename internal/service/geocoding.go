package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/sirupsen/logrus"
)

const searchLimit = 5

//go:generate mockgen -source=geocoding.go -destination=mocks/mock_geocoding.go -package=mocks

// GeocodeCache определяет контракт кэша ответов геокодера.
// Промах кэша - (nil, nil).
type GeocodeCache interface {
	GetGeocode(ctx context.Context, key string) ([]byte, error)
	SetGeocode(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// GeocodingService определяет контракт поиска мест и обратного геокодирования
type GeocodingService interface {
	SearchPlaces(ctx context.Context, query string) ([]models.Place, error)
	ReverseGeocode(ctx context.Context, lat, lng float64) (*models.Place, error)
}

type geocodingService struct {
	backend Backend
	cache   GeocodeCache
	country string
	ttl     time.Duration
	logger  *logrus.Logger
}

// NewGeocodingService создает сервис. backend должен отправлять User-Agent,
// без него Nominatim отклоняет запросы. cache может быть nil.
func NewGeocodingService(backend Backend, cache GeocodeCache, country string, ttl time.Duration, logger *logrus.Logger) GeocodingService {
	return &geocodingService{
		backend: backend,
		cache:   cache,
		country: country,
		ttl:     ttl,
		logger:  logger,
	}
}

type nominatimPlace struct {
	PlaceID     int64             `json:"place_id"`
	DisplayName string            `json:"display_name"`
	Lat         string            `json:"lat"`
	Lon         string            `json:"lon"`
	Type        string            `json:"type"`
	Address     map[string]string `json:"address"`
	Importance  float64           `json:"importance"`
	BoundingBox []string          `json:"boundingbox"`
}

func (p nominatimPlace) toPlace() models.Place {
	lat, _ := strconv.ParseFloat(p.Lat, 64)
	lng, _ := strconv.ParseFloat(p.Lon, 64)
	return models.Place{
		ID:          p.PlaceID,
		Name:        p.DisplayName,
		Lat:         lat,
		Lng:         lng,
		Type:        p.Type,
		Address:     p.Address,
		Importance:  p.Importance,
		BoundingBox: p.BoundingBox,
	}
}

// SearchPlaces ищет места по строке; пустой запрос - пустой результат без обращения к сети
func (s *geocodingService) SearchPlaces(ctx context.Context, query string) ([]models.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Place{}, nil
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "geocoding",
		"method":  "SearchPlaces",
		"query":   query,
	})

	key := fmt.Sprintf("geocode:search:%s:%s", s.country, strings.ToLower(query))
	var places []models.Place
	if s.fromCache(ctx, key, &places) {
		log.Debug("Search served from cache")
		return places, nil
	}

	params := url.Values{
		"q":              {query},
		"format":         {"json"},
		"addressdetails": {"1"},
		"limit":          {strconv.Itoa(searchLimit)},
	}
	if s.country != "" {
		params.Set("countrycodes", s.country)
	}

	var raw []nominatimPlace
	if err := s.backend.Get(ctx, "search", params, &raw); err != nil {
		log.WithError(err).Error("Failed to search places")
		return nil, fmt.Errorf("service: could not search places: %w", err)
	}

	places = make([]models.Place, 0, len(raw))
	for _, p := range raw {
		places = append(places, p.toPlace())
	}
	s.toCache(ctx, key, places)

	return places, nil
}

// ReverseGeocode возвращает адрес для координат
func (s *geocodingService) ReverseGeocode(ctx context.Context, lat, lng float64) (*models.Place, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "geocoding",
		"method":    "ReverseGeocode",
		"latitude":  lat,
		"longitude": lng,
	})

	if err := validate.Var(lat, "latitude"); err != nil {
		return nil, fmt.Errorf("%w: latitude %v", ErrValidation, lat)
	}
	if err := validate.Var(lng, "longitude"); err != nil {
		return nil, fmt.Errorf("%w: longitude %v", ErrValidation, lng)
	}

	key := fmt.Sprintf("geocode:reverse:%.5f:%.5f", lat, lng)
	var place models.Place
	if s.fromCache(ctx, key, &place) {
		return &place, nil
	}

	params := url.Values{
		"lat":            {formatFloat(lat)},
		"lon":            {formatFloat(lng)},
		"format":         {"json"},
		"addressdetails": {"1"},
	}

	var raw nominatimPlace
	if err := s.backend.Get(ctx, "reverse", params, &raw); err != nil {
		log.WithError(err).Error("Failed to reverse geocode")
		return nil, fmt.Errorf("service: could not reverse geocode: %w", err)
	}

	place = raw.toPlace()
	// координаты запроса, а не найденного объекта
	place.Lat, place.Lng = lat, lng
	s.toCache(ctx, key, place)

	return &place, nil
}

func (s *geocodingService) fromCache(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	data, err := s.cache.GetGeocode(ctx, key)
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Failed to read geocode cache")
		return false
	}
	if data == nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (s *geocodingService) toCache(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.SetGeocode(ctx, key, data, s.ttl); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("Failed to write geocode cache")
	}
}
