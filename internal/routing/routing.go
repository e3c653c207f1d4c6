// Package routing asks an OSRM server for a route between two points.
package routing

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	geojson "github.com/paulmach/go.geojson"
	"github.com/shenikar/crisis_map_sync/internal/geo"
	"github.com/sirupsen/logrus"
)

// ErrNoRoute - сервер не нашёл маршрут
var ErrNoRoute = errors.New("routing: no route found")

// Route - маршрут как ломаная
type Route struct {
	Points   []geo.LatLng  `json:"points"`
	Distance float64       `json:"distanceMeters"`
	Duration time.Duration `json:"duration"`
}

// Fetcher - GET запрос через restclient
type Fetcher interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
}

//go:generate mockgen -source=routing.go -destination=mocks/mock_routing.go -package=mocks

// Router строит маршруты
type Router interface {
	Route(ctx context.Context, from, to geo.LatLng) (*Route, error)
}

type osrmRouter struct {
	client  Fetcher
	profile string
	logger  *logrus.Logger
}

// NewOSRMRouter создает маршрутизатор; profile - driving, foot, bike
func NewOSRMRouter(client Fetcher, profile string, logger *logrus.Logger) Router {
	if profile == "" {
		profile = "driving"
	}
	return &osrmRouter{client: client, profile: profile, logger: logger}
}

type osrmResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64           `json:"distance"`
		Duration float64           `json:"duration"`
		Geometry *geojson.Geometry `json:"geometry"`
	} `json:"routes"`
}

func (r *osrmRouter) Route(ctx context.Context, from, to geo.LatLng) (*Route, error) {
	log := r.logger.WithFields(logrus.Fields{
		"component": "routing",
		"method":    "Route",
	})

	if !from.Valid() || !to.Valid() {
		return nil, fmt.Errorf("routing: invalid coordinates %v -> %v", from, to)
	}

	// OSRM ждёт долготу первой
	path := fmt.Sprintf("route/v1/%s/%.6f,%.6f;%.6f,%.6f", r.profile, from.Lng, from.Lat, to.Lng, to.Lat)
	query := url.Values{}
	query.Set("overview", "full")
	query.Set("geometries", "geojson")

	var resp osrmResponse
	if err := r.client.Get(ctx, path, query, &resp); err != nil {
		log.WithError(err).Error("Failed to request route")
		return nil, fmt.Errorf("routing: could not request route: %w", err)
	}
	if resp.Code != "Ok" || len(resp.Routes) == 0 {
		log.WithField("code", resp.Code).Warn("No route returned")
		return nil, fmt.Errorf("%w: %s", ErrNoRoute, resp.Message)
	}

	best := resp.Routes[0]
	if best.Geometry == nil || !best.Geometry.IsLineString() {
		return nil, fmt.Errorf("%w: unexpected geometry", ErrNoRoute)
	}

	points := make([]geo.LatLng, 0, len(best.Geometry.LineString))
	for _, c := range best.Geometry.LineString {
		if len(c) < 2 {
			continue
		}
		points = append(points, geo.LatLng{Lat: c[1], Lng: c[0]})
	}

	return &Route{
		Points:   points,
		Distance: best.Distance,
		Duration: time.Duration(best.Duration * float64(time.Second)),
	}, nil
}
