package routing_test

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shenikar/crisis_map_sync/internal/geo"
	"github.com/shenikar/crisis_map_sync/internal/routing"
	"github.com/shenikar/crisis_map_sync/internal/routing/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (routing.Router, *mocks.MockFetcher) {
	ctrl := gomock.NewController(t)
	fetcherMock := mocks.NewMockFetcher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return routing.NewOSRMRouter(fetcherMock, "", logger), fetcherMock
}

func TestRoute_Success(t *testing.T) {
	router, fetcherMock := newTestRouter(t)
	ctx := context.Background()
	from := geo.LatLng{Lat: 63.43, Lng: 10.39}
	to := geo.LatLng{Lat: 63.44, Lng: 10.40}

	fetcherMock.EXPECT().
		Get(ctx, "route/v1/driving/10.390000,63.430000;10.400000,63.440000", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query url.Values, out any) error {
			assert.Equal(t, "geojson", query.Get("geometries"))
			assert.Equal(t, "full", query.Get("overview"))
			return json.Unmarshal([]byte(`{
				"code": "Ok",
				"routes": [{
					"distance": 1520.5,
					"duration": 240,
					"geometry": {"type": "LineString", "coordinates": [[10.39, 63.43], [10.395, 63.435], [10.40, 63.44]]}
				}]
			}`), out)
		})

	route, err := router.Route(ctx, from, to)

	require.NoError(t, err)
	require.Len(t, route.Points, 3)
	assert.Equal(t, from, route.Points[0])
	assert.Equal(t, to, route.Points[2])
	assert.Equal(t, 1520.5, route.Distance)
	assert.Equal(t, 4*time.Minute, route.Duration)
}

func TestRoute_NoRoute(t *testing.T) {
	router, fetcherMock := newTestRouter(t)
	ctx := context.Background()

	fetcherMock.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
			return json.Unmarshal([]byte(`{"code":"NoRoute","message":"Impossible route","routes":[]}`), out)
		})

	_, err := router.Route(ctx, geo.LatLng{Lat: 63, Lng: 10}, geo.LatLng{Lat: 70, Lng: 20})

	assert.True(t, errors.Is(err, routing.ErrNoRoute))
}

func TestRoute_BackendError(t *testing.T) {
	router, fetcherMock := newTestRouter(t)
	ctx := context.Background()

	fetcherMock.EXPECT().Get(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

	_, err := router.Route(ctx, geo.LatLng{Lat: 63, Lng: 10}, geo.LatLng{Lat: 64, Lng: 11})

	assert.Error(t, err)
	assert.False(t, errors.Is(err, routing.ErrNoRoute))
}

func TestRoute_InvalidCoordinates(t *testing.T) {
	router, fetcherMock := newTestRouter(t)
	fetcherMock.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := router.Route(context.Background(), geo.LatLng{Lat: 100}, geo.LatLng{Lat: 63, Lng: 10})

	assert.Error(t, err)
}
