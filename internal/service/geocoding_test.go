package service

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/shenikar/crisis_map_sync/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestGeocodingService(t *testing.T) (GeocodingService, *mocks.MockBackend, *mocks.MockGeocodeCache) {
	ctrl := gomock.NewController(t)
	backendMock := mocks.NewMockBackend(ctrl)
	cacheMock := mocks.NewMockGeocodeCache(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewGeocodingService(backendMock, cacheMock, "no", time.Hour, logger), backendMock, cacheMock
}

func TestSearchPlaces_EmptyQuery(t *testing.T) {
	service, _, _ := newTestGeocodingService(t)

	places, err := service.SearchPlaces(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestSearchPlaces_CacheMissFetchesAndStores(t *testing.T) {
	service, backendMock, cacheMock := newTestGeocodingService(t)
	ctx := context.Background()
	key := "geocode:search:no:munkegata"

	// 1. Промах кеша
	cacheMock.EXPECT().GetGeocode(ctx, key).Return(nil, nil)

	// 2. Запрос к геокодеру
	backendMock.EXPECT().
		Get(ctx, "search", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query url.Values, out any) error {
			assert.Equal(t, "Munkegata", query.Get("q"))
			assert.Equal(t, "no", query.Get("countrycodes"))
			assert.Equal(t, "5", query.Get("limit"))
			*(out.(*[]nominatimPlace)) = []nominatimPlace{
				{PlaceID: 10, DisplayName: "Munkegata, Trondheim", Lat: "63.43", Lon: "10.39", Type: "street"},
			}
			return nil
		})

	// 3. Запись в кеш
	cacheMock.EXPECT().SetGeocode(ctx, key, gomock.Any(), time.Hour).Return(nil)

	places, err := service.SearchPlaces(ctx, "Munkegata")

	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, int64(10), places[0].ID)
	assert.Equal(t, 63.43, places[0].Lat)
	assert.Equal(t, 10.39, places[0].Lng)
}

func TestSearchPlaces_FromCache(t *testing.T) {
	service, backendMock, cacheMock := newTestGeocodingService(t)
	ctx := context.Background()

	cacheMock.EXPECT().
		GetGeocode(ctx, "geocode:search:no:torget").
		Return([]byte(`[{"id":1,"name":"Torget","lat":63.4,"lng":10.4}]`), nil)
	backendMock.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	places, err := service.SearchPlaces(ctx, "Torget")

	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Torget", places[0].Name)
}

func TestReverseGeocode_KeepsRequestedCoordinates(t *testing.T) {
	service, backendMock, cacheMock := newTestGeocodingService(t)
	ctx := context.Background()

	cacheMock.EXPECT().GetGeocode(ctx, gomock.Any()).Return(nil, errors.New("redis down"))
	backendMock.EXPECT().
		Get(ctx, "reverse", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
			*(out.(*nominatimPlace)) = nominatimPlace{PlaceID: 3, DisplayName: "Kongens gate", Lat: "63.0", Lon: "10.0"}
			return nil
		})
	cacheMock.EXPECT().SetGeocode(ctx, gomock.Any(), gomock.Any(), time.Hour).Return(nil)

	place, err := service.ReverseGeocode(ctx, 63.4301, 10.3952)

	require.NoError(t, err)
	assert.Equal(t, "Kongens gate", place.Name)
	assert.Equal(t, 63.4301, place.Lat)
	assert.Equal(t, 10.3952, place.Lng)
}

func TestReverseGeocode_Validation(t *testing.T) {
	service, _, _ := newTestGeocodingService(t)

	_, err := service.ReverseGeocode(context.Background(), 120, 10)

	assert.True(t, errors.Is(err, ErrValidation))
}

func TestFetchHouseholdPositions_SkipsInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	backendMock := mocks.NewMockBackend(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	service := NewNotificationService(backendMock, logger)
	ctx := context.Background()

	backendMock.EXPECT().
		Get(ctx, "household/positions", gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
			*(out.(*[]models.PositionMessage)) = []models.PositionMessage{
				{UserID: "1", FullName: "Kari", Latitude: "63.4", Longitude: "10.4"},
				{UserID: "2", FullName: "Ola", Latitude: "n/a", Longitude: "10.4"},
			}
			return nil
		})

	positions, err := service.FetchHouseholdPositions(ctx)

	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, "Kari", positions[0].Name)
	assert.Equal(t, 63.4, positions[0].Latitude)
}

func TestMarkAsRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	backendMock := mocks.NewMockBackend(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	service := NewNotificationService(backendMock, logger)
	ctx := context.Background()

	backendMock.EXPECT().Put(ctx, "notifications/8/read", nil, nil).Return(nil)

	require.NoError(t, service.MarkAsRead(ctx, 8))
	assert.True(t, errors.Is(service.MarkAsRead(ctx, 0), ErrValidation))
}
