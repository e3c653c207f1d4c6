package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crisis_map_sync/internal/config"
	"github.com/shenikar/crisis_map_sync/internal/geo"
	"github.com/shenikar/crisis_map_sync/internal/geolocation"
	"github.com/shenikar/crisis_map_sync/internal/handler/http/v1/mocks"
	"github.com/shenikar/crisis_map_sync/internal/location"
	"github.com/shenikar/crisis_map_sync/internal/mapview"
	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/shenikar/crisis_map_sync/internal/notification"
	"github.com/shenikar/crisis_map_sync/internal/restclient"
	"github.com/shenikar/crisis_map_sync/internal/service"
	servicemocks "github.com/shenikar/crisis_map_sync/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var authHeader = map[string]string{"X-API-Key": "test-api-key"}

type testMocks struct {
	view       *mocks.MockMapView
	viewport   *mocks.MockViewport
	inbox      *mocks.MockInbox
	sharing    *mocks.MockPositionSharing
	household  *mocks.MockHousehold
	connection *mocks.MockConnection
	fixes      *mocks.MockFixReceiver
	locator    *mocks.MockLocator
	markers    *mocks.MockMarkerFinder
	geocoding  *servicemocks.MockGeocodingService
}

// newTestHandler создает Handler с мокированными компонентами сессии
func newTestHandler(t *testing.T) (*Handler, *testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		view:       mocks.NewMockMapView(ctrl),
		viewport:   mocks.NewMockViewport(ctrl),
		inbox:      mocks.NewMockInbox(ctrl),
		sharing:    mocks.NewMockPositionSharing(ctrl),
		household:  mocks.NewMockHousehold(ctrl),
		connection: mocks.NewMockConnection(ctrl),
		fixes:      mocks.NewMockFixReceiver(ctrl),
		locator:    mocks.NewMockLocator(ctrl),
		markers:    mocks.NewMockMarkerFinder(ctrl),
		geocoding:  servicemocks.NewMockGeocodingService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{APIKeys: []string{"test-api-key"}}

	handler := NewHandler(Deps{
		View:       m.view,
		Viewport:   m.viewport,
		Inbox:      m.inbox,
		Sharing:    m.sharing,
		Household:  m.household,
		Connection: m.connection,
		Fixes:      m.fixes,
		Locator:    m.locator,
		Markers:    m.markers,
		Geocoding:  m.geocoding,
	}, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func TestHealthCheck_NoAuth(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.connection.EXPECT().State().Return(models.Connected)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"connection":"CONNECTED"`)
}

func TestRoutes_RequireAPIKey(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().Markers().Times(0)

	w := makeRequest(router, "GET", "/api/v1/markers", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestGetLayers(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.viewport.EXPECT().GeoJSON("SHELTER").Return([]byte(`{"type":"FeatureCollection","features":[]}`), nil)

	w := makeRequest(router, "GET", "/api/v1/map/layers?layer=SHELTER", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/geo+json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, w.Body.String())
}

func TestGetMapStatus(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().MarkerStatus().Return(mapview.CategoryStatus{State: mapview.StateReady})
	m.view.EXPECT().IncidentStatus().Return(mapview.CategoryStatus{
		State: mapview.StateError,
		Error: &restclient.APIError{Status: 500, Message: "boom"},
	})
	m.view.EXPECT().Groups().Return([]mapview.LayerGroup{
		{Key: "SHELTER", Visible: true, Attached: true, Items: make([]mapview.Item, 2)},
	})
	m.view.EXPECT().MarkerTypes().Return([]models.MarkerType{{ID: "SHELTER"}})
	m.view.EXPECT().Notice().Return("")

	w := makeRequest(router, "GET", "/api/v1/map/status", nil, authHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Markers   struct{ State string }
		Incidents struct {
			State string
			Error struct{ Status int }
		}
		Groups []LayerGroupResponse
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "READY", resp.Markers.State)
	assert.Equal(t, "ERROR", resp.Incidents.State)
	assert.Equal(t, 500, resp.Incidents.Error.Status)
	require.Len(t, resp.Groups, 1)
	assert.Equal(t, 2, resp.Groups[0].Items)
}

func TestMoveViewport_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	req := ViewportRequest{
		SouthWest: PointDTO{Lat: 63.40, Lng: 10.30},
		NorthEast: PointDTO{Lat: 63.46, Lng: 10.48},
	}
	m.viewport.EXPECT().MoveTo(geo.Bounds{
		SouthWest: geo.LatLng{Lat: 63.40, Lng: 10.30},
		NorthEast: geo.LatLng{Lat: 63.46, Lng: 10.48},
	})

	w := makeRequest(router, "PUT", "/api/v1/map/viewport", jsonBody(t, req), authHeader)

	assert.Equal(t, http.StatusAccepted, w.Code)
	var resp ViewportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Known)
	assert.Positive(t, resp.RadiusKm)
}

func TestMoveViewport_SwappedCorners(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.viewport.EXPECT().MoveTo(gomock.Any()).Times(0)
	req := ViewportRequest{
		SouthWest: PointDTO{Lat: 63.46, Lng: 10.48},
		NorthEast: PointDTO{Lat: 63.40, Lng: 10.30},
	}

	w := makeRequest(router, "PUT", "/api/v1/map/viewport", jsonBody(t, req), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetViewport_Unknown(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.viewport.EXPECT().Bounds().Return(geo.Bounds{}, false)

	w := makeRequest(router, "GET", "/api/v1/map/viewport", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"known":false`)
	assert.Contains(t, w.Body.String(), `"radiusKm":10`)
}

func TestSetLayerVisibility_UnknownLayer(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().SetVisibility("NOPE", false).Return(mapview.ErrUnknownLayer)

	w := makeRequest(router, "PUT", "/api/v1/map/layers/NOPE/visibility", bytes.NewBufferString(`{"visible":false}`), authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetLayerVisibility_MissingFlag(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().SetVisibility(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/v1/map/layers/SHELTER/visibility", bytes.NewBufferString(`{}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'Visible' failed on the 'required' tag")
}

func TestToggleLayer(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().ToggleVisibility(mapview.IncidentsLayer).Return(false, nil)

	w := makeRequest(router, "POST", "/api/v1/map/layers/INCIDENTS/toggle", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"key":"INCIDENTS","visible":false}`, w.Body.String())
}

func TestToggleLayer_Disposed(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().ToggleVisibility("SHELTER").Return(false, mapview.ErrDisposed)

	w := makeRequest(router, "POST", "/api/v1/map/layers/SHELTER/toggle", nil, authHeader)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCreateMarker_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	req := MarkerRequest{Type: "SHELTER", Name: "Tilfluktsrom", Latitude: 63.43, Longitude: 10.39}

	m.view.EXPECT().
		CreateMarker(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, marker *models.Marker) error {
			assert.Equal(t, "SHELTER", marker.Type)
			marker.ID = 42
			return nil
		})

	w := makeRequest(router, "POST", "/api/v1/markers", jsonBody(t, req), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp models.Marker
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
}

func TestCreateMarker_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().CreateMarker(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/markers", bytes.NewBufferString(`{"type": "SHELTER"`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateMarker_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().CreateMarker(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/markers", jsonBody(t, MarkerRequest{Latitude: 63.43, Longitude: 10.39}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Type' failed on the 'required' tag")
}

func TestCreateMarker_BackendError(t *testing.T) {
	_, m, router := newTestHandler(t)
	apiErr := &restclient.APIError{Status: 409, Message: "Marker already exists"}
	m.view.EXPECT().CreateMarker(gomock.Any(), gomock.Any()).Return(fmt.Errorf("service: could not create marker: %w", apiErr))

	w := makeRequest(router, "POST", "/api/v1/markers", jsonBody(t, MarkerRequest{Type: "SHELTER"}), authHeader)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"Marker already exists","status":409}`, w.Body.String())
}

func TestCreateMarker_ServiceValidation(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().CreateMarker(gomock.Any(), gomock.Any()).Return(fmt.Errorf("%w: unknown type", service.ErrValidation))

	w := makeRequest(router, "POST", "/api/v1/markers", jsonBody(t, MarkerRequest{Type: "X"}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMarker_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().UpdateMarker(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/v1/markers/abc", jsonBody(t, MarkerRequest{Type: "SHELTER"}), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid marker ID")
}

func TestUpdateMarker_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().
		UpdateMarker(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, marker *models.Marker) error {
			assert.Equal(t, int64(7), marker.ID)
			return nil
		})

	w := makeRequest(router, "PUT", "/api/v1/markers/7", jsonBody(t, MarkerRequest{Type: "SHELTER"}), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteMarker(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().DeleteMarker(gomock.Any(), int64(7)).Return(nil)

	w := makeRequest(router, "DELETE", "/api/v1/markers/7", nil, authHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSetEditingMarker(t *testing.T) {
	_, m, router := newTestHandler(t)
	gomock.InOrder(
		m.view.EXPECT().SetEditingMarker(int64(3)),
		m.view.EXPECT().ClearEditingMarker(),
	)

	w := makeRequest(router, "PUT", "/api/v1/markers/editing", bytes.NewBufferString(`{"id":3}`), authHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = makeRequest(router, "PUT", "/api/v1/markers/editing", bytes.NewBufferString(`{"id":null}`), authHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestClosestMarker_UsesUserPosition(t *testing.T) {
	_, m, router := newTestHandler(t)
	here := geo.LatLng{Lat: 63.43, Lng: 10.39}
	m.locator.EXPECT().Locate(gomock.Any()).Return(here, nil)
	m.markers.EXPECT().FindClosest(gomock.Any(), here, "SHELTER").Return(&models.ClosestMarker{
		Marker:     models.Marker{ID: 5, Type: "SHELTER"},
		DistanceKm: 1.2,
	}, nil)

	w := makeRequest(router, "GET", "/api/v1/markers/closest?type=SHELTER", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"distanceKm":1.2`)
}

func TestClosestMarker_PositionUnavailable(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.locator.EXPECT().Locate(gomock.Any()).Return(geo.LatLng{}, &geolocation.PositionError{Code: geolocation.PermissionDenied})
	m.markers.EXPECT().FindClosest(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/markers/closest?type=SHELTER", nil, authHeader)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), geolocation.ErrorMessage(&geolocation.PositionError{Code: geolocation.PermissionDenied}))
}

func TestClosestMarker_ExplicitPointNotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.markers.EXPECT().FindClosest(gomock.Any(), geo.LatLng{Lat: 60, Lng: 10}, "HOSPITAL").Return(nil, nil)

	w := makeRequest(router, "GET", "/api/v1/markers/closest?type=HOSPITAL&lat=60&lng=10", nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminMarkers_ShowsAdminLayer(t *testing.T) {
	_, m, router := newTestHandler(t)
	found := []models.Marker{{ID: 1, Type: "SHELTER", City: "Trondheim"}}
	m.view.EXPECT().AdminMarkers(gomock.Any(), mapview.AdminFilter{Search: "trond", Type: "SHELTER"}).Return(found, nil)
	m.view.EXPECT().SetAdminMarkers(found).Return(nil)

	w := makeRequest(router, "GET", "/api/v1/markers/admin?search=trond&type=SHELTER", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Trondheim")
}

func TestCreateIncident_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	req := IncidentRequest{Name: "Flom", Severity: "RED", Latitude: 63.4, Longitude: 10.4, ImpactRadius: 2}
	m.view.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			assert.Equal(t, models.SeverityRed, incident.Severity)
			assert.Equal(t, 2.0, incident.ImpactRadius)
			return nil
		})

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, req), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateIncident_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)
	req := IncidentRequest{Name: "Flom", Severity: "PURPLE", ImpactRadius: 2}

	w := makeRequest(router, "POST", "/api/v1/incidents", jsonBody(t, req), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'Severity' failed on the 'oneof' tag")
}

func TestDeleteIncident_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().DeleteIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", "/api/v1/incidents/0", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestBuildRoute_ToMarker(t *testing.T) {
	_, m, router := newTestHandler(t)
	target := models.Marker{ID: 9, Type: "SHELTER", Lat: 63.44, Lng: 10.40}
	m.view.EXPECT().Markers().Return(map[string][]models.Marker{"SHELTER": {target}})
	m.view.EXPECT().RouteToMarker(gomock.Any(), target).Return(nil)
	m.view.EXPECT().Route().Return(mapview.RouteStatus{Active: true, Distance: 1500})

	w := makeRequest(router, "POST", "/api/v1/route", bytes.NewBufferString(`{"markerId":9}`), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"active":true`)
}

func TestBuildRoute_UnknownMarker(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().Markers().Return(map[string][]models.Marker{})
	m.view.EXPECT().RouteToMarker(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/route", bytes.NewBufferString(`{"markerId":9}`), authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBuildRoute_BetweenPointsInvalidMarker(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().
		GenerateRoute(gomock.Any(), geo.LatLng{Lat: 63.4, Lng: 10.4}, geo.LatLng{Lat: 63.5, Lng: 10.5}).
		Return(mapview.ErrInvalidMarker)

	body := `{"start":{"lat":63.4,"lng":10.4},"end":{"lat":63.5,"lng":10.5}}`
	w := makeRequest(router, "POST", "/api/v1/route", bytes.NewBufferString(body), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), mapview.ErrInvalidMarker.Error())
}

func TestClearRoute(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.view.EXPECT().ClearRoute()

	w := makeRequest(router, "DELETE", "/api/v1/route", nil, authHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSearchAndSelect(t *testing.T) {
	_, m, router := newTestHandler(t)
	place := models.Place{ID: 1, Name: "Nidarosdomen", Lat: 63.4269, Lng: 10.3969}
	m.view.EXPECT().SearchPlaces(gomock.Any(), "nidaros").Return([]models.Place{place}, nil)
	m.view.EXPECT().SelectSearchResult(place).Return(nil)

	w := makeRequest(router, "GET", "/api/v1/search?q=nidaros", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nidarosdomen")

	w = makeRequest(router, "PUT", "/api/v1/search/selection", jsonBody(t, SelectPlaceRequest{ID: 1, Name: place.Name, Lat: place.Lat, Lng: place.Lng}), authHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestNotifications_MarkAsRead(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.inbox.EXPECT().MarkAsRead(gomock.Any(), int64(4)).Return(nil)

	w := makeRequest(router, "PUT", "/api/v1/notifications/4/read", nil, authHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestNotifications_Refresh(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.inbox.EXPECT().Refresh(gomock.Any()).Return(nil)
	m.inbox.EXPECT().State().Return(notification.State{Count: 2, Connected: true})

	w := makeRequest(router, "POST", "/api/v1/notifications/refresh", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNotifications_HistoryInvalidLimit(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.inbox.EXPECT().History(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/notifications/history?limit=-1", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNotifications_HistoryError(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.inbox.EXPECT().History(gomock.Any(), defaultHistoryLimit).Return(nil, errors.New("db down"))

	w := makeRequest(router, "GET", "/api/v1/notifications/history", nil, authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestNotifications_PopupAndCount(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.inbox.EXPECT().ClosePopup()
	m.inbox.EXPECT().ResetCount()

	assert.Equal(t, http.StatusNoContent, makeRequest(router, "DELETE", "/api/v1/notifications/popup", nil, authHeader).Code)
	assert.Equal(t, http.StatusNoContent, makeRequest(router, "DELETE", "/api/v1/notifications/count", nil, authHeader).Code)
}

func TestSetSharing_NoConnectionStillOn(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.sharing.EXPECT().Start(gomock.Any()).Return(location.ErrNoConnection)
	m.sharing.EXPECT().Status().Return(location.Status{Sharing: true, Error: location.ErrNoConnection.Error()})

	w := makeRequest(router, "PUT", "/api/v1/sharing", bytes.NewBufferString(`{"sharing":true}`), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sharing":true`)
	assert.Contains(t, w.Body.String(), "Ingen tilkobling til server")
}

func TestSetSharing_Off(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.sharing.EXPECT().Stop(gomock.Any())
	m.sharing.EXPECT().Status().Return(location.Status{})

	w := makeRequest(router, "PUT", "/api/v1/sharing", bytes.NewBufferString(`{"sharing":false}`), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestToggleSharing_GeolocationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.sharing.EXPECT().Toggle(gomock.Any()).Return(false, &geolocation.PositionError{Code: geolocation.Timeout})

	w := makeRequest(router, "POST", "/api/v1/sharing/toggle", nil, authHeader)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHouseholdPositions(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.household.EXPECT().Members().Return([]models.Position{{UserID: "8", Name: "Kari", Latitude: 63.4, Longitude: 10.4}})

	w := makeRequest(router, "GET", "/api/v1/household/positions", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fullName":"Kari"`)
}

func TestPushFix(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.fixes.EXPECT().Push(gomock.Any()).DoAndReturn(func(fix geolocation.Fix) error {
		assert.Equal(t, geo.LatLng{Lat: 63.43, Lng: 10.39}, fix.Position)
		assert.Equal(t, 12.0, fix.Accuracy)
		return nil
	})

	w := makeRequest(router, "POST", "/api/v1/location/fix", bytes.NewBufferString(`{"latitude":63.43,"longitude":10.39,"accuracy":12}`), authHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestPushFix_OutOfRange(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.fixes.EXPECT().Push(gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/location/fix", bytes.NewBufferString(`{"latitude":95,"longitude":10}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetPermission(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.fixes.EXPECT().SetPermission(false)

	w := makeRequest(router, "PUT", "/api/v1/location/permission", bytes.NewBufferString(`{"allowed":false}`), authHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestReverseGeocode(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.geocoding.EXPECT().ReverseGeocode(gomock.Any(), 63.43, 10.39).Return(&models.Place{Name: "Trondheim"}, nil)

	w := makeRequest(router, "GET", "/api/v1/location/reverse?lat=63.43&lng=10.39", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Trondheim")
}

func TestReverseGeocode_InvalidCoordinates(t *testing.T) {
	_, m, router := newTestHandler(t)
	m.geocoding.EXPECT().ReverseGeocode(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/location/reverse?lat=abc&lng=10", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConnection(t *testing.T) {
	_, m, router := newTestHandler(t)
	gomock.InOrder(
		m.connection.EXPECT().Connect(gomock.Any()),
		m.connection.EXPECT().State().Return(models.Connecting),
		m.connection.EXPECT().Disconnect(),
	)

	w := makeRequest(router, "POST", "/api/v1/connection/connect", nil, authHeader)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"state":"CONNECTING","connected":false}`, w.Body.String())

	w = makeRequest(router, "POST", "/api/v1/connection/disconnect", nil, authHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
