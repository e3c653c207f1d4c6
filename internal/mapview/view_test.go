package mapview

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/crisis_map_sync/internal/geo"
	"github.com/shenikar/crisis_map_sync/internal/geolocation"
	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/shenikar/crisis_map_sync/internal/restclient"
	"github.com/shenikar/crisis_map_sync/internal/routing"
	routingmocks "github.com/shenikar/crisis_map_sync/internal/routing/mocks"
	"github.com/shenikar/crisis_map_sync/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubLocator struct {
	pos geo.LatLng
	err error
}

func (l stubLocator) Locate(context.Context) (geo.LatLng, error) {
	return l.pos, l.err
}

type testView struct {
	view      *View
	scene     *Scene
	markers   *mocks.MockMarkerService
	incidents *mocks.MockIncidentService
	geocoding *mocks.MockGeocodingService
	router    *routingmocks.MockRouter
}

var trondheim = geo.Bounds{
	SouthWest: geo.LatLng{Lat: 63.42, Lng: 10.38},
	NorthEast: geo.LatLng{Lat: 63.44, Lng: 10.41},
}

var testTypes = []models.MarkerType{
	{ID: "HOSPITAL", DisplayName: "Sykehus", Visible: true},
	{ID: "SHELTER", DisplayName: "Tilfluktsrom", Visible: true},
}

func newTestView(t *testing.T, cfg Config, locator Locator) *testView {
	ctrl := gomock.NewController(t)
	tv := &testView{
		scene:     NewScene(&trondheim),
		markers:   mocks.NewMockMarkerService(ctrl),
		incidents: mocks.NewMockIncidentService(ctrl),
		geocoding: mocks.NewMockGeocodingService(ctrl),
		router:    routingmocks.NewMockRouter(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	if cfg.Debounce == 0 {
		cfg.Debounce = time.Hour
	}
	tv.view = NewView(tv.scene, Deps{
		Markers:   tv.markers,
		Incidents: tv.incidents,
		Geocoding: tv.geocoding,
		Router:    tv.router,
		Locator:   locator,
	}, cfg, logger)
	t.Cleanup(tv.view.Dispose)
	return tv
}

func shelters(names ...string) map[string][]models.Marker {
	out := map[string][]models.Marker{}
	for i, n := range names {
		out["SHELTER"] = append(out["SHELTER"], models.Marker{ID: int64(i + 1), Type: "SHELTER", Name: n, Lat: 63.43, Lng: 10.39})
	}
	return out
}

func redIncident() models.Incident {
	return models.Incident{ID: 7, Name: "Brann", Severity: models.SeverityRed, Latitude: 63.43, Longitude: 10.4, ImpactRadius: 2}
}

func TestInit_RendersMarkersAndIncidents(t *testing.T) {
	tv := newTestView(t, Config{}, nil)
	ctx := context.Background()

	tv.markers.EXPECT().FetchMarkerTypes(ctx).Return(testTypes, nil)
	tv.markers.EXPECT().
		FetchMarkers(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, q geo.Query) (map[string][]models.Marker, error) {
			assert.Equal(t, trondheim.Center(), q.Center)
			assert.GreaterOrEqual(t, q.RadiusKm, geo.Haversine(trondheim.Center(), trondheim.NorthEast))
			return shelters("Bunker A", "Bunker B"), nil
		})
	tv.incidents.EXPECT().FetchIncidents(ctx).Return([]models.Incident{redIncident()}, nil)

	require.NoError(t, tv.view.Init(ctx))

	assert.Equal(t, StateReady, tv.view.MarkerStatus().State)
	assert.Equal(t, StateReady, tv.view.IncidentStatus().State)

	items, ok := tv.scene.Layer("SHELTER")
	require.True(t, ok)
	assert.Len(t, items, 2)
	hospital, ok := tv.scene.Layer("HOSPITAL")
	require.True(t, ok)
	assert.Empty(t, hospital)

	// якорь + три кольца, от внешнего к внутреннему
	incidentItems, ok := tv.scene.Layer(IncidentsLayer)
	require.True(t, ok)
	require.Len(t, incidentItems, 4)
	assert.Equal(t, KindIncidentAnchor, incidentItems[0].Kind)
	assert.NotEmpty(t, incidentItems[0].Popup)
	assert.Equal(t, 2400.0, incidentItems[1].RadiusMeters)
	assert.Equal(t, 2200.0, incidentItems[2].RadiusMeters)
	assert.Equal(t, 2000.0, incidentItems[3].RadiusMeters)

	fc := tv.scene.FeatureCollection("")
	assert.Len(t, fc.Features, 6)
}

func TestInit_MarkerTypesCachedAcrossReinit(t *testing.T) {
	tv := newTestView(t, Config{}, nil)
	ctx := context.Background()

	tv.markers.EXPECT().FetchMarkerTypes(ctx).Return(testTypes, nil).Times(1)
	tv.markers.EXPECT().FetchMarkers(ctx, gomock.Any()).Return(shelters("A"), nil).Times(2)
	tv.incidents.EXPECT().FetchIncidents(ctx).Return(nil, nil).Times(2)

	require.NoError(t, tv.view.Init(ctx))
	require.NoError(t, tv.view.Init(ctx))

	// слушатель перемещения не дублируется
	assert.Equal(t, 1, tv.scene.ListenerCount())
}

func TestViewportMoves_DebouncedToOneRefresh(t *testing.T) {
	tv := newTestView(t, Config{Debounce: 40 * time.Millisecond}, nil)
	ctx := context.Background()
	var fetches atomic.Int32

	tv.markers.EXPECT().FetchMarkerTypes(ctx).Return(testTypes, nil)
	tv.markers.EXPECT().
		FetchMarkers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, geo.Query) (map[string][]models.Marker, error) {
			fetches.Add(1)
			return shelters("A"), nil
		}).
		Times(2)
	// инциденты при перемещении не перезапрашиваются
	tv.incidents.EXPECT().FetchIncidents(ctx).Return(nil, nil).Times(1)

	require.NoError(t, tv.view.Init(ctx))
	require.Equal(t, int32(1), fetches.Load())

	b := trondheim
	for i := 0; i < 10; i++ {
		b.NorthEast.Lng += 0.001
		tv.scene.MoveTo(b)
	}

	require.Eventually(t, func() bool { return fetches.Load() == 2 }, time.Second, 5*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(2), fetches.Load())
	assert.Equal(t, StateReady, tv.view.MarkerStatus().State)
}

func TestEditSuppression(t *testing.T) {
	tv := newTestView(t, Config{}, nil)
	ctx := context.Background()

	tv.markers.EXPECT().FetchMarkerTypes(ctx).Return(testTypes, nil)
	tv.markers.EXPECT().FetchMarkers(ctx, gomock.Any()).Return(shelters("A", "B", "C"), nil)
	tv.incidents.EXPECT().FetchIncidents(ctx).Return([]models.Incident{redIncident()}, nil)
	require.NoError(t, tv.view.Init(ctx))

	ids := func() []int64 {
		items, _ := tv.scene.Layer("SHELTER")
		out := make([]int64, 0, len(items))
		for _, it := range items {
			out = append(out, it.ID)
		}
		return out
	}

	tv.view.SetEditingMarker(2)
	assert.ElementsMatch(t, []int64{1, 3}, ids())
	id, editing := tv.view.EditingMarker()
	assert.True(t, editing)
	assert.Equal(t, int64(2), id)

	tv.view.ClearEditingMarker()
	assert.ElementsMatch(t, []int64{1, 2, 3}, ids())

	tv.view.SetEditingIncident(7)
	items, _ := tv.scene.Layer(IncidentsLayer)
	assert.Empty(t, items)
	tv.view.ClearEditingIncident()
	items, _ = tv.scene.Layer(IncidentsLayer)
	assert.Len(t, items, 4)
}

func TestCreateMarker_ErrorStateBackToReady(t *testing.T) {
	tv := newTestView(t, Config{}, nil)
	ctx := context.Background()
	marker := &models.Marker{Type: "SHELTER", Name: "Ny", Lat: 63.43, Lng: 10.39}

	tv.markers.EXPECT().FetchMarkerTypes(ctx).Return(testTypes, nil)
	gomock.InOrder(
		tv.markers.EXPECT().FetchMarkers(ctx, gomock.Any()).Return(nil, &restclient.APIError{Status: 0, Message: "No response from server"}),
		tv.markers.EXPECT().CreateMarker(ctx, marker).Return(nil),
		tv.markers.EXPECT().FetchMarkers(ctx, gomock.Any()).Return(shelters("Ny"), nil),
	)
	tv.incidents.EXPECT().FetchIncidents(ctx).Return(nil, nil)

	err := tv.view.Init(ctx)
	require.Error(t, err)

	// первая загрузка не удалась - пусто и ошибка
	status := tv.view.MarkerStatus()
	assert.Equal(t, StateError, status.State)
	require.NotNil(t, status.Error)
	assert.Equal(t, "No response from server", status.Error.Message)
	items, _ := tv.scene.Layer("SHELTER")
	assert.Empty(t, items)

	require.NoError(t, tv.view.CreateMarker(ctx, marker))

	status = tv.view.MarkerStatus()
	assert.Equal(t, StateReady, status.State)
	assert.Nil(t, status.Error)
	items, _ = tv.scene.Layer("SHELTER")
	assert.Len(t, items, 1)
}

func TestRefreshFailure_KeepsStaleData(t *testing.T) {
	tv := newTestView(t, Config{}, nil)
	ctx := context.Background()

	tv.markers.EXPECT().FetchMarkerTypes(ctx).Return(testTypes, nil)
	gomock.InOrder(
		tv.markers.EXPECT().FetchMarkers(ctx, gomock.Any()).Return(shelters("A", "B"), nil),
		tv.markers.EXPECT().FetchMarkers(ctx, gomock.Any()).Return(nil, errors.New("timeout")),
	)
	gomock.InOrder(
		tv.incidents.EXPECT().FetchIncidents(ctx).Return([]models.Incident{redIncident()}, nil),
		tv.incidents.EXPECT().FetchIncidents(ctx).Return(nil, errors.New("timeout")),
	)
	require.NoError(t, tv.view.Init(ctx))

	assert.Error(t, tv.view.RefreshMarkers(ctx))
	assert.Error(t, tv.view.RefreshIncidents(ctx))

	assert.Equal(t, StateError, tv.view.MarkerStatus().State)
	assert.Equal(t, StateError, tv.view.IncidentStatus().State)
	items, _ := tv.scene.Layer("SHELTER")
	assert.Len(t, items, 2)
	assert.Len(t, tv.view.Incidents(), 1)
}

func TestIncidentFirstLoadFailure_Empty(t *testing.T) {
	tv := newTestView(t, Config{}, nil)
	ctx := context.Background()

	tv.markers.EXPECT().FetchMarkerTypes(ctx).Return(testTypes, nil)
	tv.markers.EXPECT().FetchMarkers(ctx, gomock.Any()).Return(nil, nil)
	tv.incidents.EXPECT().FetchIncidents(ctx).Return(nil, &restclient.APIError{Status: 500, Message: "boom"})

	err := tv.view.Init(ctx)

	require.Error(t, err)
	status := tv.view.IncidentStatus()
	assert.Equal(t, StateError, status.State)
	assert.Equal(t, 500, status.Error.Status)
	assert.Empty(t, tv.view.Incidents())
	assert.Equal(t, StateReady, tv.view.MarkerStatus().State)
}

func TestMarkerRoundTrip(t *testing.T) {
	tv := newTestView(t, Config{}, nil)
	ctx := context.Background()
	original := models.Marker{ID: 5, Type: "SHELTER", Name: "Gammel", Lat: 63.43, Lng: 10.39}
	updated := original
	updated.Name = "Ny"
	updated.OpeningHours = "24/7"

	tv.markers.EXPECT().FetchMarkerTypes(ctx).Return(testTypes, nil)
	gomock.InOrder(
		tv.markers.EXPECT().FetchMarkers(ctx, gomock.Any()).Return(map[string][]models.Marker{"SHELTER": {original}}, nil),
		tv.markers.EXPECT().UpdateMarker(ctx, &updated).Return(nil),
		tv.markers.EXPECT().FetchMarkers(ctx, gomock.Any()).Return(map[string][]models.Marker{"SHELTER": {updated}}, nil),
	)
	tv.incidents.EXPECT().FetchIncidents(ctx).Return(nil, nil)
	require.NoError(t, tv.view.Init(ctx))

	require.NoError(t, tv.view.UpdateMarker(ctx, &updated))

	got := tv.view.Markers()["SHELTER"]
	require.Len(t, got, 1)
	assert.Equal(t, updated, got[0])
	items, _ := tv.scene.Layer("SHELTER")
	assert.Contains(t, items[0].Popup, "24/7")
}

func TestIncidentMutations_Refetch(t *testing.T) {
	tv := newTestView(t, Config{}, nil)
	ctx := context.Background()
	incident := redIncident()

	tv.markers.EXPECT().FetchMarkerTypes(ctx).Return(testTypes, nil)
	tv.markers.EXPECT().FetchMarkers(ctx, gomock.Any()).Return(nil, nil)
	gomock.InOrder(
		tv.incidents.EXPECT().FetchIncidents(ctx).Return(nil, nil),
		tv.incidents.EXPECT().CreateIncident(ctx, &incident).Return(nil),
		tv.incidents.EXPECT().FetchIncidents(ctx).Return([]models.Incident{incident}, nil),
		tv.incidents.EXPECT().DeleteIncident(ctx, int64(7)).Return(nil),
		tv.incidents.EXPECT().FetchIncidents(ctx).Return(nil, nil),
	)
	require.NoError(t, tv.view.Init(ctx))

	require.NoError(t, tv.view.CreateIncident(ctx, &incident))
	assert.Len(t, tv.view.Incidents(), 1)

	require.NoError(t, tv.view.DeleteIncident(ctx, 7))
	assert.Empty(t, tv.view.Incidents())
}

func TestRefreshMarkers_StaleResponseDiscarded(t *testing.T) {
	tv := newTestView(t, Config{}, nil)
	ctx := context.Background()
	entered := make(chan struct{})
	release := make(chan struct{})

	tv.markers.EXPECT().FetchMarkerTypes(ctx).Return(testTypes, nil)
	gomock.InOrder(
		tv.markers.EXPECT().FetchMarkers(ctx, gomock.Any()).Return(shelters("init"), nil),
		// медленный запрос отвечает последним
		tv.markers.EXPECT().FetchMarkers(ctx, gomock.Any()).DoAndReturn(func(context.Context, geo.Query) (map[string][]models.Marker, error) {
			close(entered)
			<-release
			return shelters("old"), nil
		}),
		tv.markers.EXPECT().FetchMarkers(ctx, gomock.Any()).Return(shelters("new"), nil),
	)
	tv.incidents.EXPECT().FetchIncidents(ctx).Return(nil, nil)
	require.NoError(t, tv.view.Init(ctx))

	done := make(chan error)
	go func() { done <- tv.view.RefreshMarkers(ctx) }()
	<-entered

	require.NoError(t, tv.view.RefreshMarkers(ctx))
	close(release)
	require.NoError(t, <-done)

	got := tv.view.Markers()["SHELTER"]
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].Name)
	assert.Equal(t, StateReady, tv.view.MarkerStatus().State)
}

func TestVisibility(t *testing.T) {
	tv := newTestView(t, Config{}, nil)
	ctx := context.Background()

	tv.markers.EXPECT().FetchMarkerTypes(ctx).Return(testTypes, nil)
	tv.markers.EXPECT().FetchMarkers(ctx, gomock.Any()).Return(shelters("A"), nil)
	tv.incidents.EXPECT().FetchIncidents(ctx).Return([]models.Incident{redIncident()}, nil)
	require.NoError(t, tv.view.Init(ctx))

	assertInvariant := func() {
		for _, g := range tv.view.Groups() {
			assert.Equal(t, g.Visible, g.Attached, g.Key)
			_, shown := tv.scene.Layer(g.Key)
			assert.Equal(t, g.Visible, shown, g.Key)
		}
	}

	require.NoError(t, tv.view.SetVisibility("SHELTER", false))
	assertInvariant()
	for _, mt := range tv.view.MarkerTypes() {
		if mt.ID == "SHELTER" {
			assert.False(t, mt.Visible)
		}
	}

	visible, err := tv.view.ToggleVisibility("SHELTER")
	require.NoError(t, err)
	assert.True(t, visible)
	items, _ := tv.scene.Layer("SHELTER")
	assert.Len(t, items, 1)
	assertInvariant()

	require.NoError(t, tv.view.SetAllMarkersVisibility(false))
	assertInvariant()
	assert.Equal(t, []string{IncidentsLayer}, tv.scene.LayerKeys())

	require.NoError(t, tv.view.SetIncidentsVisibility(false))
	assertInvariant()
	assert.Empty(t, tv.scene.LayerKeys())

	assert.ErrorIs(t, tv.view.SetVisibility("SPACEPORT", true), ErrUnknownLayer)
}

func TestGenerateRoute_ReplacesPreviousRoute(t *testing.T) {
	tv := newTestView(t, Config{}, nil)
	ctx := context.Background()
	start := geo.LatLng{Lat: 63.43, Lng: 10.39}
	end := geo.LatLng{Lat: 63.44, Lng: 10.40}

	tv.markers.EXPECT().FetchMarkerTypes(ctx).Return(testTypes, nil)
	tv.markers.EXPECT().FetchMarkers(ctx, gomock.Any()).Return(nil, nil)
	tv.incidents.EXPECT().FetchIncidents(ctx).Return(nil, nil)
	tv.router.EXPECT().
		Route(ctx, start, end).
		Return(&routing.Route{Points: []geo.LatLng{start, end}, Distance: 1500}, nil).
		Times(2)
	require.NoError(t, tv.view.Init(ctx))
	require.Equal(t, 1, tv.scene.ListenerCount())

	require.NoError(t, tv.view.GenerateRoute(ctx, start, end))
	require.NoError(t, tv.view.GenerateRoute(ctx, start, end))

	// слушатель View + ровно один слушатель маршрута
	assert.Equal(t, 2, tv.scene.ListenerCount())
	route := tv.view.Route()
	assert.True(t, route.Active)
	assert.True(t, route.InView)
	assert.Equal(t, 1500.0, route.Distance)
	_, ok := tv.scene.Overlay(OverlayRoute)
	assert.True(t, ok)

	// карта ушла далеко от маршрута
	tv.scene.MoveTo(geo.Around(geo.LatLng{Lat: 59.9, Lng: 10.7}, 0.05))
	assert.False(t, tv.view.Route().InView)

	tv.view.ClearRoute()
	assert.Equal(t, 1, tv.scene.ListenerCount())
	_, ok = tv.scene.Overlay(OverlayRoute)
	assert.False(t, ok)
	assert.False(t, tv.view.Route().Active)
}

func TestRouteToMarker(t *testing.T) {
	start := geo.LatLng{Lat: 63.42, Lng: 10.38}
	tv := newTestView(t, Config{}, stubLocator{pos: start})
	ctx := context.Background()
	marker := models.Marker{ID: 3, Type: "SHELTER", Name: "Bunker", Lat: 63.43, Lng: 10.39}

	tv.router.EXPECT().Route(ctx, start, geo.LatLng{Lat: 63.43, Lng: 10.39}).Return(&routing.Route{}, nil)

	require.NoError(t, tv.view.RouteToMarker(ctx, marker))

	assert.Equal(t, "Rute til Bunker generert", tv.view.Notice())
	o, ok := tv.scene.Overlay(OverlayRoute)
	require.True(t, ok)
	assert.Len(t, o.Points, 2)

	assert.ErrorIs(t, tv.view.RouteToMarker(ctx, models.Marker{ID: 4}), ErrInvalidMarker)
}

func TestRouteToMarker_NoPosition(t *testing.T) {
	locator := stubLocator{err: &geolocation.PositionError{Code: geolocation.PermissionDenied}}
	tv := newTestView(t, Config{}, locator)
	tv.router.EXPECT().Route(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := tv.view.RouteToMarker(context.Background(), models.Marker{ID: 3, Lat: 63.43, Lng: 10.39})

	require.Error(t, err)
	assert.Equal(t, "Kunne ikke hente din posisjon.", tv.view.Notice())
	assert.Contains(t, tv.view.Route().Error, "Du må gi tillatelse")
}

func TestSearch(t *testing.T) {
	tv := newTestView(t, Config{}, nil)
	ctx := context.Background()
	places := []models.Place{
		{ID: 1, Name: "Torget", Lat: 63.4305, Lng: 10.3951},
		{ID: 2, Name: "Nidarosdomen", Lat: 63.4269, Lng: 10.3969},
	}

	tv.geocoding.EXPECT().SearchPlaces(ctx, "trondheim").Return(places, nil)

	empty, err := tv.view.SearchPlaces(ctx, "  ")
	require.NoError(t, err)
	assert.Empty(t, empty)

	results, err := tv.view.SearchPlaces(ctx, "trondheim")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	require.NoError(t, tv.view.SelectSearchResult(results[0]))
	require.NoError(t, tv.view.SelectSearchResult(results[1]))

	o, ok := tv.scene.Overlay(OverlaySearch)
	require.True(t, ok)
	assert.Equal(t, "Nidarosdomen", o.Label)
	assert.Equal(t, "Gikk til Nidarosdomen", tv.view.Notice())
	assert.Empty(t, tv.view.Search().Results)
	bounds, _ := tv.scene.Bounds()
	assert.True(t, bounds.Contains(geo.LatLng{Lat: 63.4269, Lng: 10.3969}))

	tv.view.ClearSearchResult()
	_, ok = tv.scene.Overlay(OverlaySearch)
	assert.False(t, ok)
	assert.Nil(t, tv.view.Search().Selected)
}

func TestNotice_AutoDismiss(t *testing.T) {
	tv := newTestView(t, Config{NoticeDuration: 20 * time.Millisecond}, nil)

	require.NoError(t, tv.view.SelectSearchResult(models.Place{Name: "Torget", Lat: 63.43, Lng: 10.39}))
	assert.Equal(t, "Gikk til Torget", tv.view.Notice())

	assert.Eventually(t, func() bool { return tv.view.Notice() == "" }, time.Second, 5*time.Millisecond)
}

func TestDispose(t *testing.T) {
	tv := newTestView(t, Config{}, nil)
	ctx := context.Background()
	start := geo.LatLng{Lat: 63.43, Lng: 10.39}
	end := geo.LatLng{Lat: 63.44, Lng: 10.40}

	tv.markers.EXPECT().FetchMarkerTypes(ctx).Return(testTypes, nil)
	tv.markers.EXPECT().FetchMarkers(ctx, gomock.Any()).Return(shelters("A"), nil)
	tv.incidents.EXPECT().FetchIncidents(ctx).Return([]models.Incident{redIncident()}, nil)
	tv.router.EXPECT().Route(ctx, start, end).Return(&routing.Route{}, nil)
	require.NoError(t, tv.view.Init(ctx))
	require.NoError(t, tv.view.GenerateRoute(ctx, start, end))
	require.NoError(t, tv.view.SelectSearchResult(models.Place{Name: "Torget", Lat: 63.43, Lng: 10.39}))

	tv.view.Dispose()
	tv.view.Dispose()

	assert.Empty(t, tv.scene.LayerKeys())
	assert.Equal(t, 0, tv.scene.ListenerCount())
	_, ok := tv.scene.Overlay(OverlayRoute)
	assert.False(t, ok)
	_, ok = tv.scene.Overlay(OverlaySearch)
	assert.False(t, ok)
	assert.Empty(t, tv.view.Groups())
	assert.Empty(t, tv.view.Notice())

	assert.ErrorIs(t, tv.view.Init(ctx), ErrDisposed)
	assert.ErrorIs(t, tv.view.RefreshIncidents(ctx), ErrDisposed)
	assert.ErrorIs(t, tv.view.SetVisibility("SHELTER", true), ErrDisposed)
	tv.view.OnViewportMoved(trondheim)
	tv.view.ClearRoute()
}

func TestAdminMarkers(t *testing.T) {
	tv := newTestView(t, Config{}, nil)
	ctx := context.Background()
	all := []models.Marker{
		{ID: 1, Type: "SHELTER", Name: "Bunker", City: "Trondheim", Lat: 63.43, Lng: 10.39},
		{ID: 2, Type: "HOSPITAL", Name: "St. Olavs", City: "Trondheim", Lat: 63.42, Lng: 10.38},
		{ID: 3, Type: "HOSPITAL", Name: "Ullevål", City: "Oslo", Lat: 59.93, Lng: 10.73},
	}
	tv.markers.EXPECT().FetchAllForAdmin(ctx).Return(all, nil).Times(3)

	got, err := tv.view.AdminMarkers(ctx, AdminFilter{Type: "HOSPITAL"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = tv.view.AdminMarkers(ctx, AdminFilter{Search: "trondheim", Type: "HOSPITAL"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)

	got, err = tv.view.AdminMarkers(ctx, AdminFilter{Search: "59.93"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.NoError(t, tv.view.SetAdminMarkers(all))
	items, ok := tv.scene.Layer(models.AdminMarkerType)
	require.True(t, ok)
	require.Len(t, items, 3)
	// иконка своего типа
	assert.Equal(t, "HOSPITAL", items[1].Type)
	assert.NotEmpty(t, items[1].Color)
}
