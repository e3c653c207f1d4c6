package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/crisis_map_sync/internal/config"
	"github.com/shenikar/crisis_map_sync/internal/mapview"
	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/shenikar/crisis_map_sync/internal/realtime"
	"github.com/shenikar/crisis_map_sync/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type refusingTransport struct {
	dials atomic.Int32
}

func (t *refusingTransport) Dial(context.Context, models.Session) (realtime.Conn, error) {
	t.dials.Add(1)
	return nil, errors.New("connection refused")
}

func newTestConfig(backendURL string) *config.Config {
	return &config.Config{
		BackendURL:       backendURL,
		GeocodingURL:     backendURL,
		IPGeolocationURL: backendURL,
		RoutingURL:       backendURL,
		HTTPTimeout:      time.Second,
		ReconnectInitial: time.Hour,
		ReconnectMax:     time.Hour,
		InitialLat:       63.43,
		InitialLng:       10.39,
		MapDebounce:      time.Hour,
		NoticeDuration:   time.Second,
		PositionMaxAge:   time.Second,
		PositionInterval: time.Hour,
	}
}

func TestNew_RequiresTransport(t *testing.T) {
	_, err := New(newTestConfig("http://localhost"), models.Session{}, Infra{}, logger.NewDiscard())
	assert.Error(t, err)
}

func TestStart_BackendDownIsNotFatal(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"message":"maintenance"}`))
	}))
	defer srv.Close()

	transport := &refusingTransport{}
	session := models.Session{UserID: "7", AuthToken: "token", HouseholdID: "3"}
	a, err := New(newTestConfig(srv.URL), session, Infra{Transport: transport}, logger.NewDiscard())
	require.NoError(t, err)

	require.NoError(t, a.Start(context.Background()))

	assert.Equal(t, mapview.StateError, a.View.MarkerStatus().State)
	assert.Equal(t, mapview.StateError, a.View.IncidentStatus().State)
	assert.Positive(t, requests.Load())
	assert.False(t, a.Sharer.Sharing())
	require.Eventually(t, func() bool { return transport.dials.Load() >= 1 }, time.Second, 5*time.Millisecond)
	assert.False(t, a.Manager.Connected())

	a.Dispose()
	a.Dispose()

	assert.Equal(t, models.Disconnected, a.Manager.State())
	assert.Zero(t, a.Scene.ListenerCount())
	assert.ErrorIs(t, a.View.Init(context.Background()), mapview.ErrDisposed)
}

func TestCallbacks_ConnectedUpdatesInbox(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a, err := New(newTestConfig(srv.URL), models.Session{UserID: "7", AuthToken: "token"}, Infra{Transport: &refusingTransport{}}, logger.NewDiscard())
	require.NoError(t, err)
	defer a.Dispose()

	cb := a.Callbacks()
	cb.OnConnected()
	assert.True(t, a.Center.State().Connected)

	cb.OnDisconnected()
	assert.False(t, a.Center.State().Connected)
}
