package restclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	c, err := New(srv.URL+"/api", 2*time.Second, logger)
	require.NoError(t, err)
	return c, srv
}

func TestGet_DecodesAndSendsBearer(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/map-icons", r.URL.Path)
		assert.Equal(t, "63.4", r.URL.Query().Get("latitude"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1},{"id":2}]`))
	})
	c.SetToken("secret")

	var out []struct {
		ID int `json:"id"`
	}
	err := c.Get(context.Background(), "map-icons", url.Values{"latitude": {"63.4"}}, &out)

	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestPost_SendsJSONBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"x"}`, string(body))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
	})

	err := c.Post(context.Background(), "incidents", map[string]string{"name": "x"}, nil)
	require.NoError(t, err)
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"error field", http.StatusBadRequest, `{"error":"Ugyldig id"}`, "Ugyldig id"},
		{"message field", http.StatusNotFound, `{"message":"Not found"}`, "Not found"},
		{"no body", http.StatusForbidden, ``, msgUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			err := c.Get(context.Background(), "x", nil, nil)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.message, apiErr.Message)
		})
	}
}

func TestNoResponse(t *testing.T) {
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	err := c.Get(context.Background(), "x", nil, nil)

	require.Error(t, err)
	assert.True(t, IsNoResponse(err))
	assert.Equal(t, 0, ToAPIError(err).Status)
}

func TestToAPIError_PlainError(t *testing.T) {
	apiErr := ToAPIError(errors.New("boom"))
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, "boom", apiErr.Message)
	assert.Nil(t, ToAPIError(nil))
}
