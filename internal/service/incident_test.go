package service

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/shenikar/crisis_map_sync/internal/restclient"
	"github.com/shenikar/crisis_map_sync/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestIncidentService: вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockBackend) {
	ctrl := gomock.NewController(t)
	backendMock := mocks.NewMockBackend(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewIncidentService(backendMock, logger)
	return service.(*incidentService), backendMock
}

func validIncident() *models.Incident {
	return &models.Incident{
		Name:         "Skogbrann",
		Severity:     models.SeverityRed,
		Latitude:     63.43,
		Longitude:    10.39,
		ImpactRadius: 1.5,
	}
}

func TestFetchIncidents_Success(t *testing.T) {
	// Подготовка
	service, backendMock := newTestIncidentService(t)
	ctx := context.Background()
	expected := []models.Incident{{ID: 1, Name: "Flom"}, {ID: 2, Name: "Ras"}}

	// Ожидания
	backendMock.EXPECT().
		Get(ctx, "incidents", gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, out any) error {
			*(out.(*[]models.Incident)) = expected
			return nil
		}).Times(1)

	// Действие
	incidents, err := service.FetchIncidents(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incidents)
}

func TestFetchIncidents_BackendError(t *testing.T) {
	service, backendMock := newTestIncidentService(t)
	ctx := context.Background()

	backendMock.EXPECT().
		Get(ctx, "incidents", gomock.Any(), gomock.Any()).
		Return(&restclient.APIError{Status: 0, Message: "No response from server"}).
		Times(1)

	incidents, err := service.FetchIncidents(ctx)

	require.Error(t, err)
	assert.Nil(t, incidents)
	assert.ErrorContains(t, err, "could not fetch incidents")
	assert.Equal(t, "No response from server", restclient.ToAPIError(err).Message)
}

func TestCreateIncident_Success(t *testing.T) {
	// Подготовка
	service, backendMock := newTestIncidentService(t)
	ctx := context.Background()
	incident := validIncident()

	// Ожидания
	backendMock.EXPECT().
		Post(ctx, "incidents", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body, out any) error {
			req := body.(incidentRequest)
			assert.Equal(t, "Skogbrann", req.Name)
			assert.Equal(t, models.SeverityRed, req.Severity)
			// Симулируем, что бэкенд присвоил ID
			out.(*models.Incident).ID = 42
			return nil
		}).Times(1)

	// Действие
	err := service.CreateIncident(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(42), incident.ID)
}

func TestCreateIncident_ValidationError(t *testing.T) {
	service, backendMock := newTestIncidentService(t)
	incident := validIncident()
	incident.Severity = "BLUE"
	incident.ImpactRadius = 0

	backendMock.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // В сеть не идём

	err := service.CreateIncident(context.Background(), incident)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestUpdateIncident_Success(t *testing.T) {
	service, backendMock := newTestIncidentService(t)
	ctx := context.Background()
	incident := validIncident()
	incident.ID = 7

	backendMock.EXPECT().
		Put(ctx, "incidents/7", gomock.Any(), nil).
		Return(nil).
		Times(1)

	require.NoError(t, service.UpdateIncident(ctx, incident))
}

func TestUpdateIncident_MissingID(t *testing.T) {
	service, _ := newTestIncidentService(t)

	err := service.UpdateIncident(context.Background(), validIncident())

	assert.True(t, errors.Is(err, ErrValidation))
}

func TestDeleteIncident(t *testing.T) {
	service, backendMock := newTestIncidentService(t)
	ctx := context.Background()

	backendMock.EXPECT().
		Delete(ctx, "incidents/3", nil).
		Return(&restclient.APIError{Status: 404, Message: "Not found"}).
		Times(1)

	err := service.DeleteIncident(ctx, 3)

	require.Error(t, err)
	assert.Equal(t, 404, restclient.ToAPIError(err).Status)
}
