package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/sirupsen/logrus"
)

const incidentsResource = "incidents"

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// IncidentService определяет контракт для работы с зонами опасности
type IncidentService interface {
	FetchIncidents(ctx context.Context) ([]models.Incident, error)
	CreateIncident(ctx context.Context, incident *models.Incident) error
	UpdateIncident(ctx context.Context, incident *models.Incident) error
	DeleteIncident(ctx context.Context, id int64) error
}

type incidentService struct {
	backend Backend
	logger  *logrus.Logger
}

func NewIncidentService(backend Backend, logger *logrus.Logger) IncidentService {
	return &incidentService{
		backend: backend,
		logger:  logger,
	}
}

type incidentRequest struct {
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Severity     models.Severity   `json:"severity"`
	Latitude     float64           `json:"latitude"`
	Longitude    float64           `json:"longitude"`
	ImpactRadius float64           `json:"impactRadius"`
	StartedAt    *models.Timestamp `json:"startedAt,omitempty"`
	EndedAt      *models.Timestamp `json:"endedAt,omitempty"`
	ScenarioID   *int64            `json:"scenarioId,omitempty"`
}

func toIncidentRequest(i *models.Incident) incidentRequest {
	return incidentRequest{
		Name:         i.Name,
		Description:  i.Description,
		Severity:     i.Severity,
		Latitude:     i.Latitude,
		Longitude:    i.Longitude,
		ImpactRadius: i.ImpactRadius,
		StartedAt:    i.StartedAt,
		EndedAt:      i.EndedAt,
		ScenarioID:   i.ScenarioID,
	}
}

// FetchIncidents получает все инциденты
func (s *incidentService) FetchIncidents(ctx context.Context) ([]models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "FetchIncidents",
	})

	var incidents []models.Incident
	if err := s.backend.Get(ctx, incidentsResource, nil, &incidents); err != nil {
		log.WithError(err).Error("Failed to fetch incidents")
		return nil, fmt.Errorf("service: could not fetch incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Debug("Incidents fetched")
	return incidents, nil
}

// CreateIncident создает инцидент
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"name":    incident.Name,
	})
	log.Info("Attempting to create a new incident")

	if err := validateStruct(incident); err != nil {
		log.WithError(err).Warn("Incident rejected by validation")
		return err
	}

	var created models.Incident
	if err := s.backend.Post(ctx, incidentsResource, toIncidentRequest(incident), &created); err != nil {
		log.WithError(err).Error("Failed to create incident")
		return fmt.Errorf("service: could not create incident: %w", err)
	}
	if created.ID != 0 {
		incident.ID = created.ID
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// UpdateIncident обновляет существующий инцидент
func (s *incidentService) UpdateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": incident.ID,
	})
	log.Info("Attempting to update incident")

	if incident.ID <= 0 {
		return fmt.Errorf("%w: incident id is required", ErrValidation)
	}
	if err := validateStruct(incident); err != nil {
		log.WithError(err).Warn("Incident rejected by validation")
		return err
	}

	path := incidentsResource + "/" + strconv.FormatInt(incident.ID, 10)
	if err := s.backend.Put(ctx, path, toIncidentRequest(incident), nil); err != nil {
		log.WithError(err).Error("Failed to update incident")
		return fmt.Errorf("service: could not update incident: %w", err)
	}

	log.Info("Incident updated successfully")
	return nil
}

// DeleteIncident удаляет инцидент
func (s *incidentService) DeleteIncident(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	if id <= 0 {
		return fmt.Errorf("%w: incident id is required", ErrValidation)
	}
	if err := s.backend.Delete(ctx, incidentsResource+"/"+strconv.FormatInt(id, 10), nil); err != nil {
		log.WithError(err).Error("Failed to delete incident")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}

	log.Info("Incident deleted successfully")
	return nil
}
