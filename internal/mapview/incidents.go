package mapview

import (
	"context"
	"fmt"

	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/shenikar/crisis_map_sync/internal/restclient"
	"github.com/shenikar/crisis_map_sync/internal/visual"
	"github.com/sirupsen/logrus"
)

// Incidents возвращает загруженные инциденты
func (v *View) Incidents() []models.Incident {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Incident(nil), v.incidents...)
}

// RefreshIncidents загружает инциденты заново. Вызывается при инициализации,
// после изменений и по push-уведомлению; перемещение карты его не вызывает.
func (v *View) RefreshIncidents(ctx context.Context) error {
	log := v.logger.WithFields(logrus.Fields{
		"component": "mapview",
		"method":    "RefreshIncidents",
	})

	v.mu.Lock()
	if v.disposed {
		v.mu.Unlock()
		return ErrDisposed
	}
	v.incidentSeq++
	seq := v.incidentSeq
	v.incidentStatus.State = StateLoading
	v.incidentStatus.Loading = true
	v.mu.Unlock()

	incidents, err := v.deps.Incidents.FetchIncidents(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.disposed {
		return ErrDisposed
	}
	if seq != v.incidentSeq {
		log.WithField("seq", seq).Debug("Stale incident response discarded")
		return nil
	}

	v.incidentStatus.Loading = false
	if err != nil {
		log.WithError(err).Error("Error loading incidents")
		v.incidentStatus.State = StateError
		v.incidentStatus.Error = restclient.ToAPIError(err)
		if !v.incidentsLoaded {
			v.incidents = nil
			v.renderIncidentsLocked()
		}
		return fmt.Errorf("mapview: could not load incidents: %w", err)
	}

	v.incidents = incidents
	v.incidentsLoaded = true
	v.incidentStatus.State = StateReady
	v.incidentStatus.Error = nil
	v.renderIncidentsLocked()
	return nil
}

// renderIncidentsLocked рисует для каждого инцидента невидимый якорь попапа
// и кольца от внешнего к внутреннему
func (v *View) renderIncidentsLocked() {
	if v.disposed || v.incidentGroup == nil {
		return
	}

	items := make([]Item, 0, len(v.incidents)*4)
	for _, incident := range v.incidents {
		if v.editingIncident != nil && incident.ID == *v.editingIncident {
			continue
		}
		shape := visual.IncidentRings(incident)
		items = append(items, Item{
			Kind:     KindIncidentAnchor,
			ID:       incident.ID,
			Type:     string(incident.Severity),
			Position: shape.Anchor,
			Popup:    shape.Popup,
		})
		for _, c := range shape.Circles {
			items = append(items, Item{
				Kind:         KindIncidentRing,
				ID:           incident.ID,
				Type:         string(incident.Severity),
				Position:     c.Center,
				RadiusMeters: c.RadiusMeters,
				Color:        c.Ring.Color,
				FillOpacity:  c.Ring.FillOpacity,
				StrokeWidth:  c.Ring.StrokeWidth,
			})
		}
	}
	v.setGroupItemsLocked(v.incidentGroup, items)
}

// SetEditingIncident скрывает инцидент на время редактирования
func (v *View) SetEditingIncident(id int64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editingIncident = &id
	v.renderIncidentsLocked()
}

// ClearEditingIncident возвращает инцидент на карту
func (v *View) ClearEditingIncident() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editingIncident = nil
	v.renderIncidentsLocked()
}

// CreateIncident создает инцидент и дожидается обновления категории
func (v *View) CreateIncident(ctx context.Context, incident *models.Incident) error {
	if err := v.deps.Incidents.CreateIncident(ctx, incident); err != nil {
		return err
	}
	return v.RefreshIncidents(ctx)
}

// UpdateIncident обновляет инцидент и дожидается обновления категории
func (v *View) UpdateIncident(ctx context.Context, incident *models.Incident) error {
	if err := v.deps.Incidents.UpdateIncident(ctx, incident); err != nil {
		return err
	}
	return v.RefreshIncidents(ctx)
}

// DeleteIncident удаляет инцидент и дожидается обновления категории
func (v *View) DeleteIncident(ctx context.Context, id int64) error {
	if err := v.deps.Incidents.DeleteIncident(ctx, id); err != nil {
		return err
	}
	return v.RefreshIncidents(ctx)
}
