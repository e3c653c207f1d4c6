package mapview

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shenikar/crisis_map_sync/internal/geo"
	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/shenikar/crisis_map_sync/internal/restclient"
	"github.com/shenikar/crisis_map_sync/internal/visual"
	"github.com/sirupsen/logrus"
)

// MarkerTypes возвращает типы маркеров с текущей видимостью
func (v *View) MarkerTypes() []models.MarkerType {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.MarkerType(nil), v.markerTypes...)
}

// Markers возвращает загруженные маркеры по типам
func (v *View) Markers() map[string][]models.Marker {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make(map[string][]models.Marker, len(v.markerData))
	for k, list := range v.markerData {
		out[k] = append([]models.Marker(nil), list...)
	}
	return out
}

func (v *View) resetMarkersLocked() {
	for _, g := range v.markerGroups {
		v.surface.HideLayer(g.Key)
	}
	v.markerGroups = make(map[string]*LayerGroup)
	v.markerData = make(map[string][]models.Marker)
	v.markerTypes = nil
	v.markersLoaded = false
}

// installMarkerTypesLocked создает по группе на тип; видимые группы сразу на карте
func (v *View) installMarkerTypesLocked(types []models.MarkerType) {
	v.markerTypes = append([]models.MarkerType(nil), types...)
	for _, t := range v.markerTypes {
		g := &LayerGroup{Key: t.ID}
		v.markerGroups[t.ID] = g
		v.setGroupVisibilityLocked(g, t.Visible)
	}
	if v.adminMarkers != nil {
		v.ensureAdminGroupLocked()
	}
}

// refreshMarkers загружает маркеры для текущей области и перерисовывает их.
// Ответ устаревшего запроса отбрасывается.
func (v *View) refreshMarkers(ctx context.Context, silent bool) error {
	log := v.logger.WithFields(logrus.Fields{
		"component": "mapview",
		"method":    "refreshMarkers",
		"silent":    silent,
	})

	v.mu.Lock()
	if v.disposed {
		v.mu.Unlock()
		return ErrDisposed
	}
	v.markerSeq++
	seq := v.markerSeq
	v.markerStatus.State = StateLoading
	v.markerStatus.Loading = !silent
	v.markerStatus.Silent = silent
	bounds, ok := v.surface.Bounds()
	v.mu.Unlock()

	query := geo.QueryFor(nil)
	if ok {
		query = geo.QueryFor(&bounds)
	}

	data, err := v.deps.Markers.FetchMarkers(ctx, query)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.disposed {
		return ErrDisposed
	}
	if seq != v.markerSeq {
		log.WithField("seq", seq).Debug("Stale marker response discarded")
		return nil
	}

	v.markerStatus.Loading = false
	v.markerStatus.Silent = false
	if err != nil {
		log.WithError(err).Error("Failed to load markers")
		v.markerStatus.State = StateError
		v.markerStatus.Error = restclient.ToAPIError(err)
		if !v.markersLoaded {
			// при первой загрузке показывать нечего - явное пустое состояние
			v.markerData = make(map[string][]models.Marker)
			v.renderMarkersLocked()
		}
		return fmt.Errorf("mapview: could not load markers: %w", err)
	}

	v.markerData = data
	v.markersLoaded = true
	v.markerStatus.State = StateReady
	v.markerStatus.Error = nil
	v.renderMarkersLocked()

	log.WithFields(logrus.Fields{
		"radius_km": query.RadiusKm,
		"types":     len(data),
	}).Debug("Markers updated")
	return nil
}

// RefreshMarkers - явное обновление маркеров
func (v *View) RefreshMarkers(ctx context.Context) error {
	return v.refreshMarkers(ctx, false)
}

// renderMarkersLocked заново собирает содержимое групп маркеров. Редактируемый
// маркер отфильтровывается при каждом проходе.
func (v *View) renderMarkersLocked() {
	if v.disposed {
		return
	}
	sharing := v.deps.Sharing()

	for key, g := range v.markerGroups {
		if key == models.AdminMarkerType {
			continue
		}
		items := make([]Item, 0, len(v.markerData[key]))
		for _, m := range v.markerData[key] {
			if v.editingMarker != nil && m.ID == *v.editingMarker {
				continue
			}
			items = append(items, markerItem(m, m.Type, sharing))
		}
		v.setGroupItemsLocked(g, items)
	}

	if g, ok := v.markerGroups[models.AdminMarkerType]; ok {
		items := make([]Item, 0, len(v.adminMarkers))
		for _, m := range v.adminMarkers {
			if v.editingMarker != nil && m.ID == *v.editingMarker {
				continue
			}
			// маркеры администратора рисуются иконкой своего типа
			if _, known := visual.MarkerConfigFor(m.Type); !known {
				v.logger.WithField("marker_type", m.Type).Warn("No config found for admin marker type")
				continue
			}
			items = append(items, markerItem(m, m.Type, false))
		}
		v.setGroupItemsLocked(g, items)
	}
}

func markerItem(m models.Marker, typeID string, sharing bool) Item {
	cfg, _ := visual.MarkerConfigFor(typeID)
	return Item{
		Kind:     KindMarker,
		ID:       m.ID,
		Type:     typeID,
		Position: geo.LatLng{Lat: m.Lat, Lng: m.Lng},
		Color:    cfg.Color,
		Glyph:    cfg.IconGlyph,
		Popup:    visual.MarkerPopup(m, sharing),
	}
}

// RefreshPopups перерисовывает маркеры, например после включения
// или выключения передачи позиции
func (v *View) RefreshPopups() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.renderMarkersLocked()
}

// SetEditingMarker скрывает маркер на время редактирования
func (v *View) SetEditingMarker(id int64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editingMarker = &id
	v.renderMarkersLocked()
}

// ClearEditingMarker возвращает маркер на карту
func (v *View) ClearEditingMarker() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.editingMarker = nil
	v.renderMarkersLocked()
}

// EditingMarker возвращает id редактируемого маркера
func (v *View) EditingMarker() (int64, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.editingMarker == nil {
		return 0, false
	}
	return *v.editingMarker, true
}

// CreateMarker создает маркер и дожидается обновления категории
func (v *View) CreateMarker(ctx context.Context, marker *models.Marker) error {
	if err := v.deps.Markers.CreateMarker(ctx, marker); err != nil {
		return err
	}
	return v.refreshMarkers(ctx, false)
}

// UpdateMarker обновляет маркер и дожидается обновления категории
func (v *View) UpdateMarker(ctx context.Context, marker *models.Marker) error {
	if err := v.deps.Markers.UpdateMarker(ctx, marker); err != nil {
		return err
	}
	return v.refreshMarkers(ctx, false)
}

// DeleteMarker удаляет маркер и дожидается обновления категории
func (v *View) DeleteMarker(ctx context.Context, id int64) error {
	if err := v.deps.Markers.DeleteMarker(ctx, id); err != nil {
		return err
	}
	return v.refreshMarkers(ctx, false)
}

// AdminFilter - фильтр списка маркеров администратора
type AdminFilter struct {
	Search string
	Type   string
}

// Match сообщает, подходит ли маркер под фильтр
func (f AdminFilter) Match(m models.Marker) bool {
	if f.Type != "" && m.Type != f.Type {
		return false
	}
	if f.Search == "" {
		return true
	}

	term := strings.ToLower(f.Search)
	for _, field := range []string{m.Name, m.Address, m.PostalCode, m.City, m.Description, m.ContactInfo, m.OpeningHours, m.Type} {
		if field != "" && strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return strings.Contains(strconv.FormatFloat(m.Lat, 'f', -1, 64), f.Search) ||
		strings.Contains(strconv.FormatFloat(m.Lng, 'f', -1, 64), f.Search)
}

// AdminMarkers загружает все маркеры для администратора и применяет фильтр
func (v *View) AdminMarkers(ctx context.Context, filter AdminFilter) ([]models.Marker, error) {
	all, err := v.deps.Markers.FetchAllForAdmin(ctx)
	if err != nil {
		v.logger.WithError(err).WithField("component", "mapview").Error("Error in fetching admin markers")
		return nil, err
	}

	filtered := make([]models.Marker, 0, len(all))
	for _, m := range all {
		if filter.Match(m) {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

// SetAdminMarkers показывает маркеры администратора в отдельной группе ADMIN
func (v *View) SetAdminMarkers(markers []models.Marker) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.disposed {
		return ErrDisposed
	}
	v.adminMarkers = append([]models.Marker{}, markers...)
	v.ensureAdminGroupLocked()
	v.renderMarkersLocked()
	return nil
}

func (v *View) ensureAdminGroupLocked() {
	if _, ok := v.markerGroups[models.AdminMarkerType]; ok {
		return
	}
	g := &LayerGroup{Key: models.AdminMarkerType}
	v.markerGroups[models.AdminMarkerType] = g
	v.setGroupVisibilityLocked(g, true)
}
