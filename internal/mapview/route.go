package mapview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/crisis_map_sync/internal/geo"
	"github.com/shenikar/crisis_map_sync/internal/geolocation"
	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	routeColor  = "#3388ff"
	searchColor = "#3498db"

	// поля вокруг маршрута при подгонке карты
	routePadding = 0.3
	// примерно 16-й уровень масштаба
	searchHalfDeg = 0.005
)

// ErrInvalidMarker - у маркера нет координат для маршрута
var ErrInvalidMarker = errors.New("Ugyldig markørdata for ruteberegning.")

// RouteStatus - активный маршрут, как его видит интерфейс
type RouteStatus struct {
	Active     bool          `json:"active"`
	Generating bool          `json:"generating"`
	Start      *geo.LatLng   `json:"start,omitempty"`
	End        *geo.LatLng   `json:"end,omitempty"`
	Distance   float64       `json:"distanceMeters,omitempty"`
	Duration   time.Duration `json:"duration,omitempty"`
	InView     bool          `json:"inView"`
	Error      string        `json:"error,omitempty"`
}

type routeState struct {
	status RouteStatus
	seq    uint64
	// снятие слушателя перемещения, привязанного к маршруту
	removeListener func()
}

// SearchStatus - состояние поиска мест
type SearchStatus struct {
	Results   []models.Place `json:"results"`
	Searching bool           `json:"searching"`
	Error     string         `json:"error,omitempty"`
	Selected  *models.Place  `json:"selected,omitempty"`
}

type searchState struct {
	status SearchStatus
}

// Route возвращает состояние маршрута
func (v *View) Route() RouteStatus {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.route.status
}

// RouteToMarker строит маршрут от позиции пользователя до маркера.
// Позиция берётся цепочкой: живая, последняя известная, по IP.
func (v *View) RouteToMarker(ctx context.Context, marker models.Marker) error {
	log := v.logger.WithFields(logrus.Fields{
		"component": "mapview",
		"method":    "RouteToMarker",
		"marker_id": marker.ID,
	})

	v.mu.Lock()
	if v.disposed {
		v.mu.Unlock()
		return ErrDisposed
	}
	if marker.Lat == 0 || marker.Lng == 0 {
		v.route.status.Error = ErrInvalidMarker.Error()
		v.mu.Unlock()
		log.Error("Invalid marker data for routing")
		return ErrInvalidMarker
	}
	v.showNoticeLocked("Genererer rute...")
	v.mu.Unlock()

	start, err := v.deps.Locator.Locate(ctx)
	if err != nil {
		log.WithError(err).Warn("Could not resolve user position")
		msg := "Kunne ikke hente din posisjon."
		v.mu.Lock()
		if !v.disposed {
			v.route.status.Error = msg + " " + geolocation.ErrorMessage(err)
			v.showNoticeLocked(msg)
		}
		v.mu.Unlock()
		return fmt.Errorf("mapview: locate user: %w", err)
	}

	if err := v.GenerateRoute(ctx, start, geo.LatLng{Lat: marker.Lat, Lng: marker.Lng}); err != nil {
		v.mu.Lock()
		if !v.disposed {
			v.showNoticeLocked("Kunne ikke generere rute.")
		}
		v.mu.Unlock()
		return err
	}

	name := marker.Name
	if name == "" {
		name = "markør"
	}
	v.mu.Lock()
	if !v.disposed {
		v.showNoticeLocked(fmt.Sprintf("Rute til %s generert", name))
	}
	v.mu.Unlock()
	return nil
}

// GenerateRoute строит и показывает маршрут. Предыдущий маршрут и его
// слушатели снимаются до того, как навешивается новый.
func (v *View) GenerateRoute(ctx context.Context, start, end geo.LatLng) error {
	log := v.logger.WithFields(logrus.Fields{
		"component": "mapview",
		"method":    "GenerateRoute",
	})

	v.mu.Lock()
	if v.disposed {
		v.mu.Unlock()
		return ErrDisposed
	}
	if !start.Valid() || !end.Valid() {
		v.route.status.Error = "Kan ikke generere rute: mangler kart eller koordinater"
		v.mu.Unlock()
		return fmt.Errorf("mapview: invalid route coordinates")
	}

	v.clearRouteLocked()
	v.route.seq++
	seq := v.route.seq
	v.route.status = RouteStatus{Generating: true, Start: &start, End: &end}
	v.mu.Unlock()

	route, err := v.deps.Router.Route(ctx, start, end)

	v.mu.Lock()
	if v.disposed {
		v.mu.Unlock()
		return ErrDisposed
	}
	if seq != v.route.seq {
		// пока считали, маршрут сняли или запросили новый
		v.mu.Unlock()
		return nil
	}
	v.route.status.Generating = false
	if err != nil {
		v.route.status.Error = "Kunne ikke generere rute. Vennligst prøv igjen senere."
		v.mu.Unlock()
		log.WithError(err).Error("Error generating route")
		return fmt.Errorf("mapview: could not generate route: %w", err)
	}

	points := route.Points
	if len(points) == 0 {
		points = []geo.LatLng{start, end}
	}
	v.surface.ShowOverlay(Overlay{Key: OverlayRoute, Points: points, Color: routeColor})
	v.route.status.Active = true
	v.route.status.Distance = route.Distance
	v.route.status.Duration = route.Duration
	v.route.status.InView = true

	v.route.removeListener = v.surface.OnMove(func(b geo.Bounds) {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.route.seq == seq && v.route.status.Active {
			v.route.status.InView = b.Contains(start) || b.Contains(end)
		}
	})
	surface := v.surface
	v.mu.Unlock()

	// FitBounds вызывает слушателей перемещения, поэтому без блокировки
	surface.FitBounds(geo.BoundsOf(start, end).Pad(routePadding))
	return nil
}

// ClearRoute убирает маршрут и его слушателей
func (v *View) ClearRoute() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed {
		return
	}
	v.clearRouteLocked()
	v.route.seq++
	v.route.status = RouteStatus{}
}

func (v *View) clearRouteLocked() {
	if v.route.removeListener != nil {
		v.route.removeListener()
		v.route.removeListener = nil
	}
	if v.route.status.Active {
		v.surface.HideOverlay(OverlayRoute)
	}
	v.route.status.Active = false
}

// Search возвращает состояние поиска
func (v *View) Search() SearchStatus {
	v.mu.Lock()
	defer v.mu.Unlock()
	st := v.search.status
	st.Results = append([]models.Place(nil), st.Results...)
	return st
}

// SearchPlaces ищет места; пустой запрос очищает результаты
func (v *View) SearchPlaces(ctx context.Context, query string) ([]models.Place, error) {
	v.mu.Lock()
	if v.disposed {
		v.mu.Unlock()
		return nil, ErrDisposed
	}
	if strings.TrimSpace(query) == "" {
		v.search.status.Results = nil
		v.search.status.Error = ""
		v.search.status.Searching = false
		v.mu.Unlock()
		return nil, nil
	}
	v.search.status.Searching = true
	v.search.status.Error = ""
	v.mu.Unlock()

	results, err := v.deps.Geocoding.SearchPlaces(ctx, query)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.search.status.Searching = false
	if err != nil {
		v.logger.WithError(err).WithField("component", "mapview").Error("Error searching places")
		v.search.status.Error = "Failed to search places. Please try again later."
		v.search.status.Results = nil
		return nil, err
	}
	v.search.status.Results = results
	return results, nil
}

// SelectSearchResult переносит карту к месту и ставит маркер результата.
// Предыдущий маркер результата заменяется.
func (v *View) SelectSearchResult(place models.Place) error {
	v.mu.Lock()
	if v.disposed {
		v.mu.Unlock()
		return ErrDisposed
	}
	pos := geo.LatLng{Lat: place.Lat, Lng: place.Lng}
	if !pos.Valid() || (pos.Lat == 0 && pos.Lng == 0) {
		v.mu.Unlock()
		return fmt.Errorf("mapview: search result without coordinates")
	}

	v.clearSearchLocked()
	v.surface.ShowOverlay(Overlay{Key: OverlaySearch, Points: []geo.LatLng{pos}, Color: searchColor, Label: place.Name})
	selected := place
	v.search.status.Selected = &selected
	v.search.status.Results = nil

	name := place.Name
	if name == "" {
		name = "valgt plassering"
	}
	v.showNoticeLocked(fmt.Sprintf("Gikk til %s", name))
	surface := v.surface
	v.mu.Unlock()

	surface.FitBounds(geo.Around(pos, searchHalfDeg))
	return nil
}

// ClearSearchResult убирает маркер результата поиска
func (v *View) ClearSearchResult() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.disposed {
		return
	}
	v.clearSearchLocked()
}

func (v *View) clearSearchLocked() {
	if v.search.status.Selected != nil {
		v.surface.HideOverlay(OverlaySearch)
	}
	v.search.status.Selected = nil
}
