package mapview

import (
	"sort"
	"sync"

	geojson "github.com/paulmach/go.geojson"
	"github.com/shenikar/crisis_map_sync/internal/geo"
)

// ItemKind - вид отрисованного объекта
type ItemKind string

const (
	KindMarker         ItemKind = "marker"
	KindIncidentAnchor ItemKind = "incident-anchor"
	KindIncidentRing   ItemKind = "incident-ring"
)

// Item - один объект слоя
type Item struct {
	Kind         ItemKind   `json:"kind"`
	ID           int64      `json:"id"`
	Type         string     `json:"type"` // тип маркера или уровень опасности
	Position     geo.LatLng `json:"position"`
	RadiusMeters float64    `json:"radiusMeters,omitempty"`
	Color        string     `json:"color,omitempty"`
	Glyph        string     `json:"glyph,omitempty"`
	FillOpacity  float64    `json:"fillOpacity,omitempty"`
	StrokeWidth  float64    `json:"strokeWidth,omitempty"`
	Popup        string     `json:"popup,omitempty"`
}

// Отдельные оверлеи вне групп слоёв
const (
	OverlayRoute  = "route"
	OverlaySearch = "search"
)

// Overlay - маршрут или маркер результата поиска
type Overlay struct {
	Key    string       `json:"key"`
	Points []geo.LatLng `json:"points"`
	Color  string       `json:"color,omitempty"`
	Label  string       `json:"label,omitempty"`
}

// Surface - карта, на которой View размещает слои
type Surface interface {
	Bounds() (geo.Bounds, bool)
	FitBounds(b geo.Bounds)
	ShowLayer(key string, items []Item)
	HideLayer(key string)
	ShowOverlay(o Overlay)
	HideOverlay(key string)
	// OnMove регистрирует обработчик окончания перемещения карты и возвращает функцию отписки
	OnMove(fn func(geo.Bounds)) (remove func())
}

// Scene - карта в памяти. Перемещения приходят через MoveTo, содержимое
// отдаётся как GeoJSON.
type Scene struct {
	mu        sync.RWMutex
	bounds    *geo.Bounds
	layers    map[string][]Item
	overlays  map[string]Overlay
	listeners map[int]func(geo.Bounds)
	nextID    int
}

// NewScene создает пустую сцену; initial может быть nil
func NewScene(initial *geo.Bounds) *Scene {
	s := &Scene{
		layers:    make(map[string][]Item),
		overlays:  make(map[string]Overlay),
		listeners: make(map[int]func(geo.Bounds)),
	}
	if initial != nil {
		b := *initial
		s.bounds = &b
	}
	return s
}

func (s *Scene) Bounds() (geo.Bounds, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.bounds == nil {
		return geo.Bounds{}, false
	}
	return *s.bounds, true
}

// MoveTo перемещает карту и уведомляет слушателей
func (s *Scene) MoveTo(b geo.Bounds) {
	s.mu.Lock()
	s.bounds = &b
	listeners := make([]func(geo.Bounds), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(b)
	}
}

func (s *Scene) FitBounds(b geo.Bounds) {
	s.MoveTo(b)
}

func (s *Scene) ShowLayer(key string, items []Item) {
	cp := make([]Item, len(items))
	copy(cp, items)

	s.mu.Lock()
	s.layers[key] = cp
	s.mu.Unlock()
}

func (s *Scene) HideLayer(key string) {
	s.mu.Lock()
	delete(s.layers, key)
	s.mu.Unlock()
}

func (s *Scene) ShowOverlay(o Overlay) {
	s.mu.Lock()
	s.overlays[o.Key] = o
	s.mu.Unlock()
}

func (s *Scene) HideOverlay(key string) {
	s.mu.Lock()
	delete(s.overlays, key)
	s.mu.Unlock()
}

func (s *Scene) OnMove(fn func(geo.Bounds)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// ListenerCount - число подписанных слушателей перемещения
func (s *Scene) ListenerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

// Layer возвращает объекты показанного слоя
func (s *Scene) Layer(key string) ([]Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items, ok := s.layers[key]
	if !ok {
		return nil, false
	}
	cp := make([]Item, len(items))
	copy(cp, items)
	return cp, true
}

// LayerKeys - ключи показанных слоёв по алфавиту
func (s *Scene) LayerKeys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.layers))
	for k := range s.layers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Overlay возвращает отдельный оверлей
func (s *Scene) Overlay(key string) (Overlay, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.overlays[key]
	return o, ok
}

// FeatureCollection собирает всё показанное в GeoJSON. Кольца инцидентов -
// точки со свойством radius, как это принято у Leaflet.
func (s *Scene) FeatureCollection(onlyLayer string) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, key := range s.LayerKeys() {
		if onlyLayer != "" && key != onlyLayer {
			continue
		}
		items, _ := s.Layer(key)
		for _, it := range items {
			f := geojson.NewPointFeature([]float64{it.Position.Lng, it.Position.Lat})
			f.ID = it.ID
			f.SetProperty("layer", key)
			f.SetProperty("kind", string(it.Kind))
			f.SetProperty("type", it.Type)
			if it.Color != "" {
				f.SetProperty("color", it.Color)
			}
			if it.Glyph != "" {
				f.SetProperty("glyph", it.Glyph)
			}
			if it.RadiusMeters > 0 {
				f.SetProperty("radius", it.RadiusMeters)
				f.SetProperty("fillOpacity", it.FillOpacity)
				f.SetProperty("strokeWidth", it.StrokeWidth)
			}
			if it.Popup != "" {
				f.SetProperty("popup", it.Popup)
			}
			fc.AddFeature(f)
		}
	}

	if onlyLayer != "" {
		return fc
	}

	s.mu.RLock()
	overlays := make([]Overlay, 0, len(s.overlays))
	for _, o := range s.overlays {
		overlays = append(overlays, o)
	}
	s.mu.RUnlock()
	sort.Slice(overlays, func(i, j int) bool { return overlays[i].Key < overlays[j].Key })

	for _, o := range overlays {
		coords := make([][]float64, 0, len(o.Points))
		for _, p := range o.Points {
			coords = append(coords, []float64{p.Lng, p.Lat})
		}
		var f *geojson.Feature
		switch {
		case len(coords) == 1:
			f = geojson.NewPointFeature(coords[0])
		case len(coords) > 1:
			f = geojson.NewLineStringFeature(coords)
		default:
			continue
		}
		f.SetProperty("layer", o.Key)
		if o.Color != "" {
			f.SetProperty("color", o.Color)
		}
		if o.Label != "" {
			f.SetProperty("label", o.Label)
		}
		fc.AddFeature(f)
	}
	return fc
}

// GeoJSON сериализует FeatureCollection
func (s *Scene) GeoJSON(onlyLayer string) ([]byte, error) {
	return s.FeatureCollection(onlyLayer).MarshalJSON()
}
