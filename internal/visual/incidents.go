package visual

import (
	"sort"

	"github.com/shenikar/crisis_map_sync/internal/geo"
	"github.com/shenikar/crisis_map_sync/internal/models"
)

// RingSpec - одно концентрическое кольцо зоны опасности
type RingSpec struct {
	Color            string  `json:"color"`
	RadiusMultiplier float64 `json:"radiusMultiplier"`
	FillOpacity      float64 `json:"fillOpacity"`
	StrokeWidth      float64 `json:"strokeWidth"`
}

// SeverityLevel - оформление уровня опасности
type SeverityLevel struct {
	ID          models.Severity `json:"id"`
	Name        string          `json:"name"`
	Color       string          `json:"color"`
	FillOpacity float64         `json:"fillOpacity"`
	StrokeWidth float64         `json:"strokeWidth"`
	Rings       []RingSpec      `json:"rings"`
}

const (
	colorRed    = "#FF3D33"
	colorYellow = "#FFC700"
	colorGreen  = "#45D278"
)

var (
	ringGreenOuter  = RingSpec{Color: colorGreen, RadiusMultiplier: 1.2, FillOpacity: 0.25, StrokeWidth: 1}
	ringYellowOuter = RingSpec{Color: colorYellow, RadiusMultiplier: 1.1, FillOpacity: 0.3, StrokeWidth: 1.5}
	ringRedCore     = RingSpec{Color: colorRed, RadiusMultiplier: 1.0, FillOpacity: 0.35, StrokeWidth: 2}
)

var severityLevels = map[models.Severity]SeverityLevel{
	models.SeverityRed: {
		ID: models.SeverityRed, Name: "Kritisk farenivå", Color: colorRed, FillOpacity: 0.35, StrokeWidth: 2,
		Rings: []RingSpec{ringGreenOuter, ringYellowOuter, ringRedCore},
	},
	models.SeverityYellow: {
		ID: models.SeverityYellow, Name: "Forhøyet farenivå", Color: colorYellow, FillOpacity: 0.3, StrokeWidth: 1.5,
		Rings: []RingSpec{
			{Color: colorGreen, RadiusMultiplier: 1.1, FillOpacity: 0.25, StrokeWidth: 1},
			{Color: colorYellow, RadiusMultiplier: 1.0, FillOpacity: 0.3, StrokeWidth: 1.5},
		},
	},
	models.SeverityGreen: {
		ID: models.SeverityGreen, Name: "Lavt farenivå", Color: colorGreen, FillOpacity: 0.25, StrokeWidth: 1,
		Rings: []RingSpec{
			{Color: colorGreen, RadiusMultiplier: 1.0, FillOpacity: 0.25, StrokeWidth: 1},
		},
	},
}

// SeverityLevels возвращает уровни в порядке RED, YELLOW, GREEN
func SeverityLevels() []SeverityLevel {
	return []SeverityLevel{
		SeverityFor(models.SeverityRed),
		SeverityFor(models.SeverityYellow),
		SeverityFor(models.SeverityGreen),
	}
}

// SeverityFor возвращает оформление уровня; неизвестный уровень считается GREEN
func SeverityFor(s models.Severity) SeverityLevel {
	lvl, ok := severityLevels[s]
	if !ok {
		lvl = severityLevels[models.SeverityGreen]
	}
	lvl.Rings = append([]RingSpec(nil), lvl.Rings...)
	return lvl
}

// RingSpecs возвращает кольца в порядке отрисовки: от внешнего к внутреннему,
// чтобы меньшие кольца ложились поверх больших.
func RingSpecs(s models.Severity) []RingSpec {
	rings := SeverityFor(s).Rings
	sort.SliceStable(rings, func(i, j int) bool {
		return rings[i].RadiusMultiplier > rings[j].RadiusMultiplier
	})
	return rings
}

// Circle - отрисовываемое кольцо инцидента
type Circle struct {
	Center       geo.LatLng
	RadiusMeters float64
	Ring         RingSpec
}

// IncidentShape - всё, что рисуется для одного инцидента: невидимый якорь
// для попапа в центре и кольца. Клик по любому кольцу открывает попап якоря.
type IncidentShape struct {
	IncidentID int64
	Anchor     geo.LatLng
	Popup      string
	Circles    []Circle
}

// IncidentRings строит фигуры инцидента. Радиус воздействия задан в км.
func IncidentRings(incident models.Incident) IncidentShape {
	center := geo.LatLng{Lat: incident.Latitude, Lng: incident.Longitude}
	base := incident.ImpactRadius * 1000

	rings := RingSpecs(incident.Severity)
	circles := make([]Circle, 0, len(rings))
	for _, ring := range rings {
		circles = append(circles, Circle{
			Center:       center,
			RadiusMeters: base * ring.RadiusMultiplier,
			Ring:         ring,
		})
	}

	return IncidentShape{
		IncidentID: incident.ID,
		Anchor:     center,
		Popup:      IncidentPopup(incident),
		Circles:    circles,
	}
}
