// Package visual holds the rendering rules for map overlays: the marker type catalog,
// severity ring tables and popup content.
package visual

import (
	"sort"
	"strings"
	"unicode"

	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/sirupsen/logrus"
)

// MarkerConfig - оформление категории маркеров
type MarkerConfig struct {
	IconGlyph   string
	Color       string
	DisplayName string
}

var markerConfigs = map[string]MarkerConfig{
	"HEARTSTARTER": {IconGlyph: "Heart", Color: "#d81b60", DisplayName: "Hjertestarter"},
	"FOODSTATION":  {IconGlyph: "UtensilsCrossed", Color: "#7b1fa2", DisplayName: "Matstasjon"},
	"SHELTER":      {IconGlyph: "Home", Color: "#1976d2", DisplayName: "Tilfluktsrom"},
	"HOSPITAL":     {IconGlyph: "Building", Color: "#388e3c", DisplayName: "Sykehus"},
	"MEETINGPLACE": {IconGlyph: "Users", Color: "#f57c00", DisplayName: "Møteplass"},
}

// MarkerConfigs возвращает копию каталога
func MarkerConfigs() map[string]MarkerConfig {
	out := make(map[string]MarkerConfig, len(markerConfigs))
	for k, v := range markerConfigs {
		out[k] = v
	}
	return out
}

// MarkerConfigFor возвращает оформление типа
func MarkerConfigFor(typeID string) (MarkerConfig, bool) {
	cfg, ok := markerConfigs[typeID]
	return cfg, ok
}

// FormatTypeTitle превращает код категории в читаемое название
func FormatTypeTitle(typeID string) string {
	if cfg, ok := markerConfigs[typeID]; ok {
		return cfg.DisplayName
	}
	if typeID == "" {
		return ""
	}
	runes := []rune(typeID)
	if typeID == strings.ToUpper(typeID) {
		return string(runes[0]) + strings.ToLower(string(runes[1:]))
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ProcessMarkerTypes строит каталог типов из кодов, найденных в данных.
// Коды без оформления отбрасываются.
func ProcessMarkerTypes(ids []string, log logrus.FieldLogger) []models.MarkerType {
	seen := make(map[string]struct{}, len(ids))
	types := make([]models.MarkerType, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		cfg, ok := markerConfigs[id]
		if !ok {
			if log != nil {
				log.WithField("marker_type", id).Warn("Unknown marker type, excluded")
			}
			continue
		}
		types = append(types, models.MarkerType{
			ID:          id,
			DisplayName: FormatTypeTitle(id),
			Color:       cfg.Color,
			IconGlyph:   cfg.IconGlyph,
			Visible:     true,
		})
	}
	sort.Slice(types, func(i, j int) bool { return types[i].ID < types[j].ID })
	return types
}

// AdminMarkerTypes - все типы, доступные в форме администратора
func AdminMarkerTypes() []models.MarkerType {
	ids := make([]string, 0, len(markerConfigs))
	for id := range markerConfigs {
		ids = append(ids, id)
	}
	return ProcessMarkerTypes(ids, nil)
}
