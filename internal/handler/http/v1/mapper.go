package v1

import (
	"github.com/shenikar/crisis_map_sync/internal/geo"
	"github.com/shenikar/crisis_map_sync/internal/mapview"
	"github.com/shenikar/crisis_map_sync/internal/models"
)

// DTOToMarkerModel преобразует DTO маркера в доменную модель
func DTOToMarkerModel(dto MarkerRequest) *models.Marker {
	return &models.Marker{
		Type:         dto.Type,
		Name:         dto.Name,
		Lat:          dto.Latitude,
		Lng:          dto.Longitude,
		Address:      dto.Address,
		PostalCode:   dto.PostalCode,
		City:         dto.City,
		Description:  dto.Description,
		OpeningHours: dto.OpeningHours,
		ContactInfo:  dto.ContactInfo,
	}
}

// DTOToIncidentModel преобразует DTO инцидента в доменную модель
func DTOToIncidentModel(dto IncidentRequest) *models.Incident {
	incident := &models.Incident{
		Name:         dto.Name,
		Description:  dto.Description,
		Severity:     models.Severity(dto.Severity),
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		ImpactRadius: dto.ImpactRadius,
		ScenarioID:   dto.ScenarioID,
	}
	if dto.StartedAt != nil {
		incident.StartedAt = models.NewTimestamp(*dto.StartedAt)
	}
	if dto.EndedAt != nil {
		incident.EndedAt = models.NewTimestamp(*dto.EndedAt)
	}
	return incident
}

// DTOToPlace преобразует выбранный результат поиска в модель места
func DTOToPlace(dto SelectPlaceRequest) models.Place {
	return models.Place{ID: dto.ID, Name: dto.Name, Lat: dto.Lat, Lng: dto.Lng, Type: dto.Type}
}

// GroupsToResponses убирает элементы из групп слоёв: для статуса нужны только счётчики
func GroupsToResponses(groups []mapview.LayerGroup) []LayerGroupResponse {
	responses := make([]LayerGroupResponse, len(groups))
	for i, g := range groups {
		responses[i] = LayerGroupResponse{Key: g.Key, Visible: g.Visible, Items: len(g.Items)}
	}
	return responses
}

// BoundsToViewportResponse преобразует область карты в DTO
func BoundsToViewportResponse(b geo.Bounds, known bool) ViewportResponse {
	if !known {
		return ViewportResponse{Known: false, RadiusKm: geo.DefaultRadiusKm}
	}
	center := b.Center()
	return ViewportResponse{
		Known:     true,
		SouthWest: &PointDTO{Lat: b.SouthWest.Lat, Lng: b.SouthWest.Lng},
		NorthEast: &PointDTO{Lat: b.NorthEast.Lat, Lng: b.NorthEast.Lng},
		Center:    &PointDTO{Lat: center.Lat, Lng: center.Lng},
		RadiusKm:  geo.QueryRadiusKm(b),
	}
}
