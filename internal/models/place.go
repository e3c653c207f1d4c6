package models

// Place - результат поиска адреса или места
type Place struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Lat         float64           `json:"lat"`
	Lng         float64           `json:"lng"`
	Type        string            `json:"type,omitempty"`
	Address     map[string]string `json:"address,omitempty"`
	Importance  float64           `json:"importance,omitempty"`
	BoundingBox []string          `json:"boundingBox,omitempty"`
}

// ClosestMarker - ближайший маркер и расстояние до него
type ClosestMarker struct {
	Marker
	DistanceKm float64 `json:"distanceKm"`
}
