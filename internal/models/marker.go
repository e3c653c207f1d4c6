package models

// AdminMarkerType - псевдотип для маркеров в режиме администрирования
const AdminMarkerType = "ADMIN"

// MarkerType - категория точек интереса на карте
type MarkerType struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Color       string `json:"color"`
	IconGlyph   string `json:"iconGlyph"`
	Visible     bool   `json:"visible"`
}

// Marker - точка интереса (map icon на бэкенде)
type Marker struct {
	ID           int64   `json:"id"`
	Type         string  `json:"type" validate:"required"`
	Name         string  `json:"name,omitempty"`
	Lat          float64 `json:"latitude" validate:"latitude"`
	Lng          float64 `json:"longitude" validate:"longitude"`
	Address      string  `json:"address,omitempty"`
	PostalCode   string  `json:"postalCode,omitempty"`
	City         string  `json:"city,omitempty"`
	Description  string  `json:"description,omitempty"`
	OpeningHours string  `json:"openingHours,omitempty"`
	ContactInfo  string  `json:"contactInfo,omitempty"`
}
