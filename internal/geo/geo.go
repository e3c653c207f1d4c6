// Package geo holds the small amount of spherical math the map view needs.
package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusKm - средний радиус Земли
const EarthRadiusKm = 6371.0

// QueryBuffer - запас, с которым запрашиваются маркеры вокруг видимой области
const QueryBuffer = 1.2

// Значения по умолчанию, когда границы карты неизвестны (Тронхейм)
const (
	DefaultLat      = 63.4305
	DefaultLng      = 10.3951
	DefaultRadiusKm = 10.0
)

// LatLng - точка в градусах
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid проверяет диапазоны координат
func (p LatLng) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

func (p LatLng) s2() s2.LatLng {
	return s2.LatLngFromDegrees(p.Lat, p.Lng)
}

// Bounds - видимая область карты
type Bounds struct {
	SouthWest LatLng `json:"southWest"`
	NorthEast LatLng `json:"northEast"`
}

// Center возвращает центр прямоугольника (как у Leaflet: среднее по широте и долготе)
func (b Bounds) Center() LatLng {
	return LatLng{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}

// Valid проверяет, что углы корректны и не перепутаны
func (b Bounds) Valid() bool {
	return b.SouthWest.Valid() && b.NorthEast.Valid() &&
		b.SouthWest.Lat <= b.NorthEast.Lat && b.SouthWest.Lng <= b.NorthEast.Lng
}

// Contains сообщает, лежит ли точка внутри области
func (b Bounds) Contains(p LatLng) bool {
	return p.Lat >= b.SouthWest.Lat && p.Lat <= b.NorthEast.Lat &&
		p.Lng >= b.SouthWest.Lng && p.Lng <= b.NorthEast.Lng
}

// Around возвращает квадрат со стороной 2*halfDeg вокруг точки
func Around(p LatLng, halfDeg float64) Bounds {
	return Bounds{
		SouthWest: LatLng{Lat: p.Lat - halfDeg, Lng: p.Lng - halfDeg},
		NorthEast: LatLng{Lat: p.Lat + halfDeg, Lng: p.Lng + halfDeg},
	}
}

// Pad расширяет область на долю её размера с каждой стороны
func (b Bounds) Pad(ratio float64) Bounds {
	dLat := (b.NorthEast.Lat - b.SouthWest.Lat) * ratio
	dLng := (b.NorthEast.Lng - b.SouthWest.Lng) * ratio
	return Bounds{
		SouthWest: LatLng{Lat: b.SouthWest.Lat - dLat, Lng: b.SouthWest.Lng - dLng},
		NorthEast: LatLng{Lat: b.NorthEast.Lat + dLat, Lng: b.NorthEast.Lng + dLng},
	}
}

// BoundsOf возвращает минимальный прямоугольник вокруг точек
func BoundsOf(points ...LatLng) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	b := Bounds{SouthWest: points[0], NorthEast: points[0]}
	for _, p := range points[1:] {
		b.SouthWest.Lat = math.Min(b.SouthWest.Lat, p.Lat)
		b.SouthWest.Lng = math.Min(b.SouthWest.Lng, p.Lng)
		b.NorthEast.Lat = math.Max(b.NorthEast.Lat, p.Lat)
		b.NorthEast.Lng = math.Max(b.NorthEast.Lng, p.Lng)
	}
	return b
}

// Haversine - расстояние по большой окружности в километрах
func Haversine(a, b LatLng) float64 {
	return a.s2().Distance(b.s2()).Radians() * EarthRadiusKm
}

// QueryRadiusKm - радиус запроса маркеров для видимой области:
// расстояние от центра до северо-восточного угла с запасом 20%.
// Округление до 0.1 км только вверх, чтобы запас не терялся.
func QueryRadiusKm(b Bounds) float64 {
	raw := Haversine(b.Center(), b.NorthEast) * QueryBuffer
	return math.Ceil(raw*10) / 10
}

// Query - параметры запроса маркеров: центр и радиус
type Query struct {
	Center   LatLng
	RadiusKm float64
}

// QueryFor строит запрос для области; nil - значения по умолчанию
func QueryFor(b *Bounds) Query {
	if b == nil {
		return Query{
			Center:   LatLng{Lat: DefaultLat, Lng: DefaultLng},
			RadiusKm: DefaultRadiusKm,
		}
	}
	return Query{Center: b.Center(), RadiusKm: QueryRadiusKm(*b)}
}
