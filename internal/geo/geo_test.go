package geo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversine_KnownDistance(t *testing.T) {
	trondheim := LatLng{Lat: 63.4305, Lng: 10.3951}
	oslo := LatLng{Lat: 59.9139, Lng: 10.7522}

	d := Haversine(trondheim, oslo)

	// ~391 км по прямой
	assert.InDelta(t, 391.0, d, 3.0)
	assert.InDelta(t, 0.0, Haversine(oslo, oslo), 1e-9)
}

func TestBoundsCenter(t *testing.T) {
	b := Bounds{
		SouthWest: LatLng{Lat: 63.40, Lng: 10.30},
		NorthEast: LatLng{Lat: 63.46, Lng: 10.50},
	}
	c := b.Center()
	assert.InDelta(t, 63.43, c.Lat, 1e-9)
	assert.InDelta(t, 10.40, c.Lng, 1e-9)
}

func TestQueryRadiusKm_NeverUndershoots(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		lat := rnd.Float64()*160 - 80
		lng := rnd.Float64()*340 - 170
		dLat := rnd.Float64() * 5
		dLng := rnd.Float64() * 5
		b := Bounds{
			SouthWest: LatLng{Lat: lat, Lng: lng},
			NorthEast: LatLng{Lat: lat + dLat/2, Lng: lng + dLng/2},
		}

		radius := QueryRadiusKm(b)
		exact := Haversine(b.Center(), b.NorthEast)

		require.GreaterOrEqual(t, radius, exact, "bounds %+v", b)
		require.GreaterOrEqual(t, radius, exact*QueryBuffer-1e-9, "bounds %+v", b)
	}
}

func TestQueryRadiusKm_TinyViewport(t *testing.T) {
	b := Bounds{
		SouthWest: LatLng{Lat: 63.43, Lng: 10.39},
		NorthEast: LatLng{Lat: 63.4301, Lng: 10.3901},
	}
	assert.Greater(t, QueryRadiusKm(b), 0.0)
	assert.GreaterOrEqual(t, QueryRadiusKm(b), Haversine(b.Center(), b.NorthEast))
}

func TestQueryFor_Defaults(t *testing.T) {
	q := QueryFor(nil)
	assert.Equal(t, DefaultLat, q.Center.Lat)
	assert.Equal(t, DefaultLng, q.Center.Lng)
	assert.Equal(t, DefaultRadiusKm, q.RadiusKm)
}

func TestBoundsOfAndPad(t *testing.T) {
	b := BoundsOf(LatLng{Lat: 1, Lng: 5}, LatLng{Lat: 3, Lng: 2})
	assert.Equal(t, LatLng{Lat: 1, Lng: 2}, b.SouthWest)
	assert.Equal(t, LatLng{Lat: 3, Lng: 5}, b.NorthEast)

	p := b.Pad(0.5)
	assert.Equal(t, LatLng{Lat: 0, Lng: 0.5}, p.SouthWest)
	assert.Equal(t, LatLng{Lat: 4, Lng: 6.5}, p.NorthEast)
	assert.True(t, p.Valid())
}

func TestContainsAndAround(t *testing.T) {
	b := Around(LatLng{Lat: 63.4, Lng: 10.4}, 0.5)

	assert.True(t, b.Contains(LatLng{Lat: 63.4, Lng: 10.4}))
	assert.True(t, b.Contains(LatLng{Lat: 63.9, Lng: 9.9}))
	assert.False(t, b.Contains(LatLng{Lat: 64.0, Lng: 10.4}))
	assert.InDelta(t, 62.9, b.SouthWest.Lat, 1e-9)
}
