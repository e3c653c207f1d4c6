package visual

import (
	"bytes"
	"testing"
	"time"

	"github.com/shenikar/crisis_map_sync/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingSpecs_CountAndOrder(t *testing.T) {
	cases := map[models.Severity]int{
		models.SeverityRed:    3,
		models.SeverityYellow: 2,
		models.SeverityGreen:  1,
		"PURPLE":              1, // неизвестный уровень -> GREEN
	}

	for severity, want := range cases {
		rings := RingSpecs(severity)
		require.Len(t, rings, want, "severity %s", severity)
		for i := 1; i < len(rings); i++ {
			assert.GreaterOrEqual(t, rings[i-1].RadiusMultiplier, rings[i].RadiusMultiplier, "severity %s", severity)
		}
	}
}

func TestRingSpecs_ReturnsCopy(t *testing.T) {
	rings := RingSpecs(models.SeverityRed)
	rings[0].Color = "#000000"

	assert.Equal(t, colorGreen, RingSpecs(models.SeverityRed)[0].Color)
}

func TestIncidentRings(t *testing.T) {
	inc := models.Incident{
		ID:           7,
		Name:         "Flom",
		Severity:     models.SeverityRed,
		Latitude:     63.43,
		Longitude:    10.39,
		ImpactRadius: 2,
	}

	shape := IncidentRings(inc)

	assert.Equal(t, int64(7), shape.IncidentID)
	assert.Equal(t, 63.43, shape.Anchor.Lat)
	require.Len(t, shape.Circles, 3)
	assert.InDelta(t, 2400.0, shape.Circles[0].RadiusMeters, 1e-9)
	assert.InDelta(t, 2200.0, shape.Circles[1].RadiusMeters, 1e-9)
	assert.InDelta(t, 2000.0, shape.Circles[2].RadiusMeters, 1e-9)
	assert.Equal(t, colorRed, shape.Circles[2].Ring.Color)
	assert.Contains(t, shape.Popup, "Kritisk farenivå")
}

func TestIncidentPopup_EscapesAndFormats(t *testing.T) {
	started := time.Date(2024, 5, 1, 13, 45, 0, 0, time.UTC)
	inc := models.Incident{
		Name:        "<script>x</script>",
		Description: "Stengt vei",
		Severity:    models.SeverityYellow,
		StartedAt:   models.NewTimestamp(started),
	}

	html := IncidentPopup(inc)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "01.05.2024 13:45")
	assert.Contains(t, html, "Forhøyet farenivå")
}

func TestMarkerPopup_RouteButtonOnlyWhenSharing(t *testing.T) {
	m := models.Marker{ID: 12, Name: "Legevakt", Address: "Gate 1", OpeningHours: "24/7"}

	withRoute := MarkerPopup(m, true)
	withoutRoute := MarkerPopup(m, false)

	assert.Contains(t, withRoute, `data-marker-id="12"`)
	assert.Contains(t, withRoute, "Åpningstider:")
	assert.NotContains(t, withoutRoute, "marker-route-button")
	assert.NotContains(t, withoutRoute, "Kontakt:")
}

func TestProcessMarkerTypes(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)

	types := ProcessMarkerTypes([]string{"SHELTER", "UNKNOWN", "HOSPITAL", "SHELTER"}, log)

	require.Len(t, types, 2)
	assert.Equal(t, "HOSPITAL", types[0].ID)
	assert.Equal(t, "Sykehus", types[0].DisplayName)
	assert.True(t, types[0].Visible)
	assert.Equal(t, "SHELTER", types[1].ID)
	assert.Contains(t, buf.String(), "UNKNOWN")
}

func TestFormatTypeTitle(t *testing.T) {
	assert.Equal(t, "Hjertestarter", FormatTypeTitle("HEARTSTARTER"))
	assert.Equal(t, "Bunker", FormatTypeTitle("BUNKER"))
	assert.Equal(t, "Depot", FormatTypeTitle("depot"))
	assert.Equal(t, "", FormatTypeTitle(""))
}

func TestAdminMarkerTypes(t *testing.T) {
	assert.Len(t, AdminMarkerTypes(), len(MarkerConfigs()))
}
