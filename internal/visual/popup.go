package visual

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/shenikar/crisis_map_sync/internal/models"
)

const popupTimeLayout = "02.01.2006 15:04"

var markerPopupTmpl = template.Must(template.New("marker").Parse(`<div class="marker-popup">
<h3><strong>{{.Marker.Name}}</strong></h3>
{{- with .Marker.Address}}
<p><strong>Adresse:</strong> {{.}}</p>
{{- end}}
{{- with .Marker.OpeningHours}}
<p><strong>Åpningstider:</strong> {{.}}</p>
{{- end}}
{{- with .Marker.ContactInfo}}
<p><strong>Kontakt:</strong> {{.}}</p>
{{- end}}
{{- with .Marker.Description}}
<p><strong>Beskrivelse:</strong> {{.}}</p>
{{- end}}
<div class="marker-popup-actions">
{{- if .Sharing}}
<button class="marker-route-button" data-marker-id="{{.Marker.ID}}">Vis rute hit</button>
{{- end}}
</div>
</div>`))

var incidentPopupTmpl = template.Must(template.New("incident").Parse(`<div class="incident-popup">
{{- with .Incident.Name}}
<h3>{{.}}</h3>
{{- end}}
{{- with .Incident.Description}}
<p>{{.}}</p>
{{- end}}
{{- with .Started}}
<p><strong>Startet:</strong> {{.}}</p>
{{- end}}
{{- with .Level}}
<p><strong>Farenivå:</strong> {{.}}</p>
{{- end}}
</div>`))

// MarkerPopup рендерит попап маркера. Кнопка маршрута есть только когда
// пользователь делится позицией: без позиции маршрут не построить.
func MarkerPopup(marker models.Marker, sharing bool) string {
	return render(markerPopupTmpl, struct {
		Marker  models.Marker
		Sharing bool
	}{marker, sharing})
}

// IncidentPopup рендерит попап инцидента
func IncidentPopup(incident models.Incident) string {
	data := struct {
		Incident models.Incident
		Started  string
		Level    string
	}{Incident: incident}

	if incident.StartedAt != nil && !incident.StartedAt.IsZero() {
		data.Started = incident.StartedAt.Format(popupTimeLayout)
	}
	if incident.Severity != "" {
		data.Level = SeverityFor(incident.Severity).Name
	}
	return render(incidentPopupTmpl, data)
}

func render(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// шаблоны статические, ошибка возможна только при записи
		return ""
	}
	return strings.TrimSpace(buf.String())
}
