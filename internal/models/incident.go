package models

// Severity - уровень опасности инцидента
type Severity string

const (
	SeverityRed    Severity = "RED"
	SeverityYellow Severity = "YELLOW"
	SeverityGreen  Severity = "GREEN"
)

// Valid сообщает, известен ли уровень
func (s Severity) Valid() bool {
	switch s {
	case SeverityRed, SeverityYellow, SeverityGreen:
		return true
	}
	return false
}

// Incident - зона опасности, как её отдаёт бэкенд
type Incident struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name" validate:"required"`
	Description  string     `json:"description,omitempty"`
	Severity     Severity   `json:"severity" validate:"required,oneof=RED YELLOW GREEN"`
	Latitude     float64    `json:"latitude" validate:"latitude"`
	Longitude    float64    `json:"longitude" validate:"longitude"`
	ImpactRadius float64    `json:"impactRadius" validate:"gt=0"` // км
	StartedAt    *Timestamp `json:"startedAt,omitempty"`
	EndedAt      *Timestamp `json:"endedAt,omitempty"`
	ScenarioID   *int64     `json:"scenarioId,omitempty"`
}

// Active - инцидент ещё не завершён
func (i *Incident) Active() bool {
	return i.EndedAt == nil || i.EndedAt.IsZero()
}
