package model

// SelectionState is the pair of slider levels currently chosen on the dashboard.
type SelectionState struct {
	Nicotine int `json:"nicotine" query:"nicotine" validate:"min=0,max=10"`
	Medicine int `json:"medicine" query:"medicine" validate:"min=0,max=10"`
}

// MetricSnapshot is the five scalar metric values selected for a SelectionState.
type MetricSnapshot struct {
	Cytokine         float64   `json:"cytokine"`
	Viability        float64   `json:"viability"`
	OxidativeStress  float64   `json:"oxidative_stress"`
	MetabolicRate    float64   `json:"metabolic_rate"`
	ApoptosisMarkers float64   `json:"apoptosis_markers"`
	Direction        Direction `json:"direction"`
}

// Value returns the snapshot value of m.
func (s *MetricSnapshot) Value(m Metric) float64 {
	switch m {
	case MetricCytokine:
		return s.Cytokine
	case MetricViability:
		return s.Viability
	case MetricOxidativeStress:
		return s.OxidativeStress
	case MetricMetabolicRate:
		return s.MetabolicRate
	case MetricApoptosisMarkers:
		return s.ApoptosisMarkers
	default:
		return 0
	}
}

// Set writes v as the snapshot value of m.
func (s *MetricSnapshot) Set(m Metric, v float64) {
	switch m {
	case MetricCytokine:
		s.Cytokine = v
	case MetricViability:
		s.Viability = v
	case MetricOxidativeStress:
		s.OxidativeStress = v
	case MetricMetabolicRate:
		s.MetabolicRate = v
	case MetricApoptosisMarkers:
		s.ApoptosisMarkers = v
	}
}
