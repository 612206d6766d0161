package model

import "fmt"

// Metric is one of the five synthetic cell-health metrics.
type Metric int

const (
	MetricCytokine Metric = iota
	MetricViability
	MetricOxidativeStress
	MetricMetabolicRate
	MetricApoptosisMarkers
)

// Metrics lists every metric in display order.
var Metrics = [...]Metric{
	MetricCytokine,
	MetricViability,
	MetricOxidativeStress,
	MetricMetabolicRate,
	MetricApoptosisMarkers,
}

var metricKeys = [...]string{
	"cytokine",
	"viability",
	"oxidative_stress",
	"metabolic_rate",
	"apoptosis_markers",
}

var metricLabels = [...]string{
	"Cytokine Levels",
	"Viability",
	"Oxidative Stress",
	"Metabolic Rate",
	"Apoptosis Markers",
}

func (m Metric) Valid() bool {
	return m >= MetricCytokine && m <= MetricApoptosisMarkers
}

func (m Metric) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metricKeys[m]
}

// Label is the category label the metric is charted under.
func (m Metric) Label() string {
	if !m.Valid() {
		return m.String()
	}
	return metricLabels[m]
}

func ParseMetric(s string) (Metric, error) {
	for i, k := range metricKeys {
		if k == s {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q", s)
}

// Direction tells which family of series a value comes from.
type Direction string

const (
	// DirectionExposure series worsen with every nicotine exposure step.
	DirectionExposure Direction = "exposure"
	// DirectionMedicine series recover from the worst exposure endpoint.
	DirectionMedicine Direction = "medicine"
)

func (d Direction) Valid() bool {
	return d == DirectionExposure || d == DirectionMedicine
}
