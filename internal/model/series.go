package model

const (
	MinStep = 0
	MaxStep = 10
	// Steps is the length of every MetricSeries, steps 0 through 10 inclusive.
	Steps = MaxStep - MinStep + 1
)

// MetricSeries is one metric's value at each integer step. Being an array, it is copied
// whenever it is handed out.
type MetricSeries [Steps]float64

// SeriesTables holds the exposure-direction and medicine-direction series of every metric.
// It has no mutating methods; construct it through series.Generate.
type SeriesTables struct {
	exposure [len(Metrics)]MetricSeries
	medicine [len(Metrics)]MetricSeries
}

func NewSeriesTables(exposure, medicine [len(Metrics)]MetricSeries) *SeriesTables {
	return &SeriesTables{
		exposure: exposure,
		medicine: medicine,
	}
}

// Series returns a copy of the series for the given direction and metric.
// ok is false when either argument is unknown.
func (t *SeriesTables) Series(d Direction, m Metric) (s MetricSeries, ok bool) {
	if !m.Valid() {
		return s, false
	}
	switch d {
	case DirectionExposure:
		return t.exposure[m], true
	case DirectionMedicine:
		return t.medicine[m], true
	default:
		return s, false
	}
}

// At returns the value of the given series at step. Callers are expected to have
// validated step against [MinStep, MaxStep].
func (t *SeriesTables) At(d Direction, m Metric, step int) float64 {
	if d == DirectionMedicine {
		return t.medicine[m][step]
	}
	return t.exposure[m][step]
}

// SeriesView is the JSON representation of SeriesTables.
type SeriesView struct {
	Steps    int                     `json:"steps"`
	Exposure map[string]MetricSeries `json:"exposure"`
	Medicine map[string]MetricSeries `json:"medicine"`
}

func (t *SeriesTables) View() *SeriesView {
	v := &SeriesView{
		Steps:    Steps,
		Exposure: make(map[string]MetricSeries, len(Metrics)),
		Medicine: make(map[string]MetricSeries, len(Metrics)),
	}
	for _, m := range Metrics {
		v.Exposure[m.String()] = t.exposure[m]
		v.Medicine[m.String()] = t.medicine[m]
	}
	return v
}
