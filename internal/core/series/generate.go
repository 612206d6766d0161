package series

import "github.com/cellviz/nicodash/internal/model"

// linear describes value(step) = Intercept + Slope*step.
type linear struct {
	Intercept float64
	Slope     float64
}

func (l linear) series() (s model.MetricSeries) {
	for step := range s {
		s[step] = l.Intercept + l.Slope*float64(step)
	}
	return s
}

// exposureFormulas: harm grows with every nicotine exposure step.
var exposureFormulas = [len(model.Metrics)]linear{
	model.MetricCytokine:         {Intercept: 10, Slope: 5},
	model.MetricViability:        {Intercept: 100, Slope: -8},
	model.MetricOxidativeStress:  {Intercept: 20, Slope: 7},
	model.MetricMetabolicRate:    {Intercept: 80, Slope: -6},
	model.MetricApoptosisMarkers: {Intercept: 10, Slope: 4},
}

// medicineSlopes are applied from the exposure endpoint at step MaxStep.
var medicineSlopes = [len(model.Metrics)]float64{
	model.MetricCytokine:         -6,
	model.MetricViability:        7,
	model.MetricOxidativeStress:  -6,
	model.MetricMetabolicRate:    5,
	model.MetricApoptosisMarkers: -3,
}

// Generate builds the exposure-direction and medicine-direction lookup tables from their
// closed-form linear formulas.
func Generate() *model.SeriesTables {
	var exposure, medicine [len(model.Metrics)]model.MetricSeries
	for _, m := range model.Metrics {
		exposure[m] = exposureFormulas[m].series()
		medicine[m] = linear{
			Intercept: exposure[m][model.MaxStep],
			Slope:     medicineSlopes[m],
		}.series()
	}
	return model.NewSeriesTables(exposure, medicine)
}
