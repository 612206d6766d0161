package constant

const (
	// DashPathPrefix is where the interactive dashboard is mounted.
	DashPathPrefix = "/dash"

	DashTitle = "Nicotine Effect on Cell Health"

	ControlNicotine = "nicotine-slider"
	ControlMedicine = "medicine-slider"

	OutputCytokineGraph   = "cytokine-levels-graph"
	OutputCellHealthGraph = "cell-health-graph"

	ChartCytokineLevels = "cytokine-levels"
	ChartCellHealth     = "cell-health"
)
