package projection

// ScenarioOffsetPoints is the fixed percentage-point shift applied to the
// appreciation and rent growth rates for the conservative and optimistic cases.
const ScenarioOffsetPoints = 1.0

// Scenario names
const (
	ScenarioConservative = "conservative"
	ScenarioModerate     = "moderate"
	ScenarioOptimistic   = "optimistic"
)

// DefaultScenarios returns the three fixed scenarios in display order
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: ScenarioConservative, AppreciationDelta: -ScenarioOffsetPoints, RentGrowthDelta: -ScenarioOffsetPoints},
		{Name: ScenarioModerate},
		{Name: ScenarioOptimistic, AppreciationDelta: ScenarioOffsetPoints, RentGrowthDelta: ScenarioOffsetPoints},
	}
}

// ScenarioNames lists the default scenario names in display order
func ScenarioNames() []string {
	return []string{ScenarioConservative, ScenarioModerate, ScenarioOptimistic}
}
