package model

// Scenario is one of the three fixed benchmark bands. The set is closed:
// every calculation run produces exactly these three.
type Scenario string

const (
	ScenarioConservative Scenario = "conservative"
	ScenarioModerate     Scenario = "moderate"
	ScenarioAggressive   Scenario = "aggressive"
)

// Scenarios lists the bands in evaluation order.
var Scenarios = []Scenario{ScenarioConservative, ScenarioModerate, ScenarioAggressive}
