package models

// EntityChange describes a counterfactual swap: replace From with To.
type EntityChange struct {
	From EntityInput `json:"from"`
	To   EntityInput `json:"to"`
}

// CounterfactualRequest is the body of POST /counterfactual.
type CounterfactualRequest struct {
	BaseEntities []EntityInput `json:"baseEntities"`
	Change       EntityChange  `json:"change"`
}

// OutcomeShift is the probability delta of one outcome between the base and
// alternative simulations.
type OutcomeShift struct {
	Name            string  `json:"name"`
	BaseProbability float64 `json:"baseProbability"`
	AltProbability  float64 `json:"altProbability"`
	Delta           float64 `json:"delta"`
}

// Comparison aggregates the outcome shifts into a net-effect verdict.
type Comparison struct {
	OutcomeShifts  []OutcomeShift `json:"outcomeShifts"`
	NetEffect      string         `json:"netEffect"`
	Recommendation string         `json:"recommendation"`
}

// CounterfactualResult is the body of the POST /counterfactual reply.
type CounterfactualResult struct {
	Original    *SimulationResult `json:"original"`
	Alternative *SimulationResult `json:"alternative"`
	Change      EntityChange      `json:"change"`
	Comparison  Comparison        `json:"comparison"`
}
