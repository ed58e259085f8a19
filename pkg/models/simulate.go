package models

// EntityInput names an entity for simulation, optionally constrained by type.
type EntityInput struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// SimulateRequest is the body of POST /simulate.
type SimulateRequest struct {
	Entities []EntityInput `json:"entities"`
}

// ResolvedEntity is an input name resolved to a graph entity.
type ResolvedEntity struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EntityType string `json:"entityType,omitempty"`
	TouchCount int    `json:"touchCount"`
}

// OutcomeProjection is one row of the projected outcome distribution.
type OutcomeProjection struct {
	EntityID         string  `json:"entityId"`
	Name             string  `json:"name"`
	Probability      float64 `json:"probability"`
	Weight           int     `json:"weight"`
	PositiveCount    int     `json:"positiveCount"`
	NegativeCount    int     `json:"negativeCount"`
	MixedCount       int     `json:"mixedCount"`
	ContributorCount int     `json:"contributorCount"`
}

// Differentiator is a context, constraint, or strategy entity whose outcome
// profile deviates from baseline and which co-occurs with the query set.
type Differentiator struct {
	EntityID             string  `json:"entityId"`
	Name                 string  `json:"name"`
	Role                 string  `json:"role"`
	Effect               string  `json:"effect"`
	Magnitude            float64 `json:"magnitude"`
	CooccurrenceStrength int     `json:"cooccurrenceStrength"`
}

// Evidence summarises how much graph support backs a simulation.
type Evidence struct {
	TotalObservations int  `json:"totalObservations"`
	OutcomeCount      int  `json:"outcomeCount"`
	HasPatterns       bool `json:"hasPatterns"`
}

// SimulationResult is the output of Simulate and the body of the POST /simulate
// reply.
type SimulationResult struct {
	Resolved        []ResolvedEntity    `json:"resolved"`
	Unresolved      []string            `json:"unresolved"`
	Outcomes        []OutcomeProjection `json:"outcomes"`
	Differentiators []Differentiator    `json:"differentiators"`
	Evidence        Evidence            `json:"evidence"`
}
