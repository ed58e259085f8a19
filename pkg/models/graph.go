package models

// GraphNode is one entity in a subgraph view.
type GraphNode struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	EntityType      string `json:"entityType,omitempty"`
	TouchCount      int    `json:"touchCount"`
	TrajectoryCount int    `json:"trajectoryCount"`
}

// GraphEdgeView is one directed edge in a subgraph view.
type GraphEdgeView struct {
	SourceID         string `json:"sourceId"`
	TargetID         string `json:"targetId"`
	Weight           int    `json:"weight"`
	TrajectoryCount  int    `json:"trajectoryCount"`
	RelationshipType string `json:"relationshipType,omitempty"`
}

// GraphView is the body of the GET /graph reply.
type GraphView struct {
	Nodes []GraphNode     `json:"nodes"`
	Edges []GraphEdgeView `json:"edges"`
}

// ConnectedEntity is a neighbour of an entity, with the connecting edge weight.
type ConnectedEntity struct {
	Entity GraphNode `json:"entity"`
	Weight int       `json:"weight"`
}

// TrajectoryRef is a lightweight reference to a trajectory that touched an
// entity.
type TrajectoryRef struct {
	ID        string `json:"id"`
	Summary   string `json:"summary,omitempty"`
	StartedAt int64  `json:"startedAt"`
}

// EntityDetail is the body of the GET /entities/:id reply.
type EntityDetail struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	EntityType         string            `json:"entityType,omitempty"`
	Description        string            `json:"description,omitempty"`
	TouchCount         int               `json:"touchCount"`
	TrajectoryCount    int               `json:"trajectoryCount"`
	ContributorCount   int               `json:"contributorCount"`
	FirstSeen          int64             `json:"firstSeen"`
	LastSeen           int64             `json:"lastSeen"`
	Connected          []ConnectedEntity `json:"connected"`
	RecentTrajectories []TrajectoryRef   `json:"recentTrajectories"`
}
