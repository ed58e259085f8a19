// Package api exposes the HTTP surface: chat (unary and SSE), graph reads,
// simulation, and the per-account conversation and trajectory views.
package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/praxishq/praxis/pkg/agent"
	"github.com/praxishq/praxis/pkg/database"
	"github.com/praxishq/praxis/pkg/graph"
	"github.com/praxishq/praxis/pkg/services"
)

// Server wires the HTTP handlers to the core services.
type Server struct {
	dbClient      *database.Client
	orchestrator  *agent.Orchestrator
	reasoner      *graph.Reasoner
	graphQuery    *graph.Query
	conversations *services.ConversationService
	trajectories  *services.TrajectoryService

	echo       *echo.Echo
	httpServer *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(
	dbClient *database.Client,
	orchestrator *agent.Orchestrator,
	reasoner *graph.Reasoner,
	graphQuery *graph.Query,
	conversations *services.ConversationService,
	trajectories *services.TrajectoryService,
) *Server {
	s := &Server{
		dbClient:      dbClient,
		orchestrator:  orchestrator,
		reasoner:      reasoner,
		graphQuery:    graphQuery,
		conversations: conversations,
		trajectories:  trajectories,
	}

	e := echo.New()
	e.Use(securityHeaders())

	e.GET("/api/v1/health", s.healthHandler)

	api := e.Group("/api/v1", requireAccount())
	api.POST("/chat", s.chatHandler)
	api.POST("/chat/stream", s.chatStreamHandler)
	api.GET("/conversations", s.listConversationsHandler)
	api.GET("/conversations/:id", s.getConversationHandler)
	api.GET("/trajectories", s.listTrajectoriesHandler)
	api.GET("/trajectories/:id", s.getTrajectoryHandler)
	api.GET("/graph", s.getGraphHandler)
	api.GET("/entities/:id", s.getEntityHandler)
	api.POST("/simulate", s.simulateHandler)
	api.POST("/counterfactual", s.counterfactualHandler)

	s.echo = e
	return s
}

// Start serves HTTP on addr, blocking until shutdown or failure.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
