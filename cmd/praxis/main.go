// Praxis server: chat turns feed a shared pedagogical knowledge graph, and
// the graph feeds simulation context back into the chat.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/praxishq/praxis/pkg/agent"
	"github.com/praxishq/praxis/pkg/api"
	"github.com/praxishq/praxis/pkg/database"
	"github.com/praxishq/praxis/pkg/graph"
	"github.com/praxishq/praxis/pkg/llm"
	"github.com/praxishq/praxis/pkg/services"
)

const shutdownTimeout = 15 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting praxis", "http_port", httpPort)

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Nil when OPENAI_API_KEY is unset; chat then runs in offline mode.
	var llmClient llm.Client
	if c := llm.NewFromEnv(); c != nil {
		llmClient = c
		defer func() { _ = c.Close() }()
	}

	engine := graph.NewEngine(dbClient)
	reasoner := graph.NewReasoner(dbClient)
	graphQuery := graph.NewQuery(dbClient)
	conversations := services.NewConversationService(dbClient)
	trajectories := services.NewTrajectoryService(dbClient)
	orchestrator := agent.NewOrchestrator(engine, reasoner, conversations, llmClient)

	server := api.NewServer(dbClient, orchestrator, reasoner, graphQuery, conversations, trajectories)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
}
