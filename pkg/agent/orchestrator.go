// Package agent runs the per-turn chat state machine: tag extraction, touch
// logging, simulation, prompt assembly, LLM streaming, and trajectory
// completion, yielding stream events to the caller along the way.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/praxishq/praxis/ent/message"
	"github.com/praxishq/praxis/ent/trajectoryevent"
	"github.com/praxishq/praxis/pkg/events"
	"github.com/praxishq/praxis/pkg/graph"
	"github.com/praxishq/praxis/pkg/llm"
	"github.com/praxishq/praxis/pkg/models"
	"github.com/praxishq/praxis/pkg/services"
	"github.com/praxishq/praxis/pkg/tagparse"
)

// EmitFunc delivers one stream event to the caller. A nil EmitFunc runs the
// turn without event delivery (the unary chat path). A returned error aborts
// the turn; the client is gone.
type EmitFunc func(events.StreamEvent) error

// TurnResult is the outcome of one completed chat turn.
type TurnResult struct {
	ConversationID string
	MessageID      string
	Response       string
	Trajectory     *models.TrajectorySummary
}

// Orchestrator drives one chat turn end to end. It is safe for concurrent use;
// each turn owns its trajectory and sequence counter.
type Orchestrator struct {
	engine        *graph.Engine
	reasoner      *graph.Reasoner
	conversations *services.ConversationService
	llm           llm.Client
	logger        *slog.Logger
}

// NewOrchestrator wires the turn state machine. llmClient may be nil: the
// unary path then answers with a deterministic offline response and the
// streaming path emits a single error event.
func NewOrchestrator(engine *graph.Engine, reasoner *graph.Reasoner, conversations *services.ConversationService, llmClient llm.Client) *Orchestrator {
	return &Orchestrator{
		engine:        engine,
		reasoner:      reasoner,
		conversations: conversations,
		llm:           llmClient,
		logger:        slog.Default().With("component", "agent.Orchestrator"),
	}
}

// RunTurn executes the turn. On LLM failure mid-stream the trajectory is left
// open, one error event is emitted, and a nil result is returned with no
// error; the stream itself was the delivery channel. On the unary path the
// same failure surfaces as ErrUnavailable.
func (o *Orchestrator) RunTurn(ctx context.Context, accountID string, req models.ChatRequest, emit EmitFunc) (*TurnResult, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, services.NewValidationError("message", "must not be empty")
	}

	conv, err := o.conversations.GetOrCreate(ctx, accountID, req.ConversationID, req.Message)
	if err != nil {
		return nil, err
	}

	history, err := o.conversations.History(ctx, conv.ID)
	if err != nil {
		return nil, err
	}

	traj, err := o.engine.StartTrajectory(ctx, accountID, req.Message, conv.ID)
	if err != nil {
		return nil, err
	}

	if _, err := o.conversations.AddMessage(ctx, conv.ID, message.RoleUser, req.Message, traj.ID); err != nil {
		return nil, err
	}

	if _, err := o.engine.LogEvent(ctx, traj.ID, trajectoryevent.EventTypeTrajectoryStart, "", nil, nil); err != nil {
		return nil, err
	}
	if err := o.emitTrajectoryEvent(ctx, emit, events.TrajectoryEventPayload{
		EventType: events.TrajectoryEventStart,
	}); err != nil {
		return nil, err
	}

	userMentions := tagparse.ExtractMentions(req.Message)
	decisionCtx := tagparse.ExtractDecisionContext(req.Message)

	touchedThisTurn := make(map[string]bool)
	newEntities := 0
	for _, m := range userMentions {
		entity, created, _, err := o.engine.Touch(ctx, accountID, traj.ID, m, trajectoryevent.EventTypeTouch, map[string]any{
			"name":       m.Name,
			"entityType": m.Type,
			"source":     "user",
		})
		if err != nil {
			return nil, err
		}
		touchedThisTurn[entity.ID] = true
		if created {
			newEntities++
		}
		if err := o.emitTrajectoryEvent(ctx, emit, events.TrajectoryEventPayload{
			EventType:  events.TrajectoryEventTouch,
			EntityID:   entity.ID,
			Name:       entity.Name,
			EntityType: m.Type,
			Source:     "user",
		}); err != nil {
			return nil, err
		}
	}

	var sim *models.SimulationResult
	if len(userMentions) > 0 {
		inputs := make([]models.EntityInput, len(userMentions))
		for i, m := range userMentions {
			inputs[i] = models.EntityInput{Name: m.Name, Type: m.Type}
		}
		sim, err = o.reasoner.Simulate(ctx, inputs)
		if err != nil {
			return nil, err
		}

		simData := map[string]any{
			"resolvedCount":       len(sim.Resolved),
			"unresolvedCount":     len(sim.Unresolved),
			"outcomeCount":        len(sim.Outcomes),
			"differentiatorCount": len(sim.Differentiators),
			"hasPatterns":         sim.Evidence.HasPatterns,
		}
		if _, err := o.engine.LogEvent(ctx, traj.ID, trajectoryevent.EventTypeSimulate, "", simData, nil); err != nil {
			return nil, err
		}
		if err := o.emitTrajectoryEvent(ctx, emit, events.TrajectoryEventPayload{
			EventType:           events.TrajectoryEventSimulate,
			ResolvedCount:       len(sim.Resolved),
			UnresolvedCount:     len(sim.Unresolved),
			OutcomeCount:        len(sim.Outcomes),
			DifferentiatorCount: len(sim.Differentiators),
			HasPatterns:         events.Bool(sim.Evidence.HasPatterns),
		}); err != nil {
			return nil, err
		}
	}

	simulationContext := ""
	if sim != nil && sim.Evidence.HasPatterns {
		simulationContext = graph.FormatForAI(sim)
	}
	messages := BuildMessages(history, req.Message, simulationContext)

	if _, err := o.engine.LogEvent(ctx, traj.ID, trajectoryevent.EventTypeReason, "", map[string]any{
		"action":         "generate_response",
		"simulationUsed": simulationContext != "",
	}, nil); err != nil {
		return nil, err
	}
	if err := o.emitTrajectoryEvent(ctx, emit, events.TrajectoryEventPayload{
		EventType:      events.TrajectoryEventReason,
		Action:         "generate_response",
		SimulationUsed: events.Bool(simulationContext != ""),
	}); err != nil {
		return nil, err
	}

	response, err := o.generate(ctx, messages, userMentions, emit)
	if err != nil {
		if emit != nil {
			// Deliver the failure in-band and leave the trajectory open.
			o.logger.Warn("llm generation failed, aborting turn", "trajectory_id", traj.ID, "error", err)
			emitErr := emit(events.StreamEvent{
				Type: events.StreamTypeError,
				Data: events.ErrorPayload{Message: "response generation failed", Error: err.Error()},
			})
			if emitErr != nil {
				return nil, emitErr
			}
			return nil, nil
		}
		return nil, err
	}

	assistantMentions := tagparse.ExtractMentions(response)
	for _, m := range assistantMentions {
		eventType := trajectoryevent.EventTypeDiscover
		streamType := events.TrajectoryEventDiscover
		if id := o.knownEntityID(ctx, accountID, traj.ID, m); id != "" && touchedThisTurn[id] {
			eventType = trajectoryevent.EventTypeTouch
			streamType = events.TrajectoryEventTouch
		}
		entity, created, _, err := o.engine.Touch(ctx, accountID, traj.ID, m, eventType, map[string]any{
			"name":       m.Name,
			"entityType": m.Type,
			"source":     "assistant",
		})
		if err != nil {
			return nil, err
		}
		touchedThisTurn[entity.ID] = true
		if created {
			newEntities++
		}
		if err := o.emitTrajectoryEvent(ctx, emit, events.TrajectoryEventPayload{
			EventType:  streamType,
			EntityID:   entity.ID,
			Name:       entity.Name,
			EntityType: m.Type,
			Source:     "assistant",
		}); err != nil {
			return nil, err
		}
	}

	referenced := len(userMentions) + len(assistantMentions)
	if _, err := o.engine.LogEvent(ctx, traj.ID, trajectoryevent.EventTypeDecide, "", map[string]any{
		"action":             "respond",
		"entitiesReferenced": referenced,
		"newEntities":        newEntities,
		"simulationUsed":     simulationContext != "",
	}, decisionCtx); err != nil {
		return nil, err
	}
	if err := o.emitTrajectoryEvent(ctx, emit, events.TrajectoryEventPayload{
		EventType:          events.TrajectoryEventDecide,
		Action:             "respond",
		EntitiesReferenced: referenced,
		NewEntities:        newEntities,
		SimulationUsed:     events.Bool(simulationContext != ""),
	}); err != nil {
		return nil, err
	}

	summary, err := o.engine.CompleteTrajectory(ctx, traj.ID, accountID, summarize(req.Message))
	if err != nil {
		return nil, err
	}

	assistantMsg, err := o.conversations.AddMessage(ctx, conv.ID, message.RoleAssistant, response, traj.ID)
	if err != nil {
		return nil, err
	}

	if emit != nil {
		err := emit(events.StreamEvent{
			Type: events.StreamTypeComplete,
			Data: events.CompletePayload{
				ConversationID: conv.ID,
				MessageID:      assistantMsg.ID,
				TrajectoryID:   traj.ID,
				Trajectory:     *summary,
			},
		})
		if err != nil {
			return nil, err
		}
	}

	return &TurnResult{
		ConversationID: conv.ID,
		MessageID:      assistantMsg.ID,
		Response:       response,
		Trajectory:     summary,
	}, nil
}

// generate streams the model response, forwarding chunks as they arrive.
// Without a configured model the unary path gets a deterministic offline
// answer and the streaming path gets an error.
func (o *Orchestrator) generate(ctx context.Context, messages []llm.Message, mentions []tagparse.Mention, emit EmitFunc) (string, error) {
	if o.llm == nil {
		if emit != nil {
			return "", fmt.Errorf("no language model configured: %w", services.ErrUnavailable)
		}
		return offlineResponse(mentions), nil
	}

	ch, err := o.llm.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to start generation: %w", err)
	}

	var full strings.Builder
	for chunk := range ch {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		switch c := chunk.(type) {
		case *llm.TextChunk:
			full.WriteString(c.Content)
			if emit != nil {
				err := emit(events.StreamEvent{
					Type: events.StreamTypeChunk,
					Data: events.ChunkPayload{Content: c.Content, FullContent: full.String()},
				})
				if err != nil {
					return "", err
				}
			}
		case *llm.ErrorChunk:
			return "", fmt.Errorf("generation failed: %s: %w", c.Message, services.ErrUnavailable)
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if full.Len() == 0 {
		return "", fmt.Errorf("model returned no content: %w", services.ErrUnavailable)
	}
	return full.String(), nil
}

// knownEntityID resolves a mention without mutating anything, so the
// touch-or-discover split can be decided before the write.
func (o *Orchestrator) knownEntityID(ctx context.Context, accountID, trajectoryID string, m tagparse.Mention) string {
	resolved, _, err := o.reasoner.Resolve(ctx, []models.EntityInput{{Name: m.Name, Type: m.Type}})
	if err != nil || len(resolved) == 0 {
		return ""
	}
	// Only exact normalized-name hits count; substring fallbacks would turn
	// unrelated entities into false "already touched" verdicts.
	if resolved[0].NormalizedName != tagparse.Normalize(m.Name) {
		return ""
	}
	return resolved[0].ID
}

// offlineResponse is the deterministic no-model answer. It repeats the
// teacher's tags so the graph loop still closes.
func offlineResponse(mentions []tagparse.Mention) string {
	if len(mentions) == 0 {
		return "I'm running without a language model right now, so I can't generate advice. " +
			"Your message was recorded. Try marking up entities like [[topic:fractions]] so they enter the knowledge graph."
	}

	var b strings.Builder
	b.WriteString("I'm running without a language model right now, so I can't generate advice. I recorded these entities from your message: ")
	for i, m := range mentions {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "[[%s:%s]]", m.Type, m.Name)
	}
	b.WriteString(".")
	return b.String()
}

// emitTrajectoryEvent sends a trajectory_event frame, observing cancellation.
func (o *Orchestrator) emitTrajectoryEvent(ctx context.Context, emit EmitFunc, payload events.TrajectoryEventPayload) error {
	if emit == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return emit(events.StreamEvent{Type: events.StreamTypeTrajectoryEvent, Data: payload})
}

// summarize derives the stored trajectory summary from the input text.
func summarize(input string) string {
	const limit = 120
	s := strings.TrimSpace(input)
	runes := []rune(s)
	if len(runes) > limit {
		s = string(runes[:limit])
	}
	return s
}
