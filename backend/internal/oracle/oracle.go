package oracle

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"repo-analyst/backend/internal/adapter"
	apperrors "repo-analyst/backend/pkg/errors"
	"repo-analyst/backend/pkg/logger"
)

// ErrMaxToolRounds is returned when a turn exhausts its tool round budget
// without the model producing a final answer.
var ErrMaxToolRounds = errors.New("maximum tool rounds reached")

// Generator produces a model response for a conversation. Implemented by
// adapter.LLMAdapter; tests substitute a scripted fake.
type Generator interface {
	Generate(ctx context.Context, messages []adapter.Message, tools []adapter.Tool) (*adapter.Response, error)
}

// ToolRunner executes one tool call and returns its JSON output. Tool
// failures are embedded in that JSON, never returned as errors.
type ToolRunner interface {
	Execute(ctx context.Context, call adapter.ToolCall) string
}

// ToolInvocation records one tool call made during a turn
type ToolInvocation struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
	Output    string                 `json:"output"`
}

// Turn is one completed request/response cycle, including the tool calls
// the model made along the way
type Turn struct {
	InputMessage  string           `json:"input_message"`
	Invocations   []ToolInvocation `json:"invocations,omitempty"`
	OutputMessage string           `json:"output_message"`
}

// session holds one conversation's accumulated history. Tool chatter is not
// kept; only the user message and the final answer of each turn survive.
type session struct {
	id      string
	name    string
	mu      sync.Mutex
	history []adapter.Message
}

// Oracle is the reasoning runtime: it owns the session store, the immutable
// registered tool list, and the turn loop that lets the model invoke tools
// before answering.
type Oracle struct {
	llm           Generator
	runner        ToolRunner
	tools         []adapter.Tool
	instructions  string
	maxToolRounds int

	mu       sync.RWMutex
	sessions map[string]*session

	logger *zap.Logger
}

// New creates an Oracle. The tool list is fixed for the Oracle's lifetime;
// there is no registration after construction.
func New(llm Generator, runner ToolRunner, tools []adapter.Tool, instructions string, maxToolRounds int) *Oracle {
	if maxToolRounds < 1 {
		maxToolRounds = 1
	}
	return &Oracle{
		llm:           llm,
		runner:        runner,
		tools:         tools,
		instructions:  instructions,
		maxToolRounds: maxToolRounds,
		sessions:      make(map[string]*session),
		logger:        logger.Named("oracle"),
	}
}

// Tools returns a copy of the registered tool list
func (o *Oracle) Tools() []adapter.Tool {
	out := make([]adapter.Tool, len(o.tools))
	copy(out, o.tools)
	return out
}

// CreateSession registers a named conversation and returns its opaque id
func (o *Oracle) CreateSession(name string) string {
	id := uuid.New().String()

	o.mu.Lock()
	o.sessions[id] = &session{id: id, name: name}
	o.mu.Unlock()

	o.logger.Debug("Session created",
		zap.String("session_id", id),
		zap.String("name", name),
	)
	return id
}

// CreateTurn submits a user message to a session and blocks until the model
// produces a final answer, executing any tool calls it makes along the way.
// Concurrent turns on the same session serialize on the session lock.
func (o *Oracle) CreateTurn(ctx context.Context, sessionID, content string) (*Turn, error) {
	o.mu.RLock()
	s, ok := o.sessions[sessionID]
	o.mu.RUnlock()
	if !ok {
		return nil, apperrors.NewSessionNotFound(sessionID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userMsg := adapter.Message{Role: adapter.RoleUser, Content: content}

	messages := make([]adapter.Message, 0, len(s.history)+2)
	messages = append(messages, adapter.Message{Role: adapter.RoleSystem, Content: o.instructions})
	messages = append(messages, s.history...)
	messages = append(messages, userMsg)

	turn := &Turn{InputMessage: content}

	for round := 0; round < o.maxToolRounds; round++ {
		resp, err := o.llm.Generate(ctx, messages, o.tools)
		if err != nil {
			return nil, apperrors.NewOracleTurnFailed(sessionID, err)
		}

		if len(resp.ToolCalls) == 0 {
			turn.OutputMessage = resp.Content
			s.history = append(s.history,
				userMsg,
				adapter.Message{Role: adapter.RoleAssistant, Content: resp.Content},
			)
			o.logger.Debug("Turn completed",
				zap.String("session_id", sessionID),
				zap.Int("tool_invocations", len(turn.Invocations)),
			)
			return turn, nil
		}

		messages = append(messages, adapter.Message{
			Role:      adapter.RoleAssistant,
			Content:   resp.Content,
			ToolCalls: resp.ToolCalls,
		})

		for _, call := range resp.ToolCalls {
			output := o.runner.Execute(ctx, call)
			turn.Invocations = append(turn.Invocations, ToolInvocation{
				Name:      call.Name,
				Arguments: call.Arguments,
				Output:    output,
			})
			messages = append(messages, adapter.Message{
				Role:       adapter.RoleTool,
				Content:    output,
				ToolCallID: call.ID,
			})
		}
	}

	return nil, apperrors.NewOracleTurnFailed(sessionID, ErrMaxToolRounds)
}
