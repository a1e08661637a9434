package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"repo-analyst/backend/internal/adapter"
	"repo-analyst/backend/internal/github"
	"repo-analyst/backend/internal/oracle"
	"repo-analyst/backend/internal/tools"
	"repo-analyst/backend/internal/websearch"
	"repo-analyst/backend/pkg/config"
	"repo-analyst/backend/pkg/logger"
)

// sessionNamePrefix is used when the caller does not name a session
const sessionNamePrefix = "github_analysis_"

// Runtime is the reasoning-runtime surface the Analyst depends on.
// Implemented by oracle.Oracle; tests substitute a fake.
type Runtime interface {
	CreateSession(name string) string
	CreateTurn(ctx context.Context, sessionID, message string) (*oracle.Turn, error)
	Tools() []adapter.Tool
}

// Analyst owns conversation sessions and mediates turns with the reasoning
// runtime. It does not inspect or control which tools the runtime invokes.
type Analyst struct {
	runtime Runtime
	logger  *zap.Logger
}

// New wires the full analyst stack from configuration: GitHub client,
// Tavily client, tool executor, LLM adapter, and the reasoning runtime
// with the fixed tool set.
func New(cfg *config.Config) *Analyst {
	log := logger.Get()

	gh := github.NewClient(cfg.GitHubToken)
	ws := websearch.NewClient(cfg.TavilyAPIKey)
	executor := tools.NewExecutor(gh, ws, log)

	registered := tools.GetAllTools(executor.WebSearchEnabled())

	llm := adapter.NewLLMAdapter(cfg.InferenceURL, cfg.LLMAPIKey, cfg.ModelID)
	runtime := oracle.New(llm, executor, registered, analystInstructions, cfg.MaxToolRounds)

	githubStatus := "Public (Rate Limited)"
	if gh.Authenticated() {
		githubStatus = "Authenticated"
	}
	webSearchStatus := "Disabled (TAVILY_API_KEY not set)"
	if executor.WebSearchEnabled() {
		webSearchStatus = "Enabled"
	}

	log.Info("GitHub Project Analyst initialized",
		zap.String("github_api", githubStatus),
		zap.String("web_search", webSearchStatus),
		zap.Int("tools", len(registered)),
		zap.String("model", llm.Model()),
	)

	return NewAnalyst(runtime)
}

// NewAnalyst creates an Analyst on an existing runtime
func NewAnalyst(rt Runtime) *Analyst {
	return &Analyst{
		runtime: rt,
		logger:  logger.Named("agent"),
	}
}

// CreateSession creates a new analysis session and returns its id. When no
// name is given one is synthesized from a short random identifier.
func (a *Analyst) CreateSession(name string) string {
	if name == "" {
		name = sessionNamePrefix + shortID()
	}

	id := a.runtime.CreateSession(name)

	a.logger.Info("Created new session",
		zap.String("name", name),
		zap.String("session_id", id),
	)
	return id
}

// Send submits a message as a new turn in the given session and blocks
// until the runtime produces the final answer text. Runtime failures are
// returned as errors for the caller to report.
func (a *Analyst) Send(ctx context.Context, message, sessionID string) (string, error) {
	a.logger.Debug("Dispatching turn",
		zap.String("session_id", sessionID),
	)

	turn, err := a.runtime.CreateTurn(ctx, sessionID, message)
	if err != nil {
		return "", fmt.Errorf("turn failed: %w", err)
	}

	return turn.OutputMessage, nil
}

// Tools returns the runtime's registered tool list
func (a *Analyst) Tools() []adapter.Tool {
	return a.runtime.Tools()
}

// shortID returns 8 hex characters of a random uuid
func shortID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
