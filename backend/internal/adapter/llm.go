package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"repo-analyst/backend/pkg/logger"
)

// LLMAdapter handles communication with an OpenAI-compatible inference server
type LLMAdapter struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewLLMAdapter creates a new LLM adapter
func NewLLMAdapter(baseURL, apiKey, modelID string) *LLMAdapter {
	// Most OpenAI-compatible gateways accept any non-empty key
	if apiKey == "" {
		apiKey = "dummy-key"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL + "/v1"

	return &LLMAdapter{
		client: openai.NewClientWithConfig(config),
		model:  modelID,
		logger: logger.Named("adapter"),
	}
}

// Model returns the model id this adapter targets
func (a *LLMAdapter) Model() string {
	return a.model
}

// Tool represents a function that can be called by the model
type Tool struct {
	Type     string             `json:"type"`
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition defines a function that can be called
type FunctionDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// Message roles understood by the adapter
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one entry of a conversation sent to the model
type Message struct {
	Role       string
	Content    string
	ToolCallID string     // set on tool-role messages
	ToolCalls  []ToolCall // set on assistant messages that requested tools
}

// Response represents the model's response
type Response struct {
	Content   string
	ToolCalls []ToolCall
}

// ToolCall represents a function call from the model
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]interface{}
}

// Generate sends a conversation to the model and returns the response
func (a *LLMAdapter) Generate(ctx context.Context, messages []Message, tools []Tool) (*Response, error) {
	openaiMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		openaiMessages = append(openaiMessages, toOpenAIMessage(m))
	}

	// Convert tools to OpenAI format
	openaiTools := make([]openai.Tool, 0, len(tools))
	for _, tool := range tools {
		openaiTools = append(openaiTools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Function.Name,
				Description: tool.Function.Description,
				Parameters:  tool.Function.Parameters,
			},
		})
	}

	req := openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: openaiMessages,
		Tools:    openaiTools,
		// ToolChoice defaults to "auto" when tools are provided
		Temperature: 0.7,
	}

	// Retry logic with linear backoff
	var resp openai.ChatCompletionResponse
	var err error
	maxRetries := 3
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * time.Second
			a.logger.Warn("Retrying LLM request",
				zap.Int("attempt", attempt+1),
				zap.Duration("backoff", backoff),
			)
			time.Sleep(backoff)
		}

		resp, err = a.client.CreateChatCompletion(ctx, req)
		if err == nil {
			break
		}

		a.logger.Error("LLM request failed",
			zap.Error(err),
			zap.Int("attempt", attempt+1),
			zap.String("model", a.model),
		)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to generate response after %d attempts: %w", maxRetries, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in LLM response")
	}

	choice := resp.Choices[0]

	response := &Response{
		Content:   choice.Message.Content,
		ToolCalls: []ToolCall{},
	}

	// Extract tool calls
	for _, tc := range choice.Message.ToolCalls {
		toolCall := ToolCall{
			ID:   tc.ID,
			Name: tc.Function.Name,
		}

		args, err := parseJSONArguments(tc.Function.Arguments)
		if err != nil {
			a.logger.Warn("Failed to parse tool call arguments",
				zap.String("tool_id", tc.ID),
				zap.Error(err),
			)
			args = make(map[string]interface{})
		}
		toolCall.Arguments = args

		response.ToolCalls = append(response.ToolCalls, toolCall)
	}

	a.logger.Debug("LLM response generated",
		zap.String("model", a.model),
		zap.Int("tool_calls", len(response.ToolCalls)),
		zap.Bool("has_content", response.Content != ""),
	)

	return response, nil
}

// toOpenAIMessage converts an adapter message, re-serializing any tool call
// arguments so the request echoes the assistant's tool calls verbatim.
func toOpenAIMessage(m Message) openai.ChatCompletionMessage {
	msg := openai.ChatCompletionMessage{
		Role:       m.Role,
		Content:    m.Content,
		ToolCallID: m.ToolCallID,
	}
	for _, tc := range m.ToolCalls {
		rawArgs, err := json.Marshal(tc.Arguments)
		if err != nil {
			rawArgs = []byte("{}")
		}
		msg.ToolCalls = append(msg.ToolCalls, openai.ToolCall{
			ID:   tc.ID,
			Type: openai.ToolTypeFunction,
			Function: openai.FunctionCall{
				Name:      tc.Name,
				Arguments: string(rawArgs),
			},
		})
	}
	return msg
}

// parseJSONArguments parses the JSON string arguments into a map
func parseJSONArguments(jsonStr string) (map[string]interface{}, error) {
	var args map[string]interface{}
	if jsonStr == "" {
		return make(map[string]interface{}), nil
	}

	err := json.Unmarshal([]byte(jsonStr), &args)
	if err != nil {
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return args, nil
}
