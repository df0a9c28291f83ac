package guide

import (
	"context"
	"fmt"
	"io"

	"github.com/julianshen/stylegen/internal/provider"
)

// State tracks the lifecycle of an analysis session.
type State int

const (
	// StateIdle means no request has been issued yet.
	StateIdle State = iota
	// StateAwaiting means a request is in flight.
	StateAwaiting
	// StateCompleted means a response was received and the draft is set.
	StateCompleted
	// StateFailed means the service call failed; the draft is unchanged.
	StateFailed
)

// Session owns the conversation history and the current draft for one run.
// It is the only holder of that state; callers receive it by handle.
type Session struct {
	llm       provider.LLMProvider
	model     string
	maxTokens int
	out       io.Writer

	state    State
	history  []Turn
	draft    string
	hasDraft bool
}

// NewSession creates an idle session bound to a provider, a fixed model
// identifier, and a fixed maximum output size. Progress and usage reports
// are written to out.
func NewSession(llm provider.LLMProvider, model string, maxTokens int, out io.Writer) *Session {
	return &Session{
		llm:       llm,
		model:     model,
		maxTokens: maxTokens,
		out:       out,
		state:     StateIdle,
	}
}

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Draft returns the most recent model-produced text and whether one exists.
func (s *Session) Draft() (string, bool) {
	return s.draft, s.hasDraft
}

// History returns a copy of the conversation so far. Turns alternate
// requester/model, starting with requester; the requester turn of a failed
// submission stays in the history with no model turn after it.
func (s *Session) History() []Turn {
	out := make([]Turn, len(s.history))
	copy(out, s.history)
	return out
}

// Submit appends a requester turn, issues one blocking completion request
// carrying every prior turn for context, and on success appends the model
// turn, replaces the draft, and reports token usage. Valid only from Idle or
// Completed. On a service error no model turn is appended, the draft is
// unchanged, and the session is Failed.
func (s *Session) Submit(ctx context.Context, prompt string) (string, error) {
	if s.state == StateAwaiting {
		return "", fmt.Errorf("submit: a request is already in flight")
	}
	if s.state == StateFailed {
		return "", fmt.Errorf("submit: session has failed")
	}

	s.history = append(s.history, Turn{Role: RoleRequester, Content: prompt})
	s.state = StateAwaiting

	resp, err := s.llm.Complete(ctx, provider.CompletionRequest{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		Messages:  s.messages(),
	})
	if err != nil {
		s.state = StateFailed
		return "", fmt.Errorf("completion request: %w", err)
	}

	s.history = append(s.history, Turn{Role: RoleModel, Content: resp.Text})
	s.draft = resp.Text
	s.hasDraft = true
	s.state = StateCompleted

	fmt.Fprintf(s.out, "\nStyle guide draft generated\n")
	fmt.Fprintf(s.out, "  Input tokens:  %d\n", resp.Usage.InputTokens)
	fmt.Fprintf(s.out, "  Output tokens: %d\n", resp.Usage.OutputTokens)
	fmt.Fprintf(s.out, "  Total tokens:  %d\n\n", resp.Usage.TotalTokens)

	return resp.Text, nil
}

// Refine submits a follow-up instruction against the existing conversation.
// It requires a completed initial analysis.
func (s *Session) Refine(ctx context.Context, instruction string) (string, error) {
	if s.state != StateCompleted {
		return "", fmt.Errorf("refine: no completed analysis to refine")
	}
	return s.Submit(ctx, instruction)
}

// messages converts the full history into provider messages.
func (s *Session) messages() []provider.Message {
	msgs := make([]provider.Message, 0, len(s.history))
	for _, t := range s.history {
		switch t.Role {
		case RoleModel:
			msgs = append(msgs, provider.NewAssistantMessage(t.Content))
		default:
			msgs = append(msgs, provider.NewUserMessage(t.Content))
		}
	}
	return msgs
}
