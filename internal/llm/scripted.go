package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// Outcome is one scripted reply for a ScriptedProvider.
type Outcome struct {
	JSON  string
	Usage Usage
	Err   error
}

// ScriptedProvider replays a fixed sequence of outcomes and records every
// request it receives. Tests drive the provider stack with it; an exhausted
// script reports the provider as unavailable.
type ScriptedProvider struct {
	mu     sync.Mutex
	script []Outcome

	// Calls holds every request seen, in order.
	Calls []Request
}

// NewScriptedProvider creates a provider that replays the given outcomes.
func NewScriptedProvider(script ...Outcome) *ScriptedProvider {
	return &ScriptedProvider{script: script}
}

func (p *ScriptedProvider) Classify(_ context.Context, req Request) (*Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Calls = append(p.Calls, req)

	if len(p.script) == 0 {
		return nil, &ErrProviderUnavailable{}
	}
	next := p.script[0]
	p.script = p.script[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{
		Content: json.RawMessage(next.JSON),
		Usage:   next.Usage,
		Model:   "scripted",
	}, nil
}

func (p *ScriptedProvider) ModelID() string {
	return "scripted"
}

// Push appends an outcome to the script.
func (p *ScriptedProvider) Push(o Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.script = append(p.script, o)
}

// CallCount returns how many Classify calls were made.
func (p *ScriptedProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Calls)
}
