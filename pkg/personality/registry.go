// Package personality manages the named system prompts debates are composed
// from. Prompts load from a directory of markdown files; the two system
// personalities (consensus_check, synthesizer) have built-in fallbacks so a
// bare install still debates.
package personality

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// System personality names. Never offered as debate participants.
const (
	ConsensusCheck = "consensus_check"
	Synthesizer    = "synthesizer"
)

const defaultConsensusPrompt = `You are a debate moderator judging whether the participants have reached consensus.
Read the latest round of responses and decide whether the participants substantially agree on the answer.
Respond with a single JSON object and nothing else:
{"consensus": true or false, "reasoning": "one or two sentences explaining the decision"}`

const defaultSynthesizerPrompt = `You are the synthesizer of a multi-perspective debate.
You will receive the original question, every round of responses, and the consensus reasoning.
Produce one integrated, self-contained answer that weighs the strongest points from each perspective.
Do not mention the debate process or the participants; answer the question directly.`

// Built-in debate personalities used when the prompt directory is empty or
// unset.
var builtinDebate = map[string]string{
	"analyst":    "You are a rigorous analyst. Break the question into parts, reason step by step, and state your confidence in each conclusion.",
	"skeptic":    "You are a constructive skeptic. Challenge assumptions, look for counterexamples, and point out what could go wrong.",
	"pragmatist": "You are a pragmatist. Favor simple, workable answers over theoretical completeness, and say what you would actually do.",
}

// Registry resolves personality names to system prompts.
type Registry struct {
	logger *slog.Logger

	mu      sync.RWMutex
	prompts map[string]string
}

// NewRegistry loads prompts from dir. Files named <personality>.md or
// <personality>.txt define one personality each; files override built-ins of
// the same name. An empty dir means built-ins only.
func NewRegistry(dir string, logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{
		logger:  logger,
		prompts: make(map[string]string),
	}
	for name, prompt := range builtinDebate {
		r.prompts[name] = prompt
	}
	r.prompts[ConsensusCheck] = defaultConsensusPrompt
	r.prompts[Synthesizer] = defaultSynthesizerPrompt

	if dir == "" {
		return r, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read personalities directory %s: %w", dir, err)
	}
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".md" && ext != ".txt" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read personality %s: %w", name, err)
		}
		prompt := strings.TrimSpace(string(content))
		if prompt == "" {
			logger.Warn("skipping empty personality prompt", slog.String("name", name))
			continue
		}
		r.prompts[name] = prompt
		loaded++
	}
	logger.Info("personality registry loaded",
		slog.String("dir", dir),
		slog.Int("from_files", loaded),
		slog.Int("total", len(r.prompts)))
	return r, nil
}

// Prompt returns the system prompt for a personality.
func (r *Registry) Prompt(name string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	prompt, ok := r.prompts[name]
	if !ok {
		return "", fmt.Errorf("unknown personality %q", name)
	}
	return prompt, nil
}

// Has reports whether a personality exists.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.prompts[name]
	return ok
}

// All returns every personality name, sorted.
func (r *Registry) All() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.prompts))
	for name := range r.prompts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Debate returns personality names eligible as debate participants, sorted.
// System personalities are excluded.
func (r *Registry) Debate() []string {
	all := r.All()
	names := all[:0]
	for _, name := range all {
		if name == ConsensusCheck || name == Synthesizer {
			continue
		}
		names = append(names, name)
	}
	return names
}
