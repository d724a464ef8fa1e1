package debate

import (
	"context"
	"fmt"

	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/personality"
)

// runSynthesis streams the synthesizer turn over the full transcript and the
// consensus reasoning. Tokens flow through the sink tagged with the
// synthesizer personality.
func (e *Executor) runSynthesis(ctx context.Context, d *models.Debate, rounds []map[string]string, reasoning string, sink *Sink) (turnResult, error) {
	prompt, err := e.personalities.Prompt(personality.Synthesizer)
	if err != nil {
		return turnResult{}, err
	}

	configs, err := e.modelConfigs(d, 1)
	if err != nil {
		return turnResult{}, err
	}

	userMessage := synthesisPrompt(d.Question, d.Settings.Personalities, rounds, reasoning)
	res, err := e.streamTurn(ctx, configs[0], personality.Synthesizer, prompt, userMessage, synthesisTimeout, sink)
	if err != nil {
		return turnResult{}, fmt.Errorf("synthesis: %w", err)
	}
	return res, nil
}
