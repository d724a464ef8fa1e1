package debate

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/personality"
)

// consensusVerdict is the judge's decision for one round.
type consensusVerdict struct {
	Reached      bool
	Reasoning    string
	InputTokens  int64
	OutputTokens int64
	Estimated    bool
}

// runConsensus asks the judge personality whether the latest round
// converged. It never fails: any error becomes a non-consensus verdict with
// the error as reasoning, so a debate proceeds to at worst max_rounds.
func (e *Executor) runConsensus(ctx context.Context, d *models.Debate, lastRound map[string]string) consensusVerdict {
	prompt, err := e.personalities.Prompt(personality.ConsensusCheck)
	if err != nil {
		return consensusVerdict{Reasoning: err.Error()}
	}

	configs, err := e.modelConfigs(d, 1)
	if err != nil {
		return consensusVerdict{Reasoning: err.Error()}
	}

	userMessage := consensusPrompt(d.Question, d.Settings.Personalities, lastRound)
	res, err := e.streamTurn(ctx, configs[0], personality.ConsensusCheck, prompt, userMessage, personalityTimeout, nil)
	if err != nil {
		e.logger.Warn("consensus check failed, continuing without consensus",
			slog.String("debate_id", d.ID),
			slog.String("error", err.Error()))
		return consensusVerdict{Reasoning: "consensus check failed: " + err.Error()}
	}

	verdict := parseVerdict(res.fullText)
	verdict.InputTokens = res.inputTokens
	verdict.OutputTokens = res.outputTokens
	verdict.Estimated = res.estimated
	return verdict
}

// verdictExcerptLen bounds how much judge output a parse-failure reasoning
// quotes back.
const verdictExcerptLen = 200

// parseVerdict extracts the judge's JSON object from its response. Models
// wrap JSON in prose or code fences, so the parse takes the substring from
// the first '{' to the last '}'. Unparseable output is a non-consensus
// verdict quoting the truncated response.
func parseVerdict(text string) consensusVerdict {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return consensusVerdict{Reasoning: "Could not parse: " + verdictExcerpt(text)}
	}

	var parsed struct {
		Consensus bool   `json:"consensus"`
		Reasoning string `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return consensusVerdict{Reasoning: "Could not parse: " + verdictExcerpt(text)}
	}
	return consensusVerdict{Reached: parsed.Consensus, Reasoning: parsed.Reasoning}
}

func verdictExcerpt(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) > verdictExcerptLen {
		return string(runes[:verdictExcerptLen]) + "..."
	}
	return text
}
