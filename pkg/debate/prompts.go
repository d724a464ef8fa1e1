package debate

import (
	"fmt"
	"strings"
)

const (
	// prevResponseBudget caps each prior-round response quoted into a
	// personality's prompt.
	prevResponseBudget = 2000

	// synthesisResponseBudget caps each response quoted into the synthesis
	// prompt, which sees every round.
	synthesisResponseBudget = 1500

	truncationMarker = "…"
)

// truncate cuts s to at most budget characters, appending the marker when it
// was cut.
func truncate(s string, budget int) string {
	if len(s) <= budget {
		return s
	}
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	return string(runes[:budget]) + truncationMarker
}

// roundPrompt builds the user message for one personality turn: the question
// plus a transcript of the previous round only. Round 1 sees the bare
// question.
func roundPrompt(question string, personalities []string, prevRound map[string]string) string {
	if len(prevRound) == 0 {
		return question
	}
	var b strings.Builder
	b.WriteString(question)
	b.WriteString("\n\nPrevious round responses:\n")
	// Declared personality order, so prompts are deterministic.
	for _, p := range personalities {
		text, ok := prevRound[p]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n[%s]:\n%s\n", p, truncate(text, prevResponseBudget))
	}
	return b.String()
}

// consensusPrompt builds the judge's user message from the latest round.
func consensusPrompt(question string, personalities []string, lastRound map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question under debate:\n%s\n\nLatest round responses:\n", question)
	for _, p := range personalities {
		text, ok := lastRound[p]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n[%s]:\n%s\n", p, truncate(text, prevResponseBudget))
	}
	b.WriteString("\nHave the participants reached consensus?")
	return b.String()
}

// synthesisPrompt builds the synthesizer's user message from the full
// transcript and the consensus reasoning.
func synthesisPrompt(question string, personalities []string, rounds []map[string]string, reasoning string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Original question:\n%s\n", question)
	for i, round := range rounds {
		fmt.Fprintf(&b, "\nRound %d:\n", i+1)
		for _, p := range personalities {
			text, ok := round[p]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "\n[%s]:\n%s\n", p, truncate(text, synthesisResponseBudget))
		}
	}
	if reasoning != "" {
		fmt.Fprintf(&b, "\nConsensus assessment: %s\n", reasoning)
	}
	b.WriteString("\nProduce the final integrated answer.")
	return b.String()
}

// splitThinking splits a response body on the <think>…</think> convention:
// "X <think>Y</think> Z" yields thinking "Y" and answer "X Z", both trimmed.
// Without a complete block the whole body is the answer. Applying the split
// to its own output is a no-op.
func splitThinking(body string) (thinking, answer string) {
	const openTag, closeTag = "<think>", "</think>"

	start := strings.Index(body, openTag)
	if start < 0 {
		return "", strings.TrimSpace(body)
	}
	rest := body[start+len(openTag):]
	end := strings.Index(rest, closeTag)
	if end < 0 {
		return "", strings.TrimSpace(body)
	}
	thinking = strings.TrimSpace(rest[:end])
	answer = strings.TrimSpace(strings.TrimSpace(body[:start]) + " " + strings.TrimSpace(rest[end+len(closeTag):]))
	return thinking, answer
}
