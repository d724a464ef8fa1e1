// Roundtable CLI — runs a single debate in-process and prints the streamed
// answer, with no server or database involved.
//
// Exit codes: 0 on a completed debate (including hitting the round limit
// without consensus), 1 on configuration or runtime errors, 2 when no usable
// personalities are available.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/roundtable-ai/roundtable/pkg/debate"
	"github.com/roundtable-ai/roundtable/pkg/llm"
	"github.com/roundtable-ai/roundtable/pkg/models"
	"github.com/roundtable-ai/roundtable/pkg/personality"
	"github.com/roundtable-ai/roundtable/pkg/tokens"
)

const (
	exitOK              = 0
	exitError           = 1
	exitNoPersonalities = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		provider         = flag.String("provider", "anthropic", "LLM provider")
		model            = flag.String("model", "", "model name (required)")
		personalitiesArg = flag.String("personalities", "", "comma-separated personality names (default: all debate personalities)")
		personalitiesDir = flag.String("personalities-dir", "", "directory of personality prompt files")
		maxRounds        = flag.Int("rounds", models.DefaultMaxRounds, "maximum debate rounds")
		temperature      = flag.Float64("temperature", 0.7, "sampling temperature")
		noSynthesis      = flag.Bool("no-synthesis", false, "skip the final synthesis turn")
	)
	flag.Parse()

	// Tokens go to stdout; everything else stays on stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env")
	}

	question := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if question == "" {
		fmt.Fprintln(os.Stderr, "usage: roundtable-cli [flags] <question>")
		flag.PrintDefaults()
		return exitError
	}

	registry, err := personality.NewRegistry(*personalitiesDir, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return exitError
	}

	names := registry.Debate()
	if *personalitiesArg != "" {
		names = nil
		for _, name := range strings.Split(*personalitiesArg, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if !registry.Has(name) || models.IsSystemPersonality(name) {
				fmt.Fprintf(os.Stderr, "unknown personality %q\n", name)
				return exitNoPersonalities
			}
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		fmt.Fprintln(os.Stderr, "no debate personalities available")
		return exitNoPersonalities
	}

	req := models.CreateDebateRequest{
		Question:      question,
		Provider:      *provider,
		Model:         *model,
		Personalities: names,
		MaxRounds:     *maxRounds,
		Temperature:   *temperature,
	}
	if err := req.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return exitError
	}

	d := &models.Debate{
		ID:       uuid.New().String(),
		UserID:   "cli",
		Question: question,
		Provider: req.Provider,
		Model:    req.Model,
		Settings: models.DebateSettings{
			Personalities:    names,
			MaxRounds:        req.MaxRounds,
			Temperature:      req.Temperature,
			IncludeSynthesis: !*noSynthesis,
		},
		Status: models.StatusPending,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	executor := debate.NewExecutor(llm.NewAnyLLMClient(logger), registry, tokens.NewTiktokenCounter(), logger)
	engine := debate.NewEngine(executor, logger)

	sink := debate.NewSink(stop)
	engineDone := make(chan error, 1)
	go func() {
		engineDone <- engine.Run(ctx, d, sink)
	}()

	printStream(sink)

	if err := <-engineDone; err != nil {
		fmt.Fprintln(os.Stderr, "debate did not complete:", err)
		return exitError
	}
	return exitOK
}

// printStream drains the sink, writing tokens to stdout and progress notes to
// stderr. It reads without a context so every queued event is delivered even
// after cancellation.
func printStream(sink *debate.Sink) {
	for {
		ev, ok := sink.Next(context.Background())
		if !ok {
			return
		}
		switch ev := ev.(type) {
		case debate.RoundStartedEvent:
			fmt.Fprintf(os.Stderr, "\n== round %d ==\n", ev.Round)
		case debate.PersonalityStartedEvent:
			fmt.Printf("\n--- %s ---\n", ev.Personality)
		case debate.TokenEvent:
			fmt.Print(ev.Content)
		case debate.ConsensusCheckStartedEvent:
			if ev.Skipped {
				fmt.Fprintf(os.Stderr, "\n[consensus check skipped after round %d]\n", ev.Round)
			}
		case debate.ConsensusCheckedEvent:
			if ev.Reached {
				fmt.Fprintf(os.Stderr, "\n[consensus reached after round %d: %s]\n", ev.Round, ev.Reasoning)
			} else {
				fmt.Fprintf(os.Stderr, "\n[no consensus after round %d]\n", ev.Round)
			}
		case debate.SynthesisStartedEvent:
			fmt.Print("\n=== synthesis ===\n")
		case debate.DebateFailedEvent:
			fmt.Fprintf(os.Stderr, "\n[debate %s]\n", ev.Reason)
		case debate.DebateCompletedEvent:
			fmt.Println()
		}
	}
}
