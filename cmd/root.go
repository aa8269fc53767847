package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathroute/internal/agent"
	"github.com/abhisek/mathroute/internal/feedback"
	"github.com/abhisek/mathroute/internal/guardrail"
	"github.com/abhisek/mathroute/internal/knowledge"
	"github.com/abhisek/mathroute/internal/llm"
	"github.com/abhisek/mathroute/internal/logger"
	"github.com/abhisek/mathroute/internal/solver"
	"github.com/abhisek/mathroute/internal/store"
	"github.com/abhisek/mathroute/internal/websearch"
)

var rootCmd = &cobra.Command{
	Use:   "mathroute",
	Short: "Routing agent for math questions",
	Long: "Mathroute answers free-text math questions with step-by-step solutions,\n" +
		"routing each one through a symbolic solver, a knowledge base and web search.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHROUTE_DB env var)")
	rootCmd.PersistentFlags().String("log", "", "Logging mode: dev or prod (default silent)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHROUTE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func resolveLogger(cmd *cobra.Command) *logger.Logger {
	mode, _ := cmd.Flags().GetString("log")
	if mode == "" {
		return logger.Nop()
	}
	log, err := logger.New(mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init failed, continuing silent:", err)
		return logger.Nop()
	}
	return log
}

// buildAgent opens the store and assembles the full routing pipeline.
// The caller must Close the returned store.
func buildAgent(cmd *cobra.Command) (*agent.Agent, *store.Store, error) {
	ctx := cmd.Context()
	log := resolveLogger(cmd)

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	retriever := knowledge.NewRetriever()
	retriever.Seed()

	// The LLM is optional. Without a key, synthesis and feedback analysis
	// run on their heuristic paths.
	var provider llm.Provider
	if cfg, ok := llm.DiscoverConfig(); ok {
		provider, err = llm.NewProvider(ctx, cfg, log)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			provider = nil
		}
	}

	searchCfg, _ := websearch.DiscoverConfig()

	a := agent.New(agent.Deps{
		Validator:   guardrail.New(),
		Solver:      solver.New(),
		Retriever:   retriever,
		Search:      websearch.NewClient(searchCfg, log),
		Synthesizer: &websearch.Synthesizer{Provider: provider},
		Learner:     feedback.NewLearner(provider, log),
		Store:       st,
		Log:         log,
	})
	return a, st, nil
}
