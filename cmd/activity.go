package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathroute/internal/render"
	"github.com/abhisek/mathroute/internal/store"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show recent routing activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		source, _ := cmd.Flags().GetString("source")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		var acts []store.Activity
		if source != "" {
			acts, err = st.Activities().BySource(ctx, source)
			if err == nil && limit > 0 && len(acts) > limit {
				acts = acts[:limit]
			}
		} else {
			acts, err = st.Activities().Recent(ctx, limit)
		}
		if err != nil {
			return fmt.Errorf("query activity: %w", err)
		}

		fmt.Println(render.Activities(acts))
		return nil
	},
}

func init() {
	activityCmd.Flags().Int("limit", 10, "Maximum entries to show")
	activityCmd.Flags().String("source", "", "Filter by source (user_input, math_solver, knowledge_base, web_search, fallback, user_feedback)")
}
