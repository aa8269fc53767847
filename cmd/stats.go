package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathroute/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show stored problem and feedback statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		byCategory, err := st.Problems().StatsByCategory(ctx)
		if err != nil {
			return fmt.Errorf("problem stats: %w", err)
		}
		fbStats, err := st.Feedback().Stats(ctx)
		if err != nil {
			return fmt.Errorf("feedback stats: %w", err)
		}

		fmt.Printf("Problems solved: %d\n", byCategory["total"])
		categories := make([]string, 0, len(byCategory))
		for c := range byCategory {
			if c != "total" {
				categories = append(categories, c)
			}
		}
		sort.Strings(categories)
		for _, c := range categories {
			fmt.Printf("  %-14s %d\n", c, byCategory[c])
		}

		fmt.Printf("Feedback entries: %d\n", fbStats.Total)
		if fbStats.Total > 0 {
			fmt.Printf("  average rating  %.1f/5\n", fbStats.AverageRating)
			fmt.Printf("  found helpful   %.0f%%\n", fbStats.HelpfulPercentage)
		}
		return nil
	},
}
