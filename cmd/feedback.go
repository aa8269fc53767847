package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathroute/internal/feedback"
	"github.com/abhisek/mathroute/internal/render"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback <problem-id>",
	Short: "Rate a previously answered problem",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rating, _ := cmd.Flags().GetInt("rating")
		clarity, _ := cmd.Flags().GetString("clarity")
		comments, _ := cmd.Flags().GetString("comments")
		helpful, _ := cmd.Flags().GetBool("helpful")

		var c feedback.Clarity
		switch clarity {
		case "very-clear":
			c = feedback.ClarityVeryClear
		case "somewhat-clear":
			c = feedback.ClaritySomewhatClear
		case "unclear":
			c = feedback.ClarityUnclear
		default:
			return fmt.Errorf("invalid clarity %q (use very-clear, somewhat-clear or unclear)", clarity)
		}

		a, st, err := buildAgent(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		imp, err := a.SubmitFeedback(cmd.Context(), args[0], rating, c, comments, helpful)
		if err != nil {
			return err
		}
		fmt.Println(render.Improvement(imp))
		return nil
	},
}

func init() {
	feedbackCmd.Flags().Int("rating", 3, "Accuracy rating from 1 to 5")
	feedbackCmd.Flags().String("clarity", "somewhat-clear", "Clarity: very-clear, somewhat-clear or unclear")
	feedbackCmd.Flags().String("comments", "", "Free-text comments")
	feedbackCmd.Flags().Bool("helpful", true, "Whether the solution was helpful")
}
