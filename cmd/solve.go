package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathroute/internal/agent"
	"github.com/abhisek/mathroute/internal/render"
)

var solveCmd = &cobra.Command{
	Use:   "solve <question>",
	Short: "Answer a math question with a step-by-step solution",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := buildAgent(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := a.Solve(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			if errors.Is(err, agent.ErrInvalidInput) {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		fmt.Println(render.Solution(res))
		return nil
	},
}

func init() {
	solveCmd.Flags().Bool("json", false, "Emit the response envelope as JSON")
}
