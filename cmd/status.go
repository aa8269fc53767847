package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathroute/internal/render"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of every routing component",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, st, err := buildAgent(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		snapshot, err := a.Status(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(render.Status(snapshot))
		return nil
	},
}
