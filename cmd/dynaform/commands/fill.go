package commands

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-dynaform/pkg/renderers/tui"
)

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill the form interactively in the terminal",
	RunE: func(cmd *cobra.Command, _ []string) error {
		f, err := buildForm()
		if err != nil {
			return err
		}
		if err := f.Load(cmd.Context()); err != nil {
			return err
		}

		session := tui.New()
		return session.Fill(cmd.Context(), f)
	},
}

func init() {
	rootCmd.AddCommand(fillCmd)
}
