package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-dynaform/pkg/render"
	"github.com/goliatone/go-dynaform/pkg/renderers/vanilla"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the form once as HTML on stdout",
	RunE: func(cmd *cobra.Command, _ []string) error {
		f, err := buildForm()
		if err != nil {
			return err
		}
		if err := f.Load(cmd.Context()); err != nil {
			return err
		}

		snap := f.Snapshot()
		view := render.View{
			Title:        snap.Schema.Title,
			Fields:       f.VisibleFields(),
			Values:       snap.Values,
			Errors:       snap.Errors,
			SubmitButton: snap.Schema.SubmitButton,
		}

		out, err := vanilla.Must().Render(cmd.Context(), view)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
