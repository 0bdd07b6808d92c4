package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-dynaform/internal/schema/loader"
	"github.com/goliatone/go-dynaform/pkg/schema"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch a form description and report structural problems",
	RunE: func(cmd *cobra.Command, _ []string) error {
		src, err := resolveSource()
		if err != nil {
			return err
		}

		l := loader.New(schema.LoaderOptions{
			AllowHTTPFallback: true,
			RequestTimeout:    cfg.Schema.RequestTimeout,
		})

		doc, err := l.Load(cmd.Context(), src)
		if err != nil {
			return err
		}

		parsed, err := schema.Parse(doc)
		if err != nil {
			return err
		}

		result := schema.Validate(parsed)
		if !result.Valid {
			return fmt.Errorf("%s: %s", src.Location(), result.Summary())
		}

		fmt.Printf("%s: ok (%d fields)\n", src.Location(), len(parsed.Fields))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
