package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-dynaform/pkg/openapi"
)

var flagComponent string

var importCmd = &cobra.Command{
	Use:   "import <openapi-file>",
	Short: "Derive a form description from an OpenAPI component schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		converted, err := openapi.Import(cmd.Context(), raw, openapi.ImportOptions{
			Component: flagComponent,
		})
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(converted, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&flagComponent, "component", "", "component schema to import (required)")
	_ = importCmd.MarkFlagRequired("component")
	rootCmd.AddCommand(importCmd)
}
