// Package commands wires the dynaform CLI: serve a form over HTTP, render it
// once, fill it interactively, or check a description for problems.
package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-dynaform/internal/config"
	"github.com/goliatone/go-dynaform/pkg/schema"
)

var (
	cfgFile string
	cfg     config.Config

	flagSource string
)

var rootCmd = &cobra.Command{
	Use:   "dynaform",
	Short: "Render and serve forms described by remote schemas",
	Long: `dynaform fetches a form description (JSON or YAML), renders it as
HTML or terminal prompts, validates user input against the description's
rules, and reports accepted submissions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if flagSource != "" {
			cfg.Schema.Source = flagSource
		}
		setupLogging(cfg.Log)
		return nil
	},
}

// Execute runs the CLI and reports errors on stderr.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&flagSource, "source", "", "form description URL or file path")
}

func setupLogging(lc config.LogConfig) {
	level, err := zerolog.ParseLevel(lc.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if lc.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// resolveSource turns the configured source string into a schema.Source.
func resolveSource() (schema.Source, error) {
	src := strings.TrimSpace(cfg.Schema.Source)
	if src == "" {
		return nil, fmt.Errorf("no form source configured; pass --source or set DYNAFORM_SCHEMA_SOURCE")
	}
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return schema.SourceFromURL(src), nil
	}
	return schema.SourceFromFile(src), nil
}
