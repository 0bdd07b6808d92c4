package commands

import (
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-dynaform/internal/server"
	"github.com/goliatone/go-dynaform/pkg/render"
	"github.com/goliatone/go-dynaform/pkg/renderers/vanilla"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the form over HTTP",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if flagAddr != "" {
			cfg.Server.Addr = flagAddr
		}

		f, err := buildForm()
		if err != nil {
			return err
		}

		registry := render.NewRegistry()
		registry.MustRegister(vanilla.Must())
		renderer, err := registry.Get(cfg.Render.Renderer)
		if err != nil {
			return err
		}

		srv, err := server.New(f, renderer, server.Options{
			Addr:            cfg.Server.Addr,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
			Logger:          log.Logger,
		})
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (default :8080)")
	rootCmd.AddCommand(serveCmd)
}
