package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"infoslide/src"
	"infoslide/src/infographic"
	"infoslide/src/preview"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the browser preview on serve.addr",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger, err := loadConfig()
		if err != nil {
			src.PrintError("Error loading configuration: %v", err)
			os.Exit(1)
		}

		extract, err := infographic.ExtractorFor(cfg.ExtractMode)
		if err != nil {
			src.PrintError("%v", err)
			os.Exit(1)
		}

		pipeline := infographic.NewPipeline(newRegistry(cfg),
			infographic.WithLogger(logger),
			infographic.WithExtractor(extract),
		)
		server, err := preview.New(pipeline, preview.Options{
			DefaultProvider: cfg.DefaultProvider(),
			DefaultModel:    cfg.ModelFor(cfg.DefaultProvider()),
			CredentialFor:   cfg.CredentialFor,
			Logger:          logger,
		})
		if err != nil {
			src.PrintError("Failed to start the preview: %v", err)
			os.Exit(1)
		}

		httpServer := &http.Server{
			Addr:              cfg.Serve.Addr,
			Handler:           server.Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown failed", "error", err)
			}
		}()

		src.PrintSuccess("Preview running at http://%s", cfg.Serve.Addr)
		src.PrintInfo("Press Ctrl+C to stop.")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			src.PrintError("Server error: %v", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "listen address, e.g. 127.0.0.1:8501")
	cobra.CheckErr(viper.BindPFlag("serve.addr", serveCmd.Flags().Lookup("addr")))
}
