package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dudaspaulo/gerador-de-walka/internal/api"
	"github.com/dudaspaulo/gerador-de-walka/internal/audit"
	"github.com/dudaspaulo/gerador-de-walka/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the walka HTTP API",
	Long: `Starts the REST API for managing projects, previewing hotsites in the
browser and downloading their zip archives.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().String("assets", "", "images directory (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	database, store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	assetsDir, _ := cmd.Flags().GetString("assets")
	source, err := openAssets(cfg, assetsDir)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:           cfg.Server.Port,
		AllowAll:       cfg.Server.AllowAllOrigins,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, database, logger)

	activity := audit.NewStore(database)
	api.RegisterRoutes(srv.Router(), api.Deps{
		Store:       store,
		Generator:   gen,
		Assets:      source,
		Audit:       activity,
		Logger:      logger,
		ArchiveName: cfg.DefaultArchive,
	})
	audit.RegisterRoutes(srv.Router(), activity)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	logger.Info("walka server starting",
		zap.String("version", Version),
		zap.Int("port", cfg.Server.Port),
		zap.String("database", database.Path()),
		zap.Bool("assets", source != nil),
	)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
