package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/mood-diary/analyzer"
	"github.com/danielhkuo/mood-diary/cliparse"
	"github.com/danielhkuo/mood-diary/db"
	"github.com/danielhkuo/mood-diary/diary"
	"github.com/danielhkuo/mood-diary/imagestore"
	"github.com/danielhkuo/mood-diary/logging"
	"github.com/danielhkuo/mood-diary/router"
	"github.com/danielhkuo/mood-diary/store"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// run starts the server and returns once it has fully stopped.
// Failures are logged where they happen; deferred cleanup always runs.
func run(args []string) error {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(args)
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		return err
	}

	_, logCloser := logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	defer logCloser.Close()

	loc, err := cfg.Location()
	if err != nil {
		slog.Error("invalid timezone", "timezone", cfg.Timezone, "error", err)
		return err
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL, cfg.DBMaxOpen)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		return err
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		return err
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	images, err := openImageStore(cfg)
	if err != nil {
		slog.Error("image storage unavailable", "backend", cfg.ImageBackend, "error", err)
		return err
	}

	svc := diary.NewService(
		store.New(dbConn),
		images,
		analyzer.NewDeepFaceClient(cfg.AnalyzerURL, cfg.DetectorBackend, cfg.AnalyzeTimeout),
		diary.Options{
			SadThreshold:   cfg.SadThreshold,
			AnalyzeTimeout: cfg.AnalyzeTimeout,
			Location:       loc,
		},
	)

	// Create server
	server := &http.Server{
		Handler:           router.NewRouter(svc, images, cfg),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("listen failed", "addr", server.Addr, "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "analyzer", cfg.AnalyzerURL, "images", cfg.ImageBackend)
	if err := serve(ctx, server, ln, cfg.AnalyzeTimeout+5*time.Second); err != nil {
		slog.Error("Server closed", "error", err)
		return err
	}
	slog.Info("Server closed")
	return nil
}

// serve runs srv on ln until ctx is done, then stops accepting requests
// and waits up to grace for in-flight ones to finish. It does not return
// while a handler may still be using the database.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, grace time.Duration) error {
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		srv.Close()
		<-errc
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func openImageStore(cfg cliparse.Config) (imagestore.Store, error) {
	if cfg.ImageBackend != "minio" {
		return imagestore.NewLocalStore(cfg.UploadDir, router.UploadsPrefix)
	}

	images, err := imagestore.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioPublicURL, cfg.MinioUseSSL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := images.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return images, nil
}
