package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rocketscienceinc/portfolio-site/internal/config"
	"github.com/rocketscienceinc/portfolio-site/internal/portfolio"
	"github.com/rocketscienceinc/portfolio-site/internal/repository"
	"github.com/rocketscienceinc/portfolio-site/internal/repository/storage"
	"github.com/rocketscienceinc/portfolio-site/internal/usecase"
	"github.com/rocketscienceinc/portfolio-site/transport/rest"
	"github.com/rocketscienceinc/portfolio-site/transport/websocket"
)

var ErrUnknownStorage = errors.New("unknown storage type")

// RunApp - runs the site until a server fails, the process is signaled or parent is canceled.
// It returns once both servers have drained, and only then closes storage.
func RunApp(parent context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gameRepo, closeGames, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}
	defer closeGames()

	inbox, closeInbox, err := newContactInbox(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeInbox()

	content, err := portfolio.Default()
	if err != nil {
		return fmt.Errorf("failed to load portfolio content: %w", err)
	}

	gameUseCase := usecase.NewGameUseCase(logger, gameRepo)
	contactUseCase := usecase.NewContactUseCase(logger, inbox)

	httpServer := rest.New(logger, gameUseCase, contactUseCase, content)
	wsServer := websocket.New(logger, gameUseCase)
	gameUseCase.Subscribe(wsServer.PublishGame)

	var wg sync.WaitGroup
	errCh := make(chan error, 2)

	// run HTTP server
	wg.Add(1)
	go func() {
		defer wg.Done()

		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := httpServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			errCh <- fmt.Errorf("HTTP server error: %w", httpErr)
		}
	}()

	// run Websocket server
	wg.Add(1)
	go func() {
		defer wg.Done()

		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			errCh <- fmt.Errorf("WebSocket server error: %w", wsErr)
		}
	}()

	var runErr error
	select {
	case runErr = <-errCh:
		log.Error("server failed, shutting down", "error", runErr)
		cancel()
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	wg.Wait()
	log.Info("servers stopped")

	return runErr
}

// newGameRepository - session games live in process memory or in redis, both expiring after session-ttl.
func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func(), error) {
	switch {
	case conf.UsesRedis():
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewGameRepository(redisStorage, conf.SessionTTL), func() { _ = redisStorage.Close() }, nil
	case conf.Storage == config.StorageMemory:
		return repository.NewMemoryGameRepository(conf.SessionTTL), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStorage, conf.Storage)
	}
}

// newContactInbox - opens the sqlite inbox when a path is configured. A nil repository means
// contact submissions are only logged.
func newContactInbox(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.ContactRepository, func(), error) {
	if conf.SQLiteStoragePath == "" {
		log.Info("contact inbox disabled, submissions are only logged")
		return nil, func() {}, nil
	}

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open contact inbox: %w", err)
	}

	if err = sqliteStorage.Init(ctx); err != nil {
		_ = sqliteStorage.Close()
		return nil, nil, fmt.Errorf("could not init contact inbox: %w", err)
	}

	closeInbox := func() {
		if closeErr := sqliteStorage.Close(); closeErr != nil {
			log.Error("could not close contact inbox", "error", closeErr)
		}
	}

	return repository.NewContactRepository(sqliteStorage.Connection), closeInbox, nil
}
