package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs the application.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	board := tictactoe.NewBoard()

	var rounds *usecase.RoundManager
	if conf.Redis.Enabled {
		redisStorage, publisher, err := connectRoundFeed(ctx, conf.Redis)
		if err != nil {
			return fmt.Errorf("could not start round feed: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		log.Info("Publishing round results", "channel", publisher.Channel())
		rounds = usecase.NewRoundManager(logger, board, publisher)
	} else {
		rounds = usecase.NewRoundManager(logger, board, nil)
	}

	log.Info("Starting console", "session", rounds.SessionID())

	gameConsole := console.New(logger, rounds, in, out, console.Options{
		ClearScreen: conf.Console.ClearScreen,
	})

	if err := gameConsole.Run(ctx); err != nil {
		return fmt.Errorf("console error: %w", err)
	}

	log.Info("Console closed, shutting down")

	return nil
}

func connectRoundFeed(ctx context.Context, conf config.Redis) (*storage.RedisStorage, *redis.Publisher, error) {
	addr := conf.GetRedisAddr()
	if addr == "" {
		return nil, nil, apperror.ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, addr)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	publisher, err := redis.NewPublisher(redisStorage.Connection, conf.Channel)
	if err != nil {
		_ = redisStorage.Close()

		return nil, nil, fmt.Errorf("could not create round publisher: %w", err)
	}

	return redisStorage, publisher, nil
}
