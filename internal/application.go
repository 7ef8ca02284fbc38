package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/random"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

type snapshotStore interface {
	Save(ctx context.Context, snapshot *entity.MatchSnapshot) error
	Delete(ctx context.Context, id string) error
}

// RunApp - runs the console session until the players leave or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
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

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - wires the game to the given terminal streams and plays until the session ends.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, stdin io.Reader, stdout io.Writer) error {
	log := logger.With("component", "app")

	var snapshots snapshotStore
	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		log.Info("Publishing match snapshots", "addr", redisAddrString, "ttl", conf.Redis.SnapshotTTL)
		snapshots = repository.NewMatchSnapshotRepository(redisStorage.Connection, conf.Redis.SnapshotTTL)
	}

	seed := conf.Game.Seed
	if seed == 0 {
		var err error
		if seed, err = random.NewSeed(); err != nil {
			return fmt.Errorf("failed to seed random picker: %w", err)
		}
	}

	picker := random.New(seed)
	terminal := console.New(ctx, logger, stdin, stdout)

	setup, err := tictactoe.NewSetup(logger, terminal, terminal, picker, conf.Game.Markers)
	if err != nil {
		return fmt.Errorf("invalid game settings: %w", err)
	}

	session := tictactoe.NewSession(logger, terminal, terminal, picker, snapshots, setup, tictactoe.Options{
		TurnTimeout:          conf.Game.TurnTimeout,
		AlternateFirstPlayer: conf.Game.AlternateFirstPlayer,
	})

	log.Info("Starting session", "seed", seed, "turnTimeout", conf.Game.TurnTimeout)

	err = session.Run(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperror.ErrInputClosed):
		log.Info("Input closed, shutting down")
		return nil
	case errors.Is(err, context.Canceled):
		log.Info("Application context canceled, shutting down")
		return nil
	default:
		return fmt.Errorf("session failed: %w", err)
	}
}
