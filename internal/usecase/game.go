package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/portfolio-site/internal/apperror"
	"github.com/rocketscienceinc/portfolio-site/internal/entity"
	"github.com/rocketscienceinc/portfolio-site/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game entity.Game) error
	GetByID(ctx context.Context, id string) (entity.Game, error)
}

// GameListener is told about every stored change of a session's game. ctx belongs to the request
// that made the change. Listeners run while the session is locked, so changes arrive in order.
type GameListener func(ctx context.Context, game entity.Game)

// GameUseCase runs the tic-tac-toe widget of every session on top of a game repository.
type GameUseCase struct {
	logger   *slog.Logger
	gameRepo gameRepo
	locks    *sessionLocks

	listenersMutex sync.RWMutex
	listeners      []GameListener
}

func NewGameUseCase(logger *slog.Logger, gameRepo gameRepo) *GameUseCase {
	return &GameUseCase{
		logger:   logger.With("component", "game"),
		gameRepo: gameRepo,
		locks:    newSessionLocks(),
	}
}

// Subscribe registers listener for changes made through ChooseCell, NewGame and ResetScores.
func (that *GameUseCase) Subscribe(listener GameListener) {
	that.listenersMutex.Lock()
	defer that.listenersMutex.Unlock()

	that.listeners = append(that.listeners, listener)
}

// GetGame returns the session's game, starting a fresh one when none is stored.
func (that *GameUseCase) GetGame(ctx context.Context, sessionID string) (entity.Game, error) {
	if sessionID == "" {
		return entity.Game{}, apperror.ErrSessionRequired
	}

	unlock := that.locks.Lock(sessionID)
	defer unlock()

	game, created, err := that.getOrCreateGame(ctx, sessionID)
	if err != nil {
		return entity.Game{}, err
	}

	if created {
		if err = that.updateGame(ctx, game); err != nil {
			return entity.Game{}, err
		}
	}

	return game, nil
}

// ChooseCell plays the current turn on cell. Occupied cells and finished games are ignored
// and the unchanged game is returned without an error.
func (that *GameUseCase) ChooseCell(ctx context.Context, sessionID string, cell int) (entity.Game, error) {
	if !entity.IsValidCell(cell) {
		return entity.Game{}, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	return that.apply(ctx, sessionID, "ChooseCell", func(game entity.Game) (entity.Game, bool) {
		return tictactoe.ChooseCell(game, cell)
	})
}

// NewGame clears the session's board and keeps its scores.
func (that *GameUseCase) NewGame(ctx context.Context, sessionID string) (entity.Game, error) {
	return that.apply(ctx, sessionID, "NewGame", func(game entity.Game) (entity.Game, bool) {
		return tictactoe.NewGame(game), true
	})
}

// ResetScores zeroes the session's scoreboard and keeps its board.
func (that *GameUseCase) ResetScores(ctx context.Context, sessionID string) (entity.Game, error) {
	return that.apply(ctx, sessionID, "ResetScores", func(game entity.Game) (entity.Game, bool) {
		return tictactoe.ResetScores(game), true
	})
}

func (that *GameUseCase) apply(
	ctx context.Context,
	sessionID, method string,
	transition func(entity.Game) (entity.Game, bool),
) (entity.Game, error) {
	log := that.logger.With("method", method, "session", sessionID)

	if sessionID == "" {
		return entity.Game{}, apperror.ErrSessionRequired
	}

	unlock := that.locks.Lock(sessionID)
	defer unlock()

	game, created, err := that.getOrCreateGame(ctx, sessionID)
	if err != nil {
		return entity.Game{}, err
	}

	next, changed := transition(game)
	if !changed {
		log.Debug("action ignored", "outcome", game.Outcome)

		if !created {
			return game, nil
		}
	}

	if err = that.updateGame(ctx, next); err != nil {
		return entity.Game{}, err
	}

	if next.IsFinished() && !game.IsFinished() {
		log.Info("game finished", "outcome", next.Outcome, "scores", next.Scores)
	}

	if changed {
		that.notify(ctx, next)
	}

	return next, nil
}

func (that *GameUseCase) notify(ctx context.Context, game entity.Game) {
	that.listenersMutex.RLock()
	defer that.listenersMutex.RUnlock()

	for _, listener := range that.listeners {
		listener(ctx, game)
	}
}

func (that *GameUseCase) getOrCreateGame(ctx context.Context, sessionID string) (entity.Game, bool, error) {
	game, err := that.gameRepo.GetByID(ctx, sessionID)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		return entity.NewGame(sessionID), true, nil
	}

	if err != nil {
		return entity.Game{}, false, fmt.Errorf("failed to get game: %w", err)
	}

	return game, false, nil
}

func (that *GameUseCase) updateGame(ctx context.Context, game entity.Game) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}
