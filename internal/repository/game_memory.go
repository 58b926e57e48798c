package repository

import (
	"context"
	"sync"
	"time"

	"github.com/rocketscienceinc/portfolio-site/internal/apperror"
	"github.com/rocketscienceinc/portfolio-site/internal/entity"
)

type memoryEntry struct {
	game      entity.Game
	expiresAt time.Time
}

type gameMemory struct {
	mu    sync.Mutex
	games map[string]memoryEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryGameRepository keeps games in process memory. A zero ttl never expires entries.
func NewMemoryGameRepository(ttl time.Duration) GameRepository {
	return newMemoryGameRepository(ttl, time.Now)
}

func newMemoryGameRepository(ttl time.Duration, now func() time.Time) *gameMemory {
	return &gameMemory{
		games: make(map[string]memoryEntry),
		ttl:   ttl,
		now:   now,
	}
}

func (that *gameMemory) CreateOrUpdate(_ context.Context, game entity.Game) error {
	if game.ID == "" {
		return apperror.ErrSessionRequired
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	that.evictExpired()

	entry := memoryEntry{game: game}
	if that.ttl > 0 {
		entry.expiresAt = that.now().Add(that.ttl)
	}
	that.games[game.ID] = entry

	return nil
}

func (that *gameMemory) GetByID(_ context.Context, id string) (entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	entry, ok := that.games[id]
	if !ok || that.isExpired(entry) {
		return entity.Game{}, apperror.ErrSessionNotFound
	}

	return entry.game, nil
}

func (that *gameMemory) isExpired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !that.now().Before(entry.expiresAt)
}

// evictExpired must be called with mu held.
func (that *gameMemory) evictExpired() {
	for id, entry := range that.games {
		if that.isExpired(entry) {
			delete(that.games, id)
		}
	}
}
