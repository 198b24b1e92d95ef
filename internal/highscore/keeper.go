// Package highscore keeps best scores per mode on top of a fallible store.
// Storage faults never reach the games: a key whose store read fails starts
// at zero, and a failed write leaves the raised value in memory.
package highscore

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickrun/internal/core"
	"github.com/vovakirdan/brickrun/internal/logging"
)

// Store persists one best score per key.
type Store interface {
	Best(key string) (int, error)
	SetBest(key string, score int) error
}

// Keeper caches best scores and writes through to a Store.
// It is safe for concurrent use so one keeper can serve several sessions.
type Keeper struct {
	store  Store
	logger *log.Logger

	mu       sync.Mutex
	cache    map[string]int
	degraded bool
}

var _ core.ScoreKeeper = (*Keeper)(nil)

// NewKeeper wraps store. A nil store keeps scores in memory only; a nil
// logger discards diagnostics.
func NewKeeper(store Store, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Keeper{
		store:  store,
		logger: logger,
		cache:  make(map[string]int),
	}
}

// Best returns the best score for key.
func (k *Keeper) Best(key string) int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.load(key)
}

// Record raises the best score for key to score when it is higher and
// reports whether it did.
func (k *Keeper) Record(key string, score int) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if score <= k.load(key) {
		return false
	}
	k.cache[key] = score

	if k.store != nil && !k.degraded {
		if err := k.store.SetBest(key, score); err != nil {
			k.degrade("write", key, err)
		}
	}
	return true
}

// Degraded reports whether the keeper stopped using its store.
func (k *Keeper) Degraded() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.degraded
}

func (k *Keeper) load(key string) int {
	if v, ok := k.cache[key]; ok {
		return v
	}
	best := 0
	if k.store != nil && !k.degraded {
		v, err := k.store.Best(key)
		if err != nil {
			k.degrade("read", key, err)
		} else {
			best = v
		}
	}
	k.cache[key] = best
	return best
}

func (k *Keeper) degrade(op, key string, err error) {
	k.degraded = true
	k.logger.Warn("best score store unavailable, keeping scores in memory",
		"op", op,
		"key", key,
		"error", err,
	)
}
