package engine

import (
	"context"
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yourusername/save-the-dragon/internal/db"
	"github.com/yourusername/save-the-dragon/internal/game"
)

// Terrain generates the biome grid for a new game
type Terrain interface {
	Generate(width, height int) ([][]game.Biome, []game.Position)
}

// Options tunes an Engine
type Options struct {
	AdminPassword string
	IdleTimeout   time.Duration
	Logger        *zap.Logger
}

// Engine applies game operations against the store. Every mutation of a game
// runs under that game's lock inside a single store transaction.
type Engine struct {
	store         db.Store
	rng           game.Rand
	terrain       Terrain
	logger        *zap.Logger
	adminPassword string
	idleTimeout   time.Duration
	now           func() time.Time

	mu       sync.Mutex
	locks    map[string]*gameLock
	lastPoll map[string]time.Time
}

// New creates an engine
func New(store db.Store, rng game.Rand, terrain Terrain, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	idle := opts.IdleTimeout
	if idle <= 0 {
		idle = 60 * time.Second
	}
	return &Engine{
		store:         store,
		rng:           rng,
		terrain:       terrain,
		logger:        logger,
		adminPassword: opts.AdminPassword,
		idleTimeout:   idle,
		now:           time.Now,
		locks:         make(map[string]*gameLock),
		lastPoll:      make(map[string]time.Time),
	}
}

// gameLock serializes operations on one game. refs counts the callers
// holding or waiting for it; the entry is dropped when it reaches zero.
type gameLock struct {
	sync.Mutex
	refs int
}

// lock takes the game's mutex and returns its release
func (e *Engine) lock(gameID string) func() {
	e.mu.Lock()
	l, ok := e.locks[gameID]
	if !ok {
		l = &gameLock{}
		e.locks[gameID] = l
	}
	l.refs++
	e.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		e.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(e.locks, gameID)
		}
		e.mu.Unlock()
	}
}

func (e *Engine) touch(gameID string) {
	e.mu.Lock()
	e.lastPoll[gameID] = e.now()
	e.mu.Unlock()
}

func (e *Engine) forget(gameID string) {
	e.mu.Lock()
	delete(e.lastPoll, gameID)
	e.mu.Unlock()
}

// update runs fn as one atomic read-modify-write of the game
func (e *Engine) update(ctx context.Context, gameID string, fn func(*game.State) error) error {
	unlock := e.lock(gameID)
	defer unlock()

	err := e.store.UpdateGame(ctx, gameID, fn)
	if err != nil && !IsRuleError(err) {
		e.logger.Error("game update failed", zap.String("game", gameID), zap.Error(err))
	}
	return err
}

// CreateGame generates terrain and stores a new game. Sizes are clamped to
// the allowed range.
func (e *Engine) CreateGame(ctx context.Context, width, height int) (string, error) {
	width, height = game.ClampGridSize(width), game.ClampGridSize(height)
	grid, towns := e.terrain.Generate(width, height)

	g := game.NewGame(uuid.NewString(), grid, towns)
	if err := e.store.CreateGame(ctx, g); err != nil {
		e.logger.Error("failed to create game", zap.Error(err))
		return "", err
	}
	e.touch(g.ID)
	e.logger.Info("game created",
		zap.String("game", g.ID),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("towns", len(towns)))
	return g.ID, nil
}

// JoinGame adds a player, or returns the ID of the player already using the name
func (e *Engine) JoinGame(ctx context.Context, gameID, name string) (string, error) {
	var player *game.Player
	var created bool
	err := e.update(ctx, gameID, func(s *game.State) error {
		var err error
		player, created, err = s.Join(e.rng, name)
		return err
	})
	if err != nil {
		return "", err
	}
	if created {
		e.logger.Info("player joined",
			zap.String("game", gameID),
			zap.String("player", player.Name),
			zap.Int("x", player.PositionX),
			zap.Int("y", player.PositionY))
	}
	return player.ID, nil
}

// Reconnect looks up an existing player by name
func (e *Engine) Reconnect(ctx context.Context, gameID, name string) (string, *game.Snapshot, error) {
	unlock := e.lock(gameID)
	defer unlock()

	state, err := e.store.LoadGame(ctx, gameID)
	if err != nil {
		return "", nil, err
	}
	player := state.PlayerByName(name)
	if player == nil {
		return "", nil, game.ErrNotFound
	}
	e.touch(gameID)
	return player.ID, state.Snapshot(), nil
}

// GetState returns the polling snapshot and records the poll. The poll is
// stamped under the game lock so an idle sweep cannot delete it in between.
func (e *Engine) GetState(ctx context.Context, gameID string) (*game.Snapshot, error) {
	unlock := e.lock(gameID)
	defer unlock()

	state, err := e.store.LoadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	e.touch(gameID)
	return state.Snapshot(), nil
}

// RollDice rolls for the player whose turn it is
func (e *Engine) RollDice(ctx context.Context, gameID, playerID string) (int, []game.Position, error) {
	var roll int
	var moves []game.Position
	err := e.update(ctx, gameID, func(s *game.State) error {
		var err error
		roll, moves, err = s.RollDice(e.rng, playerID)
		return err
	})
	return roll, moves, err
}

// MovePlayer moves the current player and returns the resulting snapshot
func (e *Engine) MovePlayer(ctx context.Context, gameID, playerID string, target game.Position) (*game.Snapshot, error) {
	var snap *game.Snapshot
	err := e.update(ctx, gameID, func(s *game.State) error {
		started, err := s.MovePlayer(e.rng, playerID, target)
		if err != nil {
			return err
		}
		if started {
			e.logger.Info("battle started",
				zap.String("game", gameID),
				zap.String("player", playerID),
				zap.String("monster", s.Game.CurrentBattle.Monster.ID))
		}
		snap = s.Snapshot()
		return nil
	})
	return snap, err
}

// Attack runs one exchange of the player's battle
func (e *Engine) Attack(ctx context.Context, gameID, playerID string) (*game.Battle, error) {
	var battle *game.Battle
	err := e.update(ctx, gameID, func(s *game.State) error {
		var err error
		battle, err = s.Attack(e.rng, playerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !battle.BattleActive {
		e.logger.Info("battle decided",
			zap.String("game", gameID),
			zap.String("player", playerID),
			zap.Bool("won", battle.MonsterHealth <= 0))
	}
	return battle, nil
}

// Run abandons the player's battle
func (e *Engine) Run(ctx context.Context, gameID, playerID string) (*game.Battle, error) {
	var battle *game.Battle
	err := e.update(ctx, gameID, func(s *game.State) error {
		var err error
		battle, err = s.Run(playerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	e.logger.Info("battle ended", zap.String("game", gameID), zap.String("player", playerID), zap.String("outcome", "ran"))
	return battle, nil
}

// CollectLoot awards the winner's reward
func (e *Engine) CollectLoot(ctx context.Context, gameID, playerID string) (*game.ItemDef, error) {
	var reward *game.ItemDef
	err := e.update(ctx, gameID, func(s *game.State) error {
		var err error
		reward, err = s.CollectLoot(e.rng, playerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	fields := []zap.Field{zap.String("game", gameID), zap.String("player", playerID), zap.String("outcome", "won")}
	if reward != nil {
		fields = append(fields, zap.String("reward", reward.ID))
	}
	e.logger.Info("battle ended", fields...)
	return reward, nil
}

// ReturnToTown recovers a fainted player
func (e *Engine) ReturnToTown(ctx context.Context, gameID, playerID string) error {
	err := e.update(ctx, gameID, func(s *game.State) error {
		return s.ReturnToTown(playerID)
	})
	if err == nil {
		e.logger.Info("battle ended", zap.String("game", gameID), zap.String("player", playerID), zap.String("outcome", "fainted"))
	}
	return err
}

// EquipItem equips an owned weapon or armor
func (e *Engine) EquipItem(ctx context.Context, gameID, playerID, itemID string) error {
	return e.update(ctx, gameID, func(s *game.State) error {
		_, err := s.EquipItem(playerID, itemID)
		return err
	})
}

// UseItem consumes an owned item
func (e *Engine) UseItem(ctx context.Context, gameID, playerID, itemID string) error {
	return e.update(ctx, gameID, func(s *game.State) error {
		_, err := s.UseItem(playerID, itemID)
		return err
	})
}

// SetProfilePicture changes a player's picture
func (e *Engine) SetProfilePicture(ctx context.Context, gameID, playerID, pic string) error {
	return e.update(ctx, gameID, func(s *game.State) error {
		return s.SetProfilePicture(playerID, pic)
	})
}

// ProfilePictures lists the selectable pictures
func (e *Engine) ProfilePictures() []string {
	pics := make([]string, len(game.ProfilePictures))
	copy(pics, game.ProfilePictures)
	return pics
}

func (e *Engine) authorize(password string) error {
	if e.adminPassword == "" || subtle.ConstantTimeCompare([]byte(password), []byte(e.adminPassword)) != 1 {
		return game.ErrForbidden
	}
	return nil
}

// AdminListGames summarises every stored game
func (e *Engine) AdminListGames(ctx context.Context, password string) ([]game.GameSummary, error) {
	if err := e.authorize(password); err != nil {
		return nil, err
	}
	states, err := e.store.ListGames(ctx)
	if err != nil {
		e.logger.Error("failed to list games", zap.Error(err))
		return nil, err
	}
	summaries := make([]game.GameSummary, 0, len(states))
	for _, s := range states {
		summaries = append(summaries, s.Summary())
	}
	return summaries, nil
}

// AdminDeleteGame removes a game
func (e *Engine) AdminDeleteGame(ctx context.Context, password, gameID string) error {
	if err := e.authorize(password); err != nil {
		return err
	}
	if _, err := e.store.LoadGame(ctx, gameID); err != nil {
		return err
	}
	if _, err := e.deleteGame(ctx, gameID, nil); err != nil {
		return err
	}
	e.logger.Info("game deleted by admin", zap.String("game", gameID))
	return nil
}

// deleteGame removes the game under its lock. A non-nil keep is checked
// once the lock is held and vetoes the delete when it returns true.
func (e *Engine) deleteGame(ctx context.Context, gameID string, keep func() bool) (bool, error) {
	unlock := e.lock(gameID)
	defer unlock()

	if keep != nil && keep() {
		return false, nil
	}
	if err := e.store.DeleteGame(ctx, gameID); err != nil {
		e.logger.Error("failed to delete game", zap.String("game", gameID), zap.Error(err))
		return false, err
	}
	e.forget(gameID)
	return true, nil
}

// IsRuleError reports whether err is a game rule violation rather than a
// storage failure
func IsRuleError(err error) bool {
	for _, rule := range ruleErrors {
		if errors.Is(err, rule) {
			return true
		}
	}
	return false
}

var ruleErrors = []error{
	game.ErrNotFound,
	game.ErrNotYourTurn,
	game.ErrAlreadyRolled,
	game.ErrInvalidMove,
	game.ErrBattleInProgress,
	game.ErrNoActiveBattle,
	game.ErrNotYourBattle,
	game.ErrCannotCollectLoot,
	game.ErrCannotReturnToTown,
	game.ErrItemNotOwned,
	game.ErrInvalidItem,
	game.ErrItemNotUsable,
	game.ErrInvalidPlayerName,
	game.ErrInvalidProfilePicture,
	game.ErrForbidden,
}
