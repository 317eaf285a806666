package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/save-the-dragon/internal/game"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	store, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testGame(id string) *game.Game {
	grid := make([][]game.Biome, 10)
	for y := range grid {
		grid[y] = make([]game.Biome, 10)
		for x := range grid[y] {
			grid[y][x] = game.BiomePlains
		}
	}
	grid[5][5] = game.BiomeTown
	return game.NewGame(id, grid, []game.Position{{X: 5, Y: 5}})
}

func TestCreateAndLoadGame(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.CreateGame(ctx, testGame("g1")))

	state, err := store.LoadGame(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "g1", state.Game.ID)
	assert.Equal(t, 10, state.Game.GridSizeX)
	assert.Equal(t, game.BiomeTown, state.Game.BiomeGrid[5][5])
	assert.Empty(t, state.Players)
	assert.Empty(t, state.ValidMoves)

	_, err = store.LoadGame(ctx, "missing")
	assert.ErrorIs(t, err, game.ErrNotFound)
}

func TestUpdateGame(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.CreateGame(ctx, testGame("g1")))

	t.Run("writes players in join order", func(t *testing.T) {
		err := store.UpdateGame(ctx, "g1", func(s *game.State) error {
			s.Players = append(s.Players,
				game.NewPlayer("Alice", game.Position{X: 1, Y: 1}, "a.png"),
				game.NewPlayer("Bob", game.Position{X: 2, Y: 2}, "b.png"))
			s.ValidMoves = []game.Position{{X: 1, Y: 2}, {X: 2, Y: 1}}
			roll := 1
			s.Game.CurrentDiceRoll = &roll
			return nil
		})
		require.NoError(t, err)

		state, err := store.LoadGame(ctx, "g1")
		require.NoError(t, err)
		require.Len(t, state.Players, 2)
		assert.Equal(t, "Alice", state.Players[0].Name)
		assert.Equal(t, "Bob", state.Players[1].Name)
		assert.Equal(t, []string{game.StarterWeaponID}, state.Players[0].Inventory.Weapons)
		assert.ElementsMatch(t, []game.Position{{X: 1, Y: 2}, {X: 2, Y: 1}}, state.ValidMoves)
		require.NotNil(t, state.Game.CurrentDiceRoll)
		assert.Equal(t, 1, *state.Game.CurrentDiceRoll)
	})

	t.Run("updates players in place and clears moves", func(t *testing.T) {
		err := store.UpdateGame(ctx, "g1", func(s *game.State) error {
			s.Players[0].Damage = 3
			s.ValidMoves = nil
			return nil
		})
		require.NoError(t, err)

		state, err := store.LoadGame(ctx, "g1")
		require.NoError(t, err)
		require.Len(t, state.Players, 2)
		assert.Equal(t, 3, state.Players[0].Damage)
		assert.Empty(t, state.ValidMoves)
	})

	t.Run("failed update writes nothing", func(t *testing.T) {
		boom := errors.New("boom")
		err := store.UpdateGame(ctx, "g1", func(s *game.State) error {
			s.Players[0].Damage = 0
			s.Game.CurrentTurn = 1
			return boom
		})
		assert.ErrorIs(t, err, boom)

		state, err := store.LoadGame(ctx, "g1")
		require.NoError(t, err)
		assert.Equal(t, 3, state.Players[0].Damage)
		assert.Equal(t, 0, state.Game.CurrentTurn)
	})

	t.Run("missing game", func(t *testing.T) {
		called := false
		err := store.UpdateGame(ctx, "missing", func(*game.State) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, game.ErrNotFound)
		assert.False(t, called)
	})
}

func TestBattleSurvivesRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.CreateGame(ctx, testGame("g1")))

	monster := game.MonstersFor(game.BiomePlains)[0]
	err := store.UpdateGame(ctx, "g1", func(s *game.State) error {
		s.Game.CurrentBattle = &game.Battle{
			PlayerID:      "p1",
			Monster:       monster,
			PlayerHealth:  4,
			MonsterHealth: 2,
			BattleLog:     []string{"A wild " + monster.Name + " appeared!"},
			BattleActive:  true,
		}
		return nil
	})
	require.NoError(t, err)

	state, err := store.LoadGame(ctx, "g1")
	require.NoError(t, err)
	require.NotNil(t, state.Game.CurrentBattle)
	assert.Equal(t, monster, state.Game.CurrentBattle.Monster)
	assert.Equal(t, 4, state.Game.CurrentBattle.PlayerHealth)
	assert.True(t, state.Game.CurrentBattle.BattleActive)
}

func TestListAndDeleteGames(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.CreateGame(ctx, testGame("g1")))
	require.NoError(t, store.CreateGame(ctx, testGame("g2")))
	require.NoError(t, store.UpdateGame(ctx, "g1", func(s *game.State) error {
		s.Players = append(s.Players, game.NewPlayer("Alice", game.Position{}, "a.png"))
		s.ValidMoves = []game.Position{{X: 0, Y: 1}}
		return nil
	}))

	states, err := store.ListGames(ctx)
	require.NoError(t, err)
	ids := make([]string, 0, len(states))
	for _, s := range states {
		ids = append(ids, s.Game.ID)
	}
	assert.ElementsMatch(t, []string{"g1", "g2"}, ids)

	require.NoError(t, store.DeleteGame(ctx, "g1"))
	_, err = store.LoadGame(ctx, "g1")
	assert.ErrorIs(t, err, game.ErrNotFound)

	states, err = store.ListGames(ctx)
	require.NoError(t, err)
	require.Len(t, states, 1)
	assert.Equal(t, "g2", states[0].Game.ID)
}

func TestRebind(t *testing.T) {
	pg := &sqlStore{dialect: dialect{numbered: true}}
	assert.Equal(t, "SELECT a FROM t WHERE x = $1 AND y = $2", pg.rebind("SELECT a FROM t WHERE x = ? AND y = ?"))

	lite := &sqlStore{dialect: dialect{}}
	assert.Equal(t, "WHERE x = ?", lite.rebind("WHERE x = ?"))
}

func TestOpenRejectsUnknownType(t *testing.T) {
	_, err := Open("mongo", "", "")
	assert.Error(t, err)
}
