package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	s := newTestState(10, 10, BiomePlains)
	alice := addPlayer(s, "Alice", 1, 1)
	addPlayer(s, "Bob", 2, 2)
	alice.Inventory.Add(mustItem("straw_hat"))
	alice.Inventory.Add(mustItem("small_potion"))
	s.Game.RecentlyFoundItem = &FoundItem{PlayerID: alice.ID, Item: mustItem("teleport")}

	snap := s.Snapshot()

	assert.Equal(t, "g1", snap.ID)
	assert.Len(t, snap.Players, 2)
	assert.NotNil(t, snap.ValidMoves)
	keys := make([]string, 0, len(snap.ItemMeta))
	for k := range snap.ItemMeta {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"fist", "straw_hat", "small_potion", "teleport"}, keys)
}

func TestSnapshotJSON(t *testing.T) {
	s := newTestState(10, 10, BiomePlains)
	addPlayer(s, "Alice", 1, 1)
	s.ValidMoves = []Position{{X: 1, Y: 2}}

	data, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	for _, key := range []string{"id", "gridSizeX", "gridSizeY", "biomeGrid", "currentTurn",
		"currentDiceRoll", "currentBattle", "recentActions", "players", "validMoves", "itemMeta"} {
		assert.Contains(t, out, key)
	}
	assert.Equal(t, "heal", mustJSONField(t, mustItem("small_potion"), "effect"))
}

func mustJSONField(t *testing.T, v interface{}, field string) interface{} {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	return out[field]
}
