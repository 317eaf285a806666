package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/save-the-dragon/internal/db"
	"github.com/yourusername/save-the-dragon/internal/engine"
	"github.com/yourusername/save-the-dragon/internal/game"
)

type fixedRand struct{ float float64 }

func (fixedRand) Intn(int) int       { return 0 }
func (r fixedRand) Float64() float64 { return r.float }

// plainsTerrain is all plains with one town in the middle
type plainsTerrain struct{}

func (plainsTerrain) Generate(width, height int) ([][]game.Biome, []game.Position) {
	grid := make([][]game.Biome, height)
	for y := range grid {
		grid[y] = make([]game.Biome, width)
		for x := range grid[y] {
			grid[y][x] = game.BiomePlains
		}
	}
	town := game.Position{X: width / 2, Y: height / 2}
	grid[town.Y][town.X] = game.BiomeTown
	return grid, []game.Position{town}
}

func setupServer(t *testing.T, rng game.Rand) *httptest.Server {
	t.Helper()
	store, err := db.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	e := engine.New(store, rng, plainsTerrain{}, engine.Options{AdminPassword: "superman", IdleTimeout: time.Minute})
	server := httptest.NewServer(NewServer(e, []string{"http://localhost:5173"}, nil))
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body interface{}, out interface{}) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequestWithContext(context.Background(), method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func createAndJoin(t *testing.T, base string, names ...string) (string, []string) {
	t.Helper()
	var created struct {
		GameID string `json:"gameId"`
	}
	status := doJSON(t, "POST", base+"/api/games", map[string]interface{}{"gridSizeX": 10, "gridSizeY": "10"}, &created)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, created.GameID)

	ids := make([]string, 0, len(names))
	for _, name := range names {
		var joined struct {
			PlayerID string `json:"playerId"`
		}
		status = doJSON(t, "POST", base+"/api/games/"+created.GameID+"/join", map[string]string{"playerName": name}, &joined)
		require.Equal(t, http.StatusOK, status)
		ids = append(ids, joined.PlayerID)
	}
	return created.GameID, ids
}

func TestHealth(t *testing.T) {
	server := setupServer(t, fixedRand{float: 0.99})

	var body map[string]string
	assert.Equal(t, http.StatusOK, doJSON(t, "GET", server.URL+"/health", nil, &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestCORS(t *testing.T) {
	server := setupServer(t, fixedRand{float: 0.99})

	req, err := http.NewRequest("OPTIONS", server.URL+"/api/games", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "http://evil.example")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestTurnFlow(t *testing.T) {
	server := setupServer(t, fixedRand{float: 0.99})
	gameID, ids := createAndJoin(t, server.URL, "A", "B")
	base := server.URL + "/api/games/" + gameID

	var state game.Snapshot
	require.Equal(t, http.StatusOK, doJSON(t, "GET", base+"/state", nil, &state))
	assert.Equal(t, 10, state.GridSizeX)
	require.Len(t, state.Players, 2)
	assert.Contains(t, state.ItemMeta, game.StarterWeaponID)

	var errBody map[string]string
	status := doJSON(t, "POST", base+"/roll", map[string]string{"playerId": ids[1]}, &errBody)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, game.ErrNotYourTurn.Error(), errBody["error"])

	var rolled struct {
		DiceRoll   int             `json:"diceRoll"`
		ValidMoves []game.Position `json:"validMoves"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, "POST", base+"/roll", map[string]string{"playerId": ids[0]}, &rolled))
	assert.Equal(t, 1, rolled.DiceRoll)
	require.NotEmpty(t, rolled.ValidMoves)

	status = doJSON(t, "POST", base+"/roll", map[string]string{"playerId": ids[0]}, &errBody)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, game.ErrAlreadyRolled.Error(), errBody["error"])

	status = doJSON(t, "POST", base+"/move", map[string]interface{}{"playerId": ids[0]}, &errBody)
	assert.Equal(t, http.StatusBadRequest, status)

	var moved struct {
		Success   bool          `json:"success"`
		GameState game.Snapshot `json:"gameState"`
	}
	target := rolled.ValidMoves[0]
	status = doJSON(t, "POST", base+"/move", map[string]interface{}{
		"playerId": ids[0], "targetX": target.X, "targetY": target.Y,
	}, &moved)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, moved.Success)
	assert.Equal(t, 1, moved.GameState.CurrentTurn)
	assert.Equal(t, target, moved.GameState.Players[0].Position())
}

func TestMoveRejectsBadCoordinates(t *testing.T) {
	server := setupServer(t, fixedRand{float: 0.99})
	gameID, ids := createAndJoin(t, server.URL, "A")
	base := server.URL + "/api/games/" + gameID

	var before game.Snapshot
	require.Equal(t, http.StatusOK, doJSON(t, "GET", base+"/state", nil, &before))
	start := before.Players[0].Position()

	require.Equal(t, http.StatusOK, doJSON(t, "POST", base+"/roll", map[string]string{"playerId": ids[0]}, nil))

	for _, target := range []map[string]interface{}{
		{"targetX": 4.9, "targetY": "3.7"},
		{"targetX": "abc", "targetY": start.Y},
		{"targetX": "", "targetY": start.Y},
		{"targetX": start.X, "targetY": "NaN"},
		{"targetX": 1e300, "targetY": start.Y},
	} {
		target["playerId"] = ids[0]
		var errBody map[string]string
		assert.Equal(t, http.StatusBadRequest, doJSON(t, "POST", base+"/move", target, &errBody), "%v", target)
		assert.Equal(t, "invalid request body", errBody["error"])
	}

	var after game.Snapshot
	require.Equal(t, http.StatusOK, doJSON(t, "GET", base+"/state", nil, &after))
	assert.Equal(t, start, after.Players[0].Position())
	require.NotNil(t, after.CurrentDiceRoll)

	var moved struct {
		Success bool `json:"success"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, "POST", base+"/move", map[string]interface{}{
		"playerId": ids[0], "targetX": fmt.Sprint(start.X), "targetY": start.Y,
	}, &moved))
	assert.True(t, moved.Success)
}

func TestBattleFlow(t *testing.T) {
	// every check succeeds: encounters always start and every swing lands
	server := setupServer(t, fixedRand{float: 0.0})
	gameID, ids := createAndJoin(t, server.URL, "A")
	base := server.URL + "/api/games/" + gameID
	player := map[string]string{"playerId": ids[0]}

	enterBattle(t, base, ids[0])

	var errBody map[string]string
	assert.Equal(t, http.StatusConflict, doJSON(t, "POST", base+"/roll", player, &errBody))
	assert.Equal(t, http.StatusForbidden, doJSON(t, "POST", base+"/battle/attack", map[string]string{"playerId": "someone"}, &errBody))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, "POST", base+"/battle/collect-loot", player, &errBody))

	var attacked struct {
		Success      bool     `json:"success"`
		BattleLog    []string `json:"battleLog"`
		BattleActive bool     `json:"battleActive"`
	}
	for i := 0; i < 10; i++ {
		require.Equal(t, http.StatusOK, doJSON(t, "POST", base+"/battle/attack", player, &attacked))
		if !attacked.BattleActive {
			break
		}
	}
	assert.True(t, attacked.Success)
	assert.False(t, attacked.BattleActive)
	assert.NotEmpty(t, attacked.BattleLog)

	var state game.Snapshot
	require.Equal(t, http.StatusOK, doJSON(t, "GET", base+"/state", nil, &state))
	require.NotNil(t, state.CurrentBattle)
	battle := state.CurrentBattle

	if battle.MonsterHealth <= 0 {
		var loot struct {
			Success bool          `json:"success"`
			Reward  *game.ItemDef `json:"reward"`
		}
		require.Equal(t, http.StatusOK, doJSON(t, "POST", base+"/battle/collect-loot", player, &loot))
		assert.True(t, loot.Success)
		require.NotNil(t, loot.Reward)
	} else {
		var back map[string]bool
		require.Equal(t, http.StatusOK, doJSON(t, "POST", base+"/battle/return-to-town", player, &back))
		assert.True(t, back["returnedToTown"])
	}

	require.Equal(t, http.StatusOK, doJSON(t, "GET", base+"/state", nil, &state))
	assert.Nil(t, state.CurrentBattle)
}

// enterBattle rolls and steps off the spawn cell. The rand must force an encounter.
func enterBattle(t *testing.T, base, playerID string) {
	t.Helper()
	player := map[string]string{"playerId": playerID}

	var rolled struct {
		ValidMoves []game.Position `json:"validMoves"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, "POST", base+"/roll", player, &rolled))

	var target game.Position
	for _, m := range rolled.ValidMoves {
		if m.X != 5 || m.Y != 5 {
			target = m
			break
		}
	}
	var moved struct {
		GameState game.Snapshot `json:"gameState"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, "POST", base+"/move", map[string]interface{}{
		"playerId": playerID, "targetX": target.X, "targetY": target.Y,
	}, &moved))
	require.NotNil(t, moved.GameState.CurrentBattle)
}

func TestRunAway(t *testing.T) {
	server := setupServer(t, fixedRand{float: 0.0})
	gameID, ids := createAndJoin(t, server.URL, "A")
	base := server.URL + "/api/games/" + gameID
	player := map[string]string{"playerId": ids[0]}

	var errBody map[string]string
	assert.Equal(t, http.StatusBadRequest, doJSON(t, "POST", base+"/battle/run", player, &errBody))
	assert.Equal(t, game.ErrNoActiveBattle.Error(), errBody["error"])

	enterBattle(t, base, ids[0])

	var ran struct {
		Success   bool     `json:"success"`
		BattleLog []string `json:"battleLog"`
		RanAway   bool     `json:"ranAway"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, "POST", base+"/battle/run", player, &ran))
	assert.True(t, ran.RanAway)
	assert.Contains(t, ran.BattleLog[len(ran.BattleLog)-1], "ran away")

	var state game.Snapshot
	require.Equal(t, http.StatusOK, doJSON(t, "GET", base+"/state", nil, &state))
	assert.Nil(t, state.CurrentBattle)
	require.NotEmpty(t, state.RecentActions)
	assert.Equal(t, game.ActionBattleEnd, state.RecentActions[len(state.RecentActions)-1].Type)
}

func TestPlayerEndpoints(t *testing.T) {
	server := setupServer(t, fixedRand{float: 0.99})
	gameID, ids := createAndJoin(t, server.URL, "A")
	base := server.URL + "/api/games/" + gameID + "/player/" + ids[0]

	var ok map[string]bool
	require.Equal(t, http.StatusOK, doJSON(t, "POST", base+"/equip", map[string]string{"itemId": game.StarterWeaponID}, &ok))
	assert.True(t, ok["success"])

	var errBody map[string]string
	assert.Equal(t, http.StatusBadRequest, doJSON(t, "POST", base+"/equip", map[string]string{"itemId": "glass_hammer"}, &errBody))
	assert.Equal(t, game.ErrItemNotOwned.Error(), errBody["error"])
	assert.Equal(t, http.StatusBadRequest, doJSON(t, "POST", base+"/use-item", map[string]string{"itemId": "small_potion"}, &errBody))

	require.Equal(t, http.StatusOK, doJSON(t, "POST", base+"/profile-pic", map[string]string{"profilePic": "war_shark.png"}, &ok))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, "POST", base+"/profile-pic", map[string]string{"profilePic": "x.png"}, &errBody))

	var pics []string
	require.Equal(t, http.StatusOK, doJSON(t, "GET", server.URL+"/api/profile-pictures", nil, &pics))
	assert.Equal(t, game.ProfilePictures, pics)

	var reconnected struct {
		PlayerID  string        `json:"playerId"`
		GameState game.Snapshot `json:"gameState"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, "POST", server.URL+"/api/games/"+gameID+"/reconnect", map[string]string{"playerName": "A"}, &reconnected))
	assert.Equal(t, ids[0], reconnected.PlayerID)
	assert.Equal(t, "war_shark.png", reconnected.GameState.Players[0].ProfilePic)

	assert.Equal(t, http.StatusNotFound, doJSON(t, "GET", server.URL+"/api/games/nope/state", nil, &errBody))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, "POST", server.URL+"/api/games/"+gameID+"/join", map[string]string{"playerName": ""}, &errBody))
}

func TestAdmin(t *testing.T) {
	server := setupServer(t, fixedRand{float: 0.99})
	gameID, _ := createAndJoin(t, server.URL, "A", "B")

	var errBody map[string]string
	assert.Equal(t, http.StatusForbidden, doJSON(t, "GET", server.URL+"/api/admin/games?password=wrong", nil, &errBody))

	var games []game.GameSummary
	require.Equal(t, http.StatusOK, doJSON(t, "GET", server.URL+"/api/admin/games?password=superman", nil, &games))
	require.Len(t, games, 1)
	assert.Equal(t, gameID, games[0].GameID)
	assert.Len(t, games[0].Players, 2)
	require.NotNil(t, games[0].CurrentTurn)
	assert.Equal(t, "A", *games[0].CurrentTurn)

	assert.Equal(t, http.StatusForbidden, doJSON(t, "DELETE", server.URL+"/api/admin/games/"+gameID, nil, &errBody))
	var ok map[string]bool
	require.Equal(t, http.StatusOK, doJSON(t, "DELETE", server.URL+"/api/admin/games/"+gameID+"?password=superman", nil, &ok))
	assert.Equal(t, http.StatusNotFound, doJSON(t, "GET", server.URL+"/api/games/"+gameID+"/state", nil, &errBody))
}

func TestMCPEndpoints(t *testing.T) {
	server := setupServer(t, fixedRand{float: 0.99})

	var tools struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, "GET", server.URL+"/mcp/tools", nil, &tools))
	assert.NotEmpty(t, tools.Tools)

	var result struct {
		IsError   bool           `json:"isError"`
		GameState *game.Snapshot `json:"gameState"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, "POST", server.URL+"/mcp/call", map[string]interface{}{
		"name":      "create_game",
		"arguments": map[string]interface{}{"grid_size_x": 12, "grid_size_y": 12},
	}, &result))
	assert.False(t, result.IsError)
	require.NotNil(t, result.GameState)
	assert.Equal(t, 12, result.GameState.GridSizeX)

	var errBody map[string]string
	assert.Equal(t, http.StatusBadRequest, doJSON(t, "POST", server.URL+"/mcp/call", map[string]interface{}{"name": "fly"}, &errBody))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(game.ErrNotFound))
	assert.Equal(t, http.StatusForbidden, statusFor(game.ErrNotYourBattle))
	assert.Equal(t, http.StatusForbidden, statusFor(game.ErrForbidden))
	assert.Equal(t, http.StatusConflict, statusFor(game.ErrBattleInProgress))
	assert.Equal(t, http.StatusBadRequest, statusFor(game.ErrInvalidMove))
	assert.Equal(t, http.StatusInternalServerError, statusFor(assert.AnError))
}
