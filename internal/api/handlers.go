package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/yourusername/save-the-dragon/internal/game"
)

// parseNumber reads a JSON number or a numeric string
func parseNumber(data []byte) (float64, error) {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, err
		}
		n = json.Number(strings.TrimSpace(s))
	}
	v, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a finite number")
	}
	return v, nil
}

// flexInt is a lenient size field: anything unparsable reads as 0, which
// game.ClampGridSize turns into the default size
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	v, err := parseNumber(data)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt(math.Max(math.MinInt32, math.Min(math.MaxInt32, math.Trunc(v))))
	return nil
}

// coordinate is a grid coordinate field. It must be a whole number.
type coordinate int

func (c *coordinate) UnmarshalJSON(data []byte) error {
	v, err := parseNumber(data)
	if err != nil {
		return fmt.Errorf("invalid coordinate %s: %w", data, err)
	}
	if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
		return fmt.Errorf("invalid coordinate %s", data)
	}
	*c = coordinate(v)
	return nil
}

type playerRequest struct {
	PlayerID string `json:"playerId"`
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GridSizeX flexInt `json:"gridSizeX"`
		GridSizeY flexInt `json:"gridSizeY"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	gameID, err := s.engine.CreateGame(r.Context(), int(req.GridSizeX), int(req.GridSizeY))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"gameId": gameID})
}

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerName string `json:"playerName"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	playerID, err := s.engine.JoinGame(r.Context(), mux.Vars(r)["id"], req.PlayerName)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"playerId": playerID})
}

// handleReconnect finds a player by name so a client can resume a session
func (s *Server) handleReconnect(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerName string `json:"playerName"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	playerID, snap, err := s.engine.Reconnect(r.Context(), mux.Vars(r)["id"], req.PlayerName)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"playerId":  playerID,
		"gameState": snap,
	})
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	snap, err := s.engine.GetState(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleRoll(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	roll, moves, err := s.engine.RollDice(r.Context(), mux.Vars(r)["id"], req.PlayerID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"diceRoll":   roll,
		"validMoves": moves,
	})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID string      `json:"playerId"`
		TargetX  *coordinate `json:"targetX"`
		TargetY  *coordinate `json:"targetY"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.TargetX == nil || req.TargetY == nil {
		badRequest(w, "targetX and targetY are required")
		return
	}

	target := game.Position{X: int(*req.TargetX), Y: int(*req.TargetY)}
	snap, err := s.engine.MovePlayer(r.Context(), mux.Vars(r)["id"], req.PlayerID, target)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"gameState": snap,
	})
}

func (s *Server) handleAttack(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	battle, err := s.engine.Attack(r.Context(), mux.Vars(r)["id"], req.PlayerID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"battleLog":    battle.BattleLog,
		"battleActive": battle.BattleActive,
	})
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	battle, err := s.engine.Run(r.Context(), mux.Vars(r)["id"], req.PlayerID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"battleLog": battle.BattleLog,
		"ranAway":   true,
	})
}

func (s *Server) handleCollectLoot(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	reward, err := s.engine.CollectLoot(r.Context(), mux.Vars(r)["id"], req.PlayerID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"reward":  reward,
	})
}

func (s *Server) handleReturnToTown(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	if err := s.engine.ReturnToTown(r.Context(), mux.Vars(r)["id"], req.PlayerID); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"returnedToTown": true,
	})
}

func (s *Server) handleEquip(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID string `json:"itemId"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	vars := mux.Vars(r)
	if err := s.engine.EquipItem(r.Context(), vars["id"], vars["pid"], req.ItemID); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleUseItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ItemID string `json:"itemId"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	vars := mux.Vars(r)
	if err := s.engine.UseItem(r.Context(), vars["id"], vars["pid"], req.ItemID); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleProfilePic(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProfilePic string `json:"profilePic"`
	}
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	vars := mux.Vars(r)
	if err := s.engine.SetProfilePicture(r.Context(), vars["id"], vars["pid"], req.ProfilePic); err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleProfilePictures(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.ProfilePictures())
}

func (s *Server) handleAdminListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.engine.AdminListGames(r.Context(), r.URL.Query().Get("password"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, games)
}

func (s *Server) handleAdminDeleteGame(w http.ResponseWriter, r *http.Request) {
	err := s.engine.AdminDeleteGame(r.Context(), r.URL.Query().Get("password"), mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
