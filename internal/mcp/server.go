package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/yourusername/save-the-dragon/internal/engine"
	"github.com/yourusername/save-the-dragon/internal/game"
)

// Errors for calls that never reach the engine
var (
	ErrUnknownTool      = errors.New("unknown tool")
	ErrInvalidArguments = errors.New("invalid arguments")
)

// Server exposes the game engine as MCP tools
type Server struct {
	engine *engine.Engine
}

// NewServer creates a new MCP server instance
func NewServer(e *engine.Engine) *Server {
	return &Server{engine: e}
}

// Tool represents an MCP tool definition
type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema interface{} `json:"inputSchema"`
}

// ToolResult represents the result of a tool call
type ToolResult struct {
	Content   []ContentBlock `json:"content"`
	IsError   bool           `json:"isError,omitempty"`
	GameState *game.Snapshot `json:"gameState,omitempty"`
}

// ContentBlock represents a content block in the result
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

func textResult(text string, snap *game.Snapshot) *ToolResult {
	return &ToolResult{
		Content:   []ContentBlock{{Type: "text", Text: text}},
		GameState: snap,
	}
}

// ruleResult turns a rule violation into an error result the caller can show.
// Anything else is returned as a Go error.
func ruleResult(err error) (*ToolResult, error) {
	if engine.IsRuleError(err) {
		return &ToolResult{
			Content: []ContentBlock{{Type: "text", Text: err.Error()}},
			IsError: true,
		}, nil
	}
	return nil, err
}

type schemaProp map[string]interface{}

func objectSchema(props map[string]schemaProp, required ...string) map[string]interface{} {
	properties := make(map[string]interface{}, len(props))
	for k, v := range props {
		properties[k] = v
	}
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

var (
	gameIDProp   = schemaProp{"type": "string", "description": "ID of the game"}
	playerIDProp = schemaProp{"type": "string", "description": "ID of the acting player"}
)

func playerSchema(extra map[string]schemaProp, required ...string) map[string]interface{} {
	props := map[string]schemaProp{"game_id": gameIDProp, "player_id": playerIDProp}
	for k, v := range extra {
		props[k] = v
	}
	return objectSchema(props, append([]string{"game_id", "player_id"}, required...)...)
}

// ListTools returns all available tools
func (s *Server) ListTools() []Tool {
	itemProp := map[string]schemaProp{
		"item_id": {"type": "string", "description": "Catalog ID of the item"},
	}
	return []Tool{
		{
			Name:        "create_game",
			Description: "Create a new game world. Sizes are clamped to 10..100.",
			InputSchema: objectSchema(map[string]schemaProp{
				"grid_size_x": {"type": "integer", "description": "Grid width"},
				"grid_size_y": {"type": "integer", "description": "Grid height"},
			}),
		},
		{
			Name:        "join_game",
			Description: "Join a game by name. Joining again with the same name returns the same player.",
			InputSchema: objectSchema(map[string]schemaProp{
				"game_id":     gameIDProp,
				"player_name": {"type": "string", "description": "Name of your player"},
			}, "game_id", "player_name"),
		},
		{
			Name:        "get_state",
			Description: "Get the current game state",
			InputSchema: objectSchema(map[string]schemaProp{"game_id": gameIDProp}, "game_id"),
		},
		{
			Name:        "roll_dice",
			Description: "Roll the dice on your turn to see where you can move",
			InputSchema: playerSchema(nil),
		},
		{
			Name:        "move",
			Description: "Move to one of the cells offered by your last roll",
			InputSchema: playerSchema(map[string]schemaProp{
				"x": {"type": "integer", "description": "Target column"},
				"y": {"type": "integer", "description": "Target row"},
			}, "x", "y"),
		},
		{
			Name:        "attack",
			Description: "Attack the monster in your current battle",
			InputSchema: playerSchema(nil),
		},
		{
			Name:        "run",
			Description: "Run away from your current battle",
			InputSchema: playerSchema(nil),
		},
		{
			Name:        "collect_loot",
			Description: "Collect the reward for a battle you won",
			InputSchema: playerSchema(nil),
		},
		{
			Name:        "return_to_town",
			Description: "Recover at the nearest town after fainting",
			InputSchema: playerSchema(nil),
		},
		{
			Name:        "equip",
			Description: "Equip a weapon or armor from your inventory",
			InputSchema: playerSchema(itemProp, "item_id"),
		},
		{
			Name:        "use_item",
			Description: "Use a consumable from your inventory",
			InputSchema: playerSchema(itemProp, "item_id"),
		},
	}
}

// CallTool executes an MCP tool
func (s *Server) CallTool(ctx context.Context, name string, arguments map[string]interface{}) (*ToolResult, error) {
	args := toolArgs(arguments)

	switch name {
	case "create_game":
		return s.handleCreateGame(ctx, args.optionalInt("grid_size_x"), args.optionalInt("grid_size_y"))
	case "join_game":
		gameID, err := args.str("game_id")
		if err != nil {
			return nil, err
		}
		playerName, err := args.str("player_name")
		if err != nil {
			return nil, err
		}
		return s.handleJoin(ctx, gameID, playerName)
	case "get_state":
		gameID, err := args.str("game_id")
		if err != nil {
			return nil, err
		}
		return s.handleGetState(ctx, gameID)
	}

	gameID, err := args.str("game_id")
	if err != nil {
		return nil, err
	}
	playerID, err := args.str("player_id")
	if err != nil {
		return nil, err
	}

	switch name {
	case "roll_dice":
		return s.handleRoll(ctx, gameID, playerID)
	case "move":
		x, err := args.integer("x")
		if err != nil {
			return nil, err
		}
		y, err := args.integer("y")
		if err != nil {
			return nil, err
		}
		return s.handleMove(ctx, gameID, playerID, game.Position{X: x, Y: y})
	case "attack":
		return s.handleAttack(ctx, gameID, playerID)
	case "run":
		return s.handleRun(ctx, gameID, playerID)
	case "collect_loot":
		return s.handleCollectLoot(ctx, gameID, playerID)
	case "return_to_town":
		return s.handleReturnToTown(ctx, gameID, playerID)
	case "equip", "use_item":
		itemID, err := args.str("item_id")
		if err != nil {
			return nil, err
		}
		if name == "equip" {
			return s.handleEquip(ctx, gameID, playerID, itemID)
		}
		return s.handleUseItem(ctx, gameID, playerID, itemID)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
}

// handleCreateGame creates a new world
func (s *Server) handleCreateGame(ctx context.Context, width, height int) (*ToolResult, error) {
	gameID, err := s.engine.CreateGame(ctx, width, height)
	if err != nil {
		return nil, err
	}
	snap, err := s.engine.GetState(ctx, gameID)
	if err != nil {
		return ruleResult(err)
	}
	return textResult(fmt.Sprintf("Created game %s (%dx%d).", gameID, snap.GridSizeX, snap.GridSizeY), snap), nil
}

func (s *Server) handleJoin(ctx context.Context, gameID, playerName string) (*ToolResult, error) {
	playerID, err := s.engine.JoinGame(ctx, gameID, playerName)
	if err != nil {
		return ruleResult(err)
	}
	snap, err := s.engine.GetState(ctx, gameID)
	if err != nil {
		return ruleResult(err)
	}
	return textResult(fmt.Sprintf("%s joined as player %s.", playerName, playerID), snap), nil
}

func (s *Server) handleGetState(ctx context.Context, gameID string) (*ToolResult, error) {
	snap, err := s.engine.GetState(ctx, gameID)
	if err != nil {
		return ruleResult(err)
	}
	return textResult(describeTurn(snap), snap), nil
}

func (s *Server) handleRoll(ctx context.Context, gameID, playerID string) (*ToolResult, error) {
	roll, moves, err := s.engine.RollDice(ctx, gameID, playerID)
	if err != nil {
		return ruleResult(err)
	}
	return s.withState(ctx, gameID, fmt.Sprintf("You rolled a %d. %d cells are reachable.", roll, len(moves)))
}

func (s *Server) handleMove(ctx context.Context, gameID, playerID string, target game.Position) (*ToolResult, error) {
	snap, err := s.engine.MovePlayer(ctx, gameID, playerID, target)
	if err != nil {
		return ruleResult(err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Moved to (%d, %d), %s.", target.X, target.Y, snap.BiomeAt(target)))
	if b := snap.CurrentBattle; b != nil {
		sb.WriteString("\n\n=== BATTLE ===\n")
		sb.WriteString(strings.Join(b.BattleLog, "\n"))
	}
	return textResult(sb.String(), snap), nil
}

func (s *Server) handleAttack(ctx context.Context, gameID, playerID string) (*ToolResult, error) {
	battle, err := s.engine.Attack(ctx, gameID, playerID)
	if err != nil {
		return ruleResult(err)
	}

	var sb strings.Builder
	sb.WriteString("=== BATTLE ===\n")
	sb.WriteString(strings.Join(battle.BattleLog, "\n"))
	switch {
	case battle.BattleActive:
		sb.WriteString(fmt.Sprintf("\n\nYou: %d hearts. %s: %d.", battle.PlayerHealth, battle.Monster.Name, battle.MonsterHealth))
	case battle.MonsterHealth <= 0:
		sb.WriteString("\n\nVictory! Use 'collect_loot' to claim your reward.")
	default:
		sb.WriteString("\n\nYou fainted. Use 'return_to_town' to recover.")
	}
	return s.withState(ctx, gameID, sb.String())
}

func (s *Server) handleRun(ctx context.Context, gameID, playerID string) (*ToolResult, error) {
	battle, err := s.engine.Run(ctx, gameID, playerID)
	if err != nil {
		return ruleResult(err)
	}
	return s.withState(ctx, gameID, fmt.Sprintf("You ran away from the %s.", battle.Monster.Name))
}

func (s *Server) handleCollectLoot(ctx context.Context, gameID, playerID string) (*ToolResult, error) {
	reward, err := s.engine.CollectLoot(ctx, gameID, playerID)
	if err != nil {
		return ruleResult(err)
	}
	text := "The monster left nothing behind."
	if reward != nil {
		text = fmt.Sprintf("You found: %s!", reward.Name)
	}
	return s.withState(ctx, gameID, text)
}

func (s *Server) handleReturnToTown(ctx context.Context, gameID, playerID string) (*ToolResult, error) {
	if err := s.engine.ReturnToTown(ctx, gameID, playerID); err != nil {
		return ruleResult(err)
	}
	return s.withState(ctx, gameID, "You wake up in town, fully healed.")
}

func (s *Server) handleEquip(ctx context.Context, gameID, playerID, itemID string) (*ToolResult, error) {
	if err := s.engine.EquipItem(ctx, gameID, playerID, itemID); err != nil {
		return ruleResult(err)
	}
	return s.withState(ctx, gameID, fmt.Sprintf("Equipped %s.", itemName(itemID)))
}

func (s *Server) handleUseItem(ctx context.Context, gameID, playerID, itemID string) (*ToolResult, error) {
	if err := s.engine.UseItem(ctx, gameID, playerID, itemID); err != nil {
		return ruleResult(err)
	}
	return s.withState(ctx, gameID, fmt.Sprintf("Used %s.", itemName(itemID)))
}

// withState attaches the fresh snapshot to a successful result
func (s *Server) withState(ctx context.Context, gameID, text string) (*ToolResult, error) {
	snap, err := s.engine.GetState(ctx, gameID)
	if err != nil {
		return ruleResult(err)
	}
	return textResult(text, snap), nil
}

func describeTurn(snap *game.Snapshot) string {
	if len(snap.Players) == 0 {
		return "No players have joined yet."
	}
	current := snap.Players[snap.CurrentTurn%len(snap.Players)]
	if snap.CurrentBattle != nil {
		return fmt.Sprintf("%s is fighting a %s.", current.Name, snap.CurrentBattle.Monster.Name)
	}
	if snap.CurrentDiceRoll != nil {
		return fmt.Sprintf("%s rolled a %d and must move.", current.Name, *snap.CurrentDiceRoll)
	}
	return fmt.Sprintf("It is %s's turn to roll.", current.Name)
}

func itemName(id string) string {
	if def, ok := game.LookupItem(id); ok {
		return def.Name
	}
	return id
}

// toolArgs wraps decoded JSON arguments
type toolArgs map[string]interface{}

func (a toolArgs) str(key string) (string, error) {
	v, ok := a[key].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidArguments, key)
	}
	return v, nil
}

func (a toolArgs) integer(key string) (int, error) {
	switch v := a[key].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %s", ErrInvalidArguments, key)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrInvalidArguments, key)
	}
}

// optionalInt returns 0 for a missing or malformed value
func (a toolArgs) optionalInt(key string) int {
	n, _ := a.integer(key)
	return n
}
