package game

import "time"

// Biome is the terrain tag of a single grid cell
type Biome string

const (
	BiomePlains  Biome = "plains"
	BiomeForest  Biome = "forest"
	BiomeDesert  Biome = "desert"
	BiomeCave    Biome = "cave"
	BiomeVolcano Biome = "volcano"
	BiomeTown    Biome = "town"
	BiomeCastle  Biome = "castle"
	BiomeAny     Biome = "any" // catalog tag only, never placed on the grid
)

// Game limits
const (
	MinGridSize      = 10
	MaxGridSize      = 100
	BaseMaxHearts    = 5
	MaxHeartsCap     = 20
	RecentActionsCap = 10
	DiceSides        = 6
)

// Position is a grid coordinate
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Game is the per-match record
type Game struct {
	ID                string         `json:"id"`
	GridSizeX         int            `json:"gridSizeX"`
	GridSizeY         int            `json:"gridSizeY"`
	BiomeGrid         [][]Biome      `json:"biomeGrid"` // indexed [y][x]
	TownCenters       []Position     `json:"townCenters"`
	CurrentTurn       int            `json:"currentTurn"`
	CurrentDiceRoll   *int           `json:"currentDiceRoll"`
	CurrentBattle     *Battle        `json:"currentBattle"`
	RecentlyFoundItem *FoundItem     `json:"recentlyFoundItem"`
	RecentActions     []RecentAction `json:"recentActions"`
	CreatedAt         time.Time      `json:"createdAt"`
}

// Player is one participant of a game
type Player struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PositionX  int       `json:"positionX"`
	PositionY  int       `json:"positionY"`
	MaxHearts  int       `json:"maxHearts"`
	Damage     int       `json:"damage"`
	ProfilePic string    `json:"profilePic"`
	Inventory  Inventory `json:"inventory"`
}

// Inventory holds owned item IDs per slot category
type Inventory struct {
	Weapons          []string `json:"weapons"`
	Armor            []string `json:"armor"`
	Items            []string `json:"items"` // consumables, duplicates allowed
	EquippedWeaponID string   `json:"equippedWeaponId"`
	EquippedArmorID  *string  `json:"equippedArmorId"`
}

// Battle is the single in-progress combat attached to a game
type Battle struct {
	PlayerID      string     `json:"playerId"`
	Monster       MonsterDef `json:"monster"` // frozen at encounter time
	PlayerHealth  int        `json:"playerHealth"`
	MonsterHealth int        `json:"monsterHealth"`
	BattleLog     []string   `json:"battleLog"`
	BattleActive  bool       `json:"battleActive"`
	StartedAt     time.Time  `json:"ts"`
}

// FoundItem is the transient loot notification
type FoundItem struct {
	PlayerID string   `json:"playerId"`
	Item     *ItemDef `json:"item"`
	Ts       int64    `json:"ts"`
}

// RecentAction types
const (
	ActionEquip     = "equip"
	ActionUseItem   = "use-item"
	ActionBattleEnd = "battle-end"
)

// RecentAction is a toast notification shown to every player
type RecentAction struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	PlayerName string `json:"playerName"`
	ItemName   string `json:"itemName"`
	Ts         int64  `json:"ts"`
}

// State is the full mutable record set of one game, as loaded from storage
type State struct {
	Game       *Game
	Players    []*Player // join order
	ValidMoves []Position
}

// Snapshot is the externally visible view served to polling clients
type Snapshot struct {
	Game
	Players    []*Player           `json:"players"`
	ValidMoves []Position          `json:"validMoves"`
	ItemMeta   map[string]*ItemDef `json:"itemMeta"`
}

// GameSummary is the admin listing entry for a game
type GameSummary struct {
	GameID          string          `json:"gameId"`
	Players         []PlayerSummary `json:"players"`
	CurrentTurn     *string         `json:"currentTurn"` // name of the player to act
	CurrentDiceRoll *int            `json:"currentDiceRoll"`
}

// PlayerSummary identifies a player in admin listings
type PlayerSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
