package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
)

// ClampGridSize bounds a requested grid dimension. Non-positive values fall
// back to the minimum.
func ClampGridSize(n int) int {
	if n <= 0 {
		return MinGridSize
	}
	return min(MaxGridSize, max(MinGridSize, n))
}

// NewGame creates an empty game over a generated biome grid
func NewGame(id string, grid [][]Biome, towns []Position) *Game {
	height := len(grid)
	width := 0
	if height > 0 {
		width = len(grid[0])
	}
	return &Game{
		ID:            id,
		GridSizeX:     width,
		GridSizeY:     height,
		BiomeGrid:     grid,
		TownCenters:   towns,
		RecentActions: make([]RecentAction, 0),
		CreatedAt:     time.Now(),
	}
}

// InBounds reports whether p lies on the grid
func (g *Game) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.GridSizeX && p.Y >= 0 && p.Y < g.GridSizeY
}

// BiomeAt returns the biome of a cell. Cells missing from the grid read as plains.
func (g *Game) BiomeAt(p Position) Biome {
	if p.Y < 0 || p.Y >= len(g.BiomeGrid) || p.X < 0 || p.X >= len(g.BiomeGrid[p.Y]) {
		return BiomePlains
	}
	return g.BiomeGrid[p.Y][p.X]
}

// TownCells lists every town cell in row-major order
func (g *Game) TownCells() []Position {
	towns := make([]Position, 0)
	for y, row := range g.BiomeGrid {
		for x, biome := range row {
			if biome == BiomeTown {
				towns = append(towns, Position{X: x, Y: y})
			}
		}
	}
	return towns
}

// NearestTown finds the closest town cell by Manhattan distance. Ties go to
// the first cell in row-major order.
func (g *Game) NearestTown(from Position) (Position, bool) {
	best, found := Position{}, false
	bestDist := 0
	for _, town := range g.TownCells() {
		d := manhattan(from, town)
		if !found || d < bestDist {
			best, bestDist, found = town, d, true
		}
	}
	return best, found
}

func manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Player returns a player of this game by ID
func (s *State) Player(playerID string) (*Player, error) {
	for _, p := range s.Players {
		if p.ID == playerID {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

// PlayerByName returns the player with the given name, or nil
func (s *State) PlayerByName(name string) *Player {
	for _, p := range s.Players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// CurrentPlayer returns the player whose turn it is, or nil before anyone joins
func (s *State) CurrentPlayer() *Player {
	if len(s.Players) == 0 || s.Game.CurrentTurn < 0 || s.Game.CurrentTurn >= len(s.Players) {
		return nil
	}
	return s.Players[s.Game.CurrentTurn]
}

// requireTurn resolves playerID and checks that it is that player's turn
func (s *State) requireTurn(playerID string) (*Player, error) {
	player, err := s.Player(playerID)
	if err != nil {
		return nil, err
	}
	if current := s.CurrentPlayer(); current == nil || current.ID != playerID {
		return nil, ErrNotYourTurn
	}
	return player, nil
}

// advanceTurn passes the turn to the next player in join order
func (s *State) advanceTurn() {
	if len(s.Players) == 0 {
		s.Game.CurrentTurn = 0
		return
	}
	s.Game.CurrentTurn = (s.Game.CurrentTurn + 1) % len(s.Players)
}

// occupied returns the cells held by every player except the one given
func (s *State) occupied(exceptID string) mapset.Set[Position] {
	cells := mapset.New[Position]()
	for _, p := range s.Players {
		if p.ID != exceptID {
			cells.Put(p.Position())
		}
	}
	return cells
}

// ReachableCells lists the cells within Manhattan distance steps of the
// player that are on the grid and not held by another player.
func (s *State) ReachableCells(player *Player, steps int) []Position {
	taken := s.occupied(player.ID)
	origin := player.Position()
	moves := make([]Position, 0)
	for dx := -steps; dx <= steps; dx++ {
		for dy := -steps; dy <= steps; dy++ {
			if abs(dx)+abs(dy) > steps {
				continue
			}
			cell := Position{X: origin.X + dx, Y: origin.Y + dy}
			if s.Game.InBounds(cell) && !taken.Has(cell) {
				moves = append(moves, cell)
			}
		}
	}
	return moves
}

// RollDice rolls for the current player and stores the cells they may move to
func (s *State) RollDice(rng Rand, playerID string) (int, []Position, error) {
	player, err := s.requireTurn(playerID)
	if err != nil {
		return 0, nil, err
	}
	if s.Game.CurrentBattle != nil {
		return 0, nil, ErrBattleInProgress
	}
	if s.Game.CurrentDiceRoll != nil {
		return 0, nil, ErrAlreadyRolled
	}

	roll := RollDice(rng, DiceSides)
	s.Game.CurrentDiceRoll = &roll
	s.ValidMoves = s.ReachableCells(player, roll)
	return roll, s.ValidMoves, nil
}

// MovePlayer moves the current player to a cell from the last roll. Entering
// a town heals; entering anything else may start a battle, which holds the
// turn until it is resolved. Reports whether a battle started.
func (s *State) MovePlayer(rng Rand, playerID string, target Position) (bool, error) {
	player, err := s.requireTurn(playerID)
	if err != nil {
		return false, err
	}
	if s.Game.CurrentBattle != nil {
		return false, ErrBattleInProgress
	}
	allowed := mapset.New[Position]()
	for _, m := range s.ValidMoves {
		allowed.Put(m)
	}
	if !allowed.Has(target) {
		return false, ErrInvalidMove
	}

	player.MoveTo(target)
	biome := s.Game.BiomeAt(target)
	if biome == BiomeTown {
		player.Damage = 0
	}
	s.Game.RecentlyFoundItem = nil

	started := s.rollEncounter(rng, player, biome)
	if !started {
		s.advanceTurn()
	}

	s.Game.CurrentDiceRoll = nil
	s.ValidMoves = nil
	return started, nil
}

// rollEncounter draws against the biome's encounter rate and attaches a
// battle against a random local monster on success
func (s *State) rollEncounter(rng Rand, player *Player, biome Biome) bool {
	if !check(rng, EncounterRates[biome]) {
		return false
	}
	monsters := MonstersFor(biome)
	if len(monsters) == 0 {
		return false
	}
	s.startBattle(player, monsters[rng.Intn(len(monsters))])
	return true
}

// addRecentAction records a notification, keeping only the latest few
func (s *State) addRecentAction(actionType, playerName, itemName string) {
	s.Game.RecentActions = append(s.Game.RecentActions, RecentAction{
		ID:         uuid.NewString(),
		Type:       actionType,
		PlayerName: playerName,
		ItemName:   itemName,
		Ts:         time.Now().UnixMilli(),
	})
	if n := len(s.Game.RecentActions); n > RecentActionsCap {
		s.Game.RecentActions = s.Game.RecentActions[n-RecentActionsCap:]
	}
}

// Summary describes the game for the admin listing
func (s *State) Summary() GameSummary {
	summary := GameSummary{
		GameID:          s.Game.ID,
		Players:         make([]PlayerSummary, 0, len(s.Players)),
		CurrentDiceRoll: s.Game.CurrentDiceRoll,
	}
	for _, p := range s.Players {
		summary.Players = append(summary.Players, PlayerSummary{ID: p.ID, Name: p.Name})
	}
	if current := s.CurrentPlayer(); current != nil {
		name := current.Name
		summary.CurrentTurn = &name
	}
	return summary
}
