package game

import (
	"strings"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
)

// NewPlayer creates a player with full health and the starter weapon
func NewPlayer(name string, pos Position, profilePic string) *Player {
	return &Player{
		ID:         uuid.NewString(),
		Name:       name,
		PositionX:  pos.X,
		PositionY:  pos.Y,
		MaxHearts:  BaseMaxHearts,
		ProfilePic: profilePic,
		Inventory: Inventory{
			Weapons:          []string{StarterWeaponID},
			Armor:            make([]string, 0),
			Items:            make([]string, 0),
			EquippedWeaponID: StarterWeaponID,
		},
	}
}

// Position returns the player's current cell
func (p *Player) Position() Position {
	return Position{X: p.PositionX, Y: p.PositionY}
}

// MoveTo places the player on a cell
func (p *Player) MoveTo(pos Position) {
	p.PositionX, p.PositionY = pos.X, pos.Y
}

// Health is the player's effective hearts
func (p *Player) Health() int {
	return p.MaxHearts - p.Damage
}

// Heal removes up to amount damage
func (p *Player) Heal(amount int) {
	p.Damage = max(0, p.Damage-amount)
}

// Weapon returns the equipped weapon, falling back to the fist
func (p *Player) Weapon() *ItemDef {
	if def, ok := LookupItem(p.Inventory.EquippedWeaponID); ok && def.Type == ItemWeapon {
		return def
	}
	fist, _ := LookupItem(StarterWeaponID)
	return fist
}

// Armor returns the equipped armor, or nil
func (p *Player) Armor() *ItemDef {
	if p.Inventory.EquippedArmorID == nil {
		return nil
	}
	if def, ok := LookupItem(*p.Inventory.EquippedArmorID); ok && def.Type == ItemArmor {
		return def
	}
	return nil
}

// Add puts an item in the bucket for its type. Weapons and armor are kept
// once; consumables stack.
func (inv *Inventory) Add(def *ItemDef) {
	switch def.Type {
	case ItemWeapon:
		if !contains(inv.Weapons, def.ID) {
			inv.Weapons = append(inv.Weapons, def.ID)
		}
	case ItemArmor:
		if !contains(inv.Armor, def.ID) {
			inv.Armor = append(inv.Armor, def.ID)
		}
	default:
		inv.Items = append(inv.Items, def.ID)
	}
}

// Owns reports whether the item is in the bucket for its type
func (inv *Inventory) Owns(def *ItemDef) bool {
	switch def.Type {
	case ItemWeapon:
		return contains(inv.Weapons, def.ID)
	case ItemArmor:
		return contains(inv.Armor, def.ID)
	default:
		return contains(inv.Items, def.ID)
	}
}

// removeItem drops a single unit of a consumable
func (inv *Inventory) removeItem(id string) {
	for i, owned := range inv.Items {
		if owned == id {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return
		}
	}
}

// IDs lists every item ID the inventory references, equipped slots included
func (inv *Inventory) IDs() []string {
	ids := make([]string, 0, len(inv.Weapons)+len(inv.Armor)+len(inv.Items)+2)
	ids = append(ids, inv.Weapons...)
	ids = append(ids, inv.Armor...)
	ids = append(ids, inv.Items...)
	if inv.EquippedWeaponID != "" {
		ids = append(ids, inv.EquippedWeaponID)
	}
	if inv.EquippedArmorID != nil {
		ids = append(ids, *inv.EquippedArmorID)
	}
	return ids
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// Join adds a player to the game, or returns the existing one with the same
// name. The bool reports whether a new player was created.
func (s *State) Join(rng Rand, name string) (*Player, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, ErrInvalidPlayerName
	}
	if existing := s.PlayerByName(name); existing != nil {
		return existing, false, nil
	}

	pic := s.pickProfilePicture(rng)
	pos := s.spawnPosition(rng)
	player := NewPlayer(name, pos, pic)
	s.Players = append(s.Players, player)
	return player, true, nil
}

// pickProfilePicture chooses a picture nobody in the game is using
func (s *State) pickProfilePicture(rng Rand) string {
	used := mapset.New[string]()
	for _, p := range s.Players {
		used.Put(p.ProfilePic)
	}
	free := make([]string, 0, len(ProfilePictures))
	for _, pic := range ProfilePictures {
		if !used.Has(pic) {
			free = append(free, pic)
		}
	}
	if len(free) == 0 {
		return DefaultProfilePicture
	}
	return free[rng.Intn(len(free))]
}

// spawnPosition picks a free plains cell next to a town. When none is left it
// falls back to any free plains cell, then to any free cell.
func (s *State) spawnPosition(rng Rand) Position {
	taken := s.occupied("")
	g := s.Game

	centers := g.TownCenters
	if len(centers) == 0 {
		centers = g.TownCells()
	}
	seen := mapset.New[Position]()
	candidates := make([]Position, 0)
	for _, c := range centers {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				cell := Position{X: c.X + dx, Y: c.Y + dy}
				if (dx == 0 && dy == 0) || !g.InBounds(cell) || seen.Has(cell) {
					continue
				}
				seen.Put(cell)
				if g.BiomeAt(cell) == BiomePlains && !taken.Has(cell) {
					candidates = append(candidates, cell)
				}
			}
		}
	}

	if len(candidates) == 0 {
		candidates = s.freeCells(taken, func(b Biome) bool { return b == BiomePlains })
	}
	if len(candidates) == 0 {
		candidates = s.freeCells(taken, func(Biome) bool { return true })
	}
	if len(candidates) == 0 {
		return Position{}
	}
	return candidates[rng.Intn(len(candidates))]
}

func (s *State) freeCells(taken mapset.Set[Position], keep func(Biome) bool) []Position {
	cells := make([]Position, 0)
	for y := 0; y < s.Game.GridSizeY; y++ {
		for x := 0; x < s.Game.GridSizeX; x++ {
			cell := Position{X: x, Y: y}
			if !taken.Has(cell) && keep(s.Game.BiomeAt(cell)) {
				cells = append(cells, cell)
			}
		}
	}
	return cells
}

// SetProfilePicture changes a player's cosmetic picture
func (s *State) SetProfilePicture(playerID, pic string) error {
	player, err := s.Player(playerID)
	if err != nil {
		return err
	}
	if pic != DefaultProfilePicture && !IsProfilePicture(pic) {
		return ErrInvalidProfilePicture
	}
	player.ProfilePic = pic
	return nil
}

// EquipItem puts an owned weapon or armor in its slot
func (s *State) EquipItem(playerID, itemID string) (*ItemDef, error) {
	player, err := s.Player(playerID)
	if err != nil {
		return nil, err
	}
	def, ok := LookupItem(itemID)
	if !ok || (def.Type != ItemWeapon && def.Type != ItemArmor) {
		return nil, ErrInvalidItem
	}
	if !player.Inventory.Owns(def) {
		return nil, ErrItemNotOwned
	}

	if def.Type == ItemWeapon {
		player.Inventory.EquippedWeaponID = def.ID
	} else {
		id := def.ID
		player.Inventory.EquippedArmorID = &id
	}
	s.addRecentAction(ActionEquip, player.Name, def.Name)
	return def, nil
}

// UseItem consumes one unit of an owned consumable and applies its effect.
// Nothing changes when the effect cannot apply.
func (s *State) UseItem(playerID, itemID string) (*ItemDef, error) {
	player, err := s.Player(playerID)
	if err != nil {
		return nil, err
	}
	if !contains(player.Inventory.Items, itemID) {
		return nil, ErrItemNotOwned
	}
	def, ok := LookupItem(itemID)
	if !ok || def.Type != ItemConsumable {
		return nil, ErrItemNotUsable
	}

	switch def.Effect {
	case EffectHeal:
		player.Heal(def.Heal)
	case EffectFullHeal:
		player.Damage = 0
	case EffectExtraHeart:
		player.MaxHearts = min(MaxHeartsCap, player.MaxHearts+1)
	case EffectTeleport:
		town, found := s.Game.NearestTown(player.Position())
		if !found {
			return nil, ErrItemNotUsable
		}
		player.MoveTo(town)
	default:
		return nil, ErrItemNotUsable
	}

	player.Inventory.removeItem(def.ID)
	s.addRecentAction(ActionUseItem, player.Name, def.Name)
	return def, nil
}
