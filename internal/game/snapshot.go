package game

// Snapshot builds the polling view. itemMeta only carries catalog entries that
// some player or the loot notification refers to.
func (s *State) Snapshot() *Snapshot {
	meta := make(map[string]*ItemDef)
	for _, p := range s.Players {
		for _, id := range p.Inventory.IDs() {
			if def, ok := LookupItem(id); ok {
				meta[id] = def
			}
		}
	}
	if found := s.Game.RecentlyFoundItem; found != nil && found.Item != nil {
		meta[found.Item.ID] = found.Item
	}

	players := s.Players
	if players == nil {
		players = make([]*Player, 0)
	}
	moves := s.ValidMoves
	if moves == nil {
		moves = make([]Position, 0)
	}
	return &Snapshot{
		Game:       *s.Game,
		Players:    players,
		ValidMoves: moves,
		ItemMeta:   meta,
	}
}
