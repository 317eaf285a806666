package game

// scriptedRand replays fixed draws. Once a script runs out Intn returns 0 and
// Float64 returns 0.99, which misses every check.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// newTestState builds a w x h game of one biome with towns at the given cells
func newTestState(w, h int, fill Biome, towns ...Position) *State {
	grid := make([][]Biome, h)
	for y := range grid {
		grid[y] = make([]Biome, w)
		for x := range grid[y] {
			grid[y][x] = fill
		}
	}
	for _, t := range towns {
		grid[t.Y][t.X] = BiomeTown
	}
	return &State{Game: NewGame("g1", grid, towns)}
}

func addPlayer(s *State, name string, x, y int) *Player {
	p := NewPlayer(name, Position{X: x, Y: y}, DefaultProfilePicture)
	s.Players = append(s.Players, p)
	return p
}

func mustItem(id string) *ItemDef {
	def, ok := LookupItem(id)
	if !ok {
		panic("unknown item " + id)
	}
	return def
}
