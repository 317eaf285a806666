package generator

import (
	mrand "math/rand"
	"sync"
	"time"

	"github.com/yourusername/save-the-dragon/internal/game"
)

const (
	patchRadius      = 2
	patchFill        = 0.7
	castleTownMinGap = 6
	maxAttempts      = 1000
)

// BiomeGenerator handles procedural terrain generation
type BiomeGenerator struct {
	mu     sync.Mutex
	seed   int64
	random *mrand.Rand
}

// NewBiomeGenerator creates a new terrain generator. A zero seed uses the current time.
func NewBiomeGenerator(seed int64) *BiomeGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &BiomeGenerator{
		seed:   seed,
		random: mrand.New(mrand.NewSource(seed)),
	}
}

// Seed returns the seed the generator was built with
func (bg *BiomeGenerator) Seed() int64 {
	return bg.seed
}

// Generate creates a width x height biome grid, indexed [y][x], and returns
// it with the town centres it placed.
func (bg *BiomeGenerator) Generate(width, height int) ([][]game.Biome, []game.Position) {
	bg.mu.Lock()
	defer bg.mu.Unlock()

	grid := make([][]game.Biome, height)
	for y := range grid {
		grid[y] = make([]game.Biome, width)
		for x := range grid[y] {
			grid[y][x] = game.BiomePlains
		}
	}

	patches := width * height / 30
	bg.placePatches(grid, game.BiomeForest, patches)
	bg.placePatches(grid, game.BiomeDesert, patches)
	bg.placeCaves(grid, max(1, width*height/100))
	castle := bg.placeCastle(grid)
	towns := bg.placeTowns(grid, castle, max(2, width*height/80))

	return grid, towns
}

// placePatches scatters roughly square patches of a biome
func (bg *BiomeGenerator) placePatches(grid [][]game.Biome, biome game.Biome, count int) {
	height, width := len(grid), len(grid[0])
	for i := 0; i < count; i++ {
		cx := bg.random.Intn(width)
		cy := bg.random.Intn(height)
		for dx := -patchRadius; dx <= patchRadius; dx++ {
			for dy := -patchRadius; dy <= patchRadius; dy++ {
				x, y := cx+dx, cy+dy
				if inGrid(grid, x, y) && bg.random.Float64() < patchFill {
					grid[y][x] = biome
				}
			}
		}
	}
}

// placeCaves turns single plains cells into caves
func (bg *BiomeGenerator) placeCaves(grid [][]game.Biome, count int) {
	height, width := len(grid), len(grid[0])
	for placed, attempts := 0, 0; placed < count && attempts < maxAttempts; attempts++ {
		x, y := bg.random.Intn(width), bg.random.Intn(height)
		if grid[y][x] == game.BiomePlains {
			grid[y][x] = game.BiomeCave
			placed++
		}
	}
}

// placeCastle puts the castle in a random corner, ringed by volcano
func (bg *BiomeGenerator) placeCastle(grid [][]game.Biome) game.Position {
	height, width := len(grid), len(grid[0])
	corners := []game.Position{
		{X: 0, Y: 0},
		{X: 0, Y: height - 1},
		{X: width - 1, Y: 0},
		{X: width - 1, Y: height - 1},
	}
	castle := corners[bg.random.Intn(len(corners))]
	grid[castle.Y][castle.X] = game.BiomeCastle
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			x, y := castle.X+dx, castle.Y+dy
			if (dx != 0 || dy != 0) && inGrid(grid, x, y) {
				grid[y][x] = game.BiomeVolcano
			}
		}
	}
	return castle
}

// placeTowns drops single-cell towns on plains far enough from the castle and
// clears their surroundings back to plains
func (bg *BiomeGenerator) placeTowns(grid [][]game.Biome, castle game.Position, count int) []game.Position {
	height, width := len(grid), len(grid[0])
	towns := make([]game.Position, 0, count)
	for attempts := 0; len(towns) < count && attempts < maxAttempts; attempts++ {
		x, y := bg.random.Intn(width), bg.random.Intn(height)
		dist := abs(x-castle.X) + abs(y-castle.Y)
		if grid[y][x] != game.BiomePlains || dist < castleTownMinGap {
			continue
		}
		grid[y][x] = game.BiomeTown
		towns = append(towns, game.Position{X: x, Y: y})
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				nx, ny := x+dx, y+dy
				if (dx != 0 || dy != 0) && inGrid(grid, nx, ny) && grid[ny][nx] != game.BiomeTown {
					grid[ny][nx] = game.BiomePlains
				}
			}
		}
	}
	return towns
}

func inGrid(grid [][]game.Biome, x, y int) bool {
	return y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y])
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
