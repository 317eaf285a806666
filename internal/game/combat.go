package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Rand is the random source for every draw the game makes: dice, hit and
// block checks, encounters, loot and spawn positions.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// lockedRand is a seeded source safe for concurrent use
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a seeded random source. A zero seed uses the current time.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// RollDice simulates a dice roll with the given number of sides
func RollDice(rng Rand, sides int) int {
	return rng.Intn(sides) + 1
}

// check succeeds with probability p
func check(rng Rand, p float64) bool {
	return rng.Float64() < p
}

// strike is the outcome of one side attacking the other
type strike struct {
	Hit     bool
	Blocked bool
	Damage  int
}

// resolveStrike rolls a hit against hitChance and, on a hit, an independent
// block against blockChance. A block reduces the damage by blockValue.
func resolveStrike(rng Rand, attack int, hitChance float64, blockValue int, blockChance float64) strike {
	if !check(rng, hitChance) {
		return strike{}
	}
	s := strike{Hit: true, Damage: attack}
	if blockChance > 0 && check(rng, blockChance) {
		s.Blocked = true
		s.Damage = max(0, attack-blockValue)
	}
	return s
}

// startBattle attaches a new battle against monster for player
func (s *State) startBattle(player *Player, monster MonsterDef) {
	s.Game.CurrentBattle = &Battle{
		PlayerID:      player.ID,
		Monster:       monster,
		PlayerHealth:  player.Health(),
		MonsterHealth: monster.StartingHealth(),
		BattleLog: []string{
			fmt.Sprintf("A wild %s appeared!", monster.Name),
			fmt.Sprintf("%s vs %s", player.Name, monster.Name),
		},
		BattleActive: true,
		StartedAt:    time.Now(),
	}
}

// activeBattle returns the game's battle if it is still being fought by playerID
func (s *State) activeBattle(playerID string) (*Battle, error) {
	battle := s.Game.CurrentBattle
	if battle == nil || !battle.BattleActive {
		return nil, ErrNoActiveBattle
	}
	if battle.PlayerID != playerID {
		return nil, ErrNotYourBattle
	}
	return battle, nil
}

// Attack runs one exchange: the player strikes, then the monster strikes
// back if it is still standing. A finished battle stays attached.
func (s *State) Attack(rng Rand, playerID string) (*Battle, error) {
	battle, err := s.activeBattle(playerID)
	if err != nil {
		return nil, err
	}
	player, err := s.Player(playerID)
	if err != nil {
		return nil, err
	}
	monster := battle.Monster

	weapon := player.Weapon()
	hit := resolveStrike(rng, weapon.Attack, weapon.AttackChance, monster.Defense, monster.DefenseChance)
	if hit.Hit {
		if hit.Blocked {
			battle.log("%s blocks! Damage reduced.", monster.Name)
		}
		battle.MonsterHealth -= hit.Damage
		battle.log("%s attacks with %s: Hit for %d damage!", player.Name, weapon.Name, hit.Damage)
	} else {
		battle.log("%s attacks with %s: Miss!", player.Name, weapon.Name)
	}

	if battle.MonsterHealth <= 0 {
		battle.log("%s defeated!", monster.Name)
		battle.BattleActive = false
		return battle, nil
	}

	armorValue, armorChance := 0, 0.0
	if armor := player.Armor(); armor != nil {
		armorValue, armorChance = armor.Defense, armor.DefenseChance
	}
	counter := resolveStrike(rng, monster.Attack, monster.AttackChance, armorValue, armorChance)
	if counter.Hit {
		if counter.Blocked {
			battle.log("%s blocks! Damage reduced.", player.Name)
		}
		battle.PlayerHealth -= counter.Damage
		battle.log("%s attacks: Hit for %d damage!", monster.Name, counter.Damage)
	} else {
		battle.log("%s attacks: Miss!", monster.Name)
	}

	if battle.PlayerHealth <= 0 {
		battle.PlayerHealth = 0
		battle.log("%s fainted due to injuries.", player.Name)
		battle.BattleActive = false
	}
	player.Damage = max(0, player.MaxHearts-battle.PlayerHealth)

	return battle, nil
}

// Run abandons the battle. No loot is awarded and the turn passes.
func (s *State) Run(playerID string) (*Battle, error) {
	battle, err := s.activeBattle(playerID)
	if err != nil {
		return nil, err
	}
	player, err := s.Player(playerID)
	if err != nil {
		return nil, err
	}

	battle.BattleActive = false
	battle.log("%s ran away! The battle is over.", player.Name)
	s.addRecentAction(ActionBattleEnd, player.Name, "ran away from "+battle.Monster.Name)
	s.endBattle()
	return battle, nil
}

// CollectLoot awards one random item from the defeated monster's biome and
// closes the battle.
func (s *State) CollectLoot(rng Rand, playerID string) (*ItemDef, error) {
	battle := s.Game.CurrentBattle
	if battle == nil || battle.PlayerID != playerID || battle.BattleActive ||
		battle.MonsterHealth > 0 || battle.PlayerHealth <= 0 {
		return nil, ErrCannotCollectLoot
	}
	player, err := s.Player(playerID)
	if err != nil {
		return nil, err
	}

	var reward *ItemDef
	if pool := LootPool(battle.Monster.PrimaryBiome()); len(pool) > 0 {
		reward = pool[rng.Intn(len(pool))]
		player.Inventory.Add(reward)
	}

	s.Game.RecentlyFoundItem = &FoundItem{
		PlayerID: playerID,
		Item:     reward,
		Ts:       time.Now().UnixMilli(),
	}
	s.addRecentAction(ActionBattleEnd, player.Name, "defeated "+battle.Monster.Name)
	s.endBattle()
	return reward, nil
}

// ReturnToTown recovers a fainted player at the nearest town and closes the battle.
func (s *State) ReturnToTown(playerID string) error {
	battle := s.Game.CurrentBattle
	if battle == nil || battle.PlayerID != playerID || battle.BattleActive || battle.PlayerHealth > 0 {
		return ErrCannotReturnToTown
	}
	player, err := s.Player(playerID)
	if err != nil {
		return err
	}

	if town, ok := s.Game.NearestTown(player.Position()); ok {
		player.MoveTo(town)
	}
	player.Damage = 0
	s.addRecentAction(ActionBattleEnd, player.Name, "returned to town after fainting")
	s.endBattle()
	return nil
}

// endBattle detaches the battle and passes the turn
func (s *State) endBattle() {
	s.Game.CurrentBattle = nil
	s.advanceTurn()
}

func (b *Battle) log(format string, args ...interface{}) {
	b.BattleLog = append(b.BattleLog, fmt.Sprintf(format, args...))
}
