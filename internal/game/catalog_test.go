package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	t.Run("item ids are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, def := range ItemDefs {
			assert.False(t, seen[def.ID], "duplicate item %s", def.ID)
			seen[def.ID] = true
		}
	})

	t.Run("fist never drops", func(t *testing.T) {
		fist, ok := LookupItem(StarterWeaponID)
		require.True(t, ok)
		assert.True(t, fist.NoRandom)
		for _, b := range []Biome{BiomePlains, BiomeForest, BiomeDesert, BiomeCave, BiomeVolcano} {
			assert.NotContains(t, LootPool(b), fist)
		}
	})

	t.Run("every wild biome has monsters and loot", func(t *testing.T) {
		for _, b := range []Biome{BiomePlains, BiomeForest, BiomeDesert, BiomeCave, BiomeVolcano} {
			assert.NotEmpty(t, MonstersFor(b), b)
			assert.NotEmpty(t, LootPool(b), b)
			assert.Greater(t, EncounterRates[b], 0.0, b)
		}
		assert.Empty(t, MonstersFor(BiomeTown))
		assert.Zero(t, EncounterRates[BiomeTown])
		assert.Zero(t, EncounterRates[BiomeCastle])
	})

	t.Run("monsters can be hurt", func(t *testing.T) {
		for _, m := range MonsterDefs {
			assert.Positive(t, m.StartingHealth(), m.ID)
			assert.Equal(t, 2*m.Defense, m.StartingHealth())
		}
	})

	t.Run("consumables have a usable effect", func(t *testing.T) {
		for _, def := range ItemDefs {
			if def.Type != ItemConsumable {
				continue
			}
			assert.Contains(t, []Effect{EffectHeal, EffectFullHeal, EffectExtraHeart, EffectTeleport}, def.Effect, def.ID)
		}
	})

	t.Run("effect text round trip", func(t *testing.T) {
		var e Effect
		require.NoError(t, e.UnmarshalText([]byte("teleport")))
		assert.Equal(t, EffectTeleport, e)
		assert.Error(t, e.UnmarshalText([]byte("fly")))
	})
}
