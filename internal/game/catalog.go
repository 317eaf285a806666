package game

import (
	"fmt"
	"slices"
)

// ItemType is the inventory slot category of an item
type ItemType string

const (
	ItemWeapon     ItemType = "weapon"
	ItemArmor      ItemType = "armor"
	ItemConsumable ItemType = "item"
)

// Effect is what an item does when it is wielded, worn or used
type Effect int

const (
	EffectNone Effect = iota
	EffectDamage
	EffectDefense
	EffectHeal
	EffectFullHeal
	EffectExtraHeart
	EffectTeleport
)

var effectNames = map[Effect]string{
	EffectNone:       "none",
	EffectDamage:     "damage",
	EffectDefense:    "defense",
	EffectHeal:       "heal",
	EffectFullHeal:   "full_heal",
	EffectExtraHeart: "extra_heart",
	EffectTeleport:   "teleport",
}

func (e Effect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return fmt.Sprintf("effect(%d)", int(e))
}

// MarshalText encodes the effect as its tag name
func (e Effect) MarshalText() ([]byte, error) {
	name, ok := effectNames[e]
	if !ok {
		return nil, fmt.Errorf("unknown effect %d", int(e))
	}
	return []byte(name), nil
}

// UnmarshalText decodes an effect tag name
func (e *Effect) UnmarshalText(text []byte) error {
	for effect, name := range effectNames {
		if name == string(text) {
			*e = effect
			return nil
		}
	}
	return fmt.Errorf("unknown effect %q", string(text))
}

// ItemDef is a static item definition
type ItemDef struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Type          ItemType `json:"type"`
	Biomes        []Biome  `json:"biomes"`
	Attack        int      `json:"attack,omitempty"`
	AttackChance  float64  `json:"attackChance,omitempty"`
	Defense       int      `json:"defense,omitempty"`
	DefenseChance float64  `json:"defenseChance,omitempty"`
	Heal          int      `json:"heal,omitempty"`
	Effect        Effect   `json:"effect"`
	Img           string   `json:"img"`
	NoRandom      bool     `json:"noRandom,omitempty"` // never dropped as loot
}

// DropsIn reports whether the item can be found in the given biome
func (d *ItemDef) DropsIn(b Biome) bool {
	return slices.Contains(d.Biomes, BiomeAny) || slices.Contains(d.Biomes, b)
}

// MonsterDef is a static monster definition
type MonsterDef struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Biomes        []Biome `json:"biomes"`
	Attack        int     `json:"attack"`
	AttackChance  float64 `json:"attackChance"`
	Defense       int     `json:"defense"`
	DefenseChance float64 `json:"defenseChance"`
	Img           string  `json:"img"`
}

// PrimaryBiome is the biome whose loot pool the monster drops from
func (m MonsterDef) PrimaryBiome() Biome {
	if len(m.Biomes) == 0 {
		return BiomeAny
	}
	return m.Biomes[0]
}

// StartingHealth is the monster's health when an encounter begins
func (m MonsterDef) StartingHealth() int {
	return 2 * m.Defense
}

// StarterWeaponID is the weapon every player owns and falls back to
const StarterWeaponID = "fist"

// DefaultProfilePicture is assigned once every picture is taken
const DefaultProfilePicture = "default.png"

// ProfilePictures are the selectable player portraits
var ProfilePictures = []string{
	"brave_knight.png",
	"clever_rogue.png",
	"firey_princess.png",
	"intelligent_wizard.png",
	"unicorn_knight.png",
	"unicorn_warrior.png",
	"war_shark.png",
}

// EncounterRates is the chance that entering a cell of the biome starts a battle
var EncounterRates = map[Biome]float64{
	BiomePlains:  0.20,
	BiomeForest:  0.35,
	BiomeDesert:  0.50,
	BiomeCave:    0.75,
	BiomeVolcano: 0.75,
	BiomeTown:    0.0,
	BiomeCastle:  0.0,
}

var (
	easyBiomes   = []Biome{BiomePlains, BiomeForest}
	desertBiomes = []Biome{BiomeDesert}
	hardBiomes   = []Biome{BiomeVolcano, BiomeCave}
	anyBiome     = []Biome{BiomeAny}
)

// ItemDefs is the item catalog
var ItemDefs = []ItemDef{
	{ID: "fist", Name: "Fist", Type: ItemWeapon, Biomes: anyBiome, Attack: 1, AttackChance: 0.5, Effect: EffectDamage, Img: "fist.png", NoRandom: true},
	{ID: "rusty_spoon", Name: "Rusty Spoon", Type: ItemWeapon, Biomes: easyBiomes, Attack: 1, AttackChance: 0.5, Effect: EffectDamage, Img: "rusty_spoon.png"},
	{ID: "foam_noodle", Name: "Foam Noodle", Type: ItemWeapon, Biomes: easyBiomes, Attack: 1, AttackChance: 0.7, Effect: EffectDamage, Img: "foam_noodle.png"},
	{ID: "rubber_chicken", Name: "Rubber Chicken", Type: ItemWeapon, Biomes: easyBiomes, Attack: 2, AttackChance: 0.9, Effect: EffectDamage, Img: "rubber_chicken.png"},
	{ID: "feather_duster", Name: "Feather Duster", Type: ItemWeapon, Biomes: easyBiomes, Attack: 1, AttackChance: 0.7, Effect: EffectDamage, Img: "feather_duster.png"},
	{ID: "banana_boomerang", Name: "Banana Boomerang", Type: ItemWeapon, Biomes: easyBiomes, Attack: 2, AttackChance: 0.5, Effect: EffectDamage, Img: "banana_boomerang.png"},
	{ID: "bubble_wrap_sword", Name: "Bubble Wrap Sword", Type: ItemWeapon, Biomes: easyBiomes, Attack: 2, AttackChance: 0.9, Effect: EffectDamage, Img: "bubble_wrap_sword.png"},
	{ID: "bubble_wand", Name: "Bubble Wand", Type: ItemWeapon, Biomes: easyBiomes, Attack: 1, AttackChance: 0.5, Effect: EffectDamage, Img: "bubble_wand.png"},
	{ID: "squirt_gun_blaster", Name: "Squirt Gun Blaster", Type: ItemWeapon, Biomes: easyBiomes, Attack: 2, AttackChance: 0.7, Effect: EffectDamage, Img: "squirt_gun_blaster.png"},
	{ID: "balloon_sword", Name: "Balloon Sword", Type: ItemWeapon, Biomes: easyBiomes, Attack: 1, AttackChance: 0.9, Effect: EffectDamage, Img: "balloon_sword.png"},
	{ID: "spaghetti_whip", Name: "Spaghetti Whip", Type: ItemWeapon, Biomes: easyBiomes, Attack: 2, AttackChance: 0.5, Effect: EffectDamage, Img: "spaghetti_whip.png"},
	{ID: "silly_string_shooter", Name: "Silly String Shooter", Type: ItemWeapon, Biomes: easyBiomes, Attack: 2, AttackChance: 0.7, Effect: EffectDamage, Img: "silly_string_shooter.png"},
	{ID: "cucumber_sword", Name: "Cucumber Sword", Type: ItemWeapon, Biomes: easyBiomes, Attack: 1, AttackChance: 0.9, Effect: EffectDamage, Img: "cucumber_sword.png"},
	{ID: "clown_nose_launcher", Name: "Clown Nose Launcher", Type: ItemWeapon, Biomes: easyBiomes, Attack: 2, AttackChance: 0.5, Effect: EffectDamage, Img: "clown_nose_launcher.png"},
	{ID: "balloon_launcher", Name: "Balloon Launcher", Type: ItemWeapon, Biomes: easyBiomes, Attack: 1, AttackChance: 0.7, Effect: EffectDamage, Img: "balloon_launcher.png"},
	{ID: "sausage_nunchucks", Name: "Sausage Nunchucks", Type: ItemWeapon, Biomes: easyBiomes, Attack: 2, AttackChance: 0.9, Effect: EffectDamage, Img: "sausage_nunchucks.png"},
	{ID: "bouncy_ball_blaster", Name: "Bouncy Ball Blaster", Type: ItemWeapon, Biomes: easyBiomes, Attack: 2, AttackChance: 0.5, Effect: EffectDamage, Img: "bouncy_ball_blaster.png"},
	{ID: "sock_with_a_rock", Name: "Sock with a Rock", Type: ItemWeapon, Biomes: easyBiomes, Attack: 2, AttackChance: 0.7, Effect: EffectDamage, Img: "sock_with_a_rock.png"},
	{ID: "pooper_scooper", Name: "Pooper Scooper", Type: ItemWeapon, Biomes: easyBiomes, Attack: 1, AttackChance: 0.9, Effect: EffectDamage, Img: "pooper_scooper.png"},
	{ID: "rubber_bracelet", Name: "Rubber Bracelet", Type: ItemArmor, Biomes: easyBiomes, Defense: 1, DefenseChance: 0.5, Effect: EffectDefense, Img: "rubber_bracelet.png"},
	{ID: "popstick_shield", Name: "Popstick Shield", Type: ItemArmor, Biomes: easyBiomes, Defense: 2, DefenseChance: 0.7, Effect: EffectDefense, Img: "popstick_shield.png"},
	{ID: "straw_hat", Name: "Straw Hat", Type: ItemArmor, Biomes: easyBiomes, Defense: 1, DefenseChance: 0.9, Effect: EffectDefense, Img: "straw_hat.png"},
	{ID: "dog_collar_armbands", Name: "Dog Collar Armbands", Type: ItemArmor, Biomes: easyBiomes, Defense: 2, DefenseChance: 0.5, Effect: EffectDefense, Img: "dog_collar_armbands.png"},
	{ID: "cardboard_gloves", Name: "Cardboard Gloves", Type: ItemArmor, Biomes: easyBiomes, Defense: 1, DefenseChance: 0.7, Effect: EffectDefense, Img: "cardboard_gloves.png"},
	{ID: "steel_toeless_boots", Name: "Steel Toeless Boots", Type: ItemArmor, Biomes: easyBiomes, Defense: 2, DefenseChance: 0.9, Effect: EffectDefense, Img: "steel_toeless_boots.png"},
	{ID: "tin_foil_shield", Name: "Tin Foil Shield", Type: ItemArmor, Biomes: easyBiomes, Defense: 1, DefenseChance: 0.5, Effect: EffectDefense, Img: "tin_foil_shield.png"},
	{ID: "fuzzy_slippers", Name: "Fuzzy Slippers", Type: ItemArmor, Biomes: easyBiomes, Defense: 2, DefenseChance: 0.7, Effect: EffectDefense, Img: "fuzzy_slippers.png"},
	{ID: "leather_undies", Name: "Leather Undies", Type: ItemArmor, Biomes: easyBiomes, Defense: 1, DefenseChance: 0.9, Effect: EffectDefense, Img: "leather_undies.png"},
	{ID: "pizza_boots", Name: "Pizza Boots", Type: ItemArmor, Biomes: easyBiomes, Defense: 2, DefenseChance: 0.5, Effect: EffectDefense, Img: "pizza_boots.png"},
	{ID: "jello_helmet", Name: "Jello Helmet", Type: ItemArmor, Biomes: easyBiomes, Defense: 1, DefenseChance: 0.7, Effect: EffectDefense, Img: "jello_helmet.png"},
	{ID: "cardboard_chestplate", Name: "Cardboard Chestplate", Type: ItemArmor, Biomes: easyBiomes, Defense: 2, DefenseChance: 0.9, Effect: EffectDefense, Img: "cardboard_chestplate.png"},
	{ID: "bubble_wrap_armor", Name: "Bubble Wrap Armor", Type: ItemArmor, Biomes: easyBiomes, Defense: 1, DefenseChance: 0.5, Effect: EffectDefense, Img: "bubble_wrap_armor.png"},
	{ID: "booger_crown", Name: "Booger Crown", Type: ItemArmor, Biomes: easyBiomes, Defense: 2, DefenseChance: 0.7, Effect: EffectDefense, Img: "booger_crown.png"},
	{ID: "cloud_gloves", Name: "Cloud Gloves", Type: ItemArmor, Biomes: easyBiomes, Defense: 1, DefenseChance: 0.9, Effect: EffectDefense, Img: "cloud_gloves.png"},
	{ID: "toilet_seat_shield", Name: "Toilet Seat Shield", Type: ItemArmor, Biomes: easyBiomes, Defense: 2, DefenseChance: 0.5, Effect: EffectDefense, Img: "toilet_seat_shield.png"},
	{ID: "patchwork_poncho", Name: "Patchwork Poncho", Type: ItemArmor, Biomes: easyBiomes, Defense: 1, DefenseChance: 0.7, Effect: EffectDefense, Img: "patchwork_poncho.png"},
	{ID: "caterpillar_helmet", Name: "Caterpillar Helmet", Type: ItemArmor, Biomes: easyBiomes, Defense: 2, DefenseChance: 0.9, Effect: EffectDefense, Img: "caterpillar_helmet.png"},
	{ID: "cola_bomb", Name: "Cola Bomb", Type: ItemWeapon, Biomes: desertBiomes, Attack: 3, AttackChance: 0.5, Effect: EffectDamage, Img: "cola_bomb.png"},
	{ID: "feather_boomerang", Name: "Feather Boomerang", Type: ItemWeapon, Biomes: desertBiomes, Attack: 3, AttackChance: 0.7, Effect: EffectDamage, Img: "feather_boomerang.png"},
	{ID: "confetti_cannon", Name: "Confetti Cannon", Type: ItemWeapon, Biomes: desertBiomes, Attack: 4, AttackChance: 0.9, Effect: EffectDamage, Img: "confetti_cannon.png"},
	{ID: "spitwad_blowpipe", Name: "Spitwad Blowpipe", Type: ItemWeapon, Biomes: desertBiomes, Attack: 3, AttackChance: 0.9, Effect: EffectDamage, Img: "spitwad_blowpipe.png"},
	{ID: "paper_fan", Name: "Paper Fan", Type: ItemWeapon, Biomes: desertBiomes, Attack: 3, AttackChance: 0.5, Effect: EffectDamage, Img: "paper_fan.png"},
	{ID: "banana_slingshot", Name: "Banana Slingshot", Type: ItemWeapon, Biomes: desertBiomes, Attack: 4, AttackChance: 0.7, Effect: EffectDamage, Img: "banana_slingshot.png"},
	{ID: "red_licorice_whip", Name: "Red Licorice Whip", Type: ItemWeapon, Biomes: desertBiomes, Attack: 3, AttackChance: 0.9, Effect: EffectDamage, Img: "red_licorice_whip.png"},
	{ID: "mallow_catapult", Name: "Mallow Catapult", Type: ItemWeapon, Biomes: desertBiomes, Attack: 4, AttackChance: 0.5, Effect: EffectDamage, Img: "mallow_catapult.png"},
	{ID: "fart_bomb", Name: "Fart Bomb", Type: ItemWeapon, Biomes: desertBiomes, Attack: 3, AttackChance: 0.7, Effect: EffectDamage, Img: "fart_bomb.png"},
	{ID: "pogo_stick_lance", Name: "Pogo Stick Lance", Type: ItemWeapon, Biomes: desertBiomes, Attack: 4, AttackChance: 0.9, Effect: EffectDamage, Img: "pogo_stick_lance.png"},
	{ID: "jesters_scepter", Name: "Jester's Scepter", Type: ItemWeapon, Biomes: desertBiomes, Attack: 3, AttackChance: 0.7, Effect: EffectDamage, Img: "jesters_scepter.png"},
	{ID: "jelly_bean_gun", Name: "Jelly Bean Gun", Type: ItemWeapon, Biomes: desertBiomes, Attack: 4, AttackChance: 0.5, Effect: EffectDamage, Img: "jelly_bean_gun.png"},
	{ID: "plunger_bow", Name: "Plunger Bow", Type: ItemWeapon, Biomes: desertBiomes, Attack: 3, AttackChance: 0.9, Effect: EffectDamage, Img: "plunger_bow.png"},
	{ID: "sharp_candy_cane", Name: "Sharp Candy Cane", Type: ItemWeapon, Biomes: desertBiomes, Attack: 4, AttackChance: 0.7, Effect: EffectDamage, Img: "sharp_candy_cane.png"},
	{ID: "glue_shooter", Name: "Glue Shooter", Type: ItemWeapon, Biomes: desertBiomes, Attack: 3, AttackChance: 0.5, Effect: EffectDamage, Img: "glue_shooter.png"},
	{ID: "baguette_sword", Name: "Baguette Sword", Type: ItemWeapon, Biomes: desertBiomes, Attack: 4, AttackChance: 0.9, Effect: EffectDamage, Img: "baguette_sword.png"},
	{ID: "rolling_pin_hammer", Name: "Rolling Pin Hammer", Type: ItemWeapon, Biomes: desertBiomes, Attack: 3, AttackChance: 0.7, Effect: EffectDamage, Img: "rolling_pin_hammer.png"},
	{ID: "exploding_ice_cream", Name: "Exploding Ice Cream", Type: ItemWeapon, Biomes: desertBiomes, Attack: 4, AttackChance: 0.5, Effect: EffectDamage, Img: "exploding_ice_cream.png"},
	{ID: "ice_cream_armor", Name: "Ice Cream Armor", Type: ItemArmor, Biomes: desertBiomes, Defense: 3, DefenseChance: 0.5, Effect: EffectDefense, Img: "ice_cream_armor.png"},
	{ID: "knittted_armor", Name: "Knittted Armor", Type: ItemArmor, Biomes: desertBiomes, Defense: 4, DefenseChance: 0.7, Effect: EffectDefense, Img: "knittted_armor.png"},
	{ID: "kitty_crown", Name: "Kitty Crown", Type: ItemArmor, Biomes: desertBiomes, Defense: 3, DefenseChance: 0.9, Effect: EffectDefense, Img: "kitty_crown.png"},
	{ID: "fuzzy_armguards", Name: "Fuzzy Armguards", Type: ItemArmor, Biomes: desertBiomes, Defense: 4, DefenseChance: 0.5, Effect: EffectDefense, Img: "fuzzy_armguards.png"},
	{ID: "cow_leather_jacket", Name: "Cow Leather Jacket", Type: ItemArmor, Biomes: desertBiomes, Defense: 3, DefenseChance: 0.7, Effect: EffectDefense, Img: "cow_leather_jacket.png"},
	{ID: "honey_helmet", Name: "Honey Helmet", Type: ItemArmor, Biomes: desertBiomes, Defense: 4, DefenseChance: 0.9, Effect: EffectDefense, Img: "honey_helmet.png"},
	{ID: "vacuum_armor", Name: "Vacuum Armor", Type: ItemArmor, Biomes: desertBiomes, Defense: 3, DefenseChance: 0.7, Effect: EffectDefense, Img: "vacuum_armor.png"},
	{ID: "crystal_boots", Name: "Crystal Boots", Type: ItemArmor, Biomes: desertBiomes, Defense: 4, DefenseChance: 0.5, Effect: EffectDefense, Img: "crystal_boots.png"},
	{ID: "stained_glass_shield", Name: "Stained Glass Shield", Type: ItemArmor, Biomes: desertBiomes, Defense: 3, DefenseChance: 0.9, Effect: EffectDefense, Img: "stained_glass_shield.png"},
	{ID: "jesters_cap", Name: "Jester's Cap", Type: ItemArmor, Biomes: desertBiomes, Defense: 4, DefenseChance: 0.7, Effect: EffectDefense, Img: "jesters_cap.png"},
	{ID: "colorful_quilted_tunic", Name: "Colorful Quilted Tunic", Type: ItemArmor, Biomes: desertBiomes, Defense: 3, DefenseChance: 0.5, Effect: EffectDefense, Img: "colorful_quilted_tunic.png"},
	{ID: "feathered_boots", Name: "Feathered Boots", Type: ItemArmor, Biomes: desertBiomes, Defense: 4, DefenseChance: 0.9, Effect: EffectDefense, Img: "feathered_boots.png"},
	{ID: "bamboo_armor", Name: "Bamboo Armor", Type: ItemArmor, Biomes: desertBiomes, Defense: 3, DefenseChance: 0.7, Effect: EffectDefense, Img: "bamboo_armor.png"},
	{ID: "colander_helm", Name: "Colander Helm", Type: ItemArmor, Biomes: desertBiomes, Defense: 4, DefenseChance: 0.5, Effect: EffectDefense, Img: "colander_helm.png"},
	{ID: "fox_helmet", Name: "Fox Helmet", Type: ItemArmor, Biomes: desertBiomes, Defense: 3, DefenseChance: 0.7, Effect: EffectDefense, Img: "fox_helmet.png"},
	{ID: "metal_mittens", Name: "Metal Mittens", Type: ItemArmor, Biomes: desertBiomes, Defense: 4, DefenseChance: 0.9, Effect: EffectDefense, Img: "metal_mittens.png"},
	{ID: "snail_shell_helmet", Name: "Snail Shell Helmet", Type: ItemArmor, Biomes: desertBiomes, Defense: 3, DefenseChance: 0.5, Effect: EffectDefense, Img: "snail_shell_helmet.png"},
	{ID: "oven_armor", Name: "Oven Armor", Type: ItemArmor, Biomes: desertBiomes, Defense: 4, DefenseChance: 0.7, Effect: EffectDefense, Img: "oven_armor.png"},
	{ID: "exploding_pie", Name: "Exploding Pie", Type: ItemWeapon, Biomes: hardBiomes, Attack: 3, AttackChance: 0.5, Effect: EffectDamage, Img: "exploding_pie.png"},
	{ID: "flaming_tuba", Name: "Flaming Tuba", Type: ItemWeapon, Biomes: hardBiomes, Attack: 4, AttackChance: 0.7, Effect: EffectDamage, Img: "flaming_tuba.png"},
	{ID: "glass_hammer", Name: "Glass Hammer", Type: ItemWeapon, Biomes: hardBiomes, Attack: 5, AttackChance: 0.9, Effect: EffectDamage, Img: "glass_hammer.png"},
	{ID: "octopus_launcher", Name: "Octopus Launcher", Type: ItemWeapon, Biomes: hardBiomes, Attack: 3, AttackChance: 0.7, Effect: EffectDamage, Img: "octopus_launcher.png"},
	{ID: "gummy_bear_mace", Name: "Gummy Bear Mace", Type: ItemWeapon, Biomes: hardBiomes, Attack: 4, AttackChance: 0.9, Effect: EffectDamage, Img: "gummy_bear_mace.png"},
	{ID: "mud_shotgun", Name: "Mud Shotgun", Type: ItemWeapon, Biomes: hardBiomes, Attack: 5, AttackChance: 0.5, Effect: EffectDamage, Img: "mud_shotgun.png"},
	{ID: "whacky_wizard_staff", Name: "Whacky Wizard Staff", Type: ItemWeapon, Biomes: hardBiomes, Attack: 3, AttackChance: 0.9, Effect: EffectDamage, Img: "whacky_wizard_staff.png"},
	{ID: "bagpipe_cannon", Name: "Bagpipe Cannon", Type: ItemWeapon, Biomes: hardBiomes, Attack: 4, AttackChance: 0.7, Effect: EffectDamage, Img: "bagpipe_cannon.png"},
	{ID: "piranha_on_a_stick", Name: "Piranha on a Stick", Type: ItemWeapon, Biomes: hardBiomes, Attack: 5, AttackChance: 0.7, Effect: EffectDamage, Img: "piranha_on_a_stick.png"},
	{ID: "scorpion_tail_spear", Name: "Scorpion tail Spear", Type: ItemWeapon, Biomes: hardBiomes, Attack: 3, AttackChance: 0.9, Effect: EffectDamage, Img: "scorpion_tail_spear.png"},
	{ID: "box_of_tiny_lion", Name: "Box of Tiny Lion", Type: ItemWeapon, Biomes: hardBiomes, Attack: 4, AttackChance: 0.7, Effect: EffectDamage, Img: "box_of_tiny_lion.png"},
	{ID: "danger_noodle_whip", Name: "Danger Noodle Whip", Type: ItemWeapon, Biomes: hardBiomes, Attack: 5, AttackChance: 0.9, Effect: EffectDamage, Img: "danger_noodle_whip.png"},
	{ID: "giggle_daggers", Name: "Giggle Daggers", Type: ItemWeapon, Biomes: hardBiomes, Attack: 3, AttackChance: 0.7, Effect: EffectDamage, Img: "giggle_daggers.png"},
	{ID: "rubber_chicken_axe", Name: "Rubber Chicken Axe", Type: ItemWeapon, Biomes: hardBiomes, Attack: 4, AttackChance: 0.9, Effect: EffectDamage, Img: "rubber_chicken_axe.png"},
	{ID: "shark_head_hammer", Name: "Shark Head Hammer", Type: ItemWeapon, Biomes: hardBiomes, Attack: 5, AttackChance: 0.9, Effect: EffectDamage, Img: "shark_head_hammer.png"},
	{ID: "roaring_great_sword", Name: "Roaring Great Sword", Type: ItemWeapon, Biomes: hardBiomes, Attack: 3, AttackChance: 0.5, Effect: EffectDamage, Img: "roaring_great_sword.png"},
	{ID: "wild_whirl_scythe", Name: "Wild Whirl Scythe", Type: ItemWeapon, Biomes: hardBiomes, Attack: 4, AttackChance: 0.7, Effect: EffectDamage, Img: "wild_whirl_scythe.png"},
	{ID: "crazy_cat_launcher", Name: "Crazy Cat Launcher", Type: ItemWeapon, Biomes: hardBiomes, Attack: 5, AttackChance: 0.9, Effect: EffectDamage, Img: "crazy_cat_launcher.png"},
	{ID: "wooden_buckler", Name: "Wooden Buckler", Type: ItemArmor, Biomes: hardBiomes, Defense: 3, DefenseChance: 0.5, Effect: EffectDefense, Img: "wooden_buckler.png"},
	{ID: "barrel_lid_shield", Name: "Barrel Lid Shield", Type: ItemArmor, Biomes: hardBiomes, Defense: 4, DefenseChance: 0.7, Effect: EffectDefense, Img: "barrel_lid_shield.png"},
	{ID: "feather_helmet", Name: "Feather Helmet", Type: ItemArmor, Biomes: hardBiomes, Defense: 5, DefenseChance: 0.9, Effect: EffectDefense, Img: "feather_helmet.png"},
	{ID: "plant_shield", Name: "Plant Shield", Type: ItemArmor, Biomes: hardBiomes, Defense: 3, DefenseChance: 0.7, Effect: EffectDefense, Img: "plant_shield.png"},
	{ID: "sturdy_fish_shield", Name: "Sturdy Fish Shield", Type: ItemArmor, Biomes: hardBiomes, Defense: 4, DefenseChance: 0.9, Effect: EffectDefense, Img: "sturdy_fish_shield.png"},
	{ID: "vortex_cape", Name: "Vortex Cape", Type: ItemArmor, Biomes: hardBiomes, Defense: 5, DefenseChance: 0.5, Effect: EffectDefense, Img: "vortex_cape.png"},
	{ID: "clock_shield", Name: "Clock Shield", Type: ItemArmor, Biomes: hardBiomes, Defense: 3, DefenseChance: 0.9, Effect: EffectDefense, Img: "clock_shield.png"},
	{ID: "spider_silk_gloves", Name: "Spider Silk Gloves", Type: ItemArmor, Biomes: hardBiomes, Defense: 4, DefenseChance: 0.7, Effect: EffectDefense, Img: "spider_silk_gloves.png"},
	{ID: "lightning_shield", Name: "Lightning Shield", Type: ItemArmor, Biomes: hardBiomes, Defense: 5, DefenseChance: 0.9, Effect: EffectDefense, Img: "lightning_shield.png"},
	{ID: "chicken_shield", Name: "Chicken Shield", Type: ItemArmor, Biomes: hardBiomes, Defense: 3, DefenseChance: 0.9, Effect: EffectDefense, Img: "chicken_shield.png"},
	{ID: "guardian_shield", Name: "Guardian Shield", Type: ItemArmor, Biomes: hardBiomes, Defense: 4, DefenseChance: 0.7, Effect: EffectDefense, Img: "guardian_shield.png"},
	{ID: "superhero_shield", Name: "Superhero Shield", Type: ItemArmor, Biomes: hardBiomes, Defense: 5, DefenseChance: 0.9, Effect: EffectDefense, Img: "superhero_shield.png"},
	{ID: "boulder_armor", Name: "Boulder Armor", Type: ItemArmor, Biomes: hardBiomes, Defense: 3, DefenseChance: 0.7, Effect: EffectDefense, Img: "boulder_armor.png"},
	{ID: "phoenix_cloak", Name: "Phoenix Cloak", Type: ItemArmor, Biomes: hardBiomes, Defense: 4, DefenseChance: 0.9, Effect: EffectDefense, Img: "phoenix_cloak.png"},
	{ID: "shark_armor", Name: "Shark Armor", Type: ItemArmor, Biomes: hardBiomes, Defense: 5, DefenseChance: 0.5, Effect: EffectDefense, Img: "shark_armor.png"},
	{ID: "serpent_scale", Name: "Serpent Scale", Type: ItemArmor, Biomes: hardBiomes, Defense: 3, DefenseChance: 0.7, Effect: EffectDefense, Img: "serpent_scale.png"},
	{ID: "dragon_scale_armor", Name: "Dragon Scale Armor", Type: ItemArmor, Biomes: hardBiomes, Defense: 4, DefenseChance: 0.9, Effect: EffectDefense, Img: "dragon_scale_armor.png"},
	{ID: "astral_plate_armor", Name: "Astral Plate Armor", Type: ItemArmor, Biomes: hardBiomes, Defense: 5, DefenseChance: 0.5, Effect: EffectDefense, Img: "astral_plate_armor.png"},
	{ID: "teleport", Name: "Teleport", Type: ItemConsumable, Biomes: anyBiome, Effect: EffectTeleport, Img: "teleport.png"},
	{ID: "small_potion", Name: "Small Health Potion", Type: ItemConsumable, Biomes: anyBiome, Heal: 3, Effect: EffectHeal, Img: "small_potion.png"},
	{ID: "medium_potion", Name: "Medium Health Potion", Type: ItemConsumable, Biomes: anyBiome, Heal: 5, Effect: EffectHeal, Img: "medium_potion.png"},
	{ID: "large_potion", Name: "Large Health Potion", Type: ItemConsumable, Biomes: anyBiome, Heal: 7, Effect: EffectHeal, Img: "large_potion.png"},
	{ID: "full_potion", Name: "Full Health Potion", Type: ItemConsumable, Biomes: anyBiome, Effect: EffectFullHeal, Img: "full_potion.png"},
	{ID: "extra_heart", Name: "Additional Heart", Type: ItemConsumable, Biomes: anyBiome, Effect: EffectExtraHeart, Img: "extra_heart.png"},
}

// MonsterDefs is the monster catalog
var MonsterDefs = []MonsterDef{
	{ID: "weak_trollkin", Name: "Weak Trollkin", Biomes: easyBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "trollkin.png"},
	{ID: "trollkin", Name: "Trollkin", Biomes: easyBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "trollkin.png"},
	{ID: "strong_trollkin", Name: "Strong Trollkin", Biomes: easyBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "trollkin.png"},
	{ID: "weak_bat", Name: "Weak Bat", Biomes: easyBiomes, Attack: 1, AttackChance: 0.7, Defense: 1, DefenseChance: 0.33, Img: "bat.png"},
	{ID: "bat", Name: "Bat", Biomes: easyBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "bat.png"},
	{ID: "strong_bat", Name: "Strong Bat", Biomes: easyBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "bat.png"},
	{ID: "weak_fairy", Name: "Weak Fairy", Biomes: easyBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "fairy.png"},
	{ID: "fairy", Name: "Fairy", Biomes: easyBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "fairy.png"},
	{ID: "strong_fairy", Name: "Strong Fairy", Biomes: easyBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "fairy.png"},
	{ID: "weak_black_cat", Name: "Weak Black Cat", Biomes: easyBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "black_cat.png"},
	{ID: "black_cat", Name: "Black Cat", Biomes: easyBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "black_cat.png"},
	{ID: "strong_black_cat", Name: "Strong Black Cat", Biomes: easyBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "black_cat.png"},
	{ID: "weak_goblin", Name: "Weak Goblin", Biomes: easyBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "goblin.png"},
	{ID: "goblin", Name: "Goblin", Biomes: easyBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "goblin.png"},
	{ID: "strong_goblin", Name: "Strong Goblin", Biomes: easyBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "goblin.png"},
	{ID: "weak_bigfoot", Name: "Weak Bigfoot", Biomes: easyBiomes, Attack: 1, AttackChance: 0.7, Defense: 1, DefenseChance: 0.33, Img: "bigfoot.png"},
	{ID: "bigfoot", Name: "Bigfoot", Biomes: easyBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "bigfoot.png"},
	{ID: "strong_bigfoot", Name: "Strong Bigfoot", Biomes: easyBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "bigfoot.png"},
	{ID: "weak_giant_spider", Name: "Weak Giant Spider", Biomes: easyBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "giant_spider.png"},
	{ID: "giant_spider", Name: "Giant Spider", Biomes: easyBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "giant_spider.png"},
	{ID: "strong_giant_spider", Name: "Strong Giant Spider", Biomes: easyBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "giant_spider.png"},
	{ID: "weak_ogre", Name: "Weak Ogre", Biomes: easyBiomes, Attack: 1, AttackChance: 0.7, Defense: 1, DefenseChance: 0.33, Img: "ogre.png"},
	{ID: "ogre", Name: "Ogre", Biomes: easyBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "ogre.png"},
	{ID: "strong_ogre", Name: "Strong Ogre", Biomes: easyBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "ogre.png"},
	{ID: "weak_warewolf", Name: "Weak Warewolf", Biomes: easyBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "warewolf.png"},
	{ID: "warewolf", Name: "Warewolf", Biomes: easyBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "warewolf.png"},
	{ID: "strong_warewolf", Name: "Strong Warewolf", Biomes: easyBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "warewolf.png"},
	{ID: "weak_spiky_lizard", Name: "Weak Spiky Lizard", Biomes: desertBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "spiky_lizard.png"},
	{ID: "spiky_lizard", Name: "Spiky Lizard", Biomes: desertBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "spiky_lizard.png"},
	{ID: "strong_spiky_lizard", Name: "Strong Spiky Lizard", Biomes: desertBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "spiky_lizard.png"},
	{ID: "weak_scorpion", Name: "Weak Scorpion", Biomes: desertBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "scorpion.png"},
	{ID: "scorpion", Name: "Scorpion", Biomes: desertBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "scorpion.png"},
	{ID: "strong_scorpion", Name: "Strong Scorpion", Biomes: desertBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "scorpion.png"},
	{ID: "weak_snake", Name: "Weak Snake", Biomes: desertBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "snake.png"},
	{ID: "snake", Name: "Snake", Biomes: desertBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "snake.png"},
	{ID: "strong_snake", Name: "Strong Snake", Biomes: desertBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "snake.png"},
	{ID: "weak_vulture", Name: "Weak Vulture", Biomes: desertBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "vulture.png"},
	{ID: "vulture", Name: "Vulture", Biomes: desertBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "vulture.png"},
	{ID: "strong_vulture", Name: "Strong Vulture", Biomes: desertBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "vulture.png"},
	{ID: "weak_harpy", Name: "Weak Harpy", Biomes: desertBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "harpy.png"},
	{ID: "harpy", Name: "Harpy", Biomes: desertBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "harpy.png"},
	{ID: "strong_harpy", Name: "Strong Harpy", Biomes: desertBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "harpy.png"},
	{ID: "weak_centaur", Name: "Weak Centaur", Biomes: desertBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "centaur.png"},
	{ID: "centaur", Name: "Centaur", Biomes: desertBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "centaur.png"},
	{ID: "strong_centaur", Name: "Strong Centaur", Biomes: desertBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "centaur.png"},
	{ID: "weak_sand_golem", Name: "Weak Sand Golem", Biomes: desertBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "sand_golem.png"},
	{ID: "sand_golem", Name: "Sand Golem", Biomes: desertBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "sand_golem.png"},
	{ID: "strong_sand_golem", Name: "Strong Sand Golem", Biomes: desertBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "sand_golem.png"},
	{ID: "weak_pheonix", Name: "Weak Pheonix", Biomes: desertBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "pheonix.png"},
	{ID: "pheonix", Name: "Pheonix", Biomes: desertBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "pheonix.png"},
	{ID: "strong_pheonix", Name: "Strong Pheonix", Biomes: desertBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "pheonix.png"},
	{ID: "weak_gryphon", Name: "Weak Gryphon", Biomes: desertBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "gryphon.png"},
	{ID: "gryphon", Name: "Gryphon", Biomes: desertBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "gryphon.png"},
	{ID: "strong_gryphon", Name: "Strong Gryphon", Biomes: desertBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "gryphon.png"},
	{ID: "weak_fire_butterfly", Name: "Weak Fire Butterfly", Biomes: hardBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "fire_butterfly.png"},
	{ID: "fire_butterfly", Name: "Fire Butterfly", Biomes: hardBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "fire_butterfly.png"},
	{ID: "strong_fire_butterfly", Name: "Strong Fire Butterfly", Biomes: hardBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "fire_butterfly.png"},
	{ID: "weak_magma_cube", Name: "Weak Magma Cube", Biomes: hardBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "magma_cube.png"},
	{ID: "magma_cube", Name: "Magma Cube", Biomes: hardBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "magma_cube.png"},
	{ID: "strong_magma_cube", Name: "Strong Magma Cube", Biomes: hardBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "magma_cube.png"},
	{ID: "weak_ember_imp", Name: "Weak Ember Imp", Biomes: hardBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "ember_imp.png"},
	{ID: "ember_imp", Name: "Ember Imp", Biomes: hardBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "ember_imp.png"},
	{ID: "strong_ember_imp", Name: "Strong Ember Imp", Biomes: hardBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "ember_imp.png"},
	{ID: "weak_skeleton", Name: "Weak Skeleton", Biomes: hardBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "skeleton.png"},
	{ID: "skeleton", Name: "Skeleton", Biomes: hardBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "skeleton.png"},
	{ID: "strong_skeleton", Name: "Strong Skeleton", Biomes: hardBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "skeleton.png"},
	{ID: "weak_rock_troll", Name: "Weak Rock Troll", Biomes: hardBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "rock_troll.png"},
	{ID: "rock_troll", Name: "Rock Troll", Biomes: hardBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "rock_troll.png"},
	{ID: "strong_rock_troll", Name: "Strong Rock Troll", Biomes: hardBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "rock_troll.png"},
	{ID: "weak_medusa", Name: "Weak Medusa", Biomes: hardBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "medusa.png"},
	{ID: "medusa", Name: "Medusa", Biomes: hardBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "medusa.png"},
	{ID: "strong_medusa", Name: "Strong Medusa", Biomes: hardBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "medusa.png"},
	{ID: "weak_wizard", Name: "Weak Wizard", Biomes: hardBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "wizard.png"},
	{ID: "wizard", Name: "Wizard", Biomes: hardBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "wizard.png"},
	{ID: "strong_wizard", Name: "Strong Wizard", Biomes: hardBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "wizard.png"},
	{ID: "weak_red_dragon", Name: "Weak Red Dragon", Biomes: hardBiomes, Attack: 1, AttackChance: 0.7, Defense: 1, DefenseChance: 0.33, Img: "red_dragon.png"},
	{ID: "red_dragon", Name: "Red Dragon", Biomes: hardBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "red_dragon.png"},
	{ID: "strong_red_dragon", Name: "Strong Red Dragon", Biomes: hardBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "red_dragon.png"},
	{ID: "weak_dark_unicorn", Name: "Weak Dark Unicorn", Biomes: hardBiomes, Attack: 1, AttackChance: 0.5, Defense: 1, DefenseChance: 0.33, Img: "dark_unicorn.png"},
	{ID: "dark_unicorn", Name: "Dark Unicorn", Biomes: hardBiomes, Attack: 2, AttackChance: 0.7, Defense: 2, DefenseChance: 0.5, Img: "dark_unicorn.png"},
	{ID: "strong_dark_unicorn", Name: "Strong Dark Unicorn", Biomes: hardBiomes, Attack: 3, AttackChance: 0.9, Defense: 3, DefenseChance: 0.7, Img: "dark_unicorn.png"},
}

var itemIndex = func() map[string]*ItemDef {
	index := make(map[string]*ItemDef, len(ItemDefs))
	for i := range ItemDefs {
		index[ItemDefs[i].ID] = &ItemDefs[i]
	}
	return index
}()

// LookupItem finds an item definition by ID
func LookupItem(id string) (*ItemDef, bool) {
	def, ok := itemIndex[id]
	return def, ok
}

// MonstersFor returns the monsters that can be encountered in a biome, in catalog order
func MonstersFor(b Biome) []MonsterDef {
	monsters := make([]MonsterDef, 0)
	for _, m := range MonsterDefs {
		if slices.Contains(m.Biomes, b) {
			monsters = append(monsters, m)
		}
	}
	return monsters
}

// LootPool returns the items a monster of the given biome can drop, in catalog order
func LootPool(b Biome) []*ItemDef {
	pool := make([]*ItemDef, 0)
	for i := range ItemDefs {
		def := &ItemDefs[i]
		if !def.NoRandom && def.DropsIn(b) {
			pool = append(pool, def)
		}
	}
	return pool
}

// IsProfilePicture reports whether pic is a selectable portrait
func IsProfilePicture(pic string) bool {
	return pic == DefaultProfilePicture || slices.Contains(ProfilePictures, pic)
}
