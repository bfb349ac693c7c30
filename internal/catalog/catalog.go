// Package catalog holds the fixed game data: the hero template, the
// monster roster and the equipment lists. Everything here is read-only;
// sessions always work on copies (see game.BuildLoadout).
package catalog

import "github.com/pefman/card-rpg/internal/game"

// BasePlayer returns a fresh copy of the hero template.
func BasePlayer() game.Combatant {
	return game.Combatant{
		Name:  "Hero",
		HP:    30,
		MaxHP: 30,
		Hand: []game.Card{
			{Name: "Slash", Effect: game.EffectAttack, Magnitude: 5},
			{Name: "Fireball", Effect: game.EffectAttack, Magnitude: 8},
			{Name: "Heal", Effect: game.EffectHeal, Magnitude: 6},
		},
	}
}

var monsters = []game.Monster{
	{Name: "Goblin", HP: 20, MaxHP: 20, MinDamage: 2, MaxDamage: 6, Tag: "👹"},
	{Name: "Orc", HP: 35, MaxHP: 35, MinDamage: 4, MaxDamage: 8, Tag: "👺"},
	{Name: "Dragon", HP: 50, MaxHP: 50, MinDamage: 6, MaxDamage: 12, Tag: "🐉"},
	{Name: "Skeleton", HP: 25, MaxHP: 25, MinDamage: 3, MaxDamage: 7, Tag: "💀"},
	{Name: "Troll", HP: 40, MaxHP: 40, MinDamage: 5, MaxDamage: 9, Tag: "🧌"},
}

var weapons = []game.Item{
	{Name: "Wooden Sword", Slot: game.SlotWeapon, DamageBonus: 0, Tag: "🗡️"},
	{Name: "Iron Sword", Slot: game.SlotWeapon, DamageBonus: 2, Tag: "⚔️"},
	{Name: "Magic Sword", Slot: game.SlotWeapon, DamageBonus: 5, Tag: "🔮"},
	{Name: "Flame Sword", Slot: game.SlotWeapon, DamageBonus: 8, Tag: "🔥"},
}

var armor = []game.Item{
	{Name: "Cloth Armor", Slot: game.SlotArmor, HPBonus: 0, Tag: "👕"},
	{Name: "Leather Armor", Slot: game.SlotArmor, HPBonus: 5, Tag: "🧥"},
	{Name: "Chain Mail", Slot: game.SlotArmor, HPBonus: 10, Tag: "🛡️"},
	{Name: "Plate Armor", Slot: game.SlotArmor, HPBonus: 15, Tag: "🦾"},
}

var accessories = []game.Item{
	{Name: "None", Slot: game.SlotAccessory, HealBonus: 0, Tag: "❌"},
	{Name: "Health Ring", Slot: game.SlotAccessory, HealBonus: 2, Tag: "💍"},
	{Name: "Mana Crystal", Slot: game.SlotAccessory, HealBonus: 5, Tag: "💎"},
	{Name: "Life Amulet", Slot: game.SlotAccessory, HealBonus: 8, Tag: "🧿"},
}

// Monsters returns a copy of the monster roster.
func Monsters() []game.Monster {
	out := make([]game.Monster, len(monsters))
	copy(out, monsters)
	return out
}

// Weapons returns a copy of the weapon list.
func Weapons() []game.Item {
	out := make([]game.Item, len(weapons))
	copy(out, weapons)
	return out
}

// Armor returns a copy of the armor list.
func Armor() []game.Item {
	out := make([]game.Item, len(armor))
	copy(out, armor)
	return out
}

// Accessories returns a copy of the accessory list.
func Accessories() []game.Item {
	out := make([]game.Item, len(accessories))
	copy(out, accessories)
	return out
}

// ValidSelection reports whether all four indices point at catalog entries.
func ValidSelection(monster, weapon, armorIdx, accessory int) bool {
	return monster >= 0 && monster < len(monsters) &&
		weapon >= 0 && weapon < len(weapons) &&
		armorIdx >= 0 && armorIdx < len(armor) &&
		accessory >= 0 && accessory < len(accessories)
}
