package game

// BuildLoadout combines the base player with chosen equipment and copies
// the monster template into a fresh enemy. Both returned combatants are
// independent of the catalog originals.
//
// Armor adds to HP and MaxHP, weapons raise every attack card, and the
// accessory raises every heal card. Selections are pre-validated by the
// caller; catalog bounds are fixed.
func BuildLoadout(base Combatant, m Monster, weapon, armor, accessory Item) (player, enemy Combatant) {
	player = base.Clone()
	player.HP += armor.HPBonus
	player.MaxHP += armor.HPBonus
	for i, card := range player.Hand {
		switch card.Effect {
		case EffectAttack:
			player.Hand[i].Magnitude = card.Magnitude + weapon.DamageBonus
		case EffectHeal:
			player.Hand[i].Magnitude = card.Magnitude + accessory.HealBonus
		}
	}
	enemy = m.Combatant()
	return player, enemy
}
