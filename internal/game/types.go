package game

// EffectType says what a card does when played.
type EffectType string

const (
	EffectAttack EffectType = "attack"
	EffectHeal   EffectType = "heal"
)

// Card is a selectable action with a fixed effect and magnitude.
// Cards are immutable once a session starts.
type Card struct {
	Name      string     `json:"name"`
	Effect    EffectType `json:"effect"`
	Magnitude int        `json:"magnitude"`
}

// Combatant is anything with hit points standing in the arena.
// HP stays within [0, MaxHP] at all times; only ResolveTurn moves it.
type Combatant struct {
	Name  string `json:"name"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"max_hp"`
	Hand  []Card `json:"hand,omitempty"`
	// Counter-attack range, carried over from the monster template.
	// Zero for the player.
	MinDamage int `json:"min_damage,omitempty"`
	MaxDamage int `json:"max_damage,omitempty"`
}

// Clone returns a deep copy so catalog templates never share a hand
// with a live session.
func (c Combatant) Clone() Combatant {
	out := c
	if c.Hand != nil {
		out.Hand = make([]Card, len(c.Hand))
		copy(out.Hand, c.Hand)
	}
	return out
}

// Monster is an immutable catalog entry for an opponent. Counter-attack
// damage is drawn uniformly from [MinDamage, MaxDamage].
type Monster struct {
	Name      string `json:"name"`
	HP        int    `json:"hp"`
	MaxHP     int    `json:"max_hp"`
	MinDamage int    `json:"min_damage"`
	MaxDamage int    `json:"max_damage"`
	Tag       string `json:"tag,omitempty"` // decorative, e.g. an emoji
}

// Combatant copies the template into a fresh enemy for one battle, so
// repeated fights against the same monster never share state.
func (m Monster) Combatant() Combatant {
	return Combatant{
		Name:      m.Name,
		HP:        m.HP,
		MaxHP:     m.MaxHP,
		MinDamage: m.MinDamage,
		MaxDamage: m.MaxDamage,
	}
}

// Slot is the equipment slot an item belongs to.
type Slot string

const (
	SlotWeapon    Slot = "weapon"
	SlotArmor     Slot = "armor"
	SlotAccessory Slot = "accessory"
)

// Item is an immutable equipment catalog entry. Exactly one bonus field
// is meaningful per slot: weapons carry DamageBonus, armor HPBonus,
// accessories HealBonus.
type Item struct {
	Name        string `json:"name"`
	Slot        Slot   `json:"slot"`
	DamageBonus int    `json:"damage_bonus,omitempty"`
	HPBonus     int    `json:"hp_bonus,omitempty"`
	HealBonus   int    `json:"heal_bonus,omitempty"`
	Tag         string `json:"tag,omitempty"`
}

// Outcome classifies a resolved turn.
type Outcome string

const (
	OutcomeOngoing        Outcome = "ongoing"
	OutcomeEnemyDefeated  Outcome = "enemy_defeated"
	OutcomePlayerDefeated Outcome = "player_defeated"
)
