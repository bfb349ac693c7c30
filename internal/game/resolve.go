package game

import (
	"fmt"

	"github.com/pefman/card-rpg/internal/engine"
)

// TurnResult captures everything one resolved turn produced: the updated
// combatants, ordered log lines and the outcome classification.
type TurnResult struct {
	Player        Combatant `json:"player"`
	Enemy         Combatant `json:"enemy"`
	Logs          []string  `json:"logs"`
	Outcome       Outcome   `json:"outcome"`
	CounterDamage int       `json:"counter_damage"` // 0 when the enemy did not strike back
}

// ResolveTurn plays one card and, if the enemy survives it, applies the
// enemy's counter-attack. It never mutates its inputs.
//
// Order matters: the enemy is checked for defeat before it counter-attacks,
// so a card that drops it to 0 HP ends the battle without the player taking
// damage, and simultaneous zero HP counts as an enemy defeat.
func ResolveTurn(player, enemy Combatant, card Card, r engine.Roller) TurnResult {
	p := player.Clone()
	e := enemy.Clone()
	var logs []string

	switch card.Effect {
	case EffectAttack:
		e.HP -= card.Magnitude
		if e.HP < 0 {
			e.HP = 0
		}
		logs = append(logs, fmt.Sprintf("You used %s. It dealt %d damage.", card.Name, card.Magnitude))
	case EffectHeal:
		healed := card.Magnitude
		if room := p.MaxHP - p.HP; healed > room {
			healed = room
		}
		p.HP += healed
		logs = append(logs, fmt.Sprintf("You used %s. You healed %d HP.", card.Name, healed))
	}

	res := TurnResult{Outcome: OutcomeOngoing}
	if e.HP <= 0 {
		res.Outcome = OutcomeEnemyDefeated
	} else {
		// A standing enemy always strikes back.
		dmg := r.Between(e.MinDamage, e.MaxDamage)
		p.HP -= dmg
		if p.HP < 0 {
			p.HP = 0
		}
		res.CounterDamage = dmg
		logs = append(logs, fmt.Sprintf("%s attacks you for %d damage!", e.Name, dmg))
		if p.HP <= 0 {
			res.Outcome = OutcomePlayerDefeated
		}
	}

	res.Player = p
	res.Enemy = e
	res.Logs = logs
	return res
}
