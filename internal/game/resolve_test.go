package game

import (
	"testing"

	"github.com/pefman/card-rpg/internal/engine"
)

// scriptRoller returns queued values in order, then the low bound.
type scriptRoller struct {
	vals []int
	i    int
}

func (s *scriptRoller) Between(lo, hi int) int {
	if s.i < len(s.vals) {
		v := s.vals[s.i]
		s.i++
		return v
	}
	return lo
}

func TestResolveTurnAttackAndCounter(t *testing.T) {
	player := Combatant{Name: "Hero", HP: 30, MaxHP: 30}
	enemy := Combatant{Name: "Goblin", HP: 20, MaxHP: 20, MinDamage: 2, MaxDamage: 6}
	card := Card{Name: "Smite", Effect: EffectAttack, Magnitude: 13}

	res := ResolveTurn(player, enemy, card, &scriptRoller{vals: []int{4}})
	if res.Enemy.HP != 7 {
		t.Fatalf("enemy hp = %d, want 7", res.Enemy.HP)
	}
	if res.Player.HP != 26 {
		t.Fatalf("player hp = %d, want 26", res.Player.HP)
	}
	if res.CounterDamage != 4 {
		t.Fatalf("counter damage = %d, want 4", res.CounterDamage)
	}
	if res.Outcome != OutcomeOngoing {
		t.Fatalf("outcome = %s, want ongoing", res.Outcome)
	}
	if len(res.Logs) != 2 {
		t.Fatalf("want 2 log lines, got %v", res.Logs)
	}
}

func TestResolveTurnDefeatedEnemyDoesNotCounter(t *testing.T) {
	player := Combatant{Name: "Hero", HP: 30, MaxHP: 30}
	enemy := Combatant{Name: "Goblin", HP: 5, MaxHP: 20, MinDamage: 2, MaxDamage: 6}
	card := Card{Name: "Smite", Effect: EffectAttack, Magnitude: 13}

	res := ResolveTurn(player, enemy, card, &scriptRoller{vals: []int{6}})
	if res.Enemy.HP != 0 {
		t.Fatalf("enemy hp = %d, want 0 (clamped)", res.Enemy.HP)
	}
	if res.Player.HP != 30 {
		t.Fatalf("player took counter damage: hp = %d", res.Player.HP)
	}
	if res.CounterDamage != 0 {
		t.Fatalf("counter damage = %d, want 0", res.CounterDamage)
	}
	if res.Outcome != OutcomeEnemyDefeated {
		t.Fatalf("outcome = %s, want enemy_defeated", res.Outcome)
	}
	if len(res.Logs) != 1 {
		t.Fatalf("no counter line expected, got %v", res.Logs)
	}
}

func TestResolveTurnHealClampsToMaxHP(t *testing.T) {
	player := Combatant{Name: "Hero", HP: 27, MaxHP: 30}
	enemy := Combatant{Name: "Goblin", HP: 20, MaxHP: 20, MinDamage: 2, MaxDamage: 6}
	card := Card{Name: "Heal", Effect: EffectHeal, Magnitude: 6}

	res := ResolveTurn(player, enemy, card, &scriptRoller{vals: []int{2}})
	// Healed 3 (clamped), then took 2 counter damage.
	if res.Player.HP != 28 {
		t.Fatalf("player hp = %d, want 28", res.Player.HP)
	}
	if res.Logs[0] != "You used Heal. You healed 3 HP." {
		t.Fatalf("heal log shows wrong applied amount: %q", res.Logs[0])
	}
}

func TestResolveTurnPlayerDefeated(t *testing.T) {
	player := Combatant{Name: "Hero", HP: 2, MaxHP: 30}
	enemy := Combatant{Name: "Troll", HP: 40, MaxHP: 40, MinDamage: 5, MaxDamage: 9}
	card := Card{Name: "Slash", Effect: EffectAttack, Magnitude: 5}

	res := ResolveTurn(player, enemy, card, &scriptRoller{vals: []int{9}})
	if res.Player.HP != 0 {
		t.Fatalf("player hp = %d, want 0 (clamped)", res.Player.HP)
	}
	if res.Outcome != OutcomePlayerDefeated {
		t.Fatalf("outcome = %s, want player_defeated", res.Outcome)
	}
}

func TestResolveTurnDoesNotMutateInputs(t *testing.T) {
	player := Combatant{Name: "Hero", HP: 30, MaxHP: 30, Hand: []Card{{Name: "Slash", Effect: EffectAttack, Magnitude: 5}}}
	enemy := Combatant{Name: "Goblin", HP: 20, MaxHP: 20, MinDamage: 2, MaxDamage: 6}

	ResolveTurn(player, enemy, player.Hand[0], &scriptRoller{vals: []int{6}})
	if player.HP != 30 || enemy.HP != 20 {
		t.Fatalf("inputs mutated: player %d, enemy %d", player.HP, enemy.HP)
	}
}

func TestResolveTurnHPStaysInRange(t *testing.T) {
	r := engine.NewSeededRoller(7)
	player := Combatant{Name: "Hero", HP: 30, MaxHP: 30}
	enemy := Combatant{Name: "Dragon", HP: 50, MaxHP: 50, MinDamage: 6, MaxDamage: 12}
	cards := []Card{
		{Name: "Slash", Effect: EffectAttack, Magnitude: 5},
		{Name: "Heal", Effect: EffectHeal, Magnitude: 6},
	}

	for i := 0; i < 500; i++ {
		res := ResolveTurn(player, enemy, cards[i%2], r)
		for _, c := range []Combatant{res.Player, res.Enemy} {
			if c.HP < 0 || c.HP > c.MaxHP {
				t.Fatalf("%s hp %d outside [0,%d]", c.Name, c.HP, c.MaxHP)
			}
		}
		if res.CounterDamage != 0 && (res.CounterDamage < 6 || res.CounterDamage > 12) {
			t.Fatalf("counter damage %d outside [6,12]", res.CounterDamage)
		}
		if res.Outcome != OutcomeOngoing {
			player = Combatant{Name: "Hero", HP: 30, MaxHP: 30}
			enemy = Combatant{Name: "Dragon", HP: 50, MaxHP: 50, MinDamage: 6, MaxDamage: 12}
			continue
		}
		player, enemy = res.Player, res.Enemy
	}
}

func TestCounterDamageHitsBothBounds(t *testing.T) {
	r := engine.NewSeededRoller(11)
	player := Combatant{Name: "Hero", HP: 1 << 30, MaxHP: 1 << 30}
	enemy := Combatant{Name: "Goblin", HP: 20, MaxHP: 20, MinDamage: 2, MaxDamage: 6}
	card := Card{Name: "Poke", Effect: EffectAttack, Magnitude: 0}

	seenMin, seenMax := false, false
	for i := 0; i < 1000; i++ {
		res := ResolveTurn(player, enemy, card, r)
		if res.CounterDamage < 2 || res.CounterDamage > 6 {
			t.Fatalf("counter damage %d outside [2,6]", res.CounterDamage)
		}
		if res.CounterDamage == 2 {
			seenMin = true
		}
		if res.CounterDamage == 6 {
			seenMax = true
		}
	}
	if !seenMin || !seenMax {
		t.Fatalf("expected both damage bounds over 1000 turns: min=%v max=%v", seenMin, seenMax)
	}
}
