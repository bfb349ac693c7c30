package catalog

import (
	"testing"

	"github.com/pefman/card-rpg/internal/game"
)

func TestCatalogShapes(t *testing.T) {
	if n := len(Monsters()); n != 5 {
		t.Fatalf("monsters = %d, want 5", n)
	}
	for _, items := range [][]game.Item{Weapons(), Armor(), Accessories()} {
		if len(items) != 4 {
			t.Fatalf("equipment list has %d entries, want 4", len(items))
		}
	}
	if n := len(BasePlayer().Hand); n != 3 {
		t.Fatalf("hand = %d cards, want 3", n)
	}
}

func TestMonsterDamageRangesAreOrdered(t *testing.T) {
	for _, m := range Monsters() {
		if m.MinDamage < 0 || m.MinDamage > m.MaxDamage {
			t.Fatalf("%s damage range [%d,%d] invalid", m.Name, m.MinDamage, m.MaxDamage)
		}
		if m.HP != m.MaxHP || m.HP <= 0 {
			t.Fatalf("%s hp %d/%d invalid", m.Name, m.HP, m.MaxHP)
		}
	}
}

func TestBasePlayerMagnitudesNonNegative(t *testing.T) {
	p := BasePlayer()
	if p.HP != p.MaxHP {
		t.Fatalf("base player starts at %d/%d", p.HP, p.MaxHP)
	}
	for _, c := range p.Hand {
		if c.Magnitude < 0 {
			t.Fatalf("%s magnitude %d negative", c.Name, c.Magnitude)
		}
		if c.Effect != game.EffectAttack && c.Effect != game.EffectHeal {
			t.Fatalf("%s has unknown effect %q", c.Name, c.Effect)
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	ms := Monsters()
	ms[0].HP = 1
	if Monsters()[0].HP == 1 {
		t.Fatalf("catalog monster mutated through accessor copy")
	}
	p := BasePlayer()
	p.Hand[0].Magnitude = 99
	if BasePlayer().Hand[0].Magnitude == 99 {
		t.Fatalf("base player hand shared between calls")
	}
}

func TestValidSelection(t *testing.T) {
	if !ValidSelection(0, 0, 0, 0) || !ValidSelection(4, 3, 3, 3) {
		t.Fatalf("in-range selection rejected")
	}
	for _, bad := range [][4]int{{-1, 0, 0, 0}, {5, 0, 0, 0}, {0, 4, 0, 0}, {0, 0, 4, 0}, {0, 0, 0, 4}} {
		if ValidSelection(bad[0], bad[1], bad[2], bad[3]) {
			t.Fatalf("selection %v accepted", bad)
		}
	}
}
