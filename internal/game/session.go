package game

import (
	"fmt"

	"github.com/pefman/card-rpg/internal/engine"
)

// Phase is the session lifecycle state.
type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "gameover"
)

// Selections are the catalog indices chosen on the setup screen.
type Selections struct {
	Monster   int `json:"monster"`
	Weapon    int `json:"weapon"`
	Armor     int `json:"armor"`
	Accessory int `json:"accessory"`
}

// Session is one complete setup-to-gameover battle lifecycle. It is a
// plain value: every transition returns a new Session instead of mutating
// shared state, and transitions attempted in the wrong phase return the
// session unchanged with ok=false.
type Session struct {
	Phase      Phase      `json:"phase"`
	Player     Combatant  `json:"player"`
	Enemy      Combatant  `json:"enemy"`
	Log        []string   `json:"log"`
	Selections Selections `json:"selections"`
	Outcome    Outcome    `json:"outcome"`
}

// NewSession returns a session in the setup phase.
func NewSession() Session {
	return Session{Phase: PhaseSetup, Outcome: OutcomeOngoing}
}

// Start composes the loadout and moves Setup -> Playing. The log is reset
// to a single encounter line. Allowed from any phase except while a battle
// is already running.
func (s Session) Start(base Combatant, m Monster, weapon, armor, accessory Item, sel Selections) (Session, bool) {
	if s.Phase == PhasePlaying {
		return s, false
	}
	player, enemy := BuildLoadout(base, m, weapon, armor, accessory)
	s.Phase = PhasePlaying
	s.Player = player
	s.Enemy = enemy
	s.Selections = sel
	s.Outcome = OutcomeOngoing
	s.Log = []string{fmt.Sprintf("A wild %s appears!", m.Name)}
	return s, true
}

// Play resolves one turn with the card at index idx. Rejected unless the
// session is in the playing phase. A terminal outcome moves the session to
// GameOver and appends the closing log line; the caller submits the score
// exactly once on that edge.
func (s Session) Play(idx int, r engine.Roller) (Session, TurnResult, bool) {
	if s.Phase != PhasePlaying {
		return s, TurnResult{}, false
	}
	if idx < 0 || idx >= len(s.Player.Hand) {
		return s, TurnResult{}, false
	}

	res := ResolveTurn(s.Player, s.Enemy, s.Player.Hand[idx], r)
	s.Player = res.Player
	s.Enemy = res.Enemy
	s.Log = append(s.Log, res.Logs...)
	s.Outcome = res.Outcome

	switch res.Outcome {
	case OutcomeEnemyDefeated:
		s.Phase = PhaseGameOver
		s.Log = append(s.Log, fmt.Sprintf("You defeated the %s!", s.Enemy.Name))
	case OutcomePlayerDefeated:
		s.Phase = PhaseGameOver
		s.Log = append(s.Log, "You were defeated...")
	}
	return s, res, true
}

// Restart returns a finished session to the setup phase. It clears the
// battle log and outcome but never touches score state. Rejected while a
// battle is running.
func (s Session) Restart() (Session, bool) {
	if s.Phase != PhaseGameOver {
		return s, false
	}
	s.Phase = PhaseSetup
	s.Outcome = OutcomeOngoing
	s.Log = nil
	s.Player = Combatant{}
	s.Enemy = Combatant{}
	return s, true
}
