package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/pefman/card-rpg/internal/catalog"
	"github.com/pefman/card-rpg/internal/engine"
	"github.com/pefman/card-rpg/internal/game"
	"github.com/pefman/card-rpg/internal/score"
)

// WsMsg is the wire envelope, both directions.
type WsMsg struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

type wsIn struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// client drives one game session over one WebSocket connection. All
// messages are handled sequentially in the read loop; the only work that
// leaves that loop is the score submission, which is guarded by the
// synchronizer's submitting state.
type client struct {
	conn     *websocket.Conn
	identity string
	roller   engine.Roller
	scores   *score.Synchronizer
	session  game.Session

	writeMu sync.Mutex // submission goroutine writes too
}

func newClient(conn *websocket.Conn, identity string, ledger score.Ledger) *client {
	return &client{
		conn:     conn,
		identity: identity,
		roller:   engine.NewRoller(),
		scores:   score.NewSynchronizer(ledger, identity),
		session:  game.NewSession(),
	}
}

func (c *client) send(m WsMsg) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.WriteJSON(m); err != nil {
		log.Printf("ws: write error to %s: %v", c.identity, err)
	}
}

func (c *client) sendState() {
	c.send(WsMsg{Type: "state", Data: map[string]interface{}{
		"phase":      c.session.Phase,
		"player":     c.session.Player,
		"enemy":      c.session.Enemy,
		"log":        c.session.Log,
		"outcome":    c.session.Outcome,
		"submitting": c.scores.Submitting(),
	}})
}

func (c *client) sendScore() {
	c.send(WsMsg{Type: "score", Data: map[string]interface{}{
		"identity":    c.identity,
		"record":      c.scores.Record(),
		"leaderboard": score.Rank(c.scores.Board()),
	}})
}

func (c *client) sendError(msg string) {
	c.send(WsMsg{Type: "error", Data: map[string]string{"message": msg}})
}

func (c *client) run(ctx context.Context) {
	defer c.conn.Close()

	// Startup reads degrade to 0/0 and an empty board on failure.
	c.scores.Bootstrap(ctx)
	c.sendScore()
	c.sendState()

	for {
		var msg wsIn
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		switch msg.Type {
		case "start":
			c.handleStart(msg.Data)
		case "play":
			c.handlePlay(msg.Data)
		case "restart":
			c.handleRestart()
		case "refresh":
			// Retry path for a failed bootstrap or a stale board.
			c.scores.Bootstrap(ctx)
			c.sendScore()
		default:
			log.Printf("ws: unknown message type %q from %s", msg.Type, c.identity)
		}
	}
}

func (c *client) handleStart(data json.RawMessage) {
	if c.scores.Submitting() {
		return
	}
	var sel game.Selections
	if err := json.Unmarshal(data, &sel); err != nil {
		c.sendError("invalid selection")
		return
	}
	if !catalog.ValidSelection(sel.Monster, sel.Weapon, sel.Armor, sel.Accessory) {
		c.sendError("selection out of range")
		return
	}
	monsters := catalog.Monsters()
	next, ok := c.session.Start(
		catalog.BasePlayer(),
		monsters[sel.Monster],
		catalog.Weapons()[sel.Weapon],
		catalog.Armor()[sel.Armor],
		catalog.Accessories()[sel.Accessory],
		sel,
	)
	if !ok {
		return
	}
	c.session = next
	c.sendState()
}

func (c *client) handlePlay(data json.RawMessage) {
	if c.scores.Submitting() {
		return
	}
	var req struct {
		Card int `json:"card"`
	}
	if err := json.Unmarshal(data, &req); err != nil {
		c.sendError("invalid card")
		return
	}
	next, res, ok := c.session.Play(req.Card, c.roller)
	if !ok {
		return
	}
	c.session = next

	// Submit exactly once, on the edge into game over.
	if next.Phase == game.PhaseGameOver {
		c.submitOutcome(res.Outcome == game.OutcomeEnemyDefeated)
	}
	c.sendState()
}

func (c *client) handleRestart() {
	if c.scores.Submitting() {
		return
	}
	next, ok := c.session.Restart()
	if !ok {
		return
	}
	c.session = next
	c.sendState()
}

// submitOutcome records the result without blocking the read loop. The
// optimistic increment is applied and pushed immediately; the
// authoritative values (or the rollback plus an error banner) follow when
// the remote call returns.
func (c *client) submitOutcome(won bool) {
	if err := c.scores.Begin(won); err != nil {
		if !errors.Is(err, score.ErrSubmissionPending) {
			log.Printf("submit for %s: %v", c.identity, err)
			c.sendError("Failed to record game result")
		}
		return
	}
	c.sendScore()
	go func() {
		// A dropped connection must not cancel an in-flight submission;
		// the remote call runs to completion on its own context.
		if err := c.scores.Finish(context.Background(), won); err != nil {
			log.Printf("submit for %s: %v", c.identity, err)
			c.sendError("Failed to record game result")
		}
		c.sendScore()
		c.sendState()
	}()
}
