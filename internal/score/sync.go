// Package score keeps the local shadow of the remote win/loss ledger in
// step with the authoritative copy, and ranks entries for display.
package score

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Entry is one player's win/loss record.
type Entry struct {
	Player string `json:"player"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// Ledger is the remote score service contract the synchronizer consumes.
type Ledger interface {
	MyScore(ctx context.Context, player string) (wins, losses int, err error)
	AllScores(ctx context.Context) ([]Entry, error)
	RecordGame(ctx context.Context, player string, won bool) error
}

var (
	// ErrSubmissionPending rejects a second submission while one is in
	// flight. At most one outcome may be recorded at a time.
	ErrSubmissionPending = errors.New("score submission already in flight")
	// ErrNoIdentity rejects submissions before an identity exists.
	ErrNoIdentity = errors.New("no player identity")
)

// Synchronizer owns the shadow ScoreRecord and the cached leaderboard.
// Submissions run as a small saga: optimistic local increment, remote
// record, then either commit by refetching the authoritative values or
// compensate by reverting the increment exactly. The submitting flag is
// the only path in and out of the in-flight state, which makes "one
// submission per outcome" structural rather than a convention.
type Synchronizer struct {
	ledger Ledger
	player string

	mu         sync.Mutex
	submitting bool
	record     Entry
	board      []Entry
}

// NewSynchronizer builds a synchronizer for one identity. The identity is
// opaque; anonymous callers are fine as long as it is non-empty.
func NewSynchronizer(ledger Ledger, player string) *Synchronizer {
	return &Synchronizer{ledger: ledger, player: player, record: Entry{Player: player}}
}

// Bootstrap loads the personal record and the full board. Read failures
// are recovered locally: the record degrades to 0/0 and the board to
// empty, never blocking startup. Skipped while a submission is in flight
// so a refresh cannot clobber the optimistic increment mid-saga.
func (s *Synchronizer) Bootstrap(ctx context.Context) {
	if s.Submitting() {
		return
	}
	s.refreshRecord(ctx)
	s.refreshBoard(ctx)
}

func (s *Synchronizer) refreshRecord(ctx context.Context) {
	wins, losses, err := s.ledger.MyScore(ctx, s.player)
	if err != nil {
		wins, losses = 0, 0
	}
	s.mu.Lock()
	s.record = Entry{Player: s.player, Wins: wins, Losses: losses}
	s.mu.Unlock()
}

func (s *Synchronizer) refreshBoard(ctx context.Context) {
	board, err := s.ledger.AllScores(ctx)
	if err != nil {
		board = nil
	}
	s.mu.Lock()
	s.board = board
	s.mu.Unlock()
}

// Begin moves Idle -> Submitting and applies the optimistic increment so
// the UI shows the new value immediately. Rejected while another
// submission is in flight or when no identity exists.
func (s *Synchronizer) Begin(won bool) error {
	if s.player == "" {
		return ErrNoIdentity
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return ErrSubmissionPending
	}
	s.submitting = true
	if won {
		s.record.Wins++
	} else {
		s.record.Losses++
	}
	return nil
}

// Finish performs the remote record after a successful Begin. Success
// commits by refetching the authoritative values; failure compensates by
// reverting exactly the increment Begin applied, leaving the board
// untouched. Either way the synchronizer returns to Idle — this is the
// only path back.
func (s *Synchronizer) Finish(ctx context.Context, won bool) error {
	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	if err := s.ledger.RecordGame(ctx, s.player, won); err != nil {
		s.mu.Lock()
		if won {
			s.record.Wins--
		} else {
			s.record.Losses--
		}
		s.mu.Unlock()
		return fmt.Errorf("record game: %w", err)
	}

	// The refetch is authoritative and overrides the optimistic guess.
	s.refreshRecord(ctx)
	s.refreshBoard(ctx)
	return nil
}

// Submit records one finished game start to finish, blocking until the
// ledger answers.
func (s *Synchronizer) Submit(ctx context.Context, won bool) error {
	if err := s.Begin(won); err != nil {
		return err
	}
	return s.Finish(ctx, won)
}

// Submitting reports whether a submission is in flight. The arena uses it
// to gate new actions while a result is being recorded.
func (s *Synchronizer) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// Record returns a copy of the shadow record.
func (s *Synchronizer) Record() Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

// Board returns a copy of the last fetched leaderboard entries, unranked.
func (s *Synchronizer) Board() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.board))
	copy(out, s.board)
	return out
}
