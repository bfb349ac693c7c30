package score

import "testing"

func TestRankWinsDescending(t *testing.T) {
	board := []Entry{
		{Player: "a", Wins: 1},
		{Player: "b", Wins: 8},
		{Player: "c", Wins: 3},
	}
	ranked := Rank(board)
	want := []string{"b", "c", "a"}
	for i, p := range want {
		if ranked[i].Player != p {
			t.Fatalf("rank %d = %s, want %s (%v)", i, ranked[i].Player, p, ranked)
		}
	}
}

func TestRankTieBrokenByWinRate(t *testing.T) {
	board := []Entry{
		{Player: "even", Wins: 5, Losses: 5},
		{Player: "perfect", Wins: 5, Losses: 0},
	}
	ranked := Rank(board)
	if ranked[0].Player != "perfect" {
		t.Fatalf("rank 0 = %s, want perfect (%v)", ranked[0].Player, ranked)
	}
}

func TestRankStableForFullTies(t *testing.T) {
	board := []Entry{
		{Player: "first", Wins: 2, Losses: 2},
		{Player: "second", Wins: 2, Losses: 2},
	}
	ranked := Rank(board)
	if ranked[0].Player != "first" || ranked[1].Player != "second" {
		t.Fatalf("tie order not stable: %v", ranked)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	board := []Entry{
		{Player: "a", Wins: 1},
		{Player: "b", Wins: 8},
	}
	Rank(board)
	if board[0].Player != "a" {
		t.Fatalf("input reordered: %v", board)
	}
}

func TestWinRateZeroGames(t *testing.T) {
	if r := WinRate(Entry{}); r != 0 {
		t.Fatalf("win rate = %v, want 0", r)
	}
	if r := WinRate(Entry{Wins: 3, Losses: 1}); r != 0.75 {
		t.Fatalf("win rate = %v, want 0.75", r)
	}
}
