package score

import "sort"

// WinRate is wins over total games, 0 when no games were played.
func WinRate(e Entry) float64 {
	total := e.Wins + e.Losses
	if total == 0 {
		return 0
	}
	return float64(e.Wins) / float64(total)
}

// Rank orders entries for display: wins descending, then win rate
// descending, stable for remaining ties. The input is not mutated; the
// board is re-ranked on every display request.
func Rank(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return WinRate(out[i]) > WinRate(out[j])
	})
	return out
}
