package leaderboard

import (
	"time"

	models "Asteria/models/graph"
)

// Aggregate folds game listings into the per-user leaderboard. A user shows
// up only with at least one listing. Score and duration accumulate, the
// country is the last one seen for that user. Averages are left to clients.
func Aggregate(listings []models.GameListing) models.Leaderboard {
	board := models.Leaderboard{}
	for _, el := range listings {
		agg, ok := board[el.User.Username]
		if !ok {
			agg = models.UserAggregate{User: el.User}
		}
		agg.Score += el.Game.Score
		agg.Count++
		agg.Duration += durationMinutes(el.Game.Start, el.Game.End)
		agg.Country = el.Country
		board[el.User.Username] = agg
	}
	return board
}

// durationMinutes is end minus start in minutes. Unparseable timestamps
// contribute nothing.
func durationMinutes(start, end string) float64 {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return 0
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return 0
	}
	return e.Sub(s).Minutes()
}
