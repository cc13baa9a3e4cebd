/* models.go
 * Output shapes returned by the API facade
 */

package api

import "cfp-bracket/api/store"

// SyncReport summarises one sync run
type SyncReport struct {
	GamesUpdated  int `json:"gamesUpdated"`
	ScoresUpdated int `json:"scoresUpdated"`
}

// LeaderboardEntry is one ranked prediction
type LeaderboardEntry struct {
	Rank int `json:"rank"`
	store.Prediction
}

// LeaderboardPage is one page of the ranked standings
type LeaderboardPage struct {
	Entries    []LeaderboardEntry `json:"leaderboard"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Total      int64              `json:"total"`
	TotalPages int64              `json:"totalPages"`
}
