/* api.go
 * This file contains the public methods for interacting with this package.
 * For consistent results, callers should go through these methods rather than
 * reaching into the store or logic sub packages directly
 */

package api

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cfp-bracket/api/external"
	"cfp-bracket/api/logic"
	"cfp-bracket/api/shared"
	"cfp-bracket/api/store"
)

// ResultsProvider is the slice of the provider client the API depends on.
// Declared here so tests can substitute a fake provider
type ResultsProvider interface {
	FetchPostseasonGames(ctx context.Context, year int) ([]external.Game, error)
}

// API provides methods for interacting with the bracket challenge data layer
type API struct {
	Store    store.Interface
	Provider ResultsProvider
	Season   int
}

// NewAPI creates a new API instance with the provided configuration
func NewAPI(dbName string, mongoURI string, providerURL string, providerKey string, season int) (*API, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName is required")
	}
	if season == 0 {
		season = time.Now().Year()
	}

	s, err := store.NewStore(dbName, mongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &API{
		Store:    s,
		Provider: external.NewClient(providerURL, providerKey),
		Season:   season,
	}, nil
}

// SubmitPrediction validates and freezes a completed bracket into a stored
// prediction owned by the user. The picks are replayed through the bracket
// state machine, so an inconsistent or incomplete bracket is rejected before
// anything is written.
// It returns the new prediction's id, or a validation error for an
// incomplete bracket, a duplicate name, or an owner already at the
// prediction cap.
func (a *API) SubmitPrediction(user shared.User, name string, picks map[string]string, predictedScore store.PredictedScore) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: prediction name is required", shared.ErrValidation)
	}
	if user.UserId == "" {
		return "", fmt.Errorf("%w: owner id is required", shared.ErrValidation)
	}

	taken, err := a.Store.OwnerHasName(user.UserId, name)
	if err != nil {
		return "", err
	}
	if taken {
		return "", fmt.Errorf("%w: you already have a prediction named %q", shared.ErrValidation, name)
	}

	count, err := a.Store.CountPredictionsByOwner(user.UserId)
	if err != nil {
		return "", err
	}
	if count >= store.MaxPredictionsPerOwner {
		return "", fmt.Errorf("%w: at most %d predictions per user", shared.ErrValidation, store.MaxPredictionsPerOwner)
	}

	bracket, err := logic.FreezeBracket(picks, predictedScore)
	if err != nil {
		return "", err
	}

	now := time.Now()
	prediction := store.Prediction{
		OwnerId:    user.UserId,
		OwnerLabel: user.Username,
		Name:       name,
		Bracket:    bracket,
		Score:      0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return a.Store.CreatePrediction(prediction)
}

// GetPrediction fetches one stored prediction by id
func (a *API) GetPrediction(id string) (store.Prediction, error) {
	return a.Store.GetPrediction(id)
}

// PredictionsForOwner lists a user's predictions, newest first
func (a *API) PredictionsForOwner(ownerId string) ([]store.Prediction, error) {
	return a.Store.GetPredictionsByOwner(ownerId)
}

// PredictionNames lists the display names of every stored prediction
func (a *API) PredictionNames() ([]string, error) {
	return a.Store.GetPredictionNames()
}

// DeletePrediction removes a prediction, scoped to its owner
func (a *API) DeletePrediction(id string, user shared.User) error {
	return a.Store.DeletePrediction(id, user.UserId)
}

// CheckPrediction contains the logic required to check a prediction against
// the current results: it returns the per pick report produced by the
// scoring engine for one stored prediction
func (a *API) CheckPrediction(id string) (string, error) {
	prediction, err := a.Store.GetPrediction(id)
	if err != nil {
		return "", err
	}

	results, err := a.Store.GetAllGameResults()
	if err != nil {
		return "", err
	}

	_, report := logic.CalculateScore(prediction.Bracket, results)
	return report, nil
}

// Leaderboard returns one page of predictions ranked by score descending
// with submission time as the tie break. Ranks are absolute, computed from
// the page offset
func (a *API) Leaderboard(page int, limit int) (LeaderboardPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}
	skip := int64((page - 1) * limit)

	preds, total, err := a.Store.GetLeaderboardPage(skip, int64(limit))
	if err != nil {
		return LeaderboardPage{}, err
	}

	entries := make([]LeaderboardEntry, 0, len(preds))
	for i, pred := range preds {
		entries = append(entries, LeaderboardEntry{
			Rank:       int(skip) + i + 1,
			Prediction: pred,
		})
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)
	return LeaderboardPage{
		Entries:    entries,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// Results lists every stored game result sorted by game date
func (a *API) Results() ([]store.GameResult, error) {
	return a.Store.GetAllGameResults()
}
