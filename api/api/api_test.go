/* api_test.go
 * Contains unit tests for the public API methods, run against the in-memory
 * mock store
 */

package api

import (
	"testing"

	"cfp-bracket/api/shared"
	"cfp-bracket/api/store"

	"github.com/stretchr/testify/assert"
)

var testUser = shared.User{UserId: "user-1", Username: "testuser"}

// validPicks returns a fresh complete, progression-valid picks map
func validPicks() map[string]string {
	return map[string]string{
		"fr1": "Oklahoma", "fr2": "Oregon", "fr3": "Ole Miss", "fr4": "Texas A&M",
		"qf1": "Indiana", "qf2": "Texas Tech", "qf3": "Georgia", "qf4": "Ohio State",
		"sf1": "Indiana", "sf2": "Ohio State",
		"final": "Indiana",
	}
}

func newTestAPI() (*API, *MockStore) {
	mock := NewMockStore()
	return &API{Store: mock, Provider: &MockProvider{}, Season: 2026}, mock
}

// TestSubmitPrediction tests the happy path: a valid submission is frozen and
// stored with a zero starting score
func TestSubmitPrediction(t *testing.T) {
	a, mock := newTestAPI()

	id, err := a.SubmitPrediction(testUser, "My Bracket", validPicks(), store.PredictedScore{Team1Score: 30, Team2Score: 20})

	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	stored := mock.PredictionsById[id]
	assert.Equal(t, "user-1", stored.OwnerId)
	assert.Equal(t, "testuser", stored.OwnerLabel)
	assert.Equal(t, "My Bracket", stored.Name)
	assert.Equal(t, 0, stored.Score)
	assert.Equal(t, "Indiana", stored.Bracket.Championship.Prediction)
	assert.Equal(t, "National Championship", stored.Bracket.Championship.Title)
	assert.False(t, stored.CreatedAt.IsZero())
}

// TestSubmitPrediction_MissingNameOrOwner tests the required field checks
func TestSubmitPrediction_MissingNameOrOwner(t *testing.T) {
	a, _ := newTestAPI()

	_, err := a.SubmitPrediction(testUser, "   ", validPicks(), store.PredictedScore{})
	assert.ErrorIs(t, err, shared.ErrValidation)

	_, err = a.SubmitPrediction(shared.User{}, "My Bracket", validPicks(), store.PredictedScore{})
	assert.ErrorIs(t, err, shared.ErrValidation)
}

// TestSubmitPrediction_DuplicateName tests that a name is unique per owner
// but free for other owners
func TestSubmitPrediction_DuplicateName(t *testing.T) {
	a, _ := newTestAPI()
	_, err := a.SubmitPrediction(testUser, "My Bracket", validPicks(), store.PredictedScore{})
	assert.NoError(t, err)

	_, err = a.SubmitPrediction(testUser, "My Bracket", validPicks(), store.PredictedScore{})
	assert.ErrorIs(t, err, shared.ErrValidation)

	other := shared.User{UserId: "user-2", Username: "other"}
	_, err = a.SubmitPrediction(other, "My Bracket", validPicks(), store.PredictedScore{})
	assert.NoError(t, err)
}

// TestSubmitPrediction_OwnerCap tests the per owner prediction cap
func TestSubmitPrediction_OwnerCap(t *testing.T) {
	a, _ := newTestAPI()
	names := []string{"one", "two", "three", "four", "five"}
	for _, name := range names {
		_, err := a.SubmitPrediction(testUser, name, validPicks(), store.PredictedScore{})
		assert.NoError(t, err)
	}

	_, err := a.SubmitPrediction(testUser, "six", validPicks(), store.PredictedScore{})

	assert.ErrorIs(t, err, shared.ErrValidation)
}

// TestSubmitPrediction_InvalidBracket tests that an incomplete picks map is
// rejected before anything is written
func TestSubmitPrediction_InvalidBracket(t *testing.T) {
	a, mock := newTestAPI()
	picks := validPicks()
	delete(picks, "final")

	_, err := a.SubmitPrediction(testUser, "My Bracket", picks, store.PredictedScore{})

	assert.ErrorIs(t, err, shared.ErrValidation)
	assert.Empty(t, mock.PredictionsById)
}

// TestDeletePrediction_OwnerScoped tests that deletion is scoped to the
// prediction's owner
func TestDeletePrediction_OwnerScoped(t *testing.T) {
	a, mock := newTestAPI()
	id, err := a.SubmitPrediction(testUser, "My Bracket", validPicks(), store.PredictedScore{})
	assert.NoError(t, err)

	err = a.DeletePrediction(id, shared.User{UserId: "someone-else"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.Len(t, mock.PredictionsById, 1)

	err = a.DeletePrediction(id, testUser)
	assert.NoError(t, err)
	assert.Empty(t, mock.PredictionsById)
}

// TestCheckPrediction tests that the per pick report reflects the stored
// results
func TestCheckPrediction(t *testing.T) {
	a, mock := newTestAPI()
	id, err := a.SubmitPrediction(testUser, "My Bracket", validPicks(), store.PredictedScore{Team1Score: 30, Team2Score: 20})
	assert.NoError(t, err)

	score1, score2 := 31, 24
	assert.NoError(t, mock.UpsertGameResult(store.GameResult{
		GameId: "cfb-1", Round: shared.RoundFirstRound,
		Team1: "Oklahoma", Team2: "Alabama",
		Team1Score: &score1, Team2Score: &score2,
		Winner: "Oklahoma", Completed: true,
	}))

	report, err := a.CheckPrediction(id)

	assert.NoError(t, err)
	assert.Contains(t, report, "- Oklahoma over Alabama [Correct]")
	assert.Contains(t, report, "- Indiana to win it all [Pending]")
}

// TestCheckPrediction_NotFound tests the unknown id path
func TestCheckPrediction_NotFound(t *testing.T) {
	a, _ := newTestAPI()

	_, err := a.CheckPrediction("does-not-exist")

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

// TestLeaderboard tests ranking, pagination and absolute ranks across pages
func TestLeaderboard(t *testing.T) {
	a, mock := newTestAPI()
	scores := []int{110, 55, 35, 10, 5}
	for i, score := range scores {
		mock.AddPrediction(store.Prediction{
			OwnerId: "user-1",
			Name:    string(rune('a' + i)),
			Score:   score,
		})
	}

	first, err := a.Leaderboard(1, 2)
	assert.NoError(t, err)
	assert.Len(t, first.Entries, 2)
	assert.Equal(t, 1, first.Entries[0].Rank)
	assert.Equal(t, 110, first.Entries[0].Score)
	assert.Equal(t, 2, first.Entries[1].Rank)
	assert.Equal(t, int64(5), first.Total)
	assert.Equal(t, int64(3), first.TotalPages)

	second, err := a.Leaderboard(2, 2)
	assert.NoError(t, err)
	assert.Equal(t, 3, second.Entries[0].Rank)
	assert.Equal(t, 35, second.Entries[0].Score)
}

// TestLeaderboard_DefaultsAppliedForBadInputs tests the page and limit
// normalization
func TestLeaderboard_DefaultsAppliedForBadInputs(t *testing.T) {
	a, mock := newTestAPI()
	mock.AddPrediction(store.Prediction{OwnerId: "user-1", Name: "only", Score: 5})

	page, err := a.Leaderboard(0, -3)

	assert.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.Limit)
	assert.Len(t, page.Entries, 1)
}
