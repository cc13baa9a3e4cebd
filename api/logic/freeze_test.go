/* freeze_test.go
 * Contains unit tests for the submission replay that validates winner picks
 * and freezes them into the stored bracket form
 */

package logic

import (
	"testing"

	"cfp-bracket/api/shared"
	"cfp-bracket/api/store"

	"github.com/stretchr/testify/assert"
)

// TestFreezeBracket_ValidPicks tests that a complete, progression-valid set
// of picks freezes into a stored bracket with titles attached
func TestFreezeBracket_ValidPicks(t *testing.T) {
	frozen, err := FreezeBracket(standardPicks, store.PredictedScore{Team1Score: 30, Team2Score: 20})

	assert.NoError(t, err)
	assert.Len(t, frozen.FirstRound, 4)
	assert.Len(t, frozen.Quarterfinals, 4)
	assert.Len(t, frozen.Semifinals, 2)

	assert.Equal(t, "Oklahoma", frozen.FirstRound[0].Prediction)
	assert.Equal(t, "Indiana", frozen.Quarterfinals[0].Team1)
	assert.Equal(t, "Oklahoma", frozen.Quarterfinals[0].Team2)
	assert.Equal(t, "Indiana", frozen.Championship.Team1)
	assert.Equal(t, "Ohio State", frozen.Championship.Team2)
	assert.Equal(t, "Indiana", frozen.Championship.Prediction)
	assert.Equal(t, 30, frozen.Championship.PredictedScore.Team1Score)
	assert.Equal(t, 20, frozen.Championship.PredictedScore.Team2Score)

	assert.Equal(t, "Rose Bowl", frozen.Quarterfinals[0].Title)
	assert.Equal(t, "National Championship", frozen.Championship.Title)
}

// TestFreezeBracket_MissingPick tests that an incomplete picks map is
// rejected with a validation error
func TestFreezeBracket_MissingPick(t *testing.T) {
	picks := make(map[string]string, len(standardPicks))
	for id, winner := range standardPicks {
		picks[id] = winner
	}
	delete(picks, "sf2")

	_, err := FreezeBracket(picks, store.PredictedScore{})

	assert.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrValidation)
}

// TestFreezeBracket_ProgressionViolation tests that a pick naming a team the
// user's own earlier picks eliminated is rejected: Alabama cannot win qf1
// when Oklahoma was picked to win fr1
func TestFreezeBracket_ProgressionViolation(t *testing.T) {
	picks := make(map[string]string, len(standardPicks))
	for id, winner := range standardPicks {
		picks[id] = winner
	}
	picks["qf1"] = "Alabama"

	_, err := FreezeBracket(picks, store.PredictedScore{})

	assert.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrValidation)
}
