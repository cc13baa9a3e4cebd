/* scoring_test.go
 * Contains unit tests for the scoring engine: per round winner points, the
 * championship score bonuses, pair-plus-round matching and the determinism
 * and monotonicity guarantees
 */

package logic

import (
	"testing"

	"cfp-bracket/api/shared"
	"cfp-bracket/api/store"

	"github.com/stretchr/testify/assert"
)

// standardPicks is a complete, progression-valid set of winner picks used as
// the base bracket across the scoring tests
var standardPicks = map[string]string{
	"fr1": "Oklahoma", "fr2": "Oregon", "fr3": "Ole Miss", "fr4": "Texas A&M",
	"qf1": "Indiana", "qf2": "Texas Tech", "qf3": "Georgia", "qf4": "Ohio State",
	"sf1": "Indiana", "sf2": "Ohio State",
	"final": "Indiana",
}

func standardBracket(t *testing.T, predicted store.PredictedScore) store.Bracket {
	t.Helper()
	bracket, err := FreezeBracket(standardPicks, predicted)
	assert.NoError(t, err)
	return bracket
}

func intPtr(n int) *int {
	return &n
}

// completedResult builds a completed result with the winner derived from the
// scores, team1 winning ties
func completedResult(round shared.Round, team1 string, team2 string, score1 int, score2 int) store.GameResult {
	winner := team1
	if score2 > score1 {
		winner = team2
	}
	return store.GameResult{
		GameId:     "test-" + string(round) + "-" + team1,
		Round:      round,
		Team1:      team1,
		Team2:      team2,
		Team1Score: intPtr(score1),
		Team2Score: intPtr(score2),
		Winner:     winner,
		Completed:  true,
	}
}

// TestCalculateScore_NoResults tests that a bracket with no results scores
// zero and reports every pick as pending
func TestCalculateScore_NoResults(t *testing.T) {
	bracket := standardBracket(t, store.PredictedScore{Team1Score: 30, Team2Score: 20})

	total, report := CalculateScore(bracket, nil)

	assert.Equal(t, 0, total)
	assert.Contains(t, report, "- Oklahoma over Alabama [Pending]")
	assert.Contains(t, report, "- Indiana to win it all [Pending]")
}

// TestCalculateScore_CorrectFirstRoundPick tests the base rule: a correct
// winner in a non-championship round is worth exactly PointsPerPick
func TestCalculateScore_CorrectFirstRoundPick(t *testing.T) {
	bracket := standardBracket(t, store.PredictedScore{Team1Score: 30, Team2Score: 20})
	results := []store.GameResult{
		completedResult(shared.RoundFirstRound, "Oklahoma", "Alabama", 31, 24),
	}

	total, report := CalculateScore(bracket, results)

	assert.Equal(t, PointsPerPick, total)
	assert.Contains(t, report, "- Oklahoma over Alabama [Correct]")
}

// TestCalculateScore_IncorrectPickScoresNothing tests that a wrong winner
// earns zero for that matchup
func TestCalculateScore_IncorrectPickScoresNothing(t *testing.T) {
	bracket := standardBracket(t, store.PredictedScore{Team1Score: 30, Team2Score: 20})
	results := []store.GameResult{
		completedResult(shared.RoundFirstRound, "Oklahoma", "Alabama", 17, 20),
	}

	total, report := CalculateScore(bracket, results)

	assert.Equal(t, 0, total)
	assert.Contains(t, report, "- Oklahoma over Alabama [Incorrect, Alabama won]")
}

// TestCalculateScore_ChampionshipExactScore tests that a correct champion
// with an exact positional score match is worth 5 + 100
func TestCalculateScore_ChampionshipExactScore(t *testing.T) {
	bracket := standardBracket(t, store.PredictedScore{Team1Score: 30, Team2Score: 20})
	results := []store.GameResult{
		completedResult(shared.RoundChampionship, "Indiana", "Ohio State", 30, 20),
	}

	total, _ := CalculateScore(bracket, results)

	assert.Equal(t, PointsPerPick+ExactScoreBonus, total)
}

// TestCalculateScore_ChampionshipCloseScores tests the independent close
// bonuses: predicted 28-17 against an actual 30-20 is within the margin on
// both sides, worth 5 + 25 + 25
func TestCalculateScore_ChampionshipCloseScores(t *testing.T) {
	bracket := standardBracket(t, store.PredictedScore{Team1Score: 28, Team2Score: 17})
	results := []store.GameResult{
		completedResult(shared.RoundChampionship, "Indiana", "Ohio State", 30, 20),
	}

	total, _ := CalculateScore(bracket, results)

	assert.Equal(t, PointsPerPick+2*CloseScoreBonus, total)
}

// TestCalculateScore_OneSideClose tests that each close bonus is evaluated
// independently when only one side is within the margin
func TestCalculateScore_OneSideClose(t *testing.T) {
	bracket := standardBracket(t, store.PredictedScore{Team1Score: 28, Team2Score: 3})
	results := []store.GameResult{
		completedResult(shared.RoundChampionship, "Indiana", "Ohio State", 30, 20),
	}

	total, _ := CalculateScore(bracket, results)

	assert.Equal(t, PointsPerPick+CloseScoreBonus, total)
}

// TestCalculateScore_WrongChampionNoBonuses tests that the score bonuses are
// gated on the winner pick: an exact score with the wrong champion is worth
// nothing at all
func TestCalculateScore_WrongChampionNoBonuses(t *testing.T) {
	bracket := standardBracket(t, store.PredictedScore{Team1Score: 30, Team2Score: 20})
	results := []store.GameResult{
		completedResult(shared.RoundChampionship, "Indiana", "Ohio State", 20, 30),
	}

	total, report := CalculateScore(bracket, results)

	assert.Equal(t, 0, total)
	assert.Contains(t, report, "- Indiana to win it all [Incorrect, Ohio State won]")
}

// TestCalculateScore_SwappedResultOrder tests that a result listing the pair
// in the opposite order still matches, and its scores are realigned before
// the positional bonus comparisons
func TestCalculateScore_SwappedResultOrder(t *testing.T) {
	bracket := standardBracket(t, store.PredictedScore{Team1Score: 30, Team2Score: 20})
	results := []store.GameResult{
		// Ohio State listed first, so the raw positional scores are reversed
		completedResult(shared.RoundChampionship, "Ohio State", "Indiana", 20, 30),
	}

	total, _ := CalculateScore(bracket, results)

	assert.Equal(t, PointsPerPick+ExactScoreBonus, total)
}

// TestCalculateScore_WhitespaceAndCaseInsensitive tests that matching folds
// case and trims whitespace on team names
func TestCalculateScore_WhitespaceAndCaseInsensitive(t *testing.T) {
	bracket := standardBracket(t, store.PredictedScore{Team1Score: 30, Team2Score: 20})
	results := []store.GameResult{
		{
			GameId: "g1", Round: shared.RoundFirstRound,
			Team1: "  OKLAHOMA ", Team2: "alabama",
			Team1Score: intPtr(31), Team2Score: intPtr(24),
			Winner: " oklahoma", Completed: true,
		},
	}

	total, _ := CalculateScore(bracket, results)

	assert.Equal(t, PointsPerPick, total)
}

// TestCalculateScore_RoundMismatchDoesNotMatch tests that the same pair in a
// different round is a different game and scores nothing
func TestCalculateScore_RoundMismatchDoesNotMatch(t *testing.T) {
	bracket := standardBracket(t, store.PredictedScore{Team1Score: 30, Team2Score: 20})
	results := []store.GameResult{
		completedResult(shared.RoundQuarterfinals, "Oklahoma", "Alabama", 31, 24),
	}

	total, _ := CalculateScore(bracket, results)

	assert.Equal(t, 0, total)
}

// TestCalculateScore_IncompleteResultIgnored tests that in-progress results
// never contribute points
func TestCalculateScore_IncompleteResultIgnored(t *testing.T) {
	bracket := standardBracket(t, store.PredictedScore{Team1Score: 30, Team2Score: 20})
	inProgress := completedResult(shared.RoundFirstRound, "Oklahoma", "Alabama", 14, 7)
	inProgress.Completed = false
	inProgress.Winner = ""

	total, report := CalculateScore(bracket, []store.GameResult{inProgress})

	assert.Equal(t, 0, total)
	assert.Contains(t, report, "- Oklahoma over Alabama [Pending]")
}

// TestCalculateScore_Deterministic tests that identical inputs always yield
// identical totals
func TestCalculateScore_Deterministic(t *testing.T) {
	bracket := standardBracket(t, store.PredictedScore{Team1Score: 28, Team2Score: 17})
	results := []store.GameResult{
		completedResult(shared.RoundFirstRound, "Oklahoma", "Alabama", 31, 24),
		completedResult(shared.RoundQuarterfinals, "Indiana", "Oklahoma", 27, 10),
		completedResult(shared.RoundChampionship, "Indiana", "Ohio State", 30, 20),
	}

	first, firstReport := CalculateScore(bracket, results)
	second, secondReport := CalculateScore(bracket, results)

	assert.Equal(t, first, second)
	assert.Equal(t, firstReport, secondReport)
}

// TestCalculateScore_MonotonicAsResultsArrive tests that a growing result
// set can only raise the total, never lower it
func TestCalculateScore_MonotonicAsResultsArrive(t *testing.T) {
	bracket := standardBracket(t, store.PredictedScore{Team1Score: 30, Team2Score: 20})
	results := []store.GameResult{
		completedResult(shared.RoundFirstRound, "Oklahoma", "Alabama", 31, 24),
		completedResult(shared.RoundFirstRound, "Oregon", "JMU", 20, 27),
		completedResult(shared.RoundQuarterfinals, "Indiana", "Oklahoma", 27, 10),
		completedResult(shared.RoundSemifinals, "Indiana", "Texas Tech", 21, 14),
		completedResult(shared.RoundChampionship, "Indiana", "Ohio State", 30, 20),
	}

	previous := 0
	for n := 0; n <= len(results); n++ {
		total, _ := CalculateScore(bracket, results[:n])
		assert.GreaterOrEqual(t, total, previous)
		previous = total
	}
	// Final total: fr1 correct, fr2 incorrect, qf1 correct, sf1 correct,
	// championship correct with exact score
	assert.Equal(t, 3*PointsPerPick+PointsPerPick+ExactScoreBonus, previous)
}
