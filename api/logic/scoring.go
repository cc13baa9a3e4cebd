/* scoring.go
 * Contains the scoring engine: matches each predicted pick against the
 * canonical result set and computes a point total under the fixed rules.
 * Matching is by unordered team pair plus round, never by game id, because
 * predicted picks and provider results do not share an id scheme
 */

package logic

import (
	"fmt"
	"strings"

	"cfp-bracket/api/shared"
	"cfp-bracket/api/store"
)

const (
	// PointsPerPick is awarded for each correct winner in any round
	PointsPerPick = 5
	// ExactScoreBonus is awarded when the predicted championship score
	// matches both actual scores positionally
	ExactScoreBonus = 100
	// CloseScoreBonus is awarded per side within CloseScoreMargin of the
	// actual score, when no exact match was scored
	CloseScoreBonus = 25
	CloseScoreMargin = 5
)

// foldName canonicalizes a team name for matching: trimmed and case folded
func foldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// matchKey builds the lookup key for a game: the unordered pair of folded
// team names plus the round, so home/away ordering differences between a
// bracket and the provider cannot break a match
func matchKey(team1 string, team2 string, round shared.Round) string {
	a, b := foldName(team1), foldName(team2)
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%s|%s|%s", a, b, round)
}

// indexResults maps match keys to results. Only completed results with a
// winner participate in scoring; everything else is left out so unmatched
// picks read as pending
func indexResults(results []store.GameResult) map[string]store.GameResult {
	index := make(map[string]store.GameResult, len(results))
	for _, result := range results {
		if !result.Completed || result.Winner == "" {
			continue
		}
		index[matchKey(result.Team1, result.Team2, result.Round)] = result
	}
	return index
}

// CalculateScore computes the deterministic non-negative total for one
// bracket against the full current result set, along with a per pick report
// in the style of a check-prediction response. Feeding identical inputs
// twice yields identical totals, and a growing result set can only add
// points, never retract them
func CalculateScore(bracket store.Bracket, results []store.GameResult) (int, string) {
	index := indexResults(results)
	var total int
	var report strings.Builder

	report.WriteString("[First Round]\n")
	total += scoreRound(bracket.FirstRound, shared.RoundFirstRound, index, &report)

	report.WriteString("[Quarterfinals]\n")
	total += scoreRound(bracket.Quarterfinals, shared.RoundQuarterfinals, index, &report)

	report.WriteString("[Semifinals]\n")
	total += scoreRound(bracket.Semifinals, shared.RoundSemifinals, index, &report)

	report.WriteString("[Championship]\n")
	total += scoreChampionship(bracket.Championship, index, &report)

	return total, report.String()
}

// scoreRound awards PointsPerPick for each pick in a non-championship round
// whose predicted winner matches the result's winner. Each matchup is
// checked independently and never double counted
func scoreRound(games []store.Game, round shared.Round, index map[string]store.GameResult, report *strings.Builder) int {
	var points int
	for _, game := range games {
		result, ok := index[matchKey(game.Team1, game.Team2, round)]
		if !ok {
			report.WriteString(fmt.Sprintf("- %s over %s [Pending]\n", game.Prediction, opponent(game)))
			continue
		}
		if foldName(result.Winner) == foldName(game.Prediction) {
			points += PointsPerPick
			report.WriteString(fmt.Sprintf("- %s over %s [Correct]\n", game.Prediction, opponent(game)))
		} else {
			report.WriteString(fmt.Sprintf("- %s over %s [Incorrect, %s won]\n", game.Prediction, opponent(game), result.Winner))
		}
	}
	return points
}

// scoreChampionship awards the winner points plus the score accuracy
// bonuses. The bonuses are only evaluated when the winner was predicted
// correctly: +100 for an exact positional score match, otherwise up to two
// independent +25 bonuses for sides within the close margin
func scoreChampionship(champ store.ChampionshipGame, index map[string]store.GameResult, report *strings.Builder) int {
	result, ok := index[matchKey(champ.Team1, champ.Team2, shared.RoundChampionship)]
	if !ok || !result.Completed {
		report.WriteString(fmt.Sprintf("- %s to win it all [Pending]\n", champ.Prediction))
		return 0
	}

	if foldName(result.Winner) != foldName(champ.Prediction) {
		report.WriteString(fmt.Sprintf("- %s to win it all [Incorrect, %s won]\n", champ.Prediction, result.Winner))
		return 0
	}

	points := PointsPerPick
	report.WriteString(fmt.Sprintf("- %s to win it all [Correct]\n", champ.Prediction))

	if result.Team1Score == nil || result.Team2Score == nil {
		return points
	}

	// The result may list the pair in the opposite order to the bracket, so
	// align the actual scores to the bracket's team1/team2 before the
	// positional comparisons
	if foldName(result.Team1) != foldName(champ.Team1) {
		result.Team1Score, result.Team2Score = result.Team2Score, result.Team1Score
	}

	predicted := champ.PredictedScore
	if *result.Team1Score == predicted.Team1Score && *result.Team2Score == predicted.Team2Score {
		points += ExactScoreBonus
		report.WriteString(fmt.Sprintf("- exact score %d-%d [+%d]\n", predicted.Team1Score, predicted.Team2Score, ExactScoreBonus))
		return points
	}

	if abs(*result.Team1Score-predicted.Team1Score) <= CloseScoreMargin {
		points += CloseScoreBonus
		report.WriteString(fmt.Sprintf("- %s score within %d [+%d]\n", champ.Team1, CloseScoreMargin, CloseScoreBonus))
	}
	if abs(*result.Team2Score-predicted.Team2Score) <= CloseScoreMargin {
		points += CloseScoreBonus
		report.WriteString(fmt.Sprintf("- %s score within %d [+%d]\n", champ.Team2, CloseScoreMargin, CloseScoreBonus))
	}
	return points
}

// opponent returns the team the predicted winner was picked over
func opponent(game store.Game) string {
	if foldName(game.Prediction) == foldName(game.Team1) {
		return game.Team2
	}
	return game.Team1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
