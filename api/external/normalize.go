/* normalize.go
 * Maps a raw provider game record into a canonical GameResult: round
 * classification from the free text notes field, team name normalization and
 * winner derivation. Normalization runs before storage and before any
 * matching, so everything downstream works on canonical names only
 */

package external

import (
	"fmt"
	"strings"
	"time"

	"cfp-bracket/api/shared"
	"cfp-bracket/api/store"
)

// roundRule maps a substring of the provider's notes text to a round bucket
type roundRule struct {
	pattern string
	round   shared.Round
}

// roundRules is evaluated top down; the first matching pattern wins. The
// quarterfinal and semifinal bowl names come before the generic Championship
// marker because semifinal notes read like "Playoff Semifinal - Peach Bowl".
// Anything unmatched defaults to the first round, which also (incorrectly)
// catches exhibition bowls outside the playoff; those never match a bracket
// pick so they score zero
var roundRules = []roundRule{
	{pattern: "Orange Bowl", round: shared.RoundQuarterfinals},
	{pattern: "Rose Bowl", round: shared.RoundQuarterfinals},
	{pattern: "Sugar Bowl", round: shared.RoundQuarterfinals},
	{pattern: "Cotton Bowl", round: shared.RoundQuarterfinals},
	{pattern: "Peach Bowl", round: shared.RoundSemifinals},
	{pattern: "Fiesta Bowl", round: shared.RoundSemifinals},
	{pattern: "Championship", round: shared.RoundChampionship},
}

// aliases maps provider team names to the short forms used inside prediction
// brackets. The provider spells out James Madison while brackets use JMU
var aliases = map[string]string{
	"James Madison": "JMU",
}

// ClassifyRound buckets a game into one of the four rounds from its notes
// text. Falls back to firstRound when nothing matches
func ClassifyRound(notes string) shared.Round {
	for _, rule := range roundRules {
		if strings.Contains(notes, rule.pattern) {
			return rule.round
		}
	}
	return shared.RoundFirstRound
}

// NormalizeTeamName trims whitespace and applies the alias table so stored
// result names line up with the names used inside prediction brackets
func NormalizeTeamName(name string) string {
	name = strings.TrimSpace(name)
	if alias, ok := aliases[name]; ok {
		return alias
	}
	return name
}

// Normalize converts one provider record into a canonical GameResult. The
// winner is derived only for completed games with both scores present, using
// a strict greater-than comparison: equal scores silently fall to the home
// team. Ties cannot happen in the real sport, so this asymmetry is kept
// as-is rather than papered over
func Normalize(game Game) store.GameResult {
	team1 := NormalizeTeamName(game.HomeTeam)
	team2 := NormalizeTeamName(game.AwayTeam)

	var winner string
	if game.Completed && game.HomePoints != nil && game.AwayPoints != nil {
		if *game.AwayPoints > *game.HomePoints {
			winner = team2
		} else {
			winner = team1
		}
	}

	var gameDate time.Time
	if parsed, err := time.Parse(time.RFC3339, game.StartDate); err == nil {
		gameDate = parsed
	}

	return store.GameResult{
		GameId:      fmt.Sprintf("cfb-%d", game.Id),
		Round:       ClassifyRound(game.Notes),
		Team1:       team1,
		Team2:       team2,
		Team1Score:  game.HomePoints,
		Team2Score:  game.AwayPoints,
		Winner:      winner,
		Completed:   game.Completed,
		GameDate:    gameDate,
		LastUpdated: time.Now(),
	}
}
