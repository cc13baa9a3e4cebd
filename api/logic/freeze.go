/* freeze.go
 * Turns a submitted set of winner picks into a frozen, validated bracket
 * ready to be stored. The picks are replayed through the bracket state
 * machine in round order, which enforces the progression invariant for free:
 * a pick naming a team that was never advanced into that matchup fails
 * inside SelectWinner
 */

package logic

import (
	"fmt"

	"cfp-bracket/api/bracket"
	"cfp-bracket/api/shared"
	"cfp-bracket/api/store"
)

// replayOrder is the fixed matchup order picks are applied in. Feeding
// matchups always come before the matchups they feed
var replayOrder = []string{
	"fr1", "fr2", "fr3", "fr4",
	"qf1", "qf2", "qf3", "qf4",
	"sf1", "sf2",
	"final",
}

// FreezeBracket replays winner picks through a fresh bracket and freezes the
// result into the stored representation, with bowl titles attached
// Preconditions: receives a map of matchup id to predicted winner name
// covering all eleven matchups, and the predicted championship score
// Postconditions: returns the frozen bracket, or a validation error when a
// pick is missing, names an unknown matchup, or names a team that could not
// be in that matchup under the user's own earlier picks
func FreezeBracket(picks map[string]string, predictedScore store.PredictedScore) (store.Bracket, error) {
	b := bracket.New()

	for _, id := range replayOrder {
		winner, ok := picks[id]
		if !ok || winner == "" {
			return store.Bracket{}, fmt.Errorf("%w: bracket is incomplete, no winner picked for matchup %s", shared.ErrValidation, id)
		}
		if err := b.SelectWinner(id, winner); err != nil {
			return store.Bracket{}, err
		}
	}

	if !b.IsComplete() {
		return store.Bracket{}, fmt.Errorf("%w: bracket is incomplete", shared.ErrValidation)
	}

	frozen := store.Bracket{
		FirstRound:    freezeMatchups(b.FirstRound),
		Quarterfinals: freezeMatchups(b.Quarterfinals),
		Semifinals:    freezeMatchups(b.Semifinals),
		Championship: store.ChampionshipGame{
			Game:           freezeMatchup(b.Championship),
			PredictedScore: predictedScore,
		},
	}

	return AddGameTitles(frozen), nil
}

func freezeMatchups(matchups []*bracket.Matchup) []store.Game {
	games := make([]store.Game, len(matchups))
	for i, m := range matchups {
		games[i] = freezeMatchup(m)
	}
	return games
}

func freezeMatchup(m *bracket.Matchup) store.Game {
	return store.Game{
		Team1:      m.Team1.Name,
		Team2:      m.Team2.Name,
		Prediction: m.Winner.Name,
	}
}
