/* titles.go
 * Assigns bowl titles to the games in a frozen bracket based on the teams
 * playing and the round. First round games carry no title; the quarterfinal
 * bowls are tied to the bye teams' placements, the semifinals split between
 * the Peach and Fiesta Bowls, and the final is always the National
 * Championship
 */

package logic

import "cfp-bracket/api/store"

// quarterfinalBowls keys a bowl title off a team known to occupy that
// quarterfinal slot (the top four seeds hold their bowls regardless of who
// advances to meet them)
var quarterfinalBowls = map[string]string{
	"Texas Tech": "Orange Bowl",
	"Indiana":    "Rose Bowl",
	"Georgia":    "Sugar Bowl",
	"Ohio State": "Cotton Bowl",
}

// peachBowlTeams marks the semifinal bracket half that plays the Peach Bowl;
// the other half plays the Fiesta Bowl
var peachBowlTeams = map[string]bool{
	"Texas Tech": true,
	"Oregon":     true,
	"Indiana":    true,
	"Alabama":    true,
}

// AddGameTitles returns a copy of the bracket with titles filled in on the
// quarterfinal, semifinal and championship games
func AddGameTitles(bracket store.Bracket) store.Bracket {
	quarterfinals := make([]store.Game, len(bracket.Quarterfinals))
	for i, game := range bracket.Quarterfinals {
		if title, ok := quarterfinalBowls[game.Team1]; ok {
			game.Title = title
		} else if title, ok := quarterfinalBowls[game.Team2]; ok {
			game.Title = title
		}
		quarterfinals[i] = game
	}
	bracket.Quarterfinals = quarterfinals

	semifinals := make([]store.Game, len(bracket.Semifinals))
	for i, game := range bracket.Semifinals {
		if peachBowlTeams[game.Team1] || peachBowlTeams[game.Team2] {
			game.Title = "Peach Bowl"
		} else {
			game.Title = "Fiesta Bowl"
		}
		semifinals[i] = game
	}
	bracket.Semifinals = semifinals

	bracket.Championship.Title = "National Championship"
	return bracket
}
