/* models.go
 * Contains the raw game record shape returned by the CollegeFootballData API.
 * A differently shaped provider only needs a new normalizer adapter; nothing
 * outside this package sees these fields
 */

package external

// Game is one game record as the provider returns it. Points are pointers
// because the API reports null scores until a game starts, and Notes is the
// free text field the round classifier inspects
type Game struct {
	Id         int64  `json:"id"`
	Season     int    `json:"season"`
	Week       int    `json:"week"`
	SeasonType string `json:"season_type"`
	StartDate  string `json:"start_date"`
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	HomePoints *int   `json:"home_points"`
	AwayPoints *int   `json:"away_points"`
	Completed  bool   `json:"completed"`
	Notes      string `json:"notes"`
}
