/* models.go
 * This file contains the structs and constants that are shared between sub packages
 */

package shared

// Round identifies one of the four playoff rounds, in fixed progression order
type Round string

const (
	RoundFirstRound    Round = "firstRound"
	RoundQuarterfinals Round = "quarterfinals"
	RoundSemifinals    Round = "semifinals"
	RoundChampionship  Round = "championship"
)

// User identifies the owner of a prediction. Authentication happens upstream
// of this service; we only carry the identifier and a display label
type User struct {
	UserId   string
	Username string
}

// Team is one entry in the static 12 team playoff field
type Team struct {
	Id   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Seed int    `bson:"seed" json:"seed"`
}
