/* models.go
 * This file contains the structs that map directly to documents in the
 * predictions and game_results collections
 */

package store

import (
	"time"

	"cfp-bracket/api/shared"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Game is one frozen pick inside a stored bracket. Prediction holds the name
// of the team the user picked to win this matchup
type Game struct {
	Team1      string `bson:"team1" json:"team1"`
	Team2      string `bson:"team2" json:"team2"`
	Prediction string `bson:"prediction" json:"prediction"`
	Title      string `bson:"title,omitempty" json:"title,omitempty"`
}

// PredictedScore is the user's guess at the final score of the championship
// game. Positional: team1Score aligns with the championship's team1 slot
type PredictedScore struct {
	Team1Score int `bson:"team1score" json:"team1Score"`
	Team2Score int `bson:"team2score" json:"team2Score"`
}

// ChampionshipGame extends Game with the predicted final score
type ChampionshipGame struct {
	Game           `bson:",inline"`
	PredictedScore PredictedScore `bson:"predictedscore" json:"predictedScore"`
}

// Bracket is the full set of round by round picks representing one user's
// complete prediction. Frozen at submission; immutable thereafter
type Bracket struct {
	FirstRound    []Game           `bson:"firstround" json:"firstRound"`
	Quarterfinals []Game           `bson:"quarterfinals" json:"quarterfinals"`
	Semifinals    []Game           `bson:"semifinals" json:"semifinals"`
	Championship  ChampionshipGame `bson:"championship" json:"championship"`
}

// Prediction is a persisted, named bracket owned by one user. Only Score and
// UpdatedAt change after creation, and only through the sync job
type Prediction struct {
	Id         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerId    string             `bson:"ownerid" json:"ownerId"`
	OwnerLabel string             `bson:"ownerlabel" json:"ownerLabel"`
	Name       string             `bson:"name" json:"name"`
	Bracket    Bracket            `bson:"bracket" json:"bracket"`
	Score      int                `bson:"score" json:"score"`
	CreatedAt  time.Time          `bson:"createdat" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedat" json:"updatedAt"`
}

// GameResult is the canonical, normalized outcome of one real world game.
// Winner is empty unless the game is completed with both scores present.
// Scores are pointers because the provider reports them as null until play
// begins
type GameResult struct {
	Id          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	GameId      string             `bson:"gameid" json:"gameId"`
	Round       shared.Round       `bson:"round" json:"round"`
	Team1       string             `bson:"team1" json:"team1"`
	Team2       string             `bson:"team2" json:"team2"`
	Team1Score  *int               `bson:"team1score" json:"team1Score"`
	Team2Score  *int               `bson:"team2score" json:"team2Score"`
	Winner      string             `bson:"winner,omitempty" json:"winner,omitempty"`
	Completed   bool               `bson:"completed" json:"completed"`
	GameDate    time.Time          `bson:"gamedate" json:"gameDate"`
	LastUpdated time.Time          `bson:"lastupdated" json:"lastUpdated"`
}

// MaxPredictionsPerOwner caps how many brackets one user may keep
const MaxPredictionsPerOwner = 5
