/* game_results.go
 * Contains the methods for interacting with the game_results collection
 */

package store

import (
	"context"
	"fmt"

	"cfp-bracket/api/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertGameResult inserts or overwrites a result keyed by gameId. The whole
// document is replaced on update so re-running a sync with unchanged upstream
// data leaves the stored collection unchanged. Each upsert is atomic per
// document; results are never deleted
// Preconditions: receives a normalized GameResult with a non-empty GameId
// Postconditions: the collection holds exactly one document for the gameId,
// or an error wrapping ErrPersistence if the write fails
func (s *Store) UpsertGameResult(result GameResult) error {
	if result.GameId == "" {
		return fmt.Errorf("%w: game result is missing a gameId", shared.ErrValidation)
	}

	filter := bson.M{"gameid": result.GameId}
	update := bson.M{
		"$set": bson.M{
			"round":       result.Round,
			"team1":       result.Team1,
			"team2":       result.Team2,
			"team1score":  result.Team1Score,
			"team2score":  result.Team2Score,
			"winner":      result.Winner,
			"completed":   result.Completed,
			"gamedate":    result.GameDate,
			"lastupdated": result.LastUpdated,
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := s.Collections.GameResults.UpdateOne(context.TODO(), filter, update, opts)
	if err != nil {
		return fmt.Errorf("%w: upsert of game result %s failed: %v", shared.ErrPersistence, result.GameId, err)
	}
	return nil
}

// GetAllGameResults returns every stored result sorted by game date
// ascending, completed or not. The scoring engine filters for completed
// results itself
func (s *Store) GetAllGameResults() ([]GameResult, error) {
	opts := options.Find().SetSort(bson.D{{Key: "gamedate", Value: 1}})

	cursor, err := s.Collections.GameResults.Find(context.TODO(), bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: error fetching game results: %v", shared.ErrPersistence, err)
	}

	var results []GameResult
	if err = cursor.All(context.TODO(), &results); err != nil {
		return nil, fmt.Errorf("%w: error unpacking cursor into slice of game results: %v", shared.ErrPersistence, err)
	}

	return results, nil
}
