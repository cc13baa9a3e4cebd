/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 */

package store

import "context"

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	UpsertGameResult(result GameResult) error
	GetAllGameResults() ([]GameResult, error)

	CreatePrediction(prediction Prediction) (string, error)
	GetPrediction(id string) (Prediction, error)
	GetAllPredictions() ([]Prediction, error)
	GetPredictionsByOwner(ownerId string) ([]Prediction, error)
	GetLeaderboardPage(skip int64, limit int64) ([]Prediction, int64, error)
	GetPredictionNames() ([]string, error)
	OwnerHasName(ownerId string, name string) (bool, error)
	CountPredictionsByOwner(ownerId string) (int64, error)
	DeletePrediction(id string, ownerId string) error
	UpdatePredictionScore(id string, score int) error
	UpdatePredictionBracket(id string, bracket Bracket) error

	// Getter methods for accessing fields
	GetDatabase() interface{ Name() string }
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// GetDatabase returns the database instance
func (s *Store) GetDatabase() interface{ Name() string } {
	return s.Database
}

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}
