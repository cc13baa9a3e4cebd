/* store.go
 * Contains the Store struct and NewStore function. The methods for this
 * package are split into two files: game_results.go and predictions.go, each
 * containing the methods for interacting with that collection
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Collections struct {
		Predictions *mongo.Collection
		GameResults *mongo.Collection
	}
}

// NewStore initialises the db connection and collection handles
// Preconditions: receives strings containing dbName and mongoURI
// Postconditions: returns a pointer to the Store object, or an error if it occurs
func NewStore(dbName string, mongoURI string) (*Store, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName cannot be empty")
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	return &Store{
		Client:   client,
		Database: db,
		Collections: struct {
			Predictions *mongo.Collection
			GameResults *mongo.Collection
		}{
			Predictions: db.Collection("predictions"),
			GameResults: db.Collection("game_results"),
		},
	}, nil
}
