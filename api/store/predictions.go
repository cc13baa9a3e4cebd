/* predictions.go
 * Contains the methods for interacting with the predictions collection
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cfp-bracket/api/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreatePrediction inserts a new prediction document
// Preconditions: receives a validated Prediction with owner, name and bracket set
// Postconditions: returns the inserted document id as a hex string, or an error
func (s *Store) CreatePrediction(prediction Prediction) (string, error) {
	res, err := s.Collections.Predictions.InsertOne(context.TODO(), prediction)
	if err != nil {
		return "", fmt.Errorf("%w: failed to insert prediction: %v", shared.ErrPersistence, err)
	}

	id, ok := res.InsertedID.(interface{ Hex() string })
	if !ok {
		return "", fmt.Errorf("%w: unexpected inserted id type %T", shared.ErrPersistence, res.InsertedID)
	}
	return id.Hex(), nil
}

// GetPrediction does a DB lookup for a single prediction by id
// Postconditions: returns the prediction if it exists, ErrNotFound if the id
// is malformed or the document is missing, or a persistence error otherwise
func (s *Store) GetPrediction(id string) (Prediction, error) {
	oid, err := objectId(id)
	if err != nil {
		return Prediction{}, err
	}

	var result Prediction
	err = s.Collections.Predictions.FindOne(context.TODO(), bson.M{"_id": oid}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Prediction{}, fmt.Errorf("%w: prediction %s", shared.ErrNotFound, id)
		}
		return Prediction{}, fmt.Errorf("%w: error fetching prediction %s: %v", shared.ErrPersistence, id, err)
	}

	return result, nil
}

// GetAllPredictions returns every stored prediction. Used by the sync job
// when rescoring
func (s *Store) GetAllPredictions() ([]Prediction, error) {
	return s.findPredictions(bson.M{}, options.Find())
}

// GetPredictionsByOwner returns one owner's predictions, newest first
func (s *Store) GetPredictionsByOwner(ownerId string) ([]Prediction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdat", Value: -1}})
	return s.findPredictions(bson.M{"ownerid": ownerId}, opts)
}

// GetLeaderboardPage returns predictions sorted by score descending with
// created date ascending as the tie break, plus the total document count so
// callers can paginate
func (s *Store) GetLeaderboardPage(skip int64, limit int64) ([]Prediction, int64, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "score", Value: -1}, {Key: "createdat", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)

	preds, err := s.findPredictions(bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.Collections.Predictions.CountDocuments(context.TODO(), bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("%w: error counting predictions: %v", shared.ErrPersistence, err)
	}

	return preds, total, nil
}

// OwnerHasName reports whether the owner already has a prediction with this
// name. Names only need to be unique per owner, not globally
func (s *Store) OwnerHasName(ownerId string, name string) (bool, error) {
	count, err := s.Collections.Predictions.CountDocuments(context.TODO(), bson.M{"ownerid": ownerId, "name": name})
	if err != nil {
		return false, fmt.Errorf("%w: error checking prediction name: %v", shared.ErrPersistence, err)
	}
	return count > 0, nil
}

// CountPredictionsByOwner returns how many predictions an owner has stored
func (s *Store) CountPredictionsByOwner(ownerId string) (int64, error) {
	count, err := s.Collections.Predictions.CountDocuments(context.TODO(), bson.M{"ownerid": ownerId})
	if err != nil {
		return 0, fmt.Errorf("%w: error counting owner predictions: %v", shared.ErrPersistence, err)
	}
	return count, nil
}

// GetPredictionNames returns the display names of every stored prediction,
// newest first. Used by the create flow to steer users away from taken names
func (s *Store) GetPredictionNames() ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"name": 1}).
		SetSort(bson.D{{Key: "createdat", Value: -1}})

	preds, err := s.findPredictions(bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(preds))
	for _, p := range preds {
		names = append(names, p.Name)
	}
	return names, nil
}

// DeletePrediction removes a prediction by id, scoped to its owner so users
// cannot delete each other's brackets
// Postconditions: returns nil on success, ErrNotFound when no document
// matched the id+owner pair
func (s *Store) DeletePrediction(id string, ownerId string) error {
	oid, err := objectId(id)
	if err != nil {
		return err
	}

	res, err := s.Collections.Predictions.DeleteOne(context.TODO(), bson.M{"_id": oid, "ownerid": ownerId})
	if err != nil {
		return fmt.Errorf("%w: failed to delete prediction %s: %v", shared.ErrPersistence, id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: prediction %s for owner %s", shared.ErrNotFound, id, ownerId)
	}
	return nil
}

// UpdatePredictionScore writes a recomputed score and bumps updatedAt. The
// sync job only calls this when the score actually changed, so updatedAt is
// never bumped spuriously
func (s *Store) UpdatePredictionScore(id string, score int) error {
	oid, err := objectId(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"score": score, "updatedat": time.Now()}}
	res, err := s.Collections.Predictions.UpdateByID(context.TODO(), oid, update)
	if err != nil {
		return fmt.Errorf("%w: failed to update score for prediction %s: %v", shared.ErrPersistence, id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: prediction %s", shared.ErrNotFound, id)
	}
	return nil
}

// UpdatePredictionBracket rewrites a stored bracket in place. Only used by
// the one-shot title backfill; regular predictions are immutable after
// submission
func (s *Store) UpdatePredictionBracket(id string, bracket Bracket) error {
	oid, err := objectId(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"bracket": bracket}}
	res, err := s.Collections.Predictions.UpdateByID(context.TODO(), oid, update)
	if err != nil {
		return fmt.Errorf("%w: failed to update bracket for prediction %s: %v", shared.ErrPersistence, id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: prediction %s", shared.ErrNotFound, id)
	}
	return nil
}

// findPredictions runs a find with the given filter and options and unpacks
// the cursor into a slice
func (s *Store) findPredictions(filter bson.M, opts *options.FindOptions) ([]Prediction, error) {
	cursor, err := s.Collections.Predictions.Find(context.TODO(), filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: error fetching predictions: %v", shared.ErrPersistence, err)
	}

	var results []Prediction
	if err = cursor.All(context.TODO(), &results); err != nil {
		return nil, fmt.Errorf("%w: error unpacking cursor into slice of predictions: %v", shared.ErrPersistence, err)
	}

	return results, nil
}

// objectId parses a hex document id, mapping malformed input to ErrNotFound
// since a bad id can never match a document
func objectId(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: invalid prediction id %q", shared.ErrNotFound, id)
	}
	return oid, nil
}
