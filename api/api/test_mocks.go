/* test_mocks.go
 * Contains mock structures for testing the API package without a database or
 * a live provider
 */

package api

import (
	"context"
	"fmt"

	"cfp-bracket/api/external"
	"cfp-bracket/api/shared"
	"cfp-bracket/api/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockStore implements store.Interface backed by in-memory maps
type MockStore struct {
	PredictionsById map[string]store.Prediction
	ResultsByGameId map[string]store.GameResult

	// Counters for asserting on write volume
	UpsertCalls     int
	ScoreWriteCalls int

	// Error injection for testing error paths
	UpsertGameResultError      error
	GetAllGameResultsError     error
	CreatePredictionError      error
	GetAllPredictionsError     error
	UpdatePredictionScoreError error
}

// NewMockStore creates an empty MockStore
func NewMockStore() *MockStore {
	return &MockStore{
		PredictionsById: make(map[string]store.Prediction),
		ResultsByGameId: make(map[string]store.GameResult),
	}
}

// AddPrediction stores a prediction under a fresh object id and returns it
func (m *MockStore) AddPrediction(prediction store.Prediction) store.Prediction {
	prediction.Id = primitive.NewObjectID()
	m.PredictionsById[prediction.Id.Hex()] = prediction
	return prediction
}

func (m *MockStore) UpsertGameResult(result store.GameResult) error {
	if m.UpsertGameResultError != nil {
		return m.UpsertGameResultError
	}
	m.UpsertCalls++
	existing, ok := m.ResultsByGameId[result.GameId]
	if ok {
		result.Id = existing.Id
	} else {
		result.Id = primitive.NewObjectID()
	}
	m.ResultsByGameId[result.GameId] = result
	return nil
}

func (m *MockStore) GetAllGameResults() ([]store.GameResult, error) {
	if m.GetAllGameResultsError != nil {
		return nil, m.GetAllGameResultsError
	}
	var results []store.GameResult
	for _, result := range m.ResultsByGameId {
		results = append(results, result)
	}
	return results, nil
}

func (m *MockStore) CreatePrediction(prediction store.Prediction) (string, error) {
	if m.CreatePredictionError != nil {
		return "", m.CreatePredictionError
	}
	created := m.AddPrediction(prediction)
	return created.Id.Hex(), nil
}

func (m *MockStore) GetPrediction(id string) (store.Prediction, error) {
	pred, ok := m.PredictionsById[id]
	if !ok {
		return store.Prediction{}, fmt.Errorf("%w: prediction %s", shared.ErrNotFound, id)
	}
	return pred, nil
}

func (m *MockStore) GetAllPredictions() ([]store.Prediction, error) {
	if m.GetAllPredictionsError != nil {
		return nil, m.GetAllPredictionsError
	}
	var predictions []store.Prediction
	for _, pred := range m.PredictionsById {
		predictions = append(predictions, pred)
	}
	return predictions, nil
}

func (m *MockStore) GetPredictionsByOwner(ownerId string) ([]store.Prediction, error) {
	var predictions []store.Prediction
	for _, pred := range m.PredictionsById {
		if pred.OwnerId == ownerId {
			predictions = append(predictions, pred)
		}
	}
	return predictions, nil
}

func (m *MockStore) GetLeaderboardPage(skip int64, limit int64) ([]store.Prediction, int64, error) {
	all, _ := m.GetAllPredictions()
	// Selection sort by score desc; fine at test sizes
	for i := range all {
		best := i
		for j := i + 1; j < len(all); j++ {
			if all[j].Score > all[best].Score {
				best = j
			}
		}
		all[i], all[best] = all[best], all[i]
	}
	total := int64(len(all))
	if skip >= total {
		return nil, total, nil
	}
	end := skip + limit
	if end > total {
		end = total
	}
	return all[skip:end], total, nil
}

func (m *MockStore) GetPredictionNames() ([]string, error) {
	var names []string
	for _, pred := range m.PredictionsById {
		names = append(names, pred.Name)
	}
	return names, nil
}

func (m *MockStore) OwnerHasName(ownerId string, name string) (bool, error) {
	for _, pred := range m.PredictionsById {
		if pred.OwnerId == ownerId && pred.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockStore) CountPredictionsByOwner(ownerId string) (int64, error) {
	var count int64
	for _, pred := range m.PredictionsById {
		if pred.OwnerId == ownerId {
			count++
		}
	}
	return count, nil
}

func (m *MockStore) DeletePrediction(id string, ownerId string) error {
	pred, ok := m.PredictionsById[id]
	if !ok || pred.OwnerId != ownerId {
		return fmt.Errorf("%w: prediction %s for owner %s", shared.ErrNotFound, id, ownerId)
	}
	delete(m.PredictionsById, id)
	return nil
}

func (m *MockStore) UpdatePredictionScore(id string, score int) error {
	if m.UpdatePredictionScoreError != nil {
		return m.UpdatePredictionScoreError
	}
	pred, ok := m.PredictionsById[id]
	if !ok {
		return fmt.Errorf("%w: prediction %s", shared.ErrNotFound, id)
	}
	m.ScoreWriteCalls++
	pred.Score = score
	m.PredictionsById[id] = pred
	return nil
}

func (m *MockStore) UpdatePredictionBracket(id string, bracket store.Bracket) error {
	pred, ok := m.PredictionsById[id]
	if !ok {
		return fmt.Errorf("%w: prediction %s", shared.ErrNotFound, id)
	}
	pred.Bracket = bracket
	m.PredictionsById[id] = pred
	return nil
}

// mockDatabase implements the minimal database interface needed for tests
type mockDatabase struct{}

func (m *mockDatabase) Name() string { return "test_db" }

func (m *MockStore) GetDatabase() interface{ Name() string } {
	return &mockDatabase{}
}

// mockClient implements the minimal client interface
type mockClient struct{}

func (mc *mockClient) Disconnect(ctx context.Context) error { return nil }

func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return &mockClient{}
}

// Ensure MockStore implements the store interface
var _ store.Interface = (*MockStore)(nil)

// MockProvider implements ResultsProvider with canned games
type MockProvider struct {
	Games []external.Game
	Err   error
}

func (p *MockProvider) FetchPostseasonGames(ctx context.Context, year int) ([]external.Game, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Games, nil
}
