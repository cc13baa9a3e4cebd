/* test_helpers.go
 * Contains test helper functions for store package tests
 */

package store

import (
	"context"
	"os"
	"testing"
)

// NewTestStore creates a Store connected to the database named by
// MONGO_TEST_URI and registers cleanup that drops it. Tests calling this are
// skipped when no test database is configured, so the unit suite stays
// runnable without infrastructure
func NewTestStore(t *testing.T) *Store {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set, skipping store integration test")
	}

	s, err := NewStore("test_cfp_bracket", uri)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	t.Cleanup(func() {
		s.Database.Drop(context.TODO())
		s.Client.Disconnect(context.TODO())
	})

	return s
}
