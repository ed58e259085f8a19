// Package database provides database client helpers for tests.
package database

import (
	"testing"

	"github.com/praxishq/praxis/pkg/database"
	"github.com/praxishq/praxis/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to an external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
// The schema and connection are automatically cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
