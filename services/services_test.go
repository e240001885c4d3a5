package services

import (
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/soclog/change-inventory/database"
	"github.com/soclog/change-inventory/repositories"
)

// setupTestServices initializes a temporary database through the real
// migration path and wires the full service layer on top of it.
func setupTestServices(t *testing.T) (*Services, *repositories.Repositories) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.InitializeDatabase(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	repos := repositories.NewRepositories(db)
	return NewServices(repos), repos
}
