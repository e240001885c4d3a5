package repositories

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/soclog/change-inventory/database"
	"github.com/soclog/change-inventory/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// Initialize test database using the actual migration system
	db, err := database.InitializeDatabase(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	// Test Create
	user := &models.User{Username: "analyst1", PasswordHash: "hash"}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if user.ID == 0 {
		t.Error("Expected user ID to be set after creation")
	}

	// Duplicate usernames are rejected
	dup := &models.User{Username: "analyst1", PasswordHash: "otherhash"}
	if err := repo.Create(ctx, dup); !errors.Is(err, models.ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName for duplicate username, got %v", err)
	}

	// Test GetByUsername
	retrieved, err := repo.GetByUsername(ctx, "analyst1")
	if err != nil {
		t.Fatalf("Failed to get user by username: %v", err)
	}
	if retrieved.PasswordHash != "hash" {
		t.Errorf("Expected stored hash, got %q", retrieved.PasswordHash)
	}

	// Unknown users map to ErrNotFound
	if _, err := repo.GetByUsername(ctx, "ghost"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown user, got %v", err)
	}

	// Test UpdatePassword
	if err := repo.UpdatePassword(ctx, user.ID, "newhash"); err != nil {
		t.Fatalf("Failed to update password: %v", err)
	}
	updated, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("Failed to get updated user: %v", err)
	}
	if updated.PasswordHash != "newhash" {
		t.Errorf("Expected updated hash, got %q", updated.PasswordHash)
	}

	// Test Count
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}

	// Test DeleteByUsername
	if err := repo.DeleteByUsername(ctx, "analyst1"); err != nil {
		t.Fatalf("Failed to delete user: %v", err)
	}
	if err := repo.DeleteByUsername(ctx, "analyst1"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting absent user, got %v", err)
	}
}

func TestChangeRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChangeRepository(db)
	ctx := context.Background()

	// Test Create
	change := &models.Change{
		Date:        "2024-01-15",
		ProductType: "Docker",
		ChangeType:  "IOC",
		Designation: "Blocked malicious hash",
		Analyst:     "jdupont",
	}
	if err := repo.Create(ctx, change); err != nil {
		t.Fatalf("Failed to create change: %v", err)
	}
	if change.ID == 0 {
		t.Error("Expected change ID to be set after creation")
	}

	second := &models.Change{
		Date:        "2024-02-20",
		ProductType: "Elastic",
		ChangeType:  "Rule",
		Designation: "New detection rule",
		Analyst:     "amartin",
		AppLink:     "https://example.com/rule/7",
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Failed to create second change: %v", err)
	}

	// Test List with no filter, ordered by date descending
	changes, err := repo.List(ctx, models.ChangeFilter{})
	if err != nil {
		t.Fatalf("Failed to list changes: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("Expected 2 changes, got %d", len(changes))
	}
	if changes[0].Date != "2024-02-20" || changes[1].Date != "2024-01-15" {
		t.Errorf("Expected descending date order, got %s then %s", changes[0].Date, changes[1].Date)
	}

	// Empty link round-trips as empty string
	if changes[1].AppLink != "" {
		t.Errorf("Expected empty link, got %q", changes[1].AppLink)
	}

	// Test exact-match filter
	changes, err = repo.List(ctx, models.ChangeFilter{ProductType: "Docker"})
	if err != nil {
		t.Fatalf("Failed to list filtered changes: %v", err)
	}
	if len(changes) != 1 || changes[0].ProductType != "Docker" {
		t.Errorf("Expected one Docker change, got %+v", changes)
	}

	// Test case-insensitive substring filter
	changes, err = repo.List(ctx, models.ChangeFilter{Analyst: "DUPONT"})
	if err != nil {
		t.Fatalf("Failed to list by analyst: %v", err)
	}
	if len(changes) != 1 || changes[0].Analyst != "jdupont" {
		t.Errorf("Expected substring match on analyst, got %+v", changes)
	}

	// Test inclusive date range
	changes, err = repo.List(ctx, models.ChangeFilter{DateFrom: "2024-01-01", DateTo: "2024-01-31"})
	if err != nil {
		t.Fatalf("Failed to list by date range: %v", err)
	}
	if len(changes) != 1 || changes[0].Date != "2024-01-15" {
		t.Errorf("Expected only the January change, got %+v", changes)
	}

	// Test Delete is idempotent
	if err := repo.Delete(ctx, change.ID); err != nil {
		t.Fatalf("Failed to delete change: %v", err)
	}
	if err := repo.Delete(ctx, change.ID); err != nil {
		t.Errorf("Expected second delete to succeed, got %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count changes: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 remaining change, got %d", count)
	}
}

func TestChangeRepositoryCreateBatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChangeRepository(db)
	ctx := context.Background()

	batch := []models.Change{
		{Date: "2024-03-01", ProductType: "Docker", ChangeType: "IOC", Designation: "a", Analyst: "x"},
		{Date: "2024-03-02", ProductType: "Elastic", ChangeType: "Rule", Designation: "b", Analyst: "y"},
		{Date: "2024-03-03", ProductType: "Harfanglab", ChangeType: "Whitelist", Designation: "c", Analyst: "z"},
	}
	if err := repo.CreateBatch(ctx, batch); err != nil {
		t.Fatalf("Failed to insert batch: %v", err)
	}

	for i, change := range batch {
		if change.ID == 0 {
			t.Errorf("Expected batch entry %d to have an ID", i)
		}
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count changes: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 changes, got %d", count)
	}

	// An empty batch is a no-op
	if err := repo.CreateBatch(ctx, nil); err != nil {
		t.Errorf("Expected empty batch to succeed, got %v", err)
	}
}

func TestTypeRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTypeRepository(db)
	ctx := context.Background()

	// Defaults are seeded by the migration
	products, err := repo.ListNames(ctx, models.CategoryProduct)
	if err != nil {
		t.Fatalf("Failed to list products: %v", err)
	}
	if len(products) != 4 {
		t.Errorf("Expected 4 seeded products, got %d", len(products))
	}

	// Names come back alphabetically ordered
	for i := 1; i < len(products); i++ {
		if products[i-1] > products[i] {
			t.Errorf("Expected alphabetical order, got %v", products)
			break
		}
	}

	// Test Add
	if err := repo.Add(ctx, models.CategoryProduct, "Splunk"); err != nil {
		t.Fatalf("Failed to add product: %v", err)
	}

	// Duplicates surface as ErrDuplicateName and do not create a second row
	if err := repo.Add(ctx, models.CategoryProduct, "Docker"); !errors.Is(err, models.ErrDuplicateName) {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}
	products, err = repo.ListNames(ctx, models.CategoryProduct)
	if err != nil {
		t.Fatalf("Failed to list products: %v", err)
	}
	if len(products) != 5 {
		t.Errorf("Expected 5 products after duplicate rejection, got %d", len(products))
	}

	// Test Delete is idempotent
	if err := repo.Delete(ctx, models.CategoryChangeType, "Whitelist"); err != nil {
		t.Fatalf("Failed to delete change type: %v", err)
	}
	if err := repo.Delete(ctx, models.CategoryChangeType, "Whitelist"); err != nil {
		t.Errorf("Expected second delete to succeed, got %v", err)
	}

	// Unknown categories are rejected
	if _, err := repo.ListNames(ctx, "users"); err == nil {
		t.Error("Expected error for unknown category")
	}
}
