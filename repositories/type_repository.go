package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/soclog/change-inventory/models"
)

// TypeRepository interface defines lookup table database operations. Both
// lookup tables share the same shape, so the category selects the table.
type TypeRepository interface {
	ListNames(ctx context.Context, category string) ([]string, error)
	Add(ctx context.Context, category, name string) error
	Delete(ctx context.Context, category, name string) error
}

// typeRepository implements TypeRepository interface
type typeRepository struct {
	db *sql.DB
}

// NewTypeRepository creates a new lookup value repository
func NewTypeRepository(db *sql.DB) TypeRepository {
	return &typeRepository{db: db}
}

// ListNames retrieves all names in a lookup table, alphabetically ordered
func (r *typeRepository) ListNames(ctx context.Context, category string) ([]string, error) {
	table, err := tableFor(category)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, "SELECT name FROM "+table+" ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan %s name: %w", table, err)
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", table, err)
	}

	return names, nil
}

// Add inserts a new lookup value, surfacing uniqueness violations as
// ErrDuplicateName
func (r *typeRepository) Add(ctx context.Context, category, name string) error {
	table, err := tableFor(category)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, "INSERT INTO "+table+" (name) VALUES (?)", name)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateName
		}
		return fmt.Errorf("failed to add %s value: %w", table, err)
	}

	return nil
}

// Delete removes a lookup value by exact name. Absent names are a no-op; no
// cascade or reference check runs against existing change records.
func (r *typeRepository) Delete(ctx context.Context, category, name string) error {
	table, err := tableFor(category)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE name = ?", name); err != nil {
		return fmt.Errorf("failed to delete %s value: %w", table, err)
	}

	return nil
}

// tableFor maps a category onto its table name. The table name is never
// taken from user input directly.
func tableFor(category string) (string, error) {
	switch category {
	case models.CategoryProduct:
		return "products", nil
	case models.CategoryChangeType:
		return "change_types", nil
	default:
		return "", models.NewValidationError(fmt.Sprintf("unknown category: %s", category))
	}
}
