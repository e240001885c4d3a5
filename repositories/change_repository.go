package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/soclog/change-inventory/models"
)

// ChangeRepository interface defines change record database operations
type ChangeRepository interface {
	List(ctx context.Context, filter models.ChangeFilter) ([]models.Change, error)
	Create(ctx context.Context, change *models.Change) error
	CreateBatch(ctx context.Context, changes []models.Change) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// changeRepository implements ChangeRepository interface
type changeRepository struct {
	db *sql.DB
}

// NewChangeRepository creates a new change repository
func NewChangeRepository(db *sql.DB) ChangeRepository {
	return &changeRepository{db: db}
}

// List retrieves change records matching the filter, newest date first.
// Exact match on the type columns, case-insensitive substring match on
// designation and analyst, inclusive date bounds.
func (r *changeRepository) List(ctx context.Context, filter models.ChangeFilter) ([]models.Change, error) {
	query := `
		SELECT id, date, product_type, change_type, designation, analyst, app_link, created_at
		FROM changes
		WHERE 1=1
	`
	var params []interface{}

	if filter.ProductType != "" {
		query += " AND product_type = ?"
		params = append(params, filter.ProductType)
	}
	if filter.ChangeType != "" {
		query += " AND change_type = ?"
		params = append(params, filter.ChangeType)
	}
	if filter.Designation != "" {
		query += " AND designation LIKE ?"
		params = append(params, "%"+filter.Designation+"%")
	}
	if filter.Analyst != "" {
		query += " AND analyst LIKE ?"
		params = append(params, "%"+filter.Analyst+"%")
	}
	if filter.DateFrom != "" {
		query += " AND date >= ?"
		params = append(params, filter.DateFrom)
	}
	if filter.DateTo != "" {
		query += " AND date <= ?"
		params = append(params, filter.DateTo)
	}

	query += " ORDER BY date DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to query changes: %w", err)
	}
	defer rows.Close()

	var changes []models.Change
	for rows.Next() {
		change, err := scanChange(rows)
		if err != nil {
			return nil, err
		}
		changes = append(changes, *change)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating changes: %w", err)
	}

	return changes, nil
}

// Create inserts a new change record and sets its generated ID
func (r *changeRepository) Create(ctx context.Context, change *models.Change) error {
	query := `
		INSERT INTO changes (date, product_type, change_type, designation, analyst, app_link)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		change.Date,
		change.ProductType,
		change.ChangeType,
		change.Designation,
		change.Analyst,
		nullableString(change.AppLink),
	)
	if err != nil {
		return fmt.Errorf("failed to create change: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	change.ID = int(id)
	return nil
}

// CreateBatch inserts all changes inside a single transaction so a batch
// commits as one unit.
func (r *changeRepository) CreateBatch(ctx context.Context, changes []models.Change) error {
	if len(changes) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO changes (date, product_type, change_type, designation, analyst, app_link)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range changes {
		change := &changes[i]
		result, err := stmt.ExecContext(ctx,
			change.Date,
			change.ProductType,
			change.ChangeType,
			change.Designation,
			change.Analyst,
			nullableString(change.AppLink),
		)
		if err != nil {
			return fmt.Errorf("failed to insert change: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get inserted ID: %w", err)
		}
		change.ID = int(id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}

	return nil
}

// Delete removes a change record by ID. Deleting an absent ID succeeds, so
// the operation is idempotent.
func (r *changeRepository) Delete(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM changes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete change: %w", err)
	}

	return nil
}

// Count returns the total number of change records
func (r *changeRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM changes").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count changes: %w", err)
	}

	return count, nil
}

// scanChange decodes one changes row, converting the nullable link column.
func scanChange(rows *sql.Rows) (*models.Change, error) {
	var change models.Change
	var appLink sql.NullString

	err := rows.Scan(
		&change.ID,
		&change.Date,
		&change.ProductType,
		&change.ChangeType,
		&change.Designation,
		&change.Analyst,
		&appLink,
		&change.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan change: %w", err)
	}

	if appLink.Valid {
		change.AppLink = appLink.String
	}

	return &change, nil
}

// nullableString stores empty strings as NULL.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
