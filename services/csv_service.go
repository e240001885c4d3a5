package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/soclog/change-inventory/models"
	"github.com/soclog/change-inventory/repositories"
)

// CSVService interface defines bulk export and import of change records
type CSVService interface {
	Export(ctx context.Context, w io.Writer) error
	Import(ctx context.Context, r io.Reader) (*models.ImportSummary, error)
}

// csvService implements CSVService interface
type csvService struct {
	changeRepo repositories.ChangeRepository
}

// NewCSVService creates a new CSV exchange service
func NewCSVService(changeRepo repositories.ChangeRepository) CSVService {
	return &csvService{changeRepo: changeRepo}
}

// Export writes all change records as CSV, newest date first, with the fixed
// six-column header. An empty link renders as an empty field.
func (s *csvService) Export(ctx context.Context, w io.Writer) error {
	changes, err := s.changeRepo.List(ctx, models.ChangeFilter{})
	if err != nil {
		return fmt.Errorf("failed to load changes: %w", err)
	}

	writer := csv.NewWriter(w)

	header := append(append([]string{}, models.CSVRequiredHeaders...), models.CSVLinkHeader)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, change := range changes {
		row := []string{
			change.Date,
			change.ProductType,
			change.ChangeType,
			change.Designation,
			change.Analyst,
			change.AppLink,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Import parses an uploaded CSV and inserts the valid rows.
//
// Failure handling is two-tier: a missing required header fails the whole
// import, while individual bad rows are recorded by row number and skipped.
// All valid rows commit as a single transaction after the last row has been
// processed, so a crash mid-import leaves no partial batch.
func (s *csvService) Import(ctx context.Context, r io.Reader) (*models.ImportSummary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows are validated individually

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	for _, required := range models.CSVRequiredHeaders {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", models.ErrMissingHeader, required)
		}
	}

	// The Link column is optional; absent means empty for every row.
	linkIndex, hasLink := columns[models.CSVLinkHeader]

	summary := &models.ImportSummary{BatchID: uuid.NewString()}
	var valid []models.Change

	// Data rows are 1-indexed from row 2, header included.
	for rowNum := 2; ; rowNum++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				summary.Errors = append(summary.Errors, fmt.Sprintf("Row %d: malformed CSV row", rowNum))
				continue
			}
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}

		if len(row) < len(models.CSVRequiredHeaders) {
			summary.Errors = append(summary.Errors, fmt.Sprintf("Row %d: not enough columns", rowNum))
			continue
		}

		change := models.Change{
			Date:        field(row, columns["Date"]),
			ProductType: field(row, columns["Product Type"]),
			ChangeType:  field(row, columns["Change Type"]),
			Designation: field(row, columns["Designation"]),
			Analyst:     field(row, columns["Analyst"]),
		}
		if hasLink {
			change.AppLink = field(row, linkIndex)
		}

		if change.Date == "" || change.ProductType == "" || change.ChangeType == "" ||
			change.Designation == "" || change.Analyst == "" {
			summary.Errors = append(summary.Errors, fmt.Sprintf("Row %d: missing required fields", rowNum))
			continue
		}

		if _, err := time.Parse(models.DateFormat, change.Date); err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("Row %d: invalid date format (use YYYY-MM-DD)", rowNum))
			continue
		}

		valid = append(valid, change)
	}

	if err := s.changeRepo.CreateBatch(ctx, valid); err != nil {
		return nil, fmt.Errorf("failed to import changes: %w", err)
	}

	summary.Imported = len(valid)
	return summary, nil
}

// field returns the trimmed cell at the given column, or empty when the row
// is too short for it.
func field(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}
