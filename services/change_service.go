package services

import (
	"context"
	"fmt"

	"github.com/soclog/change-inventory/models"
	"github.com/soclog/change-inventory/repositories"
)

// ChangeService interface defines change record business logic
type ChangeService interface {
	List(ctx context.Context, filter models.ChangeFilter) ([]models.Change, error)
	Create(ctx context.Context, form *models.ChangeForm) (*models.Change, error)
	Delete(ctx context.Context, id int) error
}

// changeService implements ChangeService interface
type changeService struct {
	changeRepo repositories.ChangeRepository
}

// NewChangeService creates a new change service
func NewChangeService(changeRepo repositories.ChangeRepository) ChangeService {
	return &changeService{changeRepo: changeRepo}
}

// List retrieves change records matching the filter
func (s *changeService) List(ctx context.Context, filter models.ChangeFilter) ([]models.Change, error) {
	return s.changeRepo.List(ctx, filter)
}

// Create validates the form and inserts a new change record. Records are
// never deduplicated; every submission creates a row.
func (s *changeService) Create(ctx context.Context, form *models.ChangeForm) (*models.Change, error) {
	if errors := form.Validate(); len(errors) > 0 {
		return nil, models.NewValidationError(errors...)
	}

	change := form.ToChange()
	if err := s.changeRepo.Create(ctx, &change); err != nil {
		return nil, fmt.Errorf("failed to create change: %w", err)
	}

	return &change, nil
}

// Delete removes a change record by ID; deleting an absent ID succeeds
func (s *changeService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return models.NewValidationError(fmt.Sprintf("invalid change ID: %d", id))
	}
	return s.changeRepo.Delete(ctx, id)
}
