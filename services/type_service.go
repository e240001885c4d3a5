package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/soclog/change-inventory/models"
	"github.com/soclog/change-inventory/repositories"
)

// TypeService interface defines lookup value business logic
type TypeService interface {
	ListTypes(ctx context.Context) (*models.TypeLists, error)
	AddType(ctx context.Context, category, name string) error
	DeleteType(ctx context.Context, category, name string) error
}

// typeService implements TypeService interface
type typeService struct {
	typeRepo repositories.TypeRepository
}

// NewTypeService creates a new lookup value service
func NewTypeService(typeRepo repositories.TypeRepository) TypeService {
	return &typeService{typeRepo: typeRepo}
}

// ListTypes returns both lookup tables, alphabetically ordered
func (s *typeService) ListTypes(ctx context.Context) (*models.TypeLists, error) {
	products, err := s.typeRepo.ListNames(ctx, models.CategoryProduct)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	changeTypes, err := s.typeRepo.ListNames(ctx, models.CategoryChangeType)
	if err != nil {
		return nil, fmt.Errorf("failed to list change types: %w", err)
	}

	return &models.TypeLists{Products: products, ChangeTypes: changeTypes}, nil
}

// AddType adds a lookup value after validating the category and name
func (s *typeService) AddType(ctx context.Context, category, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.NewValidationError("Name is required")
	}
	if !models.ValidCategory(category) {
		return models.NewValidationError(fmt.Sprintf("unknown category: %s", category))
	}

	return s.typeRepo.Add(ctx, category, name)
}

// DeleteType removes a lookup value by exact name; absent names are a no-op
func (s *typeService) DeleteType(ctx context.Context, category, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.NewValidationError("Name is required")
	}
	if !models.ValidCategory(category) {
		return models.NewValidationError(fmt.Sprintf("unknown category: %s", category))
	}

	return s.typeRepo.Delete(ctx, category, name)
}
