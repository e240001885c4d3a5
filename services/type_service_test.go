package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soclog/change-inventory/models"
)

func TestTypeServiceListTypes(t *testing.T) {
	srvs, _ := setupTestServices(t)

	types, err := srvs.Type.ListTypes(context.Background())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Harfanglab", "Elastic", "Docker", "Other"}, types.Products)
	assert.ElementsMatch(t, []string{"IOC", "Whitelist", "Rule", "Other"}, types.ChangeTypes)
	assert.IsIncreasing(t, types.Products)
	assert.IsIncreasing(t, types.ChangeTypes)
}

func TestTypeServiceAddType(t *testing.T) {
	srvs, _ := setupTestServices(t)
	ctx := context.Background()

	require.NoError(t, srvs.Type.AddType(ctx, models.CategoryProduct, "  Splunk  "))

	types, err := srvs.Type.ListTypes(ctx)
	require.NoError(t, err)
	assert.Contains(t, types.Products, "Splunk")

	// Existing name is rejected without creating a second row
	err = srvs.Type.AddType(ctx, models.CategoryProduct, "Docker")
	assert.ErrorIs(t, err, models.ErrDuplicateName)

	// Empty names and unknown categories are validation errors
	var validationErr *models.ValidationError
	assert.ErrorAs(t, srvs.Type.AddType(ctx, models.CategoryProduct, "   "), &validationErr)
	assert.ErrorAs(t, srvs.Type.AddType(ctx, "users", "Splunk"), &validationErr)
}

func TestTypeServiceDeleteType(t *testing.T) {
	srvs, _ := setupTestServices(t)
	ctx := context.Background()

	require.NoError(t, srvs.Type.DeleteType(ctx, models.CategoryChangeType, "Rule"))
	// Deleting an absent name is still a success
	require.NoError(t, srvs.Type.DeleteType(ctx, models.CategoryChangeType, "Rule"))

	types, err := srvs.Type.ListTypes(ctx)
	require.NoError(t, err)
	assert.NotContains(t, types.ChangeTypes, "Rule")
}

func TestChangeServiceCreateAndDelete(t *testing.T) {
	srvs, _ := setupTestServices(t)
	ctx := context.Background()

	// Invalid form never reaches storage
	var validationErr *models.ValidationError
	_, err := srvs.Change.Create(ctx, &models.ChangeForm{Date: "2024-01-15"})
	assert.ErrorAs(t, err, &validationErr)

	change, err := srvs.Change.Create(ctx, &models.ChangeForm{
		Date: "2024-01-15", ProductType: "Docker", ChangeType: "IOC",
		Designation: "Blocked hash", Analyst: "jdupont",
	})
	require.NoError(t, err)
	assert.NotZero(t, change.ID)

	// Created record comes back from an unfiltered list
	changes, err := srvs.Change.List(ctx, models.ChangeFilter{})
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "Blocked hash", changes[0].Designation)

	// Delete twice: the second call must not error
	require.NoError(t, srvs.Change.Delete(ctx, change.ID))
	require.NoError(t, srvs.Change.Delete(ctx, change.ID))
}
