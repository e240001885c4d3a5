package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/soclog/change-inventory/models"
	"github.com/soclog/change-inventory/services"
)

// ChangeController handles change record requests
type ChangeController struct {
	services *services.Services
	validate *validator.Validate
}

// NewChangeController creates a new change controller
func NewChangeController(services *services.Services) *ChangeController {
	return &ChangeController{
		services: services,
		validate: validator.New(),
	}
}

// List handles GET /api/changes
func (c *ChangeController) List(w http.ResponseWriter, r *http.Request) {
	filter := models.ChangeFilter{
		ProductType: r.URL.Query().Get("product_type"),
		ChangeType:  r.URL.Query().Get("change_type"),
		Designation: r.URL.Query().Get("designation"),
		Analyst:     r.URL.Query().Get("analyst"),
		DateFrom:    r.URL.Query().Get("date_from"),
		DateTo:      r.URL.Query().Get("date_to"),
	}

	changes, err := c.services.Change.List(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if changes == nil {
		changes = []models.Change{}
	}

	render.JSON(w, r, changes)
}

// Create handles POST /api/changes
func (c *ChangeController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.ChangeForm
	if err := render.DecodeJSON(r.Body, &form); err != nil {
		respondError(w, r, models.NewValidationError("failed to decode request"))
		return
	}

	if err := c.validate.Struct(form); err != nil {
		var messages []string
		for _, fieldErr := range err.(validator.ValidationErrors) {
			messages = append(messages, fieldErr.Field()+" is required")
		}
		respondError(w, r, models.NewValidationError(messages...))
		return
	}

	change, err := c.services.Change.Create(r.Context(), &form)
	if err != nil {
		respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]interface{}{
		"success": true,
		"id":      change.ID,
	})
}

// Delete handles DELETE /api/changes/{id}
func (c *ChangeController) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		respondError(w, r, models.NewValidationError("Invalid change ID"))
		return
	}

	if err := c.services.Change.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{"success": true})
}
