package controllers

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/soclog/change-inventory/models"
	"github.com/soclog/change-inventory/services"
)

// TypeController handles lookup value requests
type TypeController struct {
	services *services.Services
}

// NewTypeController creates a new type controller
func NewTypeController(services *services.Services) *TypeController {
	return &TypeController{services: services}
}

// ListTypes handles GET /api/types
func (c *TypeController) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := c.services.Type.ListTypes(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	render.JSON(w, r, types)
}

// typeRequest is the JSON payload for add-type and delete-type
type typeRequest struct {
	Category string `json:"type"`
	Name     string `json:"name"`
}

// AddType handles POST /api/add-type
func (c *TypeController) AddType(w http.ResponseWriter, r *http.Request) {
	var req typeRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondError(w, r, models.NewValidationError("failed to decode request"))
		return
	}

	if err := c.services.Type.AddType(r.Context(), req.Category, req.Name); err != nil {
		respondError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"success": true,
		"message": "Type added successfully",
	})
}

// DeleteType handles POST /api/delete-type
func (c *TypeController) DeleteType(w http.ResponseWriter, r *http.Request) {
	var req typeRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondError(w, r, models.NewValidationError("failed to decode request"))
		return
	}

	if err := c.services.Type.DeleteType(r.Context(), req.Category, req.Name); err != nil {
		respondError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"success": true,
		"message": "Type deleted successfully",
	})
}

// ProductTypes handles GET /api/product-types (public static fallback)
func (c *TypeController) ProductTypes(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, models.DefaultProducts)
}

// ChangeTypes handles GET /api/change-types (public static fallback)
func (c *TypeController) ChangeTypes(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, models.DefaultChangeTypes)
}
