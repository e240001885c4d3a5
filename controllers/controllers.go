package controllers

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/render"

	"github.com/soclog/change-inventory/models"
	"github.com/soclog/change-inventory/services"
)

// Controllers holds all controller instances
type Controllers struct {
	Pages  *PagesController
	Auth   *AuthController
	Change *ChangeController
	Type   *TypeController
	CSV    *CSVController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services) *Controllers {
	return &Controllers{
		Pages:  NewPagesController(),
		Auth:   NewAuthController(services),
		Change: NewChangeController(services),
		Type:   NewTypeController(services),
		CSV:    NewCSVController(services),
	}
}

// respondError maps the application error taxonomy onto HTTP status codes and
// renders a JSON error body.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		message = validationErr.Error()
	case errors.Is(err, models.ErrDuplicateName):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, models.ErrWeakPassword):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, models.ErrMissingHeader):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, models.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	default:
		log.Printf("Unexpected error handling %s %s: %v", r.Method, r.URL.Path, err)
	}

	render.Status(r, status)
	render.JSON(w, r, map[string]string{"error": message})
}

// renderTemplate parses and renders a standalone page template
func renderTemplate(w http.ResponseWriter, pageTemplate string, data interface{}) error {
	tmpl, err := template.ParseFiles(pageTemplate)
	if err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	if err := tmpl.Execute(w, data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	return nil
}
