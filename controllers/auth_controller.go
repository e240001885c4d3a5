package controllers

import (
	"net/http"

	"gitea.com/go-chi/session"
	"github.com/go-chi/render"

	"github.com/soclog/change-inventory/models"
	"github.com/soclog/change-inventory/services"
	"github.com/soclog/change-inventory/userctx"
)

// AuthController handles login, logout and password rotation
type AuthController struct {
	services *services.Services
}

// NewAuthController creates a new auth controller
func NewAuthController(services *services.Services) *AuthController {
	return &AuthController{services: services}
}

// Login handles POST /login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, r, models.NewValidationError("failed to parse form"))
		return
	}

	username := r.FormValue("username")
	plaintext := r.FormValue("password")

	user, err := c.services.Auth.Login(r.Context(), username, plaintext)
	if err != nil {
		respondError(w, r, err)
		return
	}

	sess := session.GetSession(r)
	sess.Set("user_id", user.ID)
	sess.Set("username", user.Username)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles GET /logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Flush()

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// changePasswordRequest is the JSON payload for POST /api/change-password
type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword handles POST /api/change-password
func (c *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		respondError(w, r, models.NewValidationError("failed to decode request"))
		return
	}

	if req.CurrentPassword == "" || req.NewPassword == "" {
		respondError(w, r, models.NewValidationError("Current and new passwords are required"))
		return
	}

	userID := userctx.GetUserID(r.Context())
	if err := c.services.Auth.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"success": true,
		"message": "Password changed successfully",
	})
}
