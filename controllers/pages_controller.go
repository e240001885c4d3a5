package controllers

import (
	"net/http"

	"gitea.com/go-chi/session"
)

// PagesController serves the minimal HTML pages
type PagesController struct{}

// NewPagesController creates a new pages controller
func NewPagesController() *PagesController {
	return &PagesController{}
}

// Index handles GET /
func (c *PagesController) Index(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, "templates/index.html", nil)
}

// Login handles GET /login
func (c *PagesController) Login(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	if userID, _ := sess.Get("user_id").(int); userID != 0 {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	renderTemplate(w, "templates/login.html", nil)
}
