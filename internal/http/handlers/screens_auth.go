package handlers

import (
	"net/http"

	"transit/internal/domain"
	"transit/internal/domain/models"
	"transit/internal/http/views"

	"github.com/gin-gonic/gin"
)

const noticeFillAll = "Please fill all fields"

type loginData struct {
	Email string
}

type signupData struct {
	Name  string
	Email string
	Phone string
}

type dashboardData struct {
	Menu []models.MenuItem
}

// GET /login
func (h *Handler) LoginForm(c *gin.Context) {
	render(c, http.StatusOK, "login.html", views.Page{Title: "Login", Data: loginData{}})
}

// POST /login only checks that both fields are present; no credential is
// verified or stored.
func (h *Handler) Login(c *gin.Context) {
	data := loginData{Email: c.PostForm("email")}
	if data.Email == "" || c.PostForm("password") == "" {
		render(c, http.StatusOK, "login.html", views.Page{
			Title:  "Login",
			Notice: &domain.Notice{Kind: domain.NoticeError, Message: noticeFillAll},
			Data:   data,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// GET /signup
func (h *Handler) SignupForm(c *gin.Context) {
	render(c, http.StatusOK, "signup.html", views.Page{Title: "Sign Up", BackURL: "/login", Data: signupData{}})
}

// POST /signup
func (h *Handler) Signup(c *gin.Context) {
	data := signupData{
		Name:  c.PostForm("name"),
		Email: c.PostForm("email"),
		Phone: c.PostForm("phone"),
	}
	if data.Name == "" || data.Email == "" || data.Phone == "" || c.PostForm("password") == "" {
		render(c, http.StatusOK, "signup.html", views.Page{
			Title:   "Sign Up",
			BackURL: "/login",
			Notice:  &domain.Notice{Kind: domain.NoticeError, Message: noticeFillAll},
			Data:    data,
		})
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// GET /dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	render(c, http.StatusOK, "dashboard.html", views.Page{
		Title: "Smart Transit",
		Data:  dashboardData{Menu: h.Catalog.Menu()},
	})
}
