package handlers

import (
	"net/http"
	"strings"

	"transit/internal/http/views"

	"github.com/gin-gonic/gin"
)

type notFoundData struct {
	Path string
}

// NotFound is the catch-all route. API clients get the JSON error body,
// everyone else the not-found screen.
func (h *Handler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
		return
	}
	render(c, http.StatusNotFound, "not_found.html", views.Page{
		Title: "Not Found",
		Data:  notFoundData{Path: c.Request.URL.Path},
	})
}
