package handlers

import (
	"net/http"

	"transit/internal/domain"
	"transit/internal/http/middleware"
	"transit/internal/http/views"
	"transit/internal/repositories"
	"transit/internal/services"

	"github.com/gin-gonic/gin"
)

// Handler serves both the HTML screens and the JSON API. It holds only
// read-only dependencies; all screen state travels with the request.
type Handler struct {
	Catalog repositories.CatalogRepository
	Tokens  services.TicketTokenCodec
	// Rand overrides booking id and seat generation in tests.
	Rand func(n int) int
}

func NewHandler(catalog repositories.CatalogRepository, tokens services.TicketTokenCodec) *Handler {
	return &Handler{Catalog: catalog, Tokens: tokens}
}

func (h *Handler) search(c *gin.Context) services.SearchService {
	return services.SearchService{Catalog: h.Catalog, RequestID: middleware.GetRequestID(c)}
}

func (h *Handler) tickets(c *gin.Context) services.TicketService {
	return services.TicketService{Catalog: h.Catalog, RequestID: middleware.GetRequestID(c), Rand: h.Rand}
}

func (h *Handler) docs(c *gin.Context) services.DocsService {
	return services.DocsService{RequestID: middleware.GetRequestID(c)}
}

// render executes a screen template. Screens always answer 200 for
// validation notices; the user stays on the same page.
func render(c *gin.Context, status int, name string, page views.Page) {
	c.HTML(status, name, page)
}

func screen(c *gin.Context, name, title string, notice *domain.Notice, data any) {
	render(c, http.StatusOK, name, views.Page{
		Title:   title,
		BackURL: "/dashboard",
		Notice:  notice,
		Data:    data,
	})
}
