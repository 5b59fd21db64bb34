package api

import (
	"log"
	stdhttp "net/http"

	intconfig "transit/internal/config"
	h "transit/internal/http/handlers"
	"transit/internal/http/middleware"
	"transit/internal/http/views"
	"transit/internal/repositories"
	"transit/internal/services"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the route table: HTML screens at the root, the JSON API
// under /api, and a catch-all not-found screen.
func NewRouter(env intconfig.Env, catalog repositories.CatalogRepository) *gin.Engine {
	return newRouter(env, h.NewHandler(catalog, services.TicketTokenCodec{
		Secret: env.TicketTokenSecret,
		TTL:    env.TicketTokenTTL,
	}))
}

func newRouter(env intconfig.Env, handler *h.Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.SetHTMLTemplate(views.MustLoad())
	r.StaticFS("/static", views.Static())
	r.NoRoute(handler.NotFound)

	r.GET("/", func(c *gin.Context) { c.Redirect(stdhttp.StatusFound, "/login") })

	// Screens
	r.GET("/login", handler.LoginForm)
	r.POST("/login", handler.Login)
	r.GET("/signup", handler.SignupForm)
	r.POST("/signup", handler.Signup)
	r.GET("/dashboard", handler.Dashboard)
	r.GET("/track-bus", handler.TrackBusForm)
	r.POST("/track-bus", handler.TrackBus)
	r.GET("/book-ticket", handler.BookTicketForm)
	r.POST("/book-ticket", handler.BookTicket)
	r.GET("/digital-ticket", handler.DigitalTicket)
	r.GET("/digital-ticket/download", handler.DownloadTicket)
	r.GET("/timetable", handler.TimetableForm)
	r.POST("/timetable", handler.Timetable)
	r.GET("/my-tickets", handler.MyTickets)

	api := r.Group("/api")
	api.Use(middleware.CORS(corsOrigins(env)))
	{
		api.GET("/health", h.Health)
		api.GET("/routes", h.Routes)

		api.POST("/wizard/transition", handler.WizardTransition)
		api.POST("/track", handler.APITrack)

		timetable := api.Group("/timetable")
		timetable.POST("", handler.APITimetable)
		timetable.GET("/:id", handler.APITimetableEntry)

		tickets := api.Group("/tickets")
		tickets.GET("", handler.APITickets)
		tickets.POST("/render", handler.APIRenderTicket)

		api.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })
	}

	h.SetRouter(r)
	return r
}

// corsOrigins falls back to the development origins for an Env that was not
// built by config.LoadEnv; cors.New rejects an empty list.
func corsOrigins(env intconfig.Env) []string {
	if len(env.CORSAllowedOrigins) == 0 {
		return intconfig.DefaultCORSOrigins()
	}
	return env.CORSAllowedOrigins
}
