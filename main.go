package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "transit/internal/config"
	router "transit/internal/http"
	"transit/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
)

func main() {
	env := intconfig.LoadEnv()

	flags := pflag.NewFlagSet("transit", pflag.ExitOnError)
	addr := flags.String("addr", env.AppAddr, "listen address (overrides APP_ADDR)")
	catalogPath := flags.String("catalog", "", "YAML catalog file to serve instead of the built-in data")
	_ = flags.Parse(os.Args[1:])
	env.AppAddr = *addr

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	catalog, err := loadCatalog(*catalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	r := router.NewRouter(env, catalog)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}

func loadCatalog(path string) (repositories.CatalogRepository, error) {
	if path == "" {
		return repositories.CatalogRepository{}, nil
	}
	c, err := repositories.LoadCatalogFile(path)
	if err != nil {
		return repositories.CatalogRepository{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	log.Printf("Serving catalog from %s", path)
	return repositories.CatalogRepository{Catalog: c}, nil
}
