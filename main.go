package main

import (
	"flag"
	"log"
	"time"

	"sysmond/internal/config"
	"sysmond/internal/controllers"
	"sysmond/internal/middleware"
	"sysmond/internal/routes"
	"sysmond/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	monitor := services.NewMonitor(cfg)
	if err := monitor.Start(); err != nil {
		log.Fatalf("sampler: %v", err)
	}
	defer monitor.Stop()

	auth, err := services.NewAuthService(cfg.SecretKey, cfg.TokenExpiry())
	if err != nil {
		log.Fatalf("auth: %v", err)
	}

	// Display clients refresh roughly twice per second.
	hub := services.NewHub(monitor, 500*time.Millisecond)
	hub.Start()
	defer hub.Stop()

	api := controllers.NewAPI(monitor, auth, hub)

	r := gin.Default()
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiter()))

	routes.RegisterMonitorRoutes(r, api)
	routes.RegisterProcessRoutes(r, api)
	routes.RegisterAuthRoutes(r, api)

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
