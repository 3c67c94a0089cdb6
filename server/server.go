package server

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"iot-site-backend/config"
	"iot-site-backend/handlers"
	"iot-site-backend/services"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	router     *mux.Router
	httpServer *http.Server
	services   *services.Container

	// Handlers
	documentHandler *handlers.DocumentHandler
	productHandler  *handlers.ProductHandler
	careerHandler   *handlers.CareerHandler
	inquiryHandler  *handlers.InquiryHandler
	chatHandler     *handlers.ChatHandler
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	container, err := services.NewContainer(cfg)
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter()

	server := &Server{
		config:          cfg,
		router:          router,
		services:        container,
		documentHandler: handlers.NewDocumentHandler(container.Catalog),
		productHandler:  handlers.NewProductHandler(container.Catalog),
		careerHandler:   handlers.NewCareerHandler(container.Catalog),
		inquiryHandler:  handlers.NewInquiryHandler(container.Inquiry),
		chatHandler:     handlers.NewChatHandler(container.Chat),
		httpServer: &http.Server{
			Addr:         ":" + cfg.Server.Port,
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {

	// API version prefix
	api := s.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", s.healthCheck).Methods("GET", "OPTIONS")

	// Metrics exposition
	if s.config.Metrics.Enabled && s.services.Metrics != nil {
		s.router.Handle(s.config.Metrics.Endpoint, s.services.Metrics.Handler()).Methods("GET")
	}

	// Downloads center
	api.HandleFunc("/documents", s.documentHandler.GetDocuments).Methods("GET")
	api.HandleFunc("/documents/categories", s.documentHandler.GetCategories).Methods("GET")

	// Product catalog
	api.HandleFunc("/products", s.productHandler.GetProducts).Methods("GET")
	api.HandleFunc("/products/{id}", s.productHandler.GetProductByID).Methods("GET")

	// Careers
	api.HandleFunc("/careers", s.careerHandler.GetOpenings).Methods("GET")

	// Inquiry form
	api.HandleFunc("/inquiries", s.inquiryHandler.CreateInquiry).Methods("POST", "OPTIONS")

	// Chat widget
	api.HandleFunc("/chat/sessions", s.chatHandler.OpenSession).Methods("POST", "OPTIONS")
	api.HandleFunc("/chat/sessions/{id}", s.chatHandler.GetSession).Methods("GET")
	api.HandleFunc("/chat/sessions/{id}", s.chatHandler.CloseSession).Methods("DELETE", "OPTIONS")
	api.HandleFunc("/chat/sessions/{id}/messages", s.chatHandler.SendMessage).Methods("POST", "OPTIONS")
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware() {
	// CORS must be first to handle preflight requests
	s.router.Use(s.corsMiddleware)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.contentTypeMiddleware)

	if s.config.Metrics.Enabled && s.services.Metrics != nil {
		s.router.Use(s.metricsMiddleware())
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	log.WithField("port", s.config.Server.Port).Info("Starting server")

	// Start server in a goroutine
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	return s.Shutdown()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}

// healthCheck handles health check requests
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	systemHealth := s.services.Health.CheckHealth(r.Context())

	statusCode := http.StatusOK
	if systemHealth.Status == services.HealthStatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(systemHealth); err != nil {
		log.WithError(err).Error("Failed to encode health response")
	}
}
