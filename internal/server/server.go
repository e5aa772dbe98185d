// Package server exposes the mapping pipeline over HTTP for the bookkeeping
// application's relay extension.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rezonia/zatca-egs/internal/mapper"
	"github.com/rezonia/zatca-egs/internal/model"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP relay server
type Server struct {
	config *Config
	router *gin.Engine
	log    *logrus.Logger
}

// NewServer creates a new relay server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if config.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config: config,
		router: router,
		log:    log,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/relay/map", s.handleMap)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleMap(c *gin.Context) {
	var data model.RelayData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid relay payload", Details: err.Error()})
		return
	}

	m, err := mapper.New(&data)
	if err != nil {
		s.log.WithError(err).Warn("relay payload rejected")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid relay payload", Details: err.Error()})
		return
	}

	doc, err := m.Invoice()
	if err != nil {
		s.log.WithError(err).Warn("invoice mapping failed")

		var classErr *model.ClassificationError
		if errors.As(err, &classErr) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "vat classification failed", Details: err.Error()})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "invoice mapping failed", Details: err.Error()})
		return
	}

	s.log.WithFields(logrus.Fields{
		"reference": data.ManagerInvoice.Reference,
		"uuid":      doc.UUID,
		"type_code": doc.InvoiceTypeCode.Value,
		"lines":     len(doc.InvoiceLine),
	}).Info("invoice mapped")

	c.JSON(http.StatusOK, MapResponse{Invoice: doc})
}
