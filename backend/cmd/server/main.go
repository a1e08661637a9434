package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"repo-analyst/backend/internal/agent"
	"repo-analyst/backend/pkg/config"
	apperrors "repo-analyst/backend/pkg/errors"
	"repo-analyst/backend/pkg/logger"
)

func main() {
	// Initialize logger
	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Starting analyst API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize the analyst agent
	analyst := agent.New(cfg)

	// Setup Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(ginLogger(log))
	router.Use(gin.Recovery())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":                  "healthy",
			"agent_initialized":       true,
			"github_token_configured": cfg.GitHubToken != "",
			"inference_url":           cfg.InferenceURL,
		})
	})

	// Create a new chat session
	router.POST("/sessions", func(c *gin.Context) {
		var req struct {
			SessionName string `json:"session_name"`
		}
		// Body is optional; a bare POST creates an auto-named session
		_ = c.ShouldBindJSON(&req)

		name := req.SessionName
		if name == "" {
			name = "api_session_" + shortID()
		}

		sessionID := analyst.CreateSession(name)

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"success":    true,
			"message":    fmt.Sprintf("Session '%s' created successfully", name),
		})
	})

	// Chat with the analyst
	router.POST("/chat", func(c *gin.Context) {
		var req struct {
			SessionID string `json:"session_id"`
			Message   string `json:"message" binding:"required"`
		}

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sessionID := req.SessionID
		if sessionID == "" {
			sessionID = analyst.CreateSession("auto_session_" + shortID())
			log.Info("Created new session for chat", zap.String("session_id", sessionID))
		}

		answer, err := analyst.Send(c.Request.Context(), req.Message, sessionID)
		if err != nil {
			if apperrors.IsErrorType(err, apperrors.ErrorTypeSession) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
				return
			}
			log.Error("Failed to process chat request", zap.Error(err))
			c.JSON(http.StatusOK, gin.H{
				"session_id": sessionID,
				"message":    req.Message,
				"response":   "",
				"success":    false,
				"error":      err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"message":    req.Message,
			"response":   answer,
			"success":    true,
		})
	})

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// shortID returns 8 hex characters of a random uuid
func shortID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// ginLogger is a custom logger middleware for Gin
func ginLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}
