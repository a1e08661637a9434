package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":                  "healthy",
			"agent_initialized":       true,
			"github_token_configured": false,
			"inference_url":           "http://localhost:4000",
		})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "healthy", response["status"])
	assert.Equal(t, true, response["agent_initialized"])
}

func TestSessionsEndpoint_DefaultName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Mock endpoint
	router.POST("/sessions", func(c *gin.Context) {
		var req struct {
			SessionName string `json:"session_name"`
		}
		_ = c.ShouldBindJSON(&req)

		name := req.SessionName
		if name == "" {
			name = "api_session_" + shortID()
		}
		c.JSON(http.StatusOK, gin.H{
			"session_id": "test-session-id",
			"success":    true,
			"message":    "Session '" + name + "' created successfully",
		})
	})

	// A bare POST with no body still creates a session
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["success"])
	assert.NotEmpty(t, response["session_id"])
	assert.Contains(t, response["message"], "api_session_")
}

func TestChatEndpoint_InvalidRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Mock endpoint
	router.POST("/chat", func(c *gin.Context) {
		var req struct {
			SessionID string `json:"session_id"`
			Message   string `json:"message" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"response": "answer", "success": true})
	})

	// Test missing message
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/chat", bytes.NewBuffer([]byte(`{"session_id": "abc"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShortID(t *testing.T) {
	a := shortID()
	b := shortID()

	assert.Len(t, a, 8)
	assert.Len(t, b, 8)
	assert.NotEqual(t, a, b)
}
