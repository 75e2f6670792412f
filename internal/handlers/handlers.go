package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// Handlers holds all dependencies for the HTTP handlers.
type Handlers struct {
	DB     *sqlx.DB
	Logger zerolog.Logger
}

// Health is the liveness endpoint for deployment probes.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
