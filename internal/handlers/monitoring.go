package handlers

import (
	"net/http"
	"strings"

	"tiendaapi/internal/config"
	"tiendaapi/internal/monitoring"

	"github.com/gin-gonic/gin"
)

type MonitorHandler struct {
	service *monitoring.Service
}

func NewMonitorHandler(service *monitoring.Service) *MonitorHandler {
	return &MonitorHandler{service: service}
}

func checkMonitoringToken(c *gin.Context) bool {
	expected := config.GetEnvOrDefault("MONITORING_API_KEY", "")
	if expected == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Monitoring API is disabled"})
		return false
	}

	provided := strings.TrimSpace(c.GetHeader("X-Monitoring-Key"))
	if provided == "" || provided != expected {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid monitoring key"})
		return false
	}
	return true
}

func (h *MonitorHandler) Status(c *gin.Context) {
	if !checkMonitoringToken(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": h.service.StatusText(c.Request.Context())})
}

func (h *MonitorHandler) Snapshot(c *gin.Context) {
	if !checkMonitoringToken(c) {
		return
	}
	c.JSON(http.StatusOK, h.service.Snapshot(c.Request.Context()))
}
