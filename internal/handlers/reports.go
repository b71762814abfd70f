package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"whattohack-api/internal/config"
	"whattohack-api/internal/reports"

	"github.com/gin-gonic/gin"
)

// Handler contains injected dependencies for the catalog and status handlers
type Handler struct {
	Reports reports.Store
	Config  *config.Config
}

// New creates a new Handler backed by the given report store
func New(store reports.Store, cfg *config.Config) *Handler {
	return &Handler{
		Reports: store,
		Config:  cfg,
	}
}

// Health handles GET /api/health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetReports handles GET /api/reports, listing featured hackathons that
// fuzzily match q, or all of them when q is blank
func (h *Handler) GetReports(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	slog.Debug("Searching featured hackathons", "query", query)

	names, err := h.Reports.Suggest(c.Request.Context(), query)
	if err != nil {
		slog.Error("Failed to search featured hackathons", "error", err, "query", query)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search data"})
		return
	}
	if names == nil {
		names = make([]string, 0)
	}

	c.JSON(http.StatusOK, gin.H{"hackathons": names})
}

// GetStatus handles GET /api/status, describing the AI backend in use
func (h *Handler) GetStatus(c *gin.Context) {
	names, err := h.Reports.Names(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list featured hackathons", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}
	if names == nil {
		names = make([]string, 0)
	}

	mode := h.Config.AIMode
	c.JSON(http.StatusOK, gin.H{
		"mode":       mode,
		"model":      h.Config.Model(),
		"configured": mode == config.ModeMock || h.Config.APIKey() != "",
		"featured":   names,
	})
}
