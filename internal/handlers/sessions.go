package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"whattohack-api/internal/ai"
	"whattohack-api/internal/catalog"
	"whattohack-api/internal/models"
	"whattohack-api/internal/session"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the view state machine over HTTP
type SessionHandler struct {
	Sessions *session.Manager
}

func NewSessionHandler(m *session.Manager) *SessionHandler {
	return &SessionHandler{Sessions: m}
}

type searchRequest struct {
	Query string `json:"query" binding:"required"`
}

type contextRequest struct {
	AdditionalContext string `json:"additionalContext"`
}

type ideasQuery struct {
	catalog.Filters
	Sort string `form:"sort"`
}

// Register mounts the session routes on g
func (h *SessionHandler) Register(g *gin.RouterGroup) {
	g.POST("/sessions", h.Create)
	s := g.Group("/sessions/:id")
	{
		s.GET("", h.Get)
		s.DELETE("", h.Delete)
		s.POST("/search", h.Search)
		s.POST("/onboarding", h.CompleteOnboarding)
		s.POST("/onboarding/skip", h.SkipOnboarding)
		s.POST("/back", h.Back)
		s.PUT("/context", h.SetContext)
		s.POST("/regenerate", h.Regenerate)
		s.GET("/ideas", h.Ideas)
		s.GET("/leverages", h.Leverages)
	}
}

// Create handles POST /api/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	s := h.Sessions.Create()
	slog.Info("Session created", "session", s.ID)
	c.JSON(http.StatusCreated, s.View())
}

// Get handles GET /api/sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.View())
}

// Delete handles DELETE /api/sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.Sessions.Delete(c.Param("id")); err != nil {
		writeError(c, err, nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search handles POST /api/sessions/:id/search
func (h *SessionHandler) Search(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Field 'query' is required"})
		return
	}

	slog.Info("Starting hackathon search", "session", s.ID, "query", req.Query)
	h.respond(c, s, s.Search(c.Request.Context(), req.Query))
}

// CompleteOnboarding handles POST /api/sessions/:id/onboarding
func (h *SessionHandler) CompleteOnboarding(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var profile models.OnboardingProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid onboarding profile"})
		return
	}

	h.respond(c, s, s.CompleteOnboarding(c.Request.Context(), profile))
}

// SkipOnboarding handles POST /api/sessions/:id/onboarding/skip
func (h *SessionHandler) SkipOnboarding(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	h.respond(c, s, s.SkipOnboarding(c.Request.Context()))
}

// Back handles POST /api/sessions/:id/back
func (h *SessionHandler) Back(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	h.respond(c, s, s.Back())
}

// SetContext handles PUT /api/sessions/:id/context
func (h *SessionHandler) SetContext(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var req contextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	h.respond(c, s, s.SetContext(req.AdditionalContext))
}

// Regenerate handles POST /api/sessions/:id/regenerate
func (h *SessionHandler) Regenerate(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	h.respond(c, s, s.Regenerate(c.Request.Context()))
}

// Ideas handles GET /api/sessions/:id/ideas
func (h *SessionHandler) Ideas(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}

	var q ideasQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filters"})
		return
	}
	if q.Sort == "" {
		q.Sort = catalog.SortScore
	}

	ideas := s.Ideas(q.Filters, q.Sort)
	c.JSON(http.StatusOK, gin.H{
		"ideas":         ideas,
		"activeFilters": q.ActiveCount(),
		"sort":          q.Sort,
	})
}

// Leverages handles GET /api/sessions/:id/leverages
func (h *SessionHandler) Leverages(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"leverages": s.Leverages()})
}

func (h *SessionHandler) session(c *gin.Context) (*session.Session, bool) {
	s, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		writeError(c, err, nil)
		return nil, false
	}
	return s, true
}

func (h *SessionHandler) respond(c *gin.Context, s *session.Session, err error) {
	v := s.View()
	if err != nil {
		writeError(c, err, &v)
		return
	}
	c.JSON(http.StatusOK, v)
}

// statusFor maps an action error to its HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrBusy), errors.Is(err, session.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, session.ErrEmptyQuery), errors.Is(err, session.ErrInvalidProfile):
		return http.StatusBadRequest
	case ai.IsAuth(err):
		return http.StatusUnauthorized
	default:
		// upstream AI, scrape or catalog failure
		return http.StatusBadGateway
	}
}

// writeError answers with a client-safe message. Upstream errors can carry
// provider response bodies, so they are only logged.
func writeError(c *gin.Context, err error, v *session.View) {
	status := statusFor(err)
	body := gin.H{"error": publicMessage(err, status, v)}
	if v != nil {
		body["session"] = v
		if v.Notice != nil {
			body["notice"] = v.Notice
		}
	}
	if status == http.StatusUnauthorized || status >= http.StatusInternalServerError {
		slog.Error("Session action failed", "status", status, "error", err)
	}
	c.JSON(status, body)
}

func publicMessage(err error, status int, v *session.View) string {
	if status != http.StatusUnauthorized && status < http.StatusInternalServerError {
		return err.Error()
	}
	if v != nil && v.Notice != nil && v.Notice.Level == session.NoticeError {
		return v.Notice.Message
	}
	if status == http.StatusUnauthorized {
		return session.MsgAuthUnavailable
	}
	return "Upstream request failed"
}
