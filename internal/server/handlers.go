package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dshills/codecloak/internal/cloak"
	"github.com/dshills/codecloak/internal/keywords"
	"github.com/dshills/codecloak/internal/service"
)

// CloakRequest is the body of POST /v1/cloak.
type CloakRequest struct {
	Text                   string `json:"text"`
	LanguageID             string `json:"languageId"`
	Path                   string `json:"path,omitempty"`
	StringFormat           string `json:"stringFormat,omitempty"`
	PreserveFrameworkHooks *bool  `json:"preserveFrameworkHooks,omitempty"`
}

// DecloakRequest is the body of POST /v1/decloak.
type DecloakRequest struct {
	Text    string         `json:"text"`
	Context *cloak.Context `json:"context,omitempty"`
}

// AddKeywordRequest is the body of POST /v1/keywords/:lang.
type AddKeywordRequest struct {
	Name string `json:"name" binding:"required"`
}

// Health handles GET /health.
func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": s.version})
}

// Cloak handles POST /v1/cloak.
func (s *Server) Cloak(c *gin.Context) {
	var req CloakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := s.svc.Cloak(c.Request.Context(), service.CloakInput{
		Text:                   req.Text,
		LanguageID:             req.LanguageID,
		Path:                   req.Path,
		StringFormat:           req.StringFormat,
		PreserveFrameworkHooks: req.PreserveFrameworkHooks,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Decloak handles POST /v1/decloak.
func (s *Server) Decloak(c *gin.Context) {
	var req DecloakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := s.svc.Decloak(c.Request.Context(), req.Text, req.Context)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetContext handles GET /v1/context.
func (s *Server) GetContext(c *gin.Context) {
	env, err := s.svc.Context(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, env)
}

// ClearContext handles DELETE /v1/context.
func (s *Server) ClearContext(c *gin.Context) {
	if err := s.svc.ClearContext(c.Request.Context()); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// ContextStats handles GET /v1/context/stats.
func (s *Server) ContextStats(c *gin.Context) {
	st, err := s.svc.ContextStats(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// ListKeywords handles GET /v1/keywords/:lang.
func (s *Server) ListKeywords(c *gin.Context) {
	lang, ok := keywords.ParseLanguage(c.Param("lang"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported language: " + c.Param("lang")})
		return
	}
	groups := keywords.CatalogFor(lang)
	c.JSON(http.StatusOK, gin.H{
		"language": lang,
		"label":    keywords.Label(lang),
		"count":    keywords.Count(groups),
		"groups":   groups,
	})
}

// AddKeyword handles POST /v1/keywords/:lang.
func (s *Server) AddKeyword(c *gin.Context) {
	var req AddKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, err := s.svc.AddKeyword(c.Param("lang"), req.Name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added})
}
