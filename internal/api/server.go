// Package api serves ELF header inspection over HTTP.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/elfinfo/internal/diag"
	"github.com/samcharles93/elfinfo/internal/logger"
	"github.com/samcharles93/elfinfo/internal/report"
	"github.com/samcharles93/elfinfo/internal/version"
	"github.com/samcharles93/elfinfo/pkg/elf"
)

const (
	defaultMaxBodyBytes = 1 << 20
	defaultMaxResults   = 256
)

// HeaderResponse is the body of every /v1/headers reply. Exactly one of
// Header and Error is set.
type HeaderResponse struct {
	ID        string           `json:"id"`
	Object    string           `json:"object"`
	CreatedAt int64            `json:"created_at"`
	Size      int              `json:"size"`
	Header    *report.Document `json:"header,omitempty"`
	Error     *diag.Report     `json:"error,omitempty"`
}

type Config struct {
	// MaxBodyBytes caps the uploaded payload. Zero selects 1 MiB.
	MaxBodyBytes int64
	// MaxResults bounds the number of stored inspections.
	MaxResults int
	Logger     logger.Logger
}

type Server struct {
	store   *ResultStore
	maxBody int64
	log     logger.Logger
	clock   func() time.Time
}

func NewServer(cfg Config) *Server {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}
	return &Server{
		store:   NewResultStore(cfg.MaxResults),
		maxBody: cfg.MaxBodyBytes,
		log:     cfg.Logger.With("component", "api"),
		clock:   time.Now,
	}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/headers", s.handleInspect)
	e.GET("/v1/headers/:id", s.handleGetHeader)
	e.DELETE("/v1/headers/:id", s.handleDeleteHeader)
	e.GET("/healthz", s.handleHealth)
}

func (s *Server) handleInspect(c *echo.Context) error {
	body, err := readBody(c.Request().Body, s.maxBody)
	if errors.Is(err, errBodyTooLarge) {
		return writeError(c, http.StatusRequestEntityTooLarge, "request_too_large", err.Error())
	}
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_request_error", err.Error())
	}

	resp := HeaderResponse{
		ID:        newHeaderID(),
		Object:    "elf.header",
		CreatedAt: s.clock().Unix(),
		Size:      len(body),
	}

	h, _, err := elf.DecodeHeader(body)
	if err != nil {
		rep := diag.Describe(err)
		resp.Error = &rep
		s.log.Debug("decode failed", "id", resp.ID, "type", rep.Kind, "size", len(body))
		return writeJSON(c, http.StatusUnprocessableEntity, resp)
	}

	doc := report.NewDocument(h)
	resp.Header = &doc
	s.store.Put(resp)
	s.log.Debug("decoded header", "id", resp.ID, "machine", doc.Machine.Name)
	return writeJSON(c, http.StatusOK, resp)
}

func (s *Server) handleGetHeader(c *echo.Context) error {
	resp, ok := s.store.Get(c.Param("id"))
	if !ok {
		return writeNotFound(c, "header not found")
	}
	return writeJSON(c, http.StatusOK, resp)
}

func (s *Server) handleDeleteHeader(c *echo.Context) error {
	id := c.Param("id")
	if !s.store.Delete(id) {
		return writeNotFound(c, "header not found")
	}
	return writeJSON(c, http.StatusOK, map[string]any{
		"id":      id,
		"object":  "elf.header.deleted",
		"deleted": true,
	})
}

func (s *Server) handleHealth(c *echo.Context) error {
	return writeJSON(c, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.String(),
	})
}
