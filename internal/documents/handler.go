package documents

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"snaptext-backend/internal/render"
	"snaptext-backend/internal/shared/server/middleware"
	"snaptext-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/documents", h.list)
	rg.POST("/documents", h.create)
	rg.DELETE("/documents", h.remove)
	rg.GET("/documents/:id/html", h.html)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	docs, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to fetch documents", nil)
		}
		return
	}

	respond.OK(c, gin.H{"documents": toResponses(docs)})
}

type createRequest struct {
	FileName      string `json:"fileName"`
	ExtractedText string `json:"extractedText"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	req.FileName = strings.TrimSpace(req.FileName)
	req.ExtractedText = strings.TrimSpace(req.ExtractedText)
	if req.FileName == "" || req.ExtractedText == "" {
		respond.Error(c, http.StatusBadRequest, "Missing required fields", nil)
		return
	}

	doc, err := h.Svc.Create(c.Request.Context(), userID, req.FileName, req.ExtractedText)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to save document", nil)
		}
		return
	}

	c.Set("documentId", doc.ID)
	respond.OK(c, gin.H{"document": toResponse(doc)})
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "Missing document ID", nil)
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to delete document", nil)
		}
		return
	}

	c.Set("documentId", id)
	respond.OK(c, gin.H{"success": true})
}

func (h *Handler) html(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	id := strings.TrimSpace(c.Param("id"))

	doc, err := h.Svc.Get(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Document not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to fetch document", nil)
		}
		return
	}

	html, err := render.HTML(doc.ExtractedText)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to render document", nil)
		return
	}

	c.Set("documentId", doc.ID)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
