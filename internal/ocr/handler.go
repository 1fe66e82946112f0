package ocr

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"snaptext-backend/internal/documents"
	"snaptext-backend/internal/shared/server/middleware"
	"snaptext-backend/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires the OCR endpoints to the service.
type Handler struct {
	Svc  *Service
	Docs *documents.Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, docs *documents.Service) *Handler {
	return &Handler{Svc: svc, Docs: docs}
}

// RegisterRoutes attaches OCR routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ocr", h.extract)
	rg.POST("/ocr/upload", h.upload)
}

type extractRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

func (h *Handler) extract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.ImageBase64) == "" {
		respond.Error(c, http.StatusBadRequest, "Image data is required", nil)
		return
	}

	text, err := h.Svc.Extract(c.Request.Context(), req.ImageBase64)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			respond.Error(c, http.StatusInternalServerError, "OCR API key is not configured", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to extract text from image", err.Error())
		}
		return
	}

	// An empty result is a successful "no text found" outcome.
	respond.OK(c, gin.H{"text": text})
}

// upload runs the full workflow for a multipart image: encode, archive,
// extract, and save the result as a document owned by the caller.
func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "unable to read file", nil)
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "unable to read file", nil)
		return
	}

	imageBase64, err := EncodeImage(bytes.NewReader(raw), fileHeader.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, ErrNotAnImage) {
			respond.Error(c, http.StatusBadRequest, "File must be an image", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "unable to read file", nil)
		return
	}

	h.Svc.Archive(c.Request.Context(), userID, fileHeader.Filename, bytes.NewReader(raw))

	text, err := h.Svc.Extract(c.Request.Context(), imageBase64)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			respond.Error(c, http.StatusInternalServerError, "OCR API key is not configured", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Failed to extract text from image", err.Error())
		}
		return
	}

	if strings.TrimSpace(text) == "" {
		// Nothing to save; report the empty extraction as success.
		respond.OK(c, gin.H{"text": "", "document": nil})
		return
	}

	doc, err := h.Docs.Create(c.Request.Context(), userID, fileHeader.Filename, text)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Failed to save document", nil)
		return
	}

	c.Set("documentId", doc.ID)
	respond.OK(c, gin.H{
		"text": text,
		"document": gin.H{
			"id":            doc.ID,
			"fileName":      doc.FileName,
			"extractedText": doc.ExtractedText,
			"createdAt":     doc.CreatedAt,
		},
	})
}
