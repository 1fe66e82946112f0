package ocr

import (
	"context"
	"io"
	"strings"
	"time"

	"snaptext-backend/internal/shared/metrics"
	"snaptext-backend/internal/shared/storage/object"
	"snaptext-backend/internal/shared/telemetry"
)

// Service orchestrates one extraction: canonicalize the payload, archive the
// original image, call the provider once, normalize the response.
type Service struct {
	// Client is nil when the provider credential is missing; extraction then
	// fails with ErrNotConfigured before any network call.
	Client Client
	// Store archives uploaded originals. Archival is best effort: a storage
	// failure is logged but never fails the extraction.
	Store object.ObjectStore
}

// Extract runs OCR over a base64 image payload and returns the normalized
// text. An empty string with a nil error means the provider found no text.
func (s *Service) Extract(ctx context.Context, imageBase64 string) (string, error) {
	if s.Client == nil {
		return "", ErrNotConfigured
	}

	metrics.IncOCRRequested()
	start := time.Now()

	resp, err := s.Client.Process(ctx, DataURL(imageBase64))
	metrics.ObserveOCRDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncOCRFailed()
		return "", err
	}

	text := ExtractText(resp)
	if strings.TrimSpace(text) == "" {
		metrics.IncOCREmpty()
	}
	return text, nil
}

// Archive stores the original image bytes under the user's namespace. Errors
// are logged and swallowed; losing the archive copy must not lose the text.
func (s *Service) Archive(ctx context.Context, userID, fileName string, r io.Reader) {
	if s.Store == nil {
		return
	}
	key, size, mimeType, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		telemetry.Error("ocr.archive_failed", map[string]any{
			"file_name": fileName,
			"err":       err.Error(),
		})
		return
	}
	telemetry.Info("ocr.archived", map[string]any{
		"storage_key": key,
		"size_bytes":  size,
		"mime_type":   mimeType,
	})
}
