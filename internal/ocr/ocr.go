// Package ocr holds the gateway between uploaded images and the external OCR
// provider: payload canonicalization, the provider client seam, and the
// normalization of the provider's variable response shape into one string.
package ocr

import (
	"context"
	"errors"
	"strings"
)

// Page is one page of a provider response.
type Page struct {
	Index    int    `json:"index"`
	Markdown string `json:"markdown"`
}

// Response is the provider's answer in either of its two shapes: a paginated
// markdown document or a flat text field.
type Response struct {
	Pages []Page `json:"pages"`
	Text  string `json:"text"`
}

// Client is the opaque provider capability: one call, one response, no retry.
type Client interface {
	Process(ctx context.Context, dataURL string) (Response, error)
}

// ErrNotConfigured is returned before any network call when the provider
// credential is missing or a placeholder.
var ErrNotConfigured = errors.New("ocr provider is not configured")

const dataURLMarker = "base64,"

// DataURL canonicalizes a base64 image payload into a data URL. Payloads that
// already carry a data-URL prefix are stripped down to the raw base64 first.
func DataURL(imageBase64 string) string {
	payload := imageBase64
	if idx := strings.Index(payload, dataURLMarker); idx >= 0 {
		payload = payload[idx+len(dataURLMarker):]
	}
	return "data:image/jpeg;base64," + payload
}

// ExtractText flattens a provider response into a single markdown string.
// Pages win over the flat text field; pages whose markdown is empty or
// whitespace-only are skipped and the remainder joined with a blank line.
// An empty result is a valid "no text found" outcome, not an error.
func ExtractText(resp Response) string {
	if len(resp.Pages) > 0 {
		parts := make([]string, 0, len(resp.Pages))
		for _, page := range resp.Pages {
			if strings.TrimSpace(page.Markdown) == "" {
				continue
			}
			parts = append(parts, page.Markdown)
		}
		return strings.Join(parts, "\n\n")
	}
	if resp.Text != "" {
		return resp.Text
	}
	return ""
}
