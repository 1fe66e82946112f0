package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"snaptext-backend/internal/ocr"
)

const apiURL = "https://api.mistral.ai/v1/ocr"

// Client implements ocr.Client against the Mistral OCR endpoint.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a new Mistral OCR client.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("MISTRAL_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("MISTRAL_MODEL is required")
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("MISTRAL_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type ocrDocument struct {
	Type     string `json:"type"`
	ImageURL string `json:"image_url"`
}

type ocrRequest struct {
	Model    string      `json:"model"`
	Document ocrDocument `json:"document"`
}

type ocrResponse struct {
	Pages []struct {
		Index    int    `json:"index"`
		Markdown string `json:"markdown"`
	} `json:"pages"`
	Text string `json:"text"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Process sends one OCR request for the given data URL. There is exactly one
// attempt: a failed call surfaces the provider message and is never retried.
func (c *Client) Process(ctx context.Context, dataURL string) (ocr.Response, error) {
	payload, err := json.Marshal(ocrRequest{
		Model: c.model,
		Document: ocrDocument{
			Type:     "image_url",
			ImageURL: dataURL,
		},
	})
	if err != nil {
		return ocr.Response{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return ocr.Response{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return ocr.Response{}, fmt.Errorf("mistral request timeout: %w", err)
		}
		return ocr.Response{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ocr.Response{}, err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
			return ocr.Response{}, fmt.Errorf("mistral error: %s", apiErr.Message)
		}
		return ocr.Response{}, fmt.Errorf("mistral status %d: %s", resp.StatusCode, snippet(body))
	}

	var parsed ocrResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ocr.Response{}, fmt.Errorf("mistral response parse: %w", err)
	}

	out := ocr.Response{Text: parsed.Text}
	for _, page := range parsed.Pages {
		out.Pages = append(out.Pages, ocr.Page{Index: page.Index, Markdown: page.Markdown})
	}
	return out, nil
}

func snippet(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max]
	}
	return s
}

var _ ocr.Client = (*Client)(nil)
