package mistral

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(baseURL string) *Client {
	return &Client{
		apiKey:     "test-key",
		model:      "mistral-ocr-latest",
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestNewClientRequiresKeyAndModel(t *testing.T) {
	if _, err := NewClient("", "mistral-ocr-latest"); err == nil {
		t.Fatal("expected error for empty api key")
	}
	if _, err := NewClient("key", ""); err == nil {
		t.Fatal("expected error for empty model")
	}
	if _, err := NewClient("key", "mistral-ocr-latest"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessSendsDocumentPayload(t *testing.T) {
	var gotAuth string
	var gotBody ocrRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pages":[{"index":0,"markdown":"# Title"},{"index":1,"markdown":"Body"}]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	resp, err := client.Process(context.Background(), "data:image/jpeg;base64,aGVsbG8=")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotBody.Model != "mistral-ocr-latest" {
		t.Fatalf("unexpected model: %q", gotBody.Model)
	}
	if gotBody.Document.Type != "image_url" {
		t.Fatalf("unexpected document type: %q", gotBody.Document.Type)
	}
	if gotBody.Document.ImageURL != "data:image/jpeg;base64,aGVsbG8=" {
		t.Fatalf("unexpected image url: %q", gotBody.Document.ImageURL)
	}

	if len(resp.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(resp.Pages))
	}
	if resp.Pages[0].Markdown != "# Title" || resp.Pages[1].Markdown != "Body" {
		t.Fatalf("unexpected pages: %+v", resp.Pages)
	}
}

func TestProcessSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Unauthorized","type":"invalid_request_error"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Process(context.Background(), "data:image/jpeg;base64,aGVsbG8=")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "mistral error: Unauthorized" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Process(context.Background(), "data:image/jpeg;base64,aGVsbG8=")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "mistral status 502: upstream unavailable" {
		t.Fatalf("unexpected error: %v", err)
	}
}
