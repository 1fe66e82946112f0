package ocr

import "testing"

func TestExtractTextJoinsNonEmptyPages(t *testing.T) {
	resp := Response{
		Pages: []Page{
			{Index: 0, Markdown: "# Page one"},
			{Index: 1, Markdown: "   "},
			{Index: 2, Markdown: "Page three"},
		},
	}

	got := ExtractText(resp)
	want := "# Page one\n\nPage three"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExtractTextPagesWinOverText(t *testing.T) {
	resp := Response{
		Pages: []Page{{Index: 0, Markdown: "from pages"}},
		Text:  "from text",
	}
	if got := ExtractText(resp); got != "from pages" {
		t.Fatalf("expected pages content, got %q", got)
	}
}

func TestExtractTextFallsBackToText(t *testing.T) {
	resp := Response{Text: "hello world"}
	if got := ExtractText(resp); got != "hello world" {
		t.Fatalf("expected text field verbatim, got %q", got)
	}
}

func TestExtractTextEmptyResponse(t *testing.T) {
	if got := ExtractText(Response{}); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestExtractTextAllPagesBlank(t *testing.T) {
	resp := Response{
		Pages: []Page{{Markdown: ""}, {Markdown: "\n\t "}},
		Text:  "should be ignored",
	}
	if got := ExtractText(resp); got != "" {
		t.Fatalf("expected empty string when every page is blank, got %q", got)
	}
}

func TestDataURLWrapsRawBase64(t *testing.T) {
	got := DataURL("aGVsbG8=")
	want := "data:image/jpeg;base64,aGVsbG8="
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDataURLStripsExistingPrefix(t *testing.T) {
	got := DataURL("data:image/png;base64,aGVsbG8=")
	want := "data:image/jpeg;base64,aGVsbG8="
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
