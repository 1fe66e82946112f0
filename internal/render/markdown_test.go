package render

import (
	"strings"
	"testing"
)

func TestHTMLRendersBasicMarkdown(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "heading",
			source: "# Title",
			want:   []string{"<h1>Title</h1>"},
		},
		{
			name:   "emphasis",
			source: "some **bold** and *italic* text",
			want:   []string{"<strong>bold</strong>", "<em>italic</em>"},
		},
		{
			name:   "list",
			source: "- one\n- two",
			want:   []string{"<ul>", "<li>one</li>", "<li>two</li>"},
		},
		{
			name:   "paragraphs",
			source: "first\n\nsecond",
			want:   []string{"<p>first</p>", "<p>second</p>"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HTML(tc.source)
			if err != nil {
				t.Fatalf("HTML: %v", err)
			}
			for _, want := range tc.want {
				if !strings.Contains(got, want) {
					t.Fatalf("expected output to contain %q, got %q", want, got)
				}
			}
		})
	}
}

func TestHTMLEscapesEmbeddedScripts(t *testing.T) {
	got, err := HTML("hello <script>alert(1)</script> world")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Fatalf("expected script tag to be escaped, got %q", got)
	}
}

func TestHTMLKeepsEscapedInputEscaped(t *testing.T) {
	got, err := HTML("a &lt;b&gt; c")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.Contains(got, "<b>") {
		t.Fatalf("expected already-escaped input to stay escaped, got %q", got)
	}
}

func TestHTMLEmptyInput(t *testing.T) {
	got, err := HTML("")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if strings.TrimSpace(got) != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
