package render

import (
	"strings"
	"testing"
)

func TestMarkdownRendersBold(t *testing.T) {
	out, err := MarkdownWithWidth("Do **this** now", 60)
	if err != nil {
		t.Fatalf("MarkdownWithWidth returned error: %v", err)
	}
	if !strings.Contains(out, "this") {
		t.Errorf("rendered output lost the text: %q", out)
	}
	if strings.Contains(out, "**") {
		t.Errorf("rendered output still contains bold markers: %q", out)
	}
}

func TestMarkdownRendersBullets(t *testing.T) {
	out, err := MarkdownWithWidth("* first\n* second", 60)
	if err != nil {
		t.Fatalf("MarkdownWithWidth returned error: %v", err)
	}
	if !strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Errorf("bullet items missing from output: %q", out)
	}
}

func TestMarkdownPoolReuse(t *testing.T) {
	opts := DefaultOptions().WithWidth(50)

	for i := 0; i < 5; i++ {
		out, err := Markdown("plain text", opts)
		if err != nil {
			t.Fatalf("render %d returned error: %v", i, err)
		}
		if !strings.Contains(out, "plain text") {
			t.Errorf("render %d lost content: %q", i, out)
		}
	}
}

func TestOptionsBuilders(t *testing.T) {
	opts := DefaultOptions().WithWidth(42).WithStyle("light")

	if opts.Width != 42 {
		t.Errorf("Width = %d, want 42", opts.Width)
	}
	if opts.Style != "light" {
		t.Errorf("Style = %q, want light", opts.Style)
	}

	// Builders must not mutate the original
	if DefaultOptions().Width != 80 {
		t.Error("DefaultOptions was mutated")
	}
}

func TestPoolKeyDistinguishesOptions(t *testing.T) {
	a := poolKey(DefaultOptions())
	b := poolKey(DefaultOptions().WithWidth(40))

	if a == b {
		t.Error("pool keys collide for different widths")
	}
}
