package handler

import (
	"strings"
	"testing"
)

func TestStatusPageRender(t *testing.T) {
	page, err := NewStatusPage(false)
	if err != nil {
		t.Fatalf("creating status page: %v", err)
	}

	body, err := page.Render(PageData{
		Hostname:    "web-01",
		CurrentTime: "2026-08-30 12:00:00",
		Port:        "5000",
		Environment: "production",
	})
	if err != nil {
		t.Fatalf("rendering status page: %v", err)
	}

	html := string(body)
	for _, want := range []string{"RUNNING", "web-01", "2026-08-30 12:00:00", "5000", "production", "/api/health", "/api/info"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page does not contain %q", want)
		}
	}
}

func TestStatusPageEscapesValues(t *testing.T) {
	page, err := NewStatusPage(true)
	if err != nil {
		t.Fatalf("creating status page: %v", err)
	}

	body, err := page.Render(PageData{
		Hostname:    "<script>alert(1)</script>",
		CurrentTime: "2026-08-30 12:00:00",
		Port:        "5000",
		Environment: "production",
	})
	if err != nil {
		t.Fatalf("rendering status page: %v", err)
	}

	if strings.Contains(string(body), "<script>alert(1)</script>") {
		t.Error("hostname was not escaped")
	}
}

func TestMinifyCSS(t *testing.T) {
	minified, err := minifyCSS(pageCSS)
	if err != nil {
		t.Fatalf("minifying css: %v", err)
	}
	if len(minified) >= len(pageCSS) {
		t.Errorf("minified css (%d bytes) is not smaller than source (%d bytes)", len(minified), len(pageCSS))
	}
	if !strings.Contains(minified, ".badge") {
		t.Error("minified css lost the .badge rule")
	}
}

func TestStatusPageDebugSkipsMinification(t *testing.T) {
	debugPage, err := NewStatusPage(true)
	if err != nil {
		t.Fatalf("creating debug status page: %v", err)
	}
	prodPage, err := NewStatusPage(false)
	if err != nil {
		t.Fatalf("creating prod status page: %v", err)
	}

	if len(prodPage.styles) >= len(debugPage.styles) {
		t.Errorf("prod styles (%d bytes) should be smaller than debug styles (%d bytes)", len(prodPage.styles), len(debugPage.styles))
	}
}
