package hxkit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func TestAdaptiveFragment(t *testing.T) {
	page := NewLayout().Title("Full Page").Build()
	out := renderString(t, Adaptive(true, page, func() templ.Component {
		return templ.Raw("<main>content</main>")
	}))

	if out != "<main>content</main>" {
		t.Errorf("fragment output = %q, want bare content", out)
	}
	if strings.Contains(out, "<title>") {
		t.Errorf("fragment output contains layout markup:\n%s", out)
	}
}

func TestAdaptiveFullPage(t *testing.T) {
	page := NewLayout().Title("Full Page").Build()
	out := renderString(t, Adaptive(false, page, func() templ.Component {
		return templ.Raw("<main>content</main>")
	}))

	if !strings.Contains(out, "<title>Full Page</title>") {
		t.Errorf("full page missing layout head:\n%s", out)
	}
	if !strings.Contains(out, "<body><main>content</main></body>") {
		t.Errorf("full page missing content:\n%s", out)
	}
}

func TestAdaptiveEvaluatesContentOnce(t *testing.T) {
	page := NewLayout().Build()

	for _, fragment := range []bool{true, false} {
		calls := 0
		c := Adaptive(fragment, page, func() templ.Component {
			calls++
			return templ.Raw("<p>x</p>")
		})
		if calls != 1 {
			t.Errorf("fragment=%v: content evaluated %d times, want 1", fragment, calls)
		}
		renderString(t, c)
		if calls != 1 {
			t.Errorf("fragment=%v: render re-evaluated content, calls = %d", fragment, calls)
		}
	}
}

func TestAdaptiveRequest(t *testing.T) {
	page := NewLayout().Build()
	content := func() templ.Component { return templ.Raw("<p>hi</p>") }

	htmxReq := httptest.NewRequest(http.MethodGet, "/", nil)
	htmxReq.Header.Set(HeaderHXRequest, "true")
	if out := renderString(t, AdaptiveRequest(htmxReq, page, content)); out != "<p>hi</p>" {
		t.Errorf("HTMX request output = %q, want bare content", out)
	}

	plainReq := httptest.NewRequest(http.MethodGet, "/", nil)
	out := renderString(t, AdaptiveRequest(plainReq, page, content))
	if !strings.Contains(out, "<!doctype html>") || !strings.Contains(out, "<p>hi</p>") {
		t.Errorf("plain request output missing document or content:\n%s", out)
	}
}

func TestRender(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	if err := Render(w, r, templ.Raw("<p>hello</p>")); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := w.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := w.Body.String(); got != "<p>hello</p>" {
		t.Errorf("body = %q", got)
	}
}
