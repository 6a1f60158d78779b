package hxkit

import (
	"net/http"

	"github.com/a-h/templ"
)

// Adaptive chooses between bare content and the full page shell.
//
// The content function is evaluated exactly once regardless of branch.
// When fragment is true the evaluated content is returned as-is, for HTMX
// to swap into the existing page; otherwise it is wrapped by the page
// function into a complete document.
//
// How the boolean is derived is the caller's business - AdaptiveRequest
// covers the common case of reading it off an incoming request.
func Adaptive(fragment bool, page PageFunc, content func() templ.Component) templ.Component {
	c := content()
	if fragment {
		return c
	}
	return page(c)
}

// AdaptiveRequest is Adaptive with the fragment flag read from the
// request's HX-Request header.
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    hxkit.Render(w, r, hxkit.AdaptiveRequest(r, page, func() templ.Component {
//	        return dashboard(stats)
//	    }))
//	}
func AdaptiveRequest(r *http.Request, page PageFunc, content func() templ.Component) templ.Component {
	return Adaptive(IsHTMX(r), page, content)
}

// Render writes a component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context.
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}
