// Package hxkit provides a typed model for composing HTMX behavioral
// attributes and a page-shell builder for serving both full documents and
// HTMX fragments from the same handlers.
//
// HTMX drives interactivity through a compact string micro-syntax embedded
// in hx-* attributes. Writing those strings by hand is error-prone: a typo
// in "keyup[key=='Enter'] delay:300ms once" is silently ignored by the
// client. hxkit models triggers and swaps as immutable values that render
// to exactly the syntax HTMX parses.
//
// # Triggers
//
// Triggers compose left to right - each helper wraps the previous
// expression and appends its suffix:
//
//	t := hxkit.Once(hxkit.Delay(300*time.Millisecond, hxkit.WithKey("Enter", hxkit.KeyUp)))
//	t.String() // "keyup[key=='Enter'] delay:300ms once"
//
// Custom events are just Event values: hxkit.Event("intersect").
//
// # Swaps
//
// Swaps accumulate modifiers onto a base strategy. Chained helpers extend
// one modifier list - the base token is never repeated:
//
//	s := hxkit.NewSwap(hxkit.SwapInner).Transition(true).SwapDelay(100 * time.Millisecond)
//	s.String() // "innerHTML transition:true swap:100ms"
//
// # Attributes
//
// Every builder in the package produces templ.Attributes, so values spread
// directly into templ templates or hand-written components:
//
//	attrs := hxkit.Merge(
//	    hxkit.Get("/search"),
//	    hxkit.TriggerAttr(hxkit.Delay(300*time.Millisecond, hxkit.KeyUp)),
//	    hxkit.Target("#results"),
//	)
//
// # Layouts and fragments
//
// A Layout is an immutable page-shell configuration. Build once at startup,
// apply per request:
//
//	page := hxkit.NewLayout().
//	    Title("Dashboard").
//	    Styles("/static/app.css").
//	    Build()
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    hxkit.Render(w, r, hxkit.AdaptiveRequest(r, page, dashboard))
//	}
//
// AdaptiveRequest returns the bare content for HTMX-originated requests and
// the full document for direct navigation, so one handler serves both.
//
// # State tokens
//
// For actions that need server-side state in their URLs, a Codec encodes
// values as signed (visible, tamper-proof) or sealed (opaque) tokens that
// ActionAttrs wires into hx-get URLs or hx-vals.
//
// # Design
//
// All values are immutable and every renderer is a total, pure function.
// No validation is performed on key names, selectors or filter expressions;
// strings pass through verbatim, matching HTMX's own permissive parser.
package hxkit
