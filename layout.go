package hxkit

import (
	"context"
	"fmt"
	"html"
	"io"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// Version selects the HTMX client script release loaded by a Layout.
//
// The constants cover the unpkg-published releases this package tracks;
// anything else can be supplied as Version("x.y.z") and is used verbatim.
type Version string

const (
	V1_9_10 Version = "1.9.10"
	V1_9_12 Version = "1.9.12"
	V2_0_0  Version = "2.0.0"
	V2_0_2  Version = "2.0.2"
	V2_0_3  Version = "2.0.3"
	V2_0_4  Version = "2.0.4"
	V2_0_6  Version = "2.0.6"

	// DefaultVersion is used by layouts that don't pick one.
	DefaultVersion = V2_0_6
)

// ScriptURL returns the CDN URL for this release's minified client script.
func (v Version) ScriptURL() string {
	return "https://unpkg.com/htmx.org@" + string(v) + "/dist/htmx.min.js"
}

// PageFunc wraps content nodes into a complete HTML document.
type PageFunc func(content ...templ.Component) templ.Component

// Layout is an immutable page-shell configuration.
//
// Each method returns a modified copy, so a base layout can be shared and
// branched without coordination:
//
//	base := hxkit.NewLayout().Styles("/static/app.css")
//	admin := base.Title("Admin").Styles("/static/admin.css")
//
// Title, Version and BodyAttrs replace on each call; Styles, Scripts and
// Head append. Calling an append method twice concatenates in call order.
type Layout struct {
	title     string
	version   Version
	styles    []string
	scripts   []templ.Component
	head      []templ.Component
	bodyAttrs templ.Attributes
}

// NewLayout returns a layout with no title, no extras and DefaultVersion.
func NewLayout() Layout {
	return Layout{version: DefaultVersion}
}

// Title sets the page title. Last call wins. The empty string renders an
// empty <title> element.
func (l Layout) Title(title string) Layout {
	l.title = title
	return l
}

// Version selects the HTMX client script release. Last call wins.
func (l Layout) Version(v Version) Layout {
	l.version = v
	return l
}

// Styles appends stylesheet URLs, each emitted as a rel=stylesheet link.
func (l Layout) Styles(urls ...string) Layout {
	l.styles = append(slices.Clip(l.styles), urls...)
	return l
}

// Scripts appends extra script components rendered after the HTMX script.
func (l Layout) Scripts(scripts ...templ.Component) Layout {
	l.scripts = append(slices.Clip(l.scripts), scripts...)
	return l
}

// Head appends extra components rendered at the end of <head>.
func (l Layout) Head(nodes ...templ.Component) Layout {
	l.head = append(slices.Clip(l.head), nodes...)
	return l
}

// BodyAttrs sets the attributes carried by <body>. Last call wins. The map
// is copied, so callers may reuse or mutate theirs afterwards.
func (l Layout) BodyAttrs(attrs templ.Attributes) Layout {
	l.bodyAttrs = maps.Clone(attrs)
	return l
}

// Build returns the page function for this configuration.
//
// The head is emitted in fixed order: title, charset meta, viewport meta,
// HTMX script, extra scripts, stylesheet links, head extras. The body
// carries the configured attributes and exactly the content passed at
// apply time, with no wrapping element. An empty content list is valid.
func (l Layout) Build() PageFunc {
	version := l.version
	if version == "" {
		version = DefaultVersion
	}
	scriptURL := version.ScriptURL()

	return func(content ...templ.Component) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			var sb strings.Builder
			sb.WriteString("<!doctype html><html><head><title>")
			sb.WriteString(html.EscapeString(l.title))
			sb.WriteString(`</title><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><script src="`)
			sb.WriteString(html.EscapeString(scriptURL))
			sb.WriteString(`"></script>`)
			if _, err := io.WriteString(w, sb.String()); err != nil {
				return err
			}

			for _, s := range l.scripts {
				if err := s.Render(ctx, w); err != nil {
					return err
				}
			}

			sb.Reset()
			for _, href := range l.styles {
				sb.WriteString(`<link rel="stylesheet" href="`)
				sb.WriteString(html.EscapeString(href))
				sb.WriteString(`">`)
			}
			if _, err := io.WriteString(w, sb.String()); err != nil {
				return err
			}

			for _, h := range l.head {
				if err := h.Render(ctx, w); err != nil {
					return err
				}
			}

			sb.Reset()
			sb.WriteString("</head><body")
			writeAttrs(&sb, l.bodyAttrs)
			sb.WriteString(">")
			if _, err := io.WriteString(w, sb.String()); err != nil {
				return err
			}

			for _, c := range content {
				if err := c.Render(ctx, w); err != nil {
					return err
				}
			}

			_, err := io.WriteString(w, "</body></html>")
			return err
		})
	}
}

// writeAttrs emits attributes in sorted key order so output is
// deterministic. Bool true renders a bare attribute, false renders nothing;
// everything else renders key="value" with the value HTML-escaped.
func writeAttrs(sb *strings.Builder, attrs templ.Attributes) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		switch v := attrs[k].(type) {
		case bool:
			if v {
				sb.WriteByte(' ')
				sb.WriteString(k)
			}
		case string:
			sb.WriteByte(' ')
			sb.WriteString(k)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(v))
			sb.WriteByte('"')
		default:
			sb.WriteByte(' ')
			sb.WriteString(k)
			sb.WriteString(`="`)
			sb.WriteString(html.EscapeString(fmt.Sprint(v)))
			sb.WriteByte('"')
		}
	}
}
