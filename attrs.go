package hxkit

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
)

// Attribute constructors. Each returns a single-entry templ.Attributes so
// values spread directly into templ templates or hand-written components.
// Boolean concerns render the literal strings "true"/"false"; flag
// attributes (Disable, HistoryElt, Preserve) render with an empty value.
// Inputs are not validated or escaped here - they pass through verbatim.

// attr builds a one-entry attribute set.
func attr(name, value string) templ.Attributes {
	return templ.Attributes{name: value}
}

func boolAttr(name string, on bool) templ.Attributes {
	return attr(name, strconv.FormatBool(on))
}

// Get issues a GET to the URL when the element triggers.
func Get(url string) templ.Attributes { return attr("hx-get", url) }

// Post issues a POST to the URL when the element triggers.
func Post(url string) templ.Attributes { return attr("hx-post", url) }

// Put issues a PUT to the URL when the element triggers.
func Put(url string) templ.Attributes { return attr("hx-put", url) }

// Patch issues a PATCH to the URL when the element triggers.
func Patch(url string) templ.Attributes { return attr("hx-patch", url) }

// Delete issues a DELETE to the URL when the element triggers.
func Delete(url string) templ.Attributes { return attr("hx-delete", url) }

// TriggerAttr renders a trigger expression as hx-trigger.
func TriggerAttr(t Trigger) templ.Attributes { return attr("hx-trigger", t.String()) }

// SwapAttr renders a swap expression as hx-swap.
func SwapAttr(s Swap) templ.Attributes { return attr("hx-swap", s.String()) }

// Target directs the response into the element matching the selector.
func Target(selector string) templ.Attributes { return attr("hx-target", selector) }

// Confirm shows a confirmation dialog before issuing the request.
func Confirm(text string) templ.Attributes { return attr("hx-confirm", text) }

// Prompt shows a prompt dialog; the response is sent in HX-Prompt.
func Prompt(text string) templ.Attributes { return attr("hx-prompt", text) }

// Indicator marks the element shown while the request is in flight.
func Indicator(selector string) templ.Attributes { return attr("hx-indicator", selector) }

// PushURL pushes a URL into browser history ("true", "false" or a URL).
func PushURL(url string) templ.Attributes { return attr("hx-push-url", url) }

// ReplaceURL replaces the current history entry ("true", "false" or a URL).
func ReplaceURL(url string) templ.Attributes { return attr("hx-replace-url", url) }

// Select extracts the matching subset of the response before swapping.
func Select(selector string) templ.Attributes { return attr("hx-select", selector) }

// SelectOOB selects response fragments for out-of-band swapping.
func SelectOOB(selector string) templ.Attributes { return attr("hx-select-oob", selector) }

// SwapOOB marks the element for out-of-band swapping by id.
func SwapOOB() templ.Attributes { return attr("hx-swap-oob", "") }

// Vals adds request parameters as JSON in hx-vals.
//
// The value is marshalled with encoding/json - HTMX parses hx-vals as a
// JSON object client-side. Marshal failures yield an empty object.
func Vals(v any) templ.Attributes {
	data, err := json.Marshal(v)
	if err != nil {
		return attr("hx-vals", "{}")
	}
	return attr("hx-vals", string(data))
}

// Include adds values from elements matching the selector to the request.
func Include(selector string) templ.Attributes { return attr("hx-include", selector) }

// Params filters which parameters are submitted ("*", "none", "not a,b", "a,b").
func Params(spec string) templ.Attributes { return attr("hx-params", spec) }

// HeadersAttr adds request headers as JSON in hx-headers.
func HeadersAttr(v any) templ.Attributes {
	data, err := json.Marshal(v)
	if err != nil {
		return attr("hx-headers", "{}")
	}
	return attr("hx-headers", string(data))
}

// Sync coordinates requests between elements ("closest form:abort" etc).
func Sync(spec string) templ.Attributes { return attr("hx-sync", spec) }

// Ext enables HTMX extensions on the element subtree.
func Ext(names string) templ.Attributes { return attr("hx-ext", names) }

// Encoding overrides the request encoding (e.g. "multipart/form-data").
func Encoding(enc string) templ.Attributes { return attr("hx-encoding", enc) }

// DisabledElt disables the matching elements while the request is in flight.
func DisabledElt(selector string) templ.Attributes { return attr("hx-disabled-elt", selector) }

// Disinherit blocks named attributes ("*" for all) from child inheritance.
func Disinherit(attrs string) templ.Attributes { return attr("hx-disinherit", attrs) }

// Inherit re-enables inheritance of the named attributes under hx-disinherit.
func Inherit(attrs string) templ.Attributes { return attr("hx-inherit", attrs) }

// On attaches an inline event handler via hx-on (e.g. On("click", "alert(1)")
// or On("htmx:after-request", "...")).
func On(event, script string) templ.Attributes { return attr("hx-on:"+event, script) }

// Boost converts child links and forms into HTMX requests.
func Boost(on bool) templ.Attributes { return boolAttr("hx-boost", on) }

// History controls whether the element's state is saved in the history cache.
func History(on bool) templ.Attributes { return boolAttr("hx-history", on) }

// Validate forces HTML5 validation before the request is issued.
func Validate(on bool) templ.Attributes { return boolAttr("hx-validate", on) }

// Disable turns off HTMX processing for the element subtree.
func Disable() templ.Attributes { return attr("hx-disable", "") }

// HistoryElt marks the element whose innerHTML is snapshotted into history.
func HistoryElt() templ.Attributes { return attr("hx-history-elt", "") }

// Preserve keeps the element unchanged across swaps.
func Preserve() templ.Attributes { return attr("hx-preserve", "") }

// Merge combines attribute sets into one, later sets winning on conflicts.
func Merge(sets ...templ.Attributes) templ.Attributes {
	merged := templ.Attributes{}
	for _, set := range sets {
		for k, v := range set {
			merged[k] = v
		}
	}
	return merged
}

// ActionAttrs builds the verb attribute for an action URL carrying an
// encoded state token.
//
// GET actions place the token in the URL query so they stay cacheable and
// bookmarkable. Mutating verbs keep the URL clean and carry the token via
// hx-vals instead:
//
//	token, _ := codec.Sign(props)
//	attrs := hxkit.Merge(
//	    hxkit.ActionAttrs("/todos/toggle", http.MethodPost, token),
//	    hxkit.Target("#todo-42"),
//	)
func ActionAttrs(path, method, token string) templ.Attributes {
	if method == http.MethodGet || method == "" {
		return Get(ActionURL(path, token))
	}

	attrs := templ.Attributes{}
	switch method {
	case http.MethodPost:
		attrs["hx-post"] = path
	case http.MethodPut:
		attrs["hx-put"] = path
	case http.MethodPatch:
		attrs["hx-patch"] = path
	case http.MethodDelete:
		attrs["hx-delete"] = path
	default:
		attrs["hx-post"] = path
	}
	if token != "" {
		data, _ := json.Marshal(map[string]string{"s": token})
		attrs["hx-vals"] = string(data)
	}
	return attrs
}

// ActionURL appends a state token to an action path as the "s" query
// parameter. Tokens are base64url and need no escaping.
func ActionURL(path, token string) string {
	if token == "" {
		return path
	}
	return path + "?s=" + token
}
