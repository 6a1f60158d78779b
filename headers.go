package hxkit

import (
	"net/http"
	"strings"
)

// Request headers set by the HTMX client.
const (
	HeaderHXRequest        = "HX-Request"
	HeaderHXBoosted        = "HX-Boosted"
	HeaderHXHistoryRestore = "HX-History-Restore-Request"
	HeaderHXPrompt         = "HX-Prompt"
	HeaderHXTarget         = "HX-Target"
	HeaderHXTrigger        = "HX-Trigger"
	HeaderHXTriggerName    = "HX-Trigger-Name"
	HeaderHXCurrentURL     = "HX-Current-URL"
)

// Response headers interpreted by the HTMX client.
const (
	HeaderHXLocation           = "HX-Location"
	HeaderHXPushURL            = "HX-Push-Url"
	HeaderHXRedirect           = "HX-Redirect"
	HeaderHXRefresh            = "HX-Refresh"
	HeaderHXReplaceURL         = "HX-Replace-Url"
	HeaderHXReswap             = "HX-Reswap"
	HeaderHXRetarget           = "HX-Retarget"
	HeaderHXReselect           = "HX-Reselect"
	HeaderHXTriggerAfterSwap   = "HX-Trigger-After-Swap"
	HeaderHXTriggerAfterSettle = "HX-Trigger-After-Settle"
)

// IsHTMX returns true if the request originated from HTMX.
//
// HTMX sends HX-Request: true on all requests. This is the fragment/full
// distinction AdaptiveRequest builds on.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// IsBoosted returns true if the request is a boosted navigation (hx-boost).
func IsBoosted(r *http.Request) bool {
	return r.Header.Get(HeaderHXBoosted) == "true"
}

// IsHistoryRestore returns true for history restoration requests.
func IsHistoryRestore(r *http.Request) bool {
	return r.Header.Get(HeaderHXHistoryRestore) == "true"
}

// CurrentURL returns the URL the browser is currently on (not the request
// URL). Empty for non-HTMX requests.
func CurrentURL(r *http.Request) string {
	return r.Header.Get(HeaderHXCurrentURL)
}

// PromptResponse returns the user's answer to an hx-prompt dialog.
func PromptResponse(r *http.Request) string {
	return r.Header.Get(HeaderHXPrompt)
}

// TriggerID returns the id of the element that triggered the request.
func TriggerID(r *http.Request) string {
	return r.Header.Get(HeaderHXTrigger)
}

// TriggerName returns the name of the element that triggered the request.
//
// Useful for form handlers that need to know which submit button fired.
func TriggerName(r *http.Request) string {
	return r.Header.Get(HeaderHXTriggerName)
}

// TargetID returns the id of the element that will receive the response.
func TargetID(r *http.Request) string {
	return r.Header.Get(HeaderHXTarget)
}

// SetRedirect makes HTMX perform a client-side redirect to the URL.
func SetRedirect(w http.ResponseWriter, url string) {
	w.Header().Set(HeaderHXRedirect, url)
}

// SetRefresh makes HTMX do a full page refresh.
func SetRefresh(w http.ResponseWriter) {
	w.Header().Set(HeaderHXRefresh, "true")
}

// SetPushURL pushes a URL into browser history ("false" to prevent).
func SetPushURL(w http.ResponseWriter, url string) {
	w.Header().Set(HeaderHXPushURL, url)
}

// SetReplaceURL replaces the current history entry ("false" to prevent).
func SetReplaceURL(w http.ResponseWriter, url string) {
	w.Header().Set(HeaderHXReplaceURL, url)
}

// SetRetarget redirects the response into a different element.
func SetRetarget(w http.ResponseWriter, selector string) {
	w.Header().Set(HeaderHXRetarget, selector)
}

// SetReswap overrides the element's swap specification for this response.
func SetReswap(w http.ResponseWriter, s Swap) {
	w.Header().Set(HeaderHXReswap, s.String())
}

// SetReselect selects a subset of the response to swap in.
func SetReselect(w http.ResponseWriter, selector string) {
	w.Header().Set(HeaderHXReselect, selector)
}

// SetTriggerEvent fires client-side events when the response arrives.
// Multiple events are comma-joined.
func SetTriggerEvent(w http.ResponseWriter, events ...string) {
	w.Header().Set(HeaderHXTrigger, strings.Join(events, ", "))
}

// SetTriggerAfterSwap fires client-side events after the swap completes.
func SetTriggerAfterSwap(w http.ResponseWriter, events ...string) {
	w.Header().Set(HeaderHXTriggerAfterSwap, strings.Join(events, ", "))
}

// SetTriggerAfterSettle fires client-side events after the settle phase.
func SetTriggerAfterSettle(w http.ResponseWriter, events ...string) {
	w.Header().Set(HeaderHXTriggerAfterSettle, strings.Join(events, ", "))
}
