package hxkit

import (
	"strconv"
	"time"
)

// Trigger is a node in an hx-trigger expression tree.
//
// Leaves are Event values; modifier helpers (Once, Delay, Throttle, From,
// Filtered, WithKey) wrap an existing Trigger and return a new one. Trees
// are immutable - every helper returns a fresh value and never alters its
// argument.
//
// Helpers take their own arguments first and the base expression last, so
// expressions read outer-to-inner left to right:
//
//	hxkit.Once(hxkit.Delay(300*time.Millisecond, hxkit.KeyUp))
//
// The last-applied modifier contributes the outermost suffix:
// "keyup delay:300ms once".
type Trigger interface {
	// String renders the trigger in HTMX's hx-trigger micro-syntax.
	String() string

	isTrigger()
}

// Event is a leaf DOM event trigger.
//
// The constants cover the events HTMX handlers most commonly bind to. Any
// other event (including HTMX extension events like "intersect" or
// "revealed") is expressed as Event("name") and rendered verbatim.
type Event string

const (
	Click     Event = "click"
	Submit    Event = "submit"
	Change    Event = "change"
	KeyUp     Event = "keyup"
	KeyDown   Event = "keydown"
	MouseOver Event = "mouseover"
	MouseOut  Event = "mouseout"

	// Load fires once when the element first appears in the DOM.
	Load Event = "load"
)

func (e Event) String() string { return string(e) }

func (Event) isTrigger() {}

// filtered appends a bracketed JavaScript filter expression: base[expr].
type filtered struct {
	base Trigger
	expr string
}

func (f filtered) String() string { return f.base.String() + "[" + f.expr + "]" }

func (filtered) isTrigger() {}

// Filtered restricts a trigger with a JavaScript filter expression.
//
// The expression is emitted verbatim inside brackets and evaluated by the
// browser against the event:
//
//	hxkit.Filtered("ctrlKey&&shiftKey", hxkit.Click) // "click[ctrlKey&&shiftKey]"
func Filtered(expr string, t Trigger) Trigger {
	return filtered{base: t, expr: expr}
}

// WithKey restricts a keyboard trigger to a single key.
//
// Shorthand for Filtered with a key equality check:
//
//	hxkit.WithKey("Enter", hxkit.KeyUp) // "keyup[key=='Enter']"
func WithKey(key string, t Trigger) Trigger {
	return filtered{base: t, expr: "key=='" + key + "'"}
}

// once fires the trigger a single time: base once.
type once struct {
	base Trigger
}

func (o once) String() string { return o.base.String() + " once" }

func (once) isTrigger() {}

// Once makes a trigger fire at most one time.
func Once(t Trigger) Trigger {
	return once{base: t}
}

// delayed waits before issuing the request: base delay:Nms.
type delayed struct {
	base Trigger
	d    time.Duration
}

func (d delayed) String() string { return d.base.String() + " delay:" + millis(d.d) }

func (delayed) isTrigger() {}

// Delay waits for the duration after the event before issuing the request.
// If the event fires again the countdown resets (debounce).
func Delay(d time.Duration, t Trigger) Trigger {
	return delayed{base: t, d: d}
}

// throttled rate-limits the trigger: base throttle:Nms.
type throttled struct {
	base Trigger
	d    time.Duration
}

func (t throttled) String() string { return t.base.String() + " throttle:" + millis(t.d) }

func (throttled) isTrigger() {}

// Throttle issues the request at most once per duration; events arriving
// inside the window are dropped rather than queued.
func Throttle(d time.Duration, t Trigger) Trigger {
	return throttled{base: t, d: d}
}

// from listens for the event on another element: base from:selector.
type from struct {
	base     Trigger
	selector string
}

func (f from) String() string { return f.base.String() + " from:" + f.selector }

func (from) isTrigger() {}

// From listens for the event on the element matching the CSS selector
// instead of the element carrying the attribute.
func From(selector string, t Trigger) Trigger {
	return from{base: t, selector: selector}
}

// millis renders a duration as HTMX's integer-millisecond form ("300ms").
// Sub-millisecond remainders truncate toward zero.
func millis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}
