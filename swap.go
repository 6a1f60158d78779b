package hxkit

import (
	"strconv"
	"strings"
	"time"
)

// SwapMode defines HTMX swap strategies for how response HTML replaces the target.
//
// Each mode corresponds to an HTMX hx-swap value. Custom strategies are
// expressed as SwapMode("...") and rendered verbatim.
//
// See https://htmx.org/attributes/hx-swap/ for visual examples.
type SwapMode string

const (
	// SwapOuter replaces the entire element including its tag (outerHTML).
	SwapOuter SwapMode = "outerHTML"

	// SwapInner replaces only the element's contents, preserving the outer tag (innerHTML).
	SwapInner SwapMode = "innerHTML"

	// SwapBeforeEnd appends the response to the end of the target's contents (before closing tag).
	// Useful for adding items to lists.
	SwapBeforeEnd SwapMode = "beforeend"

	// SwapAfterEnd inserts the response after the target element (as next sibling).
	SwapAfterEnd SwapMode = "afterend"

	// SwapBeforeBegin inserts the response before the target element (as previous sibling).
	SwapBeforeBegin SwapMode = "beforebegin"

	// SwapAfterBegin prepends the response to the start of the target's contents (after opening tag).
	// Useful for prepending items to lists.
	SwapAfterBegin SwapMode = "afterbegin"

	// SwapDelete removes the target element entirely.
	// Response content is ignored.
	SwapDelete SwapMode = "delete"

	// SwapNone performs no swap - response is discarded.
	// Useful for actions with only side effects or when using events.
	SwapNone SwapMode = "none"
)

// SwapModifier is one key:value token appended after the swap strategy.
//
// Construct via Transition, SwapDelay, SettleDelay, IgnoreTitle, Scroll
// and Show. Values pass through verbatim; no validation is performed.
type SwapModifier struct {
	token string
}

func (m SwapModifier) String() string { return m.token }

// Transition requests (or suppresses) the View Transitions API for the swap.
func Transition(on bool) SwapModifier {
	return SwapModifier{token: "transition:" + strconv.FormatBool(on)}
}

// SwapDelay waits for the duration before swapping the response in.
func SwapDelay(d time.Duration) SwapModifier {
	return SwapModifier{token: "swap:" + millis(d)}
}

// SettleDelay waits for the duration between swap and settle.
func SettleDelay(d time.Duration) SwapModifier {
	return SwapModifier{token: "settle:" + millis(d)}
}

// IgnoreTitle controls whether a <title> in the response updates the page title.
func IgnoreTitle(on bool) SwapModifier {
	return SwapModifier{token: "ignoreTitle:" + strconv.FormatBool(on)}
}

// Scroll scrolls the target after the swap ("top", "bottom", or a
// "selector:top" form).
func Scroll(target string) SwapModifier {
	return SwapModifier{token: "scroll:" + target}
}

// Show scrolls the viewport so the target is shown after the swap.
func Show(target string) SwapModifier {
	return SwapModifier{token: "show:" + target}
}

// Swap is a complete hx-swap specification: one base strategy plus an
// ordered modifier list.
//
// Swap is an immutable value. Builder methods return a copy with the
// modifier appended, so chained helpers accumulate onto a single list and
// the base token is emitted exactly once:
//
//	hxkit.NewSwap(hxkit.SwapInner).Transition(true).SwapDelay(100 * time.Millisecond)
//	// "innerHTML transition:true swap:100ms"
//
// Duplicate modifiers are kept and emitted in insertion order; HTMX's own
// parser resolves conflicts.
type Swap struct {
	mode SwapMode
	mods []SwapModifier
}

// NewSwap returns a swap with the given base strategy and no modifiers.
func NewSwap(mode SwapMode) Swap {
	return Swap{mode: mode}
}

// Mode returns the base strategy.
func (s Swap) Mode() SwapMode { return s.mode }

// With returns a copy with the modifiers appended in order.
func (s Swap) With(mods ...SwapModifier) Swap {
	next := make([]SwapModifier, 0, len(s.mods)+len(mods))
	next = append(next, s.mods...)
	next = append(next, mods...)
	return Swap{mode: s.mode, mods: next}
}

// Transition appends a transition modifier.
func (s Swap) Transition(on bool) Swap { return s.With(Transition(on)) }

// SwapDelay appends a swap-delay modifier.
func (s Swap) SwapDelay(d time.Duration) Swap { return s.With(SwapDelay(d)) }

// SettleDelay appends a settle-delay modifier.
func (s Swap) SettleDelay(d time.Duration) Swap { return s.With(SettleDelay(d)) }

// IgnoreTitle appends an ignoreTitle modifier.
func (s Swap) IgnoreTitle(on bool) Swap { return s.With(IgnoreTitle(on)) }

// Scroll appends a scroll modifier.
func (s Swap) Scroll(target string) Swap { return s.With(Scroll(target)) }

// Show appends a show modifier.
func (s Swap) Show(target string) Swap { return s.With(Show(target)) }

// String renders the swap in HTMX's hx-swap micro-syntax: the base token
// followed by each modifier, space-separated.
func (s Swap) String() string {
	if len(s.mods) == 0 {
		return string(s.mode)
	}

	var sb strings.Builder
	sb.WriteString(string(s.mode))
	for _, m := range s.mods {
		sb.WriteByte(' ')
		sb.WriteString(m.token)
	}
	return sb.String()
}
