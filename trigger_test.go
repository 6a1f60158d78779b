package hxkit

import (
	"testing"
	"time"
)

func TestEventTokens(t *testing.T) {
	tests := []struct {
		name   string
		event  Event
		expect string
	}{
		{"click", Click, "click"},
		{"submit", Submit, "submit"},
		{"change", Change, "change"},
		{"keyup", KeyUp, "keyup"},
		{"keydown", KeyDown, "keydown"},
		{"mouseover", MouseOver, "mouseover"},
		{"mouseout", MouseOut, "mouseout"},
		{"load", Load, "load"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.String(); got != tt.expect {
				t.Errorf("String() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestCustomEvent(t *testing.T) {
	// Arbitrary event names pass through verbatim, unescaped.
	if got := Event("intersect once").String(); got != "intersect once" {
		t.Errorf("String() = %q, want %q", got, "intersect once")
	}
}

func TestTriggerModifiers(t *testing.T) {
	tests := []struct {
		name    string
		trigger Trigger
		expect  string
	}{
		{"once", Once(Click), "click once"},
		{"delay", Delay(300*time.Millisecond, KeyUp), "keyup delay:300ms"},
		{"throttle", Throttle(500*time.Millisecond, Change), "change throttle:500ms"},
		{"from", From("#submit-btn", Click), "click from:#submit-btn"},
		{"key filter", Filtered("key=='Enter'", KeyUp), "keyup[key=='Enter']"},
		{"with key", WithKey("Enter", KeyUp), "keyup[key=='Enter']"},
		{"delay seconds", Delay(2*time.Second, Click), "click delay:2000ms"},
		{"from body", From("body", Event("htmx:afterSettle")), "htmx:afterSettle from:body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.trigger.String(); got != tt.expect {
				t.Errorf("String() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestTriggerChaining(t *testing.T) {
	// Each helper wraps the previous expression; the last-applied modifier
	// lands as the outermost suffix.
	got := Once(Delay(300*time.Millisecond, WithKey("Enter", KeyUp))).String()
	want := "keyup[key=='Enter'] delay:300ms once"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTriggerChainOrderMatters(t *testing.T) {
	a := Delay(100*time.Millisecond, Once(Click)).String()
	b := Once(Delay(100*time.Millisecond, Click)).String()

	if a != "click once delay:100ms" {
		t.Errorf("delay-last = %q, want %q", a, "click once delay:100ms")
	}
	if b != "click delay:100ms once" {
		t.Errorf("once-last = %q, want %q", b, "click delay:100ms once")
	}
}

func TestTriggerImmutability(t *testing.T) {
	base := Delay(300*time.Millisecond, KeyUp)
	before := base.String()

	Once(base)
	Throttle(time.Second, base)

	if got := base.String(); got != before {
		t.Errorf("base changed after wrapping: %q, want %q", got, before)
	}
}
