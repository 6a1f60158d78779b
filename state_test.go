package hxkit

import (
	"errors"
	"strings"
	"testing"
)

type todoState struct {
	ID   int64  `msgpack:"id"`
	List string `msgpack:"list"`
}

func TestDecodeStateSigned(t *testing.T) {
	c, err := NewCodec([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewCodec failed: %v", err)
	}

	in := todoState{ID: 42, List: "inbox"}
	token, err := c.Sign(in)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	var out todoState
	if err := DecodeState(c, token, false, &out); err != nil {
		t.Fatalf("DecodeState failed: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestDecodeStateSealed(t *testing.T) {
	c, _ := NewCodec([]byte("test-key"))

	in := todoState{ID: 7, List: "private"}
	token, err := c.Seal(in)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	var out todoState
	if err := DecodeState(c, token, true, &out); err != nil {
		t.Fatalf("DecodeState failed: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestDecodeStateErrorMapping(t *testing.T) {
	c, _ := NewCodec([]byte("test-key"))
	other, _ := NewCodec([]byte("other-key"))

	signed, _ := other.Sign(todoState{ID: 1})
	sealed, _ := other.Seal(todoState{ID: 1})

	tests := []struct {
		name   string
		token  string
		sealed bool
		expect error
	}{
		{"malformed signed", "no-dot-here", false, ErrBadToken},
		{"foreign signature", signed, false, ErrBadSignature},
		{"malformed sealed", "!!!", true, ErrBadToken},
		{"foreign sealed", sealed, true, ErrOpenFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out todoState
			err := DecodeState(c, tt.token, tt.sealed, &out)
			if !errors.Is(err, tt.expect) {
				t.Errorf("DecodeState error = %v, want %v", err, tt.expect)
			}
			if !IsTokenError(err) {
				t.Errorf("IsTokenError(%v) = false, want true", err)
			}
		})
	}
}

func TestIsTokenErrorRejectsOthers(t *testing.T) {
	if IsTokenError(nil) {
		t.Error("IsTokenError(nil) = true")
	}
	if IsTokenError(errors.New("boom")) {
		t.Error("IsTokenError(unrelated) = true")
	}
}

func TestSignedTokenEmbedsInActionURL(t *testing.T) {
	c, _ := NewCodec([]byte("test-key"))
	token, _ := c.Sign(todoState{ID: 42, List: "inbox"})

	attrs := ActionAttrs("/todos/detail", "", token)
	url, _ := attrs["hx-get"].(string)
	if !strings.HasPrefix(url, "/todos/detail?s=") {
		t.Fatalf("hx-get = %q, want token query", url)
	}

	var out todoState
	if err := DecodeState(c, strings.TrimPrefix(url, "/todos/detail?s="), false, &out); err != nil {
		t.Fatalf("DecodeState failed: %v", err)
	}
	if out.ID != 42 || out.List != "inbox" {
		t.Errorf("round trip = %+v", out)
	}
}
