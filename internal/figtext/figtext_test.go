package figtext

import (
	"errors"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"empty", "", ""},
		{"terminator", `label\001`, "label"},
		{"backslash", `a\\b`, `a\b`},
		{"octal ascii", `\101BC`, "ABC"},
		{"latin1", `caf\351`, "café"},
		{"degree", `90\260`, "90°"},
		{"escaped backslash then digits", `\\101`, `\101`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.in)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecode_BadEscape(t *testing.T) {
	for _, in := range []string{`\`, `a\9`, `\12`, `\x41`, `\777`} {
		if _, err := Decode(in); !errors.Is(err, ErrBadEscape) {
			t.Errorf("Decode(%q) error = %v, want ErrBadEscape", in, err)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`a\b`, `a\\b`},
		{"café", `caf\351`},
		{"tab\there", `tab\011here`},
	}
	for _, tt := range tests {
		got, err := Encode(tt.in)
		if err != nil {
			t.Fatalf("Encode(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Encode(%q) = %q, want %q", tt.in, got, tt.want)
		}
		back, err := Decode(got)
		if err != nil || back != tt.in {
			t.Errorf("Decode(Encode(%q)) = %q, %v", tt.in, back, err)
		}
	}
}

func TestEncode_OutsideLatin1(t *testing.T) {
	if _, err := Encode("snow ☃"); err == nil {
		t.Error("Encode of a non-Latin-1 rune should fail")
	}
}
