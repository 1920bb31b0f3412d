package theme

import (
	"regexp"
	"testing"
)

var hexRe = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestFromStyleUnknownFallsBack(t *testing.T) {
	if got := FromStyle("no-such-style"); got != Default() {
		t.Fatalf("got %+v, want default palette", got)
	}
}

func TestFromStyleProducesHexColors(t *testing.T) {
	for _, name := range []string{"github-dark", "monokai", "github"} {
		t.Run(name, func(t *testing.T) {
			if !Exists(name) {
				t.Skipf("style %q not registered", name)
			}
			p := FromStyle(name)
			for field, v := range map[string]string{
				"Bg": p.Bg, "Fg": p.Fg, "Border": p.Border, "Dim": p.Dim,
				"Muted": p.Muted, "Accent": p.Accent, "Error": p.Error,
			} {
				if !hexRe.MatchString(v) {
					t.Errorf("%s = %q, not #rrggbb", field, v)
				}
			}
		})
	}
}

func TestLerpHex(t *testing.T) {
	tests := []struct {
		a, b string
		t    float64
		want string
	}{
		{"#000000", "#ffffff", 0, "#000000"},
		{"#000000", "#ffffff", 1, "#ffffff"},
		{"#000000", "#c8c8c8", 0.5, "#646464"},
		{"bogus", "#ffffff", 1, "#ffffff"},
	}
	for _, tt := range tests {
		if got := lerpHex(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("lerpHex(%s, %s, %v) = %s, want %s", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}
