package text

import (
	"strings"
	"testing"
)

var allOn = Toggles{CurlyQuotes: true, EmDashes: true, Ellipsis: true}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		toggles Toggles
		want    string
	}{
		{
			name:    "dialog with dash and ellipsis",
			in:      `He said, "hi--there..."`,
			toggles: allOn,
			want:    "He said, “hi—there…”",
		},
		{
			name:    "quote at start of text",
			in:      `"Run," she said.`,
			toggles: allOn,
			want:    "“Run,” she said.",
		},
		{
			name:    "single quotes",
			in:      `He whispered 'now' and left.`,
			toggles: allOn,
			want:    "He whispered ‘now’ and left.",
		},
		{
			name:    "two quoted spans",
			in:      `"One" and "two"`,
			toggles: allOn,
			want:    "“One” and “two”",
		},
		{
			name:    "quote glued to a word is not converted",
			in:      `x"y"`,
			toggles: allOn,
			want:    `x"y"`,
		},
		{
			name:    "every double hyphen becomes em dash",
			in:      "a--b---c",
			toggles: Toggles{EmDashes: true},
			want:    "a—b—-c",
		},
		{
			name:    "ellipsis only",
			in:      `Wait.... "no"`,
			toggles: Toggles{Ellipsis: true},
			want:    `Wait…. "no"`,
		},
		{
			name:    "spaces collapsed regardless of toggles",
			in:      "too   many    spaces",
			toggles: Toggles{},
			want:    "too many spaces",
		},
		{
			name:    "entities decoded",
			in:      "Fish &amp; chips &mdash; &#8220;yum&#8221;",
			toggles: Toggles{},
			want:    "Fish & chips — “yum”",
		},
		{
			name:    "tabs are not collapsed",
			in:      "a\t\tb",
			toggles: allOn,
			want:    "a\t\tb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in, tt.toggles); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_AllTogglesOff(t *testing.T) {
	inputs := []string{
		`He said, "hi--there..."`,
		`'single'   and  "double"`,
		"plain text",
		"a -- b ... c",
	}
	for _, in := range inputs {
		got := Normalize(in, Toggles{})
		for _, sym := range []string{leftDoubleQuote, rightDoubleQuote, leftSingleQuote, rightSingleQuote, emDash, ellipsis} {
			if strings.Contains(got, sym) && !strings.Contains(in, sym) {
				t.Errorf("Normalize(%q) introduced %q: %q", in, sym, got)
			}
		}
		if strings.Contains(got, "  ") {
			t.Errorf("Normalize(%q) = %q still has double spaces", in, got)
		}
	}
}

func TestNormalize_QuotesBeforeDashes(t *testing.T) {
	// closing quote right after "--" or "..." must still pair up
	got := Normalize(`"a--" "b..."`, allOn)
	want := "“a—” “b…”"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	in := `She said, "stop--now..."  Then 'left'.`
	once := Normalize(in, allOn)
	twice := Normalize(once, allOn)
	if once != twice {
		t.Errorf("Normalize is not stable: %q then %q", once, twice)
	}
}

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"no entities", "no entities"},
		{"&lt;tag&gt;", "<tag>"},
		{"&amp;amp;", "&amp;"},
		{"&nbsp;", "\u00a0"},
		{"AT&T", "AT&T"},
	}
	for _, tt := range tests {
		if got := DecodeEntities(tt.in); got != tt.want {
			t.Errorf("DecodeEntities(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
