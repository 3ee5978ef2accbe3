package nlp

import "testing"

func TestNormalizeStripsURLsAndMarkup(t *testing.T) {
	got := Normalize("Check THIS out http://example.com/x?y=1 [removed] please!")
	want := "check this out please!"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNormalizeCollapsesWhitespaceAndSymbols(t *testing.T) {
	got := Normalize("  Hello\t@world &  #friends  ")
	want := "hello world friends"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNormalizeKeepsBasicPunctuation(t *testing.T) {
	got := Normalize("Why so serious?! It's fine, really.")
	want := "why so serious?! it's fine, really."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNormalizeEmptyInputs(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	if got := Normalize("[deleted]"); got != "" {
		t.Fatalf("expected empty for deleted marker, got %q", got)
	}
	if got := Normalize("https://only.a.link"); got != "" {
		t.Fatalf("expected empty for url-only post, got %q", got)
	}
}
