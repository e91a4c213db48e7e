package exercise

import "testing"

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"functions-and-relations", "functions-and-relations"},
		{"Functions And Relations", "functions-and-relations"},
		{"  Domain & Range!  ", "domain-range"},
		{"what__is--a_function", "what-is-a-function"},
		{"---", ""},
		{"", ""},
		{"Vertical Line Test (part 2)", "vertical-line-test-part-2"},
	}
	for _, tt := range tests {
		if got := NormalizeSlug(tt.in); got != tt.want {
			t.Errorf("NormalizeSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSlug_Idempotent(t *testing.T) {
	inputs := []string{"Functions And Relations", "domain-range", "x-2"}
	for _, in := range inputs {
		once := NormalizeSlug(in)
		if twice := NormalizeSlug(once); twice != once {
			t.Errorf("NormalizeSlug not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}

func TestTitleFromSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"functions-and-relations", "Functions And Relations"},
		{"determine-function", "Determine Function"},
		{"x", "X"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleFromSlug(tt.in); got != tt.want {
			t.Errorf("TitleFromSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayTitle_ExplicitWins(t *testing.T) {
	m := &Metadata{Slug: "determine-function", Title: "Review - Function or Not"}
	if got := m.DisplayTitle(); got != "Review - Function or Not" {
		t.Fatalf("got %q", got)
	}
}

func TestDisplayTitle_DerivedFromSlug(t *testing.T) {
	m := &Metadata{Slug: "functions-and-relations"}
	if got := m.DisplayTitle(); got != "Functions And Relations" {
		t.Fatalf("got %q", got)
	}
}

func TestDisplayVariant(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"a", "(a)"},
		{"A", "(a)"},
		{"(B)", "(b)"},
	}
	for _, tt := range tests {
		m := &Metadata{Variant: tt.in}
		if got := m.DisplayVariant(); got != tt.want {
			t.Errorf("DisplayVariant(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplaySection(t *testing.T) {
	section := &Metadata{Source: SourceSection, Section: "1.1"}
	if got := section.DisplaySection(); got != "1.1" {
		t.Fatalf("got %q", got)
	}
	review := &Metadata{Source: SourceReview, Section: "ignored"}
	if got := review.DisplaySection(); got != " " {
		t.Fatalf("review section should render as a single space, got %q", got)
	}
}

func TestParseSource(t *testing.T) {
	if s, err := ParseSource(" Section "); err != nil || s != SourceSection {
		t.Fatalf("got %q, %v", s, err)
	}
	if s, err := ParseSource("review"); err != nil || s != SourceReview {
		t.Fatalf("got %q, %v", s, err)
	}
	if _, err := ParseSource("homework"); err == nil {
		t.Fatal("expected error for unknown source")
	}
}
