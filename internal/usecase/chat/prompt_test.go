package chat

import (
	"strings"
	"testing"
)

func TestPromptBuilder_Default(t *testing.T) {
	b, err := NewPromptBuilder("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := b.Build("Laptops:\n- X\n", "a laptop under $1000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"--- Product Database Information ---\nLaptops:\n- X\n",
		"--- Customer Request ---\n\"a laptop under $1000\"",
		"Keep your response professional but conversational.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestPromptBuilder_Custom(t *testing.T) {
	b, err := NewPromptBuilder("Q={{.Request}} C={{.Context}}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := b.Build("ctx", "req")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Q=req C=ctx" {
		t.Errorf("Build() = %q", got)
	}
}

func TestPromptBuilder_NoHTMLEscaping(t *testing.T) {
	b, _ := NewPromptBuilder("{{.Request}}")
	got, _ := b.Build("", `<b>"quoted" & more</b>`)
	if got != `<b>"quoted" & more</b>` {
		t.Errorf("Build() = %q", got)
	}
}

func TestPromptBuilder_Invalid(t *testing.T) {
	if _, err := NewPromptBuilder("{{.Context"); err == nil {
		t.Fatal("expected parse error")
	}

	b, err := NewPromptBuilder("{{.Unknown}}")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if _, err := b.Build("c", "r"); err == nil {
		t.Fatal("expected execution error for unknown field")
	}
}
