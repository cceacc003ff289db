package chat

import (
	"fmt"
	"strings"
	"text/template"
)

// DefaultPromptTemplate is the instruction template, version 1.
// It receives .Context (rendered catalog summary) and .Request (the raw customer message).
const DefaultPromptTemplate = `You are a knowledgeable shopping assistant. Below is information from our product database, followed by a customer request.

--- Product Database Information ---
{{.Context}}

--- Customer Request ---
"{{.Request}}"

Please provide a not very long product recommendation based on the following rules:
1. Only recommend products that are actually in the product database information above.
2. If multiple products match, recommend the best one and briefly mention alternatives.
3. If no products match exactly, suggest the closest alternative.
4. If nothing relevant is available, politely say so.

Format your response with:
- Product name and price
- Key specifications
- Why this product best matches the request
- Alternative options (if any)

Keep your response professional but conversational.
`

// PromptBuilder renders the language-model prompt.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder parses text, or DefaultPromptTemplate when text is blank.
func NewPromptBuilder(text string) (*PromptBuilder, error) {
	if strings.TrimSpace(text) == "" {
		text = DefaultPromptTemplate
	}
	tmpl, err := template.New("prompt").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse prompt template: %w", err)
	}
	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build renders the prompt for one request.
func (b *PromptBuilder) Build(contextText, request string) (string, error) {
	var sb strings.Builder
	data := struct {
		Context string
		Request string
	}{Context: contextText, Request: request}
	if err := b.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return sb.String(), nil
}
