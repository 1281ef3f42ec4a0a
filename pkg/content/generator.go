// Package content generates SEO description copy for clinic listing pages.
package content

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/menshealthfinder/api/ent"
	"github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a copywriter for a men's health clinic directory. " +
	"Write factual, welcoming listing descriptions in plain English. " +
	"Never invent services the clinic does not offer, never make medical claims, " +
	"and keep the copy between 80 and 140 words."

// completer abstracts the chat API so tests can stub it.
type completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator produces clinic description copy. With no API key configured it
// falls back to a deterministic template so listings always have copy.
type Generator struct {
	client completer
	model  string
}

// NewGenerator creates a content generator. An empty API key enables the
// template fallback.
func NewGenerator(apiKey, model string) *Generator {
	g := &Generator{model: model}
	if g.model == "" {
		g.model = openai.GPT4oMini
	}
	if apiKey != "" {
		g.client = openai.NewClient(apiKey)
	}
	return g
}

// Describe generates description copy for a clinic.
func (g *Generator) Describe(ctx context.Context, row *ent.Clinic) (string, error) {
	if g.client == nil {
		return templateDescription(row), nil
	}

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: promptFor(row)},
		},
		Temperature: 0.7,
		MaxTokens:   400,
	})
	if err != nil {
		log.Printf("⚠️  Content generation failed, using template: %v", err)
		return templateDescription(row), nil
	}
	if len(resp.Choices) == 0 {
		log.Printf("⚠️  Content generation returned no choices, using template")
		return templateDescription(row), nil
	}

	log.Printf("✅ Generated description for %s: %d tokens (duration: %v)",
		row.Slug, resp.Usage.TotalTokens, time.Since(start))
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func promptFor(row *ent.Clinic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Clinic: %s in %s, %s.\n", row.Name, row.City, row.State)
	if len(row.Services) > 0 {
		fmt.Fprintf(&b, "Services offered: %s.\n", strings.Join(serviceLabels(row.Services), ", "))
	}
	if row.RatingAvg > 0 {
		fmt.Fprintf(&b, "Rated %.1f/5 across %d published reviews.\n", row.RatingAvg, row.ReviewCount)
	}
	b.WriteString("Write the listing description.")
	return b.String()
}

// templateDescription is the deterministic fallback. Same input, same copy.
func templateDescription(row *ent.Clinic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s is a men's health clinic in %s, %s.", row.Name, row.City, row.State)
	if len(row.Services) > 0 {
		fmt.Fprintf(&b, " The clinic offers %s.", joinNatural(serviceLabels(row.Services)))
	}
	if row.ReviewCount > 0 {
		fmt.Fprintf(&b, " Patients rate it %.1f out of 5 across %d reviews.", row.RatingAvg, row.ReviewCount)
	}
	b.WriteString(" Contact the clinic directly to confirm availability and book a consultation.")
	return b.String()
}

// serviceLabels maps service tags to readable labels, passing unknown tags
// through with underscores replaced.
func serviceLabels(tags []string) []string {
	known := map[string]string{
		"trt":          "testosterone replacement therapy",
		"ed_treatment": "ED treatment",
		"weight_loss":  "medical weight loss",
		"hair_loss":    "hair loss treatment",
		"peptides":     "peptide therapy",
	}
	labels := make([]string, len(tags))
	for i, tag := range tags {
		if label, ok := known[tag]; ok {
			labels[i] = label
		} else {
			labels[i] = strings.ReplaceAll(tag, "_", " ")
		}
	}
	return labels
}

func joinNatural(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
	}
}
