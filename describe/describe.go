// Package describe generates an on-demand text description for a selected
// task through a Gemini model.
package describe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/etnz/bubbleboard"
)

// systemInstruction is the fixed instruction sent with every request.
const systemInstruction = "Be helpful, specific, and not verbose."

// Generator is the boundary to the description model. A timeout or failure
// surfaces as a descriptive error for the page, never a crash.
type Generator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// New creates a Generator. Credentials are resolved by the genai client
// from its usual environment.
func New(ctx context.Context, model string, timeout time.Duration) (*Generator, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("initializing description client: %w", err)
	}
	return &Generator{client: client, model: model, timeout: timeout}, nil
}

// Describe returns a short generated blurb for the task.
func (g *Generator) Describe(ctx context.Context, r bubbleboard.Record) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.4),
		MaxOutputTokens:   500,
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(Prompt(r)), config)
	if err != nil {
		return "", fmt.Errorf("description generator failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from description generator")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// Prompt renders the structured task summary sent to the model.
//
// Kept lightweight so the result reads well on a TV display.
func Prompt(r bubbleboard.Record) string {
	var b strings.Builder
	b.WriteString("You are an assistant that writes concise, practical project blurbs.\n")
	b.WriteString("Given this task, write:\n")
	b.WriteString("1) A 2-3 sentence description of what it is.\n")
	b.WriteString("2) A bullet list of next steps (max 5 bullets).\n")
	b.WriteString("3) A short 'risks & blockers' section.\n\n")
	fmt.Fprintf(&b, "%s: %s\n", bubbleboard.ColCategory, r.Category)
	fmt.Fprintf(&b, "%s: %s\n", bubbleboard.ColTitle, r.Title)
	fmt.Fprintf(&b, "%s: %s\n", bubbleboard.ColStatus, r.Status)
	fmt.Fprintf(&b, "%s: %s\n", bubbleboard.ColStartDate, r.StartDate)
	fmt.Fprintf(&b, "%s: %s\n", bubbleboard.ColTargetEndDate, r.TargetEndDate)
	fmt.Fprintf(&b, "%s: %s\n", bubbleboard.ColEstimatedCost, r.CostString())
	fmt.Fprintf(&b, "%s: %s\n", bubbleboard.ColDependencies, r.Dependencies)
	fmt.Fprintf(&b, "%s: %s\n", bubbleboard.ColNextAction, r.NextAction)
	fmt.Fprintf(&b, "%s: %s\n", bubbleboard.ColPriority, r.Priority)
	return b.String()
}
