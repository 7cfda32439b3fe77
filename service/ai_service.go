package service

import (
	"context"
	"fmt"
	"strings"
)

// SystemPrompt is the fixed persona instruction sent with every completion
// request.
const SystemPrompt = "You are a professional HR policy assistant who explains company policies clearly and politely."

// Temperature keeps answers near-deterministic and factual in style.
const Temperature = 0.3

// MaxContextChars bounds the policy text included in a prompt. The cut is a
// hard byte prefix, not a summarization, so loss at the boundary is
// expected.
const MaxContextChars = 6000

// CompletionTimeout caps the synchronous round trip to the completion
// endpoint.
const CompletionTimeout = 90 // seconds

// AIService is a single-shot completion client. Answer blocks until the
// remote service responds or errors; there are no retries and no streaming.
type AIService interface {
	Answer(ctx context.Context, prompt string) (string, error)
}

// TruncateContext cuts text to MaxContextChars bytes.
func TruncateContext(text string) string {
	if len(text) > MaxContextChars {
		return text[:MaxContextChars]
	}
	return text
}

// BuildPolicyPrompt builds the prompt for a question about a specific
// policy document.
func BuildPolicyPrompt(contextText, question string) string {
	return fmt.Sprintf("Policy Content:\n%s\n\nQuestion: %s", TruncateContext(contextText), question)
}

// BuildGeneralPrompt builds the prompt for a question with no document
// context.
func BuildGeneralPrompt(question string) string {
	return fmt.Sprintf("Employee Question: %s", question)
}

// BuildSummaryPrompt asks for a five-bullet summary of a policy document.
func BuildSummaryPrompt(contextText string) string {
	return fmt.Sprintf("Summarize this policy in 5 bullet points:\n%s", TruncateContext(contextText))
}

// BuildFAQPrompt asks for FAQ-style pairs derived from previously logged
// questions.
func BuildFAQPrompt(questions []string) string {
	return fmt.Sprintf("From these employee questions, create 5 helpful FAQ-style Q&A pairs:\n%s", strings.Join(questions, "\n"))
}
