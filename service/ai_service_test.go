package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateContext(t *testing.T) {
	short := "short policy text"
	assert.Equal(t, short, TruncateContext(short))

	long := strings.Repeat("x", MaxContextChars+500)
	truncated := TruncateContext(long)
	assert.Len(t, truncated, MaxContextChars)
	// Hard prefix cut, byte for byte
	assert.Equal(t, long[:MaxContextChars], truncated)
}

func TestBuildPolicyPrompt(t *testing.T) {
	prompt := BuildPolicyPrompt("Employees get 20 days of leave.", "How many days?")
	assert.Equal(t, "Policy Content:\nEmployees get 20 days of leave.\n\nQuestion: How many days?", prompt)
}

func TestBuildPolicyPrompt_TruncatesContext(t *testing.T) {
	long := strings.Repeat("a", MaxContextChars*2)
	prompt := BuildPolicyPrompt(long, "q")
	assert.Contains(t, prompt, long[:MaxContextChars])
	assert.NotContains(t, prompt, strings.Repeat("a", MaxContextChars+1))
}

func TestBuildGeneralPrompt(t *testing.T) {
	assert.Equal(t, "Employee Question: What is the dress code?",
		BuildGeneralPrompt("What is the dress code?"))
}

func TestBuildFAQPrompt(t *testing.T) {
	prompt := BuildFAQPrompt([]string{"q1", "q2"})
	assert.Contains(t, prompt, "5 helpful FAQ-style Q&A pairs")
	assert.Contains(t, prompt, "q1\nq2")
}
