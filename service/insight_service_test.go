package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tieubaoca/policy-insights-be/database"
	"github.com/tieubaoca/policy-insights-be/repository"
	"github.com/tieubaoca/policy-insights-be/types"
)

// fakeAI is a test double for the completion endpoint.
type fakeAI struct {
	answer  string
	err     error
	prompts []string
}

func (f *fakeAI) Answer(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func newTestQueryRepo(t *testing.T) database.QueryStore {
	t.Helper()
	store, err := database.NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return repository.NewQueryRepo(store)
}

func TestInsightService_AskPolicyLogsExchange(t *testing.T) {
	ai := &fakeAI{answer: "Twenty days."}
	repo := newTestQueryRepo(t)
	svc := NewInsightService(ai, repo)

	record, err := svc.Ask(context.Background(), "leave_policy.pdf", "Employees get 20 days.", "How many days of leave?")
	require.NoError(t, err)
	assert.True(t, record.OK)
	assert.Equal(t, "Twenty days.", record.Answer)
	assert.Equal(t, "leave_policy.pdf", record.Context)

	require.Len(t, ai.prompts, 1)
	assert.Contains(t, ai.prompts[0], "Policy Content:")
	assert.Contains(t, ai.prompts[0], "Question: How many days of leave?")

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record.Answer, records[0].Answer)
}

func TestInsightService_AskGeneralUsesGeneralPrompt(t *testing.T) {
	ai := &fakeAI{answer: "Business casual."}
	svc := NewInsightService(ai, newTestQueryRepo(t))

	record, err := svc.Ask(context.Background(), "", "", "What is the dress code?")
	require.NoError(t, err)
	assert.Equal(t, types.ContextGeneral, record.Context)
	require.Len(t, ai.prompts, 1)
	assert.Equal(t, "Employee Question: What is the dress code?", ai.prompts[0])
}

func TestInsightService_BlankQuestionRejected(t *testing.T) {
	ai := &fakeAI{answer: "unused"}
	repo := newTestQueryRepo(t)
	svc := NewInsightService(ai, repo)

	_, err := svc.Ask(context.Background(), "", "", "   ")
	assert.ErrorIs(t, err, ErrEmptyQuestion)
	// No completion call, no log row
	assert.Empty(t, ai.prompts)
	records, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestInsightService_EmptyContextStillAnswered(t *testing.T) {
	ai := &fakeAI{answer: "Answer."}
	svc := NewInsightService(ai, newTestQueryRepo(t))

	// A policy whose extracted text is empty must still go through
	record, err := svc.Ask(context.Background(), "scanned_policy.pdf", "", "What does it say?")
	require.NoError(t, err)
	assert.True(t, record.OK)
	require.Len(t, ai.prompts, 1)
	assert.Contains(t, ai.prompts[0], "Policy Content:\n\n")
}

func TestInsightService_CompletionFailureIsTaggedAndLogged(t *testing.T) {
	ai := &fakeAI{err: errors.New("quota exceeded")}
	repo := newTestQueryRepo(t)
	svc := NewInsightService(ai, repo)

	record, err := svc.Ask(context.Background(), "", "", "Any question")
	require.NoError(t, err)
	assert.False(t, record.OK)
	assert.Equal(t, "⚠️ Error: quota exceeded", record.Answer)

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.False(t, records[0].OK)
}

func TestInsightService_GenerateFAQs(t *testing.T) {
	ai := &fakeAI{answer: "Q: ...\nA: ..."}
	repo := newTestQueryRepo(t)
	svc := NewInsightService(ai, repo)

	for _, q := range []string{"first question", "second question"} {
		_, err := svc.Ask(context.Background(), "", "", q)
		require.NoError(t, err)
	}

	faqs, ok, err := svc.GenerateFAQs(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Q: ...\nA: ...", faqs)

	last := ai.prompts[len(ai.prompts)-1]
	assert.Contains(t, last, "first question\nsecond question")
}
