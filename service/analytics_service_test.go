package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tieubaoca/policy-insights-be/types"
)

func recordsWithQuestions(questions ...string) []types.QueryRecord {
	records := make([]types.QueryRecord, 0, len(questions))
	for _, q := range questions {
		records = append(records, types.QueryRecord{
			Context:  types.ContextGeneral,
			Question: q,
			Answer:   "answer",
			OK:       true,
		})
	}
	return records
}

func TestQuestionFrequencies(t *testing.T) {
	freqs := QuestionFrequencies(recordsWithQuestions("a", "b", "a", "a", "c"))

	require.Len(t, freqs, 3)
	assert.Equal(t, types.QuestionCount{Question: "a", Count: 3}, freqs[0])
	// Ties keep first-seen order
	assert.Equal(t, types.QuestionCount{Question: "b", Count: 1}, freqs[1])
	assert.Equal(t, types.QuestionCount{Question: "c", Count: 1}, freqs[2])
}

func TestQuestionFrequencies_ExactMatchOnly(t *testing.T) {
	freqs := QuestionFrequencies(recordsWithQuestions("leave policy", "Leave Policy?"))

	// Case and punctuation differences are distinct buckets
	require.Len(t, freqs, 2)
	assert.Equal(t, 1, freqs[0].Count)
	assert.Equal(t, 1, freqs[1].Count)
}

func TestWordFrequencies(t *testing.T) {
	counts := WordFrequencies(recordsWithQuestions("leave policy", "leave days"))

	require.Len(t, counts, 3)
	assert.Equal(t, types.WordCount{Word: "leave", Count: 2}, counts[0])
}

func TestAnalyticsReport(t *testing.T) {
	repo := newTestQueryRepo(t)
	ctx := context.Background()

	for _, rec := range []types.QueryRecord{
		{Context: "policy_a.pdf", Question: "q1", Answer: "a1", OK: true},
		{Context: "policy_a.pdf", Question: "q1", Answer: "a1", OK: true},
		{Context: types.ContextGeneral, Question: "q2", Answer: "a2", OK: false},
	} {
		rec := rec
		require.NoError(t, repo.Append(ctx, &rec))
	}

	svc := NewAnalyticsService(repo)
	report, err := svc.Report(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalQuestions)
	assert.Equal(t, 2, report.UniqueContexts)
	require.NotEmpty(t, report.TopQuestions)
	assert.Equal(t, types.QuestionCount{Question: "q1", Count: 2}, report.TopQuestions[0])
	require.Len(t, report.RecentQuestions, 3)
	assert.Equal(t, "q2", report.RecentQuestions[0].Question)
}

func TestAnalyticsReport_EmptyLog(t *testing.T) {
	svc := NewAnalyticsService(newTestQueryRepo(t))
	report, err := svc.Report(context.Background())
	require.NoError(t, err)

	assert.Zero(t, report.TotalQuestions)
	assert.Zero(t, report.UniqueContexts)
	assert.Empty(t, report.TopQuestions)
	assert.Empty(t, report.RecentQuestions)
}
