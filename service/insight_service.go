package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/tieubaoca/policy-insights-be/database"
	"github.com/tieubaoca/policy-insights-be/types"
)

// ErrEmptyQuestion marks a blank question. It is rejected before any
// completion call and produces no log row.
var ErrEmptyQuestion = errors.New("question must not be empty")

// InsightService runs the question/answer pipeline and records every
// exchange in the query log.
type InsightService struct {
	ai        AIService
	queryRepo database.QueryStore
}

func NewInsightService(ai AIService, queryRepo database.QueryStore) *InsightService {
	return &InsightService{
		ai:        ai,
		queryRepo: queryRepo,
	}
}

// Ask answers a question against the given document text and appends the
// exchange to the query log. contextName labels the log row (a policy
// filename, or types.ContextGeneral when contextText is empty and no
// document is involved). A completion-service failure does not surface as
// an error: the returned record carries the warning message and OK=false,
// and it is logged like any other row.
func (s *InsightService) Ask(ctx context.Context, contextName, contextText, question string) (*types.QueryRecord, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	if contextName == "" {
		contextName = types.ContextGeneral
	}

	var prompt string
	if contextText == "" && contextName == types.ContextGeneral {
		prompt = BuildGeneralPrompt(question)
	} else {
		prompt = BuildPolicyPrompt(contextText, question)
	}

	answer, ok := s.complete(ctx, prompt)

	record := &types.QueryRecord{
		Context:  contextName,
		Question: question,
		Answer:   answer,
		OK:       ok,
	}
	if err := s.queryRepo.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("appending query log: %w", err)
	}
	return record, nil
}

// Summarize produces a five-bullet summary of a policy document. Summaries
// are not logged.
func (s *InsightService) Summarize(ctx context.Context, contextText string) (string, bool) {
	return s.complete(ctx, BuildSummaryPrompt(contextText))
}

// GenerateFAQs builds FAQ-style pairs from every question in the log.
func (s *InsightService) GenerateFAQs(ctx context.Context) (string, bool, error) {
	records, err := s.queryRepo.List(ctx)
	if err != nil {
		return "", false, fmt.Errorf("loading query log: %w", err)
	}
	questions := make([]string, 0, len(records))
	for _, rec := range records {
		questions = append(questions, rec.Question)
	}
	answer, ok := s.complete(ctx, BuildFAQPrompt(questions))
	return answer, ok, nil
}

// complete runs one completion and folds any failure into a user-visible
// warning string with ok=false.
func (s *InsightService) complete(ctx context.Context, prompt string) (string, bool) {
	answer, err := s.ai.Answer(ctx, prompt)
	if err != nil {
		log.Printf("completion failed: %v", err)
		return fmt.Sprintf("⚠️ Error: %v", err), false
	}
	return answer, true
}
