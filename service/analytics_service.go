package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/tieubaoca/policy-insights-be/database"
	"github.com/tieubaoca/policy-insights-be/types"
)

// DefaultRecentLimit is how many recent rows the analytics report carries.
const DefaultRecentLimit = 10

// AnalyticsService computes aggregate views over the query log. Every
// report is recomputed from a full read, nothing is memoized.
type AnalyticsService struct {
	queryRepo database.QueryStore
}

func NewAnalyticsService(queryRepo database.QueryStore) *AnalyticsService {
	return &AnalyticsService{
		queryRepo: queryRepo,
	}
}

func (s *AnalyticsService) Report(ctx context.Context) (*types.AnalyticsReport, error) {
	records, err := s.queryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading query log: %w", err)
	}

	contexts := make(map[string]struct{})
	for _, rec := range records {
		contexts[rec.Context] = struct{}{}
	}

	recent, err := s.queryRepo.Recent(ctx, DefaultRecentLimit)
	if err != nil {
		return nil, fmt.Errorf("loading recent queries: %w", err)
	}

	return &types.AnalyticsReport{
		TotalQuestions:  len(records),
		UniqueContexts:  len(contexts),
		TopQuestions:    QuestionFrequencies(records),
		WordCounts:      WordFrequencies(records),
		RecentQuestions: recent,
	}, nil
}

// QuestionFrequencies counts exact question strings, descending by count.
// Ties keep first-seen order, so the sort must be stable.
func QuestionFrequencies(records []types.QueryRecord) []types.QuestionCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, rec := range records {
		if _, seen := counts[rec.Question]; !seen {
			order = append(order, rec.Question)
		}
		counts[rec.Question]++
	}

	result := make([]types.QuestionCount, 0, len(order))
	for _, q := range order {
		result = append(result, types.QuestionCount{Question: q, Count: counts[q]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}

// WordFrequencies is the bag-of-words signal over all question text, split
// on whitespace. No stopword filtering here, that is left to the renderer.
func WordFrequencies(records []types.QueryRecord) []types.WordCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, rec := range records {
		for _, word := range strings.Fields(rec.Question) {
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	result := make([]types.WordCount, 0, len(order))
	for _, w := range order {
		result = append(result, types.WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	return result
}
