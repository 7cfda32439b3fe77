package types

import "time"

// ContextGeneral is the context label used for questions that are not tied
// to a specific policy document.
const ContextGeneral = "General"

// QueryRecord is one logged question/answer interaction. Records are
// append-only; they are never updated or deleted through the API.
type QueryRecord struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Context   string    `json:"context"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	// OK is false when the answer is a completion-service failure message
	// rather than a real completion.
	OK bool `json:"ok"`
}

// QuestionCount is one row of the question frequency table.
type QuestionCount struct {
	Question string `json:"question"`
	Count    int    `json:"count"`
}

// WordCount is one entry of the bag-of-words signal over logged questions,
// used by the dashboard's word cloud.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// AnalyticsReport is the aggregate view over the whole query log.
type AnalyticsReport struct {
	TotalQuestions  int             `json:"total_questions"`
	UniqueContexts  int             `json:"unique_contexts"`
	TopQuestions    []QuestionCount `json:"top_questions"`
	WordCounts      []WordCount     `json:"word_counts"`
	RecentQuestions []QueryRecord   `json:"recent_questions"`
}
