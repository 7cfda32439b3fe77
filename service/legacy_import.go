package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/tieubaoca/policy-insights-be/database"
	"github.com/tieubaoca/policy-insights-be/types"
)

// Legacy CSV query logs came in three header shapes:
//
//	timestamp,context,question,answer
//	timestamp,policy,question,answer
//	timestamp,question,answer
//
// ImportLegacyCSV maps all of them onto the canonical record: "policy"
// becomes "context", a missing context column becomes "General". Imported
// rows are marked ok=true since the old logs carried no failure flag.
func ImportLegacyCSV(ctx context.Context, r io.Reader, queryRepo database.QueryStore) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("reading header: %w", err)
	}

	columns, err := mapLegacyColumns(header)
	if err != nil {
		return 0, err
	}

	imported := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("reading row: %w", err)
		}
		if len(row) != len(header) {
			return imported, fmt.Errorf("row %d has %d columns, header has %d", imported+1, len(row), len(header))
		}

		record := &types.QueryRecord{
			Timestamp: parseLegacyTimestamp(row[columns.timestamp]),
			Context:   types.ContextGeneral,
			Question:  row[columns.question],
			Answer:    row[columns.answer],
			OK:        true,
		}
		if columns.context >= 0 {
			record.Context = row[columns.context]
		}

		if err := queryRepo.Append(ctx, record); err != nil {
			return imported, fmt.Errorf("appending row %d: %w", imported+1, err)
		}
		imported++
	}
	return imported, nil
}

type legacyColumns struct {
	timestamp int
	context   int
	question  int
	answer    int
}

func mapLegacyColumns(header []string) (legacyColumns, error) {
	columns := legacyColumns{timestamp: -1, context: -1, question: -1, answer: -1}
	for i, name := range header {
		switch name {
		case "timestamp":
			columns.timestamp = i
		case "context", "policy":
			columns.context = i
		case "question":
			columns.question = i
		case "answer":
			columns.answer = i
		}
	}
	if columns.timestamp < 0 || columns.question < 0 || columns.answer < 0 {
		return columns, fmt.Errorf("unrecognized header: %v", header)
	}
	return columns, nil
}

// parseLegacyTimestamp tries the timestamp formats the old logs used. Rows
// with unparseable timestamps keep their original position but get the
// import time.
func parseLegacyTimestamp(value string) time.Time {
	formats := []string{
		"2006-01-02 15:04:05.999999",
		"2006-01-02 15:04:05",
		time.RFC3339,
	}
	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return t
		}
	}
	return time.Now()
}
