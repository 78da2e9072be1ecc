package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	return r.insert(ctx, tableAnswerEvents,
		[]string{
			"session_id", "kind", "tier", "question_index", "date_key", "question_text",
			"correct_answer", "learner_answer", "correct", "first_completion",
			"points_awarded", "score_after",
		},
		[]any{
			data.SessionID, data.Kind, data.Tier, data.QuestionIndex, data.DateKey, data.QuestionText,
			data.CorrectAnswer, data.LearnerAnswer, data.Correct, data.FirstCompletion,
			data.PointsAwarded, data.ScoreAfter,
		},
	)
}

func (r *eventRepo) RecentAnswers(ctx context.Context, opts QueryOpts) ([]AnswerEventRecord, error) {
	sel := selectEvents(tableAnswerEvents, opts,
		"session_id", "kind", "tier", "question_index", "date_key", "question_text",
		"correct_answer", "learner_answer", "correct", "first_completion",
		"points_awarded", "score_after",
	)

	var out []AnswerEventRecord
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		var (
			rec AnswerEventRecord
			ts  int64
		)
		if err := rows.Scan(
			&rec.ID, &rec.Sequence, &ts,
			&rec.SessionID, &rec.Kind, &rec.Tier, &rec.QuestionIndex, &rec.DateKey, &rec.QuestionText,
			&rec.CorrectAnswer, &rec.LearnerAnswer, &rec.Correct, &rec.FirstCompletion,
			&rec.PointsAwarded, &rec.ScoreAfter,
		); err != nil {
			return err
		}
		rec.Timestamp = fromMillis(ts)
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	return out, nil
}
