package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	return r.insert(ctx, tableSessionEvents,
		[]string{"session_id", "action", "score", "attempted", "correct", "duration_secs"},
		[]any{data.SessionID, data.Action, data.Score, data.Attempted, data.Correct, data.DurationSecs},
	)
}

func (r *eventRepo) QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionEventRecord, error) {
	sel := selectEvents(tableSessionEvents, opts,
		"session_id", "action", "score", "attempted", "correct", "duration_secs")

	var out []SessionEventRecord
	err := r.query(ctx, sel, func(rows *entsql.Rows) error {
		var (
			rec SessionEventRecord
			ts  int64
		)
		if err := rows.Scan(
			&rec.ID, &rec.Sequence, &ts,
			&rec.SessionID, &rec.Action, &rec.Score, &rec.Attempted, &rec.Correct, &rec.DurationSecs,
		); err != nil {
			return err
		}
		rec.Timestamp = fromMillis(ts)
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	return out, nil
}

func (r *eventRepo) Stats(ctx context.Context) (*JournalStats, error) {
	b := builder()
	stats := &JournalStats{ByKind: make(map[string]KindStats)}

	sessions := b.Select(
		entsql.Count("*"),
		"COALESCE(MAX(score), 0)",
	).From(b.Table(tableSessionEvents)).Where(entsql.EQ("action", "end"))
	err := r.query(ctx, sessions, func(rows *entsql.Rows) error {
		return rows.Scan(&stats.Sessions, &stats.BestScore)
	})
	if err != nil {
		return nil, fmt.Errorf("query session stats: %w", err)
	}

	var lastPlayed int64
	answers := b.Select(
		"kind",
		entsql.Count("*"),
		"COALESCE(SUM(correct), 0)",
		"COALESCE(SUM(first_completion), 0)",
		"COALESCE(SUM(points_awarded), 0)",
		"COALESCE(MAX(timestamp), 0)",
	).From(b.Table(tableAnswerEvents)).GroupBy("kind")
	err = r.query(ctx, answers, func(rows *entsql.Rows) error {
		var (
			kind                      string
			n, correct, first, points int
			last                      int64
		)
		if err := rows.Scan(&kind, &n, &correct, &first, &points, &last); err != nil {
			return err
		}
		stats.ByKind[kind] = KindStats{Answers: n, Correct: correct}
		stats.Answers += n
		stats.Correct += correct
		stats.FirstCompletions += first
		stats.PointsEarned += points
		lastPlayed = max(lastPlayed, last)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query answer stats: %w", err)
	}
	stats.LastPlayed = fromMillis(lastPlayed)

	hints := b.Select(
		entsql.Count("*"),
		"COALESCE(SUM(granted), 0)",
	).From(b.Table(tableHintEvents))
	err = r.query(ctx, hints, func(rows *entsql.Rows) error {
		return rows.Scan(&stats.HintsRequested, &stats.HintsGranted)
	})
	if err != nil {
		return nil, fmt.Errorf("query hint stats: %w", err)
	}

	return stats, nil
}
