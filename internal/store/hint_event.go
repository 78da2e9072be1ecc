package store

import "context"

func (r *eventRepo) AppendHint(ctx context.Context, data HintEventData) error {
	return r.insert(ctx, tableHintEvents,
		[]string{"session_id", "ref", "hint_text", "granted", "score_after"},
		[]any{data.SessionID, data.Ref, data.HintText, data.Granted, data.ScoreAfter},
	)
}
