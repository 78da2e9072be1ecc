package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const (
	tableAnswerEvents  = "answer_events"
	tableHintEvents    = "hint_events"
	tableSessionEvents = "session_events"
	tableLLMEvents     = "llm_events"
)

var journalTables = []string{tableAnswerEvents, tableHintEvents, tableSessionEvents, tableLLMEvents}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// eventColumns are shared by every journal table.
func eventColumns() []*entsql.ColumnBuilder {
	return []*entsql.ColumnBuilder{
		entsql.Column("id").Type("INTEGER").Attr("PRIMARY KEY AUTOINCREMENT"),
		entsql.Column("sequence").Type("INTEGER").Attr("NOT NULL UNIQUE"),
		entsql.Column("timestamp").Type("INTEGER").Attr("NOT NULL"),
	}
}

func tables() map[string][]*entsql.ColumnBuilder {
	text := func(name string) *entsql.ColumnBuilder {
		return entsql.Column(name).Type("TEXT").Attr("NOT NULL DEFAULT ''")
	}
	integer := func(name string) *entsql.ColumnBuilder {
		return entsql.Column(name).Type("INTEGER").Attr("NOT NULL DEFAULT 0")
	}
	return map[string][]*entsql.ColumnBuilder{
		tableAnswerEvents: {
			text("session_id"),
			text("kind"),
			text("tier"),
			integer("question_index"),
			text("date_key"),
			text("question_text"),
			entsql.Column("correct_answer").Type("REAL").Attr("NOT NULL DEFAULT 0"),
			text("learner_answer"),
			integer("correct"),
			integer("first_completion"),
			integer("points_awarded"),
			integer("score_after"),
		},
		tableHintEvents: {
			text("session_id"),
			text("ref"),
			text("hint_text"),
			integer("granted"),
			integer("score_after"),
		},
		tableSessionEvents: {
			text("session_id"),
			text("action"),
			integer("score"),
			integer("attempted"),
			integer("correct"),
			integer("duration_secs"),
		},
		tableLLMEvents: {
			text("provider"),
			text("model"),
			text("purpose"),
			integer("input_tokens"),
			integer("output_tokens"),
			integer("latency_ms"),
			integer("success"),
			text("error_message"),
			text("request_body"),
			text("response_body"),
		},
	}
}

// migrate creates missing journal tables.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	defs := tables()
	for _, name := range journalTables {
		cols := append(eventColumns(), defs[name]...)
		query, args := builder().CreateTable(name).IfNotExists().Columns(cols...).Query()
		if err := drv.Exec(ctx, query, args, nil); err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}
	}
	return nil
}
