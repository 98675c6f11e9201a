package events

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore persists events in Postgres.
type PGStore struct {
	Pool *pgxpool.Pool
}

const insertEventSQL = `
INSERT INTO lifecycle_events (id, topic, aggregate_id, payload, occurred_at)
VALUES ($1, $2, $3, $4, now())
RETURNING id, topic, aggregate_id, payload, occurred_at`

// InsertEvent implements EventStore.
func (s PGStore) InsertEvent(ctx context.Context, event Event) (Event, error) {
	id := event.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	row := s.Pool.QueryRow(ctx, insertEventSQL, id, event.Topic, event.AggregateID, event.Payload)
	var out Event
	if err := row.Scan(&out.ID, &out.Topic, &out.AggregateID, &out.Payload, &out.OccurredAt); err != nil {
		return Event{}, err
	}
	return out, nil
}
