package recorder

import (
	"time"

	"github.com/google/uuid"
)

// QueryEvent is one answered query.
type QueryEvent struct {
	ID         uuid.UUID `db:"id"`
	Mode       string    `db:"mode"`
	Term       string    `db:"term"`
	Matches    int       `db:"matches"`
	AnsweredAt time.Time `db:"answered_at"`
}

// NewQueryEvent stamps a new event with an id and the current time.
func NewQueryEvent(mode, term string, matches int) *QueryEvent {
	return &QueryEvent{
		ID:         uuid.New(),
		Mode:       mode,
		Term:       term,
		Matches:    matches,
		AnsweredAt: time.Now().UTC(),
	}
}

// Recorder journals answered queries. It is write-only: nothing is read back
// on start-up.
type Recorder interface {
	RecordQuery(evt *QueryEvent) error
	Close() error
}
