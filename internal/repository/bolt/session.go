package bolt

import (
	"context"
	"encoding/json"

	"github.com/agrocycle/agrocycle/internal/apperr"
	"github.com/agrocycle/agrocycle/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

// SessionRepository persists the zero-or-one session record.
type SessionRepository struct {
	db *Connection
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{
		db: db,
	}
}

func (r *SessionRepository) Get(ctx context.Context) (model.Session, error) {
	raw, err := r.db.get(keySession)
	if err != nil {
		return model.Session{}, apperr.NewStoreReadCorrupt(keySession, err)
	}
	if raw == nil {
		return model.Session{}, model.ErrNotFound
	}

	var session model.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return model.Session{}, apperr.NewStoreReadCorrupt(keySession, err)
	}

	return session, nil
}

// Put overwrites the session record; it is idempotent.
func (r *SessionRepository) Put(ctx context.Context, session model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return apperr.NewStoreWriteFailed(keySession, err)
	}

	if err := r.db.put(keySession, data); err != nil {
		return apperr.NewStoreWriteFailed(keySession, err)
	}

	return nil
}

func (r *SessionRepository) Delete(ctx context.Context) error {
	if err := r.db.delete(keySession); err != nil {
		return apperr.NewStoreWriteFailed(keySession, err)
	}
	return nil
}
