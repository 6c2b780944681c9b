package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	localSessionTable = "local_session"
	localSessionRowID = 1
)

// sqliteBuilder renders "?" placeholders for the sqlite3 driver.
var sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// localSessionRepository stores a single remembered session row in SQLite.
type localSessionRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocalSessionRepository returns a [LocalSessionRepository] over the
// client's SQLite database.
func NewLocalSessionRepository(db *DB, log *logger.Logger) LocalSessionRepository {
	log.Debug().Msg("creating local session repository")
	return &localSessionRepository{
		db:     db,
		logger: log,
		now:    time.Now,
	}
}

func (r *localSessionRepository) SaveSession(ctx context.Context, session models.LocalSession) error {
	user := session.CurrentUser
	if user == nil {
		user = models.Record{}
	}
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("error encoding current user: %w", err)
	}

	query, args, err := sqliteBuilder.Insert(localSessionTable).
		Columns("id", "token", "user_record", "updated_at").
		Values(localSessionRowID, session.Token, string(userJSON), r.now().UTC()).
		Suffix("ON CONFLICT(id) DO UPDATE SET token = excluded.token, user_record = excluded.user_record, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.SaveSession").Msg("error saving local session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *localSessionRepository) LoadSession(ctx context.Context) (models.LocalSession, error) {
	query, args, err := sqliteBuilder.Select("token", "user_record", "updated_at").
		From(localSessionTable).
		Where(sq.Eq{"id": localSessionRowID}).
		ToSql()
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		session  models.LocalSession
		userJSON string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&session.Token, &userJSON, &session.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.LoadSession").Msg("error loading local session")
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal([]byte(userJSON), &session.CurrentUser); err != nil {
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return session, nil
}

func (r *localSessionRepository) ClearSession(ctx context.Context) error {
	query, args, err := sqliteBuilder.Delete(localSessionTable).
		Where(sq.Eq{"id": localSessionRowID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*localSessionRepository.ClearSession").Msg("error clearing local session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
