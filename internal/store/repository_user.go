package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-profile-hub/internal/logger"
	"github.com/MKhiriev/go-profile-hub/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
)

const maxUpdateRetries = 2

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// Each user is stored as a JSONB document next to the indexed lookup columns
// guid and email.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, r.db, sq.Eq{"email": strings.ToLower(email)}, false)
}

func (r *userRepository) FindUserByGUID(ctx context.Context, guid string) (models.User, error) {
	return r.findOne(ctx, r.db, sq.Eq{"guid": guid}, false)
}

// UpdateUser runs the read-modify-write in a transaction holding a row lock.
// Serialization failures and other retryable driver errors restart the
// transaction a bounded number of times.
func (r *userRepository) UpdateUser(ctx context.Context, guid string, mutate func(*models.User) error) (models.User, error) {
	log := logger.FromContext(ctx)

	for attempt := 0; ; attempt++ {
		user, err := r.updateUserTx(ctx, guid, mutate)
		if err != nil && attempt < maxUpdateRetries && r.db.retryable(err) {
			log.Warn().Err(err).Str("func", "*userRepository.UpdateUser").Int("attempt", attempt+1).Msg("retrying user update")
			continue
		}
		return user, err
	}
}

func (r *userRepository) updateUserTx(ctx context.Context, guid string, mutate func(*models.User) error) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error beginning transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	user, err := r.findOne(ctx, tx, sq.Eq{"guid": guid}, true)
	if err != nil {
		return models.User{}, err
	}

	if err = mutate(&user); err != nil {
		return models.User{}, err
	}

	document, err := json.Marshal(user)
	if err != nil {
		return models.User{}, fmt.Errorf("error encoding user document: %w", err)
	}

	query, args, err := psql.Update(user.TableName()).
		Set("email", strings.ToLower(user.Email)).
		Set("document", document).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"guid": guid}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyTaken
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error committing transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return user, nil
}

func (r *userRepository) ImportUsers(ctx context.Context, users ...models.User) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, u := range users {
		document, err := json.Marshal(u)
		if err != nil {
			return fmt.Errorf("error encoding user document: %w", err)
		}

		query, args, err := psql.Insert(u.TableName()).
			Columns("id", "guid", "email", "document").
			Values(u.ID, u.GUID, strings.ToLower(u.Email), document).
			Suffix("ON CONFLICT (id) DO UPDATE SET guid = EXCLUDED.guid, email = EXCLUDED.email, document = EXCLUDED.document, updated_at = NOW()").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*userRepository.ImportUsers").Str("user_id", u.ID).Msg("error importing user")
			if postgresError(err) == pgerrcode.UniqueViolation {
				return ErrEmailAlreadyTaken
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *userRepository) findOne(ctx context.Context, q queryRower, where sq.Eq, forUpdate bool) (models.User, error) {
	builder := psql.Select("document").From(models.User{}.TableName()).Where(where).Limit(1)
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var document []byte
	if err = q.QueryRowContext(ctx, query, args...).Scan(&document); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.findOne").Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var user models.User
	if err = json.Unmarshal(document, &user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return user, nil
}
