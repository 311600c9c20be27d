package tokenrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"libraryapi/util/database"

	sq "github.com/Masterminds/squirrel"
)

// Store persists issued tokens in the auth_tokens table so they survive a
// restart. It satisfies authsvc.TokenStore.
type Store struct{ db *database.DB }

func New(db *database.DB) *Store { return &Store{db: db} }

func (s *Store) Put(ctx context.Context, token, username string, expiresAt time.Time) error {
	var exp sql.NullInt64
	if !expiresAt.IsZero() {
		exp = sql.NullInt64{Int64: expiresAt.Unix(), Valid: true}
	}
	q, args, err := s.db.Builder().
		Insert("auth_tokens").
		Columns("token", "username", "issued_at", "expires_at").
		Values(token, username, time.Now().Unix(), exp).
		Suffix("ON CONFLICT (token) DO UPDATE SET username = excluded.username, expires_at = excluded.expires_at").
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.Conn.ExecContext(ctx, q, args...)
	return err
}

// Lookup returns the username bound to token. Expired rows are deleted and
// reported as absent.
func (s *Store) Lookup(ctx context.Context, token string) (string, bool, error) {
	q, args, err := s.db.Builder().
		Select("username", "expires_at").
		From("auth_tokens").
		Where(sq.Eq{"token": token}).
		ToSql()
	if err != nil {
		return "", false, err
	}

	var username string
	var exp sql.NullInt64
	if err := s.db.Conn.QueryRowContext(ctx, q, args...).Scan(&username, &exp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}

	if exp.Valid && time.Now().Unix() >= exp.Int64 {
		dq, dargs, err := s.db.Builder().Delete("auth_tokens").Where(sq.Eq{"token": token}).ToSql()
		if err != nil {
			return "", false, err
		}
		if _, err := s.db.Conn.ExecContext(ctx, dq, dargs...); err != nil {
			return "", false, err
		}
		return "", false, nil
	}
	return username, true, nil
}

func (s *Store) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	q, args, err := s.db.Builder().
		Delete("auth_tokens").
		Where(sq.And{sq.NotEq{"expires_at": nil}, sq.LtOrEq{"expires_at": now.Unix()}}).
		ToSql()
	if err != nil {
		return 0, err
	}
	res, err := s.db.Conn.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
