package memberrepo

import (
	"context"
	"errors"

	"libraryapi/model"
	"libraryapi/util/database"

	sq "github.com/Masterminds/squirrel"
)

var ErrNotFound = errors.New("member not found")

type Repo interface {
	Create(ctx context.Context, m model.Member) (int64, error)
	List(ctx context.Context) ([]model.Member, error)
	Update(ctx context.Context, m model.Member) error
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, m model.Member) (int64, error) {
	q, args, err := r.db.Builder().
		Insert("members").
		Columns("name", "email").
		Values(m.Name, m.Email).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := r.db.Conn.QueryRowContext(ctx, q, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) List(ctx context.Context) ([]model.Member, error) {
	q, args, err := r.db.Builder().
		Select("id", "name", "email").
		From("members").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Member{}
	for rows.Next() {
		var m model.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Email); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Update overwrites both fields of the member with m.ID.
func (r *repo) Update(ctx context.Context, m model.Member) error {
	q, args, err := r.db.Builder().
		Update("members").
		Set("name", m.Name).
		Set("email", m.Email).
		Where(sq.Eq{"id": m.ID}).
		ToSql()
	if err != nil {
		return err
	}
	return r.execOne(ctx, q, args)
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	q, args, err := r.db.Builder().Delete("members").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	return r.execOne(ctx, q, args)
}

func (r *repo) execOne(ctx context.Context, q string, args []any) error {
	res, err := r.db.Conn.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if aff == 0 {
		return ErrNotFound
	}
	return nil
}
