package bookrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"libraryapi/model"
	"libraryapi/util/database"

	sq "github.com/Masterminds/squirrel"
)

var ErrNotFound = errors.New("book not found")

type Repo interface {
	Create(ctx context.Context, b model.Book) (int64, error)
	List(ctx context.Context, q model.BookQuery) ([]model.Book, int64, error)
	Detail(ctx context.Context, id int64) (*model.Book, error)
	Update(ctx context.Context, id int64, p model.BookPatch) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, b model.Book) (int64, error) {
	q, args, err := r.db.Builder().
		Insert("books").
		Columns("title", "author", "isbn").
		Values(b.Title, b.Author, b.ISBN).
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

// List returns the requested page of books matching the filters plus the
// total number of matches. Filters are case-insensitive substring matches.
func (r *repo) List(ctx context.Context, bq model.BookQuery) ([]model.Book, int64, error) {
	where := sq.And{}
	if bq.Title != "" {
		where = append(where, containsFold("title", bq.Title))
	}
	if bq.Author != "" {
		where = append(where, containsFold("author", bq.Author))
	}

	cq, cargs, err := r.db.Builder().Select("COUNT(*)").From("books").Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if err := r.db.Conn.QueryRowContext(ctx, cq, cargs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	out := []model.Book{}
	if bq.PerPage <= 0 || total == 0 {
		return out, total, nil
	}
	// pages past the last row are empty; checked before multiplying so a
	// huge page cannot wrap the offset
	if int64(bq.Page-1) > (total-1)/int64(bq.PerPage) {
		return out, total, nil
	}

	q, args, err := r.db.Builder().
		Select("id", "title", "author", "isbn").
		From("books").
		Where(where).
		OrderBy("id").
		Limit(uint64(bq.PerPage)).
		Offset(uint64(bq.Page-1) * uint64(bq.PerPage)).
		ToSql()
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.db.Conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN); err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

func (r *repo) Detail(ctx context.Context, id int64) (*model.Book, error) {
	return r.get(ctx, r.db.Conn, id)
}

// Update reads the stored row, applies the patch and writes it back in one
// transaction.
func (r *repo) Update(ctx context.Context, id int64, p model.BookPatch) (_ *model.Book, err error) {
	tx, err := r.db.Conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	b, err := r.get(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	p.Apply(b)

	q, args, err := r.db.Builder().
		Update("books").
		Set("title", b.Title).
		Set("author", b.Author).
		Set("isbn", b.ISBN).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	if _, err = tx.ExecContext(ctx, q, args...); err != nil {
		return nil, err
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	q, args, err := r.db.Builder().Delete("books").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
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

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *repo) get(ctx context.Context, qr queryRower, id int64) (*model.Book, error) {
	q, args, err := r.db.Builder().
		Select("id", "title", "author", "isbn").
		From("books").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	var b model.Book
	if err := qr.QueryRowContext(ctx, q, args...).Scan(&b.ID, &b.Title, &b.Author, &b.ISBN); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsFold matches rows whose column contains s, ignoring case. LIKE
// wildcards in s are escaped so they match literally.
func containsFold(col, s string) sq.Sqlizer {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
	return sq.Expr(fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, col), pattern)
}
