package booksvc

import (
	"context"
	"errors"

	"libraryapi/model"
	repo "libraryapi/repository/book"
	"libraryapi/util/database"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

var (
	ErrNotFound = errors.New("book not found")
	ErrBadInput = errors.New("bad input")
)

type Book = model.Book

type Repo interface {
	Create(ctx context.Context, b model.Book) (int64, error)
	List(ctx context.Context, q model.BookQuery) ([]model.Book, int64, error)
	Detail(ctx context.Context, id int64) (*model.Book, error)
	Update(ctx context.Context, id int64, p model.BookPatch) (*model.Book, error)
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	List(ctx context.Context, q model.BookQuery) (*model.BookPage, error)
	Create(ctx context.Context, title, author, isbn string) (int64, error)
	Detail(ctx context.Context, id int64) (*Book, error)
	Update(ctx context.Context, id int64, p model.BookPatch) (*Book, error)
	Delete(ctx context.Context, id int64) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

// List clamps page below 1 to 1 and a negative per_page to the default; any
// other value goes to the store unchanged.
func (s *service) List(ctx context.Context, q model.BookQuery) (*model.BookPage, error) {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PerPage < 0 {
		q.PerPage = DefaultPerPage
	}
	rows, total, err := s.r.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []model.Book{}
	}
	return &model.BookPage{Books: rows, Total: total, Page: q.Page, PerPage: q.PerPage}, nil
}

func (s *service) Create(ctx context.Context, title, author, isbn string) (int64, error) {
	id, err := s.r.Create(ctx, model.Book{Title: title, Author: author, ISBN: isbn})
	return id, mapErr(err)
}

func (s *service) Detail(ctx context.Context, id int64) (*Book, error) {
	b, err := s.r.Detail(ctx, id)
	return b, mapErr(err)
}

func (s *service) Update(ctx context.Context, id int64, p model.BookPatch) (*Book, error) {
	b, err := s.r.Update(ctx, id, p)
	return b, mapErr(err)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return mapErr(s.r.Delete(ctx, id))
}

func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return ErrNotFound
	case database.IsConstraintViolation(err):
		return ErrBadInput
	}
	return err
}
