package membersvc

import (
	"context"
	"errors"

	"libraryapi/model"
	repo "libraryapi/repository/member"
	"libraryapi/util/database"
)

var (
	ErrNotFound = errors.New("member not found")
	ErrBadInput = errors.New("bad input")
)

type Member = model.Member

type Repo interface {
	Create(ctx context.Context, m model.Member) (int64, error)
	List(ctx context.Context) ([]model.Member, error)
	Update(ctx context.Context, m model.Member) error
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	List(ctx context.Context) ([]Member, error)
	Create(ctx context.Context, name, email string) (int64, error)
	// Update replaces both fields; members have no partial update.
	Update(ctx context.Context, id int64, name, email string) error
	Delete(ctx context.Context, id int64) error
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context) ([]Member, error) {
	rows, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []Member{}
	}
	return rows, nil
}

func (s *service) Create(ctx context.Context, name, email string) (int64, error) {
	id, err := s.r.Create(ctx, model.Member{Name: name, Email: email})
	return id, mapErr(err)
}

func (s *service) Update(ctx context.Context, id int64, name, email string) error {
	return mapErr(s.r.Update(ctx, model.Member{ID: id, Name: name, Email: email}))
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
