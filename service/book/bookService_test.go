// service/book/book_service_test.go
package booksvc_test

import (
	"context"
	"errors"
	"testing"

	"libraryapi/model"
	bookrepo "libraryapi/repository/book"
	booksvc "libraryapi/service/book"

	"github.com/stretchr/testify/require"
)

type repoMock struct {
	createFn func(ctx context.Context, b model.Book) (int64, error)
	listFn   func(ctx context.Context, q model.BookQuery) ([]model.Book, int64, error)
	detailFn func(ctx context.Context, id int64) (*model.Book, error)
	updateFn func(ctx context.Context, id int64, p model.BookPatch) (*model.Book, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *repoMock) Create(ctx context.Context, b model.Book) (int64, error) {
	return m.createFn(ctx, b)
}
func (m *repoMock) List(ctx context.Context, q model.BookQuery) ([]model.Book, int64, error) {
	return m.listFn(ctx, q)
}
func (m *repoMock) Detail(ctx context.Context, id int64) (*model.Book, error) {
	return m.detailFn(ctx, id)
}
func (m *repoMock) Update(ctx context.Context, id int64, p model.BookPatch) (*model.Book, error) {
	return m.updateFn(ctx, id, p)
}
func (m *repoMock) Delete(ctx context.Context, id int64) error { return m.deleteFn(ctx, id) }

func TestList_Normalizes(t *testing.T) {
	var got model.BookQuery
	m := &repoMock{
		listFn: func(ctx context.Context, q model.BookQuery) ([]model.Book, int64, error) {
			got = q
			return nil, 0, nil
		},
	}
	s := booksvc.New(m)

	cases := []struct {
		in, want model.BookQuery
	}{
		{model.BookQuery{Page: 0, PerPage: 10}, model.BookQuery{Page: 1, PerPage: 10}},
		{model.BookQuery{Page: -3, PerPage: -1}, model.BookQuery{Page: 1, PerPage: 10}},
		{model.BookQuery{Page: 2, PerPage: 0}, model.BookQuery{Page: 2, PerPage: 0}},
		{model.BookQuery{Page: 7, PerPage: 100000, Title: "t", Author: "a"}, model.BookQuery{Page: 7, PerPage: 100000, Title: "t", Author: "a"}},
	}
	for _, tc := range cases {
		page, err := s.List(context.Background(), tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
		require.Equal(t, tc.want.Page, page.Page)
		require.Equal(t, tc.want.PerPage, page.PerPage)
		require.NotNil(t, page.Books)
	}
}

func TestCreate_Success(t *testing.T) {
	m := &repoMock{
		createFn: func(ctx context.Context, b model.Book) (int64, error) {
			if b.Title != "T" || b.Author != "A" || b.ISBN != "I" {
				return 0, errors.New("bad args")
			}
			return 42, nil
		},
	}
	id, err := booksvc.New(m).Create(context.Background(), "T", "A", "I")
	require.NoError(t, err)
	require.Equal(t, int64(42), id)
}

func TestNotFoundMapping(t *testing.T) {
	m := &repoMock{
		detailFn: func(ctx context.Context, id int64) (*model.Book, error) { return nil, bookrepo.ErrNotFound },
		updateFn: func(ctx context.Context, id int64, p model.BookPatch) (*model.Book, error) {
			return nil, bookrepo.ErrNotFound
		},
		deleteFn: func(ctx context.Context, id int64) error { return bookrepo.ErrNotFound },
	}
	s := booksvc.New(m)
	ctx := context.Background()

	_, err := s.Detail(ctx, 1)
	require.ErrorIs(t, err, booksvc.ErrNotFound)
	_, err = s.Update(ctx, 1, model.BookPatch{})
	require.ErrorIs(t, err, booksvc.ErrNotFound)
	require.ErrorIs(t, s.Delete(ctx, 1), booksvc.ErrNotFound)
}

func TestPassThroughErrors(t *testing.T) {
	boom := errors.New("db down")
	m := &repoMock{
		listFn:   func(ctx context.Context, q model.BookQuery) ([]model.Book, int64, error) { return nil, 0, boom },
		deleteFn: func(ctx context.Context, id int64) error { return boom },
	}
	s := booksvc.New(m)

	_, err := s.List(context.Background(), model.BookQuery{Page: 1, PerPage: 10})
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, s.Delete(context.Background(), 3), boom)
}
