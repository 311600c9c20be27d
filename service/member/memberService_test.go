package membersvc_test

import (
	"context"
	"errors"
	"testing"

	"libraryapi/model"
	memberrepo "libraryapi/repository/member"
	membersvc "libraryapi/service/member"

	"github.com/stretchr/testify/require"
)

type repoMock struct {
	createFn func(ctx context.Context, m model.Member) (int64, error)
	listFn   func(ctx context.Context) ([]model.Member, error)
	updateFn func(ctx context.Context, m model.Member) error
	deleteFn func(ctx context.Context, id int64) error
}

func (r *repoMock) Create(ctx context.Context, m model.Member) (int64, error) {
	return r.createFn(ctx, m)
}
func (r *repoMock) List(ctx context.Context) ([]model.Member, error)  { return r.listFn(ctx) }
func (r *repoMock) Update(ctx context.Context, m model.Member) error { return r.updateFn(ctx, m) }
func (r *repoMock) Delete(ctx context.Context, id int64) error       { return r.deleteFn(ctx, id) }

func TestList_EmptyIsNotNil(t *testing.T) {
	s := membersvc.New(&repoMock{
		listFn: func(ctx context.Context) ([]model.Member, error) { return nil, nil },
	})
	rows, err := s.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, rows)
	require.Empty(t, rows)
}

func TestUpdate_OverwritesBothFields(t *testing.T) {
	var got model.Member
	s := membersvc.New(&repoMock{
		updateFn: func(ctx context.Context, m model.Member) error {
			got = m
			return nil
		},
	})
	require.NoError(t, s.Update(context.Background(), 5, "B", "b@x.com"))
	require.Equal(t, model.Member{ID: 5, Name: "B", Email: "b@x.com"}, got)
}

func TestNotFoundMapping(t *testing.T) {
	s := membersvc.New(&repoMock{
		updateFn: func(ctx context.Context, m model.Member) error { return memberrepo.ErrNotFound },
		deleteFn: func(ctx context.Context, id int64) error { return memberrepo.ErrNotFound },
	})
	require.ErrorIs(t, s.Update(context.Background(), 1, "a", "b"), membersvc.ErrNotFound)
	require.ErrorIs(t, s.Delete(context.Background(), 1), membersvc.ErrNotFound)
}

func TestCreate_PassThrough(t *testing.T) {
	boom := errors.New("db down")
	s := membersvc.New(&repoMock{
		createFn: func(ctx context.Context, m model.Member) (int64, error) { return 0, boom },
	})
	_, err := s.Create(context.Background(), "A", "a@x.com")
	require.ErrorIs(t, err, boom)
}
