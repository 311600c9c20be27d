package memberrepo_test

import (
	"context"
	"testing"

	"libraryapi/model"
	memberrepo "libraryapi/repository/member"
	"libraryapi/util/testutil"

	"github.com/stretchr/testify/require"
)

func TestMemberCRUD(t *testing.T) {
	r := memberrepo.New(testutil.NewDB(t))
	ctx := context.Background()

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)

	id, err := r.Create(ctx, model.Member{Name: "A", Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, r.Update(ctx, model.Member{ID: id, Name: "B", Email: "b@x.com"}))
	list, err = r.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []model.Member{{ID: id, Name: "B", Email: "b@x.com"}}, list)

	require.ErrorIs(t, r.Update(ctx, model.Member{ID: id + 1, Name: "C", Email: "c"}), memberrepo.ErrNotFound)
	require.ErrorIs(t, r.Delete(ctx, id+1), memberrepo.ErrNotFound)

	list, err = r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, r.Delete(ctx, id))
	list, err = r.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}
