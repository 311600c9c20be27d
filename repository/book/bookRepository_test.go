package bookrepo_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"libraryapi/model"
	bookrepo "libraryapi/repository/book"
	"libraryapi/util/testutil"

	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, r bookrepo.Repo, books ...model.Book) []int64 {
	t.Helper()
	ids := make([]int64, 0, len(books))
	for _, b := range books {
		id, err := r.Create(context.Background(), b)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestCreateAndDetail(t *testing.T) {
	r := bookrepo.New(testutil.NewDB(t))
	ctx := context.Background()

	ids := seed(t, r,
		model.Book{Title: "Dune", Author: "Frank Herbert", ISBN: "1"},
		model.Book{Title: "Dune", Author: "Frank Herbert", ISBN: "1"},
	)
	require.NotEqual(t, ids[0], ids[1], "duplicate isbn is allowed and gets a fresh id")

	b, err := r.Detail(ctx, ids[1])
	require.NoError(t, err)
	require.Equal(t, model.Book{ID: ids[1], Title: "Dune", Author: "Frank Herbert", ISBN: "1"}, *b)

	_, err = r.Detail(ctx, 9999)
	require.ErrorIs(t, err, bookrepo.ErrNotFound)
}

func TestList_Pagination(t *testing.T) {
	r := bookrepo.New(testutil.NewDB(t))
	for i := 1; i <= 15; i++ {
		seed(t, r, model.Book{Title: fmt.Sprintf("Book %02d", i), Author: "A", ISBN: "I"})
	}

	rows, total, err := r.List(context.Background(), model.BookQuery{Page: 2, PerPage: 10})
	require.NoError(t, err)
	require.Equal(t, int64(15), total)
	require.Len(t, rows, 5)
	require.Equal(t, "Book 11", rows[0].Title)

	rows, total, err = r.List(context.Background(), model.BookQuery{Page: 3, PerPage: 10})
	require.NoError(t, err)
	require.Equal(t, int64(15), total)
	require.Empty(t, rows)

	rows, total, err = r.List(context.Background(), model.BookQuery{Page: 1844674407370955163, PerPage: 10})
	require.NoError(t, err)
	require.Equal(t, int64(15), total)
	require.Empty(t, rows, "offset must not wrap around")

	rows, _, err = r.List(context.Background(), model.BookQuery{Page: math.MaxInt64, PerPage: math.MaxInt64})
	require.NoError(t, err)
	require.Empty(t, rows)

	rows, _, err = r.List(context.Background(), model.BookQuery{Page: 1, PerPage: 0})
	require.NoError(t, err)
	require.NotNil(t, rows)
	require.Empty(t, rows)
}

func TestList_Filters(t *testing.T) {
	r := bookrepo.New(testutil.NewDB(t))
	seed(t, r,
		model.Book{Title: "The Hobbit", Author: "J.R.R. Tolkien", ISBN: "1"},
		model.Book{Title: "The Silmarillion", Author: "J.R.R. Tolkien", ISBN: "2"},
		model.Book{Title: "The Road", Author: "Cormac McCarthy", ISBN: "3"},
		model.Book{Title: "100% Pure_Go", Author: "Gopher", ISBN: "4"},
	)
	ctx := context.Background()

	cases := []struct {
		name  string
		q     model.BookQuery
		total int64
	}{
		{"title case-insensitive", model.BookQuery{Title: "HOBBIT"}, 1},
		{"title substring", model.BookQuery{Title: "the"}, 3},
		{"author", model.BookQuery{Author: "tolk"}, 2},
		{"and", model.BookQuery{Title: "road", Author: "tolkien"}, 0},
		{"and match", model.BookQuery{Title: "silm", Author: "tolkien"}, 1},
		{"percent is literal", model.BookQuery{Title: "%"}, 1},
		{"underscore is literal", model.BookQuery{Title: "e_"}, 1},
		{"no filters", model.BookQuery{}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.q.Page, tc.q.PerPage = 1, 10
			rows, total, err := r.List(ctx, tc.q)
			require.NoError(t, err)
			require.Equal(t, tc.total, total)
			require.Len(t, rows, int(tc.total))
		})
	}
}

func TestUpdate_Partial(t *testing.T) {
	r := bookrepo.New(testutil.NewDB(t))
	ctx := context.Background()
	id := seed(t, r, model.Book{Title: "X", Author: "Y", ISBN: "Z"})[0]

	title := "X2"
	b, err := r.Update(ctx, id, model.BookPatch{Title: &title})
	require.NoError(t, err)
	require.Equal(t, model.Book{ID: id, Title: "X2", Author: "Y", ISBN: "Z"}, *b)

	stored, err := r.Detail(ctx, id)
	require.NoError(t, err)
	require.Equal(t, *b, *stored)

	_, err = r.Update(ctx, id+100, model.BookPatch{Title: &title})
	require.ErrorIs(t, err, bookrepo.ErrNotFound)
}

func TestDelete(t *testing.T) {
	r := bookrepo.New(testutil.NewDB(t))
	ctx := context.Background()
	id := seed(t, r, model.Book{Title: "X", Author: "Y", ISBN: "Z"})[0]

	require.ErrorIs(t, r.Delete(ctx, id+1), bookrepo.ErrNotFound)
	_, total, err := r.List(ctx, model.BookQuery{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)

	require.NoError(t, r.Delete(ctx, id))
	require.ErrorIs(t, r.Delete(ctx, id), bookrepo.ErrNotFound)
}
