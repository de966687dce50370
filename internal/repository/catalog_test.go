package repository

import (
	"context"
	"errors"
	"testing"

	"marvel/catalog/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type execCall struct {
	sql  string
	args []any
}

type fakeExecer struct {
	calls  []execCall
	failOn int
}

func (f *fakeExecer) Exec(_ context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, execCall{sql: sql, args: arguments})
	if f.failOn > 0 && len(f.calls) == f.failOn {
		return pgconn.CommandTag{}, errors.New("duplicate key")
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestSaveComics(t *testing.T) {
	db := &fakeExecer{}
	repo := NewCatalogRepository(db)

	comics := []domain.Comic{{ID: 1, Title: "Amazing Fantasy #15"}, {ID: 2, Title: "X-Men #1"}}
	require.NoError(t, repo.SaveComics(context.Background(), comics))

	require.Len(t, db.calls, 2)
	assert.Equal(t, upsertItemQuery, db.calls[0].sql)
	assert.Equal(t, []any{1, "comics", comics[0]}, db.calls[0].args)
	assert.Equal(t, 2, db.calls[1].args[0])
}

func TestSaveCharactersStopsOnError(t *testing.T) {
	db := &fakeExecer{failOn: 1}
	repo := NewCatalogRepository(db)

	err := repo.SaveCharacters(context.Background(), []domain.Character{{ID: 1009610}, {ID: 1009368}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "characters item 1009610")
	assert.Len(t, db.calls, 1)
}

func TestSaveEmpty(t *testing.T) {
	db := &fakeExecer{}
	require.NoError(t, NewCatalogRepository(db).SaveComics(context.Background(), nil))
	assert.Empty(t, db.calls)
}
