package repository

import (
	"context"
	"fmt"

	"marvel/catalog/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

type CatalogRepository interface {
	SaveComics(ctx context.Context, comics []domain.Comic) error
	SaveCharacters(ctx context.Context, characters []domain.Character) error
}

// Execer is satisfied by *pgxpool.Pool and pgx.Tx
type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

type catalogRepository struct {
	db Execer
}

func NewCatalogRepository(db Execer) CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

const upsertItemQuery = `
	INSERT INTO catalog_items (id, resource, data) 
	VALUES ($1, $2, $3) 
	ON CONFLICT (id, resource) 
	DO UPDATE SET data = $3, updated_at = now()`

func (r *catalogRepository) SaveComics(ctx context.Context, comics []domain.Comic) error {
	for _, comic := range comics {
		if err := r.save(ctx, domain.ResourceComics, comic.ID, comic); err != nil {
			return err
		}
	}
	return nil
}

func (r *catalogRepository) SaveCharacters(ctx context.Context, characters []domain.Character) error {
	for _, character := range characters {
		if err := r.save(ctx, domain.ResourceCharacters, character.ID, character); err != nil {
			return err
		}
	}
	return nil
}

func (r *catalogRepository) save(ctx context.Context, path domain.ResourcePath, id int, item any) error {
	_, err := r.db.Exec(ctx, upsertItemQuery, id, path.String(), item)
	if err != nil {
		return fmt.Errorf("failed to save %s item %d: %w", path, id, err)
	}

	return nil
}
