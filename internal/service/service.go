package service

import (
	"context"
	"fmt"

	"marvel/catalog/internal/client"
	"marvel/catalog/internal/domain"
	"marvel/catalog/internal/repository"
	"marvel/catalog/internal/state"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	client       client.CatalogClient
	stateManager state.StateManager
	repository   repository.CatalogRepository // nil when archiving is disabled
}

func NewService(
	client client.CatalogClient,
	stateManager state.StateManager,
	repository repository.CatalogRepository,
) *Service {
	return &Service{
		client:       client,
		stateManager: stateManager,
		repository:   repository,
	}
}

// Overview is a comics page and a character search fetched side by side
type Overview struct {
	Comics     *domain.Comics
	Characters *domain.Characters
}

func (s *Service) ComicsPage(ctx context.Context, page int) (*domain.Comics, error) {
	comics, err := s.client.FetchComicsPage(ctx, page)
	if err != nil {
		return nil, err
	}

	s.rememberPage(ctx, domain.ResourceComics, page)

	if s.repository != nil {
		if err := s.repository.SaveComics(ctx, comics.Results); err != nil {
			return nil, fmt.Errorf("failed to archive comics page %d: %w", page, err)
		}
		log.Infof("💾 Archived %d comics from page %d", len(comics.Results), page)
	}

	return comics, nil
}

// NextComicsPage fetches the page after the last one shown, starting from the first page.
func (s *Service) NextComicsPage(ctx context.Context) (*domain.Comics, error) {
	last, err := s.stateManager.GetLastPage(ctx, domain.ResourceComics)
	if err != nil {
		log.Warnf("Failed to read comics progress, starting from the first page: %v", err)
		last = state.NoPage
	}

	return s.ComicsPage(ctx, last+1)
}

func (s *Service) SearchCharacters(ctx context.Context, namePrefix string, page int) (*domain.Characters, error) {
	characters, err := s.client.SearchCharacters(ctx, namePrefix, page)
	if err != nil {
		return nil, err
	}

	s.rememberPage(ctx, domain.ResourceCharacters, page)

	if s.repository != nil {
		if err := s.repository.SaveCharacters(ctx, characters.Results); err != nil {
			return nil, fmt.Errorf("failed to archive characters matching %q: %w", namePrefix, err)
		}
		log.Infof("💾 Archived %d characters matching %q", len(characters.Results), namePrefix)
	}

	return characters, nil
}

// Overview issues the comics page and the character search concurrently.
func (s *Service) Overview(ctx context.Context, namePrefix string, page int) (*Overview, error) {
	overview := &Overview{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		comics, err := s.ComicsPage(ctx, page)
		if err != nil {
			return err
		}
		overview.Comics = comics
		return nil
	})

	g.Go(func() error {
		characters, err := s.SearchCharacters(ctx, namePrefix, page)
		if err != nil {
			return err
		}
		overview.Characters = characters
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return overview, nil
}

func (s *Service) rememberPage(ctx context.Context, path domain.ResourcePath, page int) {
	if err := s.stateManager.SetLastPage(ctx, path, page); err != nil {
		log.Warnf("Failed to save %s progress: %v", path.GetResourceName(), err)
	}
}
