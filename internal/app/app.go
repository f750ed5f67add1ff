package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/glabrego/cinemas-cli/internal/rapidmock"
)

// MaxConcurrentDetails bounds LoadMovies fan-out.
const MaxConcurrentDetails = 4

type CatalogClient interface {
	ListMovies(ctx context.Context) ([]rapidmock.Movie, error)
	GetMovie(ctx context.Context, id int64) (rapidmock.MovieDetails, error)
	GetMyList(ctx context.Context) (rapidmock.MyList, error)
	AddToList(ctx context.Context, id int64, status rapidmock.Status) error
}

type Service struct {
	client CatalogClient
	logger zerolog.Logger
}

func NewService(client CatalogClient, logger zerolog.Logger) *Service {
	return &Service{client: client, logger: logger.With().Str("component", "app").Logger()}
}

// LoadCatalog fetches the full catalog. Failures are logged here because the
// home screen does not surface them.
func (s *Service) LoadCatalog(ctx context.Context) ([]rapidmock.Movie, error) {
	movies, err := s.client.ListMovies(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.logger.Error().Err(err).Msg("error fetching movies")
		}
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	s.logger.Debug().Int("count", len(movies)).Msg("catalog loaded")
	return movies, nil
}

func (s *Service) LoadMyList(ctx context.Context) (rapidmock.MyList, error) {
	list, err := s.client.GetMyList(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("error fetching my list")
		return rapidmock.MyList{}, fmt.Errorf("fetch my list: %w", err)
	}
	if list.Watched == nil {
		list.Watched = []rapidmock.ListEntry{}
	}
	if list.ToWatch == nil {
		list.ToWatch = []rapidmock.ListEntry{}
	}
	return list, nil
}

func (s *Service) LoadMovie(ctx context.Context, id int64) (rapidmock.MovieDetails, error) {
	movie, err := s.client.GetMovie(ctx, id)
	if err != nil {
		if errors.Is(err, rapidmock.ErrNotFound) {
			s.logger.Info().Int64("id", id).Msg("movie not found")
		} else {
			s.logger.Warn().Err(err).Int64("id", id).Msg("error fetching movie")
		}
		return rapidmock.MovieDetails{}, fmt.Errorf("fetch movie %d: %w", id, err)
	}
	return movie, nil
}

// LoadMovies fetches several movies concurrently and returns them in the
// order of ids. The first failure cancels the remaining requests.
func (s *Service) LoadMovies(ctx context.Context, ids []int64) ([]rapidmock.MovieDetails, error) {
	out := make([]rapidmock.MovieDetails, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrentDetails)
	for i, id := range ids {
		g.Go(func() error {
			movie, err := s.LoadMovie(ctx, id)
			if err != nil {
				return err
			}
			out[i] = movie
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) AddToList(ctx context.Context, id int64, status rapidmock.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", rapidmock.ErrInvalidStatus, status)
	}
	if err := s.client.AddToList(ctx, id, status); err != nil {
		s.logger.Warn().Err(err).Int64("id", id).Str("status", string(status)).Msg("add to list failed")
		return fmt.Errorf("add movie %d to list: %w", id, err)
	}
	s.logger.Info().Int64("id", id).Str("status", string(status)).Msg("movie added to list")
	return nil
}
