package service

import (
	"context"
	"fmt"

	apperrors "frent-client/internal/errors"
	"frent-client/internal/models"

	"golang.org/x/sync/errgroup"
)

// MovieLookup resolves one movie by id.
type MovieLookup func(ctx context.Context, id string) (*models.Movie, error)

// Join resolves the movie referenced by every record and merges the two.
//
// All lookups run concurrently and every one is allowed to finish; if any
// failed, the whole join fails with the first error and no partial result is
// returned. Output order follows input order. Each distinct movie id is looked
// up once, so every record in one join sees the same movie snapshot.
func Join[R, V any](ctx context.Context, records []R, movieID func(R) string, lookup MovieLookup, merge func(R, models.Movie) V) ([]V, error) {
	if len(records) == 0 {
		return []V{}, nil
	}

	type pending struct {
		movie *models.Movie
		err   error
	}
	lookups := make(map[string]*pending, len(records))
	for _, r := range records {
		if _, ok := lookups[movieID(r)]; !ok {
			lookups[movieID(r)] = &pending{}
		}
	}

	// errgroup without a derived context: a failure does not cancel siblings.
	var g errgroup.Group
	for id, p := range lookups {
		g.Go(func() error {
			p.movie, p.err = lookup(ctx, id)
			if p.err == nil && p.movie == nil {
				p.err = apperrors.ErrNotFound
			}
			if p.err != nil {
				return fmt.Errorf("movie %s: %w", id, p.err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]V, len(records))
	for i, r := range records {
		out[i] = merge(r, *lookups[movieID(r)].movie)
	}
	return out, nil
}

// identity returns the id itself, for records that are bare movie ids.
func identity(id string) string { return id }
