// Package repository provides access to the remote rental service resources
// and to the local transaction journal.
package repository

import (
	"context"
	"strconv"

	"frent-client/internal/api"
	"frent-client/internal/models"
)

//go:generate mockgen -destination=mocks/mock_movie_repository.go -package=mocks frent-client/internal/repository MovieRepository

// MovieRepository defines the interface for catalog operations
type MovieRepository interface {
	FindPage(ctx context.Context, page, size int) ([]models.Movie, error)
	FindAll(ctx context.Context, token string) ([]models.Movie, error)
	FindByID(ctx context.Context, id string) (*models.Movie, error)
	Search(ctx context.Context, keyword string, page, size int) ([]models.Movie, error)
	Create(ctx context.Context, token string, req *models.MovieRequest) (*models.Movie, error)
	Update(ctx context.Context, token, id string, req *models.MovieRequest) (*models.Movie, error)
	Delete(ctx context.Context, token, id string) error
	SetAvailable(ctx context.Context, token, id string) (*models.Movie, error)
	SetUnavailable(ctx context.Context, token, id string) (*models.Movie, error)
	ApplyDiscount(ctx context.Context, token, id string, percent float64) (*models.Movie, error)
	RevertPrice(ctx context.Context, token, id string, oldPrice float64) (*models.Movie, error)
}

// movieRepository implements MovieRepository over the movies resource
type movieRepository struct {
	client *api.Client
}

// NewMovieRepository creates a new MovieRepository
func NewMovieRepository(client *api.Client) MovieRepository {
	return &movieRepository{client: client}
}

// FindPage returns one page of the catalog
func (r *movieRepository) FindPage(ctx context.Context, page, size int) ([]models.Movie, error) {
	movies := []models.Movie{}
	path := api.WithQuery("/movies/", api.PageQuery(page, size))
	if err := r.client.Get(ctx, path, "", &movies); err != nil {
		return nil, err
	}
	return nonNil(movies), nil
}

// FindAll returns the entire catalog (admin only)
func (r *movieRepository) FindAll(ctx context.Context, token string) ([]models.Movie, error) {
	movies := []models.Movie{}
	if err := r.client.Get(ctx, "/movies/allMovies", token, &movies); err != nil {
		return nil, err
	}
	return nonNil(movies), nil
}

// FindByID finds a movie by its ID
func (r *movieRepository) FindByID(ctx context.Context, id string) (*models.Movie, error) {
	var movie models.Movie
	if err := r.client.Get(ctx, api.Path("movies", id), "", &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// Search returns one page of movies matching keyword
func (r *movieRepository) Search(ctx context.Context, keyword string, page, size int) ([]models.Movie, error) {
	movies := []models.Movie{}
	path := api.Path("movies", "search", keyword, strconv.Itoa(page), strconv.Itoa(size))
	if err := r.client.Get(ctx, path, "", &movies); err != nil {
		return nil, err
	}
	return nonNil(movies), nil
}

// Create adds a movie to the catalog
func (r *movieRepository) Create(ctx context.Context, token string, req *models.MovieRequest) (*models.Movie, error) {
	var movie models.Movie
	if err := r.client.Post(ctx, "/movies/add", token, req, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// Update replaces a movie's fields
func (r *movieRepository) Update(ctx context.Context, token, id string, req *models.MovieRequest) (*models.Movie, error) {
	var movie models.Movie
	if err := r.client.Put(ctx, api.Path("movies", id), token, req, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// Delete removes a movie from the catalog
func (r *movieRepository) Delete(ctx context.Context, token, id string) error {
	return r.client.Delete(ctx, api.Path("movies", id), token, nil)
}

// SetAvailable marks a movie as rentable
func (r *movieRepository) SetAvailable(ctx context.Context, token, id string) (*models.Movie, error) {
	return r.putMovie(ctx, token, api.Path("movies", "setAvailable", id))
}

// SetUnavailable marks a movie as not rentable
func (r *movieRepository) SetUnavailable(ctx context.Context, token, id string) (*models.Movie, error) {
	return r.putMovie(ctx, token, api.Path("movies", "setUnavailable", id))
}

// ApplyDiscount lowers a movie's rental price by percent
func (r *movieRepository) ApplyDiscount(ctx context.Context, token, id string, percent float64) (*models.Movie, error) {
	return r.putMovie(ctx, token, api.Path("movies", "discount", id, api.FormatNumber(percent)))
}

// RevertPrice restores a movie's rental price to oldPrice
func (r *movieRepository) RevertPrice(ctx context.Context, token, id string, oldPrice float64) (*models.Movie, error) {
	return r.putMovie(ctx, token, api.Path("movies", "revertPrice", id, api.FormatNumber(oldPrice)))
}

func (r *movieRepository) putMovie(ctx context.Context, token, path string) (*models.Movie, error) {
	var movie models.Movie
	if err := r.client.Put(ctx, path, token, struct{}{}, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

// nonNil turns a JSON null list into an empty one.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
