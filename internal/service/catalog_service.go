// Package service contains the client-side orchestration: session-gated
// access to the rental service, detail joins, cached views and the
// compound transactions built from several independent calls.
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"path"
	"strings"

	"frent-client/internal/authz"
	apperrors "frent-client/internal/errors"
	"frent-client/internal/models"
	"frent-client/internal/repository"
	"frent-client/internal/storage"
	"frent-client/pkg/auth"

	"github.com/google/uuid"
)

// CatalogService handles movie catalog operations.
type CatalogService struct {
	movies  repository.MovieRepository
	storage storage.Storage // nil disables artwork uploads
	authz   authz.Authorizer
	logger  *slog.Logger
}

// NewCatalogService creates a new CatalogService. store may be nil.
func NewCatalogService(movies repository.MovieRepository, store storage.Storage, authorizer authz.Authorizer, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		movies:  movies,
		storage: store,
		authz:   authorizer,
		logger:  logger,
	}
}

// ListPage returns one page of the catalog. Pages start at 1; anything lower
// reads the first page.
func (s *CatalogService) ListPage(ctx context.Context, page, size int) ([]models.Movie, error) {
	return s.movies.FindPage(ctx, max(page, models.FirstPage), size)
}

// ListAll returns the whole catalog.
func (s *CatalogService) ListAll(ctx context.Context, sess *auth.Session) ([]models.Movie, error) {
	if err := s.authz.Authorize(sess, authz.ActionCatalogListAll); err != nil {
		return nil, err
	}
	return s.movies.FindAll(ctx, sess.Token())
}

// GetByID returns one movie, or ErrNotFound.
func (s *CatalogService) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.ErrNotFound
	}
	return s.movies.FindByID(ctx, id)
}

// Search returns one page of movies matching keyword. No match is an empty
// slice, never an error. A blank keyword browses the catalog instead.
func (s *CatalogService) Search(ctx context.Context, keyword string, page, size int) ([]models.Movie, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.ListPage(ctx, page, size)
	}
	return s.movies.Search(ctx, keyword, max(page, models.FirstPage), size)
}

// Create adds a movie.
func (s *CatalogService) Create(ctx context.Context, sess *auth.Session, req *models.MovieRequest) (*models.Movie, error) {
	if err := s.authz.Authorize(sess, authz.ActionCatalogManage); err != nil {
		return nil, err
	}
	if err := validateMovieRequest(req); err != nil {
		return nil, err
	}
	return s.movies.Create(ctx, sess.Token(), req)
}

// Update replaces a movie's fields.
func (s *CatalogService) Update(ctx context.Context, sess *auth.Session, id string, req *models.MovieRequest) (*models.Movie, error) {
	if err := s.authz.Authorize(sess, authz.ActionCatalogManage); err != nil {
		return nil, err
	}
	if err := validateMovieRequest(req); err != nil {
		return nil, err
	}
	return s.movies.Update(ctx, sess.Token(), id, req)
}

// Delete removes a movie.
func (s *CatalogService) Delete(ctx context.Context, sess *auth.Session, id string) error {
	if err := s.authz.Authorize(sess, authz.ActionCatalogManage); err != nil {
		return err
	}
	return s.movies.Delete(ctx, sess.Token(), id)
}

// SetAvailable marks a movie rentable.
func (s *CatalogService) SetAvailable(ctx context.Context, sess *auth.Session, id string) (*models.Movie, error) {
	if err := s.authz.Authorize(sess, authz.ActionCatalogManage); err != nil {
		return nil, err
	}
	return s.movies.SetAvailable(ctx, sess.Token(), id)
}

// SetUnavailable marks a movie not rentable.
func (s *CatalogService) SetUnavailable(ctx context.Context, sess *auth.Session, id string) (*models.Movie, error) {
	if err := s.authz.Authorize(sess, authz.ActionCatalogManage); err != nil {
		return nil, err
	}
	return s.movies.SetUnavailable(ctx, sess.Token(), id)
}

// ApplyDiscount lowers a movie's price by percent (0 < percent <= 100). The
// server computes the new price and notifies users who wishlisted the movie.
func (s *CatalogService) ApplyDiscount(ctx context.Context, sess *auth.Session, id string, percent float64) (*models.Movie, error) {
	if err := s.authz.Authorize(sess, authz.ActionCatalogPricing); err != nil {
		return nil, err
	}
	if math.IsNaN(percent) || percent <= 0 || percent > 100 {
		return nil, fmt.Errorf("%w: discount must be in (0, 100], got %v", apperrors.ErrInvalidArgument, percent)
	}
	return s.movies.ApplyDiscount(ctx, sess.Token(), id, percent)
}

// RevertPrice restores a movie's price.
func (s *CatalogService) RevertPrice(ctx context.Context, sess *auth.Session, id string, oldPrice float64) (*models.Movie, error) {
	if err := s.authz.Authorize(sess, authz.ActionCatalogPricing); err != nil {
		return nil, err
	}
	if math.IsNaN(oldPrice) || math.IsInf(oldPrice, 0) || oldPrice < 0 {
		return nil, fmt.Errorf("%w: price must be a non-negative number, got %v", apperrors.ErrInvalidArgument, oldPrice)
	}
	return s.movies.RevertPrice(ctx, sess.Token(), id, oldPrice)
}

// artworkTypes lists the accepted poster content types and their extensions.
var artworkTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadArtwork stores a poster image and returns the URL to use as a
// movie's smallImage or bigImage.
func (s *CatalogService) UploadArtwork(ctx context.Context, sess *auth.Session, filename, contentType string, body io.Reader) (string, error) {
	if err := s.authz.Authorize(sess, authz.ActionArtworkUpload); err != nil {
		return "", err
	}
	if s.storage == nil {
		return "", apperrors.ErrStorageUnavailable
	}

	ext, ok := artworkTypes[contentType]
	if !ok {
		return "", fmt.Errorf("%w: unsupported artwork type %q", apperrors.ErrInvalidArgument, contentType)
	}

	stem := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	key := fmt.Sprintf("artwork/%s-%s%s", uuid.NewString(), slug(stem), ext)

	if err := s.storage.PutObject(ctx, key, body, contentType); err != nil {
		s.logger.Error("artwork upload failed", "key", key, "error", err)
		return "", err
	}

	s.logger.Info("artwork uploaded", "key", key, "by", sess.Username())
	return s.storage.ObjectURL(key), nil
}

// validateMovieRequest checks what the remote service cannot represent. Form
// rules proper are applied by the HTTP binding layer.
func validateMovieRequest(req *models.MovieRequest) error {
	if req == nil {
		return fmt.Errorf("%w: movie is required", apperrors.ErrInvalidArgument)
	}
	if math.IsNaN(req.RentalPrice) || math.IsInf(req.RentalPrice, 0) || req.RentalPrice < 0 {
		return fmt.Errorf("%w: rental price must be a non-negative number", apperrors.ErrInvalidArgument)
	}
	for _, g := range req.Genre {
		if !g.Valid() {
			return fmt.Errorf("%w: unknown genre %q", apperrors.ErrInvalidArgument, g)
		}
	}
	return nil
}

func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case b.Len() > 0 && !strings.HasSuffix(b.String(), "-"):
			b.WriteByte('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "poster"
	}
	return out
}
